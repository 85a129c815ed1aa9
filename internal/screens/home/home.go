package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizforge/internal/quiz"
	"github.com/abhisek/quizforge/internal/rewards"
	"github.com/abhisek/quizforge/internal/router"
	"github.com/abhisek/quizforge/internal/screen"
	"github.com/abhisek/quizforge/internal/screens/achievements"
	"github.com/abhisek/quizforge/internal/screens/decks"
	"github.com/abhisek/quizforge/internal/screens/history"
	"github.com/abhisek/quizforge/internal/store"
	"github.com/abhisek/quizforge/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	engine     *rewards.Engine
	updateNote string
	mascot     MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. updateNote, when non-empty, is the newer
// version string shown beneath the menu.
func New(engine *rewards.Engine, source quiz.Source, eventRepo store.EventRepo, playFactory func(*quiz.Quiz) screen.Screen, updateNote string) *HomeScreen {
	state := engine.State()

	menuLabels := []string{"PLAY QUIZ", "ACHIEVEMENTS", "HISTORY", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: decks.New(source, playFactory)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: achievements.New(state, eventRepo, engine.LearnerID()),
				}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: history.New(eventRepo, engine.LearnerID(), source),
				}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		engine:     engine,
		updateNote: updateNote,
		mascot:     mascotForState(state),
	}
}

// mascotForState picks the mascot mood from the learner's streak.
func mascotForState(s *rewards.State) MascotVariant {
	switch {
	case s.Streak >= 3:
		return MascotCelebrating
	case s.Streak > 0 && !s.ActiveToday():
		return MascotAlert
	default:
		return MascotIdle
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)
	state := h.engine.State()

	sections := []string{renderTitle(cw, compact)}

	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}

	sections = append(sections, renderStatsBar(
		state.Level(), state.XP, state.Streak, state.XPToNextLevel(), cw, compact))

	sections = append(sections, renderArcadeMenu(
		h.menuLabels, h.menu.Selected, cw))

	if h.updateNote != "" {
		sections = append(sections, renderUpdateNote(h.updateNote, cw))
	}

	content := joinSections(sections)

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
