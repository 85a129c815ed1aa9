// Package app assembles the TUI: state loading, screen wiring, and the
// root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/attempt"
	"github.com/abhisek/quizforge/internal/notify"
	"github.com/abhisek/quizforge/internal/quiz"
	"github.com/abhisek/quizforge/internal/rewards"
	"github.com/abhisek/quizforge/internal/router"
	"github.com/abhisek/quizforge/internal/screen"
	"github.com/abhisek/quizforge/internal/screens/home"
	"github.com/abhisek/quizforge/internal/screens/play"
	"github.com/abhisek/quizforge/internal/screens/welcome"
	"github.com/abhisek/quizforge/internal/store"
	"github.com/abhisek/quizforge/internal/ui/layout"
)

// snapshotKeep is how many snapshots are retained per learner.
const snapshotKeep = 10

// Options configure the application.
type Options struct {
	Store     *store.Store
	LearnerID string
	Source    quiz.Source

	// UpdateNote is a newer available version, shown on the home screen.
	UpdateNote string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	engine *rewards.Engine
	save   func()
	width  int
	height int
}

// newAppModel loads learner state and wires the screen stack.
func newAppModel(opts Options) (AppModel, error) {
	ctx := context.Background()
	eventRepo := opts.Store.EventRepo()
	snapRepo := opts.Store.SnapshotRepo()

	snap, err := snapRepo.Latest(ctx, opts.LearnerID)
	if err != nil {
		return AppModel{}, fmt.Errorf("load snapshot: %w", err)
	}
	var rewardsData *store.RewardsSnapshotData
	if snap != nil {
		rewardsData = snap.Data.Rewards
	}

	sink := notify.NewBuffer()
	engine := rewards.NewEngine(opts.LearnerID, rewards.FromSnapshot(rewardsData), eventRepo, sink)
	attempts := attempt.NewEventStore(eventRepo)

	save := func() {
		saveSnapshot(opts.Store, engine)
	}

	playFactory := func(q *quiz.Quiz) screen.Screen {
		return play.New(q, play.Deps{
			LearnerID:  opts.LearnerID,
			Attempts:   attempts,
			Rewards:    engine,
			Sink:       sink,
			OnFinished: save,
		})
	}

	homeFactory := func() screen.Screen {
		return home.New(engine, opts.Source, eventRepo, playFactory, opts.UpdateNote)
	}

	return AppModel{
		router: router.New(welcome.New(homeFactory)),
		engine: engine,
		save:   save,
	}, nil
}

// saveSnapshot persists the learner's rewards state and trims old snapshots.
func saveSnapshot(st *store.Store, engine *rewards.Engine) {
	ctx := context.Background()
	snap := &store.Snapshot{
		LearnerID: engine.LearnerID(),
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version: 1,
			Rewards: engine.State().SnapshotData(),
		},
	}
	if err := st.SnapshotRepo().Save(ctx, snap); err != nil {
		return
	}
	_ = st.SnapshotRepo().Prune(ctx, engine.LearnerID(), snapshotKeep)
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Screens own every other key, including esc; play uses it for
		// its leave-quiz confirmation.
		if msg.String() == "ctrl+c" {
			m.save()
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	state := m.engine.State()
	header := layout.RenderHeader(title, state.Level(), state.XP, state.Streak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if len(footerHints) == 0 {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and saves a final snapshot on exit.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	_, runErr := p.Run()
	model.save()
	if runErr != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", runErr)
		return runErr
	}
	return nil
}
