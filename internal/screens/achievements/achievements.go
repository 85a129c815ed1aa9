// Package achievements displays the achievement catalog with the
// learner's unlock progress.
package achievements

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/rewards"
	"github.com/abhisek/quizforge/internal/router"
	"github.com/abhisek/quizforge/internal/screen"
	"github.com/abhisek/quizforge/internal/store"
	"github.com/abhisek/quizforge/internal/ui/layout"
	"github.com/abhisek/quizforge/internal/ui/theme"
)

type unlocksLoadedMsg struct {
	UnlockedAt map[string]time.Time // achievement id to unlock time
	Err        error
}

// allTypes orders the type tabs.
var allTypes = []rewards.Type{
	rewards.TypeQuizCount,
	rewards.TypeLessonCount,
	rewards.TypePerfectScore,
	rewards.TypeStreak,
	rewards.TypeTotalXP,
}

func typeLabel(t rewards.Type) string {
	switch t {
	case rewards.TypeQuizCount:
		return "Quizzes"
	case rewards.TypeLessonCount:
		return "Lessons"
	case rewards.TypePerfectScore:
		return "Perfect"
	case rewards.TypeStreak:
		return "Streaks"
	case rewards.TypeTotalXP:
		return "XP"
	default:
		return string(t)
	}
}

// AchievementsScreen displays the catalog grouped by type.
type AchievementsScreen struct {
	state     *rewards.State
	eventRepo store.EventRepo
	learnerID string

	catalog      []rewards.Achievement
	unlockedAt   map[string]time.Time
	selectedType int // index into allTypes
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates a new AchievementsScreen.
func New(state *rewards.State, eventRepo store.EventRepo, learnerID string) *AchievementsScreen {
	return &AchievementsScreen{
		state:      state,
		eventRepo:  eventRepo,
		learnerID:  learnerID,
		catalog:    rewards.Catalog(),
		unlockedAt: make(map[string]time.Time),
	}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.eventRepo == nil {
			return unlocksLoadedMsg{UnlockedAt: map[string]time.Time{}}
		}
		records, err := s.eventRepo.QueryAchievementEvents(context.Background(), s.learnerID)
		if err != nil {
			return unlocksLoadedMsg{Err: err}
		}
		at := make(map[string]time.Time, len(records))
		for _, rec := range records {
			if _, seen := at[rec.AchievementID]; !seen {
				at[rec.AchievementID] = rec.Timestamp
			}
		}
		return unlocksLoadedMsg{UnlockedAt: at}
	}
}

func (s *AchievementsScreen) Title() string {
	return "Achievements"
}

func (s *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch type"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case unlocksLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.unlockedAt = msg.UnlockedAt
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.selectedType = (s.selectedType + 1) % len(allTypes)
			return s, nil
		case "shift+tab":
			s.selectedType = (s.selectedType - 1 + len(allTypes)) % len(allTypes)
			return s, nil
		}
	}
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading achievements...")
	}

	var b strings.Builder

	// Unlock tally.
	unlocked := 0
	for _, a := range s.catalog {
		if s.state.Unlocked[a.ID] {
			unlocked++
		}
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nUnlocked: %d/%d\n", unlocked, len(s.catalog))))
	b.WriteString("\n")

	// Type tabs.
	var tabs []string
	for i, t := range allTypes {
		label := fmt.Sprintf("%s (%d)", typeLabel(t), s.countByType(t))
		if i == s.selectedType {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, a := range s.filteredCatalog() {
		var line string
		var style lipgloss.Style
		if s.state.Unlocked[a.ID] {
			when := ""
			if t, ok := s.unlockedAt[a.ID]; ok {
				when = t.Format("Jan 02, 2006")
			}
			line = fmt.Sprintf("  %s %-22s %-34s %s", a.Icon, a.Name, a.Description, when)
			style = lipgloss.NewStyle().Foreground(theme.ArcadeYellow)
		} else {
			line = fmt.Sprintf("  🔒 %-22s %-34s", a.Name, a.Description)
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *AchievementsScreen) filteredCatalog() []rewards.Achievement {
	t := allTypes[s.selectedType]
	var out []rewards.Achievement
	for _, a := range s.catalog {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

func (s *AchievementsScreen) countByType(t rewards.Type) int {
	count := 0
	for _, a := range s.catalog {
		if a.Type == t && s.state.Unlocked[a.ID] {
			count++
		}
	}
	return count
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
