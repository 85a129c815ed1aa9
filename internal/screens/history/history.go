// Package history lists the learner's completed quiz attempts.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/quiz"
	"github.com/abhisek/quizforge/internal/router"
	"github.com/abhisek/quizforge/internal/screen"
	"github.com/abhisek/quizforge/internal/session"
	"github.com/abhisek/quizforge/internal/store"
	"github.com/abhisek/quizforge/internal/ui/layout"
	"github.com/abhisek/quizforge/internal/ui/theme"
)

type historyLoadedMsg struct {
	Attempts []store.AttemptSummaryRecord
	Titles   map[string]string // quiz id to title
	Err      error
}

// HistoryScreen displays past completed attempts, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	learnerID string
	source    quiz.Source

	attempts []store.AttemptSummaryRecord
	titles   map[string]string
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. source may be nil; quiz ids are shown
// instead of titles.
func New(eventRepo store.EventRepo, learnerID string, source quiz.Source) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		learnerID: learnerID,
		source:    source,
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := s.eventRepo.QueryAttemptSummaries(
			context.Background(), s.learnerID, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		titles := make(map[string]string)
		if s.source != nil {
			if decks, err := s.source.Decks(); err == nil {
				for _, d := range decks {
					titles[d.ID] = d.Title
				}
			}
		}
		return historyLoadedMsg{Attempts: attempts, Titles: titles}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.titles = msg.Titles
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes completed yet. Go play one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.attempts {
		dateStr := rec.Timestamp.Format("Jan 02, 2006")
		mins := rec.TimeSpentSecs / 60
		secs := rec.TimeSpentSecs % 60
		durationStr := fmt.Sprintf("%d:%02d", mins, secs)

		percent := 0
		if rec.TotalQuestions > 0 {
			percent = rec.Score * 100 / rec.TotalQuestions
		}
		grade := session.Grade(percent)

		title := s.titles[rec.QuizID]
		if title == "" {
			title = rec.QuizID
		}

		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s  %-26s %d/%d  %3d%%  %-2s  %s",
			prefix, dateStr, title, rec.Score, rec.TotalQuestions, percent, grade, durationStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
