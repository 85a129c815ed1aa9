// Package decks lists the available quiz decks and launches a play
// session for the chosen one.
package decks

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/quiz"
	"github.com/abhisek/quizforge/internal/router"
	"github.com/abhisek/quizforge/internal/screen"
	"github.com/abhisek/quizforge/internal/ui/components"
	"github.com/abhisek/quizforge/internal/ui/layout"
	"github.com/abhisek/quizforge/internal/ui/theme"
)

type decksLoadedMsg struct {
	Quizzes []*quiz.Quiz
	Err     error
}

// DecksScreen lets the learner pick a quiz deck.
type DecksScreen struct {
	source      quiz.Source
	playFactory func(*quiz.Quiz) screen.Screen

	quizzes   []*quiz.Quiz
	selected  int
	search    components.TextInput
	searching bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*DecksScreen)(nil)
var _ screen.KeyHintProvider = (*DecksScreen)(nil)

// New creates a DecksScreen backed by the given quiz source.
func New(source quiz.Source, playFactory func(*quiz.Quiz) screen.Screen) *DecksScreen {
	return &DecksScreen{
		source:      source,
		playFactory: playFactory,
		search:      components.NewTextInput("Search decks...", false, 30),
	}
}

func (s *DecksScreen) Init() tea.Cmd {
	return func() tea.Msg {
		quizzes, err := s.source.Decks()
		return decksLoadedMsg{Quizzes: quizzes, Err: err}
	}
}

func (s *DecksScreen) Title() string {
	return "Pick a Quiz"
}

func (s *DecksScreen) KeyHints() []layout.KeyHint {
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "/", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DecksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case decksLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.quizzes = msg.Quizzes
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if s.searching {
			switch msg.String() {
			case "enter":
				s.searching = false
				return s, nil
			case "esc":
				s.searching = false
				s.search = components.NewTextInput("Search decks...", false, 30)
				s.selected = 0
				return s, nil
			}
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			s.selected = 0
			return s, cmd
		}

		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "/":
			s.searching = true
			return s, s.search.Init()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.filtered())-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			filtered := s.filtered()
			if s.selected >= 0 && s.selected < len(filtered) {
				q := filtered[s.selected]
				return s, func() tea.Msg {
					return router.PushScreenMsg{Screen: s.playFactory(q)}
				}
			}
			return s, nil
		}
	}
	return s, nil
}

// filtered returns the decks matching the search text, all decks when
// the search is empty.
func (s *DecksScreen) filtered() []*quiz.Quiz {
	needle := strings.ToLower(strings.TrimSpace(s.search.Value()))
	if needle == "" {
		return s.quizzes
	}
	var out []*quiz.Quiz
	for _, q := range s.quizzes {
		if strings.Contains(strings.ToLower(q.Title), needle) ||
			strings.Contains(strings.ToLower(q.Subject), needle) {
			out = append(out, q)
		}
	}
	return out
}

func (s *DecksScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading decks...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.searching || s.search.Value() != "" {
		searchLine := "Search: " + s.search.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, searchLine))
		b.WriteString("\n\n")
	}

	filtered := s.filtered()
	if len(filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No decks match"))
		return b.String()
	}

	for i, q := range filtered {
		mins := q.TimeLimitSeconds / 60
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%-28s %-14s %2d questions  %2d min",
			prefix, q.Title, q.Subject, len(q.Questions), mins)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
