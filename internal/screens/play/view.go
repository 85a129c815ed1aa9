package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/session"
	"github.com/abhisek/quizforge/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.sess == nil {
		return renderLoading(width)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	if s.sess.Phase == session.PhaseCompleted {
		return s.renderResults(width)
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the active question with the status line.
func (s *PlayScreen) renderQuestionView(width int) string {
	sess := s.sess
	q := sess.Current()
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	mins := sess.Remaining / 60
	secs := sess.Remaining % 60
	timerStr := fmt.Sprintf("%d:%02d", mins, secs)
	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if sess.Remaining <= 30 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.quiz.Title))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  ", sess.Index+1, len(s.quiz.Questions))) +
		timerStyle.Render("⏱ "+timerStr)

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	// Question + options (the component handles reveal coloring).
	choiceView := s.choice.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, choiceView))
	b.WriteString("\n")

	if sess.Phase == session.PhaseAnswerRevealed {
		b.WriteString(s.renderReveal(width))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\nSelect (1-4) or use arrows + Enter"))
	}

	return b.String()
}

// renderReveal renders the correctness banner and explanation after a
// submitted answer.
func (s *PlayScreen) renderReveal(width int) string {
	q := s.sess.Current()

	var b strings.Builder
	b.WriteString("\n")

	if s.sess.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}
	b.WriteString("\n")

	if q != nil && q.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		exp := expStyle.Render(q.Explanation)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderResults renders the completed attempt: grade, score, XP, unlocks.
func (s *PlayScreen) renderResults(width int) string {
	out := s.sess.Outcome
	if out == nil {
		return renderLoading(width)
	}

	var b strings.Builder
	b.WriteString("\n\n")

	gradeStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Bold(true)
	switch out.Grade {
	case "A+", "A":
		gradeStyle = gradeStyle.Foreground(theme.ArcadeYellow)
	case "B", "C":
		gradeStyle = gradeStyle.Foreground(theme.Secondary)
	default:
		gradeStyle = gradeStyle.Foreground(theme.Error)
	}
	b.WriteString(gradeStyle.Render(fmt.Sprintf("Grade: %s", out.Grade)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d/%d correct (%d%%)", out.Score, out.Total, out.Percent)))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("+%d XP", out.XPEarned)))
	b.WriteString("\n")

	if len(out.Unlocks) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render("Achievements unlocked!"))
		b.WriteString("\n")
		for _, a := range out.Unlocks {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Text).
				Render(fmt.Sprintf("%s %s", a.Icon, a.Name)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("[R] Retake    [Esc] Back to menu"))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this quiz?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress is saved and the quiz can be resumed."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your quiz...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
