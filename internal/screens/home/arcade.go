package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/rewards"
	"github.com/abhisek/quizforge/internal/ui/components"
	"github.com/abhisek/quizforge/internal/ui/theme"
)

// Block-letter title with the product name split over two rows so it fits
// the cabinet width.
const arcadeTitleFull = ` ██████╗ ██╗   ██╗██╗███████╗
██╔═══██╗██║   ██║██║╚══███╔╝
██║   ██║██║   ██║██║  ███╔╝
██║▄▄ ██║██║   ██║██║ ███╔╝
╚██████╔╝╚██████╔╝██║███████╗
 ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const arcadeTitleSub = "F · O · R · G · E"

const arcadeTitleCompact = "Q · U · I · Z · F · O · R · G · E"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(arcadeTitleCompact))
	}
	sub := lipgloss.NewStyle().
		Foreground(theme.ArcadeCyan).
		Bold(true).
		Render(arcadeTitleSub)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitleFull) + "\n" + sub)
}

// renderStatsBar renders the learner stats and level progress in a
// bordered box matching content width.
func renderStatsBar(level, xp, streak int, progress rewards.LevelProgress, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	xpStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			levelStyle.Render(fmt.Sprintf("Lv%d", level)),
			xpStyle.Render(fmt.Sprintf("✦%d", xp)),
			streakText(streak, true, streakStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			levelStyle.Render(fmt.Sprintf("★ LEVEL %d", level)),
			xpStyle.Render(fmt.Sprintf("✦ %d XP", xp)),
			streakText(streak, false, streakStyle, dimStyle),
		)
	}

	if !compact && progress.Required > 0 {
		bar := components.NewProgressBar("",
			float64(progress.Current)/float64(progress.Required), false, cw-8)
		stats += "\n" + bar.View() + "\n" +
			dimStyle.Render(fmt.Sprintf("%d XP to level %d", progress.Remaining, level+1))
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func streakText(streak int, compact bool, active, dim lipgloss.Style) string {
	if streak == 0 {
		if compact {
			return dim.Render("⚡0")
		}
		return dim.Render("⚡ NO STREAK")
	}
	if compact {
		return active.Render(fmt.Sprintf("⚡%d", streak))
	}
	return active.Render(fmt.Sprintf("⚡ %d DAY STREAK", streak))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	text := fmt.Sprintf("New version %s available — run quizforge update", latestVersion)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

func joinSections(sections []string) string {
	return strings.Join(sections, "\n\n")
}
