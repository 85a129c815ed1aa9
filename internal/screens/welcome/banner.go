package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizforge/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗   ██╗██╗███████╗███████╗ ██████╗ ██████╗  ██████╗ ███████╗
██╔═══██╗██║   ██║██║╚══███╔╝██╔════╝██╔═══██╗██╔══██╗██╔════╝ ██╔════╝
██║   ██║██║   ██║██║  ███╔╝ █████╗  ██║   ██║██████╔╝██║  ███╗█████╗
██║▄▄ ██║██║   ██║██║ ███╔╝  ██╔══╝  ██║   ██║██╔══██╗██║   ██║██╔══╝
╚██████╔╝╚██████╔╝██║███████╗██║     ╚██████╔╝██║  ██║╚██████╔╝███████╗
 ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚═╝      ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚══════╝`

const bannerCompact = "Q U I Z F O R G E"

// RenderBanner returns the QUIZFORGE banner styled in the primary color.
// Uses a compact fallback for terminals too narrow for the block art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 74 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
