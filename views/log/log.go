// Package log renders the session activity panel: a bordered, scrollable
// viewport fed by the structured logger, showing what the checkout did —
// requests loaded, addresses copied, wallet handshakes and their outcomes.
package log

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"payment-checkout-tui/helpers"
	"payment-checkout-tui/styles"
)

// panelHeight sizes the viewport against the screen. The checkout panel
// keeps priority: never more than a third of the screen or 15 lines,
// never fewer than 5.
func panelHeight(screenHeight int) int {
	// header, nav, panel borders and margins
	const reserved = 10
	available := helpers.Max(5, screenHeight-reserved)
	limit := helpers.Min(screenHeight/3, 15)
	return helpers.Min(available, limit)
}

// Render draws the activity panel. Until the logger is ready it shows the
// spinner in place of the viewport.
func Render(width, height int, ready bool, spinnerView string, vp viewport.Model) string {
	title := lipgloss.NewStyle().
		Foreground(styles.CAccent2).
		Bold(true).
		Render("Session Log")

	vp.Height = panelHeight(height)

	frame := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(0, 1).
		Width(helpers.Max(0, width-2)).
		Height(vp.Height + 2) // title line and spacing

	if !ready {
		return frame.Render(title + "\n\nstarting logger…\n" + spinnerView)
	}

	// scroll position, shown only once there is more than one screenful
	if vp.TotalLineCount() > vp.Height {
		title += lipgloss.NewStyle().
			Foreground(styles.CMuted).
			Render(fmt.Sprintf(" [%d%%]", int(vp.ScrollPercent()*100)))
	}

	return frame.Render(title + "\n\n" + vp.View())
}
