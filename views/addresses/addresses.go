package addresses

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"payment-checkout-tui/helpers"
	"payment-checkout-tui/session"
	"payment-checkout-tui/styles"
)

// Title is the modal heading for a network.
func Title(n session.Network) string {
	switch n {
	case session.NetworkStellar:
		return "Stellar Addresses"
	case session.NetworkUSDC:
		return "USDC Addresses"
	default:
		return "Addresses"
	}
}

// Nav returns the navigation bar shown under the modal
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("↑/↓") + " move",
		styles.Key("c") + " copy",
		styles.Key("Enter") + " connect",
		styles.Key("Tab") + " other network",
		styles.Key("Esc") + " close",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}

// RenderList renders the candidate addresses of the open modal.
// selectedIdx marks the cursor; fb is the active copy indicator, if any.
func RenderList(entries []session.AddressEntry, selectedIdx int, fb *session.Feedback) string {
	if len(entries) == 0 {
		return lipgloss.NewStyle().Foreground(styles.CMuted).
			Render("No addresses configured for this network.")
	}

	var items []string
	for i, e := range entries {
		var marker string
		var label string

		display := e.Address
		if display == "" {
			display = lipgloss.NewStyle().Foreground(styles.CMuted).Italic(true).Render("(not yet configured)")
		}

		if i == selectedIdx {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("▶ ")
			if e.Address != "" {
				display = lipgloss.NewStyle().Foreground(styles.CText).Render(e.Address)
			}
			label = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).
				Render(fmt.Sprintf("#%d %s", e.Index+1, helpers.ShortenAddr(e.Address)))
		} else {
			marker = "  "
			if e.Address != "" {
				display = helpers.FadeString(e.Address, "#7D5AFC", "#FF87D7")
			}
			label = lipgloss.NewStyle().Foreground(lipgloss.Color("#e1a2aa")).
				Render(fmt.Sprintf("#%d %s", e.Index+1, helpers.ShortenAddr(e.Address)))
		}

		if fb.Matches(e) {
			label += "  " + styles.OkStyle.Render("✓ Copied")
		}

		items = append(items, marker+label+"\n  "+display)
	}

	return strings.Join(items, "\n\n")
}

// RenderAttempt renders the status line of the connection attempt shown
// inside the modal. spinnerView animates while the attempt is pending.
func RenderAttempt(a *session.Attempt, spinnerView string) string {
	if a == nil {
		return ""
	}
	switch a.Status {
	case session.AttemptPending:
		return spinnerView + " Connecting to " + helpers.ShortenAddr(a.Entry.Address) + "…"
	case session.AttemptSucceeded:
		return styles.OkStyle.Render("✓ Wallet connected") +
			lipgloss.NewStyle().Foreground(styles.CMuted).Render("  handle "+shortID(a.HandleID))
	case session.AttemptFailed:
		reason := "connection failed"
		if a.Err != nil {
			reason = a.Err.Error()
		}
		return styles.ErrStyle.Render("✗ " + reason)
	default:
		return ""
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Render renders the complete modal body.
func Render(n session.Network, entries []session.AddressEntry, selectedIdx int,
	fb *session.Feedback, attempt *session.Attempt, spinnerView, qr, copyErr string) string {

	title := styles.TitleStyle.Render(Title(n))
	body := RenderList(entries, selectedIdx, fb)

	content := title + "\n\n" + body

	if qr != "" {
		content += "\n\n" + qr
		content += lipgloss.NewStyle().Foreground(styles.CMuted).
			Render("Scan with your wallet app to pay this address")
	}

	if status := RenderAttempt(attempt, spinnerView); status != "" {
		content += "\n\n" + status
	}
	if copyErr != "" {
		content += "\n\n" + styles.ErrStyle.Render(copyErr)
	}

	return content
}
