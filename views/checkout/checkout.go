package checkout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"payment-checkout-tui/helpers"
	"payment-checkout-tui/session"
	"payment-checkout-tui/styles"
)

// networkLabel is the display name for a settlement rail.
func networkLabel(n session.Network) string {
	switch n {
	case session.NetworkStellar:
		return "Stellar (XLM)"
	case session.NetworkUSDC:
		return "USDC"
	default:
		return string(n)
	}
}

// Nav returns the navigation bar for the checkout view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("←/→") + " network",
		styles.Key("Enter") + " choose",
		styles.Key("r") + " reset",
		styles.Key("l") + " debug log",
		styles.Key("q") + " quit",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}

// Summary renders the merchant payment request header.
func Summary(req *session.PaymentRequest) string {
	if req == nil {
		return lipgloss.NewStyle().Foreground(styles.CMuted).Render("No payment request loaded.")
	}

	var b strings.Builder

	business := req.BusinessName
	if business == "" {
		business = "Payment Request"
	}
	b.WriteString(styles.TitleStyle.Render(business))
	b.WriteString("\n")

	if req.Description != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(styles.CMuted).Render(req.Description))
		b.WriteString("\n")
	}

	amount := helpers.FadeString(helpers.FormatAmount(req.Amount, req.Denomination), "#7D5AFC", "#FF87D7")
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(amount))

	return b.String()
}

// NetworkButtons renders the two settlement choices; focusedIdx highlights
// the one Enter would open.
func NetworkButtons(req *session.PaymentRequest, focusedIdx int) string {
	book := session.NewAddressBook(req)

	buttonStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CMuted).
		Foreground(styles.CText).
		Padding(0, 3).
		MarginRight(2)

	focusedStyle := buttonStyle.
		BorderForeground(styles.CAccent2).
		Foreground(styles.CAccent2).
		Bold(true)

	var buttons []string
	for i, n := range session.Networks() {
		count := len(book.Entries(n))
		label := fmt.Sprintf("%s\n%d address(es)", networkLabel(n), count)
		if i == focusedIdx {
			buttons = append(buttons, focusedStyle.Render(label))
		} else {
			buttons = append(buttons, buttonStyle.Render(label))
		}
	}

	header := lipgloss.NewStyle().Foreground(styles.CMuted).Render("Choose a settlement network:")
	return header + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// Render renders the full checkout view for the Loaded state.
func Render(req *session.PaymentRequest, focusedIdx int, errMsg string) string {
	content := Summary(req) + "\n\n" + NetworkButtons(req, focusedIdx)
	if errMsg != "" {
		content += "\n\n" + styles.ErrStyle.Render(errMsg)
	}
	return content
}
