package main

import (
	"strings"

	"payment-checkout-tui/helpers"
	"payment-checkout-tui/session"
	"payment-checkout-tui/styles"
	"payment-checkout-tui/views/addresses"
	"payment-checkout-tui/views/checkout"
	logview "payment-checkout-tui/views/log"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

func (m *model) View() string {
	if m.w == 0 {
		return "starting…"
	}

	var body string
	var nav string

	switch m.sess.View() {
	case session.ViewIdle:
		body = m.renderIdle()
		nav = navStyle.Width(m.w).Render(
			styles.Key("Enter") + " load   " + styles.Key("l") + " debug log   " + styles.Key("Ctrl+C") + " quit")

	case session.ViewLoaded:
		body = checkout.Render(m.sess.Request(), m.focusedNetwork, m.loadErr)
		if m.loading {
			body += "\n\n" + m.spin.View() + " Reloading…"
		}
		nav = checkout.Nav(m.w)

	case session.ViewModal:
		body = m.renderModal()
		nav = addresses.Nav(m.w)
	}

	header := m.globalHeader()
	panel := panelStyle.Width(max(0, m.w-4)).Render(body)

	sections := []string{header, panel, nav}
	if m.logEnabled {
		sections = append(sections, logview.Render(m.w, m.h, m.logReady, m.logSpinner.View(), m.logViewport))
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m *model) globalHeader() string {
	title := titleStyle.Render("Payment Checkout")

	status := "no request"
	if req := m.sess.Request(); req != nil {
		status = helpers.FormatAmount(req.Amount, req.Denomination) + " · loaded " + helpers.LoadedAt(m.loadedAt, m.loading)
	}
	right := lipgloss.NewStyle().Foreground(cMuted).Render(status)

	gap := max(1, m.w-lipgloss.Width(title)-lipgloss.Width(right)-4)
	return navStyle.Width(m.w).Render(title + strings.Repeat(" ", gap) + right)
}

func (m *model) renderIdle() string {
	title := titleStyle.Render("Load a payment request")
	sub := lipgloss.NewStyle().Foreground(cMuted).
		Render("Point the checkout at the merchant's payment request JSON.")

	content := title + "\n" + sub + "\n\n"
	if m.loading {
		content += m.spin.View() + " Loading…"
	} else if m.loadForm != nil {
		content += m.loadForm.View()
	}
	if m.loadErr != "" {
		content += "\n\n" + styles.ErrStyle.Render(m.loadErr)
	}
	return content
}

func (m *model) renderModal() string {
	network := m.sess.ModalNetwork()
	entries := m.sess.Book().Entries(network)

	qr := ""
	if m.showQR {
		if entry, err := m.sess.Book().EntryAt(network, m.selectedAddr); err == nil && entry.Address != "" {
			req := m.sess.Request()
			uri := helpers.PaymentURI(network, entry.Address, req.Amount, req.Denomination)
			qr = helpers.GenerateQRCode(uri) + "\n"
		}
	}

	body := addresses.Render(network, entries, m.selectedAddr,
		m.sess.Feedback(), m.sess.Attempt(), m.spin.View(), qr, m.copyErr)

	hint := lipgloss.NewStyle().Foreground(cMuted).MarginTop(1).
		Render(styles.Key("v") + " toggle QR")

	return body + "\n" + hint
}
