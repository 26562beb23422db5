package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"payment-checkout-tui/connector"
	"payment-checkout-tui/session"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// loadRequestFile reads a payment-request JSON blob from disk
func loadRequestFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return requestLoadedMsg{path: path, data: data, err: err}
	}
}

// copyAddress writes an address to the system clipboard. gen identifies
// the request the entry belongs to.
func copyAddress(gen uint64, entry session.AddressEntry) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(entry.Address)
		return copyResultMsg{gen: gen, entry: entry, err: err}
	}
}

// expireCopied schedules the copy indicator to clear. The seq is checked
// on arrival so a timer from a replaced indicator is a no-op.
func expireCopied(seq uint64) tea.Cmd {
	return tea.Tick(session.CopyFeedbackTTL, func(t time.Time) tea.Msg {
		return copyExpiredMsg{seq: seq}
	})
}

// connectWallet performs the wallet handshake for an attempt
func connectWallet(seq uint64, entry session.AddressEntry, conn connector.Connector) tea.Cmd {
	return func() tea.Msg {
		if conn == nil {
			return connectResultMsg{seq: seq, err: fmt.Errorf("%w: no connector configured", connector.ErrUnavailable)}
		}
		h, err := conn.Connect(context.Background(), entry.Network, entry.Address)
		return connectResultMsg{seq: seq, handle: h, err: err}
	}
}

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// -------------------- MODEL HELPER METHODS --------------------

// addLog adds a log entry with timestamp and type
func (m *model) addLog(logType, message string) {
	if !m.logEnabled || !m.logReady || m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	m.updateLogViewport()
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}

	content := m.logBuffer.String()
	m.logViewport.SetContent(content)
	// Scroll to bottom to show latest entries
	m.logViewport.GotoBottom()
}
