package main

import (
	"errors"
	"time"

	"payment-checkout-tui/config"
	"payment-checkout-tui/helpers"
	"payment-checkout-tui/session"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- UPDATE --------------------

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Sizing and logger setup apply in every view and must run ahead of
	// the idle form, which consumes whatever reaches it.
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height

		if m.logEnabled {
			// Width accounts for border and padding
			m.logViewport.Width = max(0, msg.Width-6)
			if m.logReady {
				m.updateLogViewport()
			}
		}
		return m, nil

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		// Create logger that writes to our buffer
		m.logger = log.NewWithOptions(m.logBuffer, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          "",
		})
		m.logger.SetLevel(log.DebugLevel)
		m.logger.SetStyles(&log.Styles{
			Timestamp: lipgloss.NewStyle().Foreground(cMuted),
			Caller:    lipgloss.NewStyle().Faint(true),
			Prefix:    lipgloss.NewStyle().Bold(true).Foreground(cAccent2),
			Message:   lipgloss.NewStyle().Foreground(cText),
			Key:       lipgloss.NewStyle().Foreground(cAccent),
			Value:     lipgloss.NewStyle().Foreground(cText),
			Separator: lipgloss.NewStyle().Faint(true),
			Levels: map[log.Level]lipgloss.Style{
				log.DebugLevel: lipgloss.NewStyle().Foreground(cMuted).SetString("DEBUG"),
				log.InfoLevel:  lipgloss.NewStyle().Foreground(cAccent2).SetString("INFO"),
				log.WarnLevel:  lipgloss.NewStyle().Foreground(cWarn).SetString("WARN"),
				log.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).SetString("ERROR"),
			},
		})
		m.logReady = true
		m.addLog("info", "Logger enabled")
		return m, nil
	}

	// Handle the load form while idle (before message switching)
	if m.sess.View() == session.ViewIdle && m.loadForm != nil && !m.loading {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		form, cmd := m.loadForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.loadForm = f

			if m.loadForm.State == huh.StateCompleted {
				m.requestPath = tempRequestPath
				m.loadForm = nil
				m.loading = true
				m.loadErr = ""
				m.addLog("info", "Loading payment request from "+m.requestPath)
				return m, loadRequestFile(m.requestPath)
			}

			if m.loadForm.State == huh.StateAborted {
				m.createLoadForm()
				return m, nil
			}
		}

		// keep the spinner and other messages flowing
		switch msg.(type) {
		case tea.KeyMsg:
			return m, cmd
		}
		return m, tea.Batch(cmd, m.updateBackground(msg))
	}

	switch msg := msg.(type) {

	case spinner.TickMsg:
		return m, m.updateBackground(msg)

	case requestLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = "Could not read " + msg.path + ": " + msg.err.Error()
			m.addLog("error", m.loadErr)
			if m.sess.View() == session.ViewIdle {
				m.createLoadForm()
			}
			return m, nil
		}
		if err := m.sess.Load(msg.data); err != nil {
			m.loadErr = "Invalid payment request: " + err.Error()
			if m.sess.View() == session.ViewIdle {
				m.createLoadForm()
			}
			return m, nil
		}
		m.loadErr = ""
		m.copyErr = ""
		m.focusedNetwork = 0
		m.selectedAddr = 0
		m.reqGen++
		m.loadedAt = time.Now()
		req := m.sess.Request()
		m.addLog("success", "Loaded request: "+helpers.FormatAmount(req.Amount, req.Denomination))
		return m, nil

	case copyResultMsg:
		if msg.gen != m.reqGen {
			// the request was replaced while the write was in flight;
			// marking a slot of the new request would be wrong
			return m, nil
		}
		if msg.err != nil {
			m.copyErr = "Clipboard unavailable: " + msg.err.Error()
			m.addLog("error", m.copyErr)
			return m, nil
		}
		m.copyErr = ""
		seq := m.sess.MarkCopied(msg.entry)
		return m, expireCopied(seq)

	case copyExpiredMsg:
		m.sess.ExpireCopied(msg.seq)
		return m, nil

	case connectResultMsg:
		handleID := ""
		if msg.handle != nil {
			handleID = msg.handle.ID
		}
		if !m.sess.CompleteConnect(msg.seq, handleID, msg.err) {
			m.addLog("debug", "Dropped result of superseded connection attempt")
		}
		return m, nil

	case tea.KeyMsg:
		allowMenuHotkeys := m.loadForm == nil
		// global keys
		if allowMenuHotkeys {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit

			case "l", "L":
				return m, m.toggleLogger()

			case "pageup", "pagedown":
				// Allow scrolling in log viewport when enabled
				if m.logEnabled && m.logReady {
					var cmd tea.Cmd
					m.logViewport, cmd = m.logViewport.Update(msg)
					return m, cmd
				}
			}
		}

		// view-specific behavior
		switch m.sess.View() {

		case session.ViewIdle:
			// form handles its own keys; nothing else to do while idle
			return m, nil

		case session.ViewLoaded:
			return m.updateLoadedKeys(msg)

		case session.ViewModal:
			return m.updateModalKeys(msg)
		}
	}

	return m, nil
}

// updateBackground advances spinners regardless of the active view
func (m *model) updateBackground(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	cmds = append(cmds, cmd)
	if m.logEnabled && !m.logReady {
		m.logSpinner, cmd = m.logSpinner.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// toggleLogger flips the log panel on or off and persists the choice
func (m *model) toggleLogger() tea.Cmd {
	m.logEnabled = !m.logEnabled
	m.cfg.Logger = m.logEnabled
	config.Save(m.configPath, m.cfg)
	if m.logEnabled {
		if m.w > 0 {
			m.logViewport.Width = m.w - 6
		}
		m.logReady = false
		return tea.Batch(initLogViewport(), m.logSpinner.Tick)
	}
	// Clear logs and de-initialize when disabling
	if m.logBuffer != nil {
		m.logBuffer.Reset()
	}
	m.logger = nil
	m.logReady = false
	return nil
}

// updateLoadedKeys handles keys while the checkout summary is visible
func (m *model) updateLoadedKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	networks := session.Networks()

	switch msg.String() {
	case "left", "h":
		if m.focusedNetwork > 0 {
			m.focusedNetwork--
		}
		return m, nil

	case "right", "tab":
		if m.focusedNetwork < len(networks)-1 {
			m.focusedNetwork++
		}
		return m, nil

	case "1", "2":
		idx := int(msg.String()[0] - '1')
		if idx < len(networks) {
			m.focusedNetwork = idx
			return m, m.openModal(networks[idx])
		}
		return m, nil

	case "enter", " ":
		return m, m.openModal(networks[m.focusedNetwork])

	case "o":
		// reload the request file
		if m.requestPath != "" {
			m.loading = true
			m.addLog("info", "Reloading payment request")
			return m, loadRequestFile(m.requestPath)
		}
		return m, nil

	case "r":
		m.sess.Reset()
		m.reqGen++
		m.loadErr = ""
		m.copyErr = ""
		m.createLoadForm()
		m.addLog("warning", "Session reset")
		return m, nil
	}
	return m, nil
}

// updateModalKeys handles keys while an address modal is open
func (m *model) updateModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	network := m.sess.ModalNetwork()
	entries := m.sess.Book().Entries(network)

	switch msg.String() {
	case "up", "k":
		if m.selectedAddr > 0 {
			m.selectedAddr--
		}
		return m, nil

	case "down", "j":
		if m.selectedAddr < len(entries)-1 {
			m.selectedAddr++
		}
		return m, nil

	case "tab":
		// switch straight to the other network's modal
		other := otherNetwork(network)
		if err := m.sess.OpenModal(other); err == nil {
			m.selectedAddr = 0
			m.copyErr = ""
		}
		return m, nil

	case "v":
		m.showQR = !m.showQR
		return m, nil

	case "c":
		entry, err := m.sess.Book().EntryAt(network, m.selectedAddr)
		if err != nil || entry.Address == "" {
			m.copyErr = "Nothing to copy for this slot"
			return m, nil
		}
		return m, copyAddress(m.reqGen, entry)

	case "enter":
		entry, err := m.sess.Book().EntryAt(network, m.selectedAddr)
		if err != nil || entry.Address == "" {
			m.copyErr = "This address slot is not configured yet"
			return m, nil
		}
		seq, err := m.sess.BeginConnect(entry)
		if err != nil {
			if errors.Is(err, session.ErrInvalidTransition) {
				m.addLog("error", "Connect requested outside an open modal")
			}
			return m, nil
		}
		m.copyErr = ""
		return m, connectWallet(seq, entry, m.connectors[network])

	case "esc":
		m.sess.CloseModal()
		m.selectedAddr = 0
		m.copyErr = ""
		m.showQR = false
		return m, nil
	}
	return m, nil
}

func (m *model) openModal(n session.Network) tea.Cmd {
	if err := m.sess.OpenModal(n); err != nil {
		m.addLog("error", "Cannot open modal: "+err.Error())
		return nil
	}
	m.selectedAddr = 0
	m.copyErr = ""
	return nil
}

func otherNetwork(n session.Network) session.Network {
	if n == session.NetworkStellar {
		return session.NetworkUSDC
	}
	return session.NetworkStellar
}
