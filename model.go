package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"payment-checkout-tui/config"
	"payment-checkout-tui/connector"
	"payment-checkout-tui/helpers"
	"payment-checkout-tui/session"
	"payment-checkout-tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- MODEL --------------------

// model represents the application state following The Elm Architecture.
// All payment-session state lives in sess; the model adds presentation
// concerns only.
type model struct {
	w, h int

	// payment session core
	sess *session.Session

	// request loading
	requestPath string
	loading     bool
	loadedAt    time.Time
	loadErr     string
	loadForm    *huh.Form

	// reqGen is bumped whenever the request is replaced or reset, so
	// async results dispatched against an earlier request can be dropped.
	reqGen uint64

	// checkout state
	focusedNetwork int // index into session.Networks()
	selectedAddr   int // cursor inside the open modal
	showQR         bool
	copyErr        string

	// wallet connectors, one per settlement network
	connectors map[session.Network]connector.Connector

	spin spinner.Model

	// settings
	configPath string
	cfg        config.Config

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model
}

// -------------------- INIT --------------------

// temporary form field storage (package-level to avoid pointer-to-copy issues)
var tempRequestPath string

func (m *model) createLoadForm() {
	tempRequestPath = m.requestPath

	m.loadForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Payment Request").
				Description("Path to the merchant's payment request JSON").
				Value(&tempRequestPath).
				Placeholder("request.json"),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.loadForm.Init()
}

// newModel creates and initializes a new model with configuration from disk
func newModel(requestPath string) *model {
	// config path
	homeDir, _ := os.UserHomeDir()
	configPath := filepath.Join(homeDir, ".payment-checkout-config.json")

	cfg := config.LoadOrCreate(configPath)

	if requestPath == "" {
		requestPath = cfg.RequestPath
	}

	// spinner
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	// Initialize log viewport
	vp := viewport.New(0, 20) // Will be resized in Update on first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	// Initialize log spinner
	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	timeout := time.Duration(cfg.ConnectTimeout) * time.Second

	m := &model{
		sess:        session.New(),
		requestPath: requestPath,
		configPath:  configPath,
		cfg:         cfg,
		spin:        sp,
		connectors: map[session.Network]connector.Connector{
			session.NetworkStellar: connector.WithTimeout(connector.NewStellar(cfg.HorizonURL), timeout),
			session.NetworkUSDC:    connector.WithTimeout(connector.NewUSDC(cfg.EthRPCURL, cfg.USDCToken), timeout),
		},
		logEnabled:  cfg.Logger,
		logViewport: vp,
		logBuffer:   &strings.Builder{},
		logSpinner:  logSpin,
	}

	m.sess.Events = m.onSessionEvent
	if m.requestPath == "" {
		m.createLoadForm()
	}

	return m
}

// onSessionEvent mirrors session lifecycle events into the log panel
func (m *model) onSessionEvent(e session.Event) {
	switch e.Type {
	case session.EventValidationFailed:
		m.addLog("error", "Request rejected: "+e.Err.Error())
	case session.EventModalOpened:
		m.addLog("info", "Opened "+string(e.Network)+" address list")
	case session.EventModalClosed:
		m.addLog("info", "Closed "+string(e.Network)+" address list")
	case session.EventAddressCopied:
		m.addLog("success", "Copied "+helpers.ShortenAddr(e.Address))
	case session.EventConnectionStarted:
		m.addLog("info", "Connecting wallet to "+helpers.ShortenAddr(e.Address)+" on "+string(e.Network))
	case session.EventConnectionSucceeded:
		m.addLog("success", "Wallet connected, handle "+e.HandleID)
	case session.EventConnectionFailed:
		m.addLog("error", "Wallet connection failed: "+e.Err.Error())
	}
}

// Init implements tea.Model interface and returns initial commands
func (m *model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	// load the request straight away if a path is known
	if m.requestPath != "" {
		m.loading = true
		cmds = append(cmds, loadRequestFile(m.requestPath))
	}
	return tea.Batch(cmds...)
}
