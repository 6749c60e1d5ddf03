package ui

import (
	"context"

	"factcheck/internal/claim"
	"factcheck/internal/config"
	"factcheck/internal/logging"
	"factcheck/internal/provider"
	"factcheck/internal/verify"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// =============================================================================
// MESSAGES
// =============================================================================

// verifyDoneMsg carries a provider completion back into the event loop.
type verifyDoneMsg struct {
	id     string
	result claim.Result
	err    error
}

// configReloadedMsg is sent when the config file changed on disk.
type configReloadedMsg struct {
	cfg *config.Config
}

type configErrorMsg struct {
	err error
}

// =============================================================================
// MODEL
// =============================================================================

// ProviderFactory rebuilds the provider after a config reload.
type ProviderFactory func(ctx context.Context, cfg *config.Config) (provider.Provider, error)

// Options configures a Model.
type Options struct {
	Provider provider.Provider
	Logger   *zap.Logger
	Styles   *Styles

	// Watcher and Rebuild enable live config reload. Both are optional.
	Watcher *config.Watcher
	Rebuild ProviderFactory
}

// Model is the bubbletea model for the claim checker.
type Model struct {
	ctx      context.Context
	provider provider.Provider
	rebuild  ProviderFactory
	watcher  *config.Watcher
	cfgLog   *zap.Logger

	ctrl  *verify.Controller
	panel *Panel

	textarea textarea.Model
	spinner  spinner.Model
	gauge    progress.Model
	result   viewport.Model
	styles   Styles

	width    int
	height   int
	quitting bool
}

// NewModel creates the interactive model.
func NewModel(ctx context.Context, opts Options) Model {
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ta := textarea.New()
	ta.Placeholder = "Enter a claim to fact-check... (Enter to verify, Esc to quit)"
	ta.CharLimit = 0 // the input guard truncates
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)
	ta.SetWidth(80)
	ta.SetHeight(4)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	gauge := progress.New(progress.WithoutPercentage(), progress.WithWidth(40))

	panel := &Panel{}
	return Model{
		ctx:      ctx,
		provider: opts.Provider,
		rebuild:  opts.Rebuild,
		watcher:  opts.Watcher,
		cfgLog:   logging.For(logger, logging.CategoryConfig),
		ctrl:     verify.NewController(panel, logger),
		panel:    panel,
		textarea: ta,
		spinner:  sp,
		gauge:    gauge,
		result:   viewport.New(80, 12),
		styles:   styles,
		width:    80,
	}
}

// Init starts the cursor blink and the config watcher listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.waitForConfig())
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.result, cmd = m.result.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		m.guardInput()
		return m, cmd

	case verifyDoneMsg:
		if msg.err != nil {
			m.ctrl.Reject(msg.id, msg.err)
		} else {
			m.ctrl.Resolve(msg.id, msg.result)
		}
		m.refreshResult()
		return m, nil

	case spinner.TickMsg:
		if !m.panel.Busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		return m, m.waitForConfig()

	case configErrorMsg:
		m.cfgLog.Warn("config reload failed", zap.Error(msg.err))
		return m, m.waitForConfig()

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// submit hands the claim to the controller and starts the provider call.
func (m Model) submit() (tea.Model, tea.Cmd) {
	req, ok := m.ctrl.Submit(m.textarea.Value())
	if !ok {
		return m, nil
	}
	m.refreshResult()
	return m, tea.Batch(m.verifyCmd(req), m.spinner.Tick)
}

func (m Model) verifyCmd(req verify.Request) tea.Cmd {
	p, ctx := m.provider, m.ctx
	return func() tea.Msg {
		if p == nil {
			return verifyDoneMsg{id: req.ID, err: provider.ErrUnavailable}
		}
		res, err := p.Verify(ctx, req.Claim)
		return verifyDoneMsg{id: req.ID, result: res, err: err}
	}
}

// guardInput enforces the character limit after an edit.
func (m *Model) guardInput() {
	e := m.ctrl.Input(m.textarea.Value())
	if e.OverLimit {
		m.textarea.SetValue(e.Text)
	}
}

func (m *Model) refreshResult() {
	m.result.SetContent(m.renderResult())
	if m.panel.takeScroll() {
		m.result.GotoTop()
	}
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	styles := NewStyles(ThemeFor(cfg.UI.IsDark()))
	m.styles = styles
	m.spinner.Style = styles.Spinner

	if m.rebuild == nil {
		return
	}
	p, err := m.rebuild(m.ctx, cfg)
	if err != nil {
		m.cfgLog.Warn("keeping previous provider", zap.Error(err))
		return
	}
	m.provider = p
	m.cfgLog.Info("provider reloaded", zap.String("kind", cfg.Provider.Kind))
}

func (m Model) waitForConfig() tea.Cmd {
	w := m.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg := <-w.Changes():
			return configReloadedMsg{cfg: cfg}
		case err := <-w.Errors():
			return configErrorMsg{err: err}
		case <-w.Done():
			return nil
		}
	}
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width, m.height = width, height

	inner := width - 6
	if inner < 20 {
		inner = 20
	}
	m.textarea.SetWidth(inner)
	m.gauge.Width = inner / 2
	m.result.Width = inner

	rh := height - 14
	if rh < 4 {
		rh = 4
	}
	m.result.Height = rh
	m.result.SetContent(m.renderResult())
}

// Controller exposes the workflow state.
func (m Model) Controller() *verify.Controller { return m.ctrl }

// Panel exposes the display surface.
func (m Model) Panel() *Panel { return m.panel }

// Run starts the interactive program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(NewModel(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
