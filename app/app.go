package app

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hermes-gcs/config"
	"hermes-gcs/inspect"
	"hermes-gcs/keys"
	"hermes-gcs/log"
	"hermes-gcs/panel"
	"hermes-gcs/ui"
	"hermes-gcs/ui/overlay"
)

// Run is the main entrypoint into the console. configUpdates may be nil; when
// set, reloaded configs are applied live (snap threshold only).
func Run(ctx context.Context, cfg *config.Config, configUpdates <-chan *config.Config) error {
	p := tea.NewProgram(
		newHome(ctx, cfg, configUpdates),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // drag needs motion-while-pressed events
	)
	_, err := p.Run()
	return err
}

type home struct {
	ctx context.Context

	appConfig     *config.Config
	configUpdates <-chan *config.Config

	// engine owns all panel/icon geometry; home only routes events to it
	// and renders whatever the surface holds.
	engine    *panel.Engine
	surface   *consoleSurface
	scheduler *frameScheduler

	// -- UI Components --

	backdrop  *ui.Backdrop
	statusBar *ui.StatusBar
	menu      *ui.Menu
	panelView *ui.PanelView
	iconView  *ui.IconView
	// spinner shown while waiting for the first usable viewport size
	spinner spinner.Model

	termWidth, termHeight int
}

func newHome(ctx context.Context, cfg *config.Config, configUpdates <-chan *config.Config) *home {
	surface := newConsoleSurface()
	scheduler := &frameScheduler{}
	engine := panel.New(surface, scheduler, panel.Options{
		SnapThreshold:  float64(cfg.EffectiveSnapThreshold()),
		EdgeMargin:     float64(cfg.EdgeMargin),
		PanelWidth:     float64(cfg.PanelWidth),
		PanelHeight:    float64(cfg.PanelHeight),
		IconWidth:      float64(cfg.IconWidth),
		IconHeight:     float64(cfg.IconHeight),
		TitlebarHeight: ui.TitlebarRows,
		MinPanelWidth:  float64(cfg.PanelWidth) / 2,
		MinPanelHeight: float64(cfg.PanelHeight) / 2,
	})

	return &home{
		ctx:           ctx,
		appConfig:     cfg,
		configUpdates: configUpdates,
		engine:        engine,
		surface:       surface,
		scheduler:     scheduler,
		backdrop:      ui.NewBackdrop(cfg.RobotName),
		statusBar:     &ui.StatusBar{},
		menu:          ui.NewMenu(),
		panelView:     ui.NewPanelView(),
		iconView:      ui.NewIconView(),
		spinner:       spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

// frameScheduler satisfies panel.FrameScheduler. The engine requests at most
// one frame per window; Update converts the flag into a tea.Tick.
type frameScheduler struct {
	pending bool
}

func (f *frameScheduler) RequestFrame() {
	f.pending = true
}

func (f *frameScheduler) consume() bool {
	p := f.pending
	f.pending = false
	return p
}

// frameMsg fires the coalesced drag relocation for the current frame window.
type frameMsg struct{}

// settleMsg fires after the resize quiet period. gen guards against stale
// timers from earlier resize bursts.
type settleMsg struct {
	gen uint64
}

// configReloadMsg carries a config re-read from disk.
type configReloadMsg struct {
	cfg *config.Config
}

// clearNoticeMsg clears the transient status bar message.
type clearNoticeMsg struct{}

// initRetryMsg re-attempts the deferred first placement while the terminal
// has not reported a usable size yet.
type initRetryMsg struct{}

const initRetryDelay = 100 * time.Millisecond

func (m *home) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.initRetry(), m.waitForConfigReload())
}

func (m *home) initRetry() tea.Cmd {
	return tea.Tick(initRetryDelay, func(time.Time) tea.Msg {
		return initRetryMsg{}
	})
}

// waitForConfigReload blocks on the config watcher channel, if any.
func (m *home) waitForConfigReload() tea.Cmd {
	if m.configUpdates == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case cfg, ok := <-m.configUpdates:
			if !ok || cfg == nil {
				return nil
			}
			return configReloadMsg{cfg: cfg}
		}
	}
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleWindowSize(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case initRetryMsg:
		if m.engine.Initialized() {
			return m, nil
		}
		if !m.engine.Initialize() {
			return m, m.initRetry()
		}
		m.autoSnapshot()
		return m, nil
	case frameMsg:
		m.engine.Frame()
		m.autoSnapshot()
		return m, m.framePump()
	case settleMsg:
		m.engine.SettleResize(msg.gen)
		m.autoSnapshot()
		return m, nil
	case configReloadMsg:
		m.appConfig = msg.cfg
		m.engine.SetSnapThreshold(float64(msg.cfg.EffectiveSnapThreshold()))
		log.InfoLog.Printf("config reloaded, snap threshold now %d", msg.cfg.EffectiveSnapThreshold())
		return m, tea.Batch(m.waitForConfigReload(), m.notice("config reloaded"))
	case clearNoticeMsg:
		m.statusBar.SetNotice("")
		return m, nil
	case spinner.TickMsg:
		if m.engine.Initialized() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleWindowSize resizes the static components and either performs the
// deferred first placement or schedules a settle pass for the new viewport.
func (m *home) handleWindowSize(msg tea.WindowSizeMsg) tea.Cmd {
	m.termWidth = msg.Width
	m.termHeight = msg.Height
	m.surface.setViewport(msg.Width, msg.Height)

	// backdrop fills everything above the menu and status rows
	m.backdrop.SetSize(msg.Width, msg.Height-2)
	m.menu.SetSize(msg.Width, 1)
	m.statusBar.SetSize(msg.Width)

	if !m.engine.Initialized() {
		if m.engine.Initialize() {
			m.autoSnapshot()
		}
		return nil
	}

	gen := m.engine.ViewportResized()
	delay := m.appConfig.SettleDelay()
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return settleMsg{gen: gen}
	})
}

func (m *home) handleMouse(msg tea.MouseMsg) tea.Cmd {
	log.InputTrace("mouse %s at %d,%d", msg.String(), msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		switch target := m.surface.hitTest(msg.X, msg.Y); target {
		case panel.TargetMinimize:
			m.engine.ToggleVisibility()
		case panel.TargetTitlebar, panel.TargetIcon:
			m.engine.PointerDown(float64(msg.X), float64(msg.Y), target)
		}
	case tea.MouseActionMotion:
		m.engine.PointerMove(float64(msg.X), float64(msg.Y))
	case tea.MouseActionRelease:
		if !m.engine.Dragging() {
			return nil
		}
		iconClick := m.engine.DragTarget() == panel.TargetIcon && !m.engine.DragMoved()
		m.engine.PointerUp()
		if iconClick {
			m.engine.ToggleVisibility()
		}
		m.autoSnapshot()
	}
	return m.framePump()
}

// framePump turns a pending engine frame request into a tick on the
// configured frame interval.
func (m *home) framePump() tea.Cmd {
	if !m.scheduler.consume() {
		return nil
	}
	return tea.Tick(m.appConfig.FrameInterval(), func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := float64(m.appConfig.NudgeStep)

	switch {
	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyQuit]):
		return m, tea.Quit
	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyNudgeUp]):
		m.engine.Nudge(0, -step)
	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyNudgeDown]):
		m.engine.Nudge(0, step)
	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyNudgeLeft]):
		m.engine.Nudge(-step, 0)
	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyNudgeRight]):
		m.engine.Nudge(step, 0)
	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyGrow]):
		// keep the terminal cell aspect roughly square: cells are about
		// twice as tall as wide
		m.engine.ResizePanel(4, 2)
	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyShrink]):
		m.engine.ResizePanel(-4, -2)
	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyMinimize]):
		m.engine.ToggleVisibility()
	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyCopyPlacement]):
		return m, m.copyPlacement()
	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyInspect]):
		return m, m.dumpSnapshot()
	}
	m.autoSnapshot()
	return m, nil
}

// copyPlacement puts the saved anchor percentages on the system clipboard.
func (m *home) copyPlacement() tea.Cmd {
	leftPct, topPct, ok := m.engine.Placement()
	if !ok {
		return m.notice("no placement saved yet")
	}
	text := fmt.Sprintf("left=%.2f%% top=%.2f%% snap=%s", leftPct, topPct, m.engine.Snap())
	if err := clipboard.WriteAll(text); err != nil {
		log.WarningLog.Printf("clipboard write failed: %v", err)
		return m.notice("clipboard unavailable")
	}
	return m.notice("copied " + text)
}

// dumpSnapshot writes a geometry snapshot when inspection is enabled.
func (m *home) dumpSnapshot() tea.Cmd {
	if !inspect.IsEnabled() {
		return m.notice("inspection disabled (set " + inspect.EnvVar + "=1)")
	}
	snap := inspect.NewSnapshot().
		WithTerminal(m.termWidth, m.termHeight).
		WithEngine(m.engine, m.surface.panelRect, m.surface.iconRect).
		WithLayout(m.surface.orientation)
	if err := inspect.WriteSnapshot(snap); err != nil {
		log.ErrorLog.Printf("snapshot write failed: %v", err)
		return m.notice("snapshot failed")
	}
	return m.notice("snapshot written to " + inspect.GetInspectFile())
}

// autoSnapshot keeps the inspection file current after any applied geometry
// change. No-op unless inspection is enabled.
func (m *home) autoSnapshot() {
	if !inspect.IsEnabled() || !m.engine.Initialized() {
		return
	}
	snap := inspect.NewSnapshot().
		WithTerminal(m.termWidth, m.termHeight).
		WithEngine(m.engine, m.surface.panelRect, m.surface.iconRect).
		WithLayout(m.surface.orientation)
	if err := inspect.WriteSnapshot(snap); err != nil {
		log.WarningLog.Printf("snapshot write failed: %v", err)
	}
}

// notice shows a transient status bar message for a few seconds.
func (m *home) notice(text string) tea.Cmd {
	m.statusBar.SetNotice(text)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}
		return clearNoticeMsg{}
	}
}

func (m *home) View() string {
	start := time.Now()
	defer func() { log.GetProfiler().RecordFrame(time.Since(start)) }()

	if m.termWidth <= 0 || m.termHeight <= 0 || !m.engine.Initialized() {
		return m.spinner.View() + " waiting for terminal size..."
	}

	// status readouts come from the engine, never from the rendered text
	if leftPct, topPct, ok := m.engine.Placement(); ok {
		m.statusBar.SetPlacement(leftPct, topPct)
	}
	m.statusBar.SetEngineState(
		m.engine.Snap().String(),
		m.surface.orientation.String(),
		m.engine.Visibility().String(),
	)

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.backdrop.String(),
		m.menu.String(),
		m.statusBar.String(),
	)

	if m.surface.panelShown {
		r := m.surface.panelRect
		m.panelView.SetSize(int(r.Width), int(r.Height))
		m.panelView.SetOrientation(m.surface.orientation)
		m.panelView.SetSnapPreview(m.surface.snapPreview)
		view = overlay.PlaceOverlay(int(r.Left), int(r.Top), m.panelView.String(), view)
	}
	if m.surface.iconShown {
		r := m.surface.iconRect
		m.iconView.SetSize(int(r.Width), int(r.Height))
		view = overlay.PlaceOverlay(int(r.Left), int(r.Top), m.iconView.String(), view)
	}
	return view
}
