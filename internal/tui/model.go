// Package tui implements the dashboard: a strip of tabs above a pane showing
// the output of the active tab's command.
package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/davecgh/go-spew/spew"
	"github.com/leg100/tabdash/internal/executor"
	"github.com/leg100/tabdash/internal/logging"
	"github.com/leg100/tabdash/internal/tab"
	"github.com/leg100/tabdash/internal/tui/keys"
)

// Runner runs a tab's command.
type Runner interface {
	Run(ctx context.Context, spec tab.Spec) executor.Result
}

type Options struct {
	// Context is used to cancel any running command when the program exits.
	Context context.Context
	// Specs are the enabled tabs.
	Specs  []tab.Spec
	Runner Runner
	Logger *logging.Logger
	// Dump, if non-nil, receives a dump of every message received.
	Dump io.Writer
}

// Model is the top-level TUI model.
type Model struct {
	ctx    context.Context
	specs  []tab.Spec
	state  *tab.State
	runner Runner
	logger *logging.Logger

	// frame is incremented upon every input that changes which output should
	// be shown. Results belonging to earlier frames are discarded.
	frame int
	// frameCtx is canceled when the frame is superseded, interrupting its
	// command.
	frameCtx context.Context
	cancel   context.CancelFunc

	running bool
	// result of the current frame; only valid once running is false.
	result executor.Result

	viewport viewport.Model
	spinner  spinner.Model

	width    int
	height   int
	showHelp bool

	dump io.Writer
}

// New constructs the top-level TUI model. The first tab is active, and its
// command runs as soon as the model is initialized.
func New(opts Options) (Model, error) {
	state, err := tab.NewState(tab.Titles(opts.Specs))
	if err != nil {
		return Model{}, err
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewLogger(logging.Options{Level: logging.DefaultLevel})
	}

	vp := viewport.New(0, 0)
	vp.KeyMap.Up = keys.Navigation.LineUp
	vp.KeyMap.Down = keys.Navigation.LineDown
	vp.KeyMap.PageUp = keys.Navigation.PageUp
	vp.KeyMap.PageDown = keys.Navigation.PageDown

	frameCtx, cancel := context.WithCancel(opts.Context)

	return Model{
		ctx:      opts.Context,
		frameCtx: frameCtx,
		cancel:   cancel,
		specs:    opts.Specs,
		state:    state,
		runner:   opts.Runner,
		logger:   opts.Logger,
		frame:    1,
		running:  true,
		viewport: vp,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		dump:     opts.Dump,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.run(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Global.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Global.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, keys.Global.Refresh):
			return m, m.newFrame()
		case key.Matches(msg, keys.Navigation.TabNext):
			m.state.Next()
			return m, m.newFrame()
		case key.Matches(msg, keys.Navigation.TabPrevious):
			m.state.Previous()
			return m, m.newFrame()
		case key.Matches(msg, keys.Navigation.TabJump):
			n, _ := keys.Digit(msg)
			m.state.Jump(n)
			return m, m.newFrame()
		case key.Matches(msg, keys.Navigation.GotoTop):
			m.viewport.GotoTop()
		case key.Matches(msg, keys.Navigation.GotoBottom):
			m.viewport.GotoBottom()
		default:
			// Remaining keys may scroll the output.
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(0, m.width-2-ScrollbarWidth)
		m.viewport.Height = max(0, m.paneHeight()-2)
		m.setContent()
	case resultMsg:
		if msg.frame != m.frame {
			m.logger.Debug("discarding result from earlier frame", "frame", msg.frame, "current", m.frame)
			return m, nil
		}
		// Command has finished; release the frame's context.
		m.cancel()
		m.running = false
		m.result = msg.result
		m.setContent()
		m.viewport.GotoTop()
	case spinner.TickMsg:
		if !m.running {
			// Let the spinner stop.
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// newFrame starts a new frame, running the active tab's command. The command of
// the previous frame, if still running, is interrupted.
func (m *Model) newFrame() tea.Cmd {
	wasRunning := m.running
	m.cancel()
	m.frameCtx, m.cancel = context.WithCancel(m.ctx)
	m.frame++
	m.running = true
	if wasRunning {
		// spinner is already spinning
		return m.run()
	}
	return tea.Batch(m.run(), m.spinner.Tick)
}

// run returns a command that runs the active tab's command for the current
// frame.
func (m Model) run() tea.Cmd {
	var (
		ctx    = m.frameCtx
		frame  = m.frame
		spec   = m.activeSpec()
		runner = m.runner
	)
	return func() tea.Msg {
		return resultMsg{frame: frame, result: runner.Run(ctx, spec)}
	}
}

func (m Model) activeSpec() tab.Spec {
	return m.specs[m.state.Index()]
}

// setContent populates the viewport with the result, wrapped to fit and
// rendered in the tab's color.
func (m *Model) setContent() {
	var (
		w      = m.viewport.Width
		output = strings.TrimSuffix(m.result.Output, "\n")
		style  = Regular.Foreground(OutputColor(m.activeSpec().Color))
	)
	if w > 0 {
		// Wrap content to the width of the viewport, whilst respecting ANSI
		// escape codes (i.e. don't split codes across lines).
		output = ansi.Wrap(ansi.Wordwrap(output, w, ""), w, "")
	}
	var lines []string
	if output != "" || m.result.Err == nil {
		lines = strings.Split(SanitizeColors(output), "\n")
		for i, line := range lines {
			lines[i] = style.Render(line)
		}
		if m.result.Err != nil {
			lines = append(lines, "")
		}
	}
	if m.result.Err != nil {
		errStyle := Regular.Foreground(Red)
		if w > 0 {
			errStyle = errStyle.Width(w)
		}
		lines = append(lines, errStyle.Render("Error: "+m.result.Err.Error()))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// paneHeight is the height of the output pane including its borders.
func (m Model) paneHeight() int {
	return max(0, m.height-tabStripHeight-footerHeight)
}
