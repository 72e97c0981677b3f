package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/tabdash/internal/executor"
	"github.com/leg100/tabdash/internal/logging"
	"github.com/leg100/tabdash/internal/tab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	mu   sync.Mutex
	runs []string
}

func (f *fakeRunner) Run(ctx context.Context, spec tab.Spec) executor.Result {
	f.mu.Lock()
	f.runs = append(f.runs, spec.Name)
	f.mu.Unlock()

	switch spec.Name {
	case "Broken":
		return executor.Result{
			Status: executor.Failed,
			Err:    errors.New("running nope: executable file not found in $PATH"),
		}
	case "Empty":
		return executor.Result{Status: executor.Succeeded}
	default:
		return executor.Result{
			Status: executor.Succeeded,
			Output: "output of " + spec.Name + "\n",
		}
	}
}

func (f *fakeRunner) Runs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.runs...)
}

func specs(names ...string) []tab.Spec {
	specs := make([]tab.Spec, len(names))
	for i, name := range names {
		specs[i] = tab.Spec{Name: name, Command: strings.ToLower(name), Enabled: true}
	}
	return specs
}

func newTestModel(t *testing.T, runner Runner, names ...string) Model {
	t.Helper()

	m, err := New(Options{
		Specs:  specs(names...),
		Runner: runner,
		Logger: logging.NewLogger(logging.Options{Level: "debug"}),
	})
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	return updated.(Model)
}

// results runs the command and any commands it batches, returning the
// results they produce.
func results(cmd tea.Cmd) []resultMsg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case resultMsg:
		return []resultMsg{msg}
	case tea.BatchMsg:
		var msgs []resultMsg
		for _, c := range msg {
			msgs = append(msgs, results(c)...)
		}
		return msgs
	default:
		return nil
	}
}

// press sends a key to the model, and delivers the result of any command that
// was run as a consequence.
func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()

	updated, cmd := m.Update(msg)
	m = updated.(Model)
	for _, res := range results(cmd) {
		updated, _ = m.Update(res)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func view(m Model) string {
	return ansi.Strip(m.View())
}

func TestNew_NoTabs(t *testing.T) {
	_, err := New(Options{Runner: &fakeRunner{}})
	assert.ErrorIs(t, err, tab.ErrNoTabs)
}

func TestModel_Init(t *testing.T) {
	runner := &fakeRunner{}
	m := newTestModel(t, runner, "Alpha", "Beta", "Gamma")

	assert.Contains(t, view(m), "running alpha")

	msgs := results(m.Init())
	require.Len(t, msgs, 1)
	assert.Equal(t, 1, msgs[0].frame)

	updated, _ := m.Update(msgs[0])
	m = updated.(Model)

	got := view(m)
	assert.Contains(t, got, "1.Alpha")
	assert.Contains(t, got, "2.Beta")
	assert.Contains(t, got, "3.Gamma")
	assert.Contains(t, got, "output of Alpha")
	assert.Contains(t, got, "succeeded in")
	assert.Contains(t, got, "1/3")
	assert.Equal(t, []string{"Alpha"}, runner.Runs())
}

func TestModel_Navigation(t *testing.T) {
	runner := &fakeRunner{}
	m := newTestModel(t, runner, "Alpha", "Beta", "Gamma")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.state.Index())
	assert.Contains(t, view(m), "output of Beta")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.state.Index())
	assert.Contains(t, view(m), "output of Gamma")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.state.Index(), "should wrap to first tab")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.state.Index(), "should wrap to last tab")

	m = press(t, m, runes("2"))
	assert.Equal(t, 1, m.state.Index())
	assert.Contains(t, view(m), "2/3")

	m = press(t, m, runes("9"))
	assert.Equal(t, 2, m.state.Index(), "should clamp to last tab")

	assert.Equal(t, []string{"Beta", "Gamma", "Alpha", "Gamma", "Beta", "Gamma"}, runner.Runs())
}

func TestModel_Refresh(t *testing.T) {
	runner := &fakeRunner{}
	m := newTestModel(t, runner, "Alpha", "Beta")

	m = press(t, m, runes("r"))
	m = press(t, m, runes("r"))

	assert.Equal(t, 0, m.state.Index())
	assert.Equal(t, []string{"Alpha", "Alpha"}, runner.Runs())
}

func TestModel_IgnoredKey(t *testing.T) {
	runner := &fakeRunner{}
	m := newTestModel(t, runner, "Alpha", "Beta")
	frame := m.frame

	m = press(t, m, runes("x"))
	m = press(t, m, runes("0"))

	assert.Equal(t, 0, m.state.Index())
	assert.Equal(t, frame, m.frame)
	assert.Empty(t, runner.Runs())
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, &fakeRunner{}, "Alpha")

		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestModel_DiscardStaleResult(t *testing.T) {
	m := newTestModel(t, &fakeRunner{}, "Alpha", "Beta")
	initial := results(m.Init())

	// Navigate before the initial result arrives.
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	latest := results(cmd)

	updated, _ = m.Update(initial[0])
	m = updated.(Model)
	assert.True(t, m.running)
	assert.NotContains(t, view(m), "output of Alpha")
	assert.Contains(t, view(m), "running beta")

	updated, _ = m.Update(latest[0])
	m = updated.(Model)
	assert.False(t, m.running)
	assert.Contains(t, view(m), "output of Beta")
}

func TestModel_FailedCommand(t *testing.T) {
	m := newTestModel(t, &fakeRunner{}, "Alpha", "Broken")

	m = press(t, m, runes("2"))

	got := view(m)
	assert.Contains(t, got, "2.Broken")
	assert.Contains(t, got, "Error: running nope: executable file not found")
	assert.Contains(t, got, "failed in")

	// dashboard keeps going
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Contains(t, view(m), "output of Alpha")
}

func TestModel_EmptyOutput(t *testing.T) {
	m := newTestModel(t, &fakeRunner{}, "Empty")

	m = press(t, m, runes("r"))

	got := view(m)
	assert.Contains(t, got, "1.Empty")
	assert.Contains(t, got, "succeeded in")
	assert.NotContains(t, got, "Error")
}

func TestModel_Help(t *testing.T) {
	m := newTestModel(t, &fakeRunner{}, "Alpha")

	m = press(t, m, runes("?"))
	assert.Contains(t, view(m), "NAVIGATION")

	m = press(t, m, runes("?"))
	assert.NotContains(t, view(m), "NAVIGATION")
}

func TestModel_Teatest(t *testing.T) {
	dir := t.TempDir()
	m, err := New(Options{
		Specs: []tab.Spec{
			{Name: "Greeting", Command: "echo", Args: []string{"hello", "world"}, Enabled: true},
			{Name: "Env", Command: "sh", Args: []string{"-c", "echo flavour is $FLAVOUR"}, Env: tab.Env{"FLAVOUR": "vanilla"}, Enabled: true},
			{Name: "Missing", Command: "tabdash-no-such-binary", Dir: dir, Enabled: true},
		},
		Runner: executor.New(executor.Options{Timeout: executor.DefaultTimeout}),
	})
	require.NoError(t, err)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 30))
	t.Cleanup(func() {
		tm.Quit()
	})

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "hello world")
	})

	tm.Type("2")
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "flavour is vanilla")
	})

	tm.Type("3")
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "Error: running tabdash-no-such-binary")
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyRight})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "hello world")
	})

	tm.Type("q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}

func waitFor(t *testing.T, tm *teatest.TestModel, cond func(s string) bool) {
	t.Helper()

	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return cond(ansi.Strip(string(b)))
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*10),
	)
}

// ctxRunner records the context each command is run with.
type ctxRunner struct {
	mu   sync.Mutex
	ctxs []context.Context
}

func (r *ctxRunner) Run(ctx context.Context, spec tab.Spec) executor.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctxs = append(r.ctxs, ctx)
	return executor.Result{Status: executor.Succeeded}
}

func TestModel_CancelSupersededFrame(t *testing.T) {
	runner := &ctxRunner{}
	m := newTestModel(t, runner, "Alpha", "Beta")

	// Start the first frame's command but don't deliver its result.
	results(m.Init())
	require.Len(t, runner.ctxs, 1)
	first := runner.ctxs[0]
	assert.NoError(t, first.Err())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	assert.ErrorIs(t, first.Err(), context.Canceled)

	msgs := results(cmd)
	require.Len(t, runner.ctxs, 2)
	assert.NoError(t, runner.ctxs[1].Err())

	updated, _ = m.Update(msgs[0])
	m = updated.(Model)
	assert.False(t, m.running)
}

// blockingRunner blocks every command until its context is canceled.
type blockingRunner struct {
	mu      sync.Mutex
	running int
	started int
}

func (r *blockingRunner) Run(ctx context.Context, spec tab.Spec) executor.Result {
	r.mu.Lock()
	r.running++
	r.started++
	r.mu.Unlock()

	<-ctx.Done()

	r.mu.Lock()
	r.running--
	r.mu.Unlock()
	return executor.Result{Status: executor.Failed, Err: ctx.Err()}
}

func (r *blockingRunner) counts() (running, started int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running, r.started
}

func TestModel_OneCommandAtATime(t *testing.T) {
	runner := &blockingRunner{}
	m := newTestModel(t, runner, "Alpha", "Beta", "Gamma")
	t.Cleanup(func() { m.cancel() })

	start := func(cmd tea.Cmd) {
		go results(cmd)
	}
	waitForCounts := func(running, started int) {
		t.Helper()
		assert.Eventually(t, func() bool {
			gotRunning, gotStarted := runner.counts()
			return gotRunning == running && gotStarted == started
		}, time.Second, 10*time.Millisecond)
	}

	start(m.Init())
	for i := 1; i <= 5; i++ {
		waitForCounts(1, i)

		updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
		m = updated.(Model)

		// the previous command is interrupted before the next one starts
		waitForCounts(0, i)
		start(cmd)
	}
	waitForCounts(1, 6)
}

func TestModel_CommandLineInBorder(t *testing.T) {
	m, err := New(Options{
		Specs: []tab.Spec{
			{Name: "Disk", Command: "df", Args: []string{"-h"}, Enabled: true},
		},
		Runner: &fakeRunner{},
	})
	require.NoError(t, err)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = press(t, updated.(Model), runes("r"))

	var top string
	for _, line := range strings.Split(view(m), "\n") {
		if strings.HasPrefix(line, "╭") {
			top = line
		}
	}
	assert.Contains(t, top, "1.Disk")
	assert.Contains(t, top, "df -h")
}
