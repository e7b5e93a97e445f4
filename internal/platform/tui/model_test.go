package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/detector-run/internal/core"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	resets  int
	resized [][2]int
	steps   [][]core.Action
	next    core.StepResult
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Resize(cols, rows int)    { g.resized = append(g.resized, [2]int{cols, rows}) }
func (g *fakeGame) State() core.GameState    { return g.next.State }
func (g *fakeGame) Render(dst core.Surface)  { dst.DrawText(0, 0, "frame", core.ColorWhite) }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	var actions []core.Action
	for _, a := range []core.Action{core.ActionJump, core.ActionRestart, core.ActionPause} {
		if in.Has(a) {
			actions = append(actions, a)
		}
	}
	g.steps = append(g.steps, actions)
	return g.next
}

type recordedCues struct {
	played []core.Event
}

func (c *recordedCues) Play(e core.Event) { c.played = append(c.played, e) }

func newTestModel(t *testing.T) (Model, *fakeGame, *recordedCues) {
	t.Helper()
	g := &fakeGame{}
	cues := &recordedCues{}
	m := NewModel(g, cues, log.New(io.Discard), core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1})
	m.shotDir = t.TempDir()
	return m, g, cues
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestInputReachesNextTick(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"left click", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionJump},
		{"restart key", runeKey('r'), core.ActionRestart},
		{"pause key", runeKey('p'), core.ActionPause},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, g, _ := newTestModel(t)

			m, _ = update(t, m, tc.msg)
			m, cmd := update(t, m, TickMsg{})
			if cmd == nil {
				t.Error("tick should schedule the next frame")
			}
			_, _ = update(t, m, TickMsg{})

			if len(g.steps) != 2 {
				t.Fatalf("expected 2 steps, got %d", len(g.steps))
			}
			if len(g.steps[0]) != 1 || g.steps[0][0] != tc.want {
				t.Errorf("first step actions = %v, expected [%v]", g.steps[0], tc.want)
			}
			if len(g.steps[1]) != 0 {
				t.Errorf("input not cleared after tick: %v", g.steps[1])
			}
		})
	}
}

func TestMouseReleaseIgnored(t *testing.T) {
	m, g, _ := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	_, _ = update(t, m, TickMsg{})

	if len(g.steps[0]) != 0 {
		t.Errorf("release should not jump, got %v", g.steps[0])
	}
}

func TestTickPlaysCuesAndRotatesRunID(t *testing.T) {
	m, g, cues := newTestModel(t)
	firstRun := m.runID

	g.next = core.StepResult{Events: []core.Event{core.EventHazard, core.EventGameOver}}
	m, _ = update(t, m, TickMsg{})
	if m.runID != firstRun {
		t.Error("run ID changed without a restart")
	}

	g.next = core.StepResult{Events: []core.Event{core.EventRestart}}
	m, _ = update(t, m, TickMsg{})

	want := []core.Event{core.EventHazard, core.EventGameOver, core.EventRestart}
	if len(cues.played) != len(want) {
		t.Fatalf("played %v, expected %v", cues.played, want)
	}
	for i := range want {
		if cues.played[i] != want[i] {
			t.Errorf("cue %d = %v, expected %v", i, cues.played[i], want[i])
		}
	}
	if m.runID == firstRun {
		t.Error("restart should start a new run ID")
	}
}

func TestResizeKeepsRound(t *testing.T) {
	m, g, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if len(g.resized) != 1 || g.resized[0] != [2]int{100, 29} {
		t.Errorf("game resized with %v, expected [100 29]", g.resized)
	}
	if g.resets != 0 {
		t.Error("resize should not reset the round")
	}
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewHasFooter(t *testing.T) {
	m, _, _ := newTestModel(t)

	out := m.View()

	if !strings.Contains(out, "frame") {
		t.Error("view missing game frame")
	}
	if !strings.Contains(out, "jump/restart") {
		t.Error("view missing help footer")
	}
}

func TestScreenshot(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.shotDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "fake_") {
		t.Fatalf("expected one fake_*.txt screenshot, got %v", entries)
	}
	data, err := os.ReadFile(filepath.Join(m.shotDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "frame") {
		t.Errorf("screenshot content = %q", data)
	}
}

func TestInitResetsGameAndStartsTicking(t *testing.T) {
	m, g, _ := newTestModel(t)

	cmd := m.Init()

	if g.resets != 1 {
		t.Errorf("Init reset the game %d times, expected 1", g.resets)
	}
	if cmd == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestZeroSeedBecomesTimeBased(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, log.New(io.Discard), core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60})

	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
	if _, ok := m.cues.(silentCues); !ok {
		t.Errorf("nil cue player should become silent, got %T", m.cues)
	}
}
