package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/routeviz/internal/config"
	"github.com/san-kum/routeviz/internal/playback"
	"github.com/san-kum/routeviz/internal/route"
	"github.com/san-kum/routeviz/internal/scene"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 9
	sc := scene.New(cfg)
	sc.SetRoute(route.New("VAN-7", []route.Stop{
		{OrderID: "A1", Customer: "Ada", Lat: 51.50, Lng: -0.12, Status: "pending"},
		{OrderID: "B2", Customer: "Bo", Lat: 51.52, Lng: -0.10, Paid: true},
		{OrderID: "C3", Customer: "Cy", Lat: 51.51, Lng: -0.08},
	}))
	m := NewModel(sc, 60)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestResizeBuildsCanvas(t *testing.T) {
	m := newTestModel(t)
	if m.canvas == nil {
		t.Fatal("expected canvas after resize")
	}
	if m.canvas.Cols != 120-panelWidth-3 || m.canvas.Rows != 40-canvasTop-1 {
		t.Errorf("unexpected canvas %dx%d", m.canvas.Cols, m.canvas.Rows)
	}
	w, h := m.canvas.Size()
	vp := m.scene.Viewport()
	if vp.Width != w || vp.Height != h {
		t.Errorf("viewport %dx%d does not match canvas %dx%d", vp.Width, vp.Height, w, h)
	}
}

func TestStaleFrameDropped(t *testing.T) {
	m := newTestModel(t)
	if _, cmd := m.Update(frameMsg{gen: m.frameGen - 1}); cmd != nil {
		t.Error("stale frame should not reschedule")
	}
	next, cmd := m.Update(frameMsg{gen: m.frameGen})
	if cmd == nil {
		t.Error("live frame should reschedule")
	}
	if next.(Model).scene.Frames() != 1 {
		t.Error("live frame should step the scene")
	}
}

func TestFrameRecordsEdges(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 3; i++ {
		next, _ := m.Update(frameMsg{gen: m.frameGen})
		m = next.(Model)
	}
	if len(m.edges) != 3 {
		t.Errorf("expected 3 edge samples, got %d", len(m.edges))
	}
	if m.last.Markers != 3 {
		t.Errorf("expected 3 markers, got %d", m.last.Markers)
	}
}

func TestTogglePlayback(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("play should schedule a timer")
	}
	id, ok := m.scene.Playback().ActiveTimer()
	if !ok {
		t.Fatal("expected a live timer")
	}

	next, cmd = m.Update(playMsg{id: id})
	m = next.(Model)
	if cmd == nil || m.scene.Playback().Status().Index != 1 {
		t.Errorf("tick should advance and reschedule, index %d", m.scene.Playback().Status().Index)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if _, cmd := m.Update(playMsg{id: id}); cmd != nil {
		t.Error("tick after pause should not reschedule")
	}
	if s := m.scene.Playback().Status(); s.State != playback.Paused || s.Index != 1 {
		t.Errorf("expected Paused(1), got %s(%d)", s.State, s.Index)
	}
}

func TestPlayThroughStopsItself(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	id, _ := m.scene.Playback().ActiveTimer()

	next, _ = m.Update(playMsg{id: id})
	m = next.(Model)
	if _, cmd := m.Update(playMsg{id: id}); cmd != nil {
		t.Error("last tick should not reschedule")
	}
	if s := m.scene.Playback().Status(); s.Index != 2 || s.Playing() {
		t.Errorf("expected stop at the end, got %s(%d)", s.State, s.Index)
	}
}

func TestStepAndReset(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(runes("n"))
	next, _ = next.Update(runes("n"))
	m = next.(Model)
	if got := m.scene.Playback().Status().Index; got != 2 {
		t.Errorf("expected index 2, got %d", got)
	}
	next, _ = m.Update(runes("p"))
	m = next.(Model)
	if got := m.scene.Playback().Status().Index; got != 1 {
		t.Errorf("expected index 1, got %d", got)
	}
	next, _ = m.Update(runes("r"))
	m = next.(Model)
	if s := m.scene.Playback().Status(); s.Index != 0 || s.State != playback.Stopped {
		t.Errorf("expected Stopped(0), got %s(%d)", s.State, s.Index)
	}
}

func TestClickSelectsStop(t *testing.T) {
	m := newTestModel(t)
	pts := m.scene.Points()
	head := route.HeadCenter(pts[1])
	col := int(head.X / (2 * pixelScale))
	row := int(head.Y/(4*pixelScale)) + canvasTop

	next, _ := m.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	if m.selected != 1 {
		t.Fatalf("expected stop 1 selected, got %d", m.selected)
	}
	if !strings.Contains(m.View(), "Order ID: B2") {
		t.Error("popup should describe the selected stop")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if next.(Model).selected != -1 {
		t.Error("esc should close the popup")
	}
}

func TestLinkAndTheme(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(runes("o"))
	m = next.(Model)
	if !strings.HasPrefix(m.notice, "https://www.google.com/maps/dir/51.5,-0.12/") {
		t.Errorf("unexpected link %q", m.notice)
	}

	before := m.theme.Name
	next, _ = m.Update(runes("t"))
	m = next.(Model)
	if m.theme.Name == before || m.scene.Theme().Name != m.theme.Name {
		t.Errorf("theme did not cycle: %s -> %s", before, m.theme.Name)
	}
}

func TestViewShowsCurrentStop(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(frameMsg{gen: m.frameGen})
	view := next.(Model).View()
	for _, want := range []string{"Stop 1: Ada", "STOPPED", "Start Point", "VAN-7"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
