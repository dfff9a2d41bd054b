package viz

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/routeviz/internal/playback"
	"github.com/san-kum/routeviz/internal/route"
	"github.com/san-kum/routeviz/internal/scene"
	"github.com/san-kum/routeviz/internal/surface"
)

const (
	panelWidth  = 40
	pixelScale  = 4.0
	canvasTop   = 1 // header rows above the canvas
	edgeHistory = 120
	minCols     = 10
	minRows     = 4
)

// frameMsg drives the backdrop. gen ties it to one frame loop; messages
// from a retired loop are dropped without rescheduling.
type frameMsg struct{ gen uint64 }

// playMsg is one playback timer firing.
type playMsg struct{ id playback.TimerID }

// Model is the terminal host: a braille map on the left, the stop panel on
// the right.
type Model struct {
	scene    *scene.Scene
	glide    *scene.Glide
	canvas   *surface.Braille
	keys     keyMap
	help     help.Model
	progress progress.Model
	theme    Theme
	styles   styles

	fps           int
	width, height int
	frameGen      uint64
	last          scene.Stats
	edges         []float64
	selected      int
	notice        string
}

func NewModel(sc *scene.Scene, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	m := Model{
		scene:    sc,
		glide:    scene.NewGlide(fps),
		keys:     defaultKeys(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(panelWidth-6)),
		fps:      fps,
		edges:    make([]float64, 0, edgeHistory),
		selected: -1,
	}
	m.applyTheme()
	return m
}

func (m *Model) applyTheme() {
	m.theme = ThemeFor(m.scene.Theme())
	m.styles = newStyles(m.theme)
}

func (m Model) Init() tea.Cmd {
	return m.frameTick()
}

func (m Model) frameTick() tea.Cmd {
	gen := m.frameGen
	return tea.Tick(time.Second/time.Duration(m.fps), func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}

func (m Model) playTick(id playback.TimerID) tea.Cmd {
	return tea.Tick(m.scene.Playback().Interval(), func(time.Time) tea.Msg { return playMsg{id: id} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		// restart the frame loop so exactly one is live after a resize
		m.frameGen++
		return m, m.frameTick()

	case frameMsg:
		if msg.gen != m.frameGen {
			return m, nil
		}
		m.frame()
		return m, m.frameTick()

	case playMsg:
		if m.scene.Playback().Tick(msg.id) {
			return m, m.playTick(msg.id)
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(msg.X, msg.Y)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := m.scene.Playback()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		if id, ok := ctrl.Toggle(); ok {
			return m, m.playTick(id)
		}
	case key.Matches(msg, m.keys.Reset):
		ctrl.Reset()
		m.selected = -1
	case key.Matches(msg, m.keys.Next):
		ctrl.Seek(ctrl.Status().Index + 1)
	case key.Matches(msg, m.keys.Prev):
		ctrl.Seek(ctrl.Status().Index - 1)
	case key.Matches(msg, m.keys.Theme):
		log.Printf("theme: %s", m.scene.CycleTheme())
		m.applyTheme()
	case key.Matches(msg, m.keys.Link):
		if r := m.scene.Route(); r.Len() > 0 {
			m.notice = route.DirectionsURL(r.Stops)
			log.Printf("directions: %s", m.notice)
		}
	case key.Matches(msg, m.keys.Close):
		m.selected = -1
		m.notice = ""
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) resize() {
	cols := m.width - panelWidth - 3
	rows := m.height - canvasTop - 1
	if cols < minCols {
		cols = minCols
	}
	if rows < minRows {
		rows = minRows
	}
	m.canvas = surface.NewBraille(cols, rows, pixelScale)
	m.scene.Resize(m.canvas.Size())
	m.glide.Forget()
}

// frame advances the backdrop and redraws the canvas.
func (m *Model) frame() {
	m.scene.Step()
	if m.canvas == nil {
		return
	}
	m.last = m.scene.Draw(m.canvas)
	if pts := m.scene.Points(); len(pts) > 0 && m.last.Current < len(pts) {
		pos := m.glide.Update(pts[m.last.Current])
		theme := m.scene.Theme()
		m.canvas.FillCircle(pos, 5, surface.Solid(theme.Text))
	}
	m.edges = append(m.edges, float64(m.last.Edges))
	if len(m.edges) > edgeHistory {
		m.edges = m.edges[1:]
	}
}

// click maps a terminal cell to virtual pixels and selects the stop there.
func (m *Model) click(col, row int) {
	if m.canvas == nil {
		return
	}
	x := (float64(col) + 0.5) * 2 * pixelScale
	y := (float64(row-canvasTop) + 0.5) * 4 * pixelScale
	if i, ok := m.scene.MarkerAt(x, y); ok {
		m.selected = i
		return
	}
	m.selected = -1
}

func (m Model) View() string {
	if m.canvas == nil {
		return "loading..."
	}
	title := "ROUTE"
	if r := m.scene.Route(); r != nil && r.Vehicle != "" {
		title += " · " + r.Vehicle
	}
	left := m.styles.header.Render(title) + "\n" + m.canvas.String()
	return lipgloss.JoinHorizontal(lipgloss.Top, left, m.styles.panel.Render(m.panel()))
}

func (m Model) panel() string {
	st := m.scene.Playback().Status()
	var s strings.Builder

	s.WriteString(m.stateLabel(st) + "\n")
	if st.Count > 0 {
		s.WriteString(fmt.Sprintf("%s%s\n", m.styles.label.Render("Stop"), m.styles.value.Render(fmt.Sprintf("%d / %d", st.Index+1, st.Count))))
	}
	s.WriteString(m.progress.ViewAs(st.Progress) + "\n\n")

	if stop, i, ok := m.scene.CurrentStop(); ok {
		s.WriteString(m.styles.card.Render(strings.Join(route.Describe(stop, i), "\n")) + "\n")
	}
	if r := m.scene.Route(); m.selected >= 0 && m.selected < r.Len() {
		s.WriteString(m.styles.popup.Render(strings.Join(route.Describe(r.Stops[m.selected], m.selected), "\n")) + "\n")
	}

	s.WriteString("\n")
	for _, e := range m.scene.Theme().Route.Legend() {
		s.WriteString(swatch(lc(e.Color), e.Dash) + " " + m.styles.value.Render(e.Label) + "\n")
	}

	if len(m.edges) > 1 {
		chart := asciigraph.Plot(m.edges, asciigraph.Height(4), asciigraph.Width(panelWidth-12), asciigraph.Caption("edges"))
		s.WriteString("\n" + m.styles.graph.Render(chart) + "\n")
	}
	s.WriteString(fmt.Sprintf("%s%s\n", m.styles.label.Render("Particles"), m.styles.value.Render(fmt.Sprint(m.last.Particles))))
	s.WriteString(fmt.Sprintf("%s%s\n", m.styles.label.Render("Theme"), m.styles.value.Render(m.theme.Name)))

	if m.notice != "" {
		s.WriteString("\n" + m.styles.notice.Render(m.notice) + "\n")
	}
	s.WriteString("\n" + separator(m.styles, panelWidth-2) + "\n")
	s.WriteString(m.help.View(m.keys))
	return s.String()
}

func (m Model) stateLabel(st playback.Status) string {
	switch st.State {
	case playback.Playing:
		return m.styles.playing.Render("▶ PLAYING")
	case playback.Paused:
		return m.styles.paused.Render("⏸ PAUSED")
	}
	return m.styles.stopped.Render("■ STOPPED")
}

// Run starts the terminal host. With logPath empty, log output is dropped
// so it cannot tear the alt screen.
func Run(sc *scene.Scene, fps int, logPath string) error {
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "routeviz")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	p := tea.NewProgram(NewModel(sc, fps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
