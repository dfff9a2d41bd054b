// Package scene composes the particle backdrop and the route overlay into
// one frame, and owns the per-frame state the hosts drive.
package scene

import (
	"github.com/san-kum/routeviz/internal/config"
	"github.com/san-kum/routeviz/internal/network"
	"github.com/san-kum/routeviz/internal/particles"
	"github.com/san-kum/routeviz/internal/playback"
	"github.com/san-kum/routeviz/internal/projection"
	"github.com/san-kum/routeviz/internal/route"
	"github.com/san-kum/routeviz/internal/surface"
	"github.com/san-kum/routeviz/internal/viewport"
)

const (
	// RingFrames is how many frames one pulse of the current-stop ring lasts.
	RingFrames = 60
	// HitRadius is how far from a pin head a click still selects it.
	HitRadius = route.PinRadius * 1.5
)

type Stats struct {
	network.Stats
	Markers int
	Current int
	State   playback.State
}

type Scene struct {
	cfg   *config.Config
	theme Theme

	sizer    *viewport.Sizer
	field    *particles.Field
	clock    *network.Clock
	backdrop *network.Renderer

	route   *route.Route
	coords  []projection.LatLng
	mapper  *projection.Mapper
	overlay *route.Renderer
	ctrl    *playback.Controller

	index    *route.Index
	indexKey indexKey
	pulse    float64
	frames   uint64
}

type indexKey struct {
	id   uint64
	w, h int
}

func New(cfg *config.Config) *Scene {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme := GetTheme(cfg.Theme)
	s := &Scene{
		cfg:      cfg,
		sizer:    viewport.NewSizer(cfg.Viewport.Width, cfg.Viewport.Height),
		field:    particles.NewField(cfg.ParticleParams(), cfg.ResolveSeed()),
		clock:    network.NewClock(cfg.Network.TimeStep),
		backdrop: network.NewRenderer(network.DefaultStyle()),
		mapper:   projection.NewMapper(cfg.ProjectionOptions()),
		overlay:  route.NewRenderer(route.DefaultStyle()),
		ctrl:     playback.New(0, cfg.Playback.Interval),
	}
	s.SetTheme(theme)
	return s
}

func (s *Scene) Theme() Theme { return s.theme }

func (s *Scene) SetTheme(t Theme) {
	s.theme = t
	s.backdrop.Style = s.cfg.NetworkStyle(t.Network)
	s.overlay.Style = t.Route
}

// CycleTheme switches to the next palette and returns its name.
func (s *Scene) CycleTheme() string {
	s.SetTheme(NextTheme(s.theme.Name))
	return s.theme.Name
}

// Resize commits a new viewport. The backdrop reseeds on the next frame.
func (s *Scene) Resize(w, h int) bool {
	return s.sizer.Resize(w, h)
}

func (s *Scene) Viewport() viewport.Viewport { return s.sizer.Size() }

// SetRoute binds a new route. Playback resets and the projection is
// recomputed on the next draw. A nil route clears the overlay.
func (s *Scene) SetRoute(r *route.Route) {
	s.route = r
	s.coords = r.Coordinates()
	s.mapper.Invalidate()
	s.index = nil
	s.ctrl.SetStopCount(r.Len())
}

func (s *Scene) Route() *route.Route { return s.route }

func (s *Scene) Playback() *playback.Controller { return s.ctrl }

func (s *Scene) Particles() []particles.Particle { return s.field.Particles() }

func (s *Scene) Time() float64 { return s.clock.Now() }

func (s *Scene) Frames() uint64 { return s.frames }

// Step advances the backdrop one frame: lazy reseed, particle motion,
// global flicker time and the ring pulse.
func (s *Scene) Step() {
	s.field.Step(s.sizer.Size())
	s.clock.Tick()
	s.pulse += 1.0 / RingFrames
	if s.pulse >= 1 {
		s.pulse -= 1
	}
	s.frames++
}

// Points returns the projected marker anchors for the current viewport.
func (s *Scene) Points() []surface.Point {
	if s.route.Len() == 0 {
		return nil
	}
	vp := s.sizer.Size()
	return s.mapper.Points(s.route.ID(), s.coords, vp.Width, vp.Height)
}

// Draw renders one full frame onto dst, whose size becomes the viewport.
func (s *Scene) Draw(dst surface.Surface) Stats {
	w, h := dst.Size()
	s.sizer.Resize(w, h)
	vp := s.sizer.Size()
	s.field.Sync(vp)

	dst.Clear(s.theme.Background)
	st := Stats{Stats: s.backdrop.Render(dst, s.field.Particles(), s.clock.Now())}

	status := s.ctrl.Status()
	st.Current, st.State = status.Index, status.State
	pts := s.Points()
	if len(pts) == 0 {
		return st
	}
	s.overlay.Render(dst, pts, route.Options{
		Current: status.Index,
		Playing: status.Playing(),
		Pulse:   s.pulse,
	})
	st.Markers = len(pts)
	return st
}

// MarkerAt returns the stop whose pin head is under (x, y).
func (s *Scene) MarkerAt(x, y float64) (int, bool) {
	pts := s.Points()
	if len(pts) == 0 {
		return -1, false
	}
	vp := s.sizer.Size()
	key := indexKey{id: s.route.ID(), w: vp.Width, h: vp.Height}
	if s.index == nil || s.indexKey != key {
		s.index = route.NewIndex(pts)
		s.indexKey = key
	}
	return s.index.Nearest(surface.Point{X: x, Y: y}, HitRadius)
}

// CurrentStop returns the stop playback is on.
func (s *Scene) CurrentStop() (route.Stop, int, bool) {
	if s.route.Len() == 0 {
		return route.Stop{}, -1, false
	}
	i := s.ctrl.Status().Index
	return s.route.Stops[i], i, true
}
