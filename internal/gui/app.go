// Package gui hosts route playback in a resizable raylib window.
package gui

import (
	"context"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/routeviz/internal/playback"
	"github.com/san-kum/routeviz/internal/route"
	"github.com/san-kum/routeviz/internal/scene"
	"github.com/san-kum/routeviz/internal/surface"
)

const (
	panelW     = 280
	panelPad   = 12
	fontSize   = 16
	lineHeight = 20
)

type Action int

const (
	ActionNone Action = iota
	ActionToggle
	ActionReset
	ActionNext
	ActionPrev
	ActionTheme
	ActionLink
	ActionClose
	ActionQuit
)

var keyActions = []struct {
	key int32
	act Action
}{
	{rl.KeySpace, ActionToggle},
	{rl.KeyR, ActionReset},
	{rl.KeyN, ActionNext},
	{rl.KeyRight, ActionNext},
	{rl.KeyP, ActionPrev},
	{rl.KeyLeft, ActionPrev},
	{rl.KeyT, ActionTheme},
	{rl.KeyO, ActionLink},
	{rl.KeyEscape, ActionClose},
	{rl.KeyQ, ActionQuit},
}

type App struct {
	Scene  *scene.Scene
	Driver *playback.Driver

	glide    *scene.Glide
	surf     *Surface
	fps      int
	selected int
	notice   string
	quit     bool
}

func NewApp(ctx context.Context, sc *scene.Scene, fps int) *App {
	if fps <= 0 {
		fps = 60
	}
	vp := sc.Viewport()
	return &App{
		Scene:    sc,
		Driver:   playback.NewDriver(ctx, sc.Playback()),
		glide:    scene.NewGlide(fps),
		surf:     NewSurface(vp.Width, vp.Height, panelW),
		fps:      fps,
		selected: -1,
	}
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() {
	vp := a.Scene.Viewport()
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(vp.Width)+panelW, int32(vp.Height), "routeviz")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(a.fps))
	rl.SetExitKey(0)
	defer a.Driver.Close()

	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.surf.Resize(max(0, rl.GetScreenWidth()-panelW), rl.GetScreenHeight())
		a.Scene.Resize(a.surf.Size())
		a.glide.Forget()
	}
	for _, ka := range keyActions {
		if rl.IsKeyPressed(ka.key) {
			a.Do(ka.act)
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		a.Select(float64(m.X), float64(m.Y))
	}
	a.Scene.Step()
}

// Do applies one user action. Playback runs on the driver's wall-clock
// timer, so the frame rate never changes the stop interval.
func (a *App) Do(act Action) {
	ctrl := a.Scene.Playback()
	switch act {
	case ActionToggle:
		a.Driver.Toggle()
	case ActionReset:
		a.Driver.Reset()
		a.selected = -1
	case ActionNext:
		ctrl.Seek(ctrl.Status().Index + 1)
	case ActionPrev:
		ctrl.Seek(ctrl.Status().Index - 1)
	case ActionTheme:
		log.Printf("theme: %s", a.Scene.CycleTheme())
	case ActionLink:
		if r := a.Scene.Route(); r.Len() > 0 {
			a.notice = route.DirectionsURL(r.Stops)
			log.Printf("directions: %s", a.notice)
		}
	case ActionClose:
		a.selected, a.notice = -1, ""
	case ActionQuit:
		a.quit = true
	}
}

// Select opens the popup for the stop under a window position.
func (a *App) Select(x, y float64) {
	if i, ok := a.Scene.MarkerAt(x-a.surf.OffsetX, y); ok {
		a.selected = i
		return
	}
	a.selected = -1
}

func (a *App) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rlColor(a.Scene.Theme().Background))

	st := a.Scene.Draw(a.surf)
	theme := a.Scene.Theme()
	if pts := a.Scene.Points(); len(pts) > 0 && st.Current < len(pts) {
		pos := a.glide.Update(pts[st.Current])
		a.surf.FillCircle(pos, 7, surface.Solid(theme.Text))
		a.surf.FillCircle(pos, 4, surface.Solid(theme.Route.Current))
	}
	a.drawPanel(st, theme)
}

func (a *App) drawPanel(st scene.Stats, theme scene.Theme) {
	_, h := a.surf.Size()
	rl.DrawRectangle(0, 0, panelW, int32(h), rlColor(theme.Background))
	rl.DrawLine(panelW, 0, panelW, int32(h), rlColor(theme.Muted))

	text := rlColor(theme.Text)
	muted := rlColor(theme.Muted)
	y := int32(panelPad)
	line := func(s string, c rl.Color) {
		rl.DrawText(s, panelPad, y, fontSize, c)
		y += lineHeight
	}

	status := a.Scene.Playback().Status()
	line(fmt.Sprintf("%s  %d/%d", status.State, status.Index+1, status.Count), rlColor(theme.Route.Current))
	rl.DrawRectangle(panelPad, y, panelW-2*panelPad, 6, muted)
	rl.DrawRectangle(panelPad, y, int32(float64(panelW-2*panelPad)*status.Progress), 6, rlColor(theme.Route.Start))
	y += lineHeight

	if stop, i, ok := a.Scene.CurrentStop(); ok {
		for _, l := range route.Describe(stop, i) {
			line(l, text)
		}
	}
	if r := a.Scene.Route(); a.selected >= 0 && a.selected < r.Len() {
		y += lineHeight / 2
		line("Selected", muted)
		for _, l := range route.Describe(r.Stops[a.selected], a.selected) {
			line(l, text)
		}
	}

	y += lineHeight / 2
	for _, e := range theme.Route.Legend() {
		rl.DrawCircle(panelPad+6, y+fontSize/2, 6, rlColor(e.Color))
		rl.DrawText(e.Label, panelPad+20, y, fontSize, text)
		y += lineHeight
	}

	y += lineHeight / 2
	line(fmt.Sprintf("edges %d  particles %d", st.Edges, st.Particles), muted)
	line(fmt.Sprintf("%d fps  theme %s", rl.GetFPS(), theme.Name), muted)
	if a.notice != "" {
		line("link logged, press esc", muted)
	}
	line("space play  r reset  n/p step  q quit", muted)
}
