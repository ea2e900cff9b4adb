// Package app wires the drag state, the star background, the global tilt
// and the card tilts onto one frame scheduler.
package app

import (
	"math/rand"

	"stardrag/internal/engine"
	"stardrag/internal/engine/starfield"
	"stardrag/internal/input"
	"stardrag/internal/interaction"
	"stardrag/internal/page"
	"stardrag/internal/tilt"
)

// App owns every component of one running page.
type App struct {
	State      *interaction.State
	Scheduler  *engine.Scheduler
	Tracker    *interaction.Tracker
	Background *starfield.Background
	Global     *tilt.Global
	Cards      *tilt.Registry
	Page       *page.Page
	Dispatcher *page.Dispatcher
	Input      *input.Poller

	// fitLayout rebuilds the default layout when the window resizes.
	fitLayout bool
}

// New builds the app for cfg. surface and cue may be nil, which disables
// the background and the grabbing cue.
func New(cfg Config, surface starfield.Surface, cue interaction.Cue) *App {
	state := interaction.NewState()
	scheduler := engine.NewScheduler()
	p := page.New(cfg.Layout())

	rng := rand.New(rand.NewSource(cfg.Stars.Seed))
	background := starfield.NewBackground(state, surface, rng, cfg.Window.Width, cfg.Window.Height)
	if scene := background.Scene(); scene != nil {
		scene.Cloud.Material = cfg.Material()
	}

	cards := tilt.NewRegistry(state, scheduler, p.Targets()...)
	a := &App{
		State:      state,
		Scheduler:  scheduler,
		Tracker:    interaction.NewTracker(state, cue),
		Background: background,
		Global:     tilt.NewGlobal(state, p.ContainerTarget()),
		Cards:      cards,
		Page:       p,
		Dispatcher: page.NewDispatcher(cards),
		fitLayout:  cfg.Page == nil,
	}
	return a
}

// Attach routes source through the tracker and the hover dispatcher.
func (a *App) Attach(source input.Source) {
	if a.Input == nil {
		a.Input = input.NewPoller(source, a.Tracker, a.Dispatcher)
		return
	}
	a.Input.SetSource(source)
}

// Start queues the background and page loops for the first frame.
func (a *App) Start() {
	a.Background.Start(a.Scheduler)
	a.Global.Start(a.Scheduler)
}

// Frame polls input, if attached, then runs every callback due this frame.
// The frame still runs when polling fails; the error is returned after it.
func (a *App) Frame() error {
	var err error
	if a.Input != nil {
		err = a.Input.Poll()
	}
	a.Scheduler.Tick()
	return err
}

// Resize follows a viewport change. A configured layout keeps its page
// pixels; the default one is refitted to the new size.
func (a *App) Resize(width, height int) {
	a.Background.Resize(width, height)
	if a.fitLayout && width > 0 && height > 0 {
		a.Page.Relayout(page.DefaultLayout(width, height))
	}
}

// Draw paints the page over the background.
func (a *App) Draw(canvas page.Canvas, theme page.Theme) {
	a.Page.Draw(canvas, theme)
}
