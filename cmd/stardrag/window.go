package main

import (
	"stardrag/internal/app"
	"stardrag/internal/debug"
	"stardrag/internal/engine/rlgfx"
	"stardrag/internal/input"
	"stardrag/internal/page"
	"stardrag/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Window struct {
	app          *app.App
	theme        page.Theme
	canvas       rlgfx.Canvas
	debugOverlay *debug.Overlay
	global       bool
}

func NewWindow(cfg app.Config) *Window {
	flags := uint32(rl.FlagWindowResizable)
	if cfg.Window.Wallpaper {
		flags |= rl.FlagWindowUndecorated
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	window := &Window{
		app:          app.New(cfg, rlgfx.NewSurface(cfg.Window.Width, cfg.Window.Height), rlgfx.CursorCue{}),
		theme:        page.DefaultTheme(),
		debugOverlay: debug.NewOverlay(),
	}

	window.app.Attach(rlgfx.WindowPointer{})
	if cfg.Window.Wallpaper {
		if err := utils.InitX11(); err != nil {
			utils.Warn("X11 unavailable, using window input: %v", err)
		} else {
			window.app.Attach(input.NewGlobalSource(utils.GetGlobalPointer, rlgfx.WindowOrigin, rlgfx.WindowSize))
			window.global = true
		}
	}

	utils.Info("Page: %d tilt targets, container %v", window.app.Cards.Len(), window.app.Global.Enabled())
	return window
}

func (window *Window) Run() {
	window.app.Start()

	for !rl.WindowShouldClose() {
		window.Update()

		rl.BeginDrawing()
		if err := window.app.Frame(); err != nil {
			window.fallBack(err)
		}
		window.Draw()
		rl.EndDrawing()
	}
}

func (window *Window) Update() {
	if rl.IsWindowResized() {
		width, height := rl.GetScreenWidth(), rl.GetScreenHeight()
		utils.Debug("Window resized to %dx%d", width, height)
		window.app.Resize(width, height)
	}

	if rl.IsKeyPressed(rl.KeyF8) {
		utils.ShowDebugUI = !utils.ShowDebugUI
	}
	if utils.ShowDebugUI {
		window.debugOverlay.Update()
	}
}

func (window *Window) Draw() {
	window.app.Draw(window.canvas, window.theme)

	if utils.ShowDebugUI {
		window.debugOverlay.Draw(window.app.State, window.app.Page)
	}
}

// fallBack drops the X11 pointer after an error and keeps going on the
// window's own events.
func (window *Window) fallBack(err error) {
	if !window.global {
		utils.Error("Input: %v", err)
		return
	}
	utils.Warn("Input: %v, falling back to window input", err)
	window.global = false
	window.app.Attach(rlgfx.WindowPointer{})
	utils.CloseX11()
}

func (window *Window) Close() {
	utils.CloseX11()
	rl.CloseWindow()
}
