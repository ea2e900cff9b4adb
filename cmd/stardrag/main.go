package main

import (
	"flag"
	"os"

	"stardrag/internal/app"
	"stardrag/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "Path to stardrag.toml (default: search the working directory, then $XDG_CONFIG_HOME/stardrag)")
	width := flag.Int("width", 0, "Window width")
	height := flag.Int("height", 0, "Window height")
	fps := flag.Int("fps", 0, "Target frame rate")
	wallpaper := flag.Bool("wallpaper", false, "Run as a desktop wallpaper, reading the pointer from X11")
	seed := flag.Int64("seed", 0, "Star placement seed")
	debugFlag := flag.Bool("debug", false, "Enable verbose debug logging and the F8 overlay")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	snapshotPath := flag.String("snapshot", "", "Render headless and write a PNG to this path")
	frames := flag.Int("frames", 60, "Frames to settle after the scripted drag (with -snapshot)")
	drag := flag.String("drag", "0,0", "Scripted drag as dx,dy in pixels (with -snapshot)")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		utils.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "fps":
			cfg.Window.FPS = *fps
		case "wallpaper":
			cfg.Window.Wallpaper = *wallpaper
		case "seed":
			cfg.Stars.Seed = *seed
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		utils.Error("Invalid options: %v", err)
		os.Exit(1)
	}

	utils.CurrentLevel, _ = utils.ParseLevel(cfg.Log.Level)
	utils.DebugMode = *debugFlag
	if utils.DebugMode {
		utils.CurrentLevel = utils.LevelDebug
		utils.ShowDebugUI = true
	}

	if *snapshotPath != "" {
		if err := runSnapshot(cfg, *snapshotPath, *frames, *drag); err != nil {
			utils.Error("Snapshot failed: %v", err)
			os.Exit(1)
		}
		return
	}

	rl.SetTraceLogCallback(utils.RaylibLogCallback)

	utils.Info("--- stardrag start ---")
	window := NewWindow(cfg)
	defer window.Close()
	window.Run()
}

func runSnapshot(cfg app.Config, path string, frames int, drag string) error {
	dx, dy, err := app.ParseDrag(drag)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := app.RunSnapshot(cfg, app.SnapshotOptions{Frames: frames, DragX: dx, DragY: dy}, f); err != nil {
		return err
	}

	utils.Info("Snapshot saved to: %s", path)
	return f.Close()
}
