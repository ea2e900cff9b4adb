package page

import (
	"stardrag/internal/tilt"
)

// ElementConfig places one element on the page, in page pixels.
type ElementConfig struct {
	ID     string  `toml:"id"`
	Label  string  `toml:"label"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Rect returns the configured box.
func (c ElementConfig) Rect() tilt.Rect {
	return tilt.Rect{Left: c.X, Top: c.Y, Width: c.Width, Height: c.Height}
}

// Layout is the page: a container that follows the drag, and the tilt
// targets laid out inside it.
type Layout struct {
	Container ElementConfig   `toml:"container"`
	Profile   *ElementConfig  `toml:"profile"`
	Cards     []ElementConfig `toml:"cards"`
}

// DefaultLayout lays out a profile block above a row of three cards,
// centred in a width x height viewport.
func DefaultLayout(width, height int) Layout {
	w := float64(width)
	h := float64(height)

	containerW := w * 0.8
	containerH := h * 0.8
	containerX := (w - containerW) / 2
	containerY := (h - containerH) / 2

	const gap = 24.0
	profileH := containerH * 0.35
	profile := ElementConfig{
		ID:     "profile",
		Label:  "Profile",
		X:      containerX + containerW*0.25,
		Y:      containerY + gap,
		Width:  containerW * 0.5,
		Height: profileH,
	}

	cardW := (containerW - gap*4) / 3
	cardH := containerH - profileH - gap*3
	cardY := profile.Y + profileH + gap
	labels := []string{"Projects", "Writing", "Contact"}

	cards := make([]ElementConfig, len(labels))
	for i, label := range labels {
		cards[i] = ElementConfig{
			ID:     "card-" + string(rune('a'+i)),
			Label:  label,
			X:      containerX + gap + float64(i)*(cardW+gap),
			Y:      cardY,
			Width:  cardW,
			Height: cardH,
		}
	}

	return Layout{
		Container: ElementConfig{
			ID:     "container",
			X:      containerX,
			Y:      containerY,
			Width:  containerW,
			Height: containerH,
		},
		Profile: &profile,
		Cards:   cards,
	}
}
