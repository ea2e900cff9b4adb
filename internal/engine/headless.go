package engine

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"stardrag/internal/engine/starfield"
	"stardrag/internal/utils"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// HeadlessSurface renders the background with the gg software rasteriser,
// for snapshots and for running without a display.
type HeadlessSurface struct {
	ctx        *gg.Context
	background color.RGBA
	fonts      *text.FontSource
	faceSize   int
	renders    int
}

// NewHeadlessSurface allocates a width x height canvas.
func NewHeadlessSurface(width, height int) *HeadlessSurface {
	return &HeadlessSurface{
		ctx:        gg.NewContext(width, height),
		background: color.RGBA{R: 2, G: 4, B: 12, A: 255},
	}
}

// Render clears the canvas and draws every visible star.
func (s *HeadlessSurface) Render(scene *starfield.Scene) {
	s.renders++
	s.ctx.ClearWithColor(toGG(s.background))

	width, height := s.ctx.Width(), s.ctx.Height()
	viewProjection := scene.Camera.ViewProjection()
	focal := float64(height) / 2 / math.Tan(mgl64.DegToRad(scene.Camera.FOV)/2)
	material := scene.Cloud.Material

	for _, p := range scene.WorldPoints() {
		x, y, ok := starfield.Project(viewProjection, p, width, height)
		if !ok {
			continue
		}
		depth := scene.Camera.Position.Sub(p).Len()
		radius := max(0.6, material.Size*focal/depth)
		s.ctx.DrawCircle(x, y, radius)
	}

	setRGBA(s.ctx, material.Color, material.Opacity)
	if err := s.ctx.Fill(); err != nil {
		utils.Warn("Headless: fill stars: %v", err)
	}
}

// Resize reallocates the canvas.
func (s *HeadlessSurface) Resize(width, height int) {
	if err := s.ctx.Resize(width, height); err != nil {
		utils.Warn("Headless: %v", err)
	}
}

// Size returns the canvas dimensions.
func (s *HeadlessSurface) Size() (int, int) {
	return s.ctx.Width(), s.ctx.Height()
}

// Renders returns how many frames have been drawn.
func (s *HeadlessSurface) Renders() int {
	return s.renders
}

// Image returns the current frame.
func (s *HeadlessSurface) Image() image.Image {
	return s.ctx.Image()
}

// EncodePNG writes the current frame as PNG.
func (s *HeadlessSurface) EncodePNG(w io.Writer) error {
	if err := s.ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// FillPolygon implements page.Canvas.
func (s *HeadlessSurface) FillPolygon(points []mgl64.Vec2, col color.RGBA) {
	if !s.tracePolygon(points) {
		return
	}
	setRGBA(s.ctx, col, 1)
	if err := s.ctx.Fill(); err != nil {
		utils.Warn("Headless: fill polygon: %v", err)
	}
}

// StrokePolygon implements page.Canvas.
func (s *HeadlessSurface) StrokePolygon(points []mgl64.Vec2, width float64, col color.RGBA) {
	if !s.tracePolygon(points) {
		return
	}
	setRGBA(s.ctx, col, 1)
	s.ctx.SetLineWidth(width)
	if err := s.ctx.Stroke(); err != nil {
		utils.Warn("Headless: stroke polygon: %v", err)
	}
}

// Label implements page.Canvas. Text is centred on (x, y) in Go Regular.
func (s *HeadlessSurface) Label(label string, x, y float64, size int, col color.RGBA) {
	if !s.loadFace(size) {
		return
	}
	setRGBA(s.ctx, col, 1)
	s.ctx.DrawStringAnchored(label, x, y, 0.5, 0.5)
}

// Close releases the font source.
func (s *HeadlessSurface) Close() error {
	if s.fonts != nil {
		if err := s.fonts.Close(); err != nil {
			return err
		}
		s.fonts = nil
	}
	return s.ctx.Close()
}

func (s *HeadlessSurface) tracePolygon(points []mgl64.Vec2) bool {
	if len(points) < 3 {
		return false
	}
	s.ctx.ClearPath()
	s.ctx.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		s.ctx.LineTo(p[0], p[1])
	}
	s.ctx.ClosePath()
	return true
}

func (s *HeadlessSurface) loadFace(size int) bool {
	if s.fonts == nil {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			utils.Warn("Headless: load font: %v", err)
			return false
		}
		s.fonts = source
	}
	if s.faceSize != size {
		s.ctx.SetFont(s.fonts.Face(float64(size)))
		s.faceSize = size
	}
	return true
}

// setRGBA treats col as straight (non-premultiplied) alpha, the way raylib
// does, and scales its alpha by opacity.
func setRGBA(ctx *gg.Context, col color.RGBA, opacity float64) {
	ctx.SetRGBA(
		float64(col.R)/255,
		float64(col.G)/255,
		float64(col.B)/255,
		float64(col.A)/255*opacity,
	)
}

func toGG(col color.RGBA) gg.RGBA {
	return gg.RGBA2(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, float64(col.A)/255)
}
