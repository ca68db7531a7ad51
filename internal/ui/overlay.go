//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"overworld/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type moistureFieldProvider interface {
	MoistureField() []float64
}

type temperatureFieldProvider interface {
	TemperatureField() []float64
}

type elevationFieldProvider interface {
	ElevationField() []float64
}

// Overlay draws optional field visualizations on top of the base map: keys
// 1/2/3 toggle moisture, temperature and elevation heatmaps.
type Overlay struct {
	src   core.Source
	scale int

	showMoisture bool
	showTemp     bool
	showElev     bool

	fieldImg *ebiten.Image
	fieldBuf []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src core.Source, scale int) *Overlay {
	return &Overlay{src: src, scale: scale}
}

// Update handles the overlay toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showMoisture = !o.showMoisture
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showTemp = !o.showTemp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showElev = !o.showElev
	}
}

// Draw renders the enabled overlays onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.src.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}

	if o.showMoisture {
		if provider, ok := o.src.(moistureFieldProvider); ok {
			o.drawField(screen, provider.MoistureField(), size, moistureColor)
		}
	}
	if o.showTemp {
		if provider, ok := o.src.(temperatureFieldProvider); ok {
			o.drawField(screen, provider.TemperatureField(), size, temperatureColor)
		}
	}
	if o.showElev {
		if provider, ok := o.src.(elevationFieldProvider); ok {
			o.drawField(screen, provider.ElevationField(), size, elevationColor)
		}
	}
}

func (o *Overlay) drawField(screen *ebiten.Image, field []float64, size core.Size, ramp func(float64) color.RGBA) {
	total := size.W * size.H
	if len(field) != total || total == 0 {
		return
	}
	if o.fieldImg == nil || o.fieldImg.Bounds().Dx() != size.W || o.fieldImg.Bounds().Dy() != size.H {
		o.fieldImg = ebiten.NewImage(size.W, size.H)
		o.fieldBuf = make([]byte, 4*total)
	} else if len(o.fieldBuf) != 4*total {
		o.fieldBuf = make([]byte, 4*total)
	}

	for i := 0; i < total; i++ {
		base := i * 4
		col := ramp(clamp01(field[i]))
		o.fieldBuf[base+0] = col.R
		o.fieldBuf[base+1] = col.G
		o.fieldBuf[base+2] = col.B
		o.fieldBuf[base+3] = col.A
	}

	o.fieldImg.ReplacePixels(o.fieldBuf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.fieldImg, op)
}

func moistureColor(t float64) color.RGBA {
	return lerpRGBA(
		color.RGBA{R: 200, G: 180, B: 120, A: 140},
		color.RGBA{R: 40, G: 90, B: 220, A: 200},
		t)
}

func temperatureColor(t float64) color.RGBA {
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 120, G: 170, B: 255, A: 170}},
		{0.5, color.RGBA{R: 230, G: 230, B: 160, A: 170}},
		{1.0, color.RGBA{R: 230, G: 70, B: 40, A: 200}},
	}
	return rampAt(stops, t)
}

func elevationColor(t float64) color.RGBA {
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	return rampAt(stops, t)
}

func rampAt(stops []struct {
	t   float64
	col color.RGBA
}, t float64) color.RGBA {
	t = clamp01(t)
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
