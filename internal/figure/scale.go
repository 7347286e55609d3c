package figure

import (
	"image/color"
	"strconv"
)

// Hex parses a #rrggbb color. Invalid input yields opaque gray, which is
// acceptable for the static palettes defined below.
func Hex(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xFF}
	}
	r, err1 := strconv.ParseUint(s[1:3], 16, 8)
	g, err2 := strconv.ParseUint(s[3:5], 16, 8)
	b, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xFF}
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xFF}
}

// Ramp is a sequential color scale interpolated between evenly spaced
// stops.
type Ramp []color.RGBA

// At maps t in [0,1] onto the ramp; values outside the range are clamped.
func (r Ramp) At(t float64) color.Color {
	if len(r) == 0 {
		return color.Black
	}
	if len(r) == 1 || t <= 0 {
		return r[0]
	}
	if t >= 1 {
		return r[len(r)-1]
	}
	seg := t * float64(len(r)-1)
	i := int(seg)
	f := seg - float64(i)
	a, b := r[i], r[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + f*(float64(y)-float64(x)))
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: 0xFF,
	}
}

// Sequential ramps matching the palettes of the published figures.
var (
	Blues  = Ramp{Hex("#f7fbff"), Hex("#6baed6"), Hex("#08306b")}
	YlOrRd = Ramp{Hex("#ffffcc"), Hex("#fd8d3c"), Hex("#800026")}
)

// BoundaryScale maps values onto discrete color bands. A value v gets
// Colors[i] where Bounds[i] <= v < Bounds[i+1].
type BoundaryScale struct {
	Bounds []float64 // len(Colors)+1, ascending
	Colors []color.RGBA
}

// At returns the band color for v; values outside the bounds clamp to the
// first or last band.
func (s BoundaryScale) At(v float64) color.Color {
	if len(s.Colors) == 0 {
		return color.Black
	}
	for i := len(s.Colors) - 1; i > 0; i-- {
		if v >= s.Bounds[i] {
			return s.Colors[i]
		}
	}
	return s.Colors[0]
}

// Bands returns human-readable labels for each color band, e.g. "25–50".
func (s BoundaryScale) Bands() []string {
	out := make([]string, len(s.Colors))
	for i := range s.Colors {
		lo := strconv.FormatFloat(s.Bounds[i], 'f', -1, 64)
		hi := strconv.FormatFloat(s.Bounds[i+1], 'f', -1, 64)
		if i == len(s.Colors)-1 {
			hi = "100"
		}
		out[i] = lo + "–" + hi
	}
	return out
}

// CompletenessScale is the red-yellow-green boundary scale of the
// completeness heatmap: red below 50%, yellow through 90%, green above.
var CompletenessScale = BoundaryScale{
	Bounds: []float64{0, 25, 50, 75, 90, 95, 100.01},
	Colors: []color.RGBA{
		Hex("#d73027"),
		Hex("#fc8d59"),
		Hex("#fee08b"),
		Hex("#d9ef8b"),
		Hex("#91cf60"),
		Hex("#1a9850"),
	},
}
