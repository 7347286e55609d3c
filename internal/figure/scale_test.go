package figure

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	got := Hex("#1a9850")
	want := color.RGBA{R: 0x1a, G: 0x98, B: 0x50, A: 0xFF}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	// Invalid input falls back to gray.
	if got := Hex("bogus"); got != Hex("#999999") {
		t.Fatalf("invalid hex should be gray, got %v", got)
	}
}

func TestRampEndpointsAndClamping(t *testing.T) {
	r := Ramp{Hex("#000000"), Hex("#ffffff")}
	if r.At(0) != r[0] {
		t.Fatal("t=0 should be the first stop")
	}
	if r.At(1) != r[1] {
		t.Fatal("t=1 should be the last stop")
	}
	if r.At(-5) != r[0] || r.At(5) != r[1] {
		t.Fatal("out-of-range values should clamp")
	}
	mid := r.At(0.5).(color.RGBA)
	if mid.R < 0x7e || mid.R > 0x80 {
		t.Fatalf("midpoint should be mid-gray, got %v", mid)
	}
}

func TestBoundaryScaleBands(t *testing.T) {
	s := CompletenessScale
	cases := []struct {
		v    float64
		want color.RGBA
	}{
		{0, s.Colors[0]},
		{24, s.Colors[0]},
		{25, s.Colors[1]},
		{49, s.Colors[1]},
		{50, s.Colors[2]},
		{89, s.Colors[3]},
		{90, s.Colors[4]},
		{94, s.Colors[4]},
		{95, s.Colors[5]},
		{100, s.Colors[5]},
	}
	for _, c := range cases {
		if got := s.At(c.v); got != c.want {
			t.Fatalf("At(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestBoundaryScaleLabels(t *testing.T) {
	bands := CompletenessScale.Bands()
	if len(bands) != 6 {
		t.Fatalf("got %d bands, want 6", len(bands))
	}
	if bands[0] != "0–25" {
		t.Fatalf("first band = %q, want 0–25", bands[0])
	}
	// The top bound displays as 100, not the internal 100.01 sentinel.
	if bands[5] != "95–100" {
		t.Fatalf("last band = %q, want 95–100", bands[5])
	}
}
