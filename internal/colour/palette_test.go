package colour

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#ff0000"},
		{name: "green", rgb: RGB{R: 0, G: 255, B: 0}, want: "#00ff00"},
		{name: "blue", rgb: RGB{R: 0, G: 0, B: 255}, want: "#0000ff"},
		{name: "white", rgb: RGB{R: 255, G: 255, B: 255}, want: "#ffffff"},
		{name: "black", rgb: RGB{R: 0, G: 0, B: 0}, want: "#000000"},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}, want: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRGBString(t *testing.T) {
	got := RGB{R: 255, G: 10, B: 0}.String()
	if got != "rgb(255, 10, 0)" {
		t.Errorf("String() = %s, want rgb(255, 10, 0)", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGB
		wantErr bool
	}{
		{name: "lowercase with hash", in: "#1a2b3c", want: RGB{R: 0x1a, G: 0x2b, B: 0x3c}},
		{name: "uppercase with hash", in: "#FF8000", want: RGB{R: 255, G: 128, B: 0}},
		{name: "no hash", in: "00ff00", want: RGB{R: 0, G: 255, B: 0}},
		{name: "short form", in: "#f3a", want: RGB{R: 0xff, G: 0x33, B: 0xaa}},
		{name: "surrounding space", in: "  #000000 ", want: RGB{}},
		{name: "empty", in: "", wantErr: true},
		{name: "too long", in: "#1234567", wantErr: true},
		{name: "bad digit", in: "#12345g", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexRoundTrip(t *testing.T) {
	for _, rgb := range []RGB{{1, 2, 3}, {254, 128, 7}, {255, 255, 255}} {
		got, err := ParseHex(rgb.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%s): %v", rgb.Hex(), err)
		}
		if got != rgb {
			t.Errorf("round trip of %s = %+v", rgb.Hex(), got)
		}
	}
}

func testPalette() *Palette {
	return NewPalette([]Swatch{
		{RGB: RGB{R: 255}, Count: 3},
		{RGB: RGB{G: 255}, Count: 2, Locked: true},
		{RGB: RGB{B: 255}, Count: 1},
	})
}

func TestPaletteToHex(t *testing.T) {
	want := []string{"#ff0000", "#00ff00", "#0000ff"}
	if diff := cmp.Diff(want, testPalette().ToHex()); diff != "" {
		t.Errorf("ToHex() mismatch (-want +got):\n%s", diff)
	}
}

func TestPaletteLockedHexes(t *testing.T) {
	p := testPalette()
	if diff := cmp.Diff([]string{"#00ff00"}, p.LockedHexes()); diff != "" {
		t.Errorf("LockedHexes() mismatch (-want +got):\n%s", diff)
	}

	if err := p.ToggleLock(0); err != nil {
		t.Fatalf("ToggleLock(0): %v", err)
	}
	if err := p.ToggleLock(1); err != nil {
		t.Fatalf("ToggleLock(1): %v", err)
	}
	if diff := cmp.Diff([]string{"#ff0000"}, p.LockedHexes()); diff != "" {
		t.Errorf("LockedHexes() after toggle mismatch (-want +got):\n%s", diff)
	}

	if err := p.ToggleLock(3); err == nil {
		t.Error("ToggleLock(3) expected out of bounds error")
	}
}

func TestPaletteMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
		wantErr  bool
	}{
		{name: "forward", from: 0, to: 2, want: []string{"#00ff00", "#0000ff", "#ff0000"}},
		{name: "backward", from: 2, to: 0, want: []string{"#0000ff", "#ff0000", "#00ff00"}},
		{name: "adjacent", from: 1, to: 2, want: []string{"#ff0000", "#0000ff", "#00ff00"}},
		{name: "same index", from: 1, to: 1, want: []string{"#ff0000", "#00ff00", "#0000ff"}},
		{name: "out of bounds", from: 0, to: 3, wantErr: true},
		{name: "negative", from: -1, to: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPalette()
			err := p.Move(tt.from, tt.to)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Move() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Move() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, p.ToHex()); diff != "" {
				t.Errorf("Move(%d, %d) mismatch (-want +got):\n%s", tt.from, tt.to, diff)
			}
		})
	}
}

func TestPaletteGet(t *testing.T) {
	p := testPalette()
	s, err := p.Get(1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if !s.Locked || s.Count != 2 {
		t.Errorf("Get(1) = %+v", s)
	}
	if _, err := p.Get(5); err == nil {
		t.Error("Get(5) expected error")
	}
}

func TestPaletteString(t *testing.T) {
	if got := NewPalette(nil).String(); got != "Empty palette" {
		t.Errorf("String() of empty palette = %q", got)
	}
	got := testPalette().String()
	if !strings.Contains(got, "Palette with 3 swatches") {
		t.Errorf("String() missing header: %q", got)
	}
	if !strings.Contains(got, "#00ff00 (rgb(0, 255, 0)) x2 [locked]") {
		t.Errorf("String() missing locked line: %q", got)
	}
}

func TestPaletteAll(t *testing.T) {
	var seen []int
	for i, s := range testPalette().All() {
		seen = append(seen, s.Count)
		if i == 1 {
			break
		}
	}
	if diff := cmp.Diff([]int{3, 2}, seen); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		name        string
		rgb         RGB
		wantSat     float64
		wantVibrant float64
		wantNeutral bool
	}{
		{name: "pure red", rgb: RGB{R: 255}, wantSat: 1, wantVibrant: 1},
		{name: "black", rgb: RGB{}, wantSat: 0, wantVibrant: 0, wantNeutral: true},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}, wantSat: 0, wantVibrant: 0, wantNeutral: true},
		{name: "half saturated", rgb: RGB{R: 200, G: 100, B: 100}, wantSat: 0.5, wantVibrant: 0.5 * 200.0 / 255.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Saturation(); !approx(got, tt.wantSat) {
				t.Errorf("Saturation() = %v, want %v", got, tt.wantSat)
			}
			if got := tt.rgb.Vibrancy(); !approx(got, tt.wantVibrant) {
				t.Errorf("Vibrancy() = %v, want %v", got, tt.wantVibrant)
			}
			if got := tt.rgb.IsNeutral(); got != tt.wantNeutral {
				t.Errorf("IsNeutral() = %v, want %v", got, tt.wantNeutral)
			}
		})
	}
}

func TestFormatSwatch(t *testing.T) {
	s := Swatch{RGB: RGB{R: 255}, Count: 12, Locked: true}
	if got := FormatSwatch(s, false); got != "#ff0000      12  locked" {
		t.Errorf("FormatSwatch() = %q", got)
	}
	if got := FormatSwatch(s, true); !strings.HasPrefix(got, "\033[48;2;255;0;0m") {
		t.Errorf("FormatSwatch() with preview = %q", got)
	}
}

func TestColourPreviewWithText(t *testing.T) {
	white := ColourPreviewWithText(RGB{R: 255, G: 255, B: 255}, "ab", 4)
	if !strings.Contains(white, "\033[38;2;0;0;0m") || !strings.Contains(white, " ab ") {
		t.Errorf("preview on white = %q", white)
	}
	black := ColourPreviewWithText(RGB{}, "abcdef", 3)
	if !strings.Contains(black, "\033[38;2;255;255;255m") || !strings.Contains(black, "abc") {
		t.Errorf("preview on black = %q", black)
	}
}

func approx(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
