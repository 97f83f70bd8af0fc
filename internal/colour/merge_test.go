package colour

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name      string
		in        []Swatch
		threshold int
		want      []Swatch
	}{
		{
			name: "weighted rounded average",
			in: []Swatch{
				{RGB: RGB{R: 10, G: 10, B: 10}, Count: 5},
				{RGB: RGB{R: 12, G: 11, B: 9}, Count: 3},
			},
			threshold: 18,
			// r = 86/8 = 10.75, g = 83/8 = 10.375, b = 77/8 = 9.625.
			want: []Swatch{{RGB: RGB{R: 11, G: 10, B: 10}, Count: 8}},
		},
		{
			name: "zero threshold is identity",
			in: []Swatch{
				{RGB: RGB{R: 10, G: 10, B: 10}, Count: 5},
				{RGB: RGB{R: 10, G: 10, B: 11}, Count: 3, Locked: true},
				{RGB: RGB{R: 10, G: 10, B: 12}, Count: 1},
			},
			threshold: 0,
			want: []Swatch{
				{RGB: RGB{R: 10, G: 10, B: 10}, Count: 5},
				{RGB: RGB{R: 10, G: 10, B: 11}, Count: 3, Locked: true},
				{RGB: RGB{R: 10, G: 10, B: 12}, Count: 1},
			},
		},
		{
			name: "far colours stay apart",
			in: []Swatch{
				{RGB: RGB{R: 255}, Count: 2},
				{RGB: RGB{B: 255}, Count: 2},
			},
			threshold: 40,
			want: []Swatch{
				{RGB: RGB{R: 255}, Count: 2},
				{RGB: RGB{B: 255}, Count: 2},
			},
		},
		{
			name: "threshold is inclusive",
			in: []Swatch{
				{RGB: RGB{R: 0}, Count: 1},
				{RGB: RGB{R: 10}, Count: 1},
			},
			threshold: 10,
			want:      []Swatch{{RGB: RGB{R: 5}, Count: 2}},
		},
		{
			name: "huge threshold does not overflow",
			in: []Swatch{
				{RGB: RGB{}, Count: 1},
				{RGB: RGB{R: 255, G: 255, B: 255}, Count: 1},
			},
			threshold: math.MaxInt,
			want:      []Swatch{{RGB: RGB{R: 128, G: 128, B: 128}, Count: 2}},
		},
		{
			name: "locked colours never merge",
			in: []Swatch{
				{RGB: RGB{R: 100, G: 100, B: 100}, Count: 1, Locked: true},
				{RGB: RGB{R: 101, G: 100, B: 100}, Count: 10},
				{RGB: RGB{R: 102, G: 100, B: 100}, Count: 10},
				{RGB: RGB{R: 103, G: 100, B: 100}, Count: 4, Locked: true},
			},
			threshold: 20,
			want: []Swatch{
				{RGB: RGB{R: 100, G: 100, B: 100}, Count: 1, Locked: true},
				{RGB: RGB{R: 102, G: 100, B: 100}, Count: 20},
				{RGB: RGB{R: 103, G: 100, B: 100}, Count: 4, Locked: true},
			},
		},
		{
			name: "first occurrence order",
			in: []Swatch{
				{RGB: RGB{R: 200}, Count: 1},
				{RGB: RGB{B: 200}, Count: 1},
				{RGB: RGB{R: 202}, Count: 1},
				{RGB: RGB{B: 202}, Count: 1},
			},
			threshold: 5,
			want: []Swatch{
				{RGB: RGB{R: 201}, Count: 2},
				{RGB: RGB{B: 201}, Count: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.in, tt.threshold)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeMaxThresholdCollapsesUnlocked(t *testing.T) {
	in := []Swatch{
		{RGB: RGB{R: 255}, Count: 1},
		{RGB: RGB{G: 255}, Count: 1, Locked: true},
		{RGB: RGB{B: 255}, Count: 1},
		{RGB: RGB{R: 255, G: 255, B: 255}, Count: 2},
		{RGB: RGB{}, Count: 2, Locked: true},
	}

	got := Merge(in, 442)

	var unlocked, locked []Swatch
	for _, s := range got {
		if s.Locked {
			locked = append(locked, s)
		} else {
			unlocked = append(unlocked, s)
		}
	}
	if len(unlocked) != 1 {
		t.Fatalf("got %d unlocked swatches, want 1: %+v", len(unlocked), got)
	}
	if unlocked[0].Count != 4 {
		t.Errorf("merged count = %d, want 4", unlocked[0].Count)
	}
	if diff := cmp.Diff([]Swatch{in[1], in[4]}, locked); diff != "" {
		t.Errorf("locked swatches changed (-want +got):\n%s", diff)
	}
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	in := []Swatch{
		{RGB: RGB{R: 10}, Count: 1},
		{RGB: RGB{R: 12}, Count: 1},
	}
	before := append([]Swatch(nil), in...)
	Merge(in, 10)
	if diff := cmp.Diff(before, in); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}
