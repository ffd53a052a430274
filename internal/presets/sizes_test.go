package presets

import (
	"testing"

	"github.com/alexiusacademia/gohouse/internal/roof"
)

func TestForEveryRoofType(t *testing.T) {
	for _, rt := range roof.RoofTypes {
		opts, ok := For(rt)
		if !ok {
			t.Fatalf("%s: no sizes defined", rt)
		}
		if len(opts.Widths) == 0 || len(opts.Lengths) == 0 {
			t.Errorf("%s: empty size list", rt)
		}
	}

	if _, ok := For("unknown"); ok {
		t.Error("expected no sizes for unknown roof type")
	}
}

func TestIsStandard(t *testing.T) {
	tests := []struct {
		in   roof.BuildingInput
		want bool
	}{
		{roof.BuildingInput{Width: 3.5, Length: 8, RoofType: roof.Single}, true},
		{roof.BuildingInput{Width: 7, Length: 8, RoofType: roof.Single}, false},
		{roof.BuildingInput{Width: 7, Length: 12, RoofType: roof.Double}, true},
		{roof.BuildingInput{Width: 4, Length: 6, RoofType: roof.Multi}, false},
		{roof.BuildingInput{Width: 10, Length: 13, RoofType: roof.Multi}, false},
		{roof.BuildingInput{Width: 5, Length: 5, RoofType: "dome"}, false},
	}

	for _, tt := range tests {
		if got := IsStandard(tt.in); got != tt.want {
			t.Errorf("%+v: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestCatalogueComputes(t *testing.T) {
	for _, rt := range roof.RoofTypes {
		inputs := Combinations(rt)
		opts, _ := For(rt)
		if len(inputs) != len(opts.Widths)*len(opts.Lengths)*2 {
			t.Fatalf("%s: expected %d combinations, got %d", rt, len(opts.Widths)*len(opts.Lengths)*2, len(inputs))
		}
		for _, in := range inputs {
			res, err := roof.Compute(in)
			if err != nil {
				t.Errorf("%+v: unexpected error: %v", in, err)
				continue
			}
			for i, s := range res.Slopes {
				if s.MinHeight <= 0 {
					t.Errorf("%+v slope %d: non-positive eave height %.2f", in, i+1, s.MinHeight)
				}
			}
		}
	}
}

func TestRoofAreaByWidth(t *testing.T) {
	widths, areas := RoofAreaByWidth(roof.Double, 10, false)
	opts, _ := For(roof.Double)
	if len(widths) != len(opts.Widths) || len(areas) != len(widths) {
		t.Fatalf("got %d widths and %d areas, want %d", len(widths), len(areas), len(opts.Widths))
	}
	for i := 1; i < len(areas); i++ {
		if areas[i] <= areas[i-1] {
			t.Errorf("roof area should grow with width: %.2f at %v, %.2f at %v",
				areas[i-1], widths[i-1], areas[i], widths[i])
		}
	}

	if w, a := RoofAreaByWidth("unknown", 10, false); w != nil || a != nil {
		t.Error("expected no curve for unknown roof type")
	}
	if w, _ := RoofAreaByWidth(roof.Single, 0.5, false); len(w) != 0 {
		t.Errorf("invalid length should skip every width, got %v", w)
	}
}
