package presets

import (
	"slices"

	"github.com/alexiusacademia/gohouse/internal/roof"
)

// SizeOptions lists the standard footprint dimensions offered for a roof type
type SizeOptions struct {
	RoofType roof.RoofType `json:"roof_type"`
	Widths   []float64     `json:"widths"`  // m
	Lengths  []float64     `json:"lengths"` // m
}

var standardLengths = []float64{3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

// Standard sizes of the frame house catalogue
var Sizes = []SizeOptions{
	{
		RoofType: roof.Single,
		Widths:   []float64{3, 3.5, 4, 4.5, 5, 6},
		Lengths:  standardLengths,
	},
	{
		RoofType: roof.Double,
		Widths:   []float64{3, 4, 5, 6, 7, 8, 9, 10},
		Lengths:  standardLengths,
	},
	{
		RoofType: roof.Multi,
		Widths:   []float64{5, 6, 7, 8, 9, 10},
		Lengths:  standardLengths,
	},
}

// For returns the standard sizes for a roof type
func For(t roof.RoofType) (SizeOptions, bool) {
	for _, opts := range Sizes {
		if opts.RoofType == t {
			return opts, true
		}
	}
	return SizeOptions{}, false
}

// IsStandard reports whether the building uses catalogue dimensions
func IsStandard(in roof.BuildingInput) bool {
	opts, ok := For(in.RoofType)
	if !ok {
		return false
	}
	return slices.Contains(opts.Widths, in.Width) && slices.Contains(opts.Lengths, in.Length)
}

// Combinations enumerates every catalogue building of a roof type, with and
// without overhang.
func Combinations(t roof.RoofType) []roof.BuildingInput {
	opts, ok := For(t)
	if !ok {
		return nil
	}
	inputs := make([]roof.BuildingInput, 0, len(opts.Widths)*len(opts.Lengths)*2)
	for _, w := range opts.Widths {
		for _, l := range opts.Lengths {
			for _, overhang := range []bool{false, true} {
				inputs = append(inputs, roof.BuildingInput{Width: w, Length: l, RoofType: t, HasOverhang: overhang})
			}
		}
	}
	return inputs
}

// RoofAreaByWidth computes the roof surface of every catalogue width of a
// roof type at the given length. Widths that fail validation are skipped.
func RoofAreaByWidth(t roof.RoofType, length float64, overhang bool) (widths, areas []float64) {
	opts, ok := For(t)
	if !ok {
		return nil, nil
	}
	for _, w := range opts.Widths {
		res, err := roof.Compute(roof.BuildingInput{Width: w, Length: length, RoofType: t, HasOverhang: overhang})
		if err != nil {
			continue
		}
		widths = append(widths, w)
		areas = append(areas, res.Totals.Roof)
	}
	return widths, areas
}
