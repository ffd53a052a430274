package roof

import (
	"errors"
	"fmt"
	"strings"
)

// RoofType identifies one of the supported roof topologies
type RoofType string

const (
	Single RoofType = "single" // one slope over the full width
	Double RoofType = "double" // symmetric gable
	Multi  RoofType = "multi"  // two single slopes at different heights
)

// RoofTypes lists the supported roof types in display order
var RoofTypes = []RoofType{Single, Double, Multi}

// Valid reports whether t is one of the supported roof types
func (t RoofType) Valid() bool {
	switch t {
	case Single, Double, Multi:
		return true
	}
	return false
}

// Label returns a human readable name for the roof type
func (t RoofType) Label() string {
	switch t {
	case Single:
		return "Single-slope"
	case Double:
		return "Double-slope (gable)"
	case Multi:
		return "Multi-level"
	}
	return string(t)
}

// SlopeCount is the number of slopes a roof of this type has
func (t RoofType) SlopeCount() int {
	if t == Single {
		return 1
	}
	return 2
}

// ParseRoofType converts a user supplied tag into a RoofType.
// A few common aliases are accepted.
func ParseRoofType(s string) (RoofType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "shed", "mono", "single-slope":
		return Single, nil
	case "double", "gable", "double-slope":
		return Double, nil
	case "multi", "multi-level", "split", "split-level":
		return Multi, nil
	}
	return RoofType(s), &InputError{Field: "roof_type", msg: fmt.Sprintf("unknown roof type %q", s)}
}

// UnmarshalText accepts the same tags as ParseRoofType. Unknown tags are
// kept as-is so that Validate can report them.
func (t *RoofType) UnmarshalText(text []byte) error {
	parsed, err := ParseRoofType(string(text))
	if err != nil {
		*t = RoofType(text)
		return nil
	}
	*t = parsed
	return nil
}

// BuildingInput describes the footprint and roof of a building
type BuildingInput struct {
	Width       float64  `json:"width" yaml:"width"`               // m, direction the slopes run
	Length      float64  `json:"length" yaml:"length"`             // m, along the ridge/eave
	RoofType    RoofType `json:"roof_type" yaml:"roof_type"`       // single, double or multi
	HasOverhang bool     `json:"has_overhang" yaml:"has_overhang"` // add eave overhang at both ends
}

// Slope holds the derived geometry of one roof slope
type Slope struct {
	Width                  float64 `json:"width"`      // horizontal run (m)
	MaxHeight              float64 `json:"max_height"` // ridge side (m)
	MinHeight              float64 `json:"min_height"` // eave side (m)
	Length                 float64 `json:"length"`     // sloped surface length (m)
	TopArea                float64 `json:"top_area"`   // m², including overhang
	TopAreaWithoutOverhang float64 `json:"top_area_without_overhang"`
	SideArea               float64 `json:"side_area"`       // gable triangle (m²)
	OverhangLength         float64 `json:"overhang_length"` // m, 0 without overhang
}

// WallAreas holds the area of each of the four walls (m²)
type WallAreas struct {
	Wall1 float64 `json:"wall1"`
	Wall2 float64 `json:"wall2"`
	Wall3 float64 `json:"wall3"`
	Wall4 float64 `json:"wall4"`
	Total float64 `json:"total"`
}

// Totals summarizes the building surfaces (m²)
type Totals struct {
	Walls               float64 `json:"walls"`
	Roof                float64 `json:"roof"`
	RoofWithoutOverhang float64 `json:"roof_without_overhang"`
	Floor               float64 `json:"floor"`
}

// Result is the complete geometric breakdown of a building
type Result struct {
	Slopes      []Slope   `json:"slopes"`
	Walls       WallAreas `json:"walls"`
	Totals      Totals    `json:"totals"`
	HasOverhang bool      `json:"has_overhang"`
}

// ErrInvalidInput is matched by every validation error returned from Compute
var ErrInvalidInput = errors.New("invalid input")

// InputError reports which input field failed validation
type InputError struct {
	Field string
	msg   string
}

func (e *InputError) Error() string {
	return e.Field + ": " + e.msg
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
