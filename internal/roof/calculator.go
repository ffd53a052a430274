package roof

import (
	"fmt"
	"math"
)

// Validate checks that the building can be computed
func (in BuildingInput) Validate() error {
	if err := checkDimension("width", in.Width); err != nil {
		return err
	}
	if err := checkDimension("length", in.Length); err != nil {
		return err
	}
	if !in.RoofType.Valid() {
		return &InputError{Field: "roof_type", msg: fmt.Sprintf("unknown roof type %q", string(in.RoofType))}
	}
	return nil
}

func checkDimension(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InputError{Field: field, msg: "must be a finite number"}
	}
	if v < MinDimension {
		return &InputError{Field: field, msg: fmt.Sprintf("must be at least %.0f m, got %.2f", MinDimension, v)}
	}
	return nil
}

// Compute derives slopes, wall areas and totals for a building.
// It returns an error wrapping ErrInvalidInput when the input is rejected.
func Compute(in BuildingInput) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	var (
		slopes []Slope
		walls  WallAreas
	)

	switch in.RoofType {
	case Single:
		s := deriveSlope(in, in.Width, SingleSlopeCoeff)
		slopes = []Slope{s}

		// Tall wall under the ridge, short wall under the eave
		walls.Wall1 = s.MaxHeight * in.Length
		walls.Wall2 = s.MinHeight*in.Width + s.SideArea
		walls.Wall3 = walls.Wall2
		walls.Wall4 = s.MinHeight * in.Length

	case Double:
		// Each half of the gable is one slope
		s := deriveSlope(in, in.Width/2, DoubleSlopeCoeff)
		slopes = []Slope{s, s}
		walls = eaveWalls(in, s.MinHeight, s.SideArea*2)

	case Multi:
		w1, w2 := SplitWidth(in.Width)
		s1 := deriveSlope(in, w1, SingleSlopeCoeff)
		s2 := deriveSlope(in, w2, SingleSlopeCoeff)
		slopes = []Slope{s1, s2}

		// Slope 1 eave height is the reference for every wall
		walls = eaveWalls(in, s1.MinHeight, s1.SideArea+s2.SideArea)
	}

	walls.Total = walls.Wall1 + walls.Wall2 + walls.Wall3 + walls.Wall4

	result := Result{
		Slopes:      slopes,
		Walls:       walls,
		HasOverhang: in.HasOverhang,
	}
	result.Totals.Walls = walls.Total
	for _, s := range slopes {
		result.Totals.Roof += s.TopArea
		result.Totals.RoofWithoutOverhang += s.TopAreaWithoutOverhang
	}
	result.Totals.Floor = in.Width * in.Length

	return result, nil
}

// deriveSlope computes one slope of horizontal run w whose ridge grows by
// c per meter of run above BaseHeight. MinHeight is not clamped.
func deriveSlope(in BuildingInput, w, c float64) Slope {
	s := Slope{Width: w}

	s.MaxHeight = c*w + BaseHeight
	s.MinHeight = s.MaxHeight - (w*HeightReductionPercent)/100

	drop := s.MaxHeight - s.MinHeight
	s.Length = math.Sqrt(w*w + drop*drop)
	s.SideArea = drop * w / 2

	if in.HasOverhang {
		s.OverhangLength = OverhangLength
	}
	effectiveLength := in.Length + 2*s.OverhangLength
	s.TopArea = s.Length * effectiveLength
	s.TopAreaWithoutOverhang = s.Length * in.Length

	return s
}

// eaveWalls builds walls whose ends stand at eave height h and whose long
// sides carry the gable triangles.
func eaveWalls(in BuildingInput, h, gables float64) WallAreas {
	side := h*in.Width + gables
	return WallAreas{
		Wall1: h * in.Length,
		Wall2: side,
		Wall3: side,
		Wall4: h * in.Length,
	}
}

// SplitWidth divides the footprint width between the two slopes of a
// multi-level roof. The first slope is the wider, higher one.
func SplitWidth(width float64) (slope1, slope2 float64) {
	switch {
	case width <= 7:
		slope1 = 3 + 0.5*(width-5)
	case width == 8 || width == 9:
		slope1 = 5
	case width == 10:
		slope1 = 6
	default:
		slope1 = 0.6 * width
	}
	return slope1, width - slope1
}
