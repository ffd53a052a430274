package roof

// Frame house geometry constants (meters, percent)

const (
	// Height growth per meter of width
	SingleSlopeCoeff = 0.3  // single-slope and each multi-level slope
	DoubleSlopeCoeff = 0.15 // gable roof, per half-width

	// Baseline ridge/eave height
	BaseHeight = 2.4 // m

	// Share of the slope run subtracted from the ridge height to get the eave height
	HeightReductionPercent = 30.0 // %

	// Eave overhang added at both ends of the roof length when enabled
	OverhangLength = 0.3 // m

	// Smallest accepted footprint dimension
	MinDimension = 1.0 // m
)
