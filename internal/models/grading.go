package models

// GradingSystem identifies one of the closed set of grading schemes.
// The value is frozen on the semester record at creation time from the
// then-current global configuration; computations never consult the
// live setting.
type GradingSystem string

const (
	// GradingFivePoint maps A..F onto 5..0.
	GradingFivePoint GradingSystem = "A, B, C, D, E, F"
	// GradingFourPoint maps A..F (no E) onto 4..0.
	GradingFourPoint GradingSystem = "A, B, C, D, F"
	// GradingPlusMinus is the 13-symbol +/- scale topping out at 4.0.
	GradingPlusMinus GradingSystem = "A+, A, A−, B+, B, B−, C+, C, C−, D+, D, D−, F"
	// GradingPercentage carries numeric percentage strings converted by
	// a fixed piecewise rule instead of a symbol table.
	GradingPercentage GradingSystem = "Percentage"
)

// GradingSystems lists every recognised scheme identifier.
func GradingSystems() []GradingSystem {
	return []GradingSystem{
		GradingFivePoint,
		GradingFourPoint,
		GradingPlusMinus,
		GradingPercentage,
	}
}

// Valid reports whether the identifier belongs to the closed set.
func (g GradingSystem) Valid() bool {
	switch g {
	case GradingFivePoint, GradingFourPoint, GradingPlusMinus, GradingPercentage:
		return true
	}
	return false
}
