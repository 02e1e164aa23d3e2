package grading

import (
	"strings"

	"github.com/kamaru-dev/gpcal-api/internal/models"
)

var fivePointTable = map[string]float64{
	"A": 5,
	"B": 4,
	"C": 3,
	"D": 2,
	"E": 1,
	"F": 0,
}

var fourPointTable = map[string]float64{
	"A": 4,
	"B": 3,
	"C": 2,
	"D": 1,
	"F": 0,
}

var plusMinusTable = map[string]float64{
	"A+": 4.0,
	"A":  3.9,
	"A-": 3.7,
	"B+": 3.3,
	"B":  3.0,
	"B-": 2.7,
	"C+": 2.3,
	"C":  2.0,
	"C-": 1.7,
	"D+": 1.3,
	"D":  1.0,
	"D-": 0.7,
	"F":  0,
}

// Table resolves a grading scheme to its symbol→point mapping. The
// second return is true when the scheme is percentage-based, in which
// case there is no table and conversion follows the piecewise rule in
// GradeToPoint. Unknown scheme identifiers resolve to no table, so
// every symbol under them converts to 0.
func Table(scheme models.GradingSystem) (map[string]float64, bool) {
	switch scheme {
	case models.GradingFivePoint:
		return fivePointTable, false
	case models.GradingFourPoint:
		return fourPointTable, false
	case models.GradingPlusMinus:
		return plusMinusTable, false
	case models.GradingPercentage:
		return nil, true
	default:
		return nil, false
	}
}

// normalizeSymbol prepares a grade symbol for table lookup: surrounding
// whitespace is trimmed, the symbol is uppercased, and the typographic
// minus (U+2212) used by the +/- scheme label is folded to ASCII '-'.
func normalizeSymbol(symbol string) string {
	symbol = strings.TrimSpace(symbol)
	symbol = strings.ReplaceAll(symbol, "−", "-")
	return strings.ToUpper(symbol)
}
