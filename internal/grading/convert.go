package grading

import (
	"strconv"
	"strings"

	"github.com/kamaru-dev/gpcal-api/internal/models"
)

// GradeToPoint converts a single grade under the given scheme to its
// numeric point value. A nil grade, an unparsable percentage, or a
// symbol outside the scheme's table all convert to 0.
//
// The percentage rule is a fixed 4-point conversion (>=70 → 4, >=60 →
// 3, >=50 → 2, >=45 → 1, else 0) even though the default letter table
// tops out at 5. That mismatch is inherited behavior: rescaling it
// would change every stored CGPA for percentage-graded semesters.
func GradeToPoint(grade *string, scheme models.GradingSystem) float64 {
	if grade == nil {
		return 0
	}

	table, percentage := Table(scheme)
	if percentage {
		value, err := strconv.ParseFloat(strings.TrimSpace(*grade), 64)
		if err != nil {
			return 0
		}
		switch {
		case value >= 70:
			return 4
		case value >= 60:
			return 3
		case value >= 50:
			return 2
		case value >= 45:
			return 1
		default:
			return 0
		}
	}

	return table[normalizeSymbol(*grade)]
}
