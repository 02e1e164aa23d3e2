package grading

import (
	"math"

	"github.com/kamaru-dev/gpcal-api/internal/models"
)

// ComputeGPA reduces a semester's course list to a credit-weighted
// average grade point. Courses missing a credit unit or grade are
// skipped. A nil result means "no GPA computable", which is distinct
// from a GPA of zero. Rounding happens once, at the final division.
func ComputeGPA(courses []models.Course, scheme models.GradingSystem) *float64 {
	var weighted, credits float64
	for _, course := range courses {
		if !course.Qualifies() {
			continue
		}
		units := float64(*course.CreditUnit)
		weighted += units * GradeToPoint(course.GradePoint, scheme)
		credits += units
	}

	if credits == 0 {
		return nil
	}

	gpa := round2(weighted / credits)
	return &gpa
}

// round2 rounds half-up to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
