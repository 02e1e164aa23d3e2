package grading

import (
	"github.com/kamaru-dev/gpcal-api/internal/models"
)

// palette supplies deterministic slice colors; the chart renderer only
// needs a distinct-looking hex string per course.
var palette = []string{
	"#6c5ce7", "#00b894", "#fdcb6e", "#e17055",
	"#0984e3", "#d63031", "#00cec9", "#e84393",
	"#2d3436", "#55efc4", "#a29bfe", "#fab1a0",
}

// DonutSlices derives each qualifying course's percentage contribution
// for the donut chart. The basis is the credit-weighted grade points
// when they sum above zero, falling back to raw credit units so an
// all-zero-grade semester still shows relative course size. Rounded
// percentages always sum to exactly 100.00: the residual left by
// per-slice rounding is folded into the largest contributor. Output
// order follows input order.
func DonutSlices(courses []models.Course, scheme models.GradingSystem) []models.DonutSlice {
	type entry struct {
		course models.Course
		weight float64
		units  float64
	}

	var entries []entry
	var weightSum, unitSum float64
	for _, course := range courses {
		if !course.Qualifies() {
			continue
		}
		units := float64(*course.CreditUnit)
		weight := units * GradeToPoint(course.GradePoint, scheme)
		entries = append(entries, entry{course: course, weight: weight, units: units})
		weightSum += weight
		unitSum += units
	}

	if len(entries) == 0 {
		return nil
	}

	basisOf := func(e entry) float64 { return 0 }
	var basisTotal float64
	switch {
	case weightSum > 0:
		basisOf = func(e entry) float64 { return e.weight }
		basisTotal = weightSum
	case unitSum > 0:
		basisOf = func(e entry) float64 { return e.units }
		basisTotal = unitSum
	}

	slices := make([]models.DonutSlice, len(entries))
	largest := 0
	var rounded float64
	for i, e := range entries {
		var pct float64
		if basisTotal > 0 {
			pct = round2(basisOf(e) / basisTotal * 100)
		}
		slices[i] = models.DonutSlice{
			Value: pct,
			Color: palette[i%len(palette)],
			Text:  e.course.Name,
		}
		rounded += pct
		if basisOf(e) > basisOf(entries[largest]) {
			largest = i
		}
	}

	if basisTotal > 0 {
		residual := round2(100 - rounded)
		if residual != 0 {
			slices[largest].Value = round2(slices[largest].Value + residual)
		}
	}

	return slices
}
