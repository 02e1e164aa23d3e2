package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamaru-dev/gpcal-api/internal/models"
)

func sliceSum(slices []models.DonutSlice) float64 {
	var sum float64
	for _, s := range slices {
		sum += s.Value
	}
	return sum
}

func TestDonutSlicesEmpty(t *testing.T) {
	assert.Empty(t, DonutSlices(nil, models.GradingFivePoint))
	assert.Empty(t, DonutSlices([]models.Course{{Name: "incomplete", CreditUnit: intPtr(3)}}, models.GradingFivePoint))
}

func TestDonutSlicesSumToHundred(t *testing.T) {
	courses := []models.Course{
		{Name: "MATH101", CreditUnit: intPtr(3), GradePoint: strPtr("A")},
		{Name: "ENG201", CreditUnit: intPtr(2), GradePoint: strPtr("B")},
		{Name: "CSC305", CreditUnit: intPtr(4), GradePoint: strPtr("C")},
		{Name: "ECO210", CreditUnit: intPtr(3), GradePoint: strPtr("A")},
	}
	slices := DonutSlices(courses, models.GradingFivePoint)
	require.Len(t, slices, 4)
	assert.InDelta(t, 100.00, sliceSum(slices), 0.01)
}

func TestDonutSlicesResidualFoldsIntoLargest(t *testing.T) {
	// Three equal thirds round to 33.33 each; the largest (first) slice
	// absorbs the 0.01 residual.
	courses := []models.Course{
		{Name: "ONE", CreditUnit: intPtr(1), GradePoint: strPtr("A")},
		{Name: "TWO", CreditUnit: intPtr(1), GradePoint: strPtr("A")},
		{Name: "THREE", CreditUnit: intPtr(1), GradePoint: strPtr("A")},
	}
	slices := DonutSlices(courses, models.GradingFivePoint)
	require.Len(t, slices, 3)
	assert.InDelta(t, 100.00, sliceSum(slices), 0.001)
	assert.Equal(t, 33.34, slices[0].Value)
	assert.Equal(t, 33.33, slices[1].Value)
	assert.Equal(t, 33.33, slices[2].Value)
}

func TestDonutSlicesAllZeroGradesFallBackToCredits(t *testing.T) {
	courses := []models.Course{
		{Name: "ONE", CreditUnit: intPtr(3), GradePoint: strPtr("F")},
		{Name: "TWO", CreditUnit: intPtr(1), GradePoint: strPtr("F")},
	}
	slices := DonutSlices(courses, models.GradingFivePoint)
	require.Len(t, slices, 2)
	assert.Equal(t, 75.0, slices[0].Value)
	assert.Equal(t, 25.0, slices[1].Value)
}

func TestDonutSlicesOrderingAndColors(t *testing.T) {
	courses := []models.Course{
		{Name: "FIRST", CreditUnit: intPtr(1), GradePoint: strPtr("C")},
		{Name: "SECOND", CreditUnit: intPtr(5), GradePoint: strPtr("A")},
	}
	slices := DonutSlices(courses, models.GradingFivePoint)
	require.Len(t, slices, 2)
	assert.Equal(t, "FIRST", slices[0].Text)
	assert.Equal(t, "SECOND", slices[1].Text)
	for _, s := range slices {
		assert.NotEmpty(t, s.Color)
	}
}

func TestDonutSlicesSkipIncomplete(t *testing.T) {
	courses := []models.Course{
		{Name: "REAL", CreditUnit: intPtr(2), GradePoint: strPtr("B")},
		{Name: "DRAFT", CreditUnit: intPtr(2)},
	}
	slices := DonutSlices(courses, models.GradingFivePoint)
	require.Len(t, slices, 1)
	assert.Equal(t, 100.0, slices[0].Value)
}
