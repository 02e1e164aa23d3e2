package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamaru-dev/gpcal-api/internal/models"
)

func TestComputeGPAEmpty(t *testing.T) {
	assert.Nil(t, ComputeGPA(nil, models.GradingFivePoint))
	assert.Nil(t, ComputeGPA([]models.Course{}, models.GradingFivePoint))
}

func TestComputeGPASkipsIncompleteCourses(t *testing.T) {
	courses := []models.Course{
		{Name: "No grade", CreditUnit: intPtr(3)},
		{Name: "No credit", GradePoint: strPtr("A")},
		{Name: "Neither"},
	}
	assert.Nil(t, ComputeGPA(courses, models.GradingFivePoint))
}

func TestComputeGPAWeighting(t *testing.T) {
	courses := []models.Course{
		{Name: "MATH101", CreditUnit: intPtr(3), GradePoint: strPtr("A")},
		{Name: "ENG201", CreditUnit: intPtr(2), GradePoint: strPtr("B")},
	}
	gpa := ComputeGPA(courses, models.GradingFivePoint)
	require.NotNil(t, gpa)
	// (3*5 + 2*4) / 5
	assert.Equal(t, 4.60, *gpa)
}

func TestComputeGPAIgnoresIncompleteAlongsideComplete(t *testing.T) {
	courses := []models.Course{
		{Name: "MATH101", CreditUnit: intPtr(3), GradePoint: strPtr("A")},
		{Name: "Draft", CreditUnit: intPtr(4)},
	}
	gpa := ComputeGPA(courses, models.GradingFivePoint)
	require.NotNil(t, gpa)
	assert.Equal(t, 5.0, *gpa)
}

func TestComputeGPARoundsAtFinalDivision(t *testing.T) {
	courses := []models.Course{
		{Name: "One", CreditUnit: intPtr(1), GradePoint: strPtr("A")},
		{Name: "Two", CreditUnit: intPtr(1), GradePoint: strPtr("B")},
		{Name: "Three", CreditUnit: intPtr(1), GradePoint: strPtr("F")},
	}
	gpa := ComputeGPA(courses, models.GradingFivePoint)
	require.NotNil(t, gpa)
	// 9/3 exactly; also exercise a repeating decimal below.
	assert.Equal(t, 3.0, *gpa)

	courses = append(courses, models.Course{Name: "Four", CreditUnit: intPtr(2), GradePoint: strPtr("C")})
	gpa = ComputeGPA(courses, models.GradingFivePoint)
	require.NotNil(t, gpa)
	// 15/5 = 3.0
	assert.Equal(t, 3.0, *gpa)
}

func TestComputeGPAPercentageScheme(t *testing.T) {
	courses := []models.Course{
		{Name: "PHY", CreditUnit: intPtr(3), GradePoint: strPtr("72")},
		{Name: "CHM", CreditUnit: intPtr(3), GradePoint: strPtr("44")},
	}
	gpa := ComputeGPA(courses, models.GradingPercentage)
	require.NotNil(t, gpa)
	assert.Equal(t, 2.0, *gpa)
}

func TestComputeGPAZeroIsNotNil(t *testing.T) {
	courses := []models.Course{
		{Name: "FAIL", CreditUnit: intPtr(3), GradePoint: strPtr("F")},
	}
	gpa := ComputeGPA(courses, models.GradingFivePoint)
	require.NotNil(t, gpa)
	assert.Equal(t, 0.0, *gpa)
}
