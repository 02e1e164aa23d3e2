package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kamaru-dev/gpcal-api/internal/models"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func TestGradeToPointFivePointTable(t *testing.T) {
	assert.Equal(t, 5.0, GradeToPoint(strPtr("A"), models.GradingFivePoint))
	assert.Equal(t, 4.0, GradeToPoint(strPtr("B"), models.GradingFivePoint))
	assert.Equal(t, 1.0, GradeToPoint(strPtr("E"), models.GradingFivePoint))
	assert.Equal(t, 0.0, GradeToPoint(strPtr("F"), models.GradingFivePoint))
}

func TestGradeToPointFourPointTable(t *testing.T) {
	assert.Equal(t, 4.0, GradeToPoint(strPtr("A"), models.GradingFourPoint))
	assert.Equal(t, 1.0, GradeToPoint(strPtr("D"), models.GradingFourPoint))
	// E is not part of the four-point scheme.
	assert.Equal(t, 0.0, GradeToPoint(strPtr("E"), models.GradingFourPoint))
}

func TestGradeToPointPlusMinusTable(t *testing.T) {
	assert.Equal(t, 4.0, GradeToPoint(strPtr("A+"), models.GradingPlusMinus))
	assert.Equal(t, 3.9, GradeToPoint(strPtr("A"), models.GradingPlusMinus))
	assert.Equal(t, 2.7, GradeToPoint(strPtr("B-"), models.GradingPlusMinus))
	// The scheme label uses the typographic minus; both spellings work.
	assert.Equal(t, 3.7, GradeToPoint(strPtr("A−"), models.GradingPlusMinus))
	assert.Equal(t, 0.7, GradeToPoint(strPtr("d−"), models.GradingPlusMinus))
}

func TestGradeToPointNormalization(t *testing.T) {
	assert.Equal(t, 5.0, GradeToPoint(strPtr("  a "), models.GradingFivePoint))
	assert.Equal(t, 0.0, GradeToPoint(strPtr("Z"), models.GradingFivePoint))
	assert.Equal(t, 0.0, GradeToPoint(nil, models.GradingFivePoint))
}

func TestGradeToPointPercentage(t *testing.T) {
	assert.Equal(t, 4.0, GradeToPoint(strPtr("72"), models.GradingPercentage))
	assert.Equal(t, 3.0, GradeToPoint(strPtr("65"), models.GradingPercentage))
	assert.Equal(t, 2.0, GradeToPoint(strPtr("50"), models.GradingPercentage))
	assert.Equal(t, 1.0, GradeToPoint(strPtr("45"), models.GradingPercentage))
	assert.Equal(t, 0.0, GradeToPoint(strPtr("44"), models.GradingPercentage))
	assert.Equal(t, 0.0, GradeToPoint(strPtr("not-a-number"), models.GradingPercentage))
	assert.Equal(t, 0.0, GradeToPoint(nil, models.GradingPercentage))
}

func TestGradeToPointUnknownScheme(t *testing.T) {
	assert.Equal(t, 0.0, GradeToPoint(strPtr("A"), models.GradingSystem("Pass/Fail")))
}
