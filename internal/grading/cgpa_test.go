package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamaru-dev/gpcal-api/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func semesterWithCourses(id string, scheme models.GradingSystem, courses ...models.Course) models.Semester {
	return models.Semester{ID: id, Name: id, GradingSystem: scheme, Courses: courses}
}

func TestComputeCGPAOneHopOnly(t *testing.T) {
	a := semesterWithCourses("a", models.GradingFivePoint,
		models.Course{Name: "A1", CreditUnit: intPtr(3), GradePoint: strPtr("A")},
	)
	b := semesterWithCourses("b", models.GradingFivePoint,
		models.Course{Name: "B1", CreditUnit: intPtr(3), GradePoint: strPtr("C")},
	)
	// c is linked to b, not to a; it must never reach a's aggregation.
	// The caller resolves one hop, so it simply is not passed in.
	cgpa := ComputeCGPA(a, []models.Semester{b})
	require.NotNil(t, cgpa)
	// (3*5 + 3*3) / 6 = 4.0
	assert.Equal(t, 4.0, *cgpa)
}

func TestComputeCGPAUsesEachSemestersOwnScheme(t *testing.T) {
	a := semesterWithCourses("a", models.GradingFivePoint,
		models.Course{Name: "A1", CreditUnit: intPtr(2), GradePoint: strPtr("A")},
	)
	b := semesterWithCourses("b", models.GradingFourPoint,
		models.Course{Name: "B1", CreditUnit: intPtr(2), GradePoint: strPtr("A")},
	)
	cgpa := ComputeCGPA(a, []models.Semester{b})
	require.NotNil(t, cgpa)
	// A is worth 5 under a's scheme but 4 under b's: (2*5 + 2*4) / 4
	assert.Equal(t, 4.5, *cgpa)
}

func TestComputeCGPAPhantomImputation(t *testing.T) {
	a := semesterWithCourses("a", models.GradingFivePoint,
		models.Course{Name: "A1", CreditUnit: intPtr(9), GradePoint: strPtr("A")},
		models.Course{Name: "A2", CreditUnit: intPtr(6), GradePoint: strPtr("B")},
	)
	phantom := models.Semester{ID: "b", Name: "b", GradingSystem: models.GradingFivePoint, GPA: floatPtr(4.0)}

	cgpa := ComputeCGPA(a, []models.Semester{phantom})
	require.NotNil(t, cgpa)
	// a carries 15 credits, so the phantom is imputed a 15-credit load:
	// (9*5 + 6*4 + 4.0*15) / (15 + 15) = 129/30
	assert.Equal(t, 4.3, *cgpa)
}

func TestComputeCGPAScenario(t *testing.T) {
	fall := semesterWithCourses("fall", models.GradingFivePoint,
		models.Course{Name: "MATH101", CreditUnit: intPtr(3), GradePoint: strPtr("A")},
		models.Course{Name: "ENG201", CreditUnit: intPtr(2), GradePoint: strPtr("B")},
	)
	gpa := ComputeGPA(fall.Courses, fall.GradingSystem)
	require.NotNil(t, gpa)
	assert.Equal(t, 4.60, *gpa)

	summer := models.Semester{ID: "summer", Name: "Summer", GradingSystem: models.GradingFivePoint, GPA: floatPtr(3.0)}
	cgpa := ComputeCGPA(fall, []models.Semester{summer})
	require.NotNil(t, cgpa)
	// (3*5 + 2*4 + 3.0*5) / (5 + 5) = 38/10
	assert.Equal(t, 3.80, *cgpa)
}

func TestComputeCGPAAllPhantomsAssumeUnitLoad(t *testing.T) {
	target := models.Semester{ID: "a", GradingSystem: models.GradingFivePoint, GPA: floatPtr(3.0)}
	other := models.Semester{ID: "b", GradingSystem: models.GradingFivePoint, GPA: floatPtr(4.0)}

	cgpa := ComputeCGPA(target, []models.Semester{other})
	require.NotNil(t, cgpa)
	// 1 credit each: (3.0 + 4.0) / 2
	assert.Equal(t, 3.5, *cgpa)
}

func TestComputeCGPANothingComputable(t *testing.T) {
	target := models.Semester{ID: "a", GradingSystem: models.GradingFivePoint}
	assert.Nil(t, ComputeCGPA(target, nil))

	// Linked semester with only incomplete courses and no cached GPA.
	linked := semesterWithCourses("b", models.GradingFivePoint,
		models.Course{Name: "DRAFT", CreditUnit: intPtr(3)},
	)
	assert.Nil(t, ComputeCGPA(target, []models.Semester{linked}))
}

func TestComputeCGPAPhantomWithoutGPAIsIgnored(t *testing.T) {
	a := semesterWithCourses("a", models.GradingFivePoint,
		models.Course{Name: "A1", CreditUnit: intPtr(5), GradePoint: strPtr("B")},
	)
	empty := models.Semester{ID: "b", GradingSystem: models.GradingFivePoint}

	cgpa := ComputeCGPA(a, []models.Semester{empty})
	require.NotNil(t, cgpa)
	assert.Equal(t, 4.0, *cgpa)
}
