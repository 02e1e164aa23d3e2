package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kamaru-dev/gpcal-api/internal/models"
)

type mockCourseRepo struct {
	courses map[string]*models.Course
	nextID  int
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*models.Course)}
}

func (m *mockCourseRepo) ListBySemester(ctx context.Context, semesterID string) ([]models.Course, error) {
	var out []models.Course
	for _, c := range m.courses {
		if c.SemesterID == semesterID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCourseRepo) FindByID(ctx context.Context, id string) (*models.Course, error) {
	if c, ok := m.courses[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockCourseRepo) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		m.nextID++
		course.ID = fmt.Sprintf("course%d", m.nextID)
	}
	copied := *course
	m.courses[course.ID] = &copied
	return nil
}

func (m *mockCourseRepo) Delete(ctx context.Context, id string) error {
	delete(m.courses, id)
	return nil
}

func newCourseService(courses *mockCourseRepo, semesters *mockSemesterRepo) *CourseService {
	cache := NewCacheService(nil, nil, 0, zap.NewNop(), false)
	return NewCourseService(courses, semesters, cache, validator.New(), zap.NewNop())
}

func intRef(v int) *int { return &v }

func strRef(v string) *string { return &v }

func floatRef(v float64) *float64 { return &v }

func TestCourseServiceCreateRecomputesGPA(t *testing.T) {
	semesters := newMockSemesterRepo()
	semesters.semesters["s1"] = &models.Semester{ID: "s1", Name: "Fall", GradingSystem: models.GradingFivePoint}
	courses := newMockCourseRepo()
	svc := newCourseService(courses, semesters)

	_, err := svc.Create(context.Background(), "s1", CreateCourseRequest{Name: "Algorithms", CreditUnit: intRef(3), GradePoint: strRef("A")})
	require.NoError(t, err)

	require.NotNil(t, semesters.semesters["s1"].GPA)
	assert.InDelta(t, 5.0, *semesters.semesters["s1"].GPA, 0.0001)
	assert.Equal(t, 1, semesters.gpaWrites)
}

func TestCourseServiceIncompleteCourseSuppressesWrite(t *testing.T) {
	semesters := newMockSemesterRepo()
	semesters.semesters["s1"] = &models.Semester{ID: "s1", Name: "Fall", GradingSystem: models.GradingFivePoint}
	courses := newMockCourseRepo()
	svc := newCourseService(courses, semesters)

	// No credit unit and no grade, so the GPA stays nil and nothing is
	// written back.
	_, err := svc.Create(context.Background(), "s1", CreateCourseRequest{Name: "Seminar"})
	require.NoError(t, err)

	assert.Nil(t, semesters.semesters["s1"].GPA)
	assert.Equal(t, 0, semesters.gpaWrites)
}

func TestCourseServiceUnchangedGPASuppressesWrite(t *testing.T) {
	semesters := newMockSemesterRepo()
	semesters.semesters["s1"] = &models.Semester{ID: "s1", Name: "Fall", GradingSystem: models.GradingFivePoint, GPA: floatRef(5.0)}
	courses := newMockCourseRepo()
	courses.courses["c1"] = &models.Course{ID: "c1", SemesterID: "s1", Name: "Algorithms", CreditUnit: intRef(3), GradePoint: strRef("A")}
	svc := newCourseService(courses, semesters)

	// Another straight A leaves the average at 5.00.
	_, err := svc.Create(context.Background(), "s1", CreateCourseRequest{Name: "Compilers", CreditUnit: intRef(2), GradePoint: strRef("A")})
	require.NoError(t, err)

	assert.Equal(t, 0, semesters.gpaWrites)
}

func TestCourseServiceDeleteRecomputesGPA(t *testing.T) {
	semesters := newMockSemesterRepo()
	semesters.semesters["s1"] = &models.Semester{ID: "s1", Name: "Fall", GradingSystem: models.GradingFivePoint, GPA: floatRef(4.6)}
	courses := newMockCourseRepo()
	courses.courses["c1"] = &models.Course{ID: "c1", SemesterID: "s1", Name: "Algorithms", CreditUnit: intRef(3), GradePoint: strRef("A")}
	courses.courses["c2"] = &models.Course{ID: "c2", SemesterID: "s1", Name: "Databases", CreditUnit: intRef(2), GradePoint: strRef("B")}
	svc := newCourseService(courses, semesters)

	require.NoError(t, svc.Delete(context.Background(), "c2"))

	require.NotNil(t, semesters.semesters["s1"].GPA)
	assert.InDelta(t, 5.0, *semesters.semesters["s1"].GPA, 0.0001)
}

func TestCourseServiceDeleteLastCourseClearsGPA(t *testing.T) {
	semesters := newMockSemesterRepo()
	semesters.semesters["s1"] = &models.Semester{ID: "s1", Name: "Fall", GradingSystem: models.GradingFivePoint, GPA: floatRef(5.0)}
	courses := newMockCourseRepo()
	courses.courses["c1"] = &models.Course{ID: "c1", SemesterID: "s1", Name: "Algorithms", CreditUnit: intRef(3), GradePoint: strRef("A")}
	svc := newCourseService(courses, semesters)

	require.NoError(t, svc.Delete(context.Background(), "c1"))

	assert.Nil(t, semesters.semesters["s1"].GPA)
	assert.Equal(t, 1, semesters.gpaWrites)
}

func TestCourseServiceCreateUnknownSemester(t *testing.T) {
	semesters := newMockSemesterRepo()
	courses := newMockCourseRepo()
	svc := newCourseService(courses, semesters)

	_, err := svc.Create(context.Background(), "ghost", CreateCourseRequest{Name: "Algorithms"})
	require.Error(t, err)
}
