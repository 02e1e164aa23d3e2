package service

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/kamaru-dev/gpcal-api/internal/grading"
	"github.com/kamaru-dev/gpcal-api/internal/models"
	appErrors "github.com/kamaru-dev/gpcal-api/pkg/errors"
)

type analyticsSemesterRepository interface {
	FindByID(ctx context.Context, id string) (*models.Semester, error)
	ResolveLinked(ctx context.Context, id string) ([]models.Semester, error)
}

type analyticsCourseReader interface {
	ListBySemester(ctx context.Context, semesterID string) ([]models.Course, error)
}

func analyticsCacheKey(semesterID string) string {
	return "analytics:semester:" + semesterID
}

func analyticsCachePattern(semesterID string) string {
	return analyticsCacheKey(semesterID) + "*"
}

// AnalyticsService assembles the per-semester analytics payload: the
// semester's own GPA, the cumulative GPA over the one-hop linked set,
// and the donut chart slices.
type AnalyticsService struct {
	semesters analyticsSemesterRepository
	courses   analyticsCourseReader
	cache     *CacheService
	ttl       time.Duration
	logger    *zap.Logger
}

// NewAnalyticsService constructs service.
func NewAnalyticsService(semesters analyticsSemesterRepository, courses analyticsCourseReader, cache *CacheService, ttl time.Duration, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{semesters: semesters, courses: courses, cache: cache, ttl: ttl, logger: logger}
}

// SemesterAnalytics returns analytics for a semester, serving from
// cache when possible.
func (s *AnalyticsService) SemesterAnalytics(ctx context.Context, semesterID string) (*models.SemesterAnalytics, error) {
	key := analyticsCacheKey(semesterID)
	var cached models.SemesterAnalytics
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	analytics, err := s.compute(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, analytics, s.ttl); err != nil {
		s.logger.Warn("analytics cache write failed", zap.String("semester_id", semesterID), zap.Error(err))
	}
	return analytics, nil
}

func (s *AnalyticsService) compute(ctx context.Context, semesterID string) (*models.SemesterAnalytics, error) {
	semester, err := s.semesters.FindByID(ctx, semesterID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}
	courses, err := s.courses.ListBySemester(ctx, semesterID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	semester.Courses = courses

	linked, err := s.semesters.ResolveLinked(ctx, semesterID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve linked semesters")
	}
	for i := range linked {
		linkedCourses, err := s.courses.ListBySemester(ctx, linked[i].ID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
		}
		linked[i].Courses = linkedCourses
	}

	gpa := grading.ComputeGPA(semester.Courses, semester.GradingSystem)
	if gpa == nil {
		// A summary-only semester keeps its manually entered value.
		gpa = semester.GPA
	}

	return &models.SemesterAnalytics{
		SemesterID:  semesterID,
		GPA:         gpa,
		CGPA:        grading.ComputeCGPA(*semester, linked),
		Donut:       grading.DonutSlices(semester.Courses, semester.GradingSystem),
		LinkedCount: len(linked),
		GeneratedAt: time.Now().UTC(),
	}, nil
}
