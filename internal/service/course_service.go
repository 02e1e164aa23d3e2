package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kamaru-dev/gpcal-api/internal/grading"
	"github.com/kamaru-dev/gpcal-api/internal/models"
	appErrors "github.com/kamaru-dev/gpcal-api/pkg/errors"
)

type courseRepository interface {
	ListBySemester(ctx context.Context, semesterID string) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

type courseSemesterRepository interface {
	FindByID(ctx context.Context, id string) (*models.Semester, error)
	UpdateGPA(ctx context.Context, id string, gpa *float64) error
	LinkedIDs(ctx context.Context, id string) ([]string, error)
}

// CreateCourseRequest handles course creation payload. Credit unit and
// grade may be left out; such a course is kept but never counts toward
// any computation until both are present.
type CreateCourseRequest struct {
	Name       string  `json:"name" validate:"required"`
	CreditUnit *int    `json:"credit_unit" validate:"omitempty,min=0"`
	GradePoint *string `json:"grade_point"`
}

// CourseService manages courses and keeps the owning semester's cached
// GPA in step with every mutation.
type CourseService struct {
	repo      courseRepository
	semesters courseSemesterRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs service.
func NewCourseService(repo courseRepository, semesters courseSemesterRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, semesters: semesters, cache: cache, validator: validate, logger: logger}
}

// List returns a semester's courses in insertion order.
func (s *CourseService) List(ctx context.Context, semesterID string) ([]models.Course, error) {
	if _, err := s.semesters.FindByID(ctx, semesterID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}
	courses, err := s.repo.ListBySemester(ctx, semesterID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// Create adds a course to a semester and recomputes the cached GPA.
func (s *CourseService) Create(ctx context.Context, semesterID string, req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	semester, err := s.semesters.FindByID(ctx, semesterID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}
	course := &models.Course{
		SemesterID: semesterID,
		Name:       req.Name,
		CreditUnit: req.CreditUnit,
		GradePoint: req.GradePoint,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	if err := s.refreshGPA(ctx, semester); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course and recomputes the owning semester's GPA.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course")
	}
	semester, err := s.semesters.FindByID(ctx, course.SemesterID)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	return s.refreshGPA(ctx, semester)
}

// refreshGPA recomputes the owning semester's GPA from its remaining
// courses. The write is suppressed when the value did not change, so an
// unchanged semester keeps its last_updated timestamp.
func (s *CourseService) refreshGPA(ctx context.Context, semester *models.Semester) error {
	courses, err := s.repo.ListBySemester(ctx, semester.ID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	gpa := grading.ComputeGPA(courses, semester.GradingSystem)
	if !gpaChanged(semester.GPA, gpa) {
		s.invalidate(ctx, semester.ID)
		return nil
	}
	if err := s.semesters.UpdateGPA(ctx, semester.ID, gpa); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update semester gpa")
	}
	s.invalidate(ctx, semester.ID)
	return nil
}

func gpaChanged(prev, next *float64) bool {
	if prev == nil && next == nil {
		return false
	}
	if prev == nil || next == nil {
		return true
	}
	return *prev != *next
}

// invalidate drops cached analytics for the semester and its neighbors,
// whose cumulative GPA depends on this semester's courses.
func (s *CourseService) invalidate(ctx context.Context, semesterID string) {
	if !s.cache.Enabled() {
		return
	}
	if err := s.cache.Invalidate(ctx, analyticsCachePattern(semesterID)); err != nil {
		s.logger.Warn("analytics cache invalidation failed", zap.String("semester_id", semesterID), zap.Error(err))
	}
	neighbors, err := s.semesters.LinkedIDs(ctx, semesterID)
	if err != nil {
		s.logger.Warn("linked semester lookup failed", zap.String("semester_id", semesterID), zap.Error(err))
		return
	}
	for _, neighbor := range neighbors {
		if err := s.cache.Invalidate(ctx, analyticsCachePattern(neighbor)); err != nil {
			s.logger.Warn("analytics cache invalidation failed", zap.String("semester_id", neighbor), zap.Error(err))
		}
	}
}
