package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kamaru-dev/gpcal-api/internal/models"
	appErrors "github.com/kamaru-dev/gpcal-api/pkg/errors"
)

type semesterRepository interface {
	List(ctx context.Context, filter models.SemesterFilter) ([]models.Semester, int, error)
	FindByID(ctx context.Context, id string) (*models.Semester, error)
	Create(ctx context.Context, semester *models.Semester) error
	Update(ctx context.Context, semester *models.Semester) error
	LinkedIDs(ctx context.Context, id string) ([]string, error)
	ResolveLinked(ctx context.Context, id string) ([]models.Semester, error)
	Link(ctx context.Context, semesterID, linkedID string) error
	Unlink(ctx context.Context, semesterID, linkedID string) error
	Delete(ctx context.Context, id string) error
}

type semesterCourseReader interface {
	ListBySemester(ctx context.Context, semesterID string) ([]models.Course, error)
}

type gradingSchemeSource interface {
	Current(ctx context.Context) (models.GradingSystem, error)
}

// CreateSemesterRequest handles creation payload. When GradingSystem is
// empty the current global scheme is frozen onto the record instead.
type CreateSemesterRequest struct {
	Name          string               `json:"name" validate:"required"`
	GradingSystem models.GradingSystem `json:"grading_system"`
}

// UpdateSemesterRequest handles update payload. GPA may be supplied for
// summary-only semesters that carry no itemized courses.
type UpdateSemesterRequest struct {
	Name string   `json:"name" validate:"required"`
	GPA  *float64 `json:"gpa"`
}

// LinkSemesterRequest names the other endpoint of a link.
type LinkSemesterRequest struct {
	LinkedSemesterID string `json:"linked_semester_id" validate:"required"`
}

// SemesterService manages semester records and their link adjacency.
type SemesterService struct {
	repo      semesterRepository
	courses   semesterCourseReader
	schemes   gradingSchemeSource
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSemesterService constructs service.
func NewSemesterService(repo semesterRepository, courses semesterCourseReader, schemes gradingSchemeSource, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *SemesterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SemesterService{repo: repo, courses: courses, schemes: schemes, cache: cache, validator: validate, logger: logger}
}

// List returns semesters for the filter plus pagination metadata.
func (s *SemesterService) List(ctx context.Context, filter models.SemesterFilter) ([]models.Semester, *models.Pagination, error) {
	semesters, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list semesters")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	return semesters, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}

// Get returns a semester with its courses and linked id set.
func (s *SemesterService) Get(ctx context.Context, id string) (*models.Semester, error) {
	semester, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}
	return s.hydrate(ctx, semester)
}

// Create inserts a new semester. The grading scheme is taken from the
// request when present, otherwise from the current global setting, and
// is frozen on the record from then on.
func (s *SemesterService) Create(ctx context.Context, req CreateSemesterRequest) (*models.Semester, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid semester payload")
	}
	scheme := req.GradingSystem
	if scheme == "" {
		current, err := s.schemes.Current(ctx)
		if err != nil {
			return nil, err
		}
		scheme = current
	}
	if !scheme.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnknownScheme, "")
	}
	semester := &models.Semester{Name: req.Name, GradingSystem: scheme}
	if err := s.repo.Create(ctx, semester); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create semester")
	}
	semester.LinkedSemesters = []string{}
	semester.Courses = []models.Course{}
	return semester, nil
}

// Update renames a semester and, for summary-only records, overwrites
// the cached GPA.
func (s *SemesterService) Update(ctx context.Context, id string, req UpdateSemesterRequest) (*models.Semester, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid semester payload")
	}
	semester, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}
	semester.Name = req.Name
	if req.GPA != nil {
		semester.GPA = req.GPA
	}
	if err := s.repo.Update(ctx, semester); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update semester")
	}
	s.invalidateAnalytics(ctx, id)
	return s.hydrate(ctx, semester)
}

// Delete removes a semester. Every neighbor is unlinked and every owned
// course deleted in the same transaction.
func (s *SemesterService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}
	neighbors, err := s.repo.LinkedIDs(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load linked semesters")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete semester")
	}
	s.invalidateAnalytics(ctx, id)
	for _, neighbor := range neighbors {
		s.invalidateAnalytics(ctx, neighbor)
	}
	return nil
}

// Link records the symmetric edge between two existing semesters.
// Linking an already linked pair is a no-op.
func (s *SemesterService) Link(ctx context.Context, id string, req LinkSemesterRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid link payload")
	}
	if id == req.LinkedSemesterID {
		return appErrors.Clone(appErrors.ErrValidation, "semester cannot link to itself")
	}
	for _, target := range []string{id, req.LinkedSemesterID} {
		if _, err := s.repo.FindByID(ctx, target); err != nil {
			if err == sql.ErrNoRows {
				return appErrors.Clone(appErrors.ErrNotFound, "semester not found")
			}
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
		}
	}
	if err := s.repo.Link(ctx, id, req.LinkedSemesterID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to link semesters")
	}
	s.invalidateAnalytics(ctx, id)
	s.invalidateAnalytics(ctx, req.LinkedSemesterID)
	return nil
}

// Unlink removes the symmetric edge. Unlinking a pair that is not
// linked succeeds without effect.
func (s *SemesterService) Unlink(ctx context.Context, id, linkedID string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}
	if err := s.repo.Unlink(ctx, id, linkedID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to unlink semesters")
	}
	s.invalidateAnalytics(ctx, id)
	s.invalidateAnalytics(ctx, linkedID)
	return nil
}

// ResolveLinked maps the linked id set to full records, silently
// dropping ids whose semester no longer exists.
func (s *SemesterService) ResolveLinked(ctx context.Context, id string) ([]models.Semester, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "semester not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load semester")
	}
	linked, err := s.repo.ResolveLinked(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve linked semesters")
	}
	return linked, nil
}

func (s *SemesterService) hydrate(ctx context.Context, semester *models.Semester) (*models.Semester, error) {
	ids, err := s.repo.LinkedIDs(ctx, semester.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load linked semesters")
	}
	if ids == nil {
		ids = []string{}
	}
	semester.LinkedSemesters = ids

	courses, err := s.courses.ListBySemester(ctx, semester.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	semester.Courses = courses
	return semester, nil
}

func (s *SemesterService) invalidateAnalytics(ctx context.Context, semesterID string) {
	if !s.cache.Enabled() {
		return
	}
	if err := s.cache.Invalidate(ctx, analyticsCachePattern(semesterID)); err != nil {
		s.logger.Warn("analytics cache invalidation failed", zap.String("semester_id", semesterID), zap.Error(err))
	}
}
