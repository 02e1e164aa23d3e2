package service

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kamaru-dev/gpcal-api/internal/grading"
	"github.com/kamaru-dev/gpcal-api/internal/models"
	appErrors "github.com/kamaru-dev/gpcal-api/pkg/errors"
)

type insightGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type insightSemesterRepository interface {
	FindByID(ctx context.Context, id string) (*models.Semester, error)
	ResolveLinked(ctx context.Context, id string) ([]models.Semester, error)
}

type insightCourseReader interface {
	ListBySemester(ctx context.Context, semesterID string) ([]models.Course, error)
}

// InsightRequest carries the user's free-text question about a semester.
type InsightRequest struct {
	Prompt string `json:"prompt" validate:"required,max=2000"`
}

// InsightService asks the AI collaborator about a semester. The reply
// is treated as opaque text to display and cache.
type InsightService struct {
	generator insightGenerator
	semesters insightSemesterRepository
	courses   insightCourseReader
	cache     *CacheService
	timeout   time.Duration
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInsightService constructs service. A nil generator disables the
// feature; requests then fail with a typed unavailable error.
func NewInsightService(generator insightGenerator, semesters insightSemesterRepository, courses insightCourseReader, cache *CacheService, timeout, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *InsightService {
	if timeout <= 0 {
		timeout = 40 * time.Second
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InsightService{
		generator: generator,
		semesters: semesters,
		courses:   courses,
		cache:     cache,
		timeout:   timeout,
		cacheTTL:  cacheTTL,
		validator: validate,
		logger:    logger,
	}
}

// Generate builds a snapshot of the semester, sends it with the user's
// prompt to the collaborator, and caches the reply per prompt.
func (s *InsightService) Generate(ctx context.Context, semesterID string, req InsightRequest) (*models.Insight, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid insight payload")
	}
	if s.generator == nil {
		return nil, appErrors.Clone(appErrors.ErrInsightUnavailable, "insight generation is disabled")
	}

	snapshot, err := s.snapshot(ctx, semesterID)
	if err != nil {
		return nil, err
	}

	key := insightCacheKey(semesterID, req.Prompt)
	var cached models.Insight
	if hit, cacheErr := s.cache.Get(ctx, key, &cached); cacheErr == nil && hit {
		return &cached, nil
	}

	prompt, err := buildInsightPrompt(snapshot, req.Prompt)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build insight prompt")
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	reply, err := s.generator.Generate(genCtx, prompt)
	if err != nil {
		s.logger.Warn("insight generation failed", zap.String("semester_id", semesterID), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInsightUnavailable.Code, appErrors.ErrInsightUnavailable.Status, "insight generation failed")
	}

	insight := &models.Insight{
		SemesterID:  semesterID,
		Reply:       reply,
		Suggestion:  extractSuggestion(reply),
		GeneratedAt: time.Now().UTC(),
	}
	if err := s.cache.Set(ctx, key, insight, s.cacheTTL); err != nil {
		s.logger.Warn("insight cache write failed", zap.String("semester_id", semesterID), zap.Error(err))
	}
	return insight, nil
}

func (s *InsightService) snapshot(ctx context.Context, semesterID string) (*models.InsightSnapshot, error) {
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

	if gpa := grading.ComputeGPA(semester.Courses, semester.GradingSystem); gpa != nil {
		semester.GPA = gpa
	}

	return &models.InsightSnapshot{
		Semester:  *semester,
		CGPA:      grading.ComputeCGPA(*semester, linked),
		CourseSum: len(semester.Courses),
	}, nil
}

func insightCacheKey(semesterID, prompt string) string {
	digest := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("insight:semester:%s:%s", semesterID, hex.EncodeToString(digest[:8]))
}

func buildInsightPrompt(snapshot *models.InsightSnapshot, question string) (string, error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString("You are an academic advisor reviewing a student's semester data.\n")
	sb.WriteString("Semester snapshot (JSON):\n")
	sb.Write(payload)
	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(question)
	sb.WriteString("\n\nAnswer concisely. If you have one concrete recommendation, finish with a line starting with \"Suggestion:\".")
	return sb.String(), nil
}

// extractSuggestion pulls out the trailing recommendation line when the
// collaborator followed the prompt format.
func extractSuggestion(reply string) string {
	for _, line := range strings.Split(reply, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Suggestion:") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "Suggestion:"))
		}
	}
	return ""
}
