package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/kamaru-dev/gpcal-api/internal/models"
)

// SemesterRepository persists semester records and the symmetric link
// adjacency. The adjacency is stored redundantly on both endpoints in
// semester_links; every mutation that touches it runs both directions
// inside one transaction so a one-sided edge can never persist.
type SemesterRepository struct {
	db *sqlx.DB
}

// NewSemesterRepository creates a new semester repository.
func NewSemesterRepository(db *sqlx.DB) *SemesterRepository {
	return &SemesterRepository{db: db}
}

const semesterColumns = "id, name, gpa, grading_system, last_updated"

// List returns semesters matching the filter plus the total count.
func (r *SemesterRepository) List(ctx context.Context, filter models.SemesterFilter) ([]models.Semester, int, error) {
	query := fmt.Sprintf("SELECT %s FROM semesters WHERE 1=1", semesterColumns)
	countQuery := "SELECT COUNT(*) FROM semesters WHERE 1=1"
	var args []interface{}
	if filter.Search != "" {
		clause := fmt.Sprintf(" AND name ILIKE $%d", len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, "%"+filter.Search+"%")
	}

	sortBy := "last_updated"
	if filter.SortBy == "name" {
		sortBy = "name"
	}
	order := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		order = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", sortBy, order)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", size, (page-1)*size)

	var semesters []models.Semester
	if err := r.db.SelectContext(ctx, &semesters, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list semesters: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count semesters: %w", err)
	}
	return semesters, total, nil
}

// FindByID fetches a single semester row without its relations.
func (r *SemesterRepository) FindByID(ctx context.Context, id string) (*models.Semester, error) {
	query := fmt.Sprintf("SELECT %s FROM semesters WHERE id = $1", semesterColumns)
	var semester models.Semester
	if err := r.db.GetContext(ctx, &semester, query, id); err != nil {
		return nil, err
	}
	return &semester, nil
}

// Create inserts a new semester.
func (r *SemesterRepository) Create(ctx context.Context, semester *models.Semester) error {
	if semester.ID == "" {
		semester.ID = uuid.NewString()
	}
	semester.LastUpdated = time.Now().UTC()
	const query = `INSERT INTO semesters (id, name, gpa, grading_system, last_updated)
        VALUES (:id, :name, :gpa, :grading_system, :last_updated)`
	if _, err := r.db.NamedExecContext(ctx, query, semester); err != nil {
		return fmt.Errorf("create semester: %w", err)
	}
	return nil
}

// Update rewrites the mutable semester fields.
func (r *SemesterRepository) Update(ctx context.Context, semester *models.Semester) error {
	semester.LastUpdated = time.Now().UTC()
	const query = `UPDATE semesters SET name = :name, gpa = :gpa, last_updated = :last_updated WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, semester); err != nil {
		return fmt.Errorf("update semester: %w", err)
	}
	return nil
}

// UpdateGPA writes the cached GPA projection and touches last_updated.
func (r *SemesterRepository) UpdateGPA(ctx context.Context, id string, gpa *float64) error {
	const query = `UPDATE semesters SET gpa = $1, last_updated = $2 WHERE id = $3`
	if _, err := r.db.ExecContext(ctx, query, gpa, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("update semester gpa: %w", err)
	}
	return nil
}

// LinkedIDs returns the ids in a semester's linked set.
func (r *SemesterRepository) LinkedIDs(ctx context.Context, id string) ([]string, error) {
	const query = `SELECT linked_semester_id FROM semester_links WHERE semester_id = $1 ORDER BY linked_semester_id`
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, id); err != nil {
		return nil, fmt.Errorf("list linked semesters: %w", err)
	}
	return ids, nil
}

// ResolveLinked maps a semester's linked id set to full records. Ids
// whose semester no longer exists are dropped by the join, which keeps
// resolution safe against concurrent deletes.
func (r *SemesterRepository) ResolveLinked(ctx context.Context, id string) ([]models.Semester, error) {
	query := fmt.Sprintf(`SELECT s.%s FROM semester_links l
        JOIN semesters s ON s.id = l.linked_semester_id
        WHERE l.semester_id = $1
        ORDER BY s.last_updated DESC`, strings.ReplaceAll(semesterColumns, ", ", ", s."))
	var semesters []models.Semester
	if err := r.db.SelectContext(ctx, &semesters, query, id); err != nil {
		return nil, fmt.Errorf("resolve linked semesters: %w", err)
	}
	return semesters, nil
}

// Link records the symmetric edge between two semesters. Both
// directions are written in one transaction; re-linking an existing
// pair is a no-op thanks to ON CONFLICT.
func (r *SemesterRepository) Link(ctx context.Context, semesterID, linkedID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin link: %w", err)
	}
	const query = `INSERT INTO semester_links (semester_id, linked_semester_id)
        VALUES ($1, $2) ON CONFLICT (semester_id, linked_semester_id) DO NOTHING`
	if _, err := tx.ExecContext(ctx, query, semesterID, linkedID); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("link semester: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, linkedID, semesterID); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("link semester reverse: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit link: %w", err)
	}
	return nil
}

// Unlink removes the symmetric edge in both directions. Unlinking a
// pair that is not linked succeeds without effect.
func (r *SemesterRepository) Unlink(ctx context.Context, semesterID, linkedID string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin unlink: %w", err)
	}
	const query = `DELETE FROM semester_links WHERE semester_id = $1 AND linked_semester_id = $2`
	if _, err := tx.ExecContext(ctx, query, semesterID, linkedID); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("unlink semester: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, linkedID, semesterID); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("unlink semester reverse: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit unlink: %w", err)
	}
	return nil
}

// Delete removes a semester, its owned courses, and every edge that
// references it from either side, all in one transaction. The unlink
// pass is a precondition of the delete, not cleanup: no neighbor may
// keep a dangling reference.
func (r *SemesterRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM semester_links WHERE semester_id = $1 OR linked_semester_id = $1`, id); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("unlink on delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM courses WHERE semester_id = $1`, id); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("delete courses on delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM semesters WHERE id = $1`, id); err != nil {
		tx.Rollback() //nolint:errcheck
		return fmt.Errorf("delete semester: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}
