package models

import "time"

// Course is a single graded unit belonging to exactly one semester.
// CreditUnit and GradePoint are nullable: a course missing either is
// "incomplete" and is silently excluded from every aggregate, which is
// a data-quality policy rather than an error.
type Course struct {
	ID         string    `db:"id" json:"id"`
	SemesterID string    `db:"semester_id" json:"semester_id"`
	Name       string    `db:"name" json:"name"`
	CreditUnit *int      `db:"credit_unit" json:"credit_unit"`
	GradePoint *string   `db:"grade_point" json:"grade_point"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Qualifies reports whether the course contributes to GPA/CGPA/chart
// aggregation: both credit unit and grade must be present.
func (c Course) Qualifies() bool {
	return c.CreditUnit != nil && c.GradePoint != nil
}
