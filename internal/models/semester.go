package models

import "time"

// Semester is one academic period owned by the user. GPA is a cached
// projection of the course set; it is recomputed on every course
// mutation and is authoritative only for GPA-only semesters, which
// carry a summary value but no itemized courses.
type Semester struct {
	ID            string        `db:"id" json:"id"`
	Name          string        `db:"name" json:"name"`
	GPA           *float64      `db:"gpa" json:"gpa"`
	GradingSystem GradingSystem `db:"grading_system" json:"grading_system"`
	LastUpdated   time.Time     `db:"last_updated" json:"last_updated"`

	// LinkedSemesters holds the ids of directly linked semesters. The
	// relation is symmetric: if A lists B, B lists A.
	LinkedSemesters []string `json:"linked_semesters"`
	Courses         []Course `json:"courses,omitempty"`
}

// HasQualifyingCourses reports whether at least one course would count
// toward aggregate computations.
func (s Semester) HasQualifyingCourses() bool {
	for _, course := range s.Courses {
		if course.Qualifies() {
			return true
		}
	}
	return false
}

// SemesterFilter defines filters supported by the list endpoint.
type SemesterFilter struct {
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
