package models

import "time"

// InsightSnapshot is the semester state sent to the AI collaborator.
type InsightSnapshot struct {
	Semester  Semester `json:"semester"`
	CGPA      *float64 `json:"cgpa"`
	CourseSum int      `json:"course_count"`
}

// Insight is the collaborator's reply. The core treats it as an opaque
// value to display and cache; no parsing or validation happens here.
type Insight struct {
	SemesterID  string    `json:"semester_id"`
	Reply       string    `json:"reply"`
	Suggestion  string    `json:"suggestion,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}
