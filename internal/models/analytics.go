package models

import "time"

// DonutSlice is one course's share of the semester donut chart. Values
// are percentages that sum to exactly 100.00 for a non-empty chart.
type DonutSlice struct {
	Value float64 `json:"value"`
	Color string  `json:"color"`
	Text  string  `json:"text"`
}

// SemesterAnalytics is the payload of the analytics endpoint: the
// semester's own GPA, the one-hop cumulative GPA, and the chart data.
type SemesterAnalytics struct {
	SemesterID  string       `json:"semester_id"`
	GPA         *float64     `json:"gpa"`
	CGPA        *float64     `json:"cgpa"`
	Donut       []DonutSlice `json:"donut"`
	LinkedCount int          `json:"linked_count"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// AnalyticsSystemMetrics is a lightweight snapshot of runtime metrics
// for operational inspection.
type AnalyticsSystemMetrics struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
