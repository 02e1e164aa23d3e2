package grading

import (
	"github.com/kamaru-dev/gpcal-api/internal/models"
)

// ComputeCGPA aggregates the target semester and its directly linked
// semesters (one hop, never transitive) into a cumulative GPA.
//
// Semesters with itemized courses contribute credit-weighted grade
// points converted under their own grading scheme, since linked
// semesters may have been created under different configurations.
// Semesters with no qualifying courses but a cached summary GPA
// ("phantom" semesters) are imputed a credit load equal to the mean
// load of the real-course semesters in the set, so legacy summary
// values participate proportionally without an arbitrary weight. When
// the whole set is phantom the assumed load is 1 credit per semester.
func ComputeCGPA(target models.Semester, linked []models.Semester) *float64 {
	working := make([]models.Semester, 0, len(linked)+1)
	working = append(working, target)
	working = append(working, linked...)

	var weighted, credits float64
	var loads []float64
	var phantoms []models.Semester

	for _, sem := range working {
		var load float64
		qualified := false
		for _, course := range sem.Courses {
			if !course.Qualifies() {
				continue
			}
			qualified = true
			units := float64(*course.CreditUnit)
			weighted += units * GradeToPoint(course.GradePoint, sem.GradingSystem)
			credits += units
			load += units
		}

		if qualified {
			loads = append(loads, load)
		} else if sem.GPA != nil {
			phantoms = append(phantoms, sem)
		}
	}

	assumedLoad := 1.0
	if len(loads) > 0 {
		var total float64
		for _, load := range loads {
			total += load
		}
		assumedLoad = total / float64(len(loads))
	}

	for _, phantom := range phantoms {
		weighted += *phantom.GPA * assumedLoad
		credits += assumedLoad
	}

	if credits == 0 {
		return nil
	}

	cgpa := round2(weighted / credits)
	return &cgpa
}
