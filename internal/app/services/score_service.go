package services

import "github.com/lucasv/acadplan/internal/app/models"

// ComputeWeightedIndex reduces a course collection to the credit-hour
// weighted average grade. Only records with a recorded grade and a
// status other than Planned qualify; when nothing qualifies the index
// is 0.
//
// This is a pure function: same input, same result, no side effects,
// no dependency on record order.
func ComputeWeightedIndex(courses []models.Course) float64 {
	var weightedSum float64
	var creditSum int

	for _, course := range courses {
		if course.Status == models.StatusPlanned || course.Grade == nil {
			continue
		}
		weightedSum += *course.Grade * float64(course.CreditHours)
		creditSum += course.CreditHours
	}

	if creditSum == 0 {
		return 0
	}
	return weightedSum / float64(creditSum)
}

// QualifyingCreditHours returns the credit-hour total of the records
// that enter the weighted index.
func QualifyingCreditHours(courses []models.Course) int {
	var creditSum int
	for _, course := range courses {
		if course.Status == models.StatusPlanned || course.Grade == nil {
			continue
		}
		creditSum += course.CreditHours
	}
	return creditSum
}
