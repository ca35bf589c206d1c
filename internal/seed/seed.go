package seed

import (
	"github.com/google/uuid"

	"github.com/lucasv/acadplan/internal/app/models"
)

// DefaultCourses returns the example records used when no stored
// snapshot exists (or the stored snapshot cannot be parsed). Fresh IDs
// are assigned on every call.
func DefaultCourses() []models.Course {
	algGrade := 8.5
	calcGrade := 7.0

	return []models.Course{
		{
			ID:          uuid.New().String(),
			Name:        "Algorithms and Data Structures",
			CreditHours: 64,
			Grade:       &algGrade,
			Term:        "2024.2",
			Status:      models.StatusCompleted,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Calculus I",
			CreditHours: 96,
			Grade:       &calcGrade,
			Term:        "2024.2",
			Status:      models.StatusCompleted,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Linear Algebra",
			CreditHours: 64,
			Term:        "2025.1",
			Status:      models.StatusInProgress,
		},
	}
}
