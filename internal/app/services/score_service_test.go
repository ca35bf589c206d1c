package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucasv/acadplan/internal/app/models"
)

func graded(name string, credits int, grade float64, status models.CourseStatus) models.Course {
	return models.Course{Name: name, CreditHours: credits, Grade: &grade, Term: "2025.1", Status: status}
}

func ungraded(name string, credits int, status models.CourseStatus) models.Course {
	return models.Course{Name: name, CreditHours: credits, Term: "2025.1", Status: status}
}

func TestComputeWeightedIndex_EmptyCollection(t *testing.T) {
	assert.Equal(t, 0.0, ComputeWeightedIndex(nil))
	assert.Equal(t, 0.0, ComputeWeightedIndex([]models.Course{}))
}

func TestComputeWeightedIndex_NoQualifyingRecords(t *testing.T) {
	courses := []models.Course{
		graded("Planned with grade", 64, 9, models.StatusPlanned),
		ungraded("In progress without grade", 32, models.StatusInProgress),
		ungraded("Planned", 64, models.StatusPlanned),
	}
	assert.Equal(t, 0.0, ComputeWeightedIndex(courses))
	assert.Equal(t, 0, QualifyingCreditHours(courses))
}

func TestComputeWeightedIndex_SingleCourse(t *testing.T) {
	courses := []models.Course{graded("Physics I", 64, 8, models.StatusCompleted)}
	assert.Equal(t, 8.0, ComputeWeightedIndex(courses))
}

func TestComputeWeightedIndex_WeightsByCreditHours(t *testing.T) {
	courses := []models.Course{
		graded("Physics I", 64, 8, models.StatusCompleted),
		graded("Calc II", 64, 6, models.StatusCompleted),
	}
	assert.Equal(t, 7.0, ComputeWeightedIndex(courses))

	// Unequal weights pull the index toward the heavier course.
	courses = []models.Course{
		graded("Heavy", 96, 10, models.StatusCompleted),
		graded("Light", 32, 6, models.StatusCompleted),
	}
	assert.InDelta(t, 9.0, ComputeWeightedIndex(courses), 1e-9)
}

func TestComputeWeightedIndex_IgnoresPlannedAndUngraded(t *testing.T) {
	courses := []models.Course{
		graded("Physics I", 64, 8, models.StatusCompleted),
		graded("Calc II", 64, 6, models.StatusCompleted),
		ungraded("Future Course", 32, models.StatusPlanned),
	}
	assert.Equal(t, 7.0, ComputeWeightedIndex(courses))
	assert.Equal(t, 128, QualifyingCreditHours(courses))
}

func TestComputeWeightedIndex_CountsGradedInProgress(t *testing.T) {
	courses := []models.Course{
		graded("Midterm graded", 64, 6, models.StatusInProgress),
	}
	assert.Equal(t, 6.0, ComputeWeightedIndex(courses))
}

func TestComputeWeightedIndex_PermutationInvariant(t *testing.T) {
	courses := []models.Course{
		graded("A", 64, 8.5, models.StatusCompleted),
		graded("B", 96, 6.25, models.StatusCompleted),
		graded("C", 32, 9.75, models.StatusInProgress),
		ungraded("D", 64, models.StatusPlanned),
		graded("E", 48, 4.5, models.StatusCompleted),
	}
	want := ComputeWeightedIndex(courses)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]models.Course, len(courses))
		copy(shuffled, courses)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.InDelta(t, want, ComputeWeightedIndex(shuffled), 1e-9)
	}
}
