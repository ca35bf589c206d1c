package models

// CourseStatus defines the completion state of a course
type CourseStatus string

const (
	StatusCompleted  CourseStatus = "COMPLETED"
	StatusInProgress CourseStatus = "IN_PROGRESS"
	StatusPlanned    CourseStatus = "PLANNED"
)

// IsValid reports whether the status is one of the known values.
func (s CourseStatus) IsValid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusPlanned:
		return true
	}
	return false
}

// Course represents a single academic subject in the planner.
// Grade is nil while no grade has been recorded.
type Course struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	CreditHours int          `json:"creditHours"`
	Grade       *float64     `json:"grade,omitempty"`
	Term        string       `json:"term"`
	Status      CourseStatus `json:"status"`
}

// CoursePatch carries a partial update for an existing course.
// Nil fields keep the current value.
type CoursePatch struct {
	Name        *string
	CreditHours *int
	Grade       *float64
	Term        *string
	Status      *CourseStatus
}

// Apply merges the patch into a copy of the course and returns it.
// The original course is not modified.
func (p CoursePatch) Apply(course Course) Course {
	merged := course
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.CreditHours != nil {
		merged.CreditHours = *p.CreditHours
	}
	if p.Grade != nil {
		grade := *p.Grade
		merged.Grade = &grade
	}
	if p.Term != nil {
		merged.Term = *p.Term
	}
	if p.Status != nil {
		merged.Status = *p.Status
	}
	return merged
}
