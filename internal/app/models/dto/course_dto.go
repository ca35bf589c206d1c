package dto

import "github.com/lucasv/acadplan/internal/app/models"

// CreateCourseRequest represents course registration data
type CreateCourseRequest struct {
	Name        string   `json:"name" binding:"required"`
	CreditHours int      `json:"creditHours" binding:"required"`
	Grade       *float64 `json:"grade" binding:"omitempty,gte=0,lte=10"`
	Term        string   `json:"term" binding:"required"`
	Status      string   `json:"status" binding:"required,oneof=COMPLETED IN_PROGRESS PLANNED"`
}

// ToModel converts the request into a course draft (without an ID).
func (r CreateCourseRequest) ToModel() models.Course {
	return models.Course{
		Name:        r.Name,
		CreditHours: r.CreditHours,
		Grade:       r.Grade,
		Term:        r.Term,
		Status:      models.CourseStatus(r.Status),
	}
}

// UpdateCourseRequest represents a partial course update.
// Absent fields keep the stored value.
type UpdateCourseRequest struct {
	Name        *string  `json:"name"`
	CreditHours *int     `json:"creditHours"`
	Grade       *float64 `json:"grade" binding:"omitempty,gte=0,lte=10"`
	Term        *string  `json:"term"`
	Status      *string  `json:"status" binding:"omitempty,oneof=COMPLETED IN_PROGRESS PLANNED"`
}

// ToPatch converts the request into a course patch.
func (r UpdateCourseRequest) ToPatch() models.CoursePatch {
	patch := models.CoursePatch{
		Name:        r.Name,
		CreditHours: r.CreditHours,
		Grade:       r.Grade,
		Term:        r.Term,
	}
	if r.Status != nil {
		status := models.CourseStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// CourseListResponse represents the ordered course collection
type CourseListResponse struct {
	Courses []models.Course `json:"courses"`
	Total   int             `json:"total"`
}

// SummaryResponse represents the academic summary panel data
type SummaryResponse struct {
	WeightedIndex    float64 `json:"weightedIndex" example:"7.5"`
	TotalCourses     int     `json:"totalCourses" example:"4"`
	Completed        int     `json:"completed" example:"2"`
	InProgress       int     `json:"inProgress" example:"1"`
	Planned          int     `json:"planned" example:"1"`
	QualifyingCredit int     `json:"qualifyingCreditHours" example:"128"`
}
