package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasv/acadplan/internal/app/models"
	"github.com/lucasv/acadplan/internal/pkg/apperrors"
)

// memorySnapshots is an in-memory SnapshotStore for tests.
type memorySnapshots struct {
	payload []byte
	loadErr error
	saveErr error
	saves   int
}

func (m *memorySnapshots) Load(context.Context) ([]byte, bool, error) {
	if m.loadErr != nil {
		return nil, false, m.loadErr
	}
	return m.payload, m.payload != nil, nil
}

func (m *memorySnapshots) Save(_ context.Context, payload []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.payload = payload
	m.saves++
	return nil
}

func newEmptyService(t *testing.T) (*CourseService, *memorySnapshots) {
	t.Helper()
	// An empty (but present) snapshot yields an empty collection.
	snaps := &memorySnapshots{payload: []byte(`[]`)}
	svc, err := NewCourseService(context.Background(), snaps, nil, zerolog.Nop())
	require.NoError(t, err)
	return svc, snaps
}

func draftCourse(name string, credits int, grade float64, term string, status models.CourseStatus) models.Course {
	return models.Course{
		Name:        name,
		CreditHours: credits,
		Grade:       &grade,
		Term:        term,
		Status:      status,
	}
}

func TestCourseService_StartsFromSeedWhenSnapshotMissing(t *testing.T) {
	snaps := &memorySnapshots{}
	svc, err := NewCourseService(context.Background(), snaps, nil, zerolog.Nop())
	require.NoError(t, err)

	courses := svc.List()
	assert.Len(t, courses, 3)
	for _, course := range courses {
		assert.NotEmpty(t, course.ID)
	}

	// The seeded state is written back immediately.
	assert.Equal(t, 1, snaps.saves)
}

func TestCourseService_StartsFromSeedWhenSnapshotMalformed(t *testing.T) {
	snaps := &memorySnapshots{payload: []byte(`{not json`)}
	svc, err := NewCourseService(context.Background(), snaps, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.Len(t, svc.List(), 3)
}

func TestCourseService_StartsFromSeedWhenSnapshotReadFails(t *testing.T) {
	snaps := &memorySnapshots{loadErr: errors.New("disk gone")}
	svc, err := NewCourseService(context.Background(), snaps, nil, zerolog.Nop())
	require.NoError(t, err)

	assert.Len(t, svc.List(), 3)
}

func TestCourseService_LoadsStoredSnapshot(t *testing.T) {
	stored := []models.Course{
		{ID: "c1", Name: "Physics I", CreditHours: 64, Term: "2025.1", Status: models.StatusPlanned},
	}
	payload, err := json.Marshal(stored)
	require.NoError(t, err)

	svc, err := NewCourseService(context.Background(), &memorySnapshots{payload: payload}, nil, zerolog.Nop())
	require.NoError(t, err)

	courses := svc.List()
	require.Len(t, courses, 1)
	assert.Equal(t, "c1", courses[0].ID)
	assert.Equal(t, "Physics I", courses[0].Name)
}

func TestCourseService_AddAssignsIDAndPrepends(t *testing.T) {
	svc, snaps := newEmptyService(t)
	ctx := context.Background()

	first, err := svc.Add(ctx, draftCourse("Physics I", 64, 8, "2025.1", models.StatusCompleted))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := svc.Add(ctx, draftCourse("Calc II", 64, 6, "2025.1", models.StatusCompleted))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	courses := svc.List()
	require.Len(t, courses, 2)
	assert.Equal(t, "Calc II", courses[0].Name, "most recent addition comes first")
	assert.Equal(t, "Physics I", courses[1].Name)

	// Each successful mutation persists the whole collection.
	assert.Equal(t, 2, snaps.saves)
}

func TestCourseService_AddRejectsInvalidDraft(t *testing.T) {
	svc, snaps := newEmptyService(t)
	ctx := context.Background()

	cases := []struct {
		name    string
		draft   models.Course
		message string
	}{
		{
			name:    "empty name",
			draft:   draftCourse("   ", 64, 8, "2025.1", models.StatusCompleted),
			message: "course name cannot be empty",
		},
		{
			name:    "zero credit hours",
			draft:   draftCourse("Bad", 0, 5, "2025.1", models.StatusCompleted),
			message: "credit hours must be greater than zero",
		},
		{
			name: "completed without grade",
			draft: models.Course{
				Name: "No Grade", CreditHours: 32, Term: "2025.1", Status: models.StatusCompleted,
			},
			message: "a completed course requires a grade",
		},
		{
			name:    "grade out of range",
			draft:   draftCourse("Overachiever", 64, 11, "2025.1", models.StatusCompleted),
			message: "grade must be between 0 and 10",
		},
		{
			name:    "bad term",
			draft:   draftCourse("Bad Term", 64, 8, "2025.3", models.StatusCompleted),
			message: "term must use the YYYY.S format with semester 1 or 2",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tc.draft)
			require.ErrorIs(t, err, apperrors.ErrCourseValidation)
			assert.Contains(t, err.Error(), tc.message)
		})
	}

	assert.Empty(t, svc.List(), "rejected drafts must not change the collection")
	assert.Equal(t, 0, snaps.saves)
}

func TestCourseService_ValidationOrderFirstViolationWins(t *testing.T) {
	svc, _ := newEmptyService(t)

	// Violates every rule at once; the name rule runs first.
	draft := models.Course{Name: " ", CreditHours: 0, Term: "nope", Status: models.StatusCompleted}
	_, err := svc.Add(context.Background(), draft)
	require.ErrorIs(t, err, apperrors.ErrCourseValidation)
	assert.Contains(t, err.Error(), "course name cannot be empty")
}

func TestCourseService_UpdateMergesPatchAndPreservesPosition(t *testing.T) {
	svc, _ := newEmptyService(t)
	ctx := context.Background()

	older, err := svc.Add(ctx, draftCourse("Physics I", 64, 8, "2025.1", models.StatusCompleted))
	require.NoError(t, err)
	_, err = svc.Add(ctx, draftCourse("Calc II", 64, 6, "2025.1", models.StatusCompleted))
	require.NoError(t, err)

	newGrade := 9.0
	updated, err := svc.Update(ctx, older.ID, models.CoursePatch{Grade: &newGrade})
	require.NoError(t, err)

	assert.Equal(t, older.ID, updated.ID)
	assert.Equal(t, "Physics I", updated.Name, "unpatched fields are kept")
	assert.Equal(t, 64, updated.CreditHours)
	require.NotNil(t, updated.Grade)
	assert.Equal(t, 9.0, *updated.Grade)

	courses := svc.List()
	require.Len(t, courses, 2)
	assert.Equal(t, older.ID, courses[1].ID, "update keeps the record's position")
}

func TestCourseService_UpdateEmptyPatchKeepsFields(t *testing.T) {
	svc, _ := newEmptyService(t)
	ctx := context.Background()

	course, err := svc.Add(ctx, draftCourse("Physics I", 64, 8, "2025.1", models.StatusCompleted))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, course.ID, models.CoursePatch{})
	require.NoError(t, err)
	assert.Equal(t, course, updated)
}

func TestCourseService_UpdateRejectsInvalidMerge(t *testing.T) {
	svc, _ := newEmptyService(t)
	ctx := context.Background()

	course, err := svc.Add(ctx, draftCourse("Physics I", 64, 8, "2025.1", models.StatusCompleted))
	require.NoError(t, err)

	badGrade := 11.0
	_, err = svc.Update(ctx, course.ID, models.CoursePatch{Grade: &badGrade})
	require.ErrorIs(t, err, apperrors.ErrCourseValidation)

	kept, err := svc.Get(course.ID)
	require.NoError(t, err)
	require.NotNil(t, kept.Grade)
	assert.Equal(t, 8.0, *kept.Grade, "prior grade is retained after a rejected update")
}

func TestCourseService_UpdateUnknownID(t *testing.T) {
	svc, _ := newEmptyService(t)

	name := "Anything"
	_, err := svc.Update(context.Background(), "missing-id", models.CoursePatch{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestCourseService_AddThenRemoveRestoresCollection(t *testing.T) {
	svc, _ := newEmptyService(t)
	ctx := context.Background()

	keeper, err := svc.Add(ctx, draftCourse("Keeper", 64, 8, "2025.1", models.StatusCompleted))
	require.NoError(t, err)

	added, err := svc.Add(ctx, draftCourse("Transient", 32, 7, "2025.1", models.StatusCompleted))
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, added.ID))

	courses := svc.List()
	require.Len(t, courses, 1)
	assert.Equal(t, keeper.ID, courses[0].ID)
}

func TestCourseService_RemoveUnknownIDIsNoop(t *testing.T) {
	svc, snaps := newEmptyService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, draftCourse("Physics I", 64, 8, "2025.1", models.StatusCompleted))
	require.NoError(t, err)
	savesBefore := snaps.saves

	require.NoError(t, svc.Remove(ctx, "missing-id"))
	assert.Len(t, svc.List(), 1)
	assert.Equal(t, savesBefore, snaps.saves, "a no-op removal does not rewrite the snapshot")
}

func TestCourseService_SnapshotWriteFailureIsSurfacedButApplied(t *testing.T) {
	snaps := &memorySnapshots{payload: []byte(`[]`)}
	svc, err := NewCourseService(context.Background(), snaps, nil, zerolog.Nop())
	require.NoError(t, err)

	snaps.saveErr = errors.New("disk full")

	course, err := svc.Add(context.Background(), draftCourse("Physics I", 64, 8, "2025.1", models.StatusCompleted))
	require.ErrorIs(t, err, apperrors.ErrSnapshotWrite)

	// The mutation stays applied in memory.
	assert.NotEmpty(t, course.ID)
	assert.Len(t, svc.List(), 1)
}

func TestCourseService_SnapshotRoundTrip(t *testing.T) {
	snaps := &memorySnapshots{payload: []byte(`[]`)}
	svc, err := NewCourseService(context.Background(), snaps, nil, zerolog.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Add(ctx, draftCourse("Physics I", 64, 8, "2025.1", models.StatusCompleted))
	require.NoError(t, err)
	_, err = svc.Add(ctx, models.Course{Name: "Future Course", CreditHours: 32, Term: "2026.1", Status: models.StatusPlanned})
	require.NoError(t, err)

	// A second service reading the same store sees the same collection.
	reloaded, err := NewCourseService(ctx, snaps, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, svc.List(), reloaded.List())
}
