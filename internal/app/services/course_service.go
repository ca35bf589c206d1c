package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lucasv/acadplan/internal/app/models"
	"github.com/lucasv/acadplan/internal/pkg/apperrors"
	"github.com/lucasv/acadplan/internal/pkg/notify"
	"github.com/lucasv/acadplan/internal/pkg/validation"
	"github.com/lucasv/acadplan/internal/seed"
)

// SnapshotStore is the persistence contract the course service needs:
// load the whole stored collection, save the whole collection.
type SnapshotStore interface {
	Load(ctx context.Context) (payload []byte, ok bool, err error)
	Save(ctx context.Context, payload []byte) error
}

// CourseService owns the ordered course collection and applies
// validated mutations. Every successful mutation writes the whole
// collection to the snapshot store.
//
// A snapshot write failure does not undo the in-memory mutation; the
// mutation method returns the applied record together with an error
// matching apperrors.ErrSnapshotWrite so callers can decide how loudly
// to report it.
type CourseService struct {
	mu        sync.Mutex
	courses   []models.Course // most-recently-added first
	snapshots SnapshotStore
	notifier  notify.Notifier
	logger    zerolog.Logger
}

// NewCourseService creates a course service and loads its initial
// state: the stored snapshot when one exists and parses, otherwise the
// default seed records.
func NewCourseService(ctx context.Context, snapshots SnapshotStore, notifier notify.Notifier, logger zerolog.Logger) (*CourseService, error) {
	if notifier == nil {
		notifier = notify.NopNotifier{}
	}

	s := &CourseService{
		snapshots: snapshots,
		notifier:  notifier,
		logger:    logger,
	}

	seeded := false
	payload, ok, err := snapshots.Load(ctx)
	switch {
	case err != nil:
		// A storage read failure falls back to the seed set; the
		// session keeps working from memory.
		logger.Error().Err(err).Msg("Failed to read course snapshot, starting from seed data")
		s.courses = seed.DefaultCourses()
		seeded = true
	case !ok:
		logger.Info().Msg("No course snapshot found, starting from seed data")
		s.courses = seed.DefaultCourses()
		seeded = true
	default:
		var courses []models.Course
		if err := json.Unmarshal(payload, &courses); err != nil {
			logger.Warn().Err(err).Msg("Stored course snapshot is malformed, starting from seed data")
			s.courses = seed.DefaultCourses()
			seeded = true
		} else {
			s.courses = courses
		}
	}

	// Write the seeded state back so a fresh or recovered session is
	// durable immediately.
	if seeded {
		if perr := s.persistLocked(ctx); perr != nil {
			logger.Warn().Err(perr).Msg("Failed to persist initial course collection")
		}
	}

	return s, nil
}

// List returns a copy of the course collection, most-recently-added first.
func (s *CourseService) List() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// Get returns the course with the given ID.
func (s *CourseService) Get(id string) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Course{}, apperrors.ErrCourseNotFound
	}
	return s.courses[idx], nil
}

// Add validates the draft, assigns it a fresh ID and prepends it to
// the collection. On validation failure the collection is unchanged.
func (s *CourseService) Add(ctx context.Context, draft models.Course) (models.Course, error) {
	if err := validateCourse(draft); err != nil {
		s.notifier.Notify(err.Error(), notify.SeverityError)
		return models.Course{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = uuid.New().String()
	s.courses = append([]models.Course{draft}, s.courses...)

	s.notifier.Notify(fmt.Sprintf("course %q added", draft.Name), notify.SeveritySuccess)
	return draft, s.persistLocked(ctx)
}

// Update merges the patch into the stored record, revalidates the
// merged record and replaces it in place, preserving its position.
func (s *CourseService) Update(ctx context.Context, id string, patch models.CoursePatch) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Course{}, apperrors.ErrCourseNotFound
	}

	merged := patch.Apply(s.courses[idx])
	if err := validateCourse(merged); err != nil {
		s.notifier.Notify(err.Error(), notify.SeverityError)
		return models.Course{}, err
	}

	s.courses[idx] = merged

	s.notifier.Notify(fmt.Sprintf("course %q updated", merged.Name), notify.SeveritySuccess)
	return merged, s.persistLocked(ctx)
}

// Remove deletes the course with the given ID. Removing an unknown ID
// is a no-op, not an error.
func (s *CourseService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	name := s.courses[idx].Name
	s.courses = append(s.courses[:idx], s.courses[idx+1:]...)

	s.notifier.Notify(fmt.Sprintf("course %q removed", name), notify.SeveritySuccess)
	return s.persistLocked(ctx)
}

// indexOf returns the position of the course with the given ID, or -1.
// Callers must hold s.mu.
func (s *CourseService) indexOf(id string) int {
	for i := range s.courses {
		if s.courses[i].ID == id {
			return i
		}
	}
	return -1
}

// persistLocked serializes the collection and writes it to the
// snapshot store. Callers must hold s.mu.
func (s *CourseService) persistLocked(ctx context.Context) error {
	payload, err := json.Marshal(s.courses)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrSnapshotWrite, err)
	}

	if err := s.snapshots.Save(ctx, payload); err != nil {
		s.logger.Warn().Err(err).Msg("Course snapshot write failed, in-memory state remains authoritative")
		s.notifier.Notify("changes could not be saved to local storage", notify.SeverityWarning)
		return fmt.Errorf("%w: %v", apperrors.ErrSnapshotWrite, err)
	}

	return nil
}

// validateCourse gates every mutation against the data-model rules.
// Rules run in a fixed order and the first violation wins.
func validateCourse(course models.Course) error {
	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: course name cannot be empty", apperrors.ErrCourseValidation)
	}

	if course.CreditHours <= 0 {
		return fmt.Errorf("%w: credit hours must be greater than zero", apperrors.ErrCourseValidation)
	}

	if course.Status == models.StatusCompleted {
		if course.Grade == nil {
			return fmt.Errorf("%w: a completed course requires a grade", apperrors.ErrCourseValidation)
		}
		if !validation.IsValidGrade(*course.Grade) {
			return fmt.Errorf("%w: grade must be between 0 and 10", apperrors.ErrCourseValidation)
		}
	}

	if !validation.IsValidTerm(course.Term) {
		return fmt.Errorf("%w: term must use the YYYY.S format with semester 1 or 2", apperrors.ErrCourseValidation)
	}

	if !course.Status.IsValid() {
		return fmt.Errorf("%w: unknown course status", apperrors.ErrCourseValidation)
	}

	return nil
}
