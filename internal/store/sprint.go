package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/sprintdeck/sprintdeck/internal/model"
)

// Sprints is the entity store for sprints.
type Sprints struct {
	*Store[model.Sprint]
}

// NewSprints returns an empty sprint store.
func NewSprints(opts ...Option) *Sprints {
	return &Sprints{New[model.Sprint](opts...)}
}

// SprintInput carries the fields required to create a sprint.
type SprintInput struct {
	ProjectID       string
	Name            string
	Goal            string
	Status          model.SprintStatus
	StartDate       time.Time
	EndDate         time.Time
	TotalPoints     int
	CompletedPoints int
}

// validateSprintRange enforces the date-range and point invariants at
// the mutation boundary rather than inheriting silent inconsistency.
func validateSprintRange(start, end time.Time, total, completed int) error {
	if end.Before(start) {
		return fmt.Errorf("sprint end date %s is before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if total < 0 || completed < 0 {
		return fmt.Errorf("sprint points must be non-negative")
	}
	if completed > total {
		return fmt.Errorf("completed points %d exceed total points %d", completed, total)
	}
	return nil
}

// Create validates the input, assigns an identifier and timestamps, and
// appends the sprint to the collection.
func (s *Sprints) Create(in SprintInput) (model.Sprint, error) {
	if in.ProjectID == "" {
		return model.Sprint{}, fmt.Errorf("sprint project id is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Sprint{}, fmt.Errorf("sprint name is required")
	}
	if in.Status == "" {
		in.Status = model.SprintPlanning
	}
	if err := model.ValidateSprintStatus(in.Status); err != nil {
		return model.Sprint{}, err
	}
	if err := validateSprintRange(in.StartDate, in.EndDate, in.TotalPoints, in.CompletedPoints); err != nil {
		return model.Sprint{}, err
	}

	now := s.now()
	sp := model.Sprint{
		ID:              s.newID(),
		ProjectID:       in.ProjectID,
		Name:            in.Name,
		Goal:            in.Goal,
		Status:          in.Status,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		TotalPoints:     in.TotalPoints,
		CompletedPoints: in.CompletedPoints,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.insert(sp)
	return sp, nil
}

// SprintPatch is a partial update; nil fields are left unchanged.
type SprintPatch struct {
	Name            *string
	Goal            *string
	Status          *model.SprintStatus
	StartDate       *time.Time
	EndDate         *time.Time
	TotalPoints     *int
	CompletedPoints *int
}

// Update merges the patch over the existing record. The merged result
// must still satisfy the range and point invariants.
func (s *Sprints) Update(id string, patch SprintPatch) (model.Sprint, error) {
	if patch.Status != nil {
		if err := model.ValidateSprintStatus(*patch.Status); err != nil {
			return model.Sprint{}, err
		}
	}

	existing, err := s.Get(id)
	if err != nil {
		return model.Sprint{}, err
	}

	merged := existing
	if patch.StartDate != nil {
		merged.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		merged.EndDate = *patch.EndDate
	}
	if patch.TotalPoints != nil {
		merged.TotalPoints = *patch.TotalPoints
	}
	if patch.CompletedPoints != nil {
		merged.CompletedPoints = *patch.CompletedPoints
	}
	if err := validateSprintRange(merged.StartDate, merged.EndDate, merged.TotalPoints, merged.CompletedPoints); err != nil {
		return model.Sprint{}, err
	}

	return s.apply(id, func(sp model.Sprint) model.Sprint {
		sp = merged
		if patch.Name != nil {
			sp.Name = *patch.Name
		}
		if patch.Goal != nil {
			sp.Goal = *patch.Goal
		}
		if patch.Status != nil {
			sp.Status = *patch.Status
		}
		sp.UpdatedAt = s.now()
		return sp
	})
}

// SetStatus flips the sprint status and refreshes the update timestamp.
func (s *Sprints) SetStatus(id string, status model.SprintStatus) (model.Sprint, error) {
	if err := model.ValidateSprintStatus(status); err != nil {
		return model.Sprint{}, err
	}
	return s.apply(id, func(sp model.Sprint) model.Sprint {
		sp.Status = status
		sp.UpdatedAt = s.now()
		return sp
	})
}

// Delete removes a sprint. Returns ErrNotFound when the id is absent.
func (s *Sprints) Delete(id string) error {
	return s.remove(id)
}
