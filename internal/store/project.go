package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/sprintdeck/sprintdeck/internal/model"
)

// Projects is the entity store for projects.
type Projects struct {
	*Store[model.Project]
}

// NewProjects returns an empty project store.
func NewProjects(opts ...Option) *Projects {
	return &Projects{New[model.Project](opts...)}
}

// ProjectInput carries the fields required to create a project.
type ProjectInput struct {
	Name        string
	Key         string
	Description string
	Status      model.ProjectStatus
	Priority    model.Priority
	StartDate   *time.Time
	EndDate     *time.Time
}

// Create validates the input, assigns an identifier and timestamps, and
// appends the project to the collection.
func (s *Projects) Create(in ProjectInput) (model.Project, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Project{}, fmt.Errorf("project name is required")
	}
	if err := model.ValidateProjectKey(in.Key); err != nil {
		return model.Project{}, err
	}
	if in.Status == "" {
		in.Status = model.ProjectActive
	}
	if err := model.ValidateProjectStatus(in.Status); err != nil {
		return model.Project{}, err
	}
	if in.Priority == "" {
		in.Priority = model.PriorityNone
	}
	if err := model.ValidatePriority(in.Priority); err != nil {
		return model.Project{}, err
	}
	for _, p := range s.items {
		if p.Key == in.Key {
			return model.Project{}, fmt.Errorf("project key %q already in use by %q", in.Key, p.Name)
		}
	}
	if in.StartDate != nil && in.EndDate != nil && in.EndDate.Before(*in.StartDate) {
		return model.Project{}, fmt.Errorf("project end date %s is before start date %s",
			in.EndDate.Format("2006-01-02"), in.StartDate.Format("2006-01-02"))
	}

	now := s.now()
	p := model.Project{
		ID:          s.newID(),
		Name:        in.Name,
		Key:         in.Key,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.insert(p)
	return p, nil
}

// ProjectPatch is a partial update; nil fields are left unchanged.
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *model.ProjectStatus
	Priority    *model.Priority
	StartDate   *time.Time
	EndDate     *time.Time
	Progress    *int
}

// Update merges the patch over the existing record and refreshes its
// update timestamp. Returns ErrNotFound when the id is absent.
func (s *Projects) Update(id string, patch ProjectPatch) (model.Project, error) {
	if patch.Status != nil {
		if err := model.ValidateProjectStatus(*patch.Status); err != nil {
			return model.Project{}, err
		}
	}
	if patch.Priority != nil {
		if err := model.ValidatePriority(*patch.Priority); err != nil {
			return model.Project{}, err
		}
	}
	if patch.Progress != nil && (*patch.Progress < 0 || *patch.Progress > 100) {
		return model.Project{}, fmt.Errorf("progress %d out of range [0,100]", *patch.Progress)
	}

	return s.apply(id, func(p model.Project) model.Project {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Priority != nil {
			p.Priority = *patch.Priority
		}
		if patch.StartDate != nil {
			p.StartDate = patch.StartDate
		}
		if patch.EndDate != nil {
			p.EndDate = patch.EndDate
		}
		if patch.Progress != nil {
			p.Progress = *patch.Progress
		}
		p.UpdatedAt = s.now()
		return p
	})
}

// SetStatus is the narrow status-toggle operation: it flips the status
// field and refreshes the update timestamp.
func (s *Projects) SetStatus(id string, status model.ProjectStatus) (model.Project, error) {
	if err := model.ValidateProjectStatus(status); err != nil {
		return model.Project{}, err
	}
	return s.apply(id, func(p model.Project) model.Project {
		p.Status = status
		p.UpdatedAt = s.now()
		return p
	})
}

// Delete removes a project. Returns ErrNotFound when the id is absent.
func (s *Projects) Delete(id string) error {
	return s.remove(id)
}

// GetByKey looks a project up by its short key, case-insensitively.
func (s *Projects) GetByKey(key string) (model.Project, error) {
	for _, p := range s.items {
		if strings.EqualFold(p.Key, key) {
			return p, nil
		}
	}
	return model.Project{}, ErrNotFound
}
