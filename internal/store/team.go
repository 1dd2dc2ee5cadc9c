package store

import (
	"fmt"
	"strings"

	"github.com/sprintdeck/sprintdeck/internal/model"
)

// Teams is the entity store for teams.
type Teams struct {
	*Store[model.Team]
}

// NewTeams returns an empty team store.
func NewTeams(opts ...Option) *Teams {
	return &Teams{New[model.Team](opts...)}
}

// TeamInput carries the fields required to create a team.
type TeamInput struct {
	Name    string
	Members []model.TeamMember
	Status  model.TeamStatus
}

func validateMembers(members []model.TeamMember) error {
	for _, m := range members {
		if m.StaffID == "" {
			return fmt.Errorf("team member staff id is required")
		}
		if err := model.ValidateTeamRole(m.Role); err != nil {
			return err
		}
	}
	return nil
}

// Create validates the input, assigns an identifier and timestamps, and
// appends the team to the collection.
func (s *Teams) Create(in TeamInput) (model.Team, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Team{}, fmt.Errorf("team name is required")
	}
	if in.Status == "" {
		in.Status = model.TeamActive
	}
	if err := model.ValidateTeamStatus(in.Status); err != nil {
		return model.Team{}, err
	}
	if err := validateMembers(in.Members); err != nil {
		return model.Team{}, err
	}

	now := s.now()
	t := model.Team{
		ID:        s.newID(),
		Name:      in.Name,
		Members:   append([]model.TeamMember(nil), in.Members...),
		Status:    in.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.insert(t)
	return t, nil
}

// TeamPatch is a partial update; nil fields are left unchanged. A
// non-nil Members slice replaces the membership wholesale.
type TeamPatch struct {
	Name          *string
	Members       *[]model.TeamMember
	Status        *model.TeamStatus
	ProjectsCount *int
}

// Update merges the patch over the existing record and refreshes its
// update timestamp.
func (s *Teams) Update(id string, patch TeamPatch) (model.Team, error) {
	if patch.Status != nil {
		if err := model.ValidateTeamStatus(*patch.Status); err != nil {
			return model.Team{}, err
		}
	}
	if patch.Members != nil {
		if err := validateMembers(*patch.Members); err != nil {
			return model.Team{}, err
		}
	}
	if patch.ProjectsCount != nil && *patch.ProjectsCount < 0 {
		return model.Team{}, fmt.Errorf("projects count must be non-negative")
	}

	return s.apply(id, func(t model.Team) model.Team {
		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.Members != nil {
			t.Members = append([]model.TeamMember(nil), (*patch.Members)...)
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.ProjectsCount != nil {
			t.ProjectsCount = *patch.ProjectsCount
		}
		t.UpdatedAt = s.now()
		return t
	})
}

// SetStatus flips the team status and refreshes the update timestamp.
func (s *Teams) SetStatus(id string, status model.TeamStatus) (model.Team, error) {
	if err := model.ValidateTeamStatus(status); err != nil {
		return model.Team{}, err
	}
	return s.apply(id, func(t model.Team) model.Team {
		t.Status = status
		t.UpdatedAt = s.now()
		return t
	})
}

// Delete removes a team. Returns ErrNotFound when the id is absent.
func (s *Teams) Delete(id string) error {
	return s.remove(id)
}
