package store

import (
	"fmt"
	"strings"

	"github.com/sprintdeck/sprintdeck/internal/model"
)

// Staffs is the entity store for staff records.
type Staffs struct {
	*Store[model.Staff]
}

// NewStaffs returns an empty staff store.
func NewStaffs(opts ...Option) *Staffs {
	return &Staffs{New[model.Staff](opts...)}
}

// StaffInput carries the fields required to create a staff record.
type StaffInput struct {
	Name       string
	Email      string
	Mobile     string
	Gender     string
	Department string
}

// Create validates the input, assigns an identifier and timestamps, and
// appends the record. Email addresses must be unique.
func (s *Staffs) Create(in StaffInput) (model.Staff, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Staff{}, fmt.Errorf("staff name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return model.Staff{}, fmt.Errorf("staff email is required")
	}
	for _, m := range s.items {
		if strings.EqualFold(m.Email, in.Email) {
			return model.Staff{}, fmt.Errorf("staff email %q already in use by %q", in.Email, m.Name)
		}
	}

	now := s.now()
	m := model.Staff{
		ID:         s.newID(),
		Name:       in.Name,
		Email:      in.Email,
		Mobile:     in.Mobile,
		Gender:     in.Gender,
		Department: in.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.insert(m)
	return m, nil
}

// StaffPatch is a partial update; nil fields are left unchanged.
type StaffPatch struct {
	Name       *string
	Email      *string
	Mobile     *string
	Gender     *string
	Department *string
}

// Update merges the patch over the existing record and refreshes its
// update timestamp.
func (s *Staffs) Update(id string, patch StaffPatch) (model.Staff, error) {
	if patch.Email != nil {
		for _, m := range s.items {
			if m.ID != id && strings.EqualFold(m.Email, *patch.Email) {
				return model.Staff{}, fmt.Errorf("staff email %q already in use by %q", *patch.Email, m.Name)
			}
		}
	}
	return s.apply(id, func(m model.Staff) model.Staff {
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Email != nil {
			m.Email = *patch.Email
		}
		if patch.Mobile != nil {
			m.Mobile = *patch.Mobile
		}
		if patch.Gender != nil {
			m.Gender = *patch.Gender
		}
		if patch.Department != nil {
			m.Department = *patch.Department
		}
		m.UpdatedAt = s.now()
		return m
	})
}

// Delete removes a staff record. Returns ErrNotFound when the id is absent.
func (s *Staffs) Delete(id string) error {
	return s.remove(id)
}

// Designations is the entity store for job designations.
type Designations struct {
	*Store[model.Designation]
}

// NewDesignations returns an empty designation store.
func NewDesignations(opts ...Option) *Designations {
	return &Designations{New[model.Designation](opts...)}
}

// DesignationInput carries the fields required to create a designation.
type DesignationInput struct {
	Name       string
	Level      int
	Department string
}

// Create assigns an identifier and timestamps and appends the record.
// New designations start active.
func (s *Designations) Create(in DesignationInput) (model.Designation, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Designation{}, fmt.Errorf("designation name is required")
	}
	now := s.now()
	d := model.Designation{
		ID:         s.newID(),
		Name:       in.Name,
		Level:      in.Level,
		Department: in.Department,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.insert(d)
	return d, nil
}

// ToggleActive flips the active flag and refreshes the update timestamp.
func (s *Designations) ToggleActive(id string) (model.Designation, error) {
	return s.apply(id, func(d model.Designation) model.Designation {
		d.Active = !d.Active
		d.UpdatedAt = s.now()
		return d
	})
}

// Delete removes a designation. Returns ErrNotFound when the id is absent.
func (s *Designations) Delete(id string) error {
	return s.remove(id)
}
