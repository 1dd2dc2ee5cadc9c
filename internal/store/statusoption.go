package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sprintdeck/sprintdeck/internal/model"
)

// StatusOptions is the entity store for the configurable ticket status
// catalog. Unlike the other stores it deletes softly: removed options
// stay in the collection with IsDeleted set so tickets that reference
// them keep resolving.
type StatusOptions struct {
	*Store[model.StatusOption]
}

// NewStatusOptions returns an empty status catalog.
func NewStatusOptions(opts ...Option) *StatusOptions {
	return &StatusOptions{New[model.StatusOption](opts...)}
}

// StatusOptionInput carries the fields required to create a catalog entry.
type StatusOptionInput struct {
	Name  string
	Color string
	Order int // zero means append after the current highest order
}

// Create assigns an identifier, timestamps, and a display order, and
// appends the option. New options start active and non-default.
func (s *StatusOptions) Create(in StatusOptionInput) (model.StatusOption, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.StatusOption{}, fmt.Errorf("status name is required")
	}
	order := in.Order
	if order == 0 {
		for _, o := range s.items {
			if o.Order >= order {
				order = o.Order + 1
			}
		}
		if order == 0 {
			order = 1
		}
	}

	now := s.now()
	o := model.StatusOption{
		ID:        s.newID(),
		Name:      in.Name,
		Color:     in.Color,
		Order:     order,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.insert(o)
	return o, nil
}

// StatusOptionPatch is a partial update; nil fields are left unchanged.
type StatusOptionPatch struct {
	Name  *string
	Color *string
	Order *int
}

// Update merges the patch over the existing record and refreshes its
// update timestamp.
func (s *StatusOptions) Update(id string, patch StatusOptionPatch) (model.StatusOption, error) {
	return s.apply(id, func(o model.StatusOption) model.StatusOption {
		if patch.Name != nil {
			o.Name = *patch.Name
		}
		if patch.Color != nil {
			o.Color = *patch.Color
		}
		if patch.Order != nil {
			o.Order = *patch.Order
		}
		o.UpdatedAt = s.now()
		return o
	})
}

// ToggleActive flips the active flag and refreshes the update timestamp.
func (s *StatusOptions) ToggleActive(id string) (model.StatusOption, error) {
	return s.apply(id, func(o model.StatusOption) model.StatusOption {
		o.Active = !o.Active
		o.UpdatedAt = s.now()
		return o
	})
}

// SetDefault marks one option as the default and clears the flag on
// every other option.
func (s *StatusOptions) SetDefault(id string) (model.StatusOption, error) {
	if _, err := s.Get(id); err != nil {
		return model.StatusOption{}, err
	}
	now := s.now()
	next := make([]model.StatusOption, len(s.items))
	var chosen model.StatusOption
	for i, o := range s.items {
		wasDefault := o.IsDefault
		o.IsDefault = o.ID == id
		if o.IsDefault != wasDefault {
			o.UpdatedAt = now
		}
		if o.ID == id {
			chosen = o
		}
		next[i] = o
	}
	s.items = next
	return chosen, nil
}

// Delete soft-deletes a catalog entry: the record stays retrievable by
// Get but disappears from the Visible view.
func (s *StatusOptions) Delete(id string) error {
	_, err := s.apply(id, func(o model.StatusOption) model.StatusOption {
		o.IsDeleted = true
		o.UpdatedAt = s.now()
		return o
	})
	return err
}

// Visible returns the non-deleted options ordered by display order.
// Equal orders keep insertion order.
func (s *StatusOptions) Visible() []model.StatusOption {
	visible := make([]model.StatusOption, 0, len(s.items))
	for _, o := range s.items {
		if !o.IsDeleted {
			visible = append(visible, o)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Order < visible[j].Order
	})
	return visible
}
