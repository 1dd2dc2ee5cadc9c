package model

import "time"

// StatusOption is a configurable entry in the ticket status catalog.
// Options are soft-deleted: IsDeleted hides an option from default
// listings while preserving it for tickets that still reference it.
type StatusOption struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Order     int       `json:"order"`
	IsDefault bool      `json:"is_default"`
	Active    bool      `json:"active"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityID implements the store entity contract.
func (o StatusOption) EntityID() string { return o.ID }
