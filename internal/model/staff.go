package model

import "time"

// Staff represents an organization member who can be assigned work.
type Staff struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Mobile     string    `json:"mobile,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	Department string    `json:"department,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EntityID implements the store entity contract.
func (s Staff) EntityID() string { return s.ID }

// Designation represents a job title within a department.
type Designation struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Level      int       `json:"level"`
	Department string    `json:"department,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EntityID implements the store entity contract.
func (d Designation) EntityID() string { return d.ID }
