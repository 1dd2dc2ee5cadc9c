package model

import "time"

// TeamRole represents a member's role within a team.
type TeamRole string

const (
	RoleLeader   TeamRole = "leader"
	RoleMember   TeamRole = "member"
	RoleObserver TeamRole = "observer"
)

var validTeamRoles = []TeamRole{
	RoleLeader,
	RoleMember,
	RoleObserver,
}

// ValidateTeamRole returns an error if r is not a recognized team role.
func ValidateTeamRole(r TeamRole) error {
	for _, v := range validTeamRoles {
		if r == v {
			return nil
		}
	}
	return invalidEnum("team role", string(r), validTeamRoles)
}

// TeamStatus represents whether a team is currently operating.
type TeamStatus string

const (
	TeamActive   TeamStatus = "active"
	TeamInactive TeamStatus = "inactive"
)

var validTeamStatuses = []TeamStatus{TeamActive, TeamInactive}

// ValidateTeamStatus returns an error if s is not a recognized team status.
func ValidateTeamStatus(s TeamStatus) error {
	for _, v := range validTeamStatuses {
		if s == v {
			return nil
		}
	}
	return invalidEnum("team status", string(s), validTeamStatuses)
}

// TeamMember is an embedded membership record. Members reference staff
// by identifier; the name is denormalized for display.
type TeamMember struct {
	StaffID string   `json:"staff_id"`
	Name    string   `json:"name"`
	Role    TeamRole `json:"role"`
}

// Team represents a group of staff working together. Members are
// embedded rather than stored as a separate collection.
type Team struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Members       []TeamMember `json:"members"`
	Status        TeamStatus   `json:"status"`
	ProjectsCount int          `json:"projects_count"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// EntityID implements the store entity contract.
func (t Team) EntityID() string { return t.ID }
