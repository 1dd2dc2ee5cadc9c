// Package fixture provides the static seed data the entity stores are
// populated with at startup. Business entities are not persisted across
// runs; every process starts from this baseline.
package fixture

import (
	"time"

	"github.com/sprintdeck/sprintdeck/internal/model"
)

// Data bundles one seed slice per entity store.
type Data struct {
	Projects      []model.Project
	Sprints       []model.Sprint
	Tickets       []model.Ticket
	Staff         []model.Staff
	Teams         []model.Team
	Designations  []model.Designation
	StatusOptions []model.StatusOption
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 9, 0, 0, 0, time.UTC)
}

func datePtr(year, month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

// Seed returns the startup dataset. Identifiers are fixed strings so
// repeated runs and tests see the same graph; all foreign keys resolve
// within the dataset.
func Seed() Data {
	return Data{
		Projects: []model.Project{
			{
				ID:          "prj-apollo",
				Name:        "Apollo",
				Key:         "APL",
				Description: "Customer portal rebuild: new onboarding flow, billing pages, and the account dashboard.",
				Status:      model.ProjectActive,
				Priority:    model.PriorityHigh,
				StartDate:   datePtr(2026, 1, 12),
				EndDate:     datePtr(2026, 6, 30),
				Progress:    45,
				CreatedAt:   date(2026, 1, 10),
				UpdatedAt:   date(2026, 2, 24),
			},
			{
				ID:          "prj-borealis",
				Name:        "Borealis",
				Key:         "BOR",
				Description: "Internal reporting pipeline and the nightly export jobs.",
				Status:      model.ProjectActive,
				Priority:    model.PriorityMedium,
				StartDate:   datePtr(2026, 2, 2),
				Progress:    20,
				CreatedAt:   date(2026, 1, 28),
				UpdatedAt:   date(2026, 2, 20),
			},
			{
				ID:          "prj-caldera",
				Name:        "Caldera",
				Key:         "CAL",
				Description: "Legacy CRM decommissioning.",
				Status:      model.ProjectOnHold,
				Priority:    model.PriorityLow,
				Progress:    70,
				CreatedAt:   date(2025, 9, 3),
				UpdatedAt:   date(2026, 1, 15),
			},
			{
				ID:        "prj-dune",
				Name:      "Dune",
				Key:       "DUN",
				Status:    model.ProjectCompleted,
				Priority:  model.PriorityNone,
				Progress:  100,
				CreatedAt: date(2025, 5, 1),
				UpdatedAt:  date(2025, 12, 19),
			},
		},
		Sprints: []model.Sprint{
			{
				ID:              "spr-apl-7",
				ProjectID:       "prj-apollo",
				Name:            "Apollo Sprint 7",
				Goal:            "Ship the billing page redesign.",
				Status:          model.SprintActive,
				StartDate:       date(2026, 2, 16),
				EndDate:         date(2026, 3, 1),
				TotalPoints:     34,
				CompletedPoints: 21,
				CreatedAt:       date(2026, 2, 14),
				UpdatedAt:       date(2026, 2, 24),
			},
			{
				ID:              "spr-apl-8",
				ProjectID:       "prj-apollo",
				Name:            "Apollo Sprint 8",
				Status:          model.SprintPlanning,
				StartDate:       date(2026, 3, 2),
				EndDate:         date(2026, 3, 15),
				TotalPoints:     0,
				CompletedPoints: 0,
				CreatedAt:       date(2026, 2, 23),
				UpdatedAt:       date(2026, 2, 23),
			},
			{
				ID:              "spr-bor-2",
				ProjectID:       "prj-borealis",
				Name:            "Borealis Sprint 2",
				Goal:            "Stabilize the nightly export.",
				Status:          model.SprintCompleted,
				StartDate:       date(2026, 2, 2),
				EndDate:         date(2026, 2, 15),
				TotalPoints:     18,
				CompletedPoints: 18,
				CreatedAt:       date(2026, 1, 30),
				UpdatedAt:       date(2026, 2, 16),
			},
		},
		Tickets: []model.Ticket{
			{
				ID:          "tkt-apl-1",
				ProjectID:   "prj-apollo",
				SprintID:    "spr-apl-7",
				Key:         "APL-1",
				Title:       "Billing page crashes on expired cards",
				Description: "Submitting an expired card number renders a blank page instead of the validation error.",
				Type:        model.TicketBug,
				State:       model.TicketInProgress,
				Priority:    model.PriorityCritical,
				AssigneeID:  "stf-dana",
				Points:      5,
				CreatedAt:   date(2026, 2, 17),
				UpdatedAt:   date(2026, 2, 24),
			},
			{
				ID:         "tkt-apl-2",
				ProjectID:  "prj-apollo",
				SprintID:   "spr-apl-7",
				Key:        "APL-2",
				Title:      "Invoice history pagination",
				Type:       model.TicketStory,
				State:      model.TicketQA,
				Priority:   model.PriorityHigh,
				AssigneeID: "stf-ben",
				Points:     8,
				CreatedAt:  date(2026, 2, 17),
				UpdatedAt:  date(2026, 2, 23),
			},
			{
				ID:         "tkt-apl-3",
				ProjectID:  "prj-apollo",
				Key:        "APL-3",
				Title:      "Wire up account closure emails",
				Type:       model.TicketTask,
				State:      model.TicketTodo,
				Priority:   model.PriorityMedium,
				Points:     3,
				CreatedAt:  date(2026, 2, 20),
				UpdatedAt:  date(2026, 2, 20),
			},
			{
				ID:         "tkt-bor-1",
				ProjectID:  "prj-borealis",
				Key:        "BOR-1",
				Title:      "Export job retries forever on schema drift",
				Type:       model.TicketBug,
				State:      model.TicketDone,
				Priority:   model.PriorityHigh,
				AssigneeID: "stf-dana",
				Points:     5,
				CreatedAt:  date(2026, 2, 3),
				UpdatedAt:  date(2026, 2, 12),
			},
			{
				ID:        "tkt-bor-2",
				ProjectID: "prj-borealis",
				Key:       "BOR-2",
				Title:     "Partition the metrics table by month",
				Type:      model.TicketTask,
				State:     model.TicketDone,
				Priority:  model.PriorityMedium,
				Points:    8,
				CreatedAt: date(2026, 2, 4),
				UpdatedAt:  date(2026, 2, 14),
			},
			{
				ID:        "tkt-cal-1",
				ProjectID: "prj-caldera",
				Key:       "CAL-1",
				Title:     "Archive closed accounts before cutover",
				Type:      model.TicketTask,
				State:     model.TicketTodo,
				Priority:  model.PriorityLow,
				Points:    2,
				CreatedAt: date(2026, 1, 8),
				UpdatedAt:  date(2026, 1, 15),
			},
		},
		Staff: []model.Staff{
			{
				ID:         "stf-dana",
				Name:       "Dana Reyes",
				Email:      "dana.reyes@example.com",
				Mobile:     "+1-555-0134",
				Gender:     "female",
				Department: "Engineering",
				CreatedAt:  date(2025, 4, 14),
				UpdatedAt:  date(2026, 1, 5),
			},
			{
				ID:         "stf-ben",
				Name:       "Ben Okafor",
				Email:      "ben.okafor@example.com",
				Mobile:     "+1-555-0178",
				Gender:     "male",
				Department: "Engineering",
				CreatedAt:  date(2025, 7, 2),
				UpdatedAt:  date(2025, 11, 20),
			},
			{
				ID:         "stf-mira",
				Name:       "Mira Kovacs",
				Email:      "mira.kovacs@example.com",
				Department: "Design",
				CreatedAt:  date(2025, 10, 6),
				UpdatedAt:  date(2025, 10, 6),
			},
		},
		Teams: []model.Team{
			{
				ID:   "team-portal",
				Name: "Portal",
				Members: []model.TeamMember{
					{StaffID: "stf-dana", Name: "Dana Reyes", Role: model.RoleLeader},
					{StaffID: "stf-ben", Name: "Ben Okafor", Role: model.RoleMember},
					{StaffID: "stf-mira", Name: "Mira Kovacs", Role: model.RoleObserver},
				},
				Status:        model.TeamActive,
				ProjectsCount: 2,
				CreatedAt:     date(2025, 8, 1),
				UpdatedAt:     date(2026, 2, 2),
			},
			{
				ID:   "team-data",
				Name: "Data",
				Members: []model.TeamMember{
					{StaffID: "stf-ben", Name: "Ben Okafor", Role: model.RoleLeader},
				},
				Status:        model.TeamActive,
				ProjectsCount: 1,
				CreatedAt:     date(2025, 9, 15),
				UpdatedAt:     date(2026, 1, 22),
			},
		},
		Designations: []model.Designation{
			{ID: "dsg-se2", Name: "Software Engineer II", Level: 2, Department: "Engineering", Active: true, CreatedAt: date(2025, 4, 1), UpdatedAt: date(2025, 4, 1)},
			{ID: "dsg-sse", Name: "Senior Software Engineer", Level: 3, Department: "Engineering", Active: true, CreatedAt: date(2025, 4, 1), UpdatedAt: date(2025, 4, 1)},
			{ID: "dsg-pd", Name: "Product Designer", Level: 2, Department: "Design", Active: true, CreatedAt: date(2025, 4, 1), UpdatedAt: date(2025, 4, 1)},
			{ID: "dsg-intern", Name: "Engineering Intern", Level: 1, Department: "Engineering", Active: false, CreatedAt: date(2025, 4, 1), UpdatedAt: date(2025, 12, 1)},
		},
		StatusOptions: []model.StatusOption{
			{ID: "sto-todo", Name: "Todo", Color: "gray", Order: 1, IsDefault: true, Active: true, CreatedAt: date(2025, 4, 1), UpdatedAt: date(2025, 4, 1)},
			{ID: "sto-inprogress", Name: "In Progress", Color: "yellow", Order: 2, Active: true, CreatedAt: date(2025, 4, 1), UpdatedAt: date(2025, 4, 1)},
			{ID: "sto-qa", Name: "QA", Color: "magenta", Order: 3, Active: true, CreatedAt: date(2025, 4, 1), UpdatedAt: date(2025, 4, 1)},
			{ID: "sto-completed", Name: "Completed", Color: "green", Order: 4, Active: true, CreatedAt: date(2025, 4, 1), UpdatedAt: date(2025, 4, 1)},
			{ID: "sto-blocked", Name: "Blocked", Color: "red", Order: 5, Active: true, IsDeleted: true, CreatedAt: date(2025, 4, 1), UpdatedAt: date(2025, 8, 12)},
		},
	}
}
