package view

import (
	"math"
	"testing"
	"time"

	"github.com/sprintdeck/sprintdeck/internal/model"
)

func ts(day int) time.Time {
	return time.Date(2026, 3, day, 12, 0, 0, 0, time.UTC)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeDashboard(t *testing.T) {
	projects := []model.Project{
		{ID: "p1", Status: model.ProjectActive},
		{ID: "p2", Status: model.ProjectActive},
		{ID: "p3", Status: model.ProjectArchived},
	}
	tickets := []model.Ticket{
		{ID: "t1", State: model.TicketDone},
		{ID: "t2", State: model.TicketDone},
		{ID: "t3", State: model.TicketTodo},
	}

	stats := ComputeDashboard(projects, tickets)
	if stats.TotalProjects != 3 || stats.ActiveProjects != 2 {
		t.Errorf("projects = %d/%d, want 2/3 active", stats.ActiveProjects, stats.TotalProjects)
	}
	if stats.TotalTickets != 3 || stats.CompletedTickets != 2 {
		t.Errorf("tickets = %d/%d, want 2/3 completed", stats.CompletedTickets, stats.TotalTickets)
	}
	if !almostEqual(stats.CompletionRate, 200.0/3.0) {
		t.Errorf("CompletionRate = %v, want %v", stats.CompletionRate, 200.0/3.0)
	}
}

func TestCompletionRateGuardsEmpty(t *testing.T) {
	stats := ComputeDashboard(nil, nil)
	if stats.CompletionRate != 0 {
		t.Errorf("CompletionRate on empty tickets = %v, want 0", stats.CompletionRate)
	}
}

func TestTicketsByStateIncludesZeroCounts(t *testing.T) {
	counts := TicketsByState([]model.Ticket{{State: model.TicketQA}})
	if len(counts) != len(model.StateOrder) {
		t.Fatalf("counts has %d states, want %d", len(counts), len(model.StateOrder))
	}
	if counts[model.TicketQA] != 1 || counts[model.TicketTodo] != 0 {
		t.Errorf("counts = %v", counts)
	}
}

func TestRecentTicketsStableOnTies(t *testing.T) {
	// t1 > t2 == t2 > t3; the tied pair must keep collection order.
	tickets := []model.Ticket{
		{ID: "newest", UpdatedAt: ts(10)},
		{ID: "tied-first", UpdatedAt: ts(5)},
		{ID: "tied-second", UpdatedAt: ts(5)},
		{ID: "oldest", UpdatedAt: ts(1)},
	}

	got := RecentTickets(tickets, 2)
	if len(got) != 2 {
		t.Fatalf("RecentTickets(2) returned %d items", len(got))
	}
	if got[0].ID != "newest" || got[1].ID != "tied-first" {
		t.Errorf("recent order = [%s, %s], want [newest, tied-first]", got[0].ID, got[1].ID)
	}

	got3 := RecentTickets(tickets, 3)
	if got3[2].ID != "tied-second" {
		t.Errorf("third recent = %s, want tied-second", got3[2].ID)
	}
}

func TestRecentHandlesShortAndZeroInput(t *testing.T) {
	projects := []model.Project{{ID: "p1", UpdatedAt: ts(1)}}
	if got := RecentProjects(projects, 5); len(got) != 1 {
		t.Errorf("RecentProjects beyond length = %d items, want 1", len(got))
	}
	if got := RecentProjects(projects, -1); len(got) != 0 {
		t.Errorf("RecentProjects(-1) = %d items, want 0", len(got))
	}
	if got := RecentProjects(nil, 3); len(got) != 0 {
		t.Errorf("RecentProjects(nil) = %d items, want 0", len(got))
	}
}

func TestRecentRanksZeroTimestampLast(t *testing.T) {
	tickets := []model.Ticket{
		{ID: "undated"}, // zero UpdatedAt, e.g. decoded from a malformed date
		{ID: "dated", UpdatedAt: ts(2)},
	}
	got := RecentTickets(tickets, 2)
	if got[0].ID != "dated" || got[1].ID != "undated" {
		t.Errorf("order = [%s, %s], want dated first", got[0].ID, got[1].ID)
	}
}

func TestSprintProgressGuard(t *testing.T) {
	if p := SprintProgress(model.Sprint{TotalPoints: 0, CompletedPoints: 0}); p != 0 {
		t.Errorf("SprintProgress with zero total = %v, want 0", p)
	}
	if p := SprintProgress(model.Sprint{TotalPoints: 20, CompletedPoints: 5}); !almostEqual(p, 25) {
		t.Errorf("SprintProgress = %v, want 25", p)
	}
}

func TestProjectProgress(t *testing.T) {
	tickets := []model.Ticket{
		{ProjectID: "p1", State: model.TicketDone},
		{ProjectID: "p1", State: model.TicketTodo},
		{ProjectID: "p2", State: model.TicketDone},
	}
	if p := ProjectProgress("p1", tickets); !almostEqual(p, 50) {
		t.Errorf("ProjectProgress(p1) = %v, want 50", p)
	}
	if p := ProjectProgress("empty", tickets); p != 0 {
		t.Errorf("ProjectProgress with no tickets = %v, want 0", p)
	}
}

func TestFilterConjunction(t *testing.T) {
	projects := []model.Project{
		{ID: "p1", Name: "Apollo", Status: model.ProjectActive},
		{ID: "p2", Name: "Apollo", Status: model.ProjectArchived},
	}

	got := FilterProjects(projects, ProjectFilter{Search: "apollo", Status: "active"})
	if len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("conjunctive filter = %v, want exactly p1", got)
	}
}

func TestFilterSearchFields(t *testing.T) {
	projects := []model.Project{
		{ID: "p1", Name: "Apollo", Key: "APL", Description: "lunar program"},
		{ID: "p2", Name: "Borealis", Key: "BOR", Description: "northern lights"},
	}

	tests := []struct {
		search string
		want   []string
	}{
		{"", []string{"p1", "p2"}},
		{"LUNAR", []string{"p1"}},
		{"bor", []string{"p2"}},
		{"nomatch", nil},
	}

	for _, tt := range tests {
		got := FilterProjects(projects, ProjectFilter{Search: tt.search})
		if len(got) != len(tt.want) {
			t.Errorf("search %q returned %d projects, want %d", tt.search, len(got), len(tt.want))
			continue
		}
		for i, id := range tt.want {
			if got[i].ID != id {
				t.Errorf("search %q result[%d] = %s, want %s", tt.search, i, got[i].ID, id)
			}
		}
	}
}

func TestFilterAllSentinel(t *testing.T) {
	projects := []model.Project{
		{ID: "p1", Status: model.ProjectActive},
		{ID: "p2", Status: model.ProjectArchived},
	}
	if got := FilterProjects(projects, ProjectFilter{Status: FilterAll}); len(got) != 2 {
		t.Errorf("status=all filtered to %d projects, want 2", len(got))
	}
}

func TestTabPredicateLayersOnTop(t *testing.T) {
	projects := []model.Project{
		{ID: "p1", Name: "Apollo", Status: model.ProjectActive},
		{ID: "p2", Name: "Apollo", Status: model.ProjectCompleted},
		{ID: "p3", Name: "Zephyr", Status: model.ProjectCompleted},
	}

	got := FilterProjects(projects, ProjectFilter{Search: "apollo", Tab: TabCompleted})
	if len(got) != 1 || got[0].ID != "p2" {
		t.Errorf("tab+search filter = %v, want exactly p2", got)
	}
	if got := FilterProjects(projects, ProjectFilter{Tab: TabArchived}); len(got) != 0 {
		t.Errorf("archived tab = %d projects, want 0", len(got))
	}
}

func TestFilterTickets(t *testing.T) {
	tickets := []model.Ticket{
		{ID: "t1", ProjectID: "p1", Key: "APL-1", Title: "Fix login crash", Type: model.TicketBug, State: model.TicketTodo, Priority: model.PriorityHigh},
		{ID: "t2", ProjectID: "p1", Key: "APL-2", Title: "Add login telemetry", Type: model.TicketTask, State: model.TicketDone, Priority: model.PriorityLow},
		{ID: "t3", ProjectID: "p2", Key: "BOR-1", Title: "Login page styles", Type: model.TicketBug, State: model.TicketTodo, Priority: model.PriorityHigh},
	}

	got := FilterTickets(tickets, TicketFilter{Search: "login", Type: "bug", ProjectID: "p1"})
	if len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("ticket filter = %v, want exactly t1", got)
	}

	got = FilterTickets(tickets, TicketFilter{Search: "apl-2"})
	if len(got) != 1 || got[0].ID != "t2" {
		t.Errorf("key search = %v, want exactly t2", got)
	}
}

func TestJoins(t *testing.T) {
	sprints := []model.Sprint{
		{ID: "s1", ProjectID: "p1"},
		{ID: "s2", ProjectID: "p2"},
	}
	tickets := []model.Ticket{
		{ID: "t1", ProjectID: "p1", SprintID: "s1"},
	}

	gotSprints := SprintsForProject(sprints, "p1")
	if len(gotSprints) != 1 || gotSprints[0].ID != "s1" {
		t.Errorf("SprintsForProject(p1) = %v, want [s1]", gotSprints)
	}

	gotTickets := TicketsForProject(tickets, "p1")
	if len(gotTickets) != 1 || gotTickets[0].ID != "t1" {
		t.Errorf("TicketsForProject(p1) = %v, want [t1]", gotTickets)
	}

	if got := TicketsForSprint(tickets, "s2"); len(got) != 0 {
		t.Errorf("TicketsForSprint(s2) = %v, want empty", got)
	}

	// Backlog tickets (no sprint) must not leak into any sprint join.
	backlog := append(tickets, model.Ticket{ID: "t2", ProjectID: "p1"})
	if got := TicketsForSprint(backlog, ""); len(got) != 1 || got[0].ID != "t2" {
		t.Errorf("empty sprint id join = %v, want [t2]", got)
	}
}

func TestGroupTicketsByState(t *testing.T) {
	tickets := []model.Ticket{
		{ID: "t1", State: model.TicketTodo},
		{ID: "t2", State: model.TicketDone},
		{ID: "t3", State: model.TicketTodo},
	}

	groups := GroupTicketsByState(tickets)
	if len(groups) != len(model.StateOrder) {
		t.Fatalf("groups has %d states, want %d", len(groups), len(model.StateOrder))
	}
	todo := groups[model.TicketTodo]
	if len(todo) != 2 || todo[0].ID != "t1" || todo[1].ID != "t3" {
		t.Errorf("todo bucket = %v, want [t1, t3] in order", todo)
	}
	if len(groups[model.TicketQA]) != 0 {
		t.Errorf("qa bucket = %v, want empty", groups[model.TicketQA])
	}
}
