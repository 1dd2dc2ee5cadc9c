package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sprintdeck/sprintdeck/internal/model"
)

// makeTicket creates a minimal ticket for testing.
func makeTicket(key, title string, state model.TicketState, priority model.Priority) model.Ticket {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return model.Ticket{
		ID:        "tkt-" + key,
		ProjectID: "prj-1",
		Key:       key,
		Title:     title,
		Type:      model.TicketTask,
		State:     state,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestBoardEmpty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := Board(nil, BoardOptions{})
	if !strings.Contains(got, "No tickets on the board.") {
		t.Errorf("Board(nil) = %q, want empty-state message", got)
	}
}

func TestPlainBoardGroupsByState(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tickets := []model.Ticket{
		makeTicket("APL-1", "Task A", model.TicketTodo, model.PriorityHigh),
		makeTicket("APL-2", "Task B", model.TicketDone, model.PriorityLow),
		makeTicket("APL-3", "Task C", model.TicketTodo, model.PriorityMedium),
	}

	got := Board(tickets, BoardOptions{})

	if !strings.Contains(got, "TODO (2)") {
		t.Errorf("expected TODO column with 2 tickets, got:\n%s", got)
	}
	if !strings.Contains(got, "COMPLETED (1)") {
		t.Errorf("expected COMPLETED column with 1 ticket, got:\n%s", got)
	}
	// Empty columns are hidden by default.
	for _, state := range []string{"INPROGRESS", "QA"} {
		if strings.Contains(got, "=== "+state) {
			t.Errorf("should not have %s column when empty, got:\n%s", state, got)
		}
	}
}

func TestPlainBoardShowEmptyColumns(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tickets := []model.Ticket{
		makeTicket("APL-1", "Task A", model.TicketTodo, model.PriorityHigh),
	}

	got := Board(tickets, BoardOptions{ShowEmpty: true})

	for _, state := range []string{"TODO (1)", "INPROGRESS (0)", "QA (0)", "COMPLETED (0)"} {
		if !strings.Contains(got, state) {
			t.Errorf("expected column header %q with ShowEmpty, got:\n%s", state, got)
		}
	}
}

func TestPlainBoardColumnOrder(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tickets := []model.Ticket{
		makeTicket("APL-1", "Done task", model.TicketDone, model.PriorityNone),
		makeTicket("APL-2", "QA task", model.TicketQA, model.PriorityNone),
		makeTicket("APL-3", "Todo task", model.TicketTodo, model.PriorityNone),
		makeTicket("APL-4", "Active task", model.TicketInProgress, model.PriorityNone),
	}

	got := Board(tickets, BoardOptions{})

	todoIdx := strings.Index(got, "=== ○ TODO")
	progressIdx := strings.Index(got, "=== ◐ INPROGRESS")
	qaIdx := strings.Index(got, "=== ◍ QA")
	doneIdx := strings.Index(got, "=== ✔ COMPLETED")

	if todoIdx < 0 || progressIdx < 0 || qaIdx < 0 || doneIdx < 0 {
		t.Fatalf("missing column headers in output:\n%s", got)
	}
	if !(todoIdx < progressIdx && progressIdx < qaIdx && qaIdx < doneIdx) {
		t.Errorf("columns not in workflow order (todo=%d, inprogress=%d, qa=%d, completed=%d)",
			todoIdx, progressIdx, qaIdx, doneIdx)
	}
}

func TestPlainBoardTitleTruncation(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	longTitle := strings.Repeat("A", 60)
	got := Board([]model.Ticket{makeTicket("APL-1", longTitle, model.TicketTodo, model.PriorityMedium)}, BoardOptions{})

	if strings.Contains(got, longTitle) {
		t.Error("expected long title to be truncated, but found full title in output")
	}
	if !strings.Contains(got, "...") {
		t.Error("expected truncated title to contain ellipsis (...)")
	}
}

func TestPlainBoardCardFormat(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tk := makeTicket("APL-7", "Fix the billing crash", model.TicketTodo, model.PriorityCritical)
	tk.AssigneeID = "stf-1"
	tk.Points = 5

	got := Board([]model.Ticket{tk}, BoardOptions{Assignees: map[string]string{"stf-1": "Dana Reyes"}})

	if !strings.Contains(got, "APL-7 [critical] (task)") {
		t.Errorf("expected 'APL-7 [critical] (task)' line in card, got:\n%s", got)
	}
	if !strings.Contains(got, "Fix the billing crash") {
		t.Errorf("expected title in card, got:\n%s", got)
	}
	if !strings.Contains(got, "Dana Reyes / 5pt") {
		t.Errorf("expected assignee and points footer, got:\n%s", got)
	}
}

func TestPlainBoardNoFooterWithoutAssigneeOrPoints(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got := Board([]model.Ticket{makeTicket("APL-1", "Bare ticket", model.TicketTodo, model.PriorityMedium)}, BoardOptions{})

	if strings.Contains(got, "pt") {
		t.Errorf("expected no points footer for zero-point ticket, got:\n%s", got)
	}
}

func TestPlainBoardOverflow(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var tickets []model.Ticket
	for i := 1; i <= 13; i++ {
		tickets = append(tickets, makeTicket(fmt.Sprintf("APL-%d", i), "Task", model.TicketTodo, model.PriorityMedium))
	}

	got := Board(tickets, BoardOptions{})

	if !strings.Contains(got, "TODO (13)") {
		t.Errorf("expected TODO (13) header, got:\n%s", got)
	}
	if !strings.Contains(got, "+3 more") {
		t.Errorf("expected '+3 more' overflow indicator, got:\n%s", got)
	}
}

func TestPlainBoardExactlyMaxCards(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var tickets []model.Ticket
	for i := 1; i <= 10; i++ {
		tickets = append(tickets, makeTicket(fmt.Sprintf("APL-%d", i), "Task", model.TicketTodo, model.PriorityMedium))
	}

	got := Board(tickets, BoardOptions{})

	if strings.Contains(got, "more") {
		t.Errorf("expected no overflow indicator for exactly 10 tickets, got:\n%s", got)
	}
}

func TestBoardColorPathExecutes(t *testing.T) {
	// The color path uses lipgloss which respects the TERM env var.
	// We cannot truly unset NO_COLOR with t.Setenv (it only sets, never
	// unsets), so exercise the color renderer directly.
	tickets := []model.Ticket{
		makeTicket("APL-1", "Task A", model.TicketTodo, model.PriorityHigh),
		makeTicket("APL-2", "Task B", model.TicketDone, model.PriorityLow),
	}

	got := colorBoard(tickets, BoardOptions{Assignees: map[string]string{}})
	if got == "" {
		t.Error("expected non-empty output from color board render")
	}
}

func TestBoardColumnsSelection(t *testing.T) {
	groups := map[model.TicketState][]model.Ticket{
		model.TicketTodo: {makeTicket("APL-1", "A", model.TicketTodo, model.PriorityMedium)},
	}

	got := boardColumns(groups, false)
	if len(got) != 1 || got[0] != model.TicketTodo {
		t.Errorf("boardColumns(hide empty) = %v, want [todo]", got)
	}

	got = boardColumns(groups, true)
	if len(got) != len(model.StateOrder) {
		t.Errorf("boardColumns(show empty) has %d columns, want %d", len(got), len(model.StateOrder))
	}
}
