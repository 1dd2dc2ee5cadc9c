package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/view"
)

const (
	maxCardsPerColumn = 10
	minColumnWidth    = 20
	defaultTermWidth  = 100
	cardPadding       = 2 // left+right padding inside cards
)

// BoardOptions configures board rendering behavior.
type BoardOptions struct {
	// Assignees maps staff IDs to display names for the card footer.
	Assignees map[string]string
	// ShowEmpty keeps columns with no tickets on the board.
	ShowEmpty bool
}

// Board renders tickets as a kanban board with one column per workflow
// state, ordered by model.StateOrder.
func Board(tickets []model.Ticket, opts BoardOptions) string {
	if len(tickets) == 0 {
		return EmptyState("No tickets on the board.", "Create one with: sprintdeck ticket create", false)
	}

	if !ColorsEnabled() {
		return plainBoard(tickets, opts)
	}

	return colorBoard(tickets, opts)
}

// terminalWidth returns the current terminal width, falling back to a default.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTermWidth
	}
	return w
}

// boardColumns picks the states to render, in canonical order.
func boardColumns(groups map[model.TicketState][]model.Ticket, showEmpty bool) []model.TicketState {
	var states []model.TicketState
	for _, s := range model.StateOrder {
		if showEmpty || len(groups[s]) > 0 {
			states = append(states, s)
		}
	}
	return states
}

func colorBoard(tickets []model.Ticket, opts BoardOptions) string {
	groups := view.GroupTicketsByState(tickets)
	states := boardColumns(groups, opts.ShowEmpty)
	if len(states) == 0 {
		return ""
	}

	tw := terminalWidth()
	gaps := len(states) - 1
	colWidth := (tw - gaps) / len(states)
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
	}

	// Inner width available for card content (minus border/padding).
	contentWidth := max(colWidth-cardPadding-2, 5)

	var columns []string
	for _, state := range states {
		columns = append(columns, colorColumn(state, groups[state], colWidth, contentWidth, opts))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func colorColumn(state model.TicketState, tickets []model.Ticket, colWidth, contentWidth int, opts BoardOptions) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorFromName(state.Color())).
		Width(colWidth).
		Align(lipgloss.Center)

	header := headerStyle.Render(fmt.Sprintf("%s %s (%d)", state.Icon(), strings.ToUpper(string(state)), len(tickets)))

	visible := tickets
	overflow := 0
	if len(tickets) > maxCardsPerColumn {
		visible = tickets[:maxCardsPerColumn]
		overflow = len(tickets) - maxCardsPerColumn
	}

	cards := make([]string, 0, len(visible)+2)
	cards = append(cards, header)

	for _, tk := range visible {
		cards = append(cards, colorCard(tk, colWidth, contentWidth, opts))
	}

	if overflow > 0 {
		moreStyle := lipgloss.NewStyle().
			Width(colWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color("8"))
		cards = append(cards, moreStyle.Render(fmt.Sprintf("+%d more", overflow)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func colorCard(tk model.Ticket, colWidth, contentWidth int, opts BoardOptions) string {
	if contentWidth < 5 {
		contentWidth = 5
	}

	typeIcon := lipgloss.NewStyle().
		Foreground(ColorFromName(tk.Type.Color())).
		Render(tk.Type.Icon())
	priIcon := lipgloss.NewStyle().
		Foreground(ColorFromName(tk.Priority.Color())).
		Render(tk.Priority.Icon())
	line1 := fmt.Sprintf("%s %s %s", typeIcon, tk.Key, priIcon)

	line2 := truncate(tk.Title, contentWidth)

	var footer []string
	if name, ok := opts.Assignees[tk.AssigneeID]; ok && name != "" {
		footer = append(footer, truncate(name, contentWidth-5))
	}
	if tk.Points > 0 {
		footer = append(footer, fmt.Sprintf("%dpt", tk.Points))
	}

	lines := []string{line1, line2}
	if len(footer) > 0 {
		dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		lines = append(lines, dim.Render(truncate(strings.Join(footer, " · "), contentWidth)))
	}

	cardStyle := lipgloss.NewStyle().
		Width(colWidth - 2). // account for outer spacing
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorFromName(tk.State.Color()))

	return cardStyle.Render(strings.Join(lines, "\n"))
}

// --- Plain text fallback ---

func plainBoard(tickets []model.Ticket, opts BoardOptions) string {
	groups := view.GroupTicketsByState(tickets)
	states := boardColumns(groups, opts.ShowEmpty)
	if len(states) == 0 {
		return ""
	}

	var b strings.Builder

	for i, state := range states {
		if i > 0 {
			b.WriteString("\n")
		}

		inCol := groups[state]
		fmt.Fprintf(&b, "=== %s %s (%d) ===\n", state.Icon(), strings.ToUpper(string(state)), len(inCol))

		visible := inCol
		overflow := 0
		if len(inCol) > maxCardsPerColumn {
			visible = inCol[:maxCardsPerColumn]
			overflow = len(inCol) - maxCardsPerColumn
		}

		for _, tk := range visible {
			plainCard(&b, tk, opts)
		}

		if overflow > 0 {
			fmt.Fprintf(&b, "  +%d more\n", overflow)
		}
	}

	return b.String()
}

func plainCard(b *strings.Builder, tk model.Ticket, opts BoardOptions) {
	fmt.Fprintf(b, "  %s [%s] (%s)\n", tk.Key, string(tk.Priority), string(tk.Type))
	fmt.Fprintf(b, "  %s\n", truncate(tk.Title, maxTitleWidth))

	var footer []string
	if name, ok := opts.Assignees[tk.AssigneeID]; ok && name != "" {
		footer = append(footer, name)
	}
	if tk.Points > 0 {
		footer = append(footer, fmt.Sprintf("%dpt", tk.Points))
	}
	if len(footer) > 0 {
		fmt.Fprintf(b, "  %s\n", strings.Join(footer, " / "))
	}

	b.WriteString("\n")
}
