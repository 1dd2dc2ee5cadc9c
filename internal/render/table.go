package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	humanize "github.com/dustin/go-humanize"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/view"
)

const maxTitleWidth = 40

// StyledText applies a lipgloss style to text when colors are enabled.
// When colors are disabled, it returns the plain text unchanged.
func StyledText(text string, style lipgloss.Style) string {
	if ColorsEnabled() {
		return style.Render(text)
	}
	return text
}

// ColorFromName maps model color name strings to lipgloss colors.
func ColorFromName(name string) lipgloss.Color {
	switch name {
	case "red":
		return lipgloss.Color("9")
	case "yellow":
		return lipgloss.Color("11")
	case "blue":
		return lipgloss.Color("12")
	case "green":
		return lipgloss.Color("10")
	case "magenta":
		return lipgloss.Color("13")
	case "gray":
		return lipgloss.Color("8")
	case "white":
		return lipgloss.Color("15")
	default:
		return lipgloss.Color("15")
	}
}

// truncate shortens a string to maxLen runes, appending an ellipsis if truncated.
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// stateLabel returns a workflow state with its icon, e.g. "✔ completed".
func stateLabel(s model.TicketState) string {
	return s.Icon() + " " + string(s)
}

// EmptyState renders a styled empty-state message with an optional contextual hint.
// When colors are enabled the message is rendered in dim gray and the hint is italic.
// When quiet is true the hint is suppressed.
func EmptyState(message, hint string, quiet bool) string {
	if !ColorsEnabled() {
		if quiet || hint == "" {
			return message
		}
		return message + "\n" + hint
	}

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)

	result := dimStyle.Render(message)
	if !quiet && hint != "" {
		result += "\n" + hintStyle.Render(hint)
	}
	return result
}

// styledTable builds a bordered lipgloss table with a shared look: dim
// border, bold white header, one cell-styling callback per data column.
func styledTable(headers []string, rows [][]string, cellStyle func(row, col int, s lipgloss.Style) lipgloss.Style) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
			if row == table.HeaderRow {
				return s.Bold(true).Foreground(lipgloss.Color("15"))
			}
			return cellStyle(row, col, s)
		})
	return t.Render()
}

// ProjectTable renders projects as a formatted table.
func ProjectTable(projects []model.Project) string {
	if len(projects) == 0 {
		return EmptyState("No projects found.", "Create one with: sprintdeck project create", false)
	}

	if !ColorsEnabled() {
		return plainProjectTable(projects)
	}

	headers := []string{"Key", "Name", "Status", "Priority", "Progress", "Updated"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, projectRow(p))
	}

	return styledTable(headers, rows, func(row, col int, s lipgloss.Style) lipgloss.Style {
		if row < 0 || row >= len(projects) {
			return s
		}
		p := projects[row]
		switch col {
		case 0:
			return s.Foreground(lipgloss.Color("15"))
		case 1:
			return s.Bold(true)
		case 2:
			return s.Foreground(ColorFromName(p.Status.Color()))
		case 3:
			return s.Foreground(ColorFromName(p.Priority.Color()))
		default:
			return s
		}
	})
}

func projectRow(p model.Project) []string {
	return []string{
		p.Key,
		truncate(p.Name, maxTitleWidth),
		string(p.Status),
		fmt.Sprintf("%s %s", p.Priority.Icon(), string(p.Priority)),
		fmt.Sprintf("%d%%", p.Progress),
		humanize.Time(p.UpdatedAt),
	}
}

func plainProjectTable(projects []model.Project) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-6s %-30s %-12s %-14s %-9s %s\n",
		"Key", "Name", "Status", "Priority", "Progress", "Updated")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 96))

	for _, p := range projects {
		fmt.Fprintf(&b, "%-6s %-30s %-12s %-14s %-9s %s\n",
			p.Key,
			truncate(p.Name, 30),
			string(p.Status),
			fmt.Sprintf("%s %s", p.Priority.Icon(), string(p.Priority)),
			fmt.Sprintf("%d%%", p.Progress),
			humanize.Time(p.UpdatedAt),
		)
	}

	return b.String()
}

// TicketTable renders tickets as a formatted table.
func TicketTable(tickets []model.Ticket) string {
	if len(tickets) == 0 {
		return EmptyState("No tickets found.", "Create one with: sprintdeck ticket create", false)
	}

	if !ColorsEnabled() {
		return plainTicketTable(tickets)
	}

	headers := []string{"Key", "Status", "Priority", "Type", "Title", "Points", "Updated"}
	rows := make([][]string, 0, len(tickets))
	for _, tk := range tickets {
		rows = append(rows, ticketRow(tk))
	}

	return styledTable(headers, rows, func(row, col int, s lipgloss.Style) lipgloss.Style {
		if row < 0 || row >= len(tickets) {
			return s
		}
		tk := tickets[row]
		switch col {
		case 0:
			return s.Foreground(lipgloss.Color("15"))
		case 1:
			return s.Foreground(ColorFromName(tk.State.Color()))
		case 2:
			return s.Foreground(ColorFromName(tk.Priority.Color()))
		case 3:
			return s.Foreground(ColorFromName(tk.Type.Color()))
		case 4:
			return s.Bold(true)
		default:
			return s
		}
	})
}

func ticketRow(tk model.Ticket) []string {
	return []string{
		tk.Key,
		stateLabel(tk.State),
		fmt.Sprintf("%s %s", tk.Priority.Icon(), string(tk.Priority)),
		fmt.Sprintf("%s %s", tk.Type.Icon(), string(tk.Type)),
		truncate(tk.Title, maxTitleWidth),
		fmt.Sprintf("%d", tk.Points),
		humanize.Time(tk.UpdatedAt),
	}
}

func plainTicketTable(tickets []model.Ticket) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-8s %-14s %-14s %-8s %-40s %-6s %s\n",
		"Key", "Status", "Priority", "Type", "Title", "Points", "Updated")
	fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 110))

	for _, tk := range tickets {
		fmt.Fprintf(&b, "%-8s %-16s %-16s %-10s %-40s %-6d %s\n",
			tk.Key,
			stateLabel(tk.State),
			fmt.Sprintf("%s %s", tk.Priority.Icon(), string(tk.Priority)),
			string(tk.Type),
			truncate(tk.Title, maxTitleWidth),
			tk.Points,
			humanize.Time(tk.UpdatedAt),
		)
	}

	return b.String()
}

// SprintTable renders sprints as a formatted table with point progress.
func SprintTable(sprints []model.Sprint) string {
	if len(sprints) == 0 {
		return EmptyState("No sprints found.", "", false)
	}

	rows := make([][]string, 0, len(sprints))
	for _, s := range sprints {
		rows = append(rows, []string{
			truncate(s.Name, maxTitleWidth),
			string(s.Status),
			s.StartDate.Format("2006-01-02"),
			s.EndDate.Format("2006-01-02"),
			fmt.Sprintf("%d/%d", s.CompletedPoints, s.TotalPoints),
			fmt.Sprintf("%.0f%%", view.SprintProgress(s)),
		})
	}

	if !ColorsEnabled() {
		var b strings.Builder
		fmt.Fprintf(&b, "%-40s %-10s %-11s %-11s %-8s %s\n",
			"Name", "Status", "Start", "End", "Points", "Done")
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 90))
		for _, row := range rows {
			fmt.Fprintf(&b, "%-40s %-10s %-11s %-11s %-8s %s\n",
				row[0], row[1], row[2], row[3], row[4], row[5])
		}
		return b.String()
	}

	headers := []string{"Name", "Status", "Start", "End", "Points", "Done"}
	return styledTable(headers, rows, func(row, col int, s lipgloss.Style) lipgloss.Style {
		if row < 0 || row >= len(sprints) {
			return s
		}
		switch col {
		case 0:
			return s.Bold(true)
		case 1:
			return s.Foreground(ColorFromName(sprints[row].Status.Color()))
		default:
			return s
		}
	})
}

// StatusTable renders the visible workflow status options in board order.
func StatusTable(options []model.StatusOption) string {
	if len(options) == 0 {
		return EmptyState("No statuses configured.", "", false)
	}

	rows := make([][]string, 0, len(options))
	for _, o := range options {
		def := ""
		if o.IsDefault {
			def = "default"
		}
		active := "yes"
		if !o.Active {
			active = "no"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", o.Order),
			o.Name,
			o.Color,
			active,
			def,
		})
	}

	if !ColorsEnabled() {
		var b strings.Builder
		fmt.Fprintf(&b, "%-5s %-20s %-10s %-7s %s\n", "Order", "Name", "Color", "Active", "")
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 52))
		for _, row := range rows {
			fmt.Fprintf(&b, "%-5s %-20s %-10s %-7s %s\n", row[0], row[1], row[2], row[3], row[4])
		}
		return b.String()
	}

	headers := []string{"Order", "Name", "Color", "Active", ""}
	return styledTable(headers, rows, func(row, col int, s lipgloss.Style) lipgloss.Style {
		if row < 0 || row >= len(options) {
			return s
		}
		switch col {
		case 1:
			return s.Foreground(ColorFromName(options[row].Color)).Bold(true)
		case 4:
			return s.Foreground(lipgloss.Color("8")).Italic(true)
		default:
			return s
		}
	})
}

// TeamTable renders teams with their member rosters.
func TeamTable(teams []model.Team) string {
	if len(teams) == 0 {
		return EmptyState("No teams found.", "", false)
	}

	rows := make([][]string, 0, len(teams))
	for _, tm := range teams {
		names := make([]string, 0, len(tm.Members))
		for _, m := range tm.Members {
			label := m.Name
			if m.Role == model.RoleLeader {
				label += " *"
			}
			names = append(names, label)
		}
		rows = append(rows, []string{
			tm.Name,
			string(tm.Status),
			fmt.Sprintf("%d", len(tm.Members)),
			truncate(strings.Join(names, ", "), 50),
			fmt.Sprintf("%d", tm.ProjectsCount),
		})
	}

	if !ColorsEnabled() {
		var b strings.Builder
		fmt.Fprintf(&b, "%-20s %-10s %-8s %-50s %s\n",
			"Name", "Status", "Members", "Roster (* leader)", "Projects")
		fmt.Fprintf(&b, "%s\n", strings.Repeat("-", 100))
		for _, row := range rows {
			fmt.Fprintf(&b, "%-20s %-10s %-8s %-50s %s\n",
				row[0], row[1], row[2], row[3], row[4])
		}
		return b.String()
	}

	headers := []string{"Name", "Status", "Members", "Roster (* leader)", "Projects"}
	return styledTable(headers, rows, func(row, col int, s lipgloss.Style) lipgloss.Style {
		if row < 0 || row >= len(teams) {
			return s
		}
		switch col {
		case 0:
			return s.Bold(true)
		case 1:
			if teams[row].Status == model.TeamActive {
				return s.Foreground(lipgloss.Color("10"))
			}
			return s.Foreground(lipgloss.Color("8"))
		default:
			return s
		}
	})
}
