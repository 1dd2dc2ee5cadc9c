package render

import (
	"fmt"
	"strings"

	humanize "github.com/dustin/go-humanize"

	"github.com/charmbracelet/lipgloss"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/view"
)

// Dashboard renders the summary view: headline counts, the per-state
// ticket breakdown, and the most recently updated projects and tickets.
func Dashboard(stats view.DashboardStats, byState map[model.TicketState]int, recentProjects []model.Project, recentTickets []model.Ticket) string {
	if !ColorsEnabled() {
		return plainDashboard(stats, byState, recentProjects, recentTickets)
	}

	var sections []string

	sections = append(sections, statCards(stats))
	sections = append(sections, stateBreakdown(byState))

	if len(recentProjects) > 0 {
		sections = append(sections, recentProjectsSection(recentProjects))
	}
	if len(recentTickets) > 0 {
		sections = append(sections, recentTicketsSection(recentTickets))
	}

	return strings.Join(sections, "\n\n")
}

func statCard(label, value string, color lipgloss.Color) string {
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(color)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 2).
		Render(valueStyle.Render(value) + "\n" + labelStyle.Render(label))
}

func statCards(stats view.DashboardStats) string {
	cards := []string{
		statCard("projects", fmt.Sprintf("%d", stats.TotalProjects), lipgloss.Color("15")),
		statCard("active", fmt.Sprintf("%d", stats.ActiveProjects), lipgloss.Color("10")),
		statCard("tickets", fmt.Sprintf("%d", stats.TotalTickets), lipgloss.Color("15")),
		statCard("completed", fmt.Sprintf("%.1f%%", stats.CompletionRate), lipgloss.Color("10")),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func stateBreakdown(byState map[model.TicketState]int) string {
	var parts []string
	for _, s := range model.StateOrder {
		style := lipgloss.NewStyle().Foreground(ColorFromName(s.Color()))
		parts = append(parts, style.Render(fmt.Sprintf("%s %s %d", s.Icon(), string(s), byState[s])))
	}
	return strings.Join(parts, "   ")
}

func recentProjectsSection(projects []model.Project) string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	timeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	lines := []string{sectionStyle.Render("Recent projects")}
	for _, p := range projects {
		statusStyle := lipgloss.NewStyle().Foreground(ColorFromName(p.Status.Color()))
		lines = append(lines, fmt.Sprintf("  %s %s %s  %s",
			p.Key,
			truncate(p.Name, maxTitleWidth),
			statusStyle.Render(string(p.Status)),
			timeStyle.Render(humanize.Time(p.UpdatedAt)),
		))
	}
	return strings.Join(lines, "\n")
}

func recentTicketsSection(tickets []model.Ticket) string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	timeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	lines := []string{sectionStyle.Render("Recent tickets")}
	for _, tk := range tickets {
		stateStyle := lipgloss.NewStyle().Foreground(ColorFromName(tk.State.Color()))
		lines = append(lines, fmt.Sprintf("  %s %s %s  %s",
			tk.Key,
			stateStyle.Render(stateLabel(tk.State)),
			truncate(tk.Title, maxTitleWidth),
			timeStyle.Render(humanize.Time(tk.UpdatedAt)),
		))
	}
	return strings.Join(lines, "\n")
}

func plainDashboard(stats view.DashboardStats, byState map[model.TicketState]int, recentProjects []model.Project, recentTickets []model.Ticket) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Projects: %d (%d active)\n", stats.TotalProjects, stats.ActiveProjects)
	fmt.Fprintf(&b, "Tickets: %d (%d completed, %.1f%%)\n", stats.TotalTickets, stats.CompletedTickets, stats.CompletionRate)

	var parts []string
	for _, s := range model.StateOrder {
		parts = append(parts, fmt.Sprintf("%s=%d", string(s), byState[s]))
	}
	fmt.Fprintf(&b, "By status: %s\n", strings.Join(parts, " "))

	if len(recentProjects) > 0 {
		b.WriteString("\nRecent projects\n")
		for _, p := range recentProjects {
			fmt.Fprintf(&b, "  %s %s %s  %s\n",
				p.Key, truncate(p.Name, maxTitleWidth), string(p.Status), humanize.Time(p.UpdatedAt))
		}
	}
	if len(recentTickets) > 0 {
		b.WriteString("\nRecent tickets\n")
		for _, tk := range recentTickets {
			fmt.Fprintf(&b, "  %s %s %s  %s\n",
				tk.Key, stateLabel(tk.State), truncate(tk.Title, maxTitleWidth), humanize.Time(tk.UpdatedAt))
		}
	}

	return b.String()
}
