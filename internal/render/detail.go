package render

import (
	"fmt"
	"strings"

	humanize "github.com/dustin/go-humanize"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/view"
)

// ProjectDetail renders a full project view: header, metadata, markdown
// description, and the sprint tree with each sprint's tickets.
func ProjectDetail(p model.Project, sprints []model.Sprint, tickets []model.Ticket) string {
	if !ColorsEnabled() {
		return plainProjectDetail(p, sprints, tickets)
	}

	var sections []string

	sections = append(sections, projectHeader(p))
	sections = append(sections, projectMetadata(p, tickets))

	if p.Description != "" {
		sections = append(sections, projectDescription(p.Description))
	}

	if len(sprints) > 0 {
		sections = append(sections, sprintTree(sprints, tickets))
	}

	if backlog := backlogTickets(tickets); len(backlog) > 0 {
		sections = append(sections, backlogSection(backlog))
	}

	return strings.Join(sections, "\n\n")
}

func projectHeader(p model.Project) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	nameStyle := lipgloss.NewStyle().Bold(true)
	statusStyle := lipgloss.NewStyle().
		Foreground(ColorFromName(p.Status.Color())).
		Bold(true)
	priorityStyle := lipgloss.NewStyle().
		Foreground(ColorFromName(p.Priority.Color())).
		Bold(true)

	return fmt.Sprintf("%s  %s\n%s  %s",
		keyStyle.Render(p.Key),
		nameStyle.Render(p.Name),
		statusStyle.Render(string(p.Status)),
		priorityStyle.Render(fmt.Sprintf("%s %s", p.Priority.Icon(), string(p.Priority))),
	)
}

func projectMetadata(p model.Project, tickets []model.Ticket) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	var lines []string

	lines = append(lines, fmt.Sprintf("%s %d%% recorded, %.0f%% by tickets",
		labelStyle.Render("Progress:"),
		p.Progress,
		view.ProjectProgress(p.ID, tickets),
	))

	if p.StartDate != nil {
		lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render("Start:"), p.StartDate.Format("2006-01-02")))
	}
	if p.EndDate != nil {
		lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render("End:"), p.EndDate.Format("2006-01-02")))
	}

	lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render("Created:"), humanize.Time(p.CreatedAt)))
	lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render("Updated:"), humanize.Time(p.UpdatedAt)))

	return strings.Join(lines, "\n")
}

func projectDescription(description string) string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	header := sectionStyle.Render("Description")

	rendered, err := Markdown(description)
	if err != nil {
		rendered = description
	}

	return header + "\n" + rendered
}

func sprintTree(sprints []model.Sprint, tickets []model.Ticket) string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))

	t := tree.New().Root(sectionStyle.Render("Sprints"))
	for _, s := range sprints {
		node := tree.Root(sprintNode(s))
		for _, tk := range view.TicketsForSprint(tickets, s.ID) {
			node.Child(ticketNode(tk))
		}
		t.Child(node)
	}

	return t.String()
}

func sprintNode(s model.Sprint) string {
	statusStyle := lipgloss.NewStyle().Foreground(ColorFromName(s.Status.Color()))
	pointStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	return fmt.Sprintf("%s %s %s",
		lipgloss.NewStyle().Bold(true).Render(s.Name),
		statusStyle.Render(string(s.Status)),
		pointStyle.Render(fmt.Sprintf("%d/%d pts", s.CompletedPoints, s.TotalPoints)),
	)
}

func ticketNode(tk model.Ticket) string {
	stateStyle := lipgloss.NewStyle().Foreground(ColorFromName(tk.State.Color()))
	priorityStyle := lipgloss.NewStyle().Foreground(ColorFromName(tk.Priority.Color()))
	typeStyle := lipgloss.NewStyle().Foreground(ColorFromName(tk.Type.Color()))

	return fmt.Sprintf("%s %s %s %s %s",
		tk.Key,
		stateStyle.Render(stateLabel(tk.State)),
		priorityStyle.Render(tk.Priority.Icon()),
		typeStyle.Render(tk.Type.Icon()),
		truncate(tk.Title, maxTitleWidth),
	)
}

func backlogTickets(tickets []model.Ticket) []model.Ticket {
	var out []model.Ticket
	for _, tk := range tickets {
		if tk.SprintID == "" {
			out = append(out, tk)
		}
	}
	return out
}

func backlogSection(backlog []model.Ticket) string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))

	t := tree.New().Root(fmt.Sprintf("%s (%d)", sectionStyle.Render("Backlog"), len(backlog)))
	for _, tk := range backlog {
		t.Child(ticketNode(tk))
	}
	return t.String()
}

func plainProjectDetail(p model.Project, sprints []model.Sprint, tickets []model.Ticket) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", p.Key, p.Name)
	fmt.Fprintf(&b, "%s  %s %s\n", string(p.Status), p.Priority.Icon(), string(p.Priority))

	b.WriteString("\n")
	fmt.Fprintf(&b, "Progress: %d%% recorded, %.0f%% by tickets\n", p.Progress, view.ProjectProgress(p.ID, tickets))
	if p.StartDate != nil {
		fmt.Fprintf(&b, "Start: %s\n", p.StartDate.Format("2006-01-02"))
	}
	if p.EndDate != nil {
		fmt.Fprintf(&b, "End: %s\n", p.EndDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "Created: %s\n", humanize.Time(p.CreatedAt))
	fmt.Fprintf(&b, "Updated: %s\n", humanize.Time(p.UpdatedAt))

	if p.Description != "" {
		fmt.Fprintf(&b, "\nDescription\n%s\n", p.Description)
	}

	if len(sprints) > 0 {
		b.WriteString("\nSprints\n")
		for _, s := range sprints {
			fmt.Fprintf(&b, "  %s  %s  %d/%d pts\n", s.Name, string(s.Status), s.CompletedPoints, s.TotalPoints)
			for _, tk := range view.TicketsForSprint(tickets, s.ID) {
				fmt.Fprintf(&b, "    %s %s %s\n", tk.Key, stateLabel(tk.State), truncate(tk.Title, maxTitleWidth))
			}
		}
	}

	if backlog := backlogTickets(tickets); len(backlog) > 0 {
		fmt.Fprintf(&b, "\nBacklog (%d)\n", len(backlog))
		for _, tk := range backlog {
			fmt.Fprintf(&b, "  %s %s %s\n", tk.Key, stateLabel(tk.State), truncate(tk.Title, maxTitleWidth))
		}
	}

	return b.String()
}
