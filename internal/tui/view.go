package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/calvales/taskpad/internal/confirm"
	"github.com/calvales/taskpad/internal/core/styles"
	"github.com/calvales/taskpad/internal/core/task"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.state {
	case stateForm:
		body = styles.ModalStyle.Render(m.form.View())
	case stateDetail:
		body = m.detailView()
	default:
		body = m.listView()
	}

	sections := []string{
		styles.TitleStyle.Render("taskpad"),
		m.tabsView(),
		body,
		m.statsView(),
		m.help.View(m.keys),
	}
	if m.toasts.HasToasts() {
		sections = append(sections, m.toastsView())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if req := m.surface.Active(); req != nil {
		return m.confirmOverlay(*req)
	}

	return content
}

func (m *Model) tabsView() string {
	tabs := make([]string, 0, 3)
	for _, f := range []task.StatusFilter{task.FilterAll, task.FilterActive, task.FilterCompleted} {
		label := string(f)
		if f == m.filter {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) listView() string {
	if len(m.view) == 0 {
		return styles.MutedStyle.Render("No tasks here. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, t := range m.view {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.SelectedStyle.Render("> ")
		}

		title := t.Title
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
			title = styles.CompletedStyle.Render(title)
		}

		line := cursor + mark + " " + title
		if t.DueDate != "" {
			line += " " + styles.DueStyle.Render("due "+t.DueDate)
		}
		if t.Description != "" {
			line += " " + styles.MutedStyle.Render("…")
		}
		b.WriteString(line)
		if i < len(m.view)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) detailView() string {
	t := m.detailTask

	header := styles.ModalTitleStyle.Render(t.Title)
	meta := styles.MutedStyle.Render(fmt.Sprintf(
		"created %s · updated %s",
		t.CreatedAt.Format("2006-01-02 15:04"),
		t.UpdatedAt.Format("2006-01-02 15:04"),
	))

	lines := []string{header, meta}
	if t.DueDate != "" {
		lines = append(lines, styles.DueStyle.Render("due "+t.DueDate))
	}
	if m.detailBody != "" {
		lines = append(lines, "", m.detailBody)
	}
	lines = append(lines, "", styles.ModalHelpStyle.Render("esc: back"))

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) statsView() string {
	return styles.StatsStyle.Render(fmt.Sprintf(
		"%d total · %d active · %d completed",
		m.stats.Total, m.stats.Active, m.stats.Completed,
	))
}

func (m *Model) toastsView() string {
	lines := make([]string, 0, len(m.toasts.Toasts()))
	for _, t := range m.toasts.Toasts() {
		lines = append(lines, styles.RenderNotification(t.notification))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) confirmOverlay(req confirm.Request) string {
	titleStyle := styles.ModalTitleStyle
	if req.Tone == confirm.ToneDanger {
		titleStyle = styles.ModalDangerStyle
	}

	prompt := fmt.Sprintf("y: %s • n: %s", req.ConfirmLabel, req.CancelLabel)
	modal := styles.ModalStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(req.Title),
		"",
		req.Message,
		"",
		styles.ModalHelpStyle.Render(prompt),
	))

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, modal)
}
