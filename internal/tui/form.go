package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calvales/taskpad/internal/core/styles"
	"github.com/calvales/taskpad/internal/core/task"
)

const formFieldCount = 3

// taskForm is the add/edit input form. Validation of the submitted values
// stays in the store; the form only collects them.
type taskForm struct {
	title       textinput.Model
	description textinput.Model
	due         textinput.Model
	focus       int
	editingID   string // empty means the form adds a new task
}

func newTaskForm(existing *task.Task) taskForm {
	f := taskForm{}

	f.title = textinput.New()
	f.title.Placeholder = "Title"
	f.title.CharLimit = task.MaxTitleLen
	f.title.Focus()

	f.description = textinput.New()
	f.description.Placeholder = "Description (optional)"

	f.due = textinput.New()
	f.due.Placeholder = "Due date (optional)"

	if existing != nil {
		f.editingID = existing.ID
		f.title.SetValue(existing.Title)
		f.description.SetValue(existing.Description)
		f.due.SetValue(existing.DueDate)
	}

	return f
}

func (f taskForm) editing() bool {
	return f.editingID != ""
}

// Update routes input to the focused field and handles focus cycling.
func (f taskForm) Update(msg tea.Msg) (taskForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.setFocus((f.focus + 1) % formFieldCount)
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focus + formFieldCount - 1) % formFieldCount)
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.title, cmd = f.title.Update(msg)
	case 1:
		f.description, cmd = f.description.Update(msg)
	case 2:
		f.due, cmd = f.due.Update(msg)
	}
	return f, cmd
}

func (f *taskForm) setFocus(i int) {
	f.focus = i
	inputs := []*textinput.Model{&f.title, &f.description, &f.due}
	for j, in := range inputs {
		if j == i {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// payload returns the collected fields for an add operation.
func (f taskForm) payload() task.Payload {
	return task.Payload{
		Title:       f.title.Value(),
		Description: f.description.Value(),
		DueDate:     f.due.Value(),
	}
}

// changes returns the collected fields as a full change-set for an edit.
// The form always shows every field, so every field is present.
func (f taskForm) changes() task.Changes {
	title := f.title.Value()
	description := f.description.Value()
	due := f.due.Value()
	return task.Changes{
		Title:       &title,
		Description: &description,
		DueDate:     &due,
	}
}

func (f taskForm) View() string {
	heading := "New Task"
	if f.editing() {
		heading = "Edit Task"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(heading),
		"",
		f.title.View(),
		f.description.View(),
		f.due.View(),
		"",
		styles.ModalHelpStyle.Render("enter: save • tab: next field • esc: cancel"),
	)
}
