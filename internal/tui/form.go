package tui

import (
	"errors"
	"strings"

	"todokeeper/internal/todo"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formModel struct {
	inputs  []textinput.Model
	focus   int
	editing bool
	taskID  int64
	errMsg  string
}

func newFormModel(item *todo.Task) formModel {
	title := textinput.New()
	title.Placeholder = "Название"
	title.Width = 50
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Описание (можно пусто)"
	description.Width = 50

	m := formModel{inputs: []textinput.Model{title, description}}
	if item == nil {
		return m
	}

	m.editing = true
	m.taskID = item.ID
	m.inputs[0].SetValue(item.Title)
	m.inputs[1].SetValue(item.Description)
	return m
}

func (m formModel) values() (title, description string) {
	return strings.TrimSpace(m.inputs[0].Value()), strings.TrimSpace(m.inputs[1].Value())
}

func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			m.inputs[m.focus].Focus()
			return m, nil
		case "shift+tab":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
			m.inputs[m.focus].Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View() string {
	title := "Новая задача"
	if m.editing {
		title = "Редактирование: " + m.inputs[0].Value()
	}

	out := titleStyle.Render(title) + "\n\n"
	out += "Название: [" + m.inputs[0].View() + "]\n"
	out += "Описание: [" + m.inputs[1].View() + "]\n\n"
	if m.errMsg != "" {
		out += errorStyle.Render(m.errMsg) + "\n\n"
	}
	out += helpStyle.Render("esc отмена  tab следующее поле  enter сохранить")
	return out
}

func formErrorMessage(err error) string {
	switch {
	case errors.Is(err, todo.ErrTitleInvalid):
		return "нужно название (до 200 символов)"
	case errors.Is(err, todo.ErrDescriptionTooLong):
		return "описание слишком длинное (до 1000 символов)"
	default:
		return err.Error()
	}
}
