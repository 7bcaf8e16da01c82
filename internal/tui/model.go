package tui

import (
	"fmt"
	"strings"

	"todokeeper/internal/todo"

	tea "github.com/charmbracelet/bubbletea"
)

type listFilter int

const (
	filterAll listFilter = iota
	filterPending
	filterCompleted
)

func (f listFilter) String() string {
	switch f {
	case filterPending:
		return "активные"
	case filterCompleted:
		return "завершённые"
	default:
		return "все"
	}
}

// todoModel is the single screen of the console application: a task list
// with an add/edit form and a delete confirmation layered on top.
type todoModel struct {
	manager *todo.Manager

	items  []todo.Task
	idx    int
	filter listFilter
	status string
	errMsg string

	form       formModel
	editing    bool
	confirming bool
	confirm    confirmModel
	confirmID  int64
}

func newTodoModel(manager *todo.Manager) todoModel {
	m := todoModel{manager: manager}
	m.reload()
	return m
}

func (m *todoModel) reload() {
	switch m.filter {
	case filterPending:
		m.items = m.manager.Pending()
	case filterCompleted:
		m.items = m.manager.Completed()
	default:
		m.items = m.manager.All()
	}

	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m todoModel) current() (todo.Task, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return todo.Task{}, false
	}
	return m.items[m.idx], true
}

func (m todoModel) Init() tea.Cmd {
	return nil
}

func (m todoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing {
			return m.updateForm(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirming {
		return m.updateConfirm(keyMsg)
	}
	if m.editing {
		return m.updateForm(msg)
	}

	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "n":
		m.editing = true
		m.form = newFormModel(nil)
		m.status = ""
		m.errMsg = ""
	case "e":
		item, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		m.editing = true
		m.form = newFormModel(&item)
		m.status = ""
		m.errMsg = ""
	case " ", "enter":
		item, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		updated, err := m.manager.Toggle(item.ID)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if updated.Completed {
			m.status = "Задача завершена"
		} else {
			m.status = "Задача снова активна"
		}
		m.errMsg = ""
		m.reload()
	case "d", "ctrl+d":
		item, ok := m.current()
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		m.confirming = true
		m.confirm = confirmModel{message: item.Title}
		m.confirmID = item.ID
	case "f":
		m.filter = (m.filter + 1) % 3
		m.idx = 0
		m.reload()
	}

	return m, nil
}

func (m todoModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "y":
		if err := m.manager.Delete(m.confirmID); err != nil {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %v", err)
		} else {
			m.status = "Запись удалена"
			m.errMsg = ""
		}
		m.confirming = false
		m.reload()
	case "n", "esc":
		m.confirming = false
	}
	return m, nil
}

func (m todoModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.editing = false
			return m, nil
		case "enter":
			title, description := m.form.values()
			var err error
			if m.form.editing {
				_, err = m.manager.Update(m.form.taskID, &title, &description)
			} else {
				_, err = m.manager.Add(title, description)
			}
			if err != nil {
				m.form.errMsg = formErrorMessage(err)
				return m, nil
			}
			if m.form.editing {
				m.status = "Запись обновлена"
			} else {
				m.status = "Запись добавлена!"
			}
			m.editing = false
			m.errMsg = ""
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m todoModel) View() string {
	if m.confirming {
		return m.confirm.View()
	}
	if m.editing {
		return m.form.View()
	}

	header := titleStyle.Render("TodoKeeper") + "  [" + m.filter.String() + "]"
	out := header + "\n\n"

	if len(m.items) == 0 {
		out += "Нет записей\n"
	} else {
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += cursor + renderTask(item) + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n"
	}

	out += "\n" + helpStyle.Render(strings.TrimSpace(
		"n новая  e изменить  enter готово/активна  d удалить  f фильтр  q выход"))
	return out
}

func renderTask(item todo.Task) string {
	line := fmt.Sprintf("[%s] %s", checkbox(item.Completed), item.Title)
	if item.Completed {
		return doneStyle.Render(line)
	}
	return line
}

func checkbox(completed bool) string {
	if completed {
		return "x"
	}
	return " "
}
