package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/todolist/internal/todo"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch {
		case m.flow.state == ConfirmingEdit || m.flow.state == ConfirmingDelete:
			return m.updateConfirm(msg)
		case m.flow.state == Editing:
			return m.updateEdit(msg)
		case m.focus == focusInput:
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateInput handles the new-item input. Enter adds the raw text when it is
// not blank and clears the buffer.
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		text := m.input.Value()
		if todo.ValidateText(text) != nil {
			return m, nil
		}
		cmd := m.dispatch(todo.Add{Text: text})
		m.input.SetValue("")
		if items := m.c.Items(); len(items) > 0 {
			m.selectID(items[len(items)-1].ID)
		}
		return m, cmd
	case key.Matches(msg, m.keys.Back):
		m.focus = focusList
		m.input.Blur()
		m.resize()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateEdit handles the inline edit buffer of the item in flow.
func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.flow = m.flow.submit(m.edit.Value())
		if m.flow.state == ConfirmingEdit {
			m.edit.Blur()
		}
		return m, nil
	case msg.Type == tea.KeyEsc:
		m.flow = itemFlow{}
		m.edit.SetValue("")
		m.edit.Blur()
		m.resize()
		return m, nil
	}
	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	m.flow.hint = ""
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		var a todo.Action
		m.flow, a = m.flow.confirm()
		m.edit.SetValue("")
		m.edit.Blur()
		m.resize()
		if a == nil {
			return m, nil
		}
		return m, m.dispatch(a)
	case key.Matches(msg, m.keys.Cancel):
		m.flow = m.flow.cancel()
		if m.flow.state == Editing {
			m.edit.SetValue(m.flow.buffer)
			m.edit.CursorEnd()
			return m, m.edit.Focus()
		}
		m.resize()
		return m, nil
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		m.focus = focusInput
		m.resize()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			return m, m.dispatch(todo.Toggle{ID: it.ID})
		}
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		if it, ok := m.selected(); ok {
			m.flow = m.flow.startEdit(it)
			m.edit.SetValue(it.Text)
			m.edit.CursorEnd()
			m.resize()
			return m, m.edit.Focus()
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			m.flow = m.flow.startDelete(it)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}
