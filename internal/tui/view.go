package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/todolist/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// resize fits the list between the input bar, the edit bar and the status line.
func (m *Model) resize() {
	w, h := m.size()
	listHeight := h - 7
	if m.flow.state == Editing {
		listHeight -= 4
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(w-4, listHeight)
	m.input.Width = w - 10
	m.edit.Width = w - 10
}

func (m Model) box(title, body string) string {
	t := ui.Current()
	w, _ := m.size()
	style := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Width(w - 6)
	return style.Render(title + "\n" + body)
}

func (m Model) View() string {
	t := ui.Current()
	w, h := m.size()

	if m.flow.state == ConfirmingEdit || m.flow.state == ConfirmingDelete {
		body := ui.Wrap(m.flow.question(), w/2) + "\n\n" +
			t.Accent.Render("[y] confirm") + "   " + t.Muted.Render("[n] cancel")
		modal := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 2).
			Render(t.Title.Render(m.flow.title()) + "\n\n" + body)
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, modal)
	}

	var b strings.Builder
	inputTitle := t.Muted.Render("New item (a)")
	if m.focus == focusInput {
		inputTitle = t.Accent.Render("New item") + t.Muted.Render("  enter: add · esc: back")
	}
	b.WriteString(m.box(inputTitle, m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.list.View())

	if m.flow.state == Editing {
		title := t.Accent.Render("Edit item") + t.Muted.Render("  enter: save · esc: discard")
		if m.flow.hint != "" {
			title += "  " + t.Error.Render(m.flow.hint)
		}
		b.WriteString("\n")
		b.WriteString(m.box(title, m.edit.View()))
	}
	if m.status != "" {
		b.WriteString("\n")
		if m.failed {
			b.WriteString(t.Error.Render("✖ " + m.status))
		} else {
			b.WriteString(t.Muted.Render(m.status))
		}
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
