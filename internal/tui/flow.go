package tui

import (
	"strings"

	"github.com/Makepad-fr/todolist/internal/model"
	"github.com/Makepad-fr/todolist/internal/todo"
)

// ItemState is the state of the edit/delete workflow of one item.
type ItemState int

const (
	Viewing ItemState = iota
	Editing
	ConfirmingEdit
	ConfirmingDelete
)

func (s ItemState) String() string {
	switch s {
	case Editing:
		return "editing"
	case ConfirmingEdit:
		return "confirming-edit"
	case ConfirmingDelete:
		return "confirming-delete"
	default:
		return "viewing"
	}
}

// itemFlow is the workflow of the item currently being edited or deleted.
// Edit mode is left only by confirming (or by an explicit escape); cancelling
// the confirmation goes back to editing with the buffer reset.
type itemFlow struct {
	state     ItemState
	id        int64
	committed string // item text when the flow started
	buffer    string // proposed text while confirming an edit
	hint      string
}

func (f itemFlow) active() bool { return f.state != Viewing }

func (f itemFlow) startEdit(it model.Item) itemFlow {
	if f.state != Viewing {
		return f
	}
	return itemFlow{state: Editing, id: it.ID, committed: it.Text, buffer: it.Text}
}

// submit moves Editing to ConfirmingEdit. A blank buffer keeps editing.
func (f itemFlow) submit(buffer string) itemFlow {
	if f.state != Editing {
		return f
	}
	if todo.ValidateText(buffer) != nil {
		f.hint = "Text cannot be empty"
		return f
	}
	f.state = ConfirmingEdit
	f.buffer = buffer
	f.hint = ""
	return f
}

func (f itemFlow) startDelete(it model.Item) itemFlow {
	if f.state != Viewing {
		return f
	}
	return itemFlow{state: ConfirmingDelete, id: it.ID, committed: it.Text}
}

// confirm closes the prompt and returns the action to dispatch.
func (f itemFlow) confirm() (itemFlow, todo.Action) {
	switch f.state {
	case ConfirmingEdit:
		return itemFlow{}, todo.Update{ID: f.id, Text: f.buffer}
	case ConfirmingDelete:
		return itemFlow{}, todo.Delete{ID: f.id}
	}
	return f, nil
}

// cancel backs out one step: a pending edit returns to Editing with the
// buffer reset to the committed text, everything else returns to Viewing.
func (f itemFlow) cancel() itemFlow {
	if f.state == ConfirmingEdit {
		f.state = Editing
		f.buffer = f.committed
		f.hint = ""
		return f
	}
	return itemFlow{}
}

func (f itemFlow) title() string {
	if f.state == ConfirmingDelete {
		return "Confirm delete"
	}
	return "Confirm edit"
}

func (f itemFlow) question() string {
	if f.state == ConfirmingDelete {
		return "Delete '" + f.committed + "'?"
	}
	return "Change '" + f.committed + "' to '" + strings.TrimRight(f.buffer, "\n") + "'? The timestamp will be updated too."
}
