package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/todolist/internal/model"
	"github.com/Makepad-fr/todolist/internal/todo"
)

type memStore struct {
	items   []model.Item
	saves   int
	saveErr error
}

func (s *memStore) Load() ([]model.Item, error) { return s.items, nil }
func (s *memStore) Save(items []model.Item) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.items = items
	return nil
}

func newTestModel(t *testing.T, texts ...string) (Model, *todo.Container, *memStore) {
	t.Helper()
	st := &memStore{}
	clock := time.UnixMilli(1_760_000_000_000)
	c := todo.NewContainer(st, todo.Options{Now: func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}})
	for _, s := range texts {
		require.NoError(t, c.Add(s))
	}
	m := New(c, Options{})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, c, st
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestInput_AddsAndClears(t *testing.T) {
	m, c, st := newTestModel(t)

	m = send(t, m, runes("a"))
	require.Equal(t, focusInput, m.focus)

	m.input.SetValue("buy milk")
	m = send(t, m, enter)

	require.Len(t, c.Items(), 1)
	assert.Equal(t, "buy milk", c.Items()[0].Text)
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, 1, st.saves)
	assert.Equal(t, c.Items(), m.Items())
}

func TestInput_BlankNeverDispatches(t *testing.T) {
	m, c, st := newTestModel(t)
	m = send(t, m, runes("a"))

	for _, s := range []string{"", "   "} {
		m.input.SetValue(s)
		m = send(t, m, enter)
	}
	assert.Empty(t, c.Items())
	assert.Zero(t, st.saves)
}

func TestInput_CommittedTextIsTypedUntilEnter(t *testing.T) {
	m, c, _ := newTestModel(t)
	m = send(t, m, runes("a"))

	// The terminal delivers a finished composition as one chunk of runes.
	m = send(t, m, runes("한글"))
	assert.Empty(t, c.Items())
	assert.Equal(t, "한글", m.input.Value())

	m = send(t, m, enter)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "한글", c.Items()[0].Text)
}

func TestList_ToggleIsImmediate(t *testing.T) {
	m, c, st := newTestModel(t, "buy milk", "walk dog")
	saves := st.saves

	m = send(t, m, space)
	assert.Equal(t, Viewing, m.Flow())
	assert.True(t, c.Items()[0].Completed)
	assert.False(t, c.Items()[1].Completed)
	assert.Equal(t, saves+1, st.saves)
	assert.True(t, m.Items()[0].Completed)
}

// filterTo opens the filter prompt and applies term, as typing it and
// pressing enter would once the filter command has run.
func filterTo(t *testing.T, m Model, term string) Model {
	t.Helper()
	m = send(t, m, runes("/"))
	m.list.SetFilterText(term)
	require.Equal(t, list.FilterApplied, m.list.FilterState())
	return m
}

func TestList_ToggleTwiceUnderFilter(t *testing.T) {
	m, c, _ := newTestModel(t, "buy milk", "walk dog", "call mom")
	m = filterTo(t, m, "dog")
	require.Len(t, m.list.VisibleItems(), 1)

	m = send(t, m, space)
	assert.True(t, c.Items()[1].Completed)
	it, ok := m.selected()
	require.True(t, ok, "selection survives the change")
	assert.Equal(t, "walk dog", it.Text)

	m = send(t, m, space)
	assert.False(t, c.Items()[1].Completed)
	assert.False(t, c.Items()[0].Completed)
	assert.False(t, c.Items()[2].Completed)
}

func TestList_DeleteUnderFilterKeepsCursorInRange(t *testing.T) {
	m, c, _ := newTestModel(t, "walk dog", "buy milk", "feed dog")
	m = filterTo(t, m, "dog")
	require.Len(t, m.list.VisibleItems(), 2)

	m = send(t, m, down)
	gone, ok := m.selected()
	require.True(t, ok)

	m = send(t, m, runes("d"), runes("y"))
	require.Len(t, c.Items(), 2)
	assert.Equal(t, -1, model.IndexOf(c.Items(), gone.ID))
	require.Len(t, m.list.VisibleItems(), 1)
	it, ok := m.selected()
	require.True(t, ok, "cursor stays on a visible row")
	assert.Contains(t, it.Text, "dog")
}

func TestInput_AddUnderFilterSelectsNewItem(t *testing.T) {
	m, c, _ := newTestModel(t, "buy milk", "walk dog", "call mom")
	m = filterTo(t, m, "dog")

	m = send(t, m, runes("a"))
	m.input.SetValue("feed dog")
	m = send(t, m, enter, esc)
	require.Len(t, c.Items(), 4)

	it, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "feed dog", it.Text)

	m = send(t, m, space)
	assert.True(t, c.Items()[3].Completed)
	assert.False(t, c.Items()[1].Completed)
}

func TestItem_EditConfirmFlow(t *testing.T) {
	m, c, _ := newTestModel(t, "buy milk", "walk dog")
	before := c.Items()

	m = send(t, m, down, runes("e"))
	require.Equal(t, Editing, m.Flow())
	assert.Equal(t, "walk dog", m.edit.Value())

	m.edit.SetValue("walk the dog")
	m = send(t, m, enter)
	require.Equal(t, ConfirmingEdit, m.Flow())
	assert.Equal(t, before, c.Items(), "nothing dispatched before confirmation")
	assert.Contains(t, m.View(), "Confirm edit")

	m = send(t, m, runes("y"))
	assert.Equal(t, Viewing, m.Flow())
	assert.Equal(t, "walk the dog", c.Items()[1].Text)
	assert.NotEqual(t, before[1].Timestamp, c.Items()[1].Timestamp)
	assert.Equal(t, before[0], c.Items()[0])
}

func TestItem_EditCancelKeepsEditing(t *testing.T) {
	m, c, _ := newTestModel(t, "buy milk")

	m = send(t, m, runes("e"))
	m.edit.SetValue("buy oat milk")
	m = send(t, m, enter, runes("n"))

	assert.Equal(t, Editing, m.Flow())
	assert.Equal(t, "buy milk", m.edit.Value())
	assert.Equal(t, "buy milk", c.Items()[0].Text)

	m = send(t, m, esc)
	assert.Equal(t, Viewing, m.Flow())
	assert.Equal(t, "buy milk", c.Items()[0].Text)
}

func TestItem_EditBlankShowsHint(t *testing.T) {
	m, _, _ := newTestModel(t, "buy milk")

	m = send(t, m, runes("e"))
	m.edit.SetValue("  ")
	m = send(t, m, enter)
	assert.Equal(t, Editing, m.Flow())
	assert.Contains(t, m.View(), "Text cannot be empty")
}

func TestItem_DeleteConfirmAndCancel(t *testing.T) {
	m, c, _ := newTestModel(t, "buy milk", "walk dog")

	m = send(t, m, runes("d"))
	require.Equal(t, ConfirmingDelete, m.Flow())
	assert.Contains(t, m.View(), "Delete 'buy milk'?")

	m = send(t, m, esc)
	assert.Equal(t, Viewing, m.Flow())
	assert.Len(t, c.Items(), 2)

	m = send(t, m, runes("d"), enter)
	assert.Equal(t, Viewing, m.Flow())
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "walk dog", c.Items()[0].Text)
	assert.Equal(t, c.Items(), m.Items())
}

func TestSaveFailureShowsStatus(t *testing.T) {
	m, c, st := newTestModel(t, "buy milk")
	st.saveErr = errors.New("disk full")

	m = send(t, m, space)
	assert.True(t, c.Items()[0].Completed, "state of record still advances")
	assert.True(t, m.failed)
	assert.Contains(t, m.View(), "disk full")
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
