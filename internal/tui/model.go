package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todolist/internal/model"
	"github.com/Makepad-fr/todolist/internal/todo"
	"github.com/Makepad-fr/todolist/internal/ui"
)

type focus int

const (
	focusList focus = iota
	focusInput
)

// Options tune the TUI.
type Options struct {
	Logger *log.Logger
}

// changes is shared by all copies of Model; the container's subscriber
// marks it whenever a new collection is committed.
type changes struct {
	items []model.Item
	dirty bool
}

// Model is the Bubble Tea model: input view on top, item list below, and
// the item flow for the selected item.
type Model struct {
	c      *todo.Container
	logger *log.Logger
	keys   keyMap

	list  list.Model
	input textinput.Model // new item
	edit  textinput.Model // edit buffer of the item in flow
	flow  itemFlow
	focus focus

	changes *changes
	status  string
	failed  bool

	width, height int
}

// New builds the model over c.
func New(c *todo.Container, opt Options) Model {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := ui.Current()
	keys := defaultKeys()

	l := list.New(toListItems(c.Items()), itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Help
	l.Styles.PaginationStyle = t.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	// "q" stays ours so it is not swallowed while typing.
	l.KeyMap.Quit.SetEnabled(false)
	extra := func() []key.Binding { return []key.Binding{keys.Add, keys.Toggle, keys.Edit, keys.Delete, keys.Quit} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	in := textinput.New()
	in.Prompt = "+ "
	in.Placeholder = "What needs doing?"
	in.CharLimit = 200

	ed := textinput.New()
	ed.Prompt = "> "
	ed.Placeholder = "Edit item text..."
	ed.CharLimit = 200

	ch := &changes{}
	c.Subscribe(func(items []model.Item) {
		ch.items = items
		ch.dirty = true
	})

	m := Model{
		c:       c,
		logger:  logger,
		keys:    keys,
		list:    l,
		input:   in,
		edit:    ed,
		changes: ch,
	}
	m.setTitle(c.Items())
	return m
}

func (m *Model) setTitle(items []model.Item) {
	t := ui.Current()
	d, p := model.Stats(items)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render("✔"), d,
		t.Pending.Render("•"), p,
		t.Accent.Render("Total"), len(items),
	)
}

// sync copies a committed collection into the list, keeping the selection
// on the same item while it is still visible.
func (m *Model) sync() tea.Cmd {
	if !m.changes.dirty {
		return nil
	}
	m.changes.dirty = false
	items := m.changes.items

	var selID int64 = -1
	if it, ok := m.list.SelectedItem().(listItem); ok {
		selID = it.ID
	}
	idx := m.list.Index()
	cmd := m.refilter(m.list.SetItems(toListItems(items)))
	if !m.selectID(selID) {
		if n := len(m.list.VisibleItems()); n > 0 {
			m.list.Select(min(idx, n-1))
		}
	}
	m.setTitle(items)
	return cmd
}

// refilter runs the list's filter command inline, so that positions refer to
// the rows the user sees once SetItems returns under an active filter.
func (m *Model) refilter(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if fm, ok := msg.(list.FilterMatchesMsg); ok {
		m.list, _ = m.list.Update(fm)
		return nil
	}
	return func() tea.Msg { return msg }
}

// selectID moves the cursor to the visible row holding id.
func (m *Model) selectID(id int64) bool {
	for i, li := range m.list.VisibleItems() {
		if it, ok := li.(listItem); ok && it.ID == id {
			m.list.Select(i)
			return true
		}
	}
	return false
}

// dispatch submits a through the container and reports save failures.
func (m *Model) dispatch(a todo.Action) tea.Cmd {
	if err := m.c.Dispatch(a); err != nil {
		m.status, m.failed = err.Error(), true
	} else {
		m.status, m.failed = "", false
	}
	return m.sync()
}

func (m *Model) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Item{}, false
	}
	return it.Item, true
}

// Flow exposes the workflow state of the selected item.
func (m Model) Flow() ItemState { return m.flow.state }

// Items returns the collection the list currently shows.
func (m Model) Items() []model.Item {
	out := make([]model.Item, 0, len(m.list.Items()))
	for _, li := range m.list.Items() {
		if it, ok := li.(listItem); ok {
			out = append(out, it.Item)
		}
	}
	return out
}

func (m Model) Init() tea.Cmd { return nil }
