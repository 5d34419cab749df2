package todo

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/todolist/internal/model"
)

// Store is the persistence port: one serialized collection in one slot.
type Store interface {
	Load() ([]model.Item, error)
	Save(items []model.Item) error
}

// Options tune a Container.
type Options struct {
	Logger *log.Logger
	Now    func() time.Time
	Layout string
}

// Container owns the collection. It is the only place actions are reduced,
// and it persists the new collection after every committed change.
type Container struct {
	reducer Reducer
	store   Store
	logger  *log.Logger
	items   []model.Item
	subs    []func([]model.Item)
}

// NewContainer hydrates a container from st. Any load failure is treated as
// "no prior data" and the container starts empty.
func NewContainer(st Store, opt Options) *Container {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Container{
		reducer: Reducer{Now: opt.Now, Layout: opt.Layout},
		store:   st,
		logger:  logger,
		items:   []model.Item{},
	}
	if st == nil {
		return c
	}
	items, err := st.Load()
	if err != nil {
		logger.Warn("discarding persisted todos", "err", err)
		return c
	}
	if items != nil {
		c.items = items
	}
	logger.Debug("loaded todos", "count", len(c.items))
	return c
}

// Items returns the current collection. Callers must not modify it.
func (c *Container) Items() []model.Item { return c.items }

// Get returns the item with id.
func (c *Container) Get(id int64) (model.Item, error) {
	i := model.IndexOf(c.items, id)
	if i < 0 {
		return model.Item{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return c.items[i], nil
}

// Subscribe registers fn to run after each committed change, once the
// new collection is the state of record and has been handed to the store.
func (c *Container) Subscribe(fn func([]model.Item)) {
	c.subs = append(c.subs, fn)
}

// Dispatch reduces a and, if it changed the collection, commits and saves it.
// The returned error is only ever a save failure; the new state is kept.
func (c *Container) Dispatch(a Action) error {
	next, changed := c.reducer.apply(c.items, a)
	if !changed {
		c.logger.Debug("action ignored", "kind", a.Kind())
		return nil
	}
	c.items = next
	c.logger.Debug("action committed", "kind", a.Kind(), "count", len(next))

	var err error
	if c.store != nil {
		if err = c.store.Save(slices.Clone(next)); err != nil {
			c.logger.Error("save todos", "err", err)
			err = fmt.Errorf("save: %w", err)
		}
	}
	for _, fn := range c.subs {
		fn(next)
	}
	return err
}

// Add appends a new item.
func (c *Container) Add(text string) error { return c.Dispatch(Add{Text: text}) }

// Update replaces the text of item id.
func (c *Container) Update(id int64, text string) error {
	return c.Dispatch(Update{ID: id, Text: text})
}

// Toggle flips the completed flag of item id.
func (c *Container) Toggle(id int64) error { return c.Dispatch(Toggle{ID: id}) }

// Delete removes item id.
func (c *Container) Delete(id int64) error { return c.Dispatch(Delete{ID: id}) }
