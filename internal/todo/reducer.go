package todo

import (
	"time"

	"github.com/Makepad-fr/todolist/internal/model"
)

// Reducer computes the next collection from the current one and an action.
// It never mutates its input; when an action does not apply (unknown id)
// the input slice is returned as is.
type Reducer struct {
	// Now is the wall clock used for ids and timestamps. Defaults to time.Now.
	Now func() time.Time
	// Layout formats timestamps. Defaults to DefaultTimestampLayout.
	Layout string
}

// Reduce returns the collection after applying a.
func (r Reducer) Reduce(items []model.Item, a Action) []model.Item {
	next, _ := r.apply(items, a)
	return next
}

// apply reports whether the action changed anything.
func (r Reducer) apply(items []model.Item, a Action) ([]model.Item, bool) {
	switch a := a.(type) {
	case Add:
		now := r.now()
		out := make([]model.Item, len(items), len(items)+1)
		copy(out, items)
		out = append(out, model.Item{
			ID:        NextID(items, now),
			Text:      a.Text,
			Completed: false,
			Timestamp: FormatTimestamp(now, r.Layout),
		})
		return out, true

	case Update:
		i := model.IndexOf(items, a.ID)
		if i < 0 {
			return items, false
		}
		out := clone(items)
		out[i].Text = a.Text
		out[i].Timestamp = FormatTimestamp(r.now(), r.Layout)
		return out, true

	case Toggle:
		i := model.IndexOf(items, a.ID)
		if i < 0 {
			return items, false
		}
		out := clone(items)
		out[i].Completed = !out[i].Completed
		return out, true

	case Delete:
		i := model.IndexOf(items, a.ID)
		if i < 0 {
			return items, false
		}
		out := make([]model.Item, 0, len(items)-1)
		out = append(out, items[:i]...)
		out = append(out, items[i+1:]...)
		return out, true
	}
	return items, false
}

func (r Reducer) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// NextID derives a fresh id from the clock in milliseconds. If that value is
// not greater than every id already in items, the largest id plus one is used
// instead, so two adds within the same millisecond never collide.
func NextID(items []model.Item, now time.Time) int64 {
	id := now.UnixMilli()
	for _, it := range items {
		if it.ID >= id {
			id = it.ID + 1
		}
	}
	return id
}

func clone(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	return out
}
