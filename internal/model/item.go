package model

// Item is the domain model for a todo entry.
// ID is assigned once at creation; Timestamp is the human-readable
// creation/last-edit time and is not touched by toggling.
type Item struct {
	ID        int64  `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// Stats counts completed and pending items.
func Stats(items []Item) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// IndexOf returns the position of the item with id, or -1.
func IndexOf(items []Item, id int64) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
