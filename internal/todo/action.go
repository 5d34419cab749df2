package todo

// Action is one intended change to the collection. The set of actions is
// closed: only the types in this file implement it.
type Action interface {
	action()
	// Kind is a short label used in logs.
	Kind() string
}

// Add appends a new item with Text.
type Add struct {
	Text string
}

// Update replaces the text of the item with ID and refreshes its timestamp.
type Update struct {
	ID   int64
	Text string
}

// Toggle flips the completed flag of the item with ID.
type Toggle struct {
	ID int64
}

// Delete removes the item with ID.
type Delete struct {
	ID int64
}

func (Add) action()    {}
func (Update) action() {}
func (Toggle) action() {}
func (Delete) action() {}

func (Add) Kind() string    { return "add" }
func (Update) Kind() string { return "update" }
func (Toggle) Kind() string { return "toggle" }
func (Delete) Kind() string { return "delete" }
