package state

// Toggle is the open/closed state of a menu, dropdown or dialog.
// The zero value is closed.
type Toggle struct {
	open bool
}

// Open opens the toggle. Opening an open toggle changes nothing.
func (t *Toggle) Open() {
	t.open = true
}

// Close closes the toggle. Closing a closed toggle changes nothing.
func (t *Toggle) Close() {
	t.open = false
}

// Toggle flips between open and closed.
func (t *Toggle) Toggle() {
	t.open = !t.open
}

// Set opens or closes the toggle.
func (t *Toggle) Set(open bool) {
	t.open = open
}

// IsOpen reports whether the toggle is open.
func (t Toggle) IsOpen() bool {
	return t.open
}
