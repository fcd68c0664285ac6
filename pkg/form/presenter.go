package form

import "sync"

// Presenter renders and clears per-field error feedback. Implementations
// must be idempotent in both directions: showing the same error twice or
// clearing an already-clean field leaves the displayed state unchanged.
type Presenter interface {
	// ShowError marks the field invalid, replaces any prior error display
	// with one carrying message, and marks the field's container as errored.
	ShowError(fieldID, message string)

	// ClearError reverses ShowError. Clearing a clean field is a no-op.
	ClearError(fieldID string)
}

// FieldDisplay is the inspectable display state of one field: the invalid
// flag styled on the input and the message rendered in its container.
type FieldDisplay struct {
	Invalid bool
	Message string
}

// DisplayState is the default Presenter: it tracks each field's display
// state in memory, ready to be mirrored onto any host UI. It doubles as the
// assertion point in tests.
type DisplayState struct {
	mu     sync.RWMutex
	fields map[string]FieldDisplay
}

// NewDisplayState creates an empty display-state presenter.
func NewDisplayState() *DisplayState {
	return &DisplayState{fields: make(map[string]FieldDisplay)}
}

// ShowError marks the field invalid with the given message. Showing the
// same error again changes nothing.
func (d *DisplayState) ShowError(fieldID, message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fields[fieldID] = FieldDisplay{Invalid: true, Message: message}
}

// ClearError removes the field's error display, if present.
func (d *DisplayState) ClearError(fieldID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.fields, fieldID)
}

// State returns the field's current display state; ok is false when the
// field shows no error.
func (d *DisplayState) State(fieldID string) (FieldDisplay, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	fd, ok := d.fields[fieldID]
	return fd, ok
}

// ErroredFields returns how many fields currently display an error.
func (d *DisplayState) ErroredFields() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.fields)
}
