package form

import (
	"log/slog"
	"time"

	"github.com/formguard/formguard/pkg/logger"
	"github.com/formguard/formguard/pkg/rules"
	"github.com/formguard/formguard/pkg/storage"
	"github.com/formguard/formguard/pkg/submission"
)

// Defaults for the success notice emitted after an accepted submission.
const (
	DefaultSuccessMessage  = "Form submitted successfully!"
	DefaultSuccessDuration = 3 * time.Second
)

// Controller orchestrates validation across a form's fields. It owns the
// live error map and the field values for the lifetime of the page view and
// drives the per-field state machine:
//
//	untouched → invalid (error shown) → valid (error cleared) ⇄ invalid
//
// Methods must be called from a single goroutine; the engine models the one
// logical thread of a page.
type Controller struct {
	formID    string
	fields    map[string]*Field
	order     []string
	errors    Errors
	registry  *rules.Registry
	validator *Validator
	presenter Presenter
	store     *submission.Store
	notifier  Notifier
	notice    Notice
	logger    *slog.Logger
}

// NewController creates a controller for the given form and field list.
// Fields with duplicate or empty identifiers are dropped with a warning.
// Unset collaborators default to the built-in registry, an in-memory
// DisplayState presenter, a memory-backed submission store, and a Banner.
func NewController(formID string, fields []Field, opts ...Option) *Controller {
	c := &Controller{
		formID:   formID,
		fields:   make(map[string]*Field, len(fields)),
		errors:   make(Errors),
		registry: rules.NewRegistry(),
		notice:   Notice{Message: DefaultSuccessMessage, Duration: DefaultSuccessDuration},
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.presenter == nil {
		c.presenter = NewDisplayState()
	}
	if c.store == nil {
		c.store = submission.NewStore(storage.NewMemoryKV())
	}
	if c.notifier == nil {
		c.notifier = NewBanner()
	}
	c.validator = NewValidator(c.registry, c.logger)

	for i := range fields {
		f := fields[i]
		if f.ID == "" {
			c.logger.Warn("field without identifier dropped", logger.Form(formID))
			continue
		}
		if _, exists := c.fields[f.ID]; exists {
			c.logger.Warn("duplicate field identifier dropped", logger.Form(formID), logger.Field(f.ID))
			continue
		}
		c.fields[f.ID] = &f
		c.order = append(c.order, f.ID)
	}

	return c
}

// HandleChange updates the field's value. If the field currently shows an
// error it is cleared immediately and unconditionally; changing a value
// never re-validates on its own, only blur and submit do.
func (c *Controller) HandleChange(fieldID, value string) {
	f, ok := c.fields[fieldID]
	if !ok {
		c.logger.Warn("change for unknown field", logger.Form(c.formID), logger.Field(fieldID))
		return
	}

	f.Value = value
	if c.errors.Has(fieldID) {
		c.errors.Clear(fieldID)
		c.presenter.ClearError(fieldID)
	}
}

// HandleBlur validates the field and shows or clears its error accordingly.
func (c *Controller) HandleBlur(fieldID string) {
	f, ok := c.fields[fieldID]
	if !ok {
		c.logger.Warn("blur for unknown field", logger.Form(c.formID), logger.Field(fieldID))
		return
	}

	c.applyResult(fieldID, c.validator.Validate(*f))
}

// HandleSubmit validates every field regardless of blur history. When all
// pass it persists the current values, emits the success notice, resets the
// field values, and clears the error map; the returned bool is true. When
// any field fails, the per-field errors stay visible and the bool is false.
// A persistence failure on an otherwise valid form returns true alongside
// the storage error; no success notice is emitted and values are kept.
func (c *Controller) HandleSubmit() (bool, error) {
	valid := true
	for _, id := range c.order {
		err := c.validator.Validate(*c.fields[id])
		c.applyResult(id, err)
		if err != nil {
			valid = false
		}
	}
	if !valid {
		return false, nil
	}

	if _, err := c.store.Save(c.formID, c.Values()); err != nil {
		return true, err
	}

	c.notifier.Notify(c.notice)
	for _, id := range c.order {
		c.fields[id].Value = ""
	}
	return true, nil
}

// applyResult moves one field between the valid and invalid states.
func (c *Controller) applyResult(fieldID string, err error) {
	if err != nil {
		c.errors.Set(fieldID, err.Error())
		c.presenter.ShowError(fieldID, err.Error())
		return
	}
	c.errors.Clear(fieldID)
	c.presenter.ClearError(fieldID)
}

// Prefill loads the form's persisted snapshot and applies it to the fields.
// It reports whether a snapshot existed.
func (c *Controller) Prefill() bool {
	snap, ok := c.store.Load(c.formID)
	if !ok {
		return false
	}
	for id, value := range snap {
		if f, known := c.fields[id]; known {
			f.Value = value
		}
	}
	return true
}

// Values returns a copy of the current field values keyed by identifier.
func (c *Controller) Values() map[string]string {
	values := make(map[string]string, len(c.fields))
	for id, f := range c.fields {
		values[id] = f.Value
	}
	return values
}

// Field returns a copy of the field with the given identifier.
func (c *Controller) Field(fieldID string) (Field, bool) {
	f, ok := c.fields[fieldID]
	if !ok {
		return Field{}, false
	}
	return *f, true
}

// Errors returns a copy of the live error map.
func (c *Controller) Errors() Errors {
	errs := make(Errors, len(c.errors))
	for field, message := range c.errors {
		errs[field] = message
	}
	return errs
}
