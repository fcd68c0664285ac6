// Package form implements the field-validation engine: a field model with a
// closed set of semantic kinds, a field validator that evaluates rules in a
// fixed order, a per-field error-display contract, and a controller driving
// the change/blur/submit lifecycle against a submission store.
//
// # Architecture
//
// A Controller is constructed per form with the form's field list and owns
// the live error map for the lifetime of the page view. Collaborators are
// injected through options and consumed via small interfaces:
//
//   - rules.Registry   – which rules exist (required, email, nationalId, ...)
//   - Presenter        – how an error is shown/cleared next to a field
//   - submission.Store – where accepted submissions go
//   - Notifier         – where the success notice goes
//
// Validation per field short-circuits at the first failure, so a field never
// carries more than one concurrent error: required first, then the rule
// bound to the field's kind (only for non-empty values), then the
// minimum-length bound.
//
// # Usage
//
//	ctrl := form.NewController("checkout", []form.Field{
//	    {ID: "name", Kind: form.KindText, Required: true, MinLength: 3},
//	    {ID: "email", Kind: form.KindEmail, Required: true},
//	    {ID: "cpf", Kind: form.KindNationalID, Required: true},
//	})
//
//	ctrl.HandleChange("email", "user@example.com")
//	ctrl.HandleBlur("email")
//	ok, err := ctrl.HandleSubmit()
//
// # Concurrency
//
// The engine is event-driven and synchronous: Controller methods must be
// called from a single goroutine, mirroring the one logical thread of a
// page. DisplayState and Banner are internally locked because the banner's
// removal timer fires on its own goroutine.
package form
