package submission

import "errors"

var (
	// ErrEmptyFormID indicates an operation was attempted without a form identifier.
	ErrEmptyFormID = errors.New("submission.empty_form_id")

	// ErrFailedToPersist indicates the storage backend rejected a write.
	ErrFailedToPersist = errors.New("submission.failed_to_persist")
)
