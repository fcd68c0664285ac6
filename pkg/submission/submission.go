package submission

import "time"

// Submission is one accepted, fully-valid set of field values captured at
// submit time. Records are immutable once persisted.
type Submission struct {
	ID        string            `json:"id"`
	FormID    string            `json:"form_id"`
	Data      map[string]string `json:"data"`
	CreatedAt time.Time         `json:"created_at"`
}
