package submission

import (
	"encoding/json"
	"errors"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/formguard/formguard/pkg/storage"
)

// DefaultCapacity is the number of submissions retained per form.
const DefaultCapacity = 10

// Store persists submissions through a storage.KV backend.
type Store struct {
	kv       storage.KV
	capacity int
}

// Option configures a Store.
type Option func(*Store)

// WithCapacity overrides the history capacity. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(s *Store) {
		if n >= 1 {
			s.capacity = n
		}
	}
}

// NewStore creates a submission store over the given backend.
func NewStore(kv storage.KV, opts ...Option) *Store {
	s := &Store{kv: kv, capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save appends data to the form's history, evicting the oldest records
// beyond the capacity, and replaces the form's current snapshot. It returns
// the stamped record that was persisted.
func (s *Store) Save(formID string, data map[string]string) (Submission, error) {
	if formID == "" {
		return Submission{}, ErrEmptyFormID
	}

	rec := Submission{
		ID:        uuid.NewString(),
		FormID:    formID,
		Data:      make(map[string]string, len(data)),
		CreatedAt: time.Now().UTC(),
	}
	maps.Copy(rec.Data, data)

	history := append(s.History(formID), rec)
	if len(history) > s.capacity {
		history = history[len(history)-s.capacity:]
	}

	raw, err := json.Marshal(history)
	if err != nil {
		return Submission{}, errors.Join(ErrFailedToPersist, err)
	}
	if err := s.kv.Set(historyKey(formID), string(raw)); err != nil {
		return Submission{}, errors.Join(ErrFailedToPersist, err)
	}

	snap, err := json.Marshal(rec.Data)
	if err != nil {
		return Submission{}, errors.Join(ErrFailedToPersist, err)
	}
	if err := s.kv.Set(currentKey(formID), string(snap)); err != nil {
		return Submission{}, errors.Join(ErrFailedToPersist, err)
	}

	return rec, nil
}

// Load returns the form's current snapshot, or ok=false when nothing has
// been accepted yet. Corrupt snapshots read as absent.
func (s *Store) Load(formID string) (map[string]string, bool) {
	if formID == "" {
		return nil, false
	}

	raw, err := s.kv.Get(currentKey(formID))
	if err != nil {
		return nil, false
	}

	var data map[string]string
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, false
	}
	return data, true
}

// History returns the form's persisted submissions, oldest first. A missing
// or corrupt history reads as empty.
func (s *Store) History(formID string) []Submission {
	if formID == "" {
		return nil
	}

	raw, err := s.kv.Get(historyKey(formID))
	if err != nil {
		return nil
	}

	var history []Submission
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil
	}
	return history
}

// ClearHistory erases the form's persisted history. The current snapshot is
// left untouched.
func (s *Store) ClearHistory(formID string) error {
	if formID == "" {
		return ErrEmptyFormID
	}
	return s.kv.Delete(historyKey(formID))
}

func historyKey(formID string) string { return formID + "-submissions" }
func currentKey(formID string) string { return formID + "-current" }
