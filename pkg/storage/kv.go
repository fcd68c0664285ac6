package storage

// KV is the persistence port: a string-keyed, string-valued store with
// last-write-wins semantics. Implementations must return ErrKeyNotFound
// from Get when the key is absent and treat Delete of an absent key as a
// no-op.
type KV interface {
	// Get returns the value stored under key.
	Get(key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}
