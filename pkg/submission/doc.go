// Package submission persists accepted form submissions through the
// storage port: an append-only, bounded history per form plus a single
// "current snapshot" used to prefill the form on a later visit.
//
// Two keys exist per form, "{formID}-submissions" (JSON array of records,
// newest last, capped at the configured capacity with FIFO eviction) and
// "{formID}-current" (the latest accepted values alone). Reads fail open:
// a missing key or corrupt payload behaves like an empty history, never an
// error, so a damaged store can only cost old data, not break the form.
//
// # Usage
//
//	store := submission.NewStore(storage.NewMemoryKV())
//
//	rec, err := store.Save("checkout", values)
//	if err != nil { ... }
//
//	if prev, ok := store.Load("checkout"); ok {
//	    // prefill the form with prev
//	}
//
// All operations are synchronous and last-write-wins; the design assumes a
// single active form instance per store key.
package submission
