// Package storage defines the flat key-value port the form engine persists
// through, plus the two bundled implementations: an in-memory store for
// tests and single-process use, and a Redis-backed store for anything that
// must survive a restart.
//
// The port is deliberately tiny (Get/Set/Delete on string keys and values)
// so the submission layer stays testable with MemoryKV and swappable for
// any backend that can hold a string.
//
// # Usage
//
//	kv := storage.NewMemoryKV()
//	_ = kv.Set("checkout-current", payload)
//
//	val, err := kv.Get("checkout-current")
//	if errors.Is(err, storage.ErrKeyNotFound) {
//	    // nothing persisted yet
//	}
//
// For Redis:
//
//	client, err := storage.Connect(ctx, cfg)
//	if err != nil { ... }
//	kv := storage.NewRedisKV(client)
package storage
