// Package storage provides the durable key-value store the state
// containers write through to. It plays the role the browser's
// localStorage played for the web client: string keys, string values,
// per-installation durability, nothing else.
package storage

// Store is the adapter contract. Get never fails for a missing key; it
// reports absence through the second return. Values are opaque —
// callers serialize to JSON themselves.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}
