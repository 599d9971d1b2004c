package kv

import "errors"

var ErrNotFound = errors.New("key not found")

// Store is a durable string-to-string mapping. There are no transactions
// and no locking across keys; callers that need atomicity over a value
// must serialize their own read-modify-write cycles.
type Store interface {
	Get(key string) (string, error)
	Put(key, value string) error
	Delete(key string) error
}
