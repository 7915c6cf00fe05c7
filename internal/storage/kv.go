// Package storage persists the two application collections (templates and
// history) as whole JSON documents behind a small key/value interface, with
// sqlite and postgres backends.
package storage

import "context"

// Collection keys. Each key maps to one serialized collection; every write
// replaces the whole document (last write wins, no merging).
const (
	KeyTemplates = "templates"
	KeyHistory   = "history"
)

// KV is the durable-storage boundary. Load returns (nil, nil) when no value
// has ever been saved for the key.
type KV interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Close() error
}
