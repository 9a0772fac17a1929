package catalog

import "context"

// Repository loads the full catalog once at process start. The engine only
// ever sees the indexed Store built from the snapshot, never the source.
type Repository interface {
	Load(ctx context.Context) (*Snapshot, error)
}
