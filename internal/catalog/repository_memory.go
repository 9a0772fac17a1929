package catalog

import "context"

// MemoryRepository serves the built-in seed catalog. Used whenever no
// DATABASE_URL is configured, and by tests.
type MemoryRepository struct{}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(ctx context.Context) (*Snapshot, error) {
	return Seed(), nil
}
