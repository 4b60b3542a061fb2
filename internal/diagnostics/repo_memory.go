package diagnostics

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores diagnostics in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Record
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Record)}
}

func (r *MemoryRepo) Create(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[rec.ID] = rec
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// List returns records newest first, with limit/offset applied after filtering.
func (r *MemoryRepo) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	offset, limit := filter.Offset, filter.Limit
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	records := make([]Record, 0, len(r.byID))
	for _, rec := range r.byID {
		if filter.Urgency != "" && rec.Urgency != filter.Urgency {
			continue
		}
		records = append(records, rec)
	}
	r.mu.RUnlock()

	if offset >= len(records) {
		return []Record{}, nil
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID > records[j].ID
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	end := len(records)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return records[offset:end], nil
}
