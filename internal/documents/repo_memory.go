package documents

import (
	"context"
	"sort"
	"sync"
)

// MemoryDocumentsRepo is an in-memory DocumentsRepo used for local
// development and tests when no database is configured.
type MemoryDocumentsRepo struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]Document
}

func NewMemoryDocumentsRepo() *MemoryDocumentsRepo {
	return &MemoryDocumentsRepo{items: map[int64]Document{}}
}

func (r *MemoryDocumentsRepo) Create(_ context.Context, doc Document) (Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	doc.ID = r.nextID
	r.items[doc.ID] = doc
	return doc, nil
}

func (r *MemoryDocumentsRepo) GetByID(_ context.Context, userId string, id int64) (Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.items[id]
	if !ok || doc.UserID != userId {
		return Document{}, ErrNotFound
	}
	return doc, nil
}

func (r *MemoryDocumentsRepo) ListByUser(_ context.Context, userId string, limit, offset int) ([]Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Document
	for _, doc := range r.items {
		if doc.UserID == userId {
			out = append(out, doc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if offset >= len(out) {
		return []Document{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryDocumentsRepo) Update(_ context.Context, doc Document) (Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[doc.ID]
	if !ok || current.UserID != doc.UserID {
		return Document{}, ErrNotFound
	}
	doc.CreatedAt = current.CreatedAt
	r.items[doc.ID] = doc
	return doc, nil
}

func (r *MemoryDocumentsRepo) Delete(_ context.Context, userId string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.items[id]
	if !ok || doc.UserID != userId {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
