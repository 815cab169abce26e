package documents

import "context"

// DocumentsRepo defines persistence operations for documents. Every read and
// write is scoped to the owning user; lookups for other users' documents
// return ErrNotFound.
type DocumentsRepo interface {
	Create(ctx context.Context, doc Document) (Document, error)
	GetByID(ctx context.Context, userId string, id int64) (Document, error)
	ListByUser(ctx context.Context, userId string, limit, offset int) ([]Document, error)
	Update(ctx context.Context, doc Document) (Document, error)
	Delete(ctx context.Context, userId string, id int64) error
}
