package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// PGDocumentsRepo is the PostgreSQL-backed DocumentsRepo.
type PGDocumentsRepo struct {
	DB *sql.DB
}

func NewPGDocumentsRepo(db *sql.DB) *PGDocumentsRepo {
	return &PGDocumentsRepo{DB: db}
}

const documentColumns = `id, user_id, title, file_name, mime_type, size_bytes, storage_provider, storage_key, extracted_text, created_at, updated_at`

func (r *PGDocumentsRepo) Create(ctx context.Context, doc Document) (Document, error) {
	row := r.DB.QueryRowContext(ctx, `
		INSERT INTO documents (user_id, title, file_name, mime_type, size_bytes, storage_provider, storage_key, extracted_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		doc.UserID, doc.Title, doc.FileName, doc.MimeType, doc.SizeBytes,
		doc.StorageProvider, doc.StorageKey, doc.ExtractedText, doc.CreatedAt, doc.UpdatedAt,
	)
	if err := row.Scan(&doc.ID); err != nil {
		return Document{}, fmt.Errorf("insert document: %w", err)
	}
	return doc, nil
}

func (r *PGDocumentsRepo) GetByID(ctx context.Context, userId string, id int64) (Document, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+documentColumns+`
		FROM documents
		WHERE user_id = $1 AND id = $2`,
		userId, id,
	)
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, fmt.Errorf("get document: %w", err)
	}
	return doc, nil
}

func (r *PGDocumentsRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Document, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+documentColumns+`
		FROM documents
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`,
		userId, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	out := []Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return out, nil
}

func (r *PGDocumentsRepo) Update(ctx context.Context, doc Document) (Document, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE documents
		SET title = $1, file_name = $2, mime_type = $3, size_bytes = $4, storage_key = $5, updated_at = $6
		WHERE user_id = $7 AND id = $8`,
		doc.Title, doc.FileName, doc.MimeType, doc.SizeBytes, doc.StorageKey, doc.UpdatedAt,
		doc.UserID, doc.ID,
	)
	if err != nil {
		return Document{}, fmt.Errorf("update document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Document{}, fmt.Errorf("update document: %w", err)
	}
	if affected == 0 {
		return Document{}, ErrNotFound
	}
	return doc, nil
}

func (r *PGDocumentsRepo) Delete(ctx context.Context, userId string, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM documents WHERE user_id = $1 AND id = $2`, userId, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	err := row.Scan(
		&doc.ID, &doc.UserID, &doc.Title, &doc.FileName, &doc.MimeType, &doc.SizeBytes,
		&doc.StorageProvider, &doc.StorageKey, &doc.ExtractedText, &doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return Document{}, err
	}
	return doc, nil
}
