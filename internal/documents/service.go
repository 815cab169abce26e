package documents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"docqa-backend/internal/extract"
	"docqa-backend/internal/shared/cache"
	"docqa-backend/internal/shared/metrics"
	"docqa-backend/internal/shared/storage/object"
	"docqa-backend/internal/shared/telemetry"
)

const maxTitleLength = 255

// Service implements document lifecycle operations: upload with one-time text
// extraction, listing, retrieval, metadata/file updates and deletion.
type Service struct {
	Repo            DocumentsRepo
	Store           object.ObjectStore
	Cache           cache.Cache
	StorageProvider string
}

// UpdateParams describes a partial or full document update. A nil Title means
// "leave unchanged"; a nil File means the stored file is kept as is.
type UpdateParams struct {
	Title    *string
	FileName string
	File     io.Reader
}

// Create stores the uploaded file, extracts text from it when it is a PDF and
// persists the document. Extraction failures are logged and counted but never
// fail the upload; the document is created with empty extracted text.
func (s *Service) Create(ctx context.Context, userId, title, fileName string, file io.Reader) (Document, error) {
	if err := validateTitle(title); err != nil {
		return Document{}, err
	}

	storageKey, sizeBytes, mimeType, err := s.Store.Save(ctx, userId, fileName, file)
	if err != nil {
		return Document{}, fmt.Errorf("save file: %w", err)
	}

	extractedText := ""
	if extract.IsPDF(fileName) {
		text, err := extract.Text(ctx, s.Store, storageKey)
		if err != nil {
			metrics.IncExtractionFailed()
			telemetry.Error("documents.extract_failed", map[string]any{
				"userId":   userId,
				"fileName": fileName,
				"error":    err.Error(),
			})
		} else {
			extractedText = text
		}
	}

	now := time.Now().UTC()
	doc, err := s.Repo.Create(ctx, Document{
		UserID:          userId,
		Title:           strings.TrimSpace(title),
		FileName:        fileName,
		MimeType:        mimeType,
		SizeBytes:       sizeBytes,
		StorageProvider: s.StorageProvider,
		StorageKey:      storageKey,
		ExtractedText:   extractedText,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return Document{}, err
	}

	metrics.IncUpload()
	s.invalidateList(ctx, userId)
	return doc, nil
}

// List returns the user's documents, newest first. When a cache is configured
// the first page is served read-through from it.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Document, error) {
	key := listCacheKey(userId, limit, offset)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, key); err == nil {
			var docs []Document
			if err := json.Unmarshal([]byte(cached), &docs); err == nil {
				return docs, nil
			}
		}
	}

	docs, err := s.Repo.ListByUser(ctx, userId, limit, offset)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(docs); err == nil {
			if err := s.Cache.Set(ctx, key, string(data)); err != nil {
				telemetry.Error("documents.cache_set_failed", map[string]any{"userId": userId, "error": err.Error()})
			}
		}
	}
	return docs, nil
}

// Get returns a single document owned by the user.
func (s *Service) Get(ctx context.Context, userId string, id int64) (Document, error) {
	return s.Repo.GetByID(ctx, userId, id)
}

// Update changes a document's title and, optionally, replaces its file.
// Replacing the file does not re-run text extraction; the text captured at
// creation time stays authoritative.
func (s *Service) Update(ctx context.Context, userId string, id int64, params UpdateParams) (Document, error) {
	doc, err := s.Repo.GetByID(ctx, userId, id)
	if err != nil {
		return Document{}, err
	}

	if params.Title != nil {
		if err := validateTitle(*params.Title); err != nil {
			return Document{}, err
		}
		doc.Title = strings.TrimSpace(*params.Title)
	}

	if params.File != nil {
		storageKey, sizeBytes, mimeType, err := s.Store.Save(ctx, userId, params.FileName, params.File)
		if err != nil {
			return Document{}, fmt.Errorf("save file: %w", err)
		}
		oldKey := doc.StorageKey
		doc.FileName = params.FileName
		doc.MimeType = mimeType
		doc.SizeBytes = sizeBytes
		doc.StorageKey = storageKey
		if oldKey != "" && oldKey != storageKey {
			if err := s.Store.Delete(ctx, oldKey); err != nil {
				telemetry.Error("documents.file_delete_failed", map[string]any{"storageKey": oldKey, "error": err.Error()})
			}
		}
	}

	doc.UpdatedAt = time.Now().UTC()
	updated, err := s.Repo.Update(ctx, doc)
	if err != nil {
		return Document{}, err
	}

	s.invalidateList(ctx, userId)
	return updated, nil
}

// Delete removes the document record and then the stored file. File removal
// is best effort; a stale object never resurrects the document.
func (s *Service) Delete(ctx context.Context, userId string, id int64) error {
	doc, err := s.Repo.GetByID(ctx, userId, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, userId, id); err != nil {
		return err
	}
	if doc.StorageKey != "" {
		if err := s.Store.Delete(ctx, doc.StorageKey); err != nil {
			telemetry.Error("documents.file_delete_failed", map[string]any{"storageKey": doc.StorageKey, "error": err.Error()})
		}
	}
	s.invalidateList(ctx, userId)
	return nil
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(trimmed) > maxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, maxTitleLength)
	}
	return nil
}

func listCacheKey(userId string, limit, offset int) string {
	return fmt.Sprintf("docs:%s:%d:%d", userId, limit, offset)
}

func (s *Service) invalidateList(ctx context.Context, userId string) {
	if s.Cache == nil {
		return
	}
	// The cache keys vary by page, so wipe the common first page; stale
	// deeper pages expire via TTL.
	keys := []string{
		listCacheKey(userId, defaultListLimit, 0),
	}
	if err := s.Cache.Del(ctx, keys...); err != nil {
		telemetry.Error("documents.cache_del_failed", map[string]any{"userId": userId, "error": err.Error()})
	}
}
