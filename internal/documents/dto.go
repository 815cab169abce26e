package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
// id, extracted_text, created_at and updated_at are read-only for clients.
type DocumentResponse struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	File          string    `json:"file"`
	ExtractedText string    `json:"extracted_text"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		ID:            doc.ID,
		Title:         doc.Title,
		File:          doc.StorageKey,
		ExtractedText: doc.ExtractedText,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}

func toResponseList(docs []Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toResponse(doc))
	}
	return out
}
