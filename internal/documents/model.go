package documents

import "time"

// Document represents an uploaded document owned by a user. ExtractedText is
// populated once at creation time and never re-derived afterward.
type Document struct {
	ID              int64
	UserID          string
	Title           string
	FileName        string
	MimeType        string
	SizeBytes       int64
	StorageProvider string
	StorageKey      string
	ExtractedText   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
