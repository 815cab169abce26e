package users

import "time"

// User is an authenticated account. Guests are identified purely by header
// and are never stored here.
type User struct {
	ID         string
	Email      string
	FullName   string
	PictureURL string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
