package models

import "time"

// News is a portal news post. CreatedAt drives the newest-first ordering
// of the public listing.
type News struct {
	UID       string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// DummyNews carries the JSON payload of an admin news creation request.
type DummyNews struct {
	Title    string  `json:"title" validate:"required,min=1,max=200"`
	Text     string  `json:"text" validate:"required"`
	ImageURL *string `json:"image_url,omitempty"`
}
