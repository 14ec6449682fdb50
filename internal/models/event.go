package models

import "time"

// Event is a school event students can sign up for. Location and capacity
// are optional; CreatedBy references the admin who published it.
type Event struct {
	UID         string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Location    *string   `json:"location,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	CreatedBy   string    `json:"created_by"`
}

// EventSignup links a user to an event. At most one signup exists per
// (event, user) pair.
type EventSignup struct {
	UID      string `json:"id"`
	EventUID string `json:"event_id"`
	UserUID  string `json:"user_id"`
}

// DummyEvent carries the JSON payload of an admin event creation request.
// The date arrives as an RFC3339 string.
type DummyEvent struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date" validate:"required"`
	Location    *string `json:"location,omitempty"`
	Capacity    *int    `json:"capacity,omitempty" validate:"omitempty,gte=0"`
}
