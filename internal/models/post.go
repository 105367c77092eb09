package models

import "time"

// Post is a single content entry.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"` // set once at creation
	UpdatedAt time.Time `json:"updated_at"` // refreshed on every update
}
