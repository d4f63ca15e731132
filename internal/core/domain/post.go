package domain

import "time"

// Post is a handout offered by a user. Requested only ever moves from false to true.
type Post struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	AuthorID  uint      `json:"author_id"`
	Requested bool      `json:"requested"`
	CreatedAt time.Time `json:"created_at"`
}
