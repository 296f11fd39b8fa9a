package group

import "time"

// Group is a topical collection of posts. Created administratively;
// immutable once referenced by posts except for description edits.
type Group struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
