package comment

import (
	"time"

	"github.com/google/uuid"
)

// Author mirrors post.Author for display in comment threads.
type Author struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// Comment belongs to exactly one post; immutable after creation.
type Comment struct {
	ID      int64     `json:"id"`
	PostID  int64     `json:"post_id"`
	Author  Author    `json:"author"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
}
