package post

import (
	"time"

	"github.com/google/uuid"
)

// Author is the post author as shown in feeds. Identity lives in the user
// domain; posts only reference it.
type Author struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// GroupRef is the optional group a post is assigned to.
type GroupRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// Post is a published entry. Exactly one author, at most one group.
// PubDate is set at creation and never changes.
type Post struct {
	ID      int64     `json:"id"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
	Author  Author    `json:"author"`
	Group   *GroupRef `json:"group,omitempty"`
	Image   *string   `json:"image,omitempty"`
}

// CanEdit is the single ownership predicate consumed by every mutating
// entry point, so the redirect-vs-error policy is defined once.
func (p *Post) CanEdit(actorID uuid.UUID) bool {
	return p.Author.ID == actorID
}

// Filter selects one feed dimension: by group, by author, or none.
type Filter struct {
	GroupID  *int64
	AuthorID *uuid.UUID
}
