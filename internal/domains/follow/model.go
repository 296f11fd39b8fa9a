package follow

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a subscription edge from a reader to an author.
type Follow struct {
	ID       int64     `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	AuthorID uuid.UUID `json:"author_id"`
	Created  time.Time `json:"created"`
}
