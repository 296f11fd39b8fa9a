package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an author identity. Created through registration, referenced
// (never mutated) by the content domains.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
