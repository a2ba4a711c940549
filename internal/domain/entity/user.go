package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. There is no session model; a user record
// only exists so a profile can be linked back to an account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
