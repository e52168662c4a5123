// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record. Email is the stable identity key, stored
// lowercase and unique; Username is a display name with no uniqueness
// guarantee. PasswordHash is the encoded output of the password hasher and
// must never be serialized towards a client or written to logs.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
