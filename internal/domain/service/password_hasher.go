// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., Argon2id), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Two calls with
	// the same password yield different encoded strings.
	Hash(password string) (string, error)

	// Check compares a plaintext password with an encoded hash. It fails
	// closed: a malformed hash is simply a mismatch.
	Check(password, hash string) bool
}
