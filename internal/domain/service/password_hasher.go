// Package service defines domain-level contracts implemented by the
// infrastructure layer.
package service

// PasswordHasher defines the contract for hashing and verifying passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
