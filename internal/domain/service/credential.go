// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// SaltSize is the length in bytes of every password salt.
const SaltSize = 16

// CredentialService defines the stateless salt/hash/verify functions of the
// credential engine. Implementations are pure: no I/O beyond randomness
// consumption, no failure modes over well-formed inputs.
type CredentialService interface {
	// GenerateSalt returns SaltSize cryptographically random bytes,
	// independent across calls.
	GenerateSalt() ([]byte, error)

	// Hash computes the deterministic one-way digest of the UTF-8 password
	// bytes concatenated with the salt.
	Hash(password string, salt []byte) []byte

	// Check recomputes the hash for the password and salt and compares it
	// byte-for-byte against the expected digest.
	Check(password string, salt, expected []byte) bool
}
