// Package auth provides password hashing and verification for account
// credentials. Hashes are bcrypt with a per-call random salt embedded in the
// output, so verification needs no separate salt column.
package auth

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password with bcrypt at the default cost.
// The cost is the tunable work factor; raising it slows offline brute force.
func HashPassword(plaintext string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
}

// VerifyPassword reports whether plaintext matches the stored hash.
// bcrypt's comparison is constant-time. Stored values that are not in
// bcrypt's own text form are run through normalizeHash first.
func VerifyPassword(plaintext string, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(normalizeHash(hash), []byte(plaintext)) == nil
}

// normalizeHash tolerates legacy rows where the bytea hash came back in
// postgres hex-escape text form ("\x2432...") instead of raw bytes, e.g.
// after a dump-and-restore from another store. New rows are always written
// in bcrypt's native "$2..." form.
func normalizeHash(hash []byte) []byte {
	hash = bytes.TrimSpace(hash)
	if bytes.HasPrefix(hash, []byte(`\x`)) {
		if decoded, err := hex.DecodeString(string(hash[2:])); err == nil {
			return decoded
		}
	}
	return hash
}
