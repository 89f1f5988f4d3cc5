// Package crypto implements server-side password hashing and verification.
package crypto

import "golang.org/x/crypto/bcrypt"

// BcryptCost is fixed at 10 so stored hashes stay comparable across deployments.
const BcryptCost = 10

// dummyHash is a valid cost-10 hash of an unguessable value. Login compares
// against it when no user matches, so verification cost does not reveal
// whether the account exists.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// HashPassword returns the bcrypt hash of password.
func HashPassword(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, BcryptCost)
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(password, hash []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, password) == nil
}

// BurnVerification runs one bcrypt comparison against the fixed dummy hash.
func BurnVerification(password []byte) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, password)
}
