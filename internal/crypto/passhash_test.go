package crypto

import (
	"bytes"
	"testing"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	t.Parallel()

	pw := []byte("correct horse battery staple")
	hash, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if len(hash) == 0 {
		t.Fatalf("empty hash")
	}
	if bytes.Contains(hash, pw) {
		t.Fatalf("hash contains the plaintext password")
	}

	if !VerifyPassword(pw, hash) {
		t.Fatalf("VerifyPassword: expected true for correct password")
	}
	if VerifyPassword([]byte("wrong"), hash) {
		t.Fatalf("VerifyPassword: expected false for wrong password")
	}
	if VerifyPassword([]byte{}, hash) {
		t.Fatalf("VerifyPassword: expected false for empty password")
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	pw := []byte("p@ssw0rd")
	h1, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("HashPassword(2): %v", err)
	}
	if bytes.Equal(h1, h2) {
		t.Fatalf("two hashes of the same password are equal — salt missing")
	}
	if !VerifyPassword(pw, h1) || !VerifyPassword(pw, h2) {
		t.Fatalf("both hashes should verify against the password")
	}
}

func TestBurnVerification_DoesNotPanic(t *testing.T) {
	t.Parallel()

	BurnVerification([]byte("anything"))
	BurnVerification(nil)
}
