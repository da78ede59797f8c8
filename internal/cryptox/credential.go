// Package cryptox derives credential verifiers for the local user directory.
//
// This is a local-only credential check, not a security boundary: the goal is
// to avoid keeping the raw password in the durable record, while preserving
// plain equality semantics for sign-in.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/photostudio/internal/common"
	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// NewSalt returns a fresh random salt for credential derivation.
func NewSalt() []byte {
	return common.GenerateRandByteArray(saltSize)
}

// MakeVerifier derives the value stored in the user record for the given
// password and salt. The same (password, salt) pair always yields the same
// verifier.
func MakeVerifier(password, salt []byte) []byte {
	key := argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
	hash := sha256.Sum256(key)
	return hash[:]
}

// VerifyCredential reports whether the supplied password matches the stored
// verifier. The comparison is constant-time.
func VerifyCredential(password, salt, verifier []byte) bool {
	candidate := MakeVerifier(password, salt)
	return subtle.ConstantTimeCompare(candidate, verifier) == 1
}
