package cryptox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeVerifier_Deterministic(t *testing.T) {
	salt := NewSalt()
	v1 := MakeVerifier([]byte("password"), salt)
	v2 := MakeVerifier([]byte("password"), salt)
	require.Equal(t, v1, v2)
	require.Len(t, v1, 32)
}

func TestMakeVerifier_SaltChangesResult(t *testing.T) {
	v1 := MakeVerifier([]byte("password"), NewSalt())
	v2 := MakeVerifier([]byte("password"), NewSalt())
	require.NotEqual(t, v1, v2)
}

func TestVerifyCredential(t *testing.T) {
	salt := NewSalt()
	verifier := MakeVerifier([]byte("password"), salt)

	require.True(t, VerifyCredential([]byte("password"), salt, verifier))
	require.False(t, VerifyCredential([]byte("Password"), salt, verifier))
	require.False(t, VerifyCredential([]byte(""), salt, verifier))
}
