package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Hasher_HashAndCheck(t *testing.T) {
	hasher := NewArgon2Hasher()

	encoded, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=19456,t=2,p=1$"))

	assert.True(t, hasher.Check("correct horse battery staple", encoded))
	assert.False(t, hasher.Check("wrong password", encoded))
}

func TestArgon2Hasher_SaltIsRandom(t *testing.T) {
	hasher := NewArgon2Hasher()

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	// Different salts produce different encodings, and both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same password", first))
	assert.True(t, hasher.Check("same password", second))
}

func TestArgon2Hasher_CheckKnownEncoding(t *testing.T) {
	hasher := NewArgon2Hasher()

	// Encoding produced by another implementation with the same parameters.
	encoded := "$argon2id$v=19$m=19456,t=2,p=1$mK1zp767ZDsSClJ8HP+qtw$uJdh3qZK9UKyNzL4kO1JSEA8mw0KoQ6YZ+oAId7PmY4"

	assert.True(t, hasher.Check("password", encoded))
	assert.False(t, hasher.Check("Password", encoded))
}

func TestArgon2Hasher_CheckMalformedEncodings(t *testing.T) {
	hasher := NewArgon2Hasher()

	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not a hash", "plaintext"},
		{"wrong algorithm", "$argon2i$v=19$m=19456,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA$AAAA"},
		{"wrong version", "$argon2id$v=16$m=19456,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA$AAAA"},
		{"bad parameters", "$argon2id$v=19$m=abc$c2FsdHNhbHRzYWx0c2FsdA$AAAA"},
		{"bad salt encoding", "$argon2id$v=19$m=19456,t=2,p=1$!!!$AAAA"},
		{"bad digest encoding", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA$!!!"},
		{"missing segments", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, hasher.Check("password", tc.encoded))
		})
	}
}
