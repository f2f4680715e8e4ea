package kdf

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"github.com/kjlockhart/go-safer"
)

// DefaultIterations is the PBKDF2 work factor used when a PBKDF2 deriver
// is built with NewPBKDF2.
const DefaultIterations = 600000

// PBKDF2 derives user keys with PBKDF2-HMAC-SHA256, producing 16 bytes of
// key material split into the two 8-byte user keys. Salt and Iterations
// must match between peers for the derived keys to agree.
type PBKDF2 struct {
	Salt       []byte
	Iterations int
}

// NewPBKDF2 returns a PBKDF2 deriver with the given salt and the default
// work factor.
func NewPBKDF2(salt []byte) *PBKDF2 {
	return &PBKDF2{Salt: salt, Iterations: DefaultIterations}
}

// DeriveKeys stretches the passphrase into 16 bytes and splits them into
// userKey1 and userKey2.
func (p *PBKDF2) DeriveKeys(passphrase string) (userKey1, userKey2 [safer.BlockSize]byte) {
	iter := p.Iterations
	if iter < 1 {
		iter = DefaultIterations
	}
	dk := pbkdf2.Key([]byte(passphrase), p.Salt, iter, 2*safer.BlockSize, sha256.New)
	copy(userKey1[:], dk[:safer.BlockSize])
	copy(userKey2[:], dk[safer.BlockSize:])
	return userKey1, userKey2
}
