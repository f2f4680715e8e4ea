// Package kdf turns passphrases into the pair of 8-byte user keys the
// SAFER key schedule consumes.
//
// Deriving key material from a passphrase is not part of the cipher's
// correctness guarantees, so the strategy is pluggable: Legacy reproduces
// the historical printable-ASCII mixing used by deployed SAFER systems,
// and PBKDF2 is the choice for anything new.
package kdf

import "github.com/kjlockhart/go-safer"

// Deriver produces the two user keys for safer.ExpandKey from a
// passphrase. Implementations must be deterministic: the same passphrase
// always yields the same key pair.
type Deriver interface {
	DeriveKeys(passphrase string) (userKey1, userKey2 [safer.BlockSize]byte)
}
