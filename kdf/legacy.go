package kdf

import "github.com/kjlockhart/go-safer"

// Printable ASCII spans ' ' through '~'; anything outside that range is
// treated as an end-of-line marker one past the span.
const (
	legacyRadix     = '~' - ' ' + 1 // 95
	legacyEndOfLine = legacyRadix
)

// Legacy derives user keys with the printable-ASCII base-95 accumulation
// used by long-deployed SAFER SK-128 systems (BBMD controllers among
// them). It is an obfuscation step, not a cryptographic KDF: it has no
// salt, no work factor, and mixes at most the first 16 bytes of the
// passphrase. Use it only to interoperate with peers that already derive
// keys this way; use PBKDF2 otherwise.
type Legacy struct{}

// DeriveKeys seeds userKey1 with passphrase bytes 0..7 and userKey2 with
// bytes 8..15 (zero padded), then folds each of the first 16 passphrase
// characters into both keys as a base-95 digit with byte-wise carry
// propagation.
func (Legacy) DeriveKeys(passphrase string) (userKey1, userKey2 [safer.BlockSize]byte) {
	var in [2 * safer.BlockSize]byte
	copy(in[:], passphrase)
	copy(userKey1[:], in[:safer.BlockSize])
	copy(userKey2[:], in[safer.BlockSize:])

	for _, ch := range in {
		v := uint32(legacyEndOfLine)
		if ch >= ' ' && ch <= '~' {
			v = uint32(ch - ' ')
		}
		for i := range userKey1 {
			v += uint32(userKey1[i]) * legacyRadix
			userKey1[i] = byte(v)
			v >>= 8
		}
		for i := range userKey2 {
			v += uint32(userKey2[i]) * legacyRadix
			userKey2[i] = byte(v)
			v >>= 8
		}
	}
	return userKey1, userKey2
}
