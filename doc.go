// Package safer implements the SAFER (Secure And Fast Encryption Routine)
// family of 64-bit block ciphers: SAFER K-64, K-128, SK-64 and SK-128.
//
// SAFER is a byte-oriented substitution-permutation network designed by
// James L. Massey for use in software on embedded systems. Unlike Feistel
// ciphers it does not split the block into halves; every byte of the state
// passes through the nonlinear layer in every round. The nonlinear layer is
// built from exponentiation and logarithm tables over the multiplicative
// group generated by 45 modulo the prime 257, and the linear layer is a
// three-level Pseudo-Hadamard Transform network.
//
// # Variants
//
//   - K-64: 8-byte key, original key schedule, 6 rounds by default
//   - K-128: 16-byte key, original key schedule, 10 rounds by default
//   - SK-64: 8-byte key, strengthened key schedule, 8 rounds by default
//   - SK-128: 16-byte key, strengthened key schedule, 10 rounds by default
//
// The strengthened (SK) schedule rotates the sub-key selection indices each
// round, closing the related-key weaknesses of the original (K) schedule.
// New deployments should prefer the SK variants, which is what NewCipher
// constructs; NewLegacyCipher exists for interoperability with K-variant
// peers.
//
// # Basic Usage
//
//	c, err := safer.NewCipher(key) // 8 or 16 bytes
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var ciphertext [safer.BlockSize]byte
//	c.Encrypt(ciphertext[:], plaintext[:])
//
//	var decrypted [safer.BlockSize]byte
//	c.Decrypt(decrypted[:], ciphertext[:])
//
// Cipher implements crypto/cipher.Block, so it composes with the chaining
// modes in the standard library. This package itself defines no mode of
// operation, no padding and no authentication; SAFER as implemented here is
// a raw single-block primitive and callers own everything above it.
//
// # Key Derivation
//
// The cipher consumes two 8-byte user keys. Turning a passphrase into that
// key material is deliberately outside the cipher core; the kdf subpackage
// provides interchangeable strategies, including a PBKDF2-based deriver and
// a port of the historical printable-ASCII mixing used by legacy SAFER
// deployments.
//
// # Thread Safety
//
// The Exp/Log tables are generated once behind sync.Once and are immutable
// afterwards. A Cipher is read-only after construction, so a single instance
// may be shared by any number of goroutines; distinct Cipher instances need
// no coordination at all. All operations complete in time proportional to
// the round count, with no blocking and no allocation on the encrypt and
// decrypt paths.
//
// # Security
//
// SAFER is a 1990s design with a 64-bit block. It remains unbroken at full
// strength in its SK variants, but the small block size makes it unsuitable
// for bulk encryption of large volumes under a single key. This package is
// primarily intended for interoperating with existing SAFER deployments.
package safer
