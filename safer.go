package safer

// Cipher is a SAFER block cipher keyed with an expanded schedule. It
// implements crypto/cipher.Block. The zero value is not usable; build one
// with NewCipher, NewLegacyCipher, NewCipherWithRounds or
// NewCipherFromSchedule.
type Cipher struct {
	schedule KeySchedule
	trace    TraceFunc
}

// splitKey maps an 8- or 16-byte key onto the two user keys the schedule
// expander consumes. The 64-bit variants feed the same key into both
// halves, exactly as the reference family parameters do.
func splitKey(key []byte) (uk1, uk2 [BlockSize]byte, err error) {
	switch len(key) {
	case BlockSize:
		copy(uk1[:], key)
		uk2 = uk1
	case 2 * BlockSize:
		copy(uk1[:], key[:BlockSize])
		copy(uk2[:], key[BlockSize:])
	default:
		return uk1, uk2, KeySizeError(len(key))
	}
	return uk1, uk2, nil
}

// NewCipher returns a strengthened-schedule SAFER cipher with the variant's
// default round count: SK-64 for an 8-byte key, SK-128 for a 16-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	uk1, uk2, err := splitKey(key)
	if err != nil {
		return nil, err
	}
	rounds := SK64DefaultRounds
	if len(key) == 2*BlockSize {
		rounds = SK128DefaultRounds
	}
	return &Cipher{schedule: ExpandKey(uk1, uk2, rounds, true)}, nil
}

// NewLegacyCipher returns a SAFER cipher using the original (K) key
// schedule: K-64 for an 8-byte key, K-128 for a 16-byte key. The K schedule
// has known related-key weaknesses; use it only to interoperate with
// existing K-variant peers.
func NewLegacyCipher(key []byte) (*Cipher, error) {
	uk1, uk2, err := splitKey(key)
	if err != nil {
		return nil, err
	}
	rounds := K64DefaultRounds
	if len(key) == 2*BlockSize {
		rounds = K128DefaultRounds
	}
	return &Cipher{schedule: ExpandKey(uk1, uk2, rounds, false)}, nil
}

// NewCipherWithRounds returns a SAFER cipher with an explicit round count
// and schedule variant. Round counts above MaxRounds are clamped, not
// rejected.
func NewCipherWithRounds(key []byte, rounds int, strengthened bool) (*Cipher, error) {
	uk1, uk2, err := splitKey(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{schedule: ExpandKey(uk1, uk2, rounds, strengthened)}, nil
}

// NewCipherFromSchedule wraps an already-expanded key schedule. A schedule
// that did not come from ExpandKey produces deterministic garbage on
// encrypt and decrypt, never a crash or an out-of-bounds access.
func NewCipherFromSchedule(schedule KeySchedule) *Cipher {
	return &Cipher{schedule: schedule}
}

// BlockSize returns the SAFER block size, 8 bytes.
func (c *Cipher) BlockSize() int { return BlockSize }

// Zero wipes the cipher's key schedule. The cipher must not be used
// afterwards.
func (c *Cipher) Zero() {
	c.schedule.Zero()
}

// Encrypt encrypts the 8-byte block in src into dst. Dst and src may
// overlap arbitrarily; the block is read in full before dst is written.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("safer: input not full block")
	}
	if len(dst) < BlockSize {
		panic("safer: output not full block")
	}
	encryptBlock(dst, src, &c.schedule, c.trace)
}

// Decrypt decrypts the 8-byte block in src into dst. Dst and src may
// overlap arbitrarily; the block is read in full before dst is written.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("safer: input not full block")
	}
	if len(dst) < BlockSize {
		panic("safer: output not full block")
	}
	decryptBlock(dst, src, &c.schedule, c.trace)
}

// encryptBlock runs the forward substitution-permutation network. Each
// round consumes 16 schedule bytes through a strictly advancing cursor:
// eight for the XOR/ADD key-mixing layer, eight for the Exp/Log nonlinear
// layer. The round ends with three keyless Pseudo-Hadamard Transform
// levels and a fixed lane permutation. One last key-mixing layer follows
// the final round. Byte arithmetic wraps mod 256 throughout.
func encryptBlock(dst, src []byte, key *KeySchedule, trace TraceFunc) {
	exp, log := tables()

	a, b, c, d := src[0], src[1], src[2], src[3]
	e, f, g, h := src[4], src[5], src[6], src[7]

	rounds := key.Rounds()
	k := 1

	for round := 1; round <= rounds; round++ {
		// Key mixing: XOR, ADD, ADD, XOR down the lanes.
		a ^= key[k]
		b += key[k+1]
		c += key[k+2]
		d ^= key[k+3]
		e ^= key[k+4]
		f += key[k+5]
		g += key[k+6]
		h ^= key[k+7]
		k += BlockSize

		// Nonlinear layer: Exp lanes combine additively, Log lanes by XOR.
		a = exp[a] + key[k]
		b = log[b] ^ key[k+1]
		c = log[c] ^ key[k+2]
		d = exp[d] + key[k+3]
		e = exp[e] + key[k+4]
		f = log[f] ^ key[k+5]
		g = log[g] ^ key[k+6]
		h = exp[h] + key[k+7]
		k += BlockSize

		// PHT level 1: (a,b) (c,d) (e,f) (g,h).
		b += a
		a += b
		d += c
		c += d
		f += e
		e += f
		h += g
		g += h

		// PHT level 2: (a,c) (e,g) (b,d) (f,h).
		c += a
		a += c
		g += e
		e += g
		d += b
		b += d
		h += f
		f += h

		// PHT level 3: (a,e) (b,f) (c,g) (d,h).
		e += a
		a += e
		f += b
		b += f
		g += c
		c += g
		h += d
		d += h

		// Fixed lane permutation feeding the next round.
		b, c, d, e, f, g = e, b, f, c, g, d

		if trace != nil {
			trace(TraceEncrypt, round, [BlockSize]byte{a, b, c, d, e, f, g, h})
		}
	}

	a ^= key[k]
	b += key[k+1]
	c += key[k+2]
	d ^= key[k+3]
	e ^= key[k+4]
	f += key[k+5]
	g += key[k+6]
	h ^= key[k+7]

	if trace != nil {
		trace(TraceEncrypt, rounds+1, [BlockSize]byte{a, b, c, d, e, f, g, h})
	}

	dst[0], dst[1], dst[2], dst[3] = a, b, c, d
	dst[4], dst[5], dst[6], dst[7] = e, f, g, h
}

// decryptBlock is the exact algebraic inverse of encryptBlock, maintained
// independently as its mirror image. The cursor starts at the last
// consumed schedule byte, 8*(1+2*rounds), and retreats: first the final
// key-mixing layer is undone (ADD becomes subtract, XOR is its own
// inverse), then each round in reverse order undoes the permutation, the
// three PHT levels (x -= y; y -= x), the nonlinear layer (Exp and Log swap
// roles) and the key-mixing layer.
func decryptBlock(dst, src []byte, key *KeySchedule, trace TraceFunc) {
	exp, log := tables()

	a, b, c, d := src[0], src[1], src[2], src[3]
	e, f, g, h := src[4], src[5], src[6], src[7]

	rounds := key.Rounds()
	k := BlockSize * (1 + 2*rounds)

	h ^= key[k]
	g -= key[k-1]
	f -= key[k-2]
	e ^= key[k-3]
	d ^= key[k-4]
	c -= key[k-5]
	b -= key[k-6]
	a ^= key[k-7]
	k -= BlockSize

	for round := rounds; round >= 1; round-- {
		// Undo the lane permutation.
		b, c, d, e, f, g = c, e, g, b, d, f

		// Undo PHT level 3.
		a -= e
		e -= a
		b -= f
		f -= b
		c -= g
		g -= c
		d -= h
		h -= d

		// Undo PHT level 2.
		a -= c
		c -= a
		e -= g
		g -= e
		b -= d
		d -= b
		f -= h
		h -= f

		// Undo PHT level 1.
		a -= b
		b -= a
		c -= d
		d -= c
		e -= f
		f -= e
		g -= h
		h -= g

		// Strip the nonlinear layer's key bytes.
		h -= key[k]
		g ^= key[k-1]
		f ^= key[k-2]
		e -= key[k-3]
		d -= key[k-4]
		c ^= key[k-5]
		b ^= key[k-6]
		a -= key[k-7]
		k -= BlockSize

		// Invert the substitutions and undo the key-mixing layer.
		h = log[h] ^ key[k]
		g = exp[g] - key[k-1]
		f = exp[f] - key[k-2]
		e = log[e] ^ key[k-3]
		d = log[d] ^ key[k-4]
		c = exp[c] - key[k-5]
		b = exp[b] - key[k-6]
		a = log[a] ^ key[k-7]
		k -= BlockSize

		if trace != nil {
			trace(TraceDecrypt, round, [BlockSize]byte{a, b, c, d, e, f, g, h})
		}
	}

	dst[0], dst[1], dst[2], dst[3] = a, b, c, d
	dst[4], dst[5], dst[6], dst[7] = e, f, g, h
}
