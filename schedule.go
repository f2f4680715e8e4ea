package safer

import "math/bits"

const (
	// BlockSize is the SAFER block size in bytes. All variants operate on
	// 64-bit blocks regardless of key length.
	BlockSize = 8

	// MaxRounds is the largest usable round count. Larger requests are
	// silently clamped, matching the reference behavior; they are not an
	// error.
	MaxRounds = 13

	// Default round counts for the four variants.
	K64DefaultRounds   = 6
	K128DefaultRounds  = 10
	SK64DefaultRounds  = 8
	SK128DefaultRounds = 10

	// scheduleLen is the fixed key-schedule buffer size: one round-count
	// byte plus 8 bytes of userKey2 plus 16 bytes for each of up to
	// MaxRounds rounds.
	scheduleLen = 1 + BlockSize*(1+2*MaxRounds)
)

// KeySchedule is the expanded key material consumed by block encryption and
// decryption. Byte 0 holds the clamped round count, bytes 1..8 hold the
// second user key verbatim, and each round consumes a further 16 bytes; the
// final key-mixing layer reuses the tail of the last round's group. Only
// the first Len() bytes are meaningful, the remainder of the fixed-size
// buffer stays zero.
//
// A schedule is immutable once produced. It is sensitive key material;
// call Zero when it is no longer needed.
type KeySchedule [scheduleLen]byte

// Rounds returns the round count the schedule was expanded for.
func (k *KeySchedule) Rounds() int {
	r := int(k[0])
	if r > MaxRounds {
		r = MaxRounds
	}
	return r
}

// Len returns the number of schedule bytes the cipher actually consumes:
// 9 + 16*Rounds().
func (k *KeySchedule) Len() int {
	return 1 + BlockSize*(1+2*k.Rounds())
}

// Zero overwrites the schedule with zeros.
func (k *KeySchedule) Zero() {
	for i := range k {
		k[i] = 0
	}
}

// ExpandKey derives the key schedule from two 8-byte user keys. The 64-bit
// variants pass the same key twice; the 128-bit variants pass the two key
// halves. rounds is clamped to [1, MaxRounds]. strengthened selects the SK
// schedule, which permutes the sub-key selection indices each round to
// resist the related-key attacks on the original K schedule.
func ExpandKey(userKey1, userKey2 [BlockSize]byte, rounds int, strengthened bool) KeySchedule {
	exp, _ := tables()

	if rounds > MaxRounds {
		rounds = MaxRounds
	}
	if rounds < 1 {
		rounds = 1
	}

	// ka and kb carry a ninth parity byte that the SK schedule rotates
	// into the selection window.
	var ka, kb [BlockSize + 1]byte
	var key KeySchedule

	key[0] = byte(rounds)
	for j := 0; j < BlockSize; j++ {
		ka[j] = bits.RotateLeft8(userKey1[j], 5)
		ka[BlockSize] ^= ka[j]
		kb[j] = userKey2[j]
		kb[BlockSize] ^= kb[j]
		key[1+j] = userKey2[j]
	}

	cursor := 1 + BlockSize
	for i := 1; i <= rounds; i++ {
		for j := range ka {
			ka[j] = bits.RotateLeft8(ka[j], 6)
			kb[j] = bits.RotateLeft8(kb[j], 6)
		}
		for j := 0; j < BlockSize; j++ {
			idx := j
			if strengthened {
				idx = (j + 2*i - 1) % (BlockSize + 1)
			}
			key[cursor] = ka[idx] + exp[exp[18*i+j+1]]
			cursor++
		}
		for j := 0; j < BlockSize; j++ {
			idx := j
			if strengthened {
				idx = (j + 2*i) % (BlockSize + 1)
			}
			key[cursor] = kb[idx] + exp[exp[18*i+j+10]]
			cursor++
		}
	}

	// Intermediate key state is sensitive.
	for j := range ka {
		ka[j] = 0
		kb[j] = 0
	}

	return key
}
