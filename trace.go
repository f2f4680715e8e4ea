package safer

// TraceOp tells a trace callback which direction the cipher is running.
type TraceOp int

const (
	TraceEncrypt TraceOp = iota
	TraceDecrypt
)

func (op TraceOp) String() string {
	if op == TraceDecrypt {
		return "decrypt"
	}
	return "encrypt"
}

// TraceFunc observes the eight byte lanes as the cipher runs. During
// encryption it is called with round = 1..Rounds() after each completed
// round and once more with round = Rounds()+1 after the final key-mixing
// layer; during decryption it is called with the descending round number
// as each round is undone. The lanes array is a copy; the callback cannot
// influence the computation.
//
// Tracing exposes key-dependent intermediate state. Attach it only in
// diagnostic settings.
type TraceFunc func(op TraceOp, round int, lanes [BlockSize]byte)

// SetTrace attaches fn to the cipher, or detaches tracing when fn is nil.
// Not safe to call concurrently with Encrypt or Decrypt.
func (c *Cipher) SetTrace(fn TraceFunc) {
	c.trace = fn
}
