package safer

import "sync"

// The nonlinear layer is driven by two 256-entry tables: exp[i] = 45^i mod
// 257 truncated to a byte (45 generates the full multiplicative group of
// the prime 257, and the single overflow value 256 lands at exp[128] and
// truncates to 0), and log, its inverse permutation. Both are derived, not
// secret, but generating them at first use keeps the binary free of magic
// constants and makes the generation testable.
var (
	tablesOnce sync.Once
	expTab     [256]byte
	logTab     [256]byte
)

// tables returns the exponentiation and logarithm tables, generating them
// on first use. The sync.Once barrier is the only synchronization the
// package needs: after it completes the tables are immutable and may be
// read from any goroutine.
func tables() (exp, log *[256]byte) {
	tablesOnce.Do(func() {
		e := 1
		for i := 0; i < 256; i++ {
			expTab[i] = byte(e)
			logTab[expTab[i]] = byte(i)
			e = e * 45 % 257
		}
	})
	return &expTab, &logTab
}
