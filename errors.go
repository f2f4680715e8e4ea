package safer

import "strconv"

// KeySizeError is returned when the key passed to a constructor is neither
// 8 bytes (64-bit variants) nor 16 bytes (128-bit variants).
type KeySizeError int

func (k KeySizeError) Error() string {
	return "safer: invalid key size " + strconv.Itoa(int(k)) + ", must be 8 or 16 bytes"
}
