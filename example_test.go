package safer_test

import (
	"encoding/hex"
	"fmt"

	safer "github.com/kjlockhart/go-safer"
)

// ExampleNewCipher shows single-block encryption with the SK-128 variant.
func ExampleNewCipher() {
	key := []byte("0123456789abcdef") // 16 bytes selects SK-128
	c, err := safer.NewCipher(key)
	if err != nil {
		panic(err)
	}

	plaintext := []byte("GoSafer!")
	ciphertext := make([]byte, safer.BlockSize)
	c.Encrypt(ciphertext, plaintext)

	decrypted := make([]byte, safer.BlockSize)
	c.Decrypt(decrypted, ciphertext)

	fmt.Printf("ciphertext: %s\n", hex.EncodeToString(ciphertext))
	fmt.Printf("decrypted:  %s\n", decrypted)

	// Output:
	// ciphertext: d65287478d635daa
	// decrypted:  GoSafer!
}

// ExampleExpandKey builds a schedule directly for full control over the
// round count and variant.
func ExampleExpandKey() {
	var userKey1, userKey2 [safer.BlockSize]byte
	copy(userKey1[:], "8bytekey")
	userKey2 = userKey1

	schedule := safer.ExpandKey(userKey1, userKey2, 8, true)
	c := safer.NewCipherFromSchedule(schedule)

	ciphertext := make([]byte, safer.BlockSize)
	c.Encrypt(ciphertext, []byte("GoSafer!"))

	fmt.Printf("rounds: %d\n", schedule.Rounds())
	fmt.Printf("ciphertext: %s\n", hex.EncodeToString(ciphertext))

	// Output:
	// rounds: 8
	// ciphertext: 61cb9d273867d71f
}
