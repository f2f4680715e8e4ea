// saferctl encrypts and decrypts single 8-byte SAFER blocks from the
// command line. It exists to exercise the cipher against other
// implementations; it deliberately offers no mode of operation, so anything
// longer than one block is out of its scope.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	safer "github.com/kjlockhart/go-safer"
	"github.com/kjlockhart/go-safer/kdf"
)

type options struct {
	keyHex     string
	passphrase string
	legacyKDF  bool
	salt       string
	rounds     int
	classic    bool
}

func (o *options) cipher() (*safer.Cipher, error) {
	switch {
	case o.keyHex != "" && o.passphrase != "":
		return nil, errors.New("--key and --passphrase are mutually exclusive")

	case o.keyHex != "":
		key, err := hex.DecodeString(o.keyHex)
		if err != nil {
			return nil, fmt.Errorf("decoding --key: %w", err)
		}
		if o.rounds > 0 {
			return safer.NewCipherWithRounds(key, o.rounds, !o.classic)
		}
		if o.classic {
			return safer.NewLegacyCipher(key)
		}
		return safer.NewCipher(key)

	case o.passphrase != "":
		var deriver kdf.Deriver
		if o.legacyKDF {
			deriver = kdf.Legacy{}
		} else {
			deriver = kdf.NewPBKDF2([]byte(o.salt))
		}
		uk1, uk2 := deriver.DeriveKeys(o.passphrase)
		rounds := o.rounds
		if rounds <= 0 {
			rounds = safer.SK128DefaultRounds
			if o.classic {
				rounds = safer.K128DefaultRounds
			}
		}
		schedule := safer.ExpandKey(uk1, uk2, rounds, !o.classic)
		return safer.NewCipherFromSchedule(schedule), nil

	default:
		return nil, errors.New("one of --key or --passphrase is required")
	}
}

func parseBlock(arg string) ([]byte, error) {
	block, err := hex.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("decoding block: %w", err)
	}
	if len(block) != safer.BlockSize {
		return nil, fmt.Errorf("block must be exactly %d bytes, got %d", safer.BlockSize, len(block))
	}
	return block, nil
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "saferctl",
		Short:         "Encrypt and decrypt single SAFER blocks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.keyHex, "key", "", "hex-encoded 8- or 16-byte key")
	root.PersistentFlags().StringVar(&opts.passphrase, "passphrase", "", "derive the key from a passphrase instead of --key")
	root.PersistentFlags().BoolVar(&opts.legacyKDF, "legacy-kdf", false, "use the historical printable-ASCII key derivation")
	root.PersistentFlags().StringVar(&opts.salt, "salt", "", "PBKDF2 salt (ignored with --legacy-kdf)")
	root.PersistentFlags().IntVar(&opts.rounds, "rounds", 0, "round count, 1..13 (0 selects the variant default)")
	root.PersistentFlags().BoolVar(&opts.classic, "classic", false, "use the original K schedule instead of SK")

	run := func(decrypt bool) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			c, err := opts.cipher()
			if err != nil {
				return err
			}
			defer c.Zero()

			block, err := parseBlock(args[0])
			if err != nil {
				return err
			}

			out := make([]byte, safer.BlockSize)
			if decrypt {
				c.Decrypt(out, block)
			} else {
				c.Encrypt(out, block)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(out))
			return nil
		}
	}

	root.AddCommand(&cobra.Command{
		Use:   "encrypt <hex-block>",
		Short: "Encrypt one 8-byte block",
		Args:  cobra.ExactArgs(1),
		RunE:  run(false),
	})
	root.AddCommand(&cobra.Command{
		Use:   "decrypt <hex-block>",
		Short: "Decrypt one 8-byte block",
		Args:  cobra.ExactArgs(1),
		RunE:  run(true),
	})

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "saferctl:", err)
		os.Exit(1)
	}
}
