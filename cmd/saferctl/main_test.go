package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestEncryptDecryptWithHexKey(t *testing.T) {
	ct, err := runCommand(t, "encrypt",
		"--key", "000102030405060708090a0b0c0d0e0f",
		"0a1b2c3d4e5f6071")
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if ct != "e0d09cdc37f85656" {
		t.Errorf("encrypt output = %q, want e0d09cdc37f85656", ct)
	}

	pt, err := runCommand(t, "decrypt",
		"--key", "000102030405060708090a0b0c0d0e0f",
		ct)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if pt != "0a1b2c3d4e5f6071" {
		t.Errorf("decrypt output = %q, want 0a1b2c3d4e5f6071", pt)
	}
}

func TestDecryptWithLegacyPassphrase(t *testing.T) {
	out, err := runCommand(t, "decrypt",
		"--passphrase", "DeltaControlsInc.",
		"--legacy-kdf",
		"--rounds", "11",
		"86f0cc032822b859")
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if out != "0c062e0976010a03" {
		t.Errorf("decrypt output = %q, want 0c062e0976010a03", out)
	}
}

func TestArgumentValidation(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"no_key_material", []string{"encrypt", "0001020304050607"}},
		{"key_and_passphrase", []string{"encrypt", "--key", "0001020304050607", "--passphrase", "x", "0001020304050607"}},
		{"bad_key_hex", []string{"encrypt", "--key", "zz", "0001020304050607"}},
		{"bad_key_size", []string{"encrypt", "--key", "00010203", "0001020304050607"}},
		{"short_block", []string{"encrypt", "--key", "0001020304050607", "000102"}},
		{"bad_block_hex", []string{"encrypt", "--key", "0001020304050607", "notahexblock :)"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := runCommand(t, tc.args...); err == nil {
				t.Error("expected an error, got none")
			}
		})
	}
}
