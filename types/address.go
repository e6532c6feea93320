package types

import (
	"bytes"
	"crypto/sha512"
	"encoding/base32"
	"fmt"
)

const (
	checksumLenBytes = 4
	addressTextLen   = 58
)

var b32NoPad = base32.StdEncoding.WithPadding(base32.NoPadding)

// Address is a 32-byte Ed25519 public key, the Algorand account
// identifier.
type Address [32]byte

// ZeroAddress is the all-zero public key. It is a valid Address (the
// "burn" address) but is forbidden in every optional Address-typed
// transaction field — callers must leave those fields absent instead.
var ZeroAddress = Address{}

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) checksum() []byte {
	sum := sha512.Sum512_256(a[:])
	return sum[len(sum)-checksumLenBytes:]
}

// String returns the checksummed, base32, no-padding textual form of
// the address, truncated to 58 characters.
func (a Address) String() string {
	checksumAddr := append(append([]byte{}, a[:]...), a.checksum()...)
	encoded := b32NoPad.EncodeToString(checksumAddr)
	if len(encoded) < addressTextLen {
		return encoded
	}
	return encoded[:addressTextLen]
}

// DecodeAddress decodes a checksummed, human-readable Algorand address
// into its raw 32-byte public key form, verifying the embedded checksum.
func DecodeAddress(address string) (a Address, err error) {
	if len(address) != addressTextLen {
		return a, fmt.Errorf("types: address length is not %d, was %d", addressTextLen, len(address))
	}

	decoded, err := b32NoPad.DecodeString(address)
	if err != nil {
		return a, fmt.Errorf("types: decoding address: %w", err)
	}
	if len(decoded) < len(a)+checksumLenBytes {
		return a, fmt.Errorf("types: decoded address too short: %d bytes", len(decoded))
	}

	var short Address
	copy(short[:], decoded[:len(a)])
	gotChecksum := decoded[len(a) : len(a)+checksumLenBytes]
	if !bytes.Equal(short.checksum(), gotChecksum) {
		return a, fmt.Errorf("types: address checksum mismatch")
	}
	return short, nil
}
