// Package crypto wraps Ed25519 signing/verification and the generic
// hash primitive this module signs and identifies transactions with,
// and coordinates multisig construction, merging and verification.
package crypto

import (
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/ed25519"

	"github.com/algoshant/algotxn/types"
)

// GenerateAccount produces a new random Ed25519 keypair and its
// corresponding Address.
func GenerateAccount() (types.Address, ed25519.PrivateKey) {
	pk, sk, err := ed25519.GenerateKey(nil)
	if err != nil {
		// crypto/rand failures are unrecoverable process-level faults,
		// not something a caller of this core can act on.
		panic(fmt.Sprintf("crypto: generating account: %v", err))
	}
	var addr types.Address
	copy(addr[:], pk)
	return addr, sk
}

// KeypairFromSecret derives the public key (as an Address) from an
// Ed25519 private key.
func KeypairFromSecret(sk ed25519.PrivateKey) (types.Address, error) {
	if len(sk) != ed25519.PrivateKeySize {
		return types.Address{}, fmt.Errorf("crypto: private key has wrong length %d", len(sk))
	}
	pub, ok := sk.Public().(ed25519.PublicKey)
	if !ok {
		return types.Address{}, fmt.Errorf("crypto: unexpected public key type")
	}
	var addr types.Address
	copy(addr[:], pub)
	return addr, nil
}

// RawSignBytes produces a raw Ed25519 signature over message.
func RawSignBytes(sk ed25519.PrivateKey, message []byte) (types.Signature, error) {
	if len(sk) != ed25519.PrivateKeySize {
		return types.Signature{}, fmt.Errorf("crypto: private key has wrong length %d", len(sk))
	}
	raw := ed25519.Sign(sk, message)
	var sig types.Signature
	copy(sig[:], raw)
	return sig, nil
}

// VerifyBytes reports whether sig is a valid Ed25519 signature over
// message under pk.
func VerifyBytes(pk types.PublicKey, message []byte, sig types.Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pk[:]), message, sig[:])
}

// ValidSignatureLength reports whether sig has the length of a raw
// Ed25519 signature. Used to validate externally-produced signatures
// before they are attached to a transaction.
func ValidSignatureLength(sig []byte) bool {
	return len(sig) == ed25519.SignatureSize
}

// GenericHash is this module's hash primitive, SHA-512/256.
func GenericHash(data []byte) types.Digest {
	return types.Digest(sha512.Sum512_256(data))
}
