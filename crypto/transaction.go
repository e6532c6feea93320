package crypto

import (
	"encoding/base32"
	"fmt"

	"golang.org/x/crypto/ed25519"

	"github.com/algoshant/algotxn/encoding/msgpack"
	"github.com/algoshant/algotxn/types"
)

// txIDPrefix is prepended to a transaction's canonical encoding before
// hashing or signing, so that a signed transaction can never be
// confused for some other signed artifact.
const txIDPrefix = "TX"

// txIDTextLen is the length of a transaction ID's base32, no-padding
// textual form.
const txIDTextLen = 52

var b32NoPad = base32.StdEncoding.WithPadding(base32.NoPadding)

// RawTransactionBytesToSign returns the literal byte sequence that gets
// hashed for a transaction ID and signed by Ed25519: "TX" followed by
// the transaction's canonical msgpack encoding.
func RawTransactionBytesToSign(tx types.Transaction) ([]byte, error) {
	m, err := types.MarshalCanonical(tx)
	if err != nil {
		return nil, err
	}
	encoded := msgpack.Encode(m)
	out := make([]byte, 0, len(txIDPrefix)+len(encoded))
	out = append(out, txIDPrefix...)
	out = append(out, encoded...)
	return out, nil
}

// TransactionID is the raw 32-byte SHA-512/256 digest of a
// transaction's signing bytes. It is a function solely of
// RawTransactionBytesToSign's output and the hash primitive.
func TransactionID(tx types.Transaction) (types.Digest, error) {
	toSign, err := RawTransactionBytesToSign(tx)
	if err != nil {
		return types.Digest{}, err
	}
	return GenericHash(toSign), nil
}

// TransactionIDString renders a transaction ID as base32, no padding,
// truncated to 52 characters.
func TransactionIDString(tx types.Transaction) (string, error) {
	id, err := TransactionID(tx)
	if err != nil {
		return "", err
	}
	encoded := b32NoPad.EncodeToString(id[:])
	if len(encoded) < txIDTextLen {
		return encoded, nil
	}
	return encoded[:txIDTextLen], nil
}

// SignTransaction signs tx with sk and returns the signer's address
// together with the msgpack-encoded {sig, txn, sgnr?} envelope. sgnr is
// included iff sk's public key differs from tx.Sender.
func SignTransaction(sk ed25519.PrivateKey, tx types.Transaction) (types.Address, []byte, error) {
	toSign, err := RawTransactionBytesToSign(tx)
	if err != nil {
		return types.Address{}, nil, err
	}
	sig, err := RawSignBytes(sk, toSign)
	if err != nil {
		return types.Address{}, nil, err
	}
	signer, err := KeypairFromSecret(sk)
	if err != nil {
		return types.Address{}, nil, err
	}

	stx := types.SignedTxn{Txn: tx, Sig: sig}
	if signer != tx.Sender {
		stx.AuthAddr = signer
	}

	m, err := types.MarshalSignedTxnCanonical(stx)
	if err != nil {
		return types.Address{}, nil, err
	}
	return signer, msgpack.Encode(m), nil
}

// AttachSignature builds the same envelope SignTransaction would, but
// accepts an externally produced signature and the explicit address
// that produced it, rather than signing itself. sig's length must
// match the Ed25519 signature length.
func AttachSignature(signerAddr types.Address, tx types.Transaction, sig types.Signature) ([]byte, error) {
	if !ValidSignatureLength(sig[:]) {
		return nil, fmt.Errorf("crypto: signature has wrong length")
	}

	stx := types.SignedTxn{Txn: tx, Sig: sig}
	if signerAddr != tx.Sender {
		stx.AuthAddr = signerAddr
	}

	m, err := types.MarshalSignedTxnCanonical(stx)
	if err != nil {
		return nil, err
	}
	return msgpack.Encode(m), nil
}

// DecodeSignedTransaction decodes a signed-transaction envelope off the
// wire.
func DecodeSignedTransaction(blob []byte) (types.SignedTxn, error) {
	m, err := msgpack.DecodeToMap(blob)
	if err != nil {
		return types.SignedTxn{}, fmt.Errorf("crypto: decoding signed transaction: %w", err)
	}
	return types.UnmarshalSignedTxnCanonical(m)
}
