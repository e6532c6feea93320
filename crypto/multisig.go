package crypto

import (
	"fmt"

	"golang.org/x/crypto/ed25519"

	"github.com/algoshant/algotxn/encoding/msgpack"
	"github.com/algoshant/algotxn/types"
)

// multisigAddrPrefix is hashed ahead of the ordered public keys to
// derive a multisig account's address.
const multisigAddrPrefix = "MultisigAddr"

// MultisigAccount is the immutable pre-image of a multisig address:
// version, threshold and the ordered list of member public keys. The
// order of Pks is semantically significant — permuting it yields a
// different address. Nothing in this package lets a caller mutate an
// existing MultisigAccount's fields after it derives an address from
// them; producing a different pre-image means building a new one.
type MultisigAccount struct {
	Version   uint8
	Threshold uint8
	Pks       []types.PublicKey
}

// MakeMultisigAccount validates and constructs a multisig pre-image.
func MakeMultisigAccount(version, threshold uint8, pks []types.PublicKey) (MultisigAccount, error) {
	ma := MultisigAccount{Version: version, Threshold: threshold, Pks: append([]types.PublicKey{}, pks...)}
	if err := ma.Validate(); err != nil {
		return MultisigAccount{}, err
	}
	return ma, nil
}

// Validate reports whether the pre-image itself is well-formed,
// independent of any signatures.
func (ma MultisigAccount) Validate() error {
	if ma.Version != 1 {
		return types.NewMultisigError(fmt.Sprintf("unsupported multisig version %d", ma.Version))
	}
	if len(ma.Pks) == 0 {
		return types.NewMultisigError("multisig account has no public keys")
	}
	if ma.Threshold == 0 || int(ma.Threshold) > len(ma.Pks) {
		return types.NewMultisigError(fmt.Sprintf("threshold %d invalid for %d keys", ma.Threshold, len(ma.Pks)))
	}
	return nil
}

// Address derives the multisig account's address:
// H("MultisigAddr" || version || threshold || pk1 || ... || pkn).
func (ma MultisigAccount) Address() (types.Address, error) {
	if err := ma.Validate(); err != nil {
		return types.Address{}, err
	}
	preimage := make([]byte, 0, len(multisigAddrPrefix)+2+32*len(ma.Pks))
	preimage = append(preimage, multisigAddrPrefix...)
	preimage = append(preimage, ma.Version, ma.Threshold)
	for _, pk := range ma.Pks {
		preimage = append(preimage, pk[:]...)
	}
	hash := GenericHash(preimage)
	var addr types.Address
	copy(addr[:], hash[:])
	return addr, nil
}

func (ma MultisigAccount) indexOf(pk types.PublicKey) int {
	for i, p := range ma.Pks {
		if p == pk {
			return i
		}
	}
	return -1
}

func (ma MultisigAccount) emptySig() types.MultisigSig {
	subsigs := make([]types.MultisigSubsig, len(ma.Pks))
	for i, pk := range ma.Pks {
		subsigs[i] = types.MultisigSubsig{Key: pk}
	}
	return types.MultisigSig{Version: ma.Version, Threshold: ma.Threshold, Subsigs: subsigs}
}

// multisigAccountFromSig reconstructs the pre-image carried inside an
// already-built MultisigSig, for merge and verify.
func multisigAccountFromSig(msig types.MultisigSig) MultisigAccount {
	pks := make([]types.PublicKey, len(msig.Subsigs))
	for i, s := range msig.Subsigs {
		pks[i] = s.Key
	}
	return MultisigAccount{Version: msig.Version, Threshold: msig.Threshold, Pks: pks}
}

func signedTxnWithMsig(tx types.Transaction, ma MultisigAccount, msig types.MultisigSig) ([]byte, error) {
	addr, err := ma.Address()
	if err != nil {
		return nil, err
	}
	stx := types.SignedTxn{Txn: tx, Msig: msig}
	if addr != tx.Sender {
		stx.AuthAddr = addr
	}
	m, err := types.MarshalSignedTxnCanonical(stx)
	if err != nil {
		return nil, err
	}
	return msgpack.Encode(m), nil
}

// MakeEmptyMultisigBlob builds the unsigned multisig envelope for tx:
// every subsig slot carries a public key and no signature.
func MakeEmptyMultisigBlob(tx types.Transaction, ma MultisigAccount) ([]byte, error) {
	if err := ma.Validate(); err != nil {
		return nil, err
	}
	return signedTxnWithMsig(tx, ma, ma.emptySig())
}

// SignMultisigTransaction partial-signs tx with sk, whose public key
// must appear in ma.Pks, and returns the multisig address together
// with the resulting blob.
func SignMultisigTransaction(sk ed25519.PrivateKey, ma MultisigAccount, tx types.Transaction) (types.Address, []byte, error) {
	if err := ma.Validate(); err != nil {
		return types.Address{}, nil, err
	}
	signerAddr, err := KeypairFromSecret(sk)
	if err != nil {
		return types.Address{}, nil, err
	}
	idx := ma.indexOf(types.PublicKey(signerAddr))
	if idx < 0 {
		return types.Address{}, nil, types.NewMultisigError("signing key not present in multisig pre-image")
	}

	toSign, err := RawTransactionBytesToSign(tx)
	if err != nil {
		return types.Address{}, nil, err
	}
	sig, err := RawSignBytes(sk, toSign)
	if err != nil {
		return types.Address{}, nil, err
	}

	msig := ma.emptySig()
	msig.Subsigs[idx].Sig = sig

	addr, err := ma.Address()
	if err != nil {
		return types.Address{}, nil, err
	}
	blob, err := signedTxnWithMsig(tx, ma, msig)
	if err != nil {
		return types.Address{}, nil, err
	}
	return addr, blob, nil
}

// AttachMultisigSignature partial-signs tx with an externally produced
// signature from signerAddr, whose public key must appear in ma.Pks.
func AttachMultisigSignature(ma MultisigAccount, tx types.Transaction, signerAddr types.Address, sig types.Signature) (types.Address, []byte, error) {
	if err := ma.Validate(); err != nil {
		return types.Address{}, nil, err
	}
	if !ValidSignatureLength(sig[:]) {
		return types.Address{}, nil, types.NewMultisigError("signature has wrong length")
	}
	idx := ma.indexOf(types.PublicKey(signerAddr))
	if idx < 0 {
		return types.Address{}, nil, types.NewMultisigError("signing key not present in multisig pre-image")
	}

	msig := ma.emptySig()
	msig.Subsigs[idx].Sig = sig

	addr, err := ma.Address()
	if err != nil {
		return types.Address{}, nil, err
	}
	blob, err := signedTxnWithMsig(tx, ma, msig)
	if err != nil {
		return types.Address{}, nil, err
	}
	return addr, blob, nil
}

// MergeMultisigTransactions merges two or more partially-signed
// multisig blobs into one. Every blob must refer to the same
// transaction (by txID), the same auth-address and the same multisig
// pre-image; signatures present in more than one blob for the same
// slot must agree bit-for-bit. The merge is commutative, associative
// and idempotent on conflict-free input — a conflict is always a
// fatal error, never a choice the merge makes for the caller.
func MergeMultisigTransactions(blobs ...[]byte) ([]byte, error) {
	if len(blobs) < 2 {
		return nil, types.NewMultisigError("need at least two multisig transactions to merge")
	}

	var ref types.SignedTxn
	m, err := msgpack.DecodeToMap(blobs[0])
	if err != nil {
		return nil, fmt.Errorf("crypto: decoding blob 0: %w", err)
	}
	ref, err = types.UnmarshalSignedTxnCanonical(m)
	if err != nil {
		return nil, err
	}
	if len(ref.Msig.Subsigs) == 0 {
		return nil, types.NewMultisigError("blob 0 carries no multisig")
	}
	refID, err := TransactionID(ref.Txn)
	if err != nil {
		return nil, err
	}
	refAddr, err := multisigAccountFromSig(ref.Msig).Address()
	if err != nil {
		return nil, err
	}

	merged := ref.Msig

	for i := 1; i < len(blobs); i++ {
		m, err := msgpack.DecodeToMap(blobs[i])
		if err != nil {
			return nil, fmt.Errorf("crypto: decoding blob %d: %w", i, err)
		}
		next, err := types.UnmarshalSignedTxnCanonical(m)
		if err != nil {
			return nil, err
		}
		if len(next.Msig.Subsigs) == 0 {
			return nil, types.NewMultisigError(fmt.Sprintf("blob %d carries no multisig", i))
		}

		nextID, err := TransactionID(next.Txn)
		if err != nil {
			return nil, err
		}
		if nextID != refID {
			return nil, types.NewMultisigError(fmt.Sprintf("blob %d: transaction ID mismatch", i))
		}
		if next.AuthAddr != ref.AuthAddr {
			return nil, types.NewMultisigError(fmt.Sprintf("blob %d: auth-address mismatch", i))
		}
		if next.Msig.Version != merged.Version || next.Msig.Threshold != merged.Threshold {
			return nil, types.NewMultisigError(fmt.Sprintf("blob %d: multisig pre-image mismatch", i))
		}
		if len(next.Msig.Subsigs) != len(merged.Subsigs) {
			return nil, types.NewMultisigError(fmt.Sprintf("blob %d: subsig count mismatch", i))
		}
		nextAddr, err := multisigAccountFromSig(next.Msig).Address()
		if err != nil {
			return nil, err
		}
		if nextAddr != refAddr {
			return nil, types.NewMultisigError(fmt.Sprintf("blob %d: multisig address mismatch", i))
		}

		for slot := range merged.Subsigs {
			if merged.Subsigs[slot].Key != next.Msig.Subsigs[slot].Key {
				return nil, types.NewMultisigError(fmt.Sprintf("blob %d: subsig %d key mismatch", i, slot))
			}
			nextSig := next.Msig.Subsigs[slot].Sig
			if nextSig.IsZero() {
				continue
			}
			if merged.Subsigs[slot].Sig.IsZero() {
				merged.Subsigs[slot].Sig = nextSig
			} else if merged.Subsigs[slot].Sig != nextSig {
				return nil, types.NewMultisigError(fmt.Sprintf("conflicting signatures at subsig slot %d", slot))
			}
		}
	}

	out := types.SignedTxn{Txn: ref.Txn, Msig: merged, AuthAddr: ref.AuthAddr}
	encoded, err := types.MarshalSignedTxnCanonical(out)
	if err != nil {
		return nil, err
	}
	return msgpack.Encode(encoded), nil
}

// VerifyMultisig reports whether msig satisfies expected: the
// pre-image must derive to expected, at least Threshold slots must
// carry a signature, and every carried signature must verify against
// toBeSigned under its own slot's public key. Slots with no signature
// are ignored.
func VerifyMultisig(toBeSigned []byte, msig types.MultisigSig, expected types.Address) bool {
	addr, err := multisigAccountFromSig(msig).Address()
	if err != nil || addr != expected {
		return false
	}

	signed := 0
	for _, sub := range msig.Subsigs {
		if sub.Sig.IsZero() {
			continue
		}
		if !VerifyBytes(sub.Key, toBeSigned, sub.Sig) {
			return false
		}
		signed++
	}
	return signed >= int(msig.Threshold)
}

// AppendMultisigSignature decodes an existing multisig blob,
// partial-signs its transaction with sk and merges the result back
// into the original. It returns the stable transaction ID and the new
// blob.
func AppendMultisigSignature(sk ed25519.PrivateKey, ma MultisigAccount, blob []byte) (types.Digest, []byte, error) {
	m, err := msgpack.DecodeToMap(blob)
	if err != nil {
		return types.Digest{}, nil, fmt.Errorf("crypto: decoding multisig blob: %w", err)
	}
	existing, err := types.UnmarshalSignedTxnCanonical(m)
	if err != nil {
		return types.Digest{}, nil, err
	}

	_, freshBlob, err := SignMultisigTransaction(sk, ma, existing.Txn)
	if err != nil {
		return types.Digest{}, nil, err
	}

	merged, err := MergeMultisigTransactions(blob, freshBlob)
	if err != nil {
		return types.Digest{}, nil, err
	}

	txID, err := TransactionID(existing.Txn)
	if err != nil {
		return types.Digest{}, nil, err
	}
	return txID, merged, nil
}
