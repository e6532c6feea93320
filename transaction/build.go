package transaction

import (
	"github.com/algoshant/algotxn/encoding/msgpack"
	"github.com/algoshant/algotxn/types"
)

// signingOverheadBytes is the fixed per-transaction overhead added to
// the canonically-encoded size before multiplying by the suggested
// fee-per-byte: room for the "sig" field that does not yet exist on the
// unsigned transaction being sized.
const signingOverheadBytes = 75

// fixed32 converts an optional, variable-length byte slice into a
// types.Digest, enforcing exact length when non-empty and leaving the
// zero value when b is empty. An all-zero 32-byte input is accepted
// here — the canonical encoder is what elides an all-zero Lease,
// MetadataHash or GenesisHash-adjacent field to absent on the wire.
func fixed32(field string, b []byte) (types.Digest, error) {
	var d types.Digest
	if len(b) == 0 {
		return d, nil
	}
	if len(b) != 32 {
		return d, types.NewValidationError(field, "must be exactly 32 bytes")
	}
	copy(d[:], b)
	return d, nil
}

// requiredFixed32 is fixed32 for fields the construction contract
// requires to be present (currently only GenesisHash).
func requiredFixed32(field string, b []byte) (types.Digest, error) {
	if len(b) == 0 {
		return types.Digest{}, types.NewValidationError(field, "is required")
	}
	return fixed32(field, b)
}

// optionalAddress resolves a *types.Address construction-time argument
// to the wire-level Address value: nil means absent (the zero value),
// and a non-nil pointer to the zero address is rejected outright — the
// construction contract distinguishes "not provided" from "provided as
// the zero address" only this way, since both collapse to the same
// on-the-wire value once accepted.
func optionalAddress(field string, a *types.Address) (types.Address, error) {
	if a == nil {
		return types.Address{}, nil
	}
	if a.IsZero() {
		return types.Address{}, types.NewValidationError(field, "must be omitted (nil), not the zero address")
	}
	return *a, nil
}

// buildHeader assembles the fields common to every transaction type and
// runs the checks the construction contract applies to all of them.
func buildHeader(txType types.TxType, sender types.Address, note []byte, lease []byte, rekeyTo *types.Address, sp SuggestedParams) (types.Header, error) {
	if !txType.Valid() {
		return types.Header{}, types.NewValidationError("type", "unknown transaction type")
	}
	if sender.IsZero() {
		return types.Header{}, types.NewValidationError("sender", "is required")
	}

	gh, err := requiredFixed32("genesisHash", sp.GenesisHash)
	if err != nil {
		return types.Header{}, err
	}
	lx, err := fixed32("lease", lease)
	if err != nil {
		return types.Header{}, err
	}
	rekey, err := optionalAddress("rekeyTo", rekeyTo)
	if err != nil {
		return types.Header{}, err
	}

	return types.Header{
		Sender:      sender,
		FirstValid:  sp.FirstRoundValid,
		LastValid:   sp.LastRoundValid,
		Note:        append([]byte{}, note...),
		GenesisID:   sp.GenesisID,
		GenesisHash: gh,
		Lease:       lx,
		RekeyTo:     rekey,
	}, nil
}

// resolveFee implements the fee computation rule: a flat fee is taken
// verbatim; otherwise the transaction is canonically encoded once, with
// Fee still zero, to measure its size, and
// fee = suggestedFeePerByte * (encodedSize + signingOverheadBytes),
// clamped upward to MinFee. The transaction's Fee field is set exactly
// once, after which the encoding is never recomputed — a later change
// to any other field would silently invalidate this fee, but nothing in
// this core allows that: Transaction is immutable past this point save
// for Group.
func resolveFee(tx *types.Transaction, sp SuggestedParams) error {
	if sp.FlatFee {
		tx.Fee = sp.Fee
	} else {
		encoded, err := encodedSize(*tx)
		if err != nil {
			return err
		}
		tx.Fee = types.MicroAlgos(uint64(sp.Fee) * uint64(encoded+signingOverheadBytes))
	}
	if uint64(tx.Fee) < sp.MinFee {
		tx.Fee = types.MicroAlgos(sp.MinFee)
	}
	return nil
}

func encodedSize(tx types.Transaction) (int, error) {
	m, err := types.MarshalCanonical(tx)
	if err != nil {
		return 0, err
	}
	return len(msgpack.Encode(m)), nil
}
