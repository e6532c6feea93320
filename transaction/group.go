package transaction

import (
	"github.com/algoshant/algotxn/crypto"
	"github.com/algoshant/algotxn/encoding/msgpack"
	"github.com/algoshant/algotxn/types"
)

const groupHashPrefix = "TG"

// AssignGroupID computes the group ID for an atomic group of
// transactions and returns a copy of txns with Group set on each one.
// Every transaction's Group field must be zero beforehand; the ID is
// the generic hash of "TG" followed by the canonical msgpack encoding
// of {txlist: [...]}, where each entry is the group-relative
// transaction with its own Group field left zero during hashing.
func AssignGroupID(txns []types.Transaction) ([]types.Transaction, error) {
	if len(txns) == 0 {
		return nil, types.NewValidationError("txns", "group must contain at least one transaction")
	}
	for _, tx := range txns {
		if !tx.Group.IsZero() {
			return nil, types.NewValidationError("txns", "transaction already belongs to a group")
		}
	}

	ids := make([]map[string]interface{}, len(txns))
	for i, tx := range txns {
		m, err := types.MarshalCanonical(tx)
		if err != nil {
			return nil, err
		}
		ids[i] = m
	}

	toHash := map[string]interface{}{"txlist": ids}
	encoded := msgpack.Encode(toHash)
	out := make([]byte, 0, len(groupHashPrefix)+len(encoded))
	out = append(out, groupHashPrefix...)
	out = append(out, encoded...)
	gid := crypto.GenericHash(out)

	assigned := make([]types.Transaction, len(txns))
	for i, tx := range txns {
		tx.Group = gid
		assigned[i] = tx
	}
	return assigned, nil
}
