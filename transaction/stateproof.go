package transaction

import "github.com/algoshant/algotxn/types"

// MakeStateProofTxn builds a state proof transaction. Unlike every
// other variant, its proof and message fields are always present on
// the wire, even empty — see types.MarshalCanonical. State proof
// transactions have no true sender (the zero address is legitimate
// here, unlike every other variant) and carry no fee: they are
// unauthenticated network artifacts, not submitted by any account.
func MakeStateProofTxn(stateProofType uint64, stateProof, stateProofMessage []byte, sp SuggestedParams) (types.Transaction, error) {
	if !types.StateProofTx.Valid() {
		return types.Transaction{}, types.NewValidationError("type", "unknown transaction type")
	}
	gh, err := requiredFixed32("genesisHash", sp.GenesisHash)
	if err != nil {
		return types.Transaction{}, err
	}

	tx := types.Transaction{
		Type: types.StateProofTx,
		Header: types.Header{
			FirstValid:  sp.FirstRoundValid,
			LastValid:   sp.LastRoundValid,
			GenesisID:   sp.GenesisID,
			GenesisHash: gh,
		},
		StateProofTxnFields: types.StateProofTxnFields{
			StateProofType:    stateProofType,
			StateProof:        append([]byte{}, stateProof...),
			StateProofMessage: append([]byte{}, stateProofMessage...),
		},
	}
	return tx, nil
}
