package transaction

import "github.com/algoshant/algotxn/types"

// MakeKeyRegTxn builds an online key registration transaction: the
// account's participation keys become votePK/selectionPK/stateProofPK,
// valid from voteFirst through voteLast with the given key dilution.
func MakeKeyRegTxn(sender types.Address, note []byte, votePK types.VotePK, selectionPK types.VRFPK, stateProofPK types.MerkleVerifier, voteFirst, voteLast types.Round, voteKeyDilution uint64, lease []byte, rekeyTo *types.Address, sp SuggestedParams) (types.Transaction, error) {
	header, err := buildHeader(types.KeyRegistrationTx, sender, note, lease, rekeyTo, sp)
	if err != nil {
		return types.Transaction{}, err
	}
	if votePK.IsZero() || selectionPK.IsZero() {
		return types.Transaction{}, types.NewValidationError("votePK/selectionPK", "required for online key registration")
	}
	if voteKeyDilution == 0 {
		return types.Transaction{}, types.NewValidationError("voteKeyDilution", "is required for online key registration")
	}
	if voteLast <= voteFirst {
		return types.Transaction{}, types.NewValidationError("voteLast", "must be greater than voteFirst")
	}

	tx := types.Transaction{
		Type:   types.KeyRegistrationTx,
		Header: header,
		KeyregTxnFields: types.KeyregTxnFields{
			VotePK:          votePK,
			SelectionPK:     selectionPK,
			StateProofPK:    stateProofPK,
			VoteFirst:       voteFirst,
			VoteLast:        voteLast,
			VoteKeyDilution: voteKeyDilution,
		},
	}
	if err := resolveFee(&tx, sp); err != nil {
		return types.Transaction{}, err
	}
	return tx, nil
}

// MakeKeyRegTxnOffline builds an offline key registration transaction:
// every participation field is absent, taking the account out of
// consensus participation.
func MakeKeyRegTxnOffline(sender types.Address, note []byte, lease []byte, rekeyTo *types.Address, sp SuggestedParams) (types.Transaction, error) {
	header, err := buildHeader(types.KeyRegistrationTx, sender, note, lease, rekeyTo, sp)
	if err != nil {
		return types.Transaction{}, err
	}

	tx := types.Transaction{Type: types.KeyRegistrationTx, Header: header}
	if err := resolveFee(&tx, sp); err != nil {
		return types.Transaction{}, err
	}
	return tx, nil
}

// MakeKeyRegTxnNonparticipating builds a key registration transaction
// that permanently marks the account as never participating again. It
// cannot be undone by a later key registration transaction.
func MakeKeyRegTxnNonparticipating(sender types.Address, note []byte, lease []byte, rekeyTo *types.Address, sp SuggestedParams) (types.Transaction, error) {
	header, err := buildHeader(types.KeyRegistrationTx, sender, note, lease, rekeyTo, sp)
	if err != nil {
		return types.Transaction{}, err
	}

	tx := types.Transaction{
		Type:            types.KeyRegistrationTx,
		Header:          header,
		KeyregTxnFields: types.KeyregTxnFields{Nonparticipation: true},
	}
	if err := resolveFee(&tx, sp); err != nil {
		return types.Transaction{}, err
	}
	return tx, nil
}
