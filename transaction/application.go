package transaction

import "github.com/algoshant/algotxn/types"

// ApplicationCallParams groups the fields common to every application
// call transaction regardless of OnCompletion action.
type ApplicationCallParams struct {
	ApplicationID     uint64
	OnCompletion      types.OnCompletion
	ApprovalProgram   []byte
	ClearStateProgram []byte
	LocalStateSchema  types.StateSchema
	GlobalStateSchema types.StateSchema
	ExtraProgramPages uint32
	Args              [][]byte
	Accounts          []types.Address
	ForeignApps       []uint64
	ForeignAssets     []uint64
	Boxes             []types.BoxReference
}

// MakeApplicationCallTxn builds an application call transaction. Create
// (ApplicationID == 0) requires both programs; update
// (OnCompletion == UpdateApplicationOC) requires both programs and
// forbids ApplicationID == 0; every other action forbids both programs
// and requires an existing ApplicationID.
func MakeApplicationCallTxn(sender types.Address, note []byte, params ApplicationCallParams, lease []byte, rekeyTo *types.Address, sp SuggestedParams) (types.Transaction, error) {
	creating := params.ApplicationID == 0
	updating := params.OnCompletion == types.UpdateApplicationOC

	if creating && updating {
		return types.Transaction{}, types.NewValidationError("applicationID", "is required to update an application")
	}
	if creating {
		if len(params.ApprovalProgram) == 0 || len(params.ClearStateProgram) == 0 {
			return types.Transaction{}, types.NewValidationError("approvalProgram/clearStateProgram", "both required to create an application")
		}
	} else if updating {
		if len(params.ApprovalProgram) == 0 || len(params.ClearStateProgram) == 0 {
			return types.Transaction{}, types.NewValidationError("approvalProgram/clearStateProgram", "both required to update an application")
		}
	} else if len(params.ApprovalProgram) > 0 || len(params.ClearStateProgram) > 0 {
		return types.Transaction{}, types.NewValidationError("approvalProgram/clearStateProgram", "must be absent outside create and update")
	}

	header, err := buildHeader(types.ApplicationCallTx, sender, note, lease, rekeyTo, sp)
	if err != nil {
		return types.Transaction{}, err
	}

	foreignApps := make([]types.AppIndex, len(params.ForeignApps))
	for i, id := range params.ForeignApps {
		foreignApps[i] = types.AppIndex(id)
	}
	foreignAssets := make([]types.AssetIndex, len(params.ForeignAssets))
	for i, id := range params.ForeignAssets {
		foreignAssets[i] = types.AssetIndex(id)
	}

	tx := types.Transaction{
		Type:   types.ApplicationCallTx,
		Header: header,
		ApplicationCallTxnFields: types.ApplicationCallTxnFields{
			ApplicationID:     types.AppIndex(params.ApplicationID),
			OnCompletion:      params.OnCompletion,
			ApplicationArgs:   copyByteSlices(params.Args),
			Accounts:          append([]types.Address{}, params.Accounts...),
			ForeignApps:       foreignApps,
			ForeignAssets:     foreignAssets,
			Boxes:             append([]types.BoxReference{}, params.Boxes...),
			LocalStateSchema:  params.LocalStateSchema,
			GlobalStateSchema: params.GlobalStateSchema,
			ApprovalProgram:   append([]byte{}, params.ApprovalProgram...),
			ClearStateProgram: append([]byte{}, params.ClearStateProgram...),
			ExtraProgramPages: params.ExtraProgramPages,
		},
	}
	if err := resolveFee(&tx, sp); err != nil {
		return types.Transaction{}, err
	}
	return tx, nil
}

func copyByteSlices(in [][]byte) [][]byte {
	if len(in) == 0 {
		return nil
	}
	out := make([][]byte, len(in))
	for i, b := range in {
		out[i] = append([]byte{}, b...)
	}
	return out
}
