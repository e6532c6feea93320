package transaction

import "github.com/algoshant/algotxn/types"

// AssetParams mirrors types.AssetParams as constructor input, letting
// callers of MakeAssetCreateTxn/MakeAssetConfigTxn pass manager-class
// addresses as optional (nil-able) values.
type AssetParams struct {
	Total         uint64
	Decimals      uint32
	DefaultFrozen bool
	Manager       *types.Address
	Reserve       *types.Address
	Freeze        *types.Address
	Clawback      *types.Address
	UnitName      string
	AssetName     string
	URL           string
	MetadataHash  []byte
}

func (p AssetParams) resolve() (types.AssetParams, error) {
	manager, err := optionalAddress("manager", p.Manager)
	if err != nil {
		return types.AssetParams{}, err
	}
	reserve, err := optionalAddress("reserve", p.Reserve)
	if err != nil {
		return types.AssetParams{}, err
	}
	freeze, err := optionalAddress("freeze", p.Freeze)
	if err != nil {
		return types.AssetParams{}, err
	}
	clawback, err := optionalAddress("clawback", p.Clawback)
	if err != nil {
		return types.AssetParams{}, err
	}
	metadataHash, err := fixed32("metadataHash", p.MetadataHash)
	if err != nil {
		return types.AssetParams{}, err
	}
	if len(p.UnitName) > 8 {
		return types.AssetParams{}, types.NewValidationError("unitName", "must be at most 8 bytes")
	}
	if len(p.AssetName) > 32 {
		return types.AssetParams{}, types.NewValidationError("assetName", "must be at most 32 bytes")
	}
	if len(p.URL) > 96 {
		return types.AssetParams{}, types.NewValidationError("url", "must be at most 96 bytes")
	}
	return types.AssetParams{
		Total:         p.Total,
		Decimals:      p.Decimals,
		DefaultFrozen: p.DefaultFrozen,
		Manager:       manager,
		Reserve:       reserve,
		Freeze:        freeze,
		Clawback:      clawback,
		UnitName:      p.UnitName,
		AssetName:     p.AssetName,
		URL:           p.URL,
		MetadataHash:  metadataHash,
	}, nil
}

// MakeAssetCreateTxn builds an asset creation transaction: an acfg
// transaction with ConfigAsset absent (zero).
func MakeAssetCreateTxn(sender types.Address, note []byte, params AssetParams, lease []byte, rekeyTo *types.Address, sp SuggestedParams) (types.Transaction, error) {
	if params.Total == 0 {
		return types.Transaction{}, types.NewValidationError("total", "must be nonzero for asset creation")
	}
	return buildAssetConfigTxn(sender, note, 0, params, lease, rekeyTo, sp)
}

// MakeAssetConfigTxn builds an asset reconfiguration transaction: an
// acfg transaction naming an existing asset's index and the new
// manager-class parameters. Total, decimals, default-frozen, unit name,
// asset name, URL and metadata hash are immutable after creation and
// are not accepted here.
func MakeAssetConfigTxn(sender types.Address, note []byte, index uint64, manager, reserve, freeze, clawback *types.Address, lease []byte, rekeyTo *types.Address, sp SuggestedParams) (types.Transaction, error) {
	if index == 0 {
		return types.Transaction{}, types.NewValidationError("index", "is required to reconfigure an existing asset")
	}
	params := AssetParams{Manager: manager, Reserve: reserve, Freeze: freeze, Clawback: clawback}
	return buildAssetConfigTxn(sender, note, index, params, lease, rekeyTo, sp)
}

// MakeAssetDestroyTxn builds an asset destruction transaction: an acfg
// transaction naming an existing asset's index and no parameters. Only
// the asset's manager may submit it, and only once its circulating
// supply is entirely held by the creator.
func MakeAssetDestroyTxn(sender types.Address, note []byte, index uint64, lease []byte, rekeyTo *types.Address, sp SuggestedParams) (types.Transaction, error) {
	if index == 0 {
		return types.Transaction{}, types.NewValidationError("index", "is required to destroy an existing asset")
	}
	return buildAssetConfigTxn(sender, note, index, AssetParams{}, lease, rekeyTo, sp)
}

func buildAssetConfigTxn(sender types.Address, note []byte, index uint64, params AssetParams, lease []byte, rekeyTo *types.Address, sp SuggestedParams) (types.Transaction, error) {
	header, err := buildHeader(types.AssetConfigTx, sender, note, lease, rekeyTo, sp)
	if err != nil {
		return types.Transaction{}, err
	}
	resolved, err := params.resolve()
	if err != nil {
		return types.Transaction{}, err
	}

	tx := types.Transaction{
		Type:   types.AssetConfigTx,
		Header: header,
		AssetConfigTxnFields: types.AssetConfigTxnFields{
			ConfigAsset: types.AssetIndex(index),
			AssetParams: resolved,
		},
	}
	if err := resolveFee(&tx, sp); err != nil {
		return types.Transaction{}, err
	}
	return tx, nil
}

// MakeAssetTransferTxn builds an asset transfer transaction moving
// amount units of asset index from sender to receiver.
func MakeAssetTransferTxn(sender, receiver types.Address, amount uint64, note []byte, index uint64, closeTo *types.Address, lease []byte, rekeyTo *types.Address, sp SuggestedParams) (types.Transaction, error) {
	if receiver.IsZero() {
		return types.Transaction{}, types.NewValidationError("receiver", "is required")
	}
	if index == 0 {
		return types.Transaction{}, types.NewValidationError("index", "is required")
	}
	header, err := buildHeader(types.AssetTransferTx, sender, note, lease, rekeyTo, sp)
	if err != nil {
		return types.Transaction{}, err
	}
	closeAddr, err := optionalAddress("closeTo", closeTo)
	if err != nil {
		return types.Transaction{}, err
	}

	tx := types.Transaction{
		Type:   types.AssetTransferTx,
		Header: header,
		AssetTransferTxnFields: types.AssetTransferTxnFields{
			XferAsset:     types.AssetIndex(index),
			AssetAmount:   amount,
			AssetReceiver: receiver,
			AssetCloseTo:  closeAddr,
		},
	}
	if err := resolveFee(&tx, sp); err != nil {
		return types.Transaction{}, err
	}
	return tx, nil
}

// MakeAssetAcceptanceTxn builds the zero-amount self-transfer that opts
// sender in to holding asset index.
func MakeAssetAcceptanceTxn(sender types.Address, note []byte, index uint64, lease []byte, rekeyTo *types.Address, sp SuggestedParams) (types.Transaction, error) {
	return MakeAssetTransferTxn(sender, sender, 0, note, index, nil, lease, rekeyTo, sp)
}

// MakeAssetRevocationTxn builds a clawback transaction: sender (the
// asset's clawback address) moves amount units of asset index out of
// target's holding and into recipient, without target's authorization.
func MakeAssetRevocationTxn(sender, target, recipient types.Address, amount uint64, note []byte, index uint64, lease []byte, rekeyTo *types.Address, sp SuggestedParams) (types.Transaction, error) {
	if target.IsZero() {
		return types.Transaction{}, types.NewValidationError("target", "is required")
	}
	if recipient.IsZero() {
		return types.Transaction{}, types.NewValidationError("recipient", "is required")
	}
	if index == 0 {
		return types.Transaction{}, types.NewValidationError("index", "is required")
	}
	header, err := buildHeader(types.AssetTransferTx, sender, note, lease, rekeyTo, sp)
	if err != nil {
		return types.Transaction{}, err
	}

	tx := types.Transaction{
		Type:   types.AssetTransferTx,
		Header: header,
		AssetTransferTxnFields: types.AssetTransferTxnFields{
			XferAsset:     types.AssetIndex(index),
			AssetAmount:   amount,
			AssetSender:   target,
			AssetReceiver: recipient,
		},
	}
	if err := resolveFee(&tx, sp); err != nil {
		return types.Transaction{}, err
	}
	return tx, nil
}

// MakeAssetFreezeTxn builds a transaction that sets target's frozen
// state for asset index. Only the asset's freeze address may submit it.
func MakeAssetFreezeTxn(sender, target types.Address, note []byte, index uint64, frozen bool, lease []byte, rekeyTo *types.Address, sp SuggestedParams) (types.Transaction, error) {
	if target.IsZero() {
		return types.Transaction{}, types.NewValidationError("target", "is required")
	}
	if index == 0 {
		return types.Transaction{}, types.NewValidationError("index", "is required")
	}
	header, err := buildHeader(types.AssetFreezeTx, sender, note, lease, rekeyTo, sp)
	if err != nil {
		return types.Transaction{}, err
	}

	tx := types.Transaction{
		Type:   types.AssetFreezeTx,
		Header: header,
		AssetFreezeTxnFields: types.AssetFreezeTxnFields{
			FreezeAccount: target,
			FreezeAsset:   types.AssetIndex(index),
			AssetFrozen:   frozen,
		},
	}
	if err := resolveFee(&tx, sp); err != nil {
		return types.Transaction{}, err
	}
	return tx, nil
}
