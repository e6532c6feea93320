package types

// TxType is the discriminant of a Transaction's variant payload. It is
// also the literal value serialized under the "type" key.
type TxType string

const (
	// PaymentTx moves Algos from one account to another.
	PaymentTx TxType = "pay"
	// KeyRegistrationTx registers (or deregisters) participation keys.
	KeyRegistrationTx TxType = "keyreg"
	// AssetConfigTx creates, reconfigures or destroys an asset.
	AssetConfigTx TxType = "acfg"
	// AssetTransferTx moves units of an asset between accounts.
	AssetTransferTx TxType = "axfer"
	// AssetFreezeTx freezes or unfreezes an account's asset holding.
	AssetFreezeTx TxType = "afrz"
	// ApplicationCallTx invokes or manages a smart contract.
	ApplicationCallTx TxType = "appl"
	// StateProofTx carries a compact state proof.
	StateProofTx TxType = "stpf"
)

// knownTxTypes enumerates every TxType the core accepts at construction.
var knownTxTypes = map[TxType]bool{
	PaymentTx:          true,
	KeyRegistrationTx:  true,
	AssetConfigTx:      true,
	AssetTransferTx:    true,
	AssetFreezeTx:      true,
	ApplicationCallTx:  true,
	StateProofTx:       true,
}

// Valid reports whether t is one of the seven supported transaction
// kinds.
func (t TxType) Valid() bool {
	return knownTxTypes[t]
}
