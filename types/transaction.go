package types

// PaymentTxnFields captures the fields used by payment transactions.
type PaymentTxnFields struct {
	Receiver         Address    `codec:"rcv"`
	Amount           MicroAlgos `codec:"amt"`
	CloseRemainderTo Address    `codec:"close"`
}

// Header captures the fields common to every transaction type.
type Header struct {
	Sender      Address    `codec:"snd"`
	Fee         MicroAlgos `codec:"fee"`
	FirstValid  Round      `codec:"fv"`
	LastValid   Round      `codec:"lv"`
	Note        []byte     `codec:"note"`
	GenesisID   string     `codec:"gen"`
	GenesisHash Digest     `codec:"gh"`

	// Group, when nonzero, is the hash of the group of transactions
	// this one must be committed alongside. It is the sole field a
	// Transaction may have set after construction — by a grouping step
	// external to this core.
	Group Digest `codec:"grp"`

	// Lease, when nonzero, prevents another transaction carrying the
	// same (Sender, Lease) pair from being confirmed before LastValid.
	Lease Digest `codec:"lx"`

	// RekeyTo, when nonzero, changes the sender's authorizing address.
	// The zero address is forbidden here; use the absent value instead.
	RekeyTo Address `codec:"rekey"`
}

// Transaction is a single Algorand transaction. Exactly one of the
// seven embedded variant-field structs is populated, selected by Type.
// A Transaction is immutable after construction, with the sole
// exception of Group.
type Transaction struct {
	Type TxType `codec:"type"`

	Header

	KeyregTxnFields
	PaymentTxnFields
	AssetConfigTxnFields
	AssetTransferTxnFields
	AssetFreezeTxnFields
	ApplicationCallTxnFields
	StateProofTxnFields
}
