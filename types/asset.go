package types

// AssetParams describes the parameters of an asset, used both when
// creating an asset and when reporting its current configuration.
type AssetParams struct {
	Total         uint64  `codec:"t"`
	Decimals      uint32  `codec:"dc"`
	DefaultFrozen bool    `codec:"df"`
	Manager       Address `codec:"m"`
	Reserve       Address `codec:"r"`
	Freeze        Address `codec:"f"`
	Clawback      Address `codec:"c"`
	UnitName      string  `codec:"un"`
	AssetName     string  `codec:"an"`
	URL           string  `codec:"au"`
	MetadataHash  Digest  `codec:"am"`
}

// AssetConfigTxnFields captures the fields used for asset creation,
// reconfiguration and destruction.
type AssetConfigTxnFields struct {
	ConfigAsset AssetIndex  `codec:"caid"`
	AssetParams AssetParams `codec:"apar"`
}

// AssetTransferTxnFields captures the fields used for asset transfers,
// opt-ins, closes and clawbacks.
type AssetTransferTxnFields struct {
	XferAsset        AssetIndex `codec:"xaid"`
	AssetAmount      uint64     `codec:"aamt"`
	AssetSender      Address    `codec:"asnd"`
	AssetReceiver    Address    `codec:"arcv"`
	AssetCloseTo     Address    `codec:"aclose"`
}

// AssetFreezeTxnFields captures the fields used for freezing and
// unfreezing an account's asset holding.
type AssetFreezeTxnFields struct {
	FreezeAccount Address    `codec:"fadd"`
	FreezeAsset   AssetIndex `codec:"faid"`
	AssetFrozen   bool       `codec:"afrz"`
}
