package types

import "fmt"

// MarshalCanonical maps a Transaction to the canonical, default-elided
// key/value structure described in the wire format: every field is
// considered independently and included only if it differs from its
// type's zero value, except StateProofMessage and StateProof on a stpf
// transaction, which are always included (see stateproof.go). The
// resulting map is handed to the msgpack encoder with canonical
// (lexicographic) key ordering turned on; this function never sorts or
// filters after the fact, it decides per field as it goes.
func MarshalCanonical(tx Transaction) (map[string]interface{}, error) {
	m := map[string]interface{}{
		"type": string(tx.Type),
	}

	addAddress(m, "snd", tx.Sender)
	addU64(m, "fee", uint64(tx.Fee))
	addU64(m, "fv", uint64(tx.FirstValid))
	addU64(m, "lv", uint64(tx.LastValid))
	addBytes(m, "note", tx.Note)
	addString(m, "gen", tx.GenesisID)
	addDigest(m, "gh", tx.GenesisHash)
	addDigest(m, "grp", tx.Group)
	addDigest(m, "lx", tx.Lease)
	addAddress(m, "rekey", tx.RekeyTo)

	switch tx.Type {
	case PaymentTx:
		addAddress(m, "rcv", tx.Receiver)
		addU64(m, "amt", uint64(tx.Amount))
		addAddress(m, "close", tx.CloseRemainderTo)

	case KeyRegistrationTx:
		addFixed(m, "votekey", tx.VotePK[:])
		addFixed(m, "selkey", tx.SelectionPK[:])
		addFixed(m, "sprfkey", tx.StateProofPK[:])
		addU64(m, "votefst", uint64(tx.VoteFirst))
		addU64(m, "votelst", uint64(tx.VoteLast))
		addU64(m, "votekd", tx.VoteKeyDilution)
		addBool(m, "nonpart", tx.Nonparticipation)

	case AssetConfigTx:
		addU64(m, "caid", uint64(tx.ConfigAsset))
		if apar := marshalAssetParams(tx.AssetParams); apar != nil {
			m["apar"] = apar
		}

	case AssetTransferTx:
		addU64(m, "xaid", uint64(tx.XferAsset))
		addU64(m, "aamt", tx.AssetAmount)
		addAddress(m, "asnd", tx.AssetSender)
		addAddress(m, "arcv", tx.AssetReceiver)
		addAddress(m, "aclose", tx.AssetCloseTo)

	case AssetFreezeTx:
		addU64(m, "faid", uint64(tx.FreezeAsset))
		addAddress(m, "fadd", tx.FreezeAccount)
		addBool(m, "afrz", tx.AssetFrozen)

	case ApplicationCallTx:
		addU64(m, "apid", uint64(tx.ApplicationID))
		addU64(m, "apan", uint64(tx.OnCompletion))
		if len(tx.ApplicationArgs) > 0 {
			m["apaa"] = copyByteSlices(tx.ApplicationArgs)
		}
		if len(tx.Accounts) > 0 {
			m["apat"] = addressesToBytes(tx.Accounts)
		}
		if len(tx.ForeignApps) > 0 {
			m["apfa"] = appIndexesToU64(tx.ForeignApps)
		}
		if len(tx.ForeignAssets) > 0 {
			m["apas"] = assetIndexesToU64(tx.ForeignAssets)
		}
		boxes, err := encodeBoxes(tx.Boxes, tx.ForeignApps, tx.ApplicationID)
		if err != nil {
			return nil, err
		}
		if len(boxes) > 0 {
			m["apbx"] = boxesToInterface(boxes)
		}
		if apls := marshalStateSchema(tx.LocalStateSchema); apls != nil {
			m["apls"] = apls
		}
		if apgs := marshalStateSchema(tx.GlobalStateSchema); apgs != nil {
			m["apgs"] = apgs
		}
		addBytes(m, "apap", tx.ApprovalProgram)
		addBytes(m, "apsu", tx.ClearStateProgram)
		addU64(m, "apep", uint64(tx.ExtraProgramPages))

	case StateProofTx:
		addU64(m, "sptype", tx.StateProofType)
		// Unconditional: Open Question resolution, see stateproof.go.
		m["sp"] = copyBytesOrEmpty(tx.StateProof)
		m["spmsg"] = copyBytesOrEmpty(tx.StateProofMessage)

	default:
		return nil, NewValidationError("type", fmt.Sprintf("unknown transaction type %q", tx.Type))
	}

	return m, nil
}

// UnmarshalCanonical inverts MarshalCanonical, initializing every field
// to its default before reading whichever keys are present.
func UnmarshalCanonical(m map[string]interface{}) (Transaction, error) {
	var tx Transaction

	typeVal, ok := m["type"]
	if !ok {
		return tx, NewEncodingError("missing \"type\" field")
	}
	typeStr, err := toString(typeVal)
	if err != nil {
		return tx, NewEncodingError("type field: " + err.Error())
	}
	tx.Type = TxType(typeStr)

	if err := readAddress(m, "snd", &tx.Sender); err != nil {
		return tx, err
	}
	if v, err := readU64(m, "fee"); err != nil {
		return tx, err
	} else {
		tx.Fee = MicroAlgos(v)
	}
	if v, err := readU64(m, "fv"); err != nil {
		return tx, err
	} else {
		tx.FirstValid = Round(v)
	}
	if v, err := readU64(m, "lv"); err != nil {
		return tx, err
	} else {
		tx.LastValid = Round(v)
	}
	if b, err := readBytes(m, "note"); err != nil {
		return tx, err
	} else {
		tx.Note = b
	}
	if s, err := readString(m, "gen"); err != nil {
		return tx, err
	} else {
		tx.GenesisID = s
	}
	if err := readDigest(m, "gh", &tx.GenesisHash); err != nil {
		return tx, err
	}
	if err := readDigest(m, "grp", &tx.Group); err != nil {
		return tx, err
	}
	if err := readDigest(m, "lx", &tx.Lease); err != nil {
		return tx, err
	}
	if err := readAddress(m, "rekey", &tx.RekeyTo); err != nil {
		return tx, err
	}

	switch tx.Type {
	case PaymentTx:
		if err := readAddress(m, "rcv", &tx.Receiver); err != nil {
			return tx, err
		}
		if v, err := readU64(m, "amt"); err != nil {
			return tx, err
		} else {
			tx.Amount = MicroAlgos(v)
		}
		if err := readAddress(m, "close", &tx.CloseRemainderTo); err != nil {
			return tx, err
		}

	case KeyRegistrationTx:
		if err := readFixed32(m, "votekey", (*[32]byte)(&tx.VotePK)); err != nil {
			return tx, err
		}
		if err := readFixed32(m, "selkey", (*[32]byte)(&tx.SelectionPK)); err != nil {
			return tx, err
		}
		if err := readFixed64(m, "sprfkey", (*[64]byte)(&tx.StateProofPK)); err != nil {
			return tx, err
		}
		if v, err := readU64(m, "votefst"); err != nil {
			return tx, err
		} else {
			tx.VoteFirst = Round(v)
		}
		if v, err := readU64(m, "votelst"); err != nil {
			return tx, err
		} else {
			tx.VoteLast = Round(v)
		}
		if v, err := readU64(m, "votekd"); err != nil {
			return tx, err
		} else {
			tx.VoteKeyDilution = v
		}
		if v, err := readBool(m, "nonpart"); err != nil {
			return tx, err
		} else {
			tx.Nonparticipation = v
		}

	case AssetConfigTx:
		if v, err := readU64(m, "caid"); err != nil {
			return tx, err
		} else {
			tx.ConfigAsset = AssetIndex(v)
		}
		if raw, present := m["apar"]; present {
			sub, ok := raw.(map[string]interface{})
			if !ok {
				return tx, NewEncodingError("apar is not a map")
			}
			params, err := unmarshalAssetParams(sub)
			if err != nil {
				return tx, err
			}
			tx.AssetParams = params
		}

	case AssetTransferTx:
		if v, err := readU64(m, "xaid"); err != nil {
			return tx, err
		} else {
			tx.XferAsset = AssetIndex(v)
		}
		if v, err := readU64(m, "aamt"); err != nil {
			return tx, err
		} else {
			tx.AssetAmount = v
		}
		if err := readAddress(m, "asnd", &tx.AssetSender); err != nil {
			return tx, err
		}
		if err := readAddress(m, "arcv", &tx.AssetReceiver); err != nil {
			return tx, err
		}
		if err := readAddress(m, "aclose", &tx.AssetCloseTo); err != nil {
			return tx, err
		}

	case AssetFreezeTx:
		if v, err := readU64(m, "faid"); err != nil {
			return tx, err
		} else {
			tx.FreezeAsset = AssetIndex(v)
		}
		if err := readAddress(m, "fadd", &tx.FreezeAccount); err != nil {
			return tx, err
		}
		if v, err := readBool(m, "afrz"); err != nil {
			return tx, err
		} else {
			tx.AssetFrozen = v
		}

	case ApplicationCallTx:
		if v, err := readU64(m, "apid"); err != nil {
			return tx, err
		} else {
			tx.ApplicationID = AppIndex(v)
		}
		if v, err := readU64(m, "apan"); err != nil {
			return tx, err
		} else {
			tx.OnCompletion = OnCompletion(v)
		}
		if raw, present := m["apaa"]; present {
			args, err := readByteSliceArray(raw)
			if err != nil {
				return tx, err
			}
			tx.ApplicationArgs = args
		}
		if raw, present := m["apat"]; present {
			accts, err := readAddressArray(raw)
			if err != nil {
				return tx, err
			}
			tx.Accounts = accts
		}
		if raw, present := m["apfa"]; present {
			apps, err := readU64Array(raw)
			if err != nil {
				return tx, err
			}
			tx.ForeignApps = u64sToAppIndexes(apps)
		}
		if raw, present := m["apas"]; present {
			assets, err := readU64Array(raw)
			if err != nil {
				return tx, err
			}
			tx.ForeignAssets = u64sToAssetIndexes(assets)
		}
		if raw, present := m["apbx"]; present {
			rawSlice, ok := raw.([]interface{})
			if !ok {
				return tx, NewEncodingError("apbx is not an array")
			}
			boxes, err := decodeBoxes(rawSlice, tx.ForeignApps)
			if err != nil {
				return tx, err
			}
			tx.Boxes = boxes
		}
		if raw, present := m["apls"]; present {
			sub, ok := raw.(map[string]interface{})
			if !ok {
				return tx, NewEncodingError("apls is not a map")
			}
			ss, err := unmarshalStateSchema(sub)
			if err != nil {
				return tx, err
			}
			tx.LocalStateSchema = ss
		}
		if raw, present := m["apgs"]; present {
			sub, ok := raw.(map[string]interface{})
			if !ok {
				return tx, NewEncodingError("apgs is not a map")
			}
			ss, err := unmarshalStateSchema(sub)
			if err != nil {
				return tx, err
			}
			tx.GlobalStateSchema = ss
		}
		if b, err := readBytes(m, "apap"); err != nil {
			return tx, err
		} else {
			tx.ApprovalProgram = b
		}
		if b, err := readBytes(m, "apsu"); err != nil {
			return tx, err
		} else {
			tx.ClearStateProgram = b
		}
		if v, err := readU64(m, "apep"); err != nil {
			return tx, err
		} else {
			tx.ExtraProgramPages = uint32(v)
		}

	case StateProofTx:
		if v, err := readU64(m, "sptype"); err != nil {
			return tx, err
		} else {
			tx.StateProofType = v
		}
		if b, err := readBytes(m, "sp"); err != nil {
			return tx, err
		} else {
			tx.StateProof = b
		}
		if b, err := readBytes(m, "spmsg"); err != nil {
			return tx, err
		} else {
			tx.StateProofMessage = b
		}

	default:
		return tx, NewEncodingError(fmt.Sprintf("unknown transaction type %q", tx.Type))
	}

	return tx, nil
}

// ---- leaf emitters ----

func addU64(m map[string]interface{}, key string, v uint64) {
	if v != 0 {
		m[key] = v
	}
}

func addBool(m map[string]interface{}, key string, v bool) {
	if v {
		m[key] = true
	}
}

func addBytes(m map[string]interface{}, key string, v []byte) {
	if len(v) > 0 {
		m[key] = append([]byte{}, v...)
	}
}

func addString(m map[string]interface{}, key string, v string) {
	if v != "" {
		m[key] = v
	}
}

func addDigest(m map[string]interface{}, key string, v Digest) {
	if !v.IsZero() {
		m[key] = append([]byte{}, v[:]...)
	}
}

func addAddress(m map[string]interface{}, key string, v Address) {
	if !v.IsZero() {
		m[key] = append([]byte{}, v[:]...)
	}
}

func addFixed(m map[string]interface{}, key string, v []byte) {
	for _, b := range v {
		if b != 0 {
			m[key] = append([]byte{}, v...)
			return
		}
	}
}

func copyBytesOrEmpty(v []byte) []byte {
	return append([]byte{}, v...)
}

func copyByteSlices(in [][]byte) []interface{} {
	out := make([]interface{}, len(in))
	for i, b := range in {
		out[i] = append([]byte{}, b...)
	}
	return out
}

func addressesToBytes(in []Address) []interface{} {
	out := make([]interface{}, len(in))
	for i, a := range in {
		cp := a
		out[i] = cp[:]
	}
	return out
}

func appIndexesToU64(in []AppIndex) []interface{} {
	out := make([]interface{}, len(in))
	for i, a := range in {
		out[i] = uint64(a)
	}
	return out
}

func assetIndexesToU64(in []AssetIndex) []interface{} {
	out := make([]interface{}, len(in))
	for i, a := range in {
		out[i] = uint64(a)
	}
	return out
}

func boxesToInterface(in []map[string]interface{}) []interface{} {
	out := make([]interface{}, len(in))
	for i, b := range in {
		out[i] = b
	}
	return out
}

func marshalAssetParams(p AssetParams) map[string]interface{} {
	sub := map[string]interface{}{}
	addU64(sub, "t", p.Total)
	addU64(sub, "dc", uint64(p.Decimals))
	addBool(sub, "df", p.DefaultFrozen)
	addAddress(sub, "m", p.Manager)
	addAddress(sub, "r", p.Reserve)
	addAddress(sub, "f", p.Freeze)
	addAddress(sub, "c", p.Clawback)
	addString(sub, "un", p.UnitName)
	addString(sub, "an", p.AssetName)
	addString(sub, "au", p.URL)
	addDigest(sub, "am", p.MetadataHash)
	if len(sub) == 0 {
		return nil
	}
	return sub
}

func marshalStateSchema(s StateSchema) map[string]interface{} {
	sub := map[string]interface{}{}
	addU64(sub, "nui", s.NumUint)
	addU64(sub, "nbs", s.NumByteSlice)
	if len(sub) == 0 {
		return nil
	}
	return sub
}

// ---- leaf readers ----

func readU64(m map[string]interface{}, key string) (uint64, error) {
	v, present := m[key]
	if !present {
		return 0, nil
	}
	n, err := toUint64(v)
	if err != nil {
		return 0, NewEncodingError(key + ": " + err.Error())
	}
	return n, nil
}

func readBool(m map[string]interface{}, key string) (bool, error) {
	v, present := m[key]
	if !present {
		return false, nil
	}
	b, err := toBool(v)
	if err != nil {
		return false, NewEncodingError(key + ": " + err.Error())
	}
	return b, nil
}

func readBytes(m map[string]interface{}, key string) ([]byte, error) {
	v, present := m[key]
	if !present {
		return nil, nil
	}
	b, err := toBytes(v)
	if err != nil {
		return nil, NewEncodingError(key + ": " + err.Error())
	}
	return b, nil
}

func readString(m map[string]interface{}, key string) (string, error) {
	v, present := m[key]
	if !present {
		return "", nil
	}
	s, err := toString(v)
	if err != nil {
		return "", NewEncodingError(key + ": " + err.Error())
	}
	return s, nil
}

func readDigest(m map[string]interface{}, key string, dst *Digest) error {
	v, present := m[key]
	if !present {
		return nil
	}
	b, err := toBytes(v)
	if err != nil {
		return NewEncodingError(key + ": " + err.Error())
	}
	if err := copyFixed32((*[32]byte)(dst), b); err != nil {
		return NewEncodingError(key + ": " + err.Error())
	}
	return nil
}

func readAddress(m map[string]interface{}, key string, dst *Address) error {
	v, present := m[key]
	if !present {
		return nil
	}
	b, err := toBytes(v)
	if err != nil {
		return NewEncodingError(key + ": " + err.Error())
	}
	if err := copyFixed32((*[32]byte)(dst), b); err != nil {
		return NewEncodingError(key + ": " + err.Error())
	}
	return nil
}

func readFixed32(m map[string]interface{}, key string, dst *[32]byte) error {
	v, present := m[key]
	if !present {
		return nil
	}
	b, err := toBytes(v)
	if err != nil {
		return NewEncodingError(key + ": " + err.Error())
	}
	if err := copyFixed32(dst, b); err != nil {
		return NewEncodingError(key + ": " + err.Error())
	}
	return nil
}

func readFixed64(m map[string]interface{}, key string, dst *[64]byte) error {
	v, present := m[key]
	if !present {
		return nil
	}
	b, err := toBytes(v)
	if err != nil {
		return NewEncodingError(key + ": " + err.Error())
	}
	if err := copyFixed64(dst, b); err != nil {
		return NewEncodingError(key + ": " + err.Error())
	}
	return nil
}

func readByteSliceArray(raw interface{}) ([][]byte, error) {
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, NewEncodingError("expected array of byte strings")
	}
	out := make([][]byte, len(arr))
	for i, v := range arr {
		b, err := toBytes(v)
		if err != nil {
			return nil, NewEncodingError(err.Error())
		}
		out[i] = b
	}
	return out, nil
}

func readAddressArray(raw interface{}) ([]Address, error) {
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, NewEncodingError("expected array of addresses")
	}
	out := make([]Address, len(arr))
	for i, v := range arr {
		b, err := toBytes(v)
		if err != nil {
			return nil, NewEncodingError(err.Error())
		}
		if err := copyFixed32((*[32]byte)(&out[i]), b); err != nil {
			return nil, NewEncodingError(err.Error())
		}
	}
	return out, nil
}

func readU64Array(raw interface{}) ([]uint64, error) {
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, NewEncodingError("expected array of integers")
	}
	out := make([]uint64, len(arr))
	for i, v := range arr {
		n, err := toUint64(v)
		if err != nil {
			return nil, NewEncodingError(err.Error())
		}
		out[i] = n
	}
	return out, nil
}

func u64sToAppIndexes(in []uint64) []AppIndex {
	out := make([]AppIndex, len(in))
	for i, v := range in {
		out[i] = AppIndex(v)
	}
	return out
}

func u64sToAssetIndexes(in []uint64) []AssetIndex {
	out := make([]AssetIndex, len(in))
	for i, v := range in {
		out[i] = AssetIndex(v)
	}
	return out
}

func unmarshalAssetParams(m map[string]interface{}) (AssetParams, error) {
	var p AssetParams
	var err error
	if p.Total, err = readU64(m, "t"); err != nil {
		return p, err
	}
	if dc, err := readU64(m, "dc"); err != nil {
		return p, err
	} else {
		p.Decimals = uint32(dc)
	}
	if p.DefaultFrozen, err = readBool(m, "df"); err != nil {
		return p, err
	}
	if err := readAddress(m, "m", &p.Manager); err != nil {
		return p, err
	}
	if err := readAddress(m, "r", &p.Reserve); err != nil {
		return p, err
	}
	if err := readAddress(m, "f", &p.Freeze); err != nil {
		return p, err
	}
	if err := readAddress(m, "c", &p.Clawback); err != nil {
		return p, err
	}
	if p.UnitName, err = readString(m, "un"); err != nil {
		return p, err
	}
	if p.AssetName, err = readString(m, "an"); err != nil {
		return p, err
	}
	if p.URL, err = readString(m, "au"); err != nil {
		return p, err
	}
	if err := readDigest(m, "am", &p.MetadataHash); err != nil {
		return p, err
	}
	return p, nil
}

func unmarshalStateSchema(m map[string]interface{}) (StateSchema, error) {
	var s StateSchema
	var err error
	if s.NumUint, err = readU64(m, "nui"); err != nil {
		return s, err
	}
	if s.NumByteSlice, err = readU64(m, "nbs"); err != nil {
		return s, err
	}
	return s, nil
}
