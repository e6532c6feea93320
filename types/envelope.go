package types

// MarshalSignedTxnCanonical maps a SignedTxn to its canonical,
// default-elided wire map: "txn" is always present, "sig", "msig",
// "lsig" and "sgnr" are present only when non-default.
func MarshalSignedTxnCanonical(stx SignedTxn) (map[string]interface{}, error) {
	txnMap, err := MarshalCanonical(stx.Txn)
	if err != nil {
		return nil, err
	}

	m := map[string]interface{}{
		"txn": txnMap,
	}
	if !stx.Sig.IsZero() {
		m["sig"] = append([]byte{}, stx.Sig[:]...)
	}
	if !stx.Msig.Empty() {
		m["msig"] = marshalMultisigSig(stx.Msig)
	}
	if !stx.Lsig.Empty() {
		m["lsig"] = marshalLogicSig(stx.Lsig)
	}
	if !stx.AuthAddr.IsZero() {
		m["sgnr"] = append([]byte{}, stx.AuthAddr[:]...)
	}
	return m, nil
}

// UnmarshalSignedTxnCanonical inverts MarshalSignedTxnCanonical.
func UnmarshalSignedTxnCanonical(m map[string]interface{}) (SignedTxn, error) {
	var stx SignedTxn

	txnRaw, ok := m["txn"]
	if !ok {
		return stx, NewEncodingError("missing \"txn\" field")
	}
	txnMap, ok := txnRaw.(map[string]interface{})
	if !ok {
		return stx, NewEncodingError("\"txn\" is not a map")
	}
	txn, err := UnmarshalCanonical(txnMap)
	if err != nil {
		return stx, err
	}
	stx.Txn = txn

	if b, err := readBytes(m, "sig"); err != nil {
		return stx, err
	} else if len(b) > 0 {
		if err := copyFixed64((*[64]byte)(&stx.Sig), b); err != nil {
			return stx, NewEncodingError("sig: " + err.Error())
		}
	}

	if raw, present := m["msig"]; present {
		sub, ok := raw.(map[string]interface{})
		if !ok {
			return stx, NewEncodingError("\"msig\" is not a map")
		}
		msig, err := unmarshalMultisigSig(sub)
		if err != nil {
			return stx, err
		}
		stx.Msig = msig
	}

	if raw, present := m["lsig"]; present {
		sub, ok := raw.(map[string]interface{})
		if !ok {
			return stx, NewEncodingError("\"lsig\" is not a map")
		}
		lsig, err := unmarshalLogicSig(sub)
		if err != nil {
			return stx, err
		}
		stx.Lsig = lsig
	}

	if err := readAddress(m, "sgnr", &stx.AuthAddr); err != nil {
		return stx, err
	}

	return stx, nil
}

func marshalMultisigSig(msig MultisigSig) map[string]interface{} {
	sub := map[string]interface{}{
		"v":   uint64(msig.Version),
		"thr": uint64(msig.Threshold),
	}
	subsigs := make([]interface{}, len(msig.Subsigs))
	for i, s := range msig.Subsigs {
		entry := map[string]interface{}{
			"pk": append([]byte{}, s.Key[:]...),
		}
		if !s.Sig.IsZero() {
			entry["s"] = append([]byte{}, s.Sig[:]...)
		}
		subsigs[i] = entry
	}
	sub["subsig"] = subsigs
	return sub
}

func unmarshalMultisigSig(m map[string]interface{}) (MultisigSig, error) {
	var msig MultisigSig
	v, err := readU64(m, "v")
	if err != nil {
		return msig, err
	}
	msig.Version = uint8(v)
	thr, err := readU64(m, "thr")
	if err != nil {
		return msig, err
	}
	msig.Threshold = uint8(thr)

	raw, present := m["subsig"]
	if !present {
		return msig, nil
	}
	arr, ok := raw.([]interface{})
	if !ok {
		return msig, NewEncodingError("subsig is not an array")
	}
	msig.Subsigs = make([]MultisigSubsig, len(arr))
	for i, r := range arr {
		sub, ok := r.(map[string]interface{})
		if !ok {
			return msig, NewEncodingError("subsig entry is not a map")
		}
		var entry MultisigSubsig
		if err := readFixed32(sub, "pk", (*[32]byte)(&entry.Key)); err != nil {
			return msig, err
		}
		if b, err := readBytes(sub, "s"); err != nil {
			return msig, err
		} else if len(b) > 0 {
			if err := copyFixed64((*[64]byte)(&entry.Sig), b); err != nil {
				return msig, NewEncodingError("subsig.s: " + err.Error())
			}
		}
		msig.Subsigs[i] = entry
	}
	return msig, nil
}

func marshalLogicSig(ls LogicSig) map[string]interface{} {
	sub := map[string]interface{}{}
	addBytes(sub, "l", ls.Logic)
	if !ls.Sig.IsZero() {
		sub["sig"] = append([]byte{}, ls.Sig[:]...)
	}
	if !ls.Msig.Empty() {
		sub["msig"] = marshalMultisigSig(ls.Msig)
	}
	if len(ls.Args) > 0 {
		sub["arg"] = copyByteSlices(ls.Args)
	}
	return sub
}

func unmarshalLogicSig(m map[string]interface{}) (LogicSig, error) {
	var ls LogicSig
	var err error
	if ls.Logic, err = readBytes(m, "l"); err != nil {
		return ls, err
	}
	if b, err := readBytes(m, "sig"); err != nil {
		return ls, err
	} else if len(b) > 0 {
		if err := copyFixed64((*[64]byte)(&ls.Sig), b); err != nil {
			return ls, NewEncodingError("lsig.sig: " + err.Error())
		}
	}
	if raw, present := m["msig"]; present {
		sub, ok := raw.(map[string]interface{})
		if !ok {
			return ls, NewEncodingError("lsig.msig is not a map")
		}
		msig, err := unmarshalMultisigSig(sub)
		if err != nil {
			return ls, err
		}
		ls.Msig = msig
	}
	if raw, present := m["arg"]; present {
		args, err := readByteSliceArray(raw)
		if err != nil {
			return ls, err
		}
		ls.Args = args
	}
	return ls, nil
}
