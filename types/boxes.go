package types

// encodeBoxes rewrites application call box references for the wire:
// a reference whose AppIndex names the called application (0, or the
// literal calledApp id) becomes {i:0, n:name}; any other reference's
// AppIndex is replaced by its 1-based position within foreignApps.
//
// This mirrors the spec's external "box-reference translation helper":
// it is a pure, narrow mapping with no knowledge of the rest of the
// transaction, kept here because this module has nowhere else to hand
// it to.
func encodeBoxes(boxes []BoxReference, foreignApps []AppIndex, calledApp AppIndex) ([]map[string]interface{}, error) {
	if len(boxes) == 0 {
		return nil, nil
	}
	out := make([]map[string]interface{}, 0, len(boxes))
	for _, b := range boxes {
		entry := map[string]interface{}{}
		switch {
		case b.AppIndex == 0 || b.AppIndex == calledApp:
			entry["i"] = uint64(0)
		default:
			idx := indexOfAppID(foreignApps, b.AppIndex)
			if idx < 0 {
				return nil, NewValidationError("boxes", "appIndex is neither 0, the called app, nor present in foreignApps")
			}
			entry["i"] = uint64(idx + 1)
		}
		if len(b.Name) > 0 {
			entry["n"] = append([]byte{}, b.Name...)
		}
		out = append(out, entry)
	}
	return out, nil
}

// decodeBoxes inverts encodeBoxes. A decoded i==0 always yields
// AppIndex 0 (never the called app id), so that re-encoding a decoded
// transaction is stable.
func decodeBoxes(raw []interface{}, foreignApps []AppIndex) ([]BoxReference, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]BoxReference, 0, len(raw))
	for _, r := range raw {
		m, ok := r.(map[string]interface{})
		if !ok {
			return nil, NewEncodingError("box reference entry is not a map")
		}
		var b BoxReference
		if iv, present := m["i"]; present {
			idx, err := toUint64(iv)
			if err != nil {
				return nil, NewEncodingError("box reference i field: " + err.Error())
			}
			if idx == 0 {
				b.AppIndex = 0
			} else {
				if int(idx) > len(foreignApps) {
					return nil, NewEncodingError("box reference i field out of range of foreignApps")
				}
				b.AppIndex = foreignApps[idx-1]
			}
		}
		if nv, present := m["n"]; present {
			nb, err := toBytes(nv)
			if err != nil {
				return nil, NewEncodingError("box reference n field: " + err.Error())
			}
			b.Name = nb
		}
		out = append(out, b)
	}
	return out, nil
}

func indexOfAppID(apps []AppIndex, id AppIndex) int {
	for i, a := range apps {
		if a == id {
			return i
		}
	}
	return -1
}
