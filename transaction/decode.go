package transaction

import (
	"fmt"

	"github.com/algoshant/algotxn/encoding/msgpack"
	"github.com/algoshant/algotxn/types"
)

// DecodeTransaction decodes a bare, canonically-encoded transaction off
// the wire (not a signed-transaction envelope; see
// crypto.DecodeSignedTransaction for that).
func DecodeTransaction(encoded []byte) (types.Transaction, error) {
	m, err := msgpack.DecodeToMap(encoded)
	if err != nil {
		return types.Transaction{}, fmt.Errorf("transaction: decoding: %w", err)
	}
	return types.UnmarshalCanonical(m)
}
