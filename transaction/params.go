// Package transaction constructs, validates and fee-resolves Algorand
// transactions, and assigns atomic transaction groups. See package
// crypto for signing and multisig coordination, and package types for
// the data model and canonical wire encoding.
package transaction

import "github.com/algoshant/algotxn/types"

// SuggestedParams carries the network parameters every constructor
// needs: the fee to charge (per-byte, unless FlatFee is set), the
// validity window, and the genesis that anchors the transaction to a
// specific network.
type SuggestedParams struct {
	// Fee is either a flat fee (if FlatFee is true) or a suggested
	// fee-per-byte used to compute a size-dependent fee.
	Fee types.MicroAlgos

	// MinFee is the network's current minimum transaction fee. The
	// computed (or flat) fee is clamped upward to MinFee.
	MinFee uint64

	// FlatFee, when true, takes Fee verbatim instead of deriving it
	// from the encoded transaction's size.
	FlatFee bool

	FirstRoundValid types.Round
	LastRoundValid  types.Round

	GenesisID   string
	GenesisHash []byte

	// ConsensusVersion is carried through unread: this core never acts
	// on it, it just gives callers somewhere to park whatever a node
	// reported so it can be threaded on to later calls.
	ConsensusVersion string
}
