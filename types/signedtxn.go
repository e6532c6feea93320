package types

// MultisigSubsig is one signer's slot within a MultisigSig: its public
// key, and its signature once it has signed.
type MultisigSubsig struct {
	Key PublicKey `codec:"pk"`
	Sig Signature `codec:"s"`
}

// MultisigSig is the multisig pre-image (version, threshold, ordered
// public keys) together with whichever signatures have been collected
// so far. The pre-image is immutable: nothing in this package exposes
// a way to change Version, Threshold or the sequence of Subsig.Key
// entries on an existing MultisigSig — doing so would silently
// invalidate every signature already collected. A new pre-image means
// a new MultisigSig, built fresh and re-signed from scratch.
type MultisigSig struct {
	Version   uint8            `codec:"v"`
	Threshold uint8            `codec:"thr"`
	Subsigs   []MultisigSubsig `codec:"subsig"`
}

// Empty reports whether msig carries no pre-image at all (the zero
// value), used to tell an unsigned SignedTxn from a multisig one.
func (msig MultisigSig) Empty() bool {
	return msig.Version == 0 && msig.Threshold == 0 && len(msig.Subsigs) == 0
}

// LogicSig is carried through as an opaque pass-through value: this
// core neither constructs nor interprets TEAL logic signatures, it only
// preserves whatever the caller attached.
type LogicSig struct {
	Logic []byte      `codec:"l"`
	Sig   Signature   `codec:"sig"`
	Msig  MultisigSig `codec:"msig"`
	Args  [][]byte    `codec:"arg"`
}

// Empty reports whether ls carries nothing at all: no program bytes,
// signature, multisig or arguments.
func (ls LogicSig) Empty() bool {
	return len(ls.Logic) == 0 && ls.Sig.IsZero() && ls.Msig.Empty() && len(ls.Args) == 0
}

// SignedTxn is a Transaction together with whatever authorization was
// attached to it: a bare Ed25519 signature, a multisig, or a pass-through
// logic signature. AuthAddr is present iff the signer's address differs
// from Txn.Sender (i.e. after a rekey, or for a multisig account).
type SignedTxn struct {
	Sig      Signature   `codec:"sig"`
	Msig     MultisigSig `codec:"msig"`
	Lsig     LogicSig    `codec:"lsig"`
	Txn      Transaction `codec:"txn"`
	AuthAddr Address     `codec:"sgnr"`
}
