package types

// MicroAlgos is an amount of the smallest denomination of Algos.
// 1,000,000 MicroAlgos == 1 Algo.
type MicroAlgos uint64

// Round is a round number of the Algorand consensus protocol.
type Round uint64

// Digest is a SHA-512/256 hash, used for genesis hashes, group IDs,
// leases and metadata hashes.
type Digest [32]byte

// IsZero reports whether d is the all-zero digest.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// VotePK is a root participation public key, used in key registration
// transactions.
type VotePK [32]byte

// IsZero reports whether v holds no key material.
func (v VotePK) IsZero() bool {
	return v == VotePK{}
}

// VRFPK is a VRF selection public key, used in key registration
// transactions.
type VRFPK [32]byte

// IsZero reports whether v holds no key material.
func (v VRFPK) IsZero() bool {
	return v == VRFPK{}
}

// MerkleVerifier is a state proof participation public key commitment.
type MerkleVerifier [64]byte

// PublicKey is a raw 32-byte Ed25519 public key. Its byte representation
// is identical to an Address's.
type PublicKey [32]byte

// Signature is a raw 64-byte Ed25519 signature.
type Signature [64]byte

// IsZero reports whether s holds no signature bytes.
func (s Signature) IsZero() bool {
	return s == Signature{}
}

// AssetIndex is the unique identifier of an asset on the ledger. Zero
// denotes "create a new asset" in an acfg transaction.
type AssetIndex uint64

// AppIndex is the unique identifier of an application on the ledger.
// Zero denotes "create a new application" in an appl transaction, or
// "the application being called" in a box reference.
type AppIndex uint64
