package types

// KeyregTxnFields captures the fields used by key registration
// transactions. Exactly one of three shapes is valid: offline (every
// participation field absent), online (VotePK, SelectionPK, VoteFirst,
// VoteLast and VoteKeyDilution all present; StateProofPK optional for
// backward compatibility), or non-participation (Nonparticipation set
// and every participation field absent).
type KeyregTxnFields struct {
	VotePK          VotePK         `codec:"votekey"`
	SelectionPK     VRFPK          `codec:"selkey"`
	StateProofPK    MerkleVerifier `codec:"sprfkey"`
	VoteFirst       Round          `codec:"votefst"`
	VoteLast        Round          `codec:"votelst"`
	VoteKeyDilution uint64         `codec:"votekd"`
	Nonparticipation bool          `codec:"nonpart"`
}
