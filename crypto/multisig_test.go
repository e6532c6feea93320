package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algoshant/algotxn/types"
)

func threeSignerMultisig(t *testing.T) (MultisigAccount, [3]types.Address, [3][]byte) {
	t.Helper()
	var addrs [3]types.Address
	var sks [3][]byte
	pks := make([]types.PublicKey, 3)
	for i := range addrs {
		a, sk := GenerateAccount()
		addrs[i] = a
		sks[i] = sk
		pks[i] = types.PublicKey(a)
	}
	ma, err := MakeMultisigAccount(1, 2, pks)
	require.NoError(t, err)
	return ma, addrs, sks
}

func TestMultisigAddressDeterministic(t *testing.T) {
	ma, _, _ := threeSignerMultisig(t)
	a1, err := ma.Address()
	require.NoError(t, err)
	a2, err := ma.Address()
	require.NoError(t, err)
	require.Equal(t, a1, a2)
}

func TestMultisigValidateRejectsBadThreshold(t *testing.T) {
	pks := []types.PublicKey{{1}, {2}}
	_, err := MakeMultisigAccount(1, 0, pks)
	require.Error(t, err)

	_, err = MakeMultisigAccount(1, 3, pks)
	require.Error(t, err)
}

func TestMultisigSignMergeVerify(t *testing.T) {
	ma, _, sks := threeSignerMultisig(t)
	maAddr, err := ma.Address()
	require.NoError(t, err)

	tx := sampleTxn(maAddr)

	_, blob1, err := SignMultisigTransaction(sks[0], ma, tx)
	require.NoError(t, err)
	_, blob2, err := SignMultisigTransaction(sks[1], ma, tx)
	require.NoError(t, err)

	merged, err := MergeMultisigTransactions(blob1, blob2)
	require.NoError(t, err)

	stx, err := DecodeSignedTransaction(merged)
	require.NoError(t, err)

	toSign, err := RawTransactionBytesToSign(tx)
	require.NoError(t, err)
	require.True(t, VerifyMultisig(toSign, stx.Msig, maAddr))
}

func TestMultisigMergeRejectsConflictingSignature(t *testing.T) {
	ma, addrs, sks := threeSignerMultisig(t)
	maAddr, err := ma.Address()
	require.NoError(t, err)
	tx := sampleTxn(maAddr)

	_, blob1, err := SignMultisigTransaction(sks[0], ma, tx)
	require.NoError(t, err)

	otherTx := tx
	otherTx.Amount++
	otherSig, err := RawSignBytes(sks[0], mustBytesToSign(t, otherTx))
	require.NoError(t, err)
	_, blob2, err := AttachMultisigSignature(ma, tx, addrs[0], otherSig)
	require.NoError(t, err)

	_, err = MergeMultisigTransactions(blob1, blob2)
	require.Error(t, err)
	var me *types.MultisigError
	require.ErrorAs(t, err, &me)
}

func TestMultisigVerifyFailsBelowThreshold(t *testing.T) {
	ma, _, sks := threeSignerMultisig(t)
	maAddr, err := ma.Address()
	require.NoError(t, err)
	tx := sampleTxn(maAddr)

	_, blob1, err := SignMultisigTransaction(sks[0], ma, tx)
	require.NoError(t, err)
	stx, err := DecodeSignedTransaction(blob1)
	require.NoError(t, err)

	toSign, err := RawTransactionBytesToSign(tx)
	require.NoError(t, err)
	require.False(t, VerifyMultisig(toSign, stx.Msig, maAddr))
}

func TestAppendMultisigSignature(t *testing.T) {
	ma, _, sks := threeSignerMultisig(t)
	maAddr, err := ma.Address()
	require.NoError(t, err)
	tx := sampleTxn(maAddr)

	blob, err := MakeEmptyMultisigBlob(tx, ma)
	require.NoError(t, err)

	txID1, merged1, err := AppendMultisigSignature(sks[0], ma, blob)
	require.NoError(t, err)

	txID2, merged2, err := AppendMultisigSignature(sks[1], ma, merged1)
	require.NoError(t, err)
	require.Equal(t, txID1, txID2)

	stx, err := DecodeSignedTransaction(merged2)
	require.NoError(t, err)
	toSign, err := RawTransactionBytesToSign(tx)
	require.NoError(t, err)
	require.True(t, VerifyMultisig(toSign, stx.Msig, maAddr))
}
