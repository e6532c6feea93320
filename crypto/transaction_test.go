package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algoshant/algotxn/types"
)

func sampleTxn(sender types.Address) types.Transaction {
	var receiver types.Address
	receiver[0] = 2
	var gh types.Digest
	gh[0] = 5

	return types.Transaction{
		Type: types.PaymentTx,
		Header: types.Header{
			Sender:      sender,
			Fee:         1000,
			FirstValid:  1,
			LastValid:   1000,
			GenesisID:   "testnet-v1.0",
			GenesisHash: gh,
		},
		PaymentTxnFields: types.PaymentTxnFields{
			Receiver: receiver,
			Amount:   100,
		},
	}
}

func TestTransactionIDStable(t *testing.T) {
	addr, _ := GenerateAccount()
	tx := sampleTxn(addr)

	id1, err := TransactionID(tx)
	require.NoError(t, err)
	id2, err := TransactionID(tx)
	require.NoError(t, err)
	require.Equal(t, id1, id2)

	tx.Amount++
	id3, err := TransactionID(tx)
	require.NoError(t, err)
	require.NotEqual(t, id1, id3)
}

func TestTransactionIDStringLength(t *testing.T) {
	addr, _ := GenerateAccount()
	s, err := TransactionIDString(sampleTxn(addr))
	require.NoError(t, err)
	require.Len(t, s, txIDTextLen)
}

func TestSignAndDecodeSignedTransaction(t *testing.T) {
	addr, sk := GenerateAccount()
	tx := sampleTxn(addr)

	signer, blob, err := SignTransaction(sk, tx)
	require.NoError(t, err)
	require.Equal(t, addr, signer)

	stx, err := DecodeSignedTransaction(blob)
	require.NoError(t, err)
	require.Equal(t, tx, stx.Txn)
	require.True(t, stx.AuthAddr.IsZero())
	require.True(t, VerifyBytes(types.PublicKey(addr), mustBytesToSign(t, tx), stx.Sig))
}

func TestSignTransactionSetsAuthAddrWhenRekeyed(t *testing.T) {
	sender, _ := GenerateAccount()
	signerAddr, signerSK := GenerateAccount()
	tx := sampleTxn(sender)

	signer, blob, err := SignTransaction(signerSK, tx)
	require.NoError(t, err)
	require.Equal(t, signerAddr, signer)

	stx, err := DecodeSignedTransaction(blob)
	require.NoError(t, err)
	require.Equal(t, signerAddr, stx.AuthAddr)
}

func TestAttachSignatureOmitsAuthAddrWhenSignerIsSender(t *testing.T) {
	addr, sk := GenerateAccount()
	tx := sampleTxn(addr)

	toSign, err := RawTransactionBytesToSign(tx)
	require.NoError(t, err)
	sig, err := RawSignBytes(sk, toSign)
	require.NoError(t, err)

	blob, err := AttachSignature(addr, tx, sig)
	require.NoError(t, err)

	stx, err := DecodeSignedTransaction(blob)
	require.NoError(t, err)
	require.True(t, stx.AuthAddr.IsZero())
	require.Equal(t, sig, stx.Sig)
}

func mustBytesToSign(t *testing.T, tx types.Transaction) []byte {
	t.Helper()
	b, err := RawTransactionBytesToSign(tx)
	require.NoError(t, err)
	return b
}
