package transaction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algoshant/algotxn/types"
)

func testParams() SuggestedParams {
	return SuggestedParams{
		Fee:             1,
		MinFee:          1000,
		FirstRoundValid: 100,
		LastRoundValid:  1100,
		GenesisID:       "testnet-v1.0",
		GenesisHash:     make([]byte, 32),
	}
}

func testAddress(b byte) types.Address {
	var a types.Address
	a[0] = b
	return a
}

func TestMakePaymentTxnBasic(t *testing.T) {
	sender := testAddress(1)
	receiver := testAddress(2)

	tx, err := MakePaymentTxn(sender, receiver, 1000, nil, nil, nil, nil, testParams())
	require.NoError(t, err)
	require.Equal(t, types.PaymentTx, tx.Type)
	require.Equal(t, sender, tx.Sender)
	require.Equal(t, receiver, tx.Receiver)
	require.Equal(t, types.MicroAlgos(1000), tx.Amount)
	require.True(t, tx.CloseRemainderTo.IsZero())
}

func TestMakePaymentTxnRequiresReceiver(t *testing.T) {
	sender := testAddress(1)
	_, err := MakePaymentTxn(sender, types.Address{}, 1000, nil, nil, nil, nil, testParams())
	require.Error(t, err)
}

func TestMakePaymentTxnRejectsZeroCloseRemainderTo(t *testing.T) {
	sender := testAddress(1)
	receiver := testAddress(2)
	zero := types.Address{}

	_, err := MakePaymentTxn(sender, receiver, 1000, nil, &zero, nil, nil, testParams())
	require.Error(t, err)
}

func TestMakePaymentTxnFlatFee(t *testing.T) {
	sender := testAddress(1)
	receiver := testAddress(2)
	sp := testParams()
	sp.FlatFee = true
	sp.Fee = 5000

	tx, err := MakePaymentTxn(sender, receiver, 1000, nil, nil, nil, nil, sp)
	require.NoError(t, err)
	require.Equal(t, types.MicroAlgos(5000), tx.Fee)
}

func TestMakePaymentTxnFeeClampedToMinFee(t *testing.T) {
	sender := testAddress(1)
	receiver := testAddress(2)
	sp := testParams()
	sp.Fee = 0
	sp.MinFee = 1000

	tx, err := MakePaymentTxn(sender, receiver, 1000, nil, nil, nil, nil, sp)
	require.NoError(t, err)
	require.Equal(t, types.MicroAlgos(1000), tx.Fee)
}

func TestMakePaymentTxnRequiresGenesisHash(t *testing.T) {
	sender := testAddress(1)
	receiver := testAddress(2)
	sp := testParams()
	sp.GenesisHash = nil

	_, err := MakePaymentTxn(sender, receiver, 1000, nil, nil, nil, nil, sp)
	require.Error(t, err)
}
