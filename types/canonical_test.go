package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func samplePayment() Transaction {
	var sender, receiver Address
	sender[0] = 1
	receiver[0] = 2
	var gh Digest
	gh[0] = 9

	return Transaction{
		Type: PaymentTx,
		Header: Header{
			Sender:      sender,
			Fee:         1000,
			FirstValid:  100,
			LastValid:   1100,
			GenesisID:   "testnet-v1.0",
			GenesisHash: gh,
		},
		PaymentTxnFields: PaymentTxnFields{
			Receiver: receiver,
			Amount:   5000,
		},
	}
}

func TestMarshalCanonicalElidesZeroFields(t *testing.T) {
	tx := samplePayment()

	m, err := MarshalCanonical(tx)
	require.NoError(t, err)

	require.Equal(t, "pay", m["type"])
	require.Contains(t, m, "snd")
	require.Contains(t, m, "rcv")
	require.Contains(t, m, "amt")
	require.NotContains(t, m, "close")
	require.NotContains(t, m, "grp")
	require.NotContains(t, m, "lx")
	require.NotContains(t, m, "rekey")
	require.NotContains(t, m, "note")
}

func TestMarshalUnmarshalCanonicalRoundTrip(t *testing.T) {
	tx := samplePayment()
	tx.Note = []byte("hello")

	m, err := MarshalCanonical(tx)
	require.NoError(t, err)

	back, err := UnmarshalCanonical(m)
	require.NoError(t, err)
	require.Equal(t, tx, back)
}

func TestMarshalCanonicalUnknownType(t *testing.T) {
	tx := samplePayment()
	tx.Type = "bogus"

	_, err := MarshalCanonical(tx)
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestStateProofFieldsAlwaysEmitted(t *testing.T) {
	var sender Address
	var gh Digest
	gh[0] = 1
	tx := Transaction{
		Type: StateProofTx,
		Header: Header{
			Sender:      sender,
			FirstValid:  10,
			LastValid:   20,
			GenesisHash: gh,
		},
		StateProofTxnFields: StateProofTxnFields{
			StateProofType: 0,
		},
	}

	m, err := MarshalCanonical(tx)
	require.NoError(t, err)

	require.Contains(t, m, "sp")
	require.Contains(t, m, "spmsg")
	require.Equal(t, []byte{}, m["sp"])
	require.Equal(t, []byte{}, m["spmsg"])
}

func TestUnmarshalCanonicalMissingType(t *testing.T) {
	_, err := UnmarshalCanonical(map[string]interface{}{})
	require.Error(t, err)
	var ee *EncodingError
	require.ErrorAs(t, err, &ee)
}

func TestBoxReferenceRewrite(t *testing.T) {
	var sender Address
	sender[0] = 1
	var gh Digest
	gh[0] = 1

	tx := Transaction{
		Type: ApplicationCallTx,
		Header: Header{
			Sender:      sender,
			FirstValid:  1,
			LastValid:   1000,
			GenesisHash: gh,
		},
		ApplicationCallTxnFields: ApplicationCallTxnFields{
			ApplicationID: 7,
			ForeignApps:   []AppIndex{7, 42},
			Boxes: []BoxReference{
				{AppIndex: 0, Name: []byte("self")},
				{AppIndex: 7, Name: []byte("called")},
				{AppIndex: 42, Name: []byte("foreign")},
			},
		},
	}

	m, err := MarshalCanonical(tx)
	require.NoError(t, err)

	boxes, ok := m["apbx"].([]interface{})
	require.True(t, ok)
	require.Len(t, boxes, 3)
	require.Equal(t, uint64(0), boxes[0].(map[string]interface{})["i"])
	require.Equal(t, uint64(0), boxes[1].(map[string]interface{})["i"])
	require.Equal(t, uint64(2), boxes[2].(map[string]interface{})["i"])

	back, err := UnmarshalCanonical(m)
	require.NoError(t, err)
	require.Equal(t, AppIndex(0), back.Boxes[0].AppIndex)
	require.Equal(t, AppIndex(0), back.Boxes[1].AppIndex)
	require.Equal(t, AppIndex(42), back.Boxes[2].AppIndex)
}
