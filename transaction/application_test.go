package transaction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algoshant/algotxn/types"
)

func TestMakeApplicationCallTxnCreate(t *testing.T) {
	sender := testAddress(1)

	tx, err := MakeApplicationCallTxn(sender, nil, ApplicationCallParams{
		ApplicationID:     0,
		OnCompletion:      types.NoOpOC,
		ApprovalProgram:   []byte{1, 2, 3},
		ClearStateProgram: []byte{4, 5, 6},
	}, nil, nil, testParams())
	require.NoError(t, err)
	require.True(t, tx.ApplicationID == 0)
	require.Equal(t, []byte{1, 2, 3}, tx.ApprovalProgram)
}

func TestMakeApplicationCallTxnCreateRequiresPrograms(t *testing.T) {
	sender := testAddress(1)
	_, err := MakeApplicationCallTxn(sender, nil, ApplicationCallParams{ApplicationID: 0}, nil, nil, testParams())
	require.Error(t, err)
}

func TestMakeApplicationCallTxnNoOpForbidsPrograms(t *testing.T) {
	sender := testAddress(1)
	_, err := MakeApplicationCallTxn(sender, nil, ApplicationCallParams{
		ApplicationID:   42,
		OnCompletion:    types.NoOpOC,
		ApprovalProgram: []byte{1},
	}, nil, nil, testParams())
	require.Error(t, err)
}

func TestMakeApplicationCallTxnWithBoxes(t *testing.T) {
	sender := testAddress(1)
	tx, err := MakeApplicationCallTxn(sender, nil, ApplicationCallParams{
		ApplicationID: 42,
		OnCompletion:  types.OptInOC,
		ForeignApps:   []uint64{7},
		Boxes: []types.BoxReference{
			{AppIndex: 42, Name: []byte("self")},
			{AppIndex: 7, Name: []byte("other")},
		},
	}, nil, nil, testParams())
	require.NoError(t, err)
	require.Len(t, tx.Boxes, 2)
}
