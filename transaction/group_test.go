package transaction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algoshant/algotxn/types"
)

func TestAssignGroupIDSetsMatchingGroup(t *testing.T) {
	sp := testParams()
	tx1, err := MakePaymentTxn(testAddress(1), testAddress(2), 1000, nil, nil, nil, nil, sp)
	require.NoError(t, err)
	tx2, err := MakePaymentTxn(testAddress(3), testAddress(4), 2000, nil, nil, nil, nil, sp)
	require.NoError(t, err)

	grouped, err := AssignGroupID([]types.Transaction{tx1, tx2})
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	require.False(t, grouped[0].Group.IsZero())
	require.Equal(t, grouped[0].Group, grouped[1].Group)
}

func TestAssignGroupIDRejectsAlreadyGrouped(t *testing.T) {
	sp := testParams()
	tx1, err := MakePaymentTxn(testAddress(1), testAddress(2), 1000, nil, nil, nil, nil, sp)
	require.NoError(t, err)
	tx2, err := MakePaymentTxn(testAddress(3), testAddress(4), 2000, nil, nil, nil, nil, sp)
	require.NoError(t, err)

	grouped, err := AssignGroupID([]types.Transaction{tx1, tx2})
	require.NoError(t, err)

	_, err = AssignGroupID(grouped)
	require.Error(t, err)
}

func TestAssignGroupIDRejectsEmpty(t *testing.T) {
	_, err := AssignGroupID(nil)
	require.Error(t, err)
}
