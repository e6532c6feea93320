package transaction

import "github.com/algoshant/algotxn/types"

// MakePaymentTxn builds a payment transaction moving amount microAlgos
// from sender to receiver. closeRemainderTo, when non-nil, closes the
// sender's account and sends its remaining balance there after the
// payment; it must not point at the zero address.
func MakePaymentTxn(sender, receiver types.Address, amount uint64, note []byte, closeRemainderTo *types.Address, lease []byte, rekeyTo *types.Address, sp SuggestedParams) (types.Transaction, error) {
	if receiver.IsZero() {
		return types.Transaction{}, types.NewValidationError("receiver", "is required")
	}

	header, err := buildHeader(types.PaymentTx, sender, note, lease, rekeyTo, sp)
	if err != nil {
		return types.Transaction{}, err
	}
	closeTo, err := optionalAddress("closeRemainderTo", closeRemainderTo)
	if err != nil {
		return types.Transaction{}, err
	}

	tx := types.Transaction{
		Type:   types.PaymentTx,
		Header: header,
		PaymentTxnFields: types.PaymentTxnFields{
			Receiver:         receiver,
			Amount:           types.MicroAlgos(amount),
			CloseRemainderTo: closeTo,
		},
	}
	if err := resolveFee(&tx, sp); err != nil {
		return types.Transaction{}, err
	}
	return tx, nil
}
