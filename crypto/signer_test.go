package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algoshant/algotxn/types"
)

func TestGenerateAccountProducesValidKeypair(t *testing.T) {
	addr, sk := GenerateAccount()
	require.False(t, addr.IsZero())

	derived, err := KeypairFromSecret(sk)
	require.NoError(t, err)
	require.Equal(t, addr, derived)
}

func TestSignAndVerifyBytes(t *testing.T) {
	_, sk := GenerateAccount()
	pub, err := KeypairFromSecret(sk)
	require.NoError(t, err)

	msg := []byte("transaction bytes to sign")
	sig, err := RawSignBytes(sk, msg)
	require.NoError(t, err)

	require.True(t, VerifyBytes(types.PublicKey(pub), msg, sig))
	require.False(t, VerifyBytes(types.PublicKey(pub), []byte("tampered"), sig))
}

func TestValidSignatureLength(t *testing.T) {
	require.True(t, ValidSignatureLength(make([]byte, 64)))
	require.False(t, ValidSignatureLength(make([]byte, 63)))
}

func TestGenericHashIsDeterministic(t *testing.T) {
	h1 := GenericHash([]byte("hello"))
	h2 := GenericHash([]byte("hello"))
	h3 := GenericHash([]byte("world"))
	require.Equal(t, h1, h2)
	require.NotEqual(t, h1, h3)
}
