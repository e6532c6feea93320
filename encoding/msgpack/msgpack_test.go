package msgpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeMapRoundTrip(t *testing.T) {
	m := map[string]interface{}{
		"b": uint64(2),
		"a": uint64(1),
		"c": []byte("hi"),
	}

	encoded := Encode(m)
	require.NotEmpty(t, encoded)

	decoded, err := DecodeToMap(encoded)
	require.NoError(t, err)
	require.Equal(t, uint64(1), decoded["a"])
	require.Equal(t, uint64(2), decoded["b"])
}

func TestEncodeIsCanonicallyOrdered(t *testing.T) {
	m1 := map[string]interface{}{"z": uint64(1), "a": uint64(2)}
	m2 := map[string]interface{}{"a": uint64(2), "z": uint64(1)}

	require.Equal(t, Encode(m1), Encode(m2))
}

func TestDecodeInvalidBytes(t *testing.T) {
	_, err := DecodeToMap([]byte{0xff, 0xff, 0xff})
	require.Error(t, err)
}
