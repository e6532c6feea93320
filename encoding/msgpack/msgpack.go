// Package msgpack is the thin wrapper this module uses around the
// Algorand ecosystem's canonical msgpack codec. Every other component
// reaches the wire through Encode/Decode; nothing in this module calls
// the underlying codec package directly.
package msgpack

import (
	"reflect"

	"github.com/algorand/go-codec/codec"
)

var handle = newCanonicalHandle()

func newCanonicalHandle() *codec.MsgpackHandle {
	h := new(codec.MsgpackHandle)
	h.Canonical = true
	h.RawToString = false
	h.WriteExt = true
	h.MapType = reflect.TypeOf(map[string]interface{}(nil))
	return h
}

// Encode serializes obj as canonical msgpack: map keys sorted
// lexicographically, byte strings as msgpack bin, minimal-width
// unsigned integers.
func Encode(obj interface{}) []byte {
	var b []byte
	enc := codec.NewEncoderBytes(&b, handle)
	enc.MustEncode(obj)
	return b
}

// Decode deserializes canonical msgpack bytes into objPtr.
func Decode(b []byte, objPtr interface{}) error {
	dec := codec.NewDecoderBytes(b, handle)
	return dec.Decode(objPtr)
}

// DecodeToMap deserializes canonical msgpack bytes into a generic map,
// the shape the canonical encoder/decoder in package types operates on.
func DecodeToMap(b []byte) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := Decode(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
