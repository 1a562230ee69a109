package option

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

var (
	_ msgpack.CustomEncoder = (*Option[int])(nil)
	_ msgpack.CustomDecoder = (*Option[int])(nil)
)

// EncodeMsgpack encodes an empty Option as nil and a present one as the
// bare value, so optional fields round-trip without wrapper maps.
func (o *Option[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !o.some {
		return enc.EncodeNil()
	}
	return enc.Encode(o.slot.Get())
}

// DecodeMsgpack decodes nil as absence and anything else as a value.
func (o *Option[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if code == msgpcode.Nil {
		if err := dec.DecodeNil(); err != nil {
			return err
		}
		o.Reset()
		return nil
	}
	var v T
	if err := dec.Decode(&v); err != nil {
		return err
	}
	o.Set(v)
	return nil
}
