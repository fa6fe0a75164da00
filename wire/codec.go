package wire

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// Ext is a tagged binary blob emitted as a msgpack extension object
// rather than a numeric list. Used exclusively for typed array payloads.
type Ext struct {
	ID   int8
	Data []byte
}

var _ msgpack.CustomEncoder = Ext{}

func (e Ext) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeExtHeader(e.ID, len(e.Data)); err != nil {
		return err
	}
	_, err := enc.Writer().Write(e.Data)
	return err
}

// Marshal encodes a wire document as msgpack. Map keys are sorted so the
// same document always produces the same bytes; the viewer looks records
// up by identifier and never depends on key order.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
