// Package codec wraps go-scale encoding for types that implement scale interfaces.
package codec

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/spacemeshos/go-scale"
)

// MaxElements bounds the number of elements in any decoded collection.
const MaxElements = 1 << 16

// Encodable is an interface that must be implemented by a struct to be encoded.
type Encodable = scale.Encodable

// Decodable is an interface that must be implemented by a struct to be decoded.
type Decodable = scale.Decodable

// EncodeTo encodes value to a writer stream.
func EncodeTo(w io.Writer, value Encodable) (int, error) {
	return value.EncodeScale(scale.NewEncoder(w, scale.WithEncodeMaxElements(MaxElements)))
}

// DecodeFrom decodes a value using data from a reader stream.
func DecodeFrom(r io.Reader, value Decodable) (int, error) {
	return value.DecodeScale(scale.NewDecoder(r, scale.WithDecodeMaxElements(MaxElements)))
}

var encoderPool = sync.Pool{
	New: func() any {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getEncoderBuffer() *bytes.Buffer {
	return encoderPool.Get().(*bytes.Buffer)
}

func putEncoderBuffer(b *bytes.Buffer) {
	b.Reset()
	encoderPool.Put(b)
}

// Encode value to a byte buffer.
func Encode(value Encodable) ([]byte, error) {
	b := getEncoderBuffer()
	defer putEncoderBuffer(b)
	if _, err := EncodeTo(b, value); err != nil {
		return nil, err
	}
	buf := make([]byte, b.Len())
	copy(buf, b.Bytes())
	return buf, nil
}

// MustEncode encodes value and panics on error.
func MustEncode(value Encodable) []byte {
	buf, err := Encode(value)
	if err != nil {
		panic(fmt.Sprintf("encode %T: %v", value, err))
	}
	return buf
}

// Decode value from a byte buffer. Trailing bytes are rejected.
func Decode(buf []byte, value Decodable) error {
	r := bytes.NewReader(buf)
	if _, err := DecodeFrom(r, value); err != nil {
		return fmt.Errorf("decode from buffer: %w", err)
	}
	if r.Len() != 0 {
		return fmt.Errorf("decode from buffer: %d trailing bytes", r.Len())
	}
	return nil
}

// EncodeSlice encodes slice of encodable values.
func EncodeSlice[V any, H scale.EncodablePtr[V]](value []V) ([]byte, error) {
	var b bytes.Buffer
	_, err := scale.EncodeStructSlice[V, H](scale.NewEncoder(&b, scale.WithEncodeMaxElements(MaxElements)), value)
	if err != nil {
		return nil, fmt.Errorf("encode struct slice: %w", err)
	}
	return b.Bytes(), nil
}

// DecodeSlice decodes slice of decodable values.
func DecodeSlice[V any, H scale.DecodablePtr[V]](buf []byte) ([]V, error) {
	v, _, err := scale.DecodeStructSlice[V, H](
		scale.NewDecoder(bytes.NewReader(buf), scale.WithDecodeMaxElements(MaxElements)),
	)
	if err != nil {
		return nil, fmt.Errorf("decode struct slice: %w", err)
	}
	return v, nil
}
