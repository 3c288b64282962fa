package core

import (
	"fmt"
	"math"

	"github.com/spacemeshos/go-pluginaccount/common/types"
)

const entryFelts = 4

// Calldata flattens the batch into felts:
// [n, (to, selector, offset, len) * n, buflen, buffer..., nonce].
func (b *Batch) Calldata() []Felt {
	rst := make([]Felt, 0, 3+entryFelts*len(b.Entries)+len(b.Buffer))
	rst = append(rst, types.NewFelt(uint64(len(b.Entries))))
	for _, e := range b.Entries {
		rst = append(rst,
			e.To.Felt(),
			e.Selector,
			types.NewFelt(uint64(e.DataOffset)),
			types.NewFelt(uint64(e.DataLen)),
		)
	}
	rst = append(rst, types.NewFelt(uint64(len(b.Buffer))))
	rst = append(rst, b.Buffer...)
	return append(rst, types.NewFelt(b.Nonce))
}

type reader struct {
	data []Felt
	pos  int
}

func (r *reader) next(what string) (Felt, error) {
	if r.pos >= len(r.data) {
		return Felt{}, fmt.Errorf("%w: calldata truncated at %s", ErrMalformedBatch, what)
	}
	f := r.data[r.pos]
	r.pos++
	return f, nil
}

func (r *reader) uint(what string, limit uint64) (uint64, error) {
	f, err := r.next(what)
	if err != nil {
		return 0, err
	}
	v, err := f.Uint64()
	if err != nil || v > limit {
		return 0, fmt.Errorf("%w: %s %s out of range", ErrMalformedBatch, what, f)
	}
	return v, nil
}

// DecodeCalldata parses the batch from the flat form produced by Calldata.
func DecodeCalldata(data []Felt) (*Batch, error) {
	r := &reader{data: data}
	n, err := r.uint("entries length", uint64(len(data)/entryFelts))
	if err != nil {
		return nil, err
	}
	batch := &Batch{Entries: make([]CallArrayEntry, n)}
	for i := range batch.Entries {
		entry := &batch.Entries[i]
		to, err := r.next("target")
		if err != nil {
			return nil, err
		}
		if entry.To, err = types.AddressFromFelt(to); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrMalformedBatch, i, err)
		}
		if entry.Selector, err = r.next("selector"); err != nil {
			return nil, err
		}
		offset, err := r.uint("offset", math.MaxUint32)
		if err != nil {
			return nil, err
		}
		length, err := r.uint("length", math.MaxUint32)
		if err != nil {
			return nil, err
		}
		entry.DataOffset, entry.DataLen = uint32(offset), uint32(length)
	}
	buflen, err := r.uint("buffer length", uint64(len(data)-r.pos))
	if err != nil {
		return nil, err
	}
	batch.Buffer = make([]Felt, buflen)
	copy(batch.Buffer, data[r.pos:])
	r.pos += int(buflen)
	if batch.Nonce, err = r.uint("nonce", math.MaxUint64); err != nil {
		return nil, err
	}
	if r.pos != len(data) {
		return nil, fmt.Errorf("%w: %d trailing felts", ErrMalformedBatch, len(data)-r.pos)
	}
	return batch, nil
}
