package core

import (
	"fmt"
	"math"
)

// Limits bound the size of the batch accepted by the account.
type Limits struct {
	MaxCalls  int `mapstructure:"max-calls"`
	MaxBuffer int `mapstructure:"max-buffer"`
}

// DefaultLimits returns limits used unless configured otherwise.
func DefaultLimits() Limits {
	return Limits{
		MaxCalls:  64,
		MaxBuffer: 4096,
	}
}

// Check that batch fits into the limits. Zero limit is not enforced.
func (l Limits) Check(batch *Batch) error {
	if l.MaxCalls > 0 && len(batch.Entries) > l.MaxCalls {
		return fmt.Errorf("%w: %d calls exceed limit %d", ErrMalformedBatch, len(batch.Entries), l.MaxCalls)
	}
	if l.MaxBuffer > 0 && len(batch.Buffer) > l.MaxBuffer {
		return fmt.Errorf("%w: buffer of %d exceeds limit %d", ErrMalformedBatch, len(batch.Buffer), l.MaxBuffer)
	}
	return nil
}

// Range returns the part of the buffer referenced by the entry.
// Returned slice aliases the buffer.
func (e *CallArrayEntry) Range(buffer []Felt) ([]Felt, error) {
	offset, length := uint64(e.DataOffset), uint64(e.DataLen)
	if offset+length > uint64(len(buffer)) {
		return nil, fmt.Errorf("%w: range [%d, %d) out of buffer with length %d",
			ErrMalformedBatch, offset, offset+length, len(buffer))
	}
	return buffer[offset : offset+length], nil
}

// Decode calls from entries and the shared buffer. Calls are returned
// in the order of entries, each with a copy of its argument block.
func Decode(entries []CallArrayEntry, buffer []Felt) ([]Call, error) {
	calls := make([]Call, 0, len(entries))
	for i := range entries {
		args, err := entries[i].Range(buffer)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		arguments := make([]Felt, len(args))
		copy(arguments, args)
		calls = append(calls, Call{
			To:        entries[i].To,
			Selector:  entries[i].Selector,
			Arguments: arguments,
		})
	}
	return calls, nil
}

// Encode calls into entries referencing a single buffer. Argument blocks
// are laid out contiguously in the order of calls.
func Encode(calls []Call) ([]CallArrayEntry, []Felt) {
	total := 0
	for i := range calls {
		total += len(calls[i].Arguments)
	}
	if total > math.MaxUint32 {
		panic(fmt.Sprintf("buffer of %d felts can't be addressed", total))
	}
	entries := make([]CallArrayEntry, 0, len(calls))
	buffer := make([]Felt, 0, total)
	for i := range calls {
		entries = append(entries, CallArrayEntry{
			To:         calls[i].To,
			Selector:   calls[i].Selector,
			DataOffset: uint32(len(buffer)),
			DataLen:    uint32(len(calls[i].Arguments)),
		})
		buffer = append(buffer, calls[i].Arguments...)
	}
	return entries, buffer
}

// NewBatch encodes calls into a batch with the nonce.
func NewBatch(nonce uint64, calls ...Call) *Batch {
	entries, buffer := Encode(calls)
	return &Batch{Entries: entries, Buffer: buffer, Nonce: nonce}
}
