package types

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"
)

// FeltLength is the size of the felt in bytes.
const FeltLength = 32

// ErrFeltOverflow is returned if value doesn't fit into a felt.
var ErrFeltOverflow = errors.New("felt overflow")

// Felt is a field element. Stored as a 32 byte big-endian unsigned integer.
type Felt [FeltLength]byte

// NewFelt creates felt from uint64.
func NewFelt(value uint64) Felt {
	return FeltFromUint256(uint256.NewInt(value))
}

// FeltFromUint256 converts uint256 into a felt.
func FeltFromUint256(value *uint256.Int) Felt {
	return Felt(value.Bytes32())
}

// FeltFromBytes left pads b to the size of the felt.
// Fails if b is longer than the felt.
func FeltFromBytes(b []byte) (Felt, error) {
	var f Felt
	if len(b) > FeltLength {
		return f, fmt.Errorf("%w: %d bytes", ErrFeltOverflow, len(b))
	}
	copy(f[FeltLength-len(b):], b)
	return f, nil
}

// HexToFelt parses felt from 0x-prefixed hex string.
func HexToFelt(s string) (Felt, error) {
	value, err := uint256.FromHex(s)
	if err != nil {
		return Felt{}, fmt.Errorf("parse felt %q: %w", s, err)
	}
	return FeltFromUint256(value), nil
}

// Uint256 returns felt as uint256.
func (f Felt) Uint256() *uint256.Int {
	return new(uint256.Int).SetBytes32(f[:])
}

// Uint64 returns felt as uint64. Fails if the value doesn't fit.
func (f Felt) Uint64() (uint64, error) {
	value := f.Uint256()
	if !value.IsUint64() {
		return 0, fmt.Errorf("%w: %s doesn't fit uint64", ErrFeltOverflow, value.Hex())
	}
	return value.Uint64(), nil
}

// IsZero returns true if felt is equal to zero.
func (f Felt) IsZero() bool {
	return f == Felt{}
}

// Bytes returns felt as a slice.
func (f Felt) Bytes() []byte {
	return f[:]
}

// String returns felt in 0x-prefixed hex without leading zeroes.
func (f Felt) String() string {
	return f.Uint256().Hex()
}

// ShortString returns first 5 hex characters of the full representation.
func (f Felt) ShortString() string {
	return hex.EncodeToString(f[:])[:5]
}

// MarshalText implements encoding.TextMarshaler.
func (f Felt) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Felt) UnmarshalText(text []byte) error {
	parsed, err := HexToFelt(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// EncodeScale implements scale codec interface.
func (f *Felt) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, f[:])
}

// DecodeScale implements scale codec interface.
func (f *Felt) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, f[:])
}

// FeltsToBytes concatenates felts.
func FeltsToBytes(felts ...Felt) []byte {
	rst := make([]byte, 0, len(felts)*FeltLength)
	for i := range felts {
		rst = append(rst, felts[i][:]...)
	}
	return rst
}

// BytesToFelts splits b into felts. Length of b must be a multiple of FeltLength.
func BytesToFelts(b []byte) ([]Felt, error) {
	if len(b)%FeltLength != 0 {
		return nil, fmt.Errorf("length %d is not a multiple of %d", len(b), FeltLength)
	}
	rst := make([]Felt, len(b)/FeltLength)
	for i := range rst {
		copy(rst[i][:], b[i*FeltLength:])
	}
	return rst, nil
}

// Felts is a slice of felts that can be logged as an array.
type Felts []Felt

// MarshalLogArray implements zapcore.ArrayMarshaler.
func (fs Felts) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, f := range fs {
		enc.AppendString(f.String())
	}
	return nil
}
