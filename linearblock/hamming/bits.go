package hamming

import (
	"fmt"
	"strings"

	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

// Bits is a sequence of binary digits, each element is 0 or 1.
// Index 0 is the leftmost (most significant) digit.
type Bits []uint8

// ParseBits parses a string of '0' and '1' characters of exactly width digits.
func ParseBits(s string, width int) (Bits, error) {
	if len(s) != width {
		return nil, fmt.Errorf("expected %v bits but found %v in %q: %w", width, len(s), s, ErrInvalidArgument)
	}
	bits := make(Bits, width)
	for i, r := range s {
		switch r {
		case '0':
		case '1':
			bits[i] = 1
		default:
			return nil, fmt.Errorf("invalid bit %q at position %v: %w", r, i, ErrInvalidArgument)
		}
	}
	return bits, nil
}

// BitsFromInts copies values into Bits; every value must be 0 or 1 and there must be exactly width of them.
func BitsFromInts(values []int, width int) (Bits, error) {
	if len(values) != width {
		return nil, fmt.Errorf("expected %v bits but found %v: %w", width, len(values), ErrInvalidArgument)
	}
	bits := make(Bits, width)
	for i, v := range values {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("invalid bit %v at position %v: %w", v, i, ErrInvalidArgument)
		}
		bits[i] = uint8(v)
	}
	return bits, nil
}

// BitsFromUint writes value as a width digit binary number, zero padded on the left.
// Padding means a value that lost leading digits before reaching here cannot be detected,
// so a warning is logged. Values that need more than width digits are rejected.
func BitsFromUint(value uint64, width int) (Bits, error) {
	if width < 1 || width > 64 {
		return nil, fmt.Errorf("width must be in [1,64] but found %v: %w", width, ErrInvalidArgument)
	}
	if width < 64 && value>>width != 0 {
		return nil, fmt.Errorf("%v does not fit in %v bits: %w", value, width, ErrInvalidArgument)
	}
	logrus.Warnf("integer input %v is zero padded to %v bits, truncated input cannot be recognized", value, width)

	return uintToBits(value, width), nil
}

func uintToBits(value uint64, width int) Bits {
	bits := make(Bits, width)
	for i := 0; i < width; i++ {
		bits[i] = uint8(value>>(width-1-i)) & 1
	}
	return bits
}

// BitsFromVector converts a GF(2) vector into Bits.
func BitsFromVector(vec mat.SparseVector) Bits {
	bits := make(Bits, vec.Len())
	for i := range bits {
		bits[i] = uint8(vec.At(i))
	}
	return bits
}

// Vector converts b into a GF(2) vector.
func (b Bits) Vector() mat.SparseVector {
	vec := mat.CSRVec(len(b))
	for i, v := range b {
		if v != 0 {
			vec.Set(i, 1)
		}
	}
	return vec
}

// Uint returns b read as a binary number. Only the last 64 digits are used.
func (b Bits) Uint() uint64 {
	var value uint64
	for _, v := range b {
		value = value<<1 | uint64(v&1)
	}
	return value
}

// Parity returns the XOR of all digits.
func (b Bits) Parity() uint8 {
	var p uint8
	for _, v := range b {
		p ^= v
	}
	return p & 1
}

func (b Bits) Equal(o Bits) bool {
	if len(b) != len(o) {
		return false
	}
	for i := range b {
		if b[i] != o[i] {
			return false
		}
	}
	return true
}

func (b Bits) String() string {
	buf := strings.Builder{}
	buf.Grow(len(b))
	for _, v := range b {
		if v != 0 {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return buf.String()
}
