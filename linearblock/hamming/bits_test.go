package hamming

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestParseBits(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected Bits
		err      bool
	}{
		{"10101", 5, Bits{1, 0, 1, 0, 1}, false},
		{"0", 1, Bits{0}, false},
		{"101", 5, nil, true},
		{"10201", 5, nil, true},
		{"1010 ", 5, nil, true},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := ParseBits(test.input, test.width)
			if test.err {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("expected ErrInvalidArgument but found %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			if !actual.Equal(test.expected) {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestBitsFromInts(t *testing.T) {
	actual, err := BitsFromInts([]int{1, 1, 0}, 3)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if actual.String() != "110" {
		t.Fatalf("expected 110 but found %v", actual)
	}

	if _, err := BitsFromInts([]int{1, 2, 0}, 3); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument but found %v", err)
	}
	if _, err := BitsFromInts([]int{1, 0}, 3); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument but found %v", err)
	}
}

func TestBitsFromUint(t *testing.T) {
	tests := []struct {
		value    uint64
		width    int
		expected string
		err      bool
	}{
		{5, 5, "00101", false},
		{0, 3, "000", false},
		{31, 5, "11111", false},
		{32, 5, "", true},
		{1, 0, "", true},
		{1 << 63, 64, "1" + strings.Repeat("0", 63), false},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := BitsFromUint(test.value, test.width)
			if test.err {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("expected ErrInvalidArgument but found %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			if actual.String() != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
			if actual.Uint() != test.value {
				t.Fatalf("expected %v but found %v", test.value, actual.Uint())
			}
		})
	}
}

func TestBitsVector(t *testing.T) {
	bits := Bits{1, 0, 0, 1, 1}
	actual := BitsFromVector(bits.Vector())
	if !actual.Equal(bits) {
		t.Fatalf("expected %v but found %v", bits, actual)
	}
	if bits.Parity() != 1 {
		t.Fatalf("expected parity 1 but found %v", bits.Parity())
	}
}
