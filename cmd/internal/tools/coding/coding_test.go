package coding

import (
	"errors"
	"strconv"
	"testing"

	"github.com/nathanhack/lhc/linearblock/hamming"
)

func TestParse(t *testing.T) {
	tests := []struct {
		integer  bool
		arg      string
		width    int
		expected string
		err      bool
	}{
		{false, "0101", 4, "0101", false},
		{false, "101", 4, "", true},
		{true, "5", 4, "0101", false},
		{true, "17", 4, "", true},
		{true, "-1", 4, "", true},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			Integer = test.integer
			defer func() { Integer = false }()

			actual, err := parse(test.arg, test.width)
			if test.err {
				if !errors.Is(err, hamming.ErrInvalidArgument) {
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
		})
	}
}
