package hamming

import (
	"fmt"
	"math/big"

	"github.com/nathanhack/lhc/linearblock/internal"
)

// ErrInvalidArgument is returned for bad construction parameters and malformed words.
var ErrInvalidArgument = internal.ErrInvalidArgument

// Signature is the (n, l, k) description of a code: n channel word length,
// l source word length and k redundant digits. N == L + K.
type Signature struct {
	N int
	L int
	K int
}

func (s Signature) String() string {
	return fmt.Sprintf("(%v, %v, %v)", s.N, s.L, s.K)
}

// Redundancy returns the minimum number of redundant bits needed to address zero
// through ec simultaneous bit errors in a word of n bits:
//
//	k_min = ceil(log2(sum_{x=0..ec} C(n, x)))
func Redundancy(ec, n int) (int, error) {
	if ec < 0 {
		return 0, fmt.Errorf("ec must be >= 0 but found %v: %w", ec, ErrInvalidArgument)
	}
	if n < 0 {
		return 0, fmt.Errorf("n must be >= 0 but found %v: %w", n, ErrInvalidArgument)
	}

	sum := new(big.Int)
	for x := 0; x <= ec; x++ {
		c, err := internal.Binomial(n, x)
		if err != nil {
			return 0, err
		}
		sum.Add(sum, c)
	}
	return internal.CeilLog2(sum), nil
}

// Resolve finds the minimal code signature for source words of length l that corrects
// ec bit errors. k_min depends on n, so n is searched upward from l until n-k_min(n) == l.
func Resolve(l, ec int) (Signature, error) {
	if l < 1 {
		return Signature{}, fmt.Errorf("l must be >= 1 but found %v: %w", l, ErrInvalidArgument)
	}
	if ec < 0 {
		return Signature{}, fmt.Errorf("ec must be >= 0 but found %v: %w", ec, ErrInvalidArgument)
	}

	n := l
	for {
		k, err := Redundancy(ec, n)
		if err != nil {
			return Signature{}, err
		}
		if n-k == l {
			return Signature{N: n, L: l, K: k}, nil
		}
		n++
	}
}
