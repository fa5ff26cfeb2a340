package internal

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidArgument is returned for construction parameters or words that can never be valid.
var ErrInvalidArgument = errors.New("invalid argument")

// Binomial returns n choose k exactly. It multiplies the rationals (n-i)/(i+1) one at a
// time so every partial product stays an exact value.
func Binomial(n, k int) (*big.Int, error) {
	if k < 0 {
		return nil, fmt.Errorf("k must be a non-negative integer but found %v: %w", k, ErrInvalidArgument)
	}

	product := big.NewRat(1, 1)
	for i := 0; i < k; i++ {
		product.Mul(product, big.NewRat(int64(n-i), int64(i+1)))
	}

	//the product is always integral so the denominator is 1
	return new(big.Int).Set(product.Num()), nil
}

// CeilLog2 returns the smallest c with 2^c >= v. v must be positive.
func CeilLog2(v *big.Int) int {
	if v.Sign() <= 0 {
		panic(fmt.Sprintf("CeilLog2 requires a positive value but found %v", v))
	}
	return new(big.Int).Sub(v, big.NewInt(1)).BitLen()
}

// IsPowerOfTwo reports whether i is a positive power of two.
func IsPowerOfTwo(i int) bool {
	if i < 1 {
		return false
	}
	return i&(i-1) == 0
}
