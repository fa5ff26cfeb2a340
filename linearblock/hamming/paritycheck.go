package hamming

import (
	"fmt"

	"github.com/nathanhack/lhc/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
)

// ParityCheckMatrix builds the k x n parity check matrix H = [P | I].
// The first n-k columns hold the positions n down to 3 that are not powers of two,
// each written as a k bit binary number with the most significant bit in row 0.
// The last k columns hold the identity for the power of two positions. Every column
// is distinct and non-zero so a single bit error produces the syndrome of its column.
func ParityCheckMatrix(n, k int) (mat.SparseMat, error) {
	if k < 1 {
		return nil, fmt.Errorf("k must be >= 1 but found %v: %w", k, ErrInvalidArgument)
	}
	if n <= k {
		return nil, fmt.Errorf("n (%v) must be greater than k (%v): %w", n, k, ErrInvalidArgument)
	}
	if k < 63 && n >= 1<<k {
		return nil, fmt.Errorf("n (%v) must be less than 2^k (%v): %w", n, 1<<k, ErrInvalidArgument)
	}

	l := n - k
	H := mat.CSRMat(k, n)

	column := 0
	for position := n; position > 2; position-- {
		if internal.IsPowerOfTwo(position) {
			continue
		}
		if column == l {
			return nil, fmt.Errorf("(%v, %v, %v) has more data positions than data columns: %w", n, l, k, ErrInvalidArgument)
		}
		for row := 0; row < k; row++ {
			if position&(1<<(k-1-row)) != 0 {
				H.Set(row, column, 1)
			}
		}
		column++
	}
	if column != l {
		return nil, fmt.Errorf("(%v, %v, %v) has %v data positions but requires %v: %w", n, l, k, column, l, ErrInvalidArgument)
	}

	for i := 0; i < k; i++ {
		H.Set(i, l+i, 1)
	}
	return H, nil
}
