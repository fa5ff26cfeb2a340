package hamming

import (
	"fmt"

	mat "github.com/nathanhack/sparsemat"
)

// GeneratorMatrix derives the systematic generator G = [I | P.T] from H = [P | I].
// Exactly the k identity columns are dropped from H to get P.
func GeneratorMatrix(H mat.SparseMat) (mat.SparseMat, error) {
	k, n := H.Dims()
	l := n - k
	if l < 1 {
		return nil, fmt.Errorf("H must have more columns than rows but found %vx%v: %w", k, n, ErrInvalidArgument)
	}

	//the trailing block must be the identity for [I | P.T] to be in the null space of H
	if !H.Slice(0, l, k, k).Equals(mat.CSRIdentity(k)) {
		return nil, fmt.Errorf("H must end with a %vx%v identity block: %w", k, k, ErrInvalidArgument)
	}

	PT := H.Slice(0, 0, k, l).T()

	G := mat.CSRMat(l, n)
	G.SetMatrix(mat.CSRIdentity(l), 0, 0)
	G.SetMatrix(PT, 0, l)
	return G, nil
}
