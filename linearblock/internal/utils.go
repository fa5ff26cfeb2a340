package internal

import (
	mat "github.com/nathanhack/sparsemat"
)

// ValidateHGMatrices tests if G*H.T == 0 where H.T is the transpose of H.
func ValidateHGMatrices(G, H mat.SparseMat) bool {
	gRows, gCols := G.Dims()
	hRows, hCols := H.Dims()
	if gCols != hCols {
		return false
	}

	//caching the rows of H gives us the columns of H.T
	cache := make([]mat.SparseVector, hRows)
	for i := 0; i < hRows; i++ {
		cache[i] = H.Row(i)
	}
	for i := 0; i < gRows; i++ {
		row := G.Row(i)
		for j := 0; j < hRows; j++ {
			if row.Dot(cache[j]) > 0 {
				return false
			}
		}
	}

	return true
}

// Parity returns the XOR of all bits in vec.
func Parity(vec mat.SparseVector) int {
	return vec.HammingWeight() % 2
}
