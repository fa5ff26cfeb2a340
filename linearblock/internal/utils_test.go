package internal

import (
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
)

func TestValidateHGMatrices(t *testing.T) {
	H := mat.CSRMat(3, 7,
		1, 1, 0, 1, 1, 0, 0,
		1, 0, 1, 1, 0, 1, 0,
		0, 1, 1, 1, 0, 0, 1,
	)
	tests := []struct {
		G        mat.SparseMat
		expected bool
	}{
		{mat.CSRMat(4, 7,
			1, 0, 0, 0, 1, 1, 0,
			0, 1, 0, 0, 1, 0, 1,
			0, 0, 1, 0, 0, 1, 1,
			0, 0, 0, 1, 1, 1, 1,
		), true},
		{mat.CSRMat(4, 7,
			1, 0, 0, 0, 1, 1, 1,
			0, 1, 0, 0, 1, 0, 1,
			0, 0, 1, 0, 0, 1, 1,
			0, 0, 0, 1, 1, 1, 1,
		), false},
		{mat.CSRMat(1, 6, 1, 0, 0, 0, 0, 0), false},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := ValidateHGMatrices(test.G, H)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestParity(t *testing.T) {
	tests := []struct {
		vec      mat.SparseVector
		expected int
	}{
		{mat.CSRVec(4), 0},
		{mat.CSRVec(4, 1, 0, 0, 0), 1},
		{mat.CSRVec(4, 1, 1, 0, 1), 1},
		{mat.CSRVec(4, 1, 1, 1, 1), 0},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if actual := Parity(test.vec); actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}
