package hamming

import (
	"errors"
	"strconv"
	"testing"

	"github.com/nathanhack/lhc/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
)

func TestGeneratorMatrix(t *testing.T) {
	tests := []struct {
		H        mat.SparseMat
		expected mat.SparseMat
	}{
		{mat.CSRMat(2, 3,
			1, 1, 0,
			1, 0, 1,
		), mat.CSRMat(1, 3, 1, 1, 1)},
		{mat.CSRMat(3, 7,
			1, 1, 1, 0, 1, 0, 0,
			1, 1, 0, 1, 0, 1, 0,
			1, 0, 1, 1, 0, 0, 1,
		), mat.CSRMat(4, 7,
			1, 0, 0, 0, 1, 1, 1,
			0, 1, 0, 0, 1, 1, 0,
			0, 0, 1, 0, 1, 0, 1,
			0, 0, 0, 1, 0, 1, 1,
		)},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := GeneratorMatrix(test.H)
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			if !actual.Equals(test.expected) {
				t.Fatalf("expected \n%v\n but found \n%v\n", test.expected, actual)
			}
		})
	}
}

func TestGeneratorMatrixNullSpace(t *testing.T) {
	for l := 1; l <= 64; l++ {
		signature, _ := Resolve(l, 1)
		H, err := ParityCheckMatrix(signature.N, signature.K)
		if err != nil {
			t.Fatalf("%v: expected no error but found: %v", signature, err)
		}
		G, err := GeneratorMatrix(H)
		if err != nil {
			t.Fatalf("%v: expected no error but found: %v", signature, err)
		}

		rows, cols := G.Dims()
		if rows != signature.L || cols != signature.N {
			t.Fatalf("%v: expected %vx%v but found %vx%v", signature, signature.L, signature.N, rows, cols)
		}
		if !internal.ValidateHGMatrices(G, H) {
			t.Fatalf("%v: expected H*G.T == 0", signature)
		}
	}
}

func TestGeneratorMatrixInvalid(t *testing.T) {
	tests := []mat.SparseMat{
		mat.CSRMat(2, 2, 1, 0, 0, 1),
		mat.CSRMat(2, 3, 1, 0, 1, 1, 1, 0),
	}
	for i, H := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			_, err := GeneratorMatrix(H)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument but found %v", err)
			}
		})
	}
}
