package internal

import (
	"context"
	"strconv"
	"testing"
	"time"

	mat "github.com/nathanhack/sparsemat"
)

func TestCalculateRank(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		expected int
	}{
		{ //Hamming 7
			mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1),
			3,
		},
		{ //one linearly dependent row
			mat.CSRMat(4, 5, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 1),
			3,
		},
		{ //zero matrix
			mat.CSRMat(2, 3),
			0,
		},
		{ //more rows than columns
			mat.CSRMat(3, 2, 1, 0, 0, 1, 1, 1),
			2,
		},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := CalculateRank(context.Background(), test.input, 2, false)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestCalculateRankCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	H := mat.CSRMat(3, 7, 1, 0, 0, 1, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 1)
	if actual := CalculateRank(ctx, H, 1, false); actual != -1 {
		t.Fatalf("expected -1 but found %v", actual)
	}
}

func TestCalculateRankReturns(t *testing.T) {
	tests := []struct {
		input    mat.SparseMat
		expected int
	}{
		{ //(3,1,2) code, no row below a pivot needs reducing
			mat.CSRMat(2, 3, 1, 1, 0, 1, 0, 1),
			2,
		},
		{ //every lower row shares the pivot column
			mat.CSRMat(3, 3, 1, 0, 0, 1, 1, 0, 1, 1, 1),
			3,
		},
		{ //single row
			mat.CSRMat(1, 4, 0, 1, 1, 0),
			1,
		},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			done := make(chan int, 1)
			go func() {
				done <- CalculateRank(context.Background(), test.input, 2, false)
			}()

			select {
			case actual := <-done:
				if actual != test.expected {
					t.Fatalf("expected %v but found %v", test.expected, actual)
				}
			case <-time.After(5 * time.Second):
				t.Fatalf("CalculateRank did not return")
			}
		})
	}
}
