package linearblock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nathanhack/lhc/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
)

// LinearBlock contains the parity matrix H and the systematic generator G = [I | P].
// The message occupies the first MessageLength() symbols of every codeword.
type LinearBlock struct {
	H mat.SparseMat // the parity matrix
	G mat.SparseMat // the systematic generator matrix
}

// For JSON unmarshalling
type linearblock struct {
	H mat.CSRMatrix
	G mat.CSRMatrix
}

// UnmarshalJSON is needed because LinearBlock has mat.SparseMat fields and requires special handling
func (l *LinearBlock) UnmarshalJSON(bytes []byte) error {
	var lb linearblock
	err := json.Unmarshal(bytes, &lb)
	if err != nil {
		return err
	}

	l.H = &lb.H
	l.G = &lb.G
	return nil
}

// Encode takes in a message and encodes it using the linear block, returning a codeword
func (l *LinearBlock) Encode(message mat.SparseVector) (codeword mat.SparseVector) {
	rows, cols := l.G.Dims()
	if message.Len() != rows {
		panic(fmt.Sprintf("message length == %v is required but found %v", rows, message.Len()))
	}

	codeword = mat.CSRVec(cols)
	codeword.MulMat(message, l.G)
	return codeword
}

// Decode takes in a codeword and returns the message contained in it
func (l *LinearBlock) Decode(codeword mat.SparseVector) (message mat.SparseVector) {
	if codeword.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), codeword.Len()))
	}
	return codeword.Slice(0, l.MessageLength())
}

// Syndrome returns H*codeword.T
func (l *LinearBlock) Syndrome(codeword mat.SparseVector) (syndrome mat.SparseVector) {
	if codeword.Len() != l.CodewordLength() {
		panic(fmt.Sprintf("codeword length == %v required but found %v", l.CodewordLength(), codeword.Len()))
	}
	syndrome = mat.CSRVec(l.ParitySymbols())
	syndrome.MatMul(l.H, codeword)
	return
}

func (l *LinearBlock) MessageLength() int {
	k, _ := l.G.Dims()
	return k
}
func (l *LinearBlock) ParitySymbols() int {
	m, _ := l.H.Dims()
	return m
}
func (l *LinearBlock) CodewordLength() int {
	_, n := l.H.Dims()
	return n
}
func (l *LinearBlock) CodeRate() float64 {
	return float64(l.MessageLength()) / float64(l.CodewordLength())
}

// Validate will test if this linearblock satisfies G*H.T=0, where G is the generator matrix and H.T is the transpose of H
func (l *LinearBlock) Validate() bool {
	return internal.ValidateHGMatrices(l.G, l.H)
}

// FullRank reports whether the rows of H are linearly independent.
func (l *LinearBlock) FullRank(ctx context.Context, threads int) bool {
	return internal.CalculateRank(ctx, l.H, threads, false) == l.ParitySymbols()
}

func (l *LinearBlock) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nH:\n")
	buf.WriteString(l.H.String())
	buf.WriteString("\nG:\n")
	buf.WriteString(l.G.String())
	buf.WriteString("\n}\n")
	return buf.String()
}
