package hamming

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nathanhack/lhc/linearblock"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Codec encodes and decodes words with a linear Hamming code, optionally extended by an
// overall parity bit (SECDED). A Codec never changes after New so it can be shared by
// any number of goroutines.
type Codec struct {
	block     *linearblock.LinearBlock
	signature Signature
	extended  bool
	syndromes []uint64 // column c of H read as a binary number
}

// New creates the single error correcting Hamming code for source words of length l.
// If extended is set an overall parity bit is appended making it a SECDED code.
func New(l int, extended bool) (*Codec, error) {
	return NewCodec(l, 1, extended)
}

// NewCodec creates the Hamming code for source words of length l that corrects ec errors.
// Only signatures whose parity positions fill exactly the power of two positions can be
// laid out, which in practice means ec == 1.
func NewCodec(l, ec int, extended bool) (*Codec, error) {
	signature, err := Resolve(l, ec)
	if err != nil {
		return nil, err
	}

	H, err := ParityCheckMatrix(signature.N, signature.K)
	if err != nil {
		return nil, fmt.Errorf("unable to create parity check matrix for %v: %w", signature, err)
	}

	G, err := GeneratorMatrix(H)
	if err != nil {
		return nil, fmt.Errorf("unable to create generator matrix for %v: %w", signature, err)
	}

	c := &Codec{
		block:     &linearblock.LinearBlock{H: H, G: G},
		signature: signature,
		extended:  extended,
		syndromes: make([]uint64, signature.N),
	}
	for i := range c.syndromes {
		c.syndromes[i] = BitsFromVector(H.Column(i)).Uint()
	}

	logrus.Debugf("%v generated", c)
	return c, nil
}

// Signature returns the (n, l, k) of the underlying Hamming code, excluding any overall parity bit.
func (c *Codec) Signature() Signature {
	return c.signature
}

func (c *Codec) Extended() bool {
	return c.extended
}

// ParityCheckMatrix returns a copy of H.
func (c *Codec) ParityCheckMatrix() mat.SparseMat {
	return mat.CSRMatCopy(c.block.H)
}

// GeneratorMatrix returns a copy of G.
func (c *Codec) GeneratorMatrix() mat.SparseMat {
	return mat.CSRMatCopy(c.block.G)
}

// MessageLength is the number of bits Encode accepts.
func (c *Codec) MessageLength() int {
	return c.signature.L
}

// CodewordLength is the number of bits Encode returns and Decode accepts.
func (c *Codec) CodewordLength() int {
	if c.extended {
		return c.signature.N + 1
	}
	return c.signature.N
}

// Validate checks that H has full rank and G lies in the null space of H.
func (c *Codec) Validate(ctx context.Context, threads int) bool {
	return c.block.Validate() && c.block.FullRank(ctx, threads)
}

func (c *Codec) String() string {
	if c.extended {
		return fmt.Sprintf("%v extended linear Hamming code", c.signature)
	}
	return fmt.Sprintf("%v linear Hamming code", c.signature)
}

// Encode returns word*G, followed by the overall parity bit when extended.
func (c *Codec) Encode(word Bits) (Bits, error) {
	if len(word) != c.signature.L {
		return nil, fmt.Errorf("word length == %v is required but found %v: %w", c.signature.L, len(word), ErrInvalidArgument)
	}
	if err := checkBinary(word); err != nil {
		return nil, err
	}

	codeword := BitsFromVector(c.block.Encode(word.Vector()))
	if c.extended {
		codeword = append(codeword, codeword.Parity())
	}
	return codeword, nil
}

// Decode checks received against H and repairs a single bit error.
//
// For extended codes the overall parity is cross checked:
//
//	syndrome      parity mismatch  status
//	zero          no               Valid
//	zero          yes              Corrected, the overall parity bit was flipped
//	column p      yes              Corrected, bit p was flipped
//	column p      no               Uncorrectable, at least two errors
//	no column     any              Uncorrectable
//
// Without the parity bit a syndrome equal to column p is always treated as bit p.
func (c *Codec) Decode(received Bits) (Result, error) {
	if len(received) != c.CodewordLength() {
		return Result{}, fmt.Errorf("codeword length == %v is required but found %v: %w", c.CodewordLength(), len(received), ErrInvalidArgument)
	}
	if err := checkBinary(received); err != nil {
		return Result{}, err
	}

	n := c.signature.N
	payload := make(Bits, n)
	copy(payload, received[:n])

	parityMismatch := false
	if c.extended {
		parityMismatch = received[n] != payload.Parity()
	}

	syndrome := BitsFromVector(c.block.Syndrome(payload.Vector())).Uint()
	if syndrome == 0 {
		if parityMismatch {
			return c.corrected(payload, n), nil
		}
		return Result{
			Status:   Valid,
			Word:     c.message(payload),
			Codeword: c.withParity(payload),
			Position: -1,
		}, nil
	}

	position := slices.Index(c.syndromes, syndrome)
	if position == -1 || (c.extended && !parityMismatch) {
		return Result{Status: Uncorrectable, Position: -1}, nil
	}

	payload[position] ^= 1
	return c.corrected(payload, position), nil
}

func (c *Codec) corrected(payload Bits, position int) Result {
	return Result{
		Status:   Corrected,
		Word:     c.message(payload),
		Codeword: c.withParity(payload),
		Position: position,
	}
}

func (c *Codec) message(payload Bits) Bits {
	return BitsFromVector(c.block.Decode(payload.Vector()))
}

func (c *Codec) withParity(payload Bits) Bits {
	if !c.extended {
		return payload
	}
	return append(payload, payload.Parity())
}

func checkBinary(bits Bits) error {
	for i, v := range bits {
		if v > 1 {
			return fmt.Errorf("invalid bit %v at position %v: %w", v, i, ErrInvalidArgument)
		}
	}
	return nil
}

// For JSON (un)marshalling
type codec struct {
	Signature Signature
	Extended  bool
	Block     *linearblock.LinearBlock
}

func (c *Codec) MarshalJSON() ([]byte, error) {
	return json.Marshal(codec{
		Signature: c.signature,
		Extended:  c.extended,
		Block:     c.block,
	})
}

// UnmarshalJSON rebuilds the code from its signature and checks the stored H matches.
func (c *Codec) UnmarshalJSON(bytes []byte) error {
	var cc codec
	err := json.Unmarshal(bytes, &cc)
	if err != nil {
		return err
	}

	rebuilt, err := New(cc.Signature.L, cc.Extended)
	if err != nil {
		return err
	}
	if rebuilt.signature != cc.Signature {
		return fmt.Errorf("stored signature %v does not match %v", cc.Signature, rebuilt.signature)
	}
	if cc.Block == nil || cc.Block.H == nil || !cc.Block.H.Equals(rebuilt.block.H) {
		return fmt.Errorf("stored parity check matrix does not match the %v", rebuilt)
	}

	*c = *rebuilt
	return nil
}
