package hamming

import "fmt"

// Status classifies a decoded word.
type Status int

const (
	Valid Status = iota + 1
	Corrected
	Uncorrectable
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case Corrected:
		return "corrected"
	case Uncorrectable:
		return "uncorrectable"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of a single Decode.
type Result struct {
	Status Status
	// Word is the recovered source word, nil when Uncorrectable.
	Word Bits
	// Codeword is the repaired channel word, nil when Uncorrectable.
	Codeword Bits
	// Position is the index of the flipped bit or -1. For extended codes the
	// overall parity bit has index N.
	Position int
}

func (r Result) String() string {
	switch r.Status {
	case Valid:
		return fmt.Sprintf("%v %v", r.Status, r.Word)
	case Corrected:
		return fmt.Sprintf("%v %v (bit %v)", r.Status, r.Word, r.Position)
	}
	return r.Status.String()
}
