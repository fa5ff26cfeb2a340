package benchmarking

import (
	"math"
	"math/rand"

	"github.com/nathanhack/lhc/linearblock/hamming"
	mat2 "gonum.org/v1/gonum/mat"
)

// RandomMessage creates a random message of length len.
func RandomMessage(len int) hamming.Bits {
	message := make(hamming.Bits, len)
	for i := range message {
		message[i] = uint8(rand.Intn(2))
	}
	return message
}

// RandomFlipBitCount randomly flips min(numberOfBitsToFlip,len(input)) number of bits.
func RandomFlipBitCount(input hamming.Bits, numberOfBitsToFlip int) hamming.Bits {
	output := make(hamming.Bits, len(input))
	copy(output, input)

	flip := make(map[int]bool)
	for len(flip) < numberOfBitsToFlip && len(flip) < len(input) {
		flip[rand.Intn(len(input))] = true
	}

	for i := range flip {
		output[i] ^= 1
	}
	return output
}

// RandomFlipBits flips every bit independently with crossoverProbability.
func RandomFlipBits(input hamming.Bits, crossoverProbability float64) hamming.Bits {
	output := make(hamming.Bits, len(input))
	copy(output, input)

	for i := range output {
		if rand.Float64() < crossoverProbability {
			output[i] ^= 1
		}
	}
	return output
}

// RandomNoiseBPSK creates a randomizes version of the bpsk vector using the E_b/N_0 passed in
func RandomNoiseBPSK(bpsk mat2.Vector, E_bPerN_0 float64) mat2.Vector {
	//using  σ^2 = N_0/2 and E_b=1
	// we get  σ = sqrt(1/(2*E_bPerN_0))
	σ := math.Sqrt(1 / (2 * E_bPerN_0))
	result := mat2.NewVecDense(bpsk.Len(), nil)
	for i := 0; i < bpsk.Len(); i++ {
		result.SetVec(i, rand.NormFloat64()*σ)
	}
	result.AddVec(result, bpsk)
	return result
}
