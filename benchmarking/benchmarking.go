package benchmarking

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/lhc/linearblock/hamming"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
	mat2 "gonum.org/v1/gonum/mat"
)

// Code is the part of a codec the simulations need.
type Code interface {
	MessageLength() int
	CodewordLength() int
	Encode(word hamming.Bits) (hamming.Bits, error)
	Decode(received hamming.Bits) (hamming.Result, error)
}

type Stats struct {
	Valid         avgstd.AvgStd // fraction of trials decoded as valid
	Corrected     avgstd.AvgStd // fraction of trials decoded as corrected
	Uncorrectable avgstd.AvgStd // fraction of trials decoded as uncorrectable
	Undetected    avgstd.AvgStd // fraction of trials that returned a word different from the message
	MessageError  avgstd.AvgStd // probability of a message bit error after decoding
}

func (s Stats) String() string {
	return fmt.Sprintf("{Valid:%0.02f(+/-%0.02f), Corrected:%0.02f(+/-%0.02f), Uncorrectable:%0.02f(+/-%0.02f), Undetected:%0.02f(+/-%0.02f), Message:%0.02f(+/-%0.02f)}",
		s.Valid.Mean, deviation(s.Valid),
		s.Corrected.Mean, deviation(s.Corrected),
		s.Uncorrectable.Mean, deviation(s.Uncorrectable),
		s.Undetected.Mean, deviation(s.Undetected),
		s.MessageError.Mean, deviation(s.MessageError),
	)
}

// Trials is the number of trials the stats were collected over.
func (s Stats) Trials() int {
	return s.Valid.Count
}

func deviation(a avgstd.AvgStd) float64 {
	if a.Count < 2 {
		return 0
	}
	return math.Sqrt(a.SampledVariance())
}

type Checkpoints func(updatedStats Stats)

type MessageConstructor func(trial int) (message hamming.Bits)

// specific to BSC
type BinarySymmetricChannel func(codeword hamming.Bits) (channelInducedCodeword hamming.Bits)

// specific to BPSK
type BPSKChannel func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector)

func BenchmarkBSC(ctx context.Context,
	code Code,
	trials, threads int,
	createMessage MessageConstructor,
	channel BinarySymmetricChannel,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkBSCContinueStats(ctx, code, trials, threads, createMessage, channel, checkpoints, Stats{}, showProgress)
}

func BenchmarkBSCContinueStats(ctx context.Context,
	code Code,
	trials, threads int,
	createMessage MessageConstructor,
	channel BinarySymmetricChannel,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	transmit := func(codeword hamming.Bits) hamming.Bits {
		return channel(codeword)
	}
	return runTrials(ctx, code, trials, threads, createMessage, transmit, checkpoints, previousStats, showProgress)
}

func BenchmarkBPSK(ctx context.Context,
	code Code,
	trials, threads int,
	createMessage MessageConstructor,
	channel BPSKChannel,
	checkpoints Checkpoints,
	showProgress bool) Stats {
	return BenchmarkBPSKContinueStats(ctx, code, trials, threads, createMessage, channel, checkpoints, Stats{}, showProgress)
}

// BenchmarkBPSKContinueStats modulates every codeword, sends it through channel and makes
// a hard decision (>=0 is a 1) before decoding.
func BenchmarkBPSKContinueStats(ctx context.Context,
	code Code,
	trials, threads int,
	createMessage MessageConstructor,
	channel BPSKChannel,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	transmit := func(codeword hamming.Bits) hamming.Bits {
		return BPSKToBits(channel(BitsToBPSK(codeword)), 0)
	}
	return runTrials(ctx, code, trials, threads, createMessage, transmit, checkpoints, previousStats, showProgress)
}

func runTrials(ctx context.Context,
	code Code,
	trials, threads int,
	createMessage MessageConstructor,
	transmit func(codeword hamming.Bits) hamming.Bits,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) Stats {
	trialsToRun := trials - previousStats.Trials()
	if trialsToRun <= 0 {
		return previousStats
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.NewFixedSize(ctx, threads, trialsToRun)
	statsMux := sync.Mutex{}

	trial := func(i int) {
		if showProgress {
			bar.Increment()
		}
		//we create a random message
		message := createMessage(i)

		// encode to get our codeword
		codeword, err := code.Encode(message)
		if err != nil {
			logrus.Errorf("trial %v: %v", i, err)
			statsMux.Lock()
			failed(&previousStats)
			if checkpoints != nil {
				checkpoints(previousStats)
			}
			statsMux.Unlock()
			return
		}

		// send through the channel to get channel induced errors
		received := transmit(codeword)

		// repair the codeword (if possible)
		result, err := code.Decode(received)

		statsMux.Lock()
		if err != nil {
			logrus.Errorf("trial %v: %v", i, err)
			failed(&previousStats)
		} else {
			update(&previousStats, message, received, result)
		}
		if checkpoints != nil {
			checkpoints(previousStats) //give them the updated checkpoint
		}
		statsMux.Unlock()
	}

	for i := previousStats.Trials(); i < trials; i++ {
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats
}

func update(stats *Stats, message, received hamming.Bits, result hamming.Result) {
	indicator := func(b bool) float64 {
		if b {
			return 1
		}
		return 0
	}

	stats.Valid.Update(indicator(result.Status == hamming.Valid))
	stats.Corrected.Update(indicator(result.Status == hamming.Corrected))
	stats.Uncorrectable.Update(indicator(result.Status == hamming.Uncorrectable))

	//when uncorrectable the caller is left with the raw message bits
	decoded := result.Word
	if result.Status == hamming.Uncorrectable {
		decoded = received[:len(message)]
	}
	stats.Undetected.Update(indicator(result.Status != hamming.Uncorrectable && !decoded.Equal(message)))
	stats.MessageError.Update(float64(HammingDistance(message, decoded)) / float64(len(message)))
}

// failed records a trial that could not be encoded or decoded as uncorrectable with every
// message bit lost, so it still counts towards Trials.
func failed(stats *Stats) {
	stats.Valid.Update(0)
	stats.Corrected.Update(0)
	stats.Uncorrectable.Update(1)
	stats.Undetected.Update(0)
	stats.MessageError.Update(1)
}

// HammingDistance calculates number of bits different.
// If a and b are different sizes it assumes they are
// both aligned with the zero index (the difference is at the end)
func HammingDistance(a, b hamming.Bits) int {
	min := len(a)
	max := len(b)
	if min > max {
		min, max = max, min
	}

	count := 0
	for i := 0; i < min; i++ {
		if a[i] != b[i] {
			count++
		}
	}
	return max - min + count
}

// BitsToBPSK converts a [0,1] vector to a [-1,1] vector
func BitsToBPSK(a hamming.Bits) mat2.Vector {
	output := mat2.NewVecDense(len(a), nil)

	for i, v := range a {
		if v > 0 {
			output.SetVec(i, 1)
		} else {
			output.SetVec(i, -1)
		}
	}

	return output
}

// BPSKToBits converts a BPSK vector [-1,1] to bits [0,1].
// Values >= boundary will be considered a 1, otherwise a 0.
func BPSKToBits(a mat2.Vector, boundary float64) hamming.Bits {
	result := make(hamming.Bits, a.Len())

	for i := 0; i < a.Len(); i++ {
		if a.AtVec(i) >= boundary {
			result[i] = 1
		}
	}
	return result
}
