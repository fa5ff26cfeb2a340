package bsc

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/nathanhack/lhc/benchmarking"
	"github.com/nathanhack/lhc/cmd/internal/tools"
	"github.com/nathanhack/lhc/linearblock/hamming"
	"github.com/spf13/cobra"
)

const bitLimit = 20

var (
	Trials           uint
	ErrorProbability []float64
	Threads          uint
)

var BscRun = func(cmd *cobra.Command, args []string) {
	for _, p := range ErrorProbability {
		if p < 0 || p > 0.5 {
			fmt.Printf("crossover probability must be in [0, 0.5] but found %v\n", p)
			return
		}
	}

	codec, err := tools.LoadCodec(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	step := func(ctx context.Context, p float64, trials int, previous benchmarking.Stats, checkpoint benchmarking.Checkpoints) benchmarking.Stats {
		return RunBSC(ctx, codec, p, trials, int(Threads), previous, checkpoint, false)
	}

	ctx, stop := tools.SignalContext()
	defer stop()

	err = tools.Simulate(ctx, codec, "BSC:"+codec.String(), args[1], ErrorProbability, int(Trials), int(Threads), step)
	if err != nil {
		fmt.Println(err)
	}
}

// RunBSC sends random messages through a binary symmetric channel with the given crossover probability.
func RunBSC(ctx context.Context,
	codec *hamming.Codec,
	crossoverProbability float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {
	channel := func(originalCodeword hamming.Bits) (erroredCodeword hamming.Bits) {
		return benchmarking.RandomFlipBits(originalCodeword, crossoverProbability)
	}

	return benchmarking.BenchmarkBSCContinueStats(ctx, codec, trials, threads, MessageConstructor(codec.MessageLength()), channel, checkpoints, previousStats, showProgress)
}

// MessageConstructor creates random messages of length bits. Short messages
// avoid repeats until every message was used once.
func MessageConstructor(length int) benchmarking.MessageConstructor {
	if length > bitLimit {
		return func(trial int) hamming.Bits {
			return benchmarking.RandomMessage(length)
		}
	}

	messageHistory := make(map[string]bool)
	messageHistoryMux := sync.Mutex{}
	messageHistoryMax := int(math.Pow(2, float64(length)))

	return func(trial int) hamming.Bits {
		messageHistoryMux.Lock()
		defer messageHistoryMux.Unlock()

		if len(messageHistory) >= messageHistoryMax {
			messageHistory = make(map[string]bool)
		}

		message := benchmarking.RandomMessage(length)
		for messageHistory[message.String()] {
			message[rand.Intn(length)] ^= 1
		}
		messageHistory[message.String()] = true
		return message
	}
}
