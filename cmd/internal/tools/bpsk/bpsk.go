package bpsk

import (
	"context"
	"fmt"

	"github.com/nathanhack/lhc/benchmarking"
	"github.com/nathanhack/lhc/cmd/internal/tools"
	"github.com/nathanhack/lhc/cmd/internal/tools/bsc"
	"github.com/nathanhack/lhc/linearblock/hamming"
	"github.com/spf13/cobra"
	mat2 "gonum.org/v1/gonum/mat"
)

var (
	Trials  uint
	EbN0    []float64
	Threads uint
)

var BpskRun = func(cmd *cobra.Command, args []string) {
	for _, s := range EbN0 {
		if s <= 0 {
			fmt.Printf("E_b/N_0 must be > 0 but found %v\n", s)
			return
		}
	}

	codec, err := tools.LoadCodec(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	step := func(ctx context.Context, ebn0 float64, trials int, previous benchmarking.Stats, checkpoint benchmarking.Checkpoints) benchmarking.Stats {
		return RunBPSK(ctx, codec, ebn0, trials, int(Threads), previous, checkpoint, false)
	}

	ctx, stop := tools.SignalContext()
	defer stop()

	err = tools.Simulate(ctx, codec, "BPSK:"+codec.String(), args[1], EbN0, int(Trials), int(Threads), step)
	if err != nil {
		fmt.Println(err)
	}
}

// RunBPSK sends random messages as BPSK symbols through an AWGN channel with the given E_b/N_0.
func RunBPSK(ctx context.Context,
	codec *hamming.Codec,
	ebn0 float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {
	channel := func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector) {
		return benchmarking.RandomNoiseBPSK(codeword, ebn0)
	}

	return benchmarking.BenchmarkBPSKContinueStats(ctx, codec, trials, threads, bsc.MessageConstructor(codec.MessageLength()), channel, checkpoints, previousStats, showProgress)
}
