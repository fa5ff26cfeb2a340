package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/nathanhack/lhc/benchmarking"
	"github.com/nathanhack/lhc/linearblock/hamming"
)

func writeCodec(t *testing.T, dir string, l int, extended bool) (string, *hamming.Codec) {
	codec, err := hamming.New(l, extended)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	bs, err := json.Marshal(codec)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	file := filepath.Join(dir, "code.json")
	if err := os.WriteFile(file, bs, 0644); err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	return file, codec
}

func TestLoadCodec(t *testing.T) {
	dir := t.TempDir()
	file, expected := writeCodec(t, dir, 6, true)

	actual, err := LoadCodec(file)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if actual.Signature() != expected.Signature() || !actual.Extended() {
		t.Fatalf("expected %v but found %v", expected, actual)
	}
	if Md5Sum(actual) != Md5Sum(expected) {
		t.Fatalf("expected matching checksums")
	}

	if _, err := LoadCodec(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestSimulationStatsJSON(t *testing.T) {
	var stats benchmarking.Stats
	stats.Valid.Update(1)
	stats.Corrected.Update(0)

	expected := &SimulationStats{
		TypeInfo: "BSC",
		ECCInfo:  "abc",
		Stats:    map[float64]benchmarking.Stats{0.05: stats},
	}

	file := filepath.Join(t.TempDir(), "results.json")
	if err := SaveResults(file, expected); err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	actual, err := LoadResults(file)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if actual.TypeInfo != expected.TypeInfo || actual.ECCInfo != expected.ECCInfo {
		t.Fatalf("expected %v but found %v", expected, actual)
	}
	if actual.Stats[0.05].Valid.Mean != 1 || actual.Stats[0.05].Trials() != 1 {
		t.Fatalf("expected %v but found %v", expected.Stats, actual.Stats)
	}
}

func TestLoadResultsMissing(t *testing.T) {
	actual, err := LoadResults(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil || actual != nil {
		t.Fatalf("expected nil, nil but found %v, %v", actual, err)
	}
}

func TestMetric(t *testing.T) {
	var stats benchmarking.Stats
	stats.Uncorrectable.Update(1)
	stats.Uncorrectable.Update(0)

	value, err := Metric(stats, "uncorrectable")
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	if value != 0.5 {
		t.Fatalf("expected 0.5 but found %v", value)
	}

	if _, err := Metric(stats, "nope"); err == nil {
		t.Fatalf("expected an error for an unknown metric")
	}
}

func TestSimulate(t *testing.T) {
	dir := t.TempDir()
	_, codec := writeCodec(t, dir, 4, true)
	results := filepath.Join(dir, "results.json")

	step := func(ctx context.Context, parameter float64, trials int, previous benchmarking.Stats, checkpoint benchmarking.Checkpoints) benchmarking.Stats {
		channel := func(codeword hamming.Bits) hamming.Bits {
			return benchmarking.RandomFlipBitCount(codeword, int(parameter))
		}
		messages := func(trial int) hamming.Bits {
			return benchmarking.RandomMessage(codec.MessageLength())
		}
		return benchmarking.BenchmarkBSCContinueStats(ctx, codec, trials, 1, messages, channel, checkpoint, previous, false)
	}

	err := Simulate(context.Background(), codec, "test", results, []float64{0, 1, 2}, 25, 2, step)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}

	data, err := LoadResults(results)
	if err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	for p, expected := range map[float64]string{0: "valid", 1: "corrected", 2: "uncorrectable"} {
		stats := data.Stats[p]
		if stats.Trials() != 25 {
			t.Fatalf("%v: expected 25 trials but found %v", p, stats.Trials())
		}
		value, _ := Metric(stats, expected)
		if value != 1 {
			t.Fatalf("%v: expected every trial %v but found %v", p, expected, value)
		}
	}

	//a different type must not be mixed into the same results
	if err := Simulate(context.Background(), codec, "other", results, []float64{0}, 25, 2, step); err == nil {
		t.Fatalf("expected an error for mismatched results")
	}
}

func TestSignalContextStop(t *testing.T) {
	ctx, stop := SignalContext()
	if ctx.Err() != nil {
		t.Fatalf("expected a live context but found %v", ctx.Err())
	}

	stop()
	<-ctx.Done()
	if ctx.Err() != context.Canceled {
		t.Fatalf("expected %v but found %v", context.Canceled, ctx.Err())
	}
}
