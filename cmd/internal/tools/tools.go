package tools

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"sync"
	"syscall"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/lhc/benchmarking"
	"github.com/nathanhack/lhc/linearblock/hamming"
)

type SimulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[float64]benchmarking.Stats
}
type simulationStats struct {
	TypeInfo string
	ECCInfo  string
	Stats    map[string]benchmarking.Stats
}

func (s *SimulationStats) MarshalJSON() ([]byte, error) {
	ss := simulationStats{
		TypeInfo: s.TypeInfo,
		ECCInfo:  s.ECCInfo,
		Stats:    map[string]benchmarking.Stats{},
	}

	for f, stat := range s.Stats {
		ss.Stats[fmt.Sprintf("%v", f)] = stat
	}

	return json.Marshal(ss)
}

func (s *SimulationStats) UnmarshalJSON(bytes []byte) error {
	var ss simulationStats

	err := json.Unmarshal(bytes, &ss)
	if err != nil {
		return err
	}

	s.TypeInfo = ss.TypeInfo
	s.ECCInfo = ss.ECCInfo
	s.Stats = map[float64]benchmarking.Stats{}

	for fs, stat := range ss.Stats {
		f, err := strconv.ParseFloat(fs, 64)
		if err != nil {
			return err
		}
		s.Stats[f] = stat
	}
	return nil
}

// Metric returns the mean of the named statistic.
func Metric(stats benchmarking.Stats, name string) (float64, error) {
	switch name {
	case "valid":
		return stats.Valid.Mean, nil
	case "corrected":
		return stats.Corrected.Mean, nil
	case "uncorrectable":
		return stats.Uncorrectable.Mean, nil
	case "undetected":
		return stats.Undetected.Mean, nil
	case "message":
		return stats.MessageError.Mean, nil
	}
	return 0, fmt.Errorf("unknown metric %q", name)
}

// Md5Sum identifies a code by its parity check matrix and parity bit.
func Md5Sum(codec *hamming.Codec) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(fmt.Sprintf("%v:%v", codec.Extended(), codec.ParityCheckMatrix()))))
}

func LoadCodec(filepath string) (*hamming.Codec, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, fmt.Errorf("the HAMMING_JSON must exist")
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var codec hamming.Codec
	err = json.Unmarshal(bs, &codec)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	return &codec, nil
}

func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %w", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error serializing results: %w", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %w", filepath, err)
	}
	return nil
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM. Calling stop releases
// the signal handler.
func SignalContext() (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// Step runs trials more trials for a single channel parameter starting from previous.
type Step func(ctx context.Context, parameter float64, trials int, previous benchmarking.Stats, checkpoint benchmarking.Checkpoints) benchmarking.Stats

// Simulate loads (or creates) the results in resultsFile for codec and runs step for every
// parameter until each has trials results, saving periodically so it can be resumed.
func Simulate(ctx context.Context, codec *hamming.Codec, typeInfo, resultsFile string, parameters []float64, trials, threads int, step Step) error {
	data, err := LoadResults(resultsFile)
	if err != nil {
		return err
	}

	if data == nil {
		data = &SimulationStats{
			TypeInfo: typeInfo,
			ECCInfo:  Md5Sum(codec),
			Stats:    make(map[float64]benchmarking.Stats),
		}
	}

	if data.TypeInfo != typeInfo {
		return fmt.Errorf("results loaded do not match the same type expected %v but found %v", typeInfo, data.TypeInfo)
	}
	if data.ECCInfo != Md5Sum(codec) {
		return fmt.Errorf("results loaded do not match the code")
	}

	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	checkpointMux := sync.Mutex{}
	checkpointCount := 0
	trialsPerIter := threads * 10

	bar := pb.StartNew(trials * len(parameters))
trialLoops:
	for t := trialsPerIter; ; t += trialsPerIter {
		select {
		case <-ctx.Done():
			break trialLoops
		default:
		}

		target := t
		if target > trials {
			target = trials
		}
		for _, p := range parameters {
			p := p
			checkpoint := func(stats benchmarking.Stats) {
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				if checkpointCount%trialsPerIter == 0 {
					data.Stats[p] = stats
					if err := SaveResults(resultsFile, data); err != nil {
						fmt.Println(err)
					}
				}
				checkpointCount++
			}
			before := data.Stats[p].Trials()
			stats := step(ctx, p, target, data.Stats[p], checkpoint)

			checkpointMux.Lock()
			data.Stats[p] = stats
			checkpointMux.Unlock()
			bar.Add(stats.Trials() - before)
		}
		if target == trials {
			break
		}
	}
	bar.Finish()

	return SaveResults(resultsFile, data)
}

// LoadAllResults loads every results file and returns the union of their channel parameters.
func LoadAllResults(files []string) ([]*SimulationStats, []float64, error) {
	stats := make([]*SimulationStats, len(files))
	seen := make(map[float64]bool)
	parameters := make([]float64, 0)
	for i, resultFile := range files {
		s, err := LoadResults(resultFile)
		if err != nil {
			return nil, nil, err
		}
		if s == nil {
			return nil, nil, fmt.Errorf("results file %v does not exist", resultFile)
		}
		stats[i] = s
		for p := range s.Stats {
			if !seen[p] {
				seen[p] = true
				parameters = append(parameters, p)
			}
		}
	}
	return stats, parameters, nil
}
