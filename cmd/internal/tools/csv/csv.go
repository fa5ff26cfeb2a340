package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nathanhack/lhc/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string
var Metric string

var CSVRun = func(cmd *cobra.Command, args []string) {
	stats, parameters, err := tools.LoadAllResults(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	err = Write(f, args, stats, parameters, Metric)
	if err != nil {
		fmt.Println(err)
	}
}

// Write writes one row per results file with a column per channel parameter.
func Write(f io.Writer, names []string, stats []*tools.SimulationStats, parameters []float64, metric string) error {
	w := csv.NewWriter(f)
	defer w.Flush()

	sorted := make([]float64, len(parameters))
	copy(sorted, parameters)
	sort.Float64s(sorted)

	header := []string{"Results File"}
	for _, p := range sorted {
		header = append(header, fmt.Sprintf("%v", p))
	}

	err := w.Write(header)
	if err != nil {
		return err
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(names[i], filepath.Ext(names[i]))

		for j, p := range sorted {
			v, has := s.Stats[p]
			if !has {
				continue
			}
			value, err := tools.Metric(v, metric)
			if err != nil {
				return err
			}
			record[j+1] = fmt.Sprintf("%v", value)
		}

		err = w.Write(record)
		if err != nil {
			return err
		}
	}
	return nil
}
