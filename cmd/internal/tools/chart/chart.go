package chart

import (
	"fmt"
	"os"
	"sort"

	"github.com/nathanhack/lhc/cmd/internal/tools"
	"github.com/spf13/cobra"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var OutputFile string
var Metric string

var ChartRun = func(cmd *cobra.Command, args []string) {
	// loop through all the results files and collect data needed for displaying
	stats, parameters, err := tools.LoadAllResults(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	//now make the x axis values
	xvalues, xnames := xAxisAndValues(parameters)

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Results",
			Subtitle: fmt.Sprintf("%v rate", Metric),
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Channel Parameter",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      Metric,
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(xnames)

	for i, s := range stats {
		data, err := series(s, xvalues, Metric)
		if err != nil {
			fmt.Println(err)
			return
		}
		bar.AddSeries(args[i], data)
	}

	bar.Render(f)
}

func xAxisAndValues(parameters []float64) ([]float64, []string) {
	nums := make([]float64, len(parameters))
	copy(nums, parameters)
	sort.Float64s(nums)

	strs := make([]string, 0, len(nums))
	for _, n := range nums {
		strs = append(strs, fmt.Sprint(n))
	}

	return nums, strs
}

func series(stat *tools.SimulationStats, values []float64, metric string) ([]opts.BarData, error) {
	results := make([]opts.BarData, len(values))
	null := opts.BarData{Value: nil}
	for i, v := range values {
		x, has := stat.Stats[v]
		if !has {
			results[i] = null
			continue
		}

		value, err := tools.Metric(x, metric)
		if err != nil {
			return nil, err
		}
		results[i] = opts.BarData{
			Value: value,
		}
	}
	return results, nil
}
