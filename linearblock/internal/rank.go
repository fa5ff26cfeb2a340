package internal

import (
	"context"
	"os"

	"github.com/cheggaaa/pb/v3"
	mat "github.com/nathanhack/sparsemat"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

// CalculateRank returns the GF(2) rank of H using row echelon elimination. Rows below the
// pivot are reduced in parallel with up to threads workers (0 means the number of CPUs).
// A cancelled context returns -1.
func CalculateRank(ctx context.Context, H mat.SparseMat, threads int, showProgressBar bool) int {
	if H == nil {
		return -1
	}

	rows, cols := H.Dims()
	echelon := make([]mat.SparseVector, rows)
	for r := 0; r < rows; r++ {
		echelon[r] = mat.CSRVecCopy(H.Row(r))
	}

	bar := pb.Full.New(cols)
	bar.Set("prefix", "Processing Column ")
	bar.SetWriter(os.Stdout)
	if showProgressBar {
		bar.Start()
	}
	logrus.Debugf("Calculating rank of %vx%v matrix", rows, cols)

	rank := 0
	for c := 0; c < cols && rank < rows; c++ {
		select {
		case <-ctx.Done():
			return -1
		default:
		}
		bar.Increment()

		pivot := findPivotRow(echelon, rank, c)
		if pivot == -1 {
			continue
		}
		echelon[rank], echelon[pivot] = echelon[pivot], echelon[rank]

		eliminateLowerRows(ctx, echelon, rank, c, threads)
		rank++
	}

	bar.SetTemplateString(`{{string . "prefix"}}{{counters . }}{{string . "suffix"}}`)
	bar.Set("suffix", " Done")
	bar.Finish()

	logrus.Debugf("Rank %v", rank)
	return rank
}

func findPivotRow(echelon []mat.SparseVector, fromRow, column int) int {
	for r := fromRow; r < len(echelon); r++ {
		if echelon[r].At(column) == 1 {
			return r
		}
	}
	return -1
}

func eliminateLowerRows(ctx context.Context, echelon []mat.SparseVector, pivotRow, column, threads int) {
	//the pool waits for exactly as many jobs as it is sized for
	rowsToReduce := make([]mat.SparseVector, 0, len(echelon)-pivotRow-1)
	for r := pivotRow + 1; r < len(echelon); r++ {
		if echelon[r].At(column) == 1 {
			rowsToReduce = append(rowsToReduce, echelon[r])
		}
	}
	if len(rowsToReduce) == 0 {
		return
	}

	pool := threadpool.NewFixedSize(ctx, threads, len(rowsToReduce))
	prow := echelon[pivotRow]

	//in GF2 subtracting the pivot row is the same as adding it
	for _, row := range rowsToReduce {
		row := row
		pool.Add(func() {
			row.Add(row, prow)
		})
	}
	pool.Wait()
}
