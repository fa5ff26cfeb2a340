package hamming

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// MaxTableLength bounds Table to 2^20 codewords.
const MaxTableLength = 20

const tableChunk = 1024

// Table returns the codewords of all 2^l source words, where entry i encodes i written
// as an l bit binary number. threads <= 0 uses the number of CPUs.
func (c *Codec) Table(ctx context.Context, threads int) ([]Bits, error) {
	l := c.signature.L
	if l > MaxTableLength {
		return nil, fmt.Errorf("table of %v bit words exceeds %v bits: %w", l, MaxTableLength, ErrInvalidArgument)
	}
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	size := 1 << l
	table := make([]Bits, size)
	logrus.Debugf("Generating %v codewords for %v", size, c)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(threads)
	for start := 0; start < size; start += tableChunk {
		start := start
		end := start + tableChunk
		if end > size {
			end = size
		}
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				codeword, err := c.Encode(uintToBits(uint64(i), l))
				if err != nil {
					return err
				}
				table[i] = codeword
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return table, nil
}
