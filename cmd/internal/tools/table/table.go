package table

import (
	"bufio"
	"fmt"
	"os"

	"github.com/nathanhack/lhc/cmd/internal/tools"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var Threads uint

var TableRun = func(cmd *cobra.Command, args []string) {
	codec, err := tools.LoadCodec(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, stop := tools.SignalContext()
	defer stop()

	table, err := codec.Table(ctx, int(Threads))
	if err != nil {
		fmt.Println("Unable to create the codeword table: ", err)
		return
	}

	f, err := os.Create(args[1])
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, codeword := range table {
		if _, err := fmt.Fprintln(w, codeword); err != nil {
			fmt.Println(err)
			return
		}
	}
	if err := w.Flush(); err != nil {
		fmt.Println(err)
		return
	}
	logrus.Infof("%v codewords written to %v", len(table), args[1])
}
