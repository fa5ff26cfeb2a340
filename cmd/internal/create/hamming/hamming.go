package hamming

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nathanhack/lhc/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Length   uint
	Correct  uint
	Extended bool
	Print    bool
)

var HammingRun = func(cmd *cobra.Command, args []string) {
	codec, err := hamming.NewCodec(int(Length), int(Correct), Extended)
	if err != nil {
		fmt.Println("Unable to create linear Hamming code: ", err)
		return
	}

	if !codec.Validate(context.Background(), 0) {
		fmt.Println("Unable to validate the linear Hamming code")
		return
	}
	logrus.Infof("%v generated", codec)

	if Print {
		fmt.Println("generator matrix is")
		fmt.Println(codec.GeneratorMatrix())
		fmt.Println("control matrix is")
		fmt.Println(codec.ParityCheckMatrix())
	}

	bs, err := json.Marshal(codec)
	if err != nil {
		fmt.Println("Unable to serialize the linear Hamming code: ", err)
		return
	}

	err = os.WriteFile(args[0], bs, 0644)
	if err != nil {
		fmt.Println("unable to write file: ", err)
	}
}
