package coding

import (
	"fmt"
	"strconv"

	"github.com/nathanhack/lhc/cmd/internal/tools"
	"github.com/nathanhack/lhc/linearblock/hamming"
	"github.com/spf13/cobra"
)

var Integer bool

var EncodeRun = func(cmd *cobra.Command, args []string) {
	codec, err := tools.LoadCodec(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, arg := range args[1:] {
		word, err := parse(arg, codec.MessageLength())
		if err != nil {
			fmt.Println(err)
			return
		}

		codeword, err := codec.Encode(word)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(codeword)
	}
}

var DecodeRun = func(cmd *cobra.Command, args []string) {
	codec, err := tools.LoadCodec(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, arg := range args[1:] {
		received, err := parse(arg, codec.CodewordLength())
		if err != nil {
			fmt.Println(err)
			return
		}

		result, err := codec.Decode(received)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(result)
	}
}

func parse(arg string, width int) (hamming.Bits, error) {
	if !Integer {
		return hamming.ParseBits(arg, width)
	}

	value, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid integer %q: %w", arg, hamming.ErrInvalidArgument)
	}
	return hamming.BitsFromUint(value, width)
}
