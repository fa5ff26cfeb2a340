package main

import "github.com/nathanhack/lhc/cmd"

func main() {
	cmd.Execute()
}
