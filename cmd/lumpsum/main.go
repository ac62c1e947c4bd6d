package main

import (
	"fmt"
	"os"
)

func main() {
	opts := newCLIOptions()
	if err := execute(newRootCmd(opts), opts); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
