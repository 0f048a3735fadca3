package main

import (
	"fmt"
	"os"

	"github.com/go-cfb/cfb/cmd/cfbdump/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cfbdump:", err)
		os.Exit(1)
	}
}
