package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/open-atmos/nbhooks/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrChecksFailed) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}
