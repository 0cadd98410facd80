package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lukaszgryglicki/exactnum/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}
	// ExitErrors were already written through the output formatter.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "exactnum:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
