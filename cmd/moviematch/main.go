package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"moviematch/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode distinguishes failures the user must repair before any command
// can work (an unloadable catalog) from ordinary command failures.
func exitCode(err error) int {
	if !services.Recoverable(err) {
		return 2
	}
	return 1
}
