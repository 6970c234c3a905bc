package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	err := Execute()
	if err == nil {
		return
	}
	// Violations already went through the reporter; the sentinel only
	// carries the exit code.
	if errors.Is(err, errViolationsFound) {
		os.Exit(2)
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
