package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"

	"github.com/bytegrep/bytegrep/pkg/engine"
)

// Exit codes, matching the documented CLI contract.
const (
	exitMatch      = 0
	exitNoMatch    = 1
	exitError      = 2
	exitBadPattern = 3
	exitNotFound   = 4
	exitPermission = 5
	exitBrokenPipe = 6
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "bgrep: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
	os.Exit(exitStatus)
}

// exitCodeFor maps an error to the process exit code.
func exitCodeFor(err error) int {
	var compileErr *engine.CompileError
	switch {
	case errors.As(err, &compileErr):
		return exitBadPattern
	case errors.Is(err, fs.ErrNotExist):
		return exitNotFound
	case errors.Is(err, fs.ErrPermission):
		return exitPermission
	case errors.Is(err, syscall.EPIPE):
		return exitBrokenPipe
	default:
		return exitError
	}
}
