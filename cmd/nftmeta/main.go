package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/vvka-141/nftmeta/internal/cli"
	"github.com/vvka-141/nftmeta/pkg/nftmeta"
)

func main() {
	os.Exit(run(cli.Execute, os.Stderr))
}

// run executes the command tree and maps its outcome to an exit code.
// Panics are recovered and reported with a stack trace.
func run(execute func() error, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "panic: %v\n%s\n", r, debug.Stack())
			code = nftmeta.ExitPanic
		}
	}()

	return nftmeta.ExitCodeForError(execute())
}
