package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/chojs23/as-tree/internal/cli"
	"github.com/chojs23/as-tree/internal/termstyle"
)

// session is what the tree printer receives once the command line is accepted.
type session struct {
	opts     cli.Options
	renderer *lipgloss.Renderer
}

func main() {
	if _, code := start(os.Args, os.Stdout, os.Stderr); code != 0 {
		os.Exit(code)
	}
}

// start parses args and writes any usage or diagnostic output. A nil session
// means the process should exit with the returned code.
func start(args []string, stdout, stderr io.Writer) (*session, int) {
	opts, err := cli.Parse(args)
	if err != nil {
		return nil, reportParseError(err, stdout, stderr)
	}
	return &session{
		opts:     opts,
		renderer: termstyle.NewRenderer(stdout, opts.Color),
	}, 0
}

func reportParseError(err error, stdout, stderr io.Writer) int {
	switch {
	case errors.Is(err, cli.ErrHelp):
		fmt.Fprint(stdout, cli.Usage())
		return 0
	case errors.Is(err, cli.ErrNoArgs):
		// Nothing was asked for, so this is not a diagnostic.
		fmt.Fprint(stdout, cli.Usage())
		return 1
	}
	fmt.Fprintf(stderr, "%s\n\n%s", err, cli.Usage())
	return 1
}
