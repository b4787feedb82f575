package cli

import "strings"

const usage = `Print a list of paths as a tree of paths.

Usage:
  as-tree [options] [<filename>]

Arguments:
  <filename>        The file to read from. When omitted, reads from stdin.

Options:
  --color (always|auto|never)
                    Whether to colorize the output [default: auto]
  -h, --help        Print this help message

Example:
  find . -name '*.txt' | as-tree
`

// Parse interprets the full argument list, program name included.
//
// It returns ErrHelp for -h/--help, ErrNoArgs when argv is empty, and an
// *ArgError for the first malformed token. Tokens after the first failure are
// never looked at.
func Parse(argv []string) (Options, error) {
	var opts Options

	if len(argv) == 0 {
		return Options{}, ErrNoArgs
	}

	args := argv[1:]
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "" {
			return Options{}, argError(EmptyArgument, "Unrecognized argument:", arg)
		}

		if arg == "-h" || arg == "--help" {
			return Options{}, ErrHelp
		}

		if arg == "--color" {
			if i+1 >= len(args) {
				return Options{}, argError(MissingValue, "Unrecognized option: --color", arg)
			}
			i++
			color, err := ParseColorPolicy(args[i])
			if err != nil {
				return Options{}, argError(InvalidValue, "Unrecognized option: --color", args[i])
			}
			opts.Color = color
			continue
		}

		if strings.HasPrefix(arg, "-") {
			return Options{}, argError(UnknownFlag, "Unrecognized option:", arg)
		}

		if opts.InputPath != "" {
			return Options{}, argError(ExtraArgument, "Extra argument:", arg)
		}
		opts.InputPath = arg
	}

	return opts, nil
}

func Usage() string {
	return usage
}
