package cli

import (
	"errors"
	"fmt"
)

var (
	ErrHelp   = errors.New("help requested")
	ErrNoArgs = errors.New("no arguments")
)

type ErrorKind int

const (
	MissingValue ErrorKind = iota + 1
	InvalidValue
	UnknownFlag
	EmptyArgument
	ExtraArgument
)

// ArgError reports the offending token of a malformed command line.
type ArgError struct {
	Kind ErrorKind
	Msg  string
	Arg  string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("%s '%s'", e.Msg, e.Arg)
}

// Is matches any *ArgError of the same kind, so
// errors.Is(err, &ArgError{Kind: ExtraArgument}) works.
func (e *ArgError) Is(target error) bool {
	var t *ArgError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func argError(kind ErrorKind, msg string, arg string) error {
	return &ArgError{Kind: kind, Msg: msg, Arg: arg}
}
