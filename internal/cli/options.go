package cli

import (
	"errors"
	"fmt"
)

// ColorPolicy controls whether the tree renderer colorizes its output.
//
// The zero value is ColorAuto, which leaves the decision to terminal detection.
type ColorPolicy int

const (
	ColorAuto ColorPolicy = iota
	ColorAlways
	ColorNever
)

var ErrInvalidColor = errors.New("invalid color policy")

// ParseColorPolicy maps always|auto|never to a ColorPolicy. Matching is
// case-sensitive.
func ParseColorPolicy(s string) (ColorPolicy, error) {
	switch s {
	case "always":
		return ColorAlways, nil
	case "auto":
		return ColorAuto, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func (p ColorPolicy) String() string {
	switch p {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// Options is the fully-parsed configuration for a single invocation.
type Options struct {
	// InputPath is the file to read paths from. Empty means stdin.
	InputPath string
	Color     ColorPolicy
}

func (o Options) ReadsStdin() bool {
	return o.InputPath == ""
}
