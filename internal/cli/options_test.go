package cli

import (
	"errors"
	"testing"
)

func TestParseColorPolicy(t *testing.T) {
	for _, p := range []ColorPolicy{ColorAlways, ColorAuto, ColorNever} {
		got, err := ParseColorPolicy(p.String())
		if err != nil {
			t.Fatalf("ParseColorPolicy(%q) error = %v", p.String(), err)
		}
		if got != p {
			t.Fatalf("ParseColorPolicy(%q) = %v, want %v", p.String(), got, p)
		}
	}
}

func TestParseColorPolicyRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "yes", "NEVER", " auto", "auto "} {
		_, err := ParseColorPolicy(s)
		if !errors.Is(err, ErrInvalidColor) {
			t.Fatalf("ParseColorPolicy(%q) error = %v, want ErrInvalidColor", s, err)
		}
	}
}

func TestColorPolicyZeroValueIsAuto(t *testing.T) {
	var p ColorPolicy
	if p != ColorAuto {
		t.Fatalf("zero ColorPolicy = %v, want auto", p)
	}
}
