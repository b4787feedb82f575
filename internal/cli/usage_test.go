package cli

import (
	"strings"
	"testing"
)

func TestUsageIncludesUsageHeader(t *testing.T) {
	text := Usage()
	if !strings.Contains(text, "Usage:") {
		t.Fatalf("Usage() missing Usage header")
	}
	if !strings.Contains(text, "as-tree [options] [<filename>]") {
		t.Fatalf("Usage() missing as-tree synopsis")
	}
	if !strings.Contains(text, "--color (always|auto|never)") {
		t.Fatalf("Usage() missing --color option")
	}
}

func TestUsageEndsWithNewline(t *testing.T) {
	if !strings.HasSuffix(Usage(), "\n") {
		t.Fatalf("Usage() does not end with newline")
	}
}
