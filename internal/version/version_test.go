package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestPretty(t *testing.T) {
	color.NoColor = true
	origVersion := Version
	defer func() { Version = origVersion }()

	Version = "1.2.3"
	if got := Pretty(); got != "1.2.3" {
		t.Errorf("Pretty() = %q, want 1.2.3", got)
	}

	Version = "0.1.0-dev"
	if got := Pretty(); got != "0.1.0-dev" {
		t.Errorf("Pretty() = %q, want 0.1.0-dev", got)
	}

	Version = "weird"
	if got := Pretty(); got != "weird" {
		t.Errorf("Pretty() = %q, want pass-through", got)
	}
}

func TestFull(t *testing.T) {
	color.NoColor = true
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version = "1.0.0"
	GitCommit = ""
	BuildDate = ""
	if got := Full(); got != "flint 1.0.0" {
		t.Errorf("Full() = %q", got)
	}

	GitCommit = "abc123"
	BuildDate = "2026-01-02"
	got := Full()
	if !strings.Contains(got, "(abc123)") || !strings.Contains(got, "built 2026-01-02") {
		t.Errorf("Full() = %q, missing metadata", got)
	}
}
