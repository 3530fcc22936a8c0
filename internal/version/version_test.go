package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestDefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}

	// GitCommit and BuildDate can be empty (optional)
	_ = GitCommit
	_ = BuildDate
}

func TestStyledKeepsComponents(t *testing.T) {
	origNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = origNoColor }()

	origVersion := Version
	defer func() { Version = origVersion }()

	Version = "1.2.3-rc.1"
	if got := Styled(); got != "1.2.3-rc.1" {
		t.Errorf("Styled() = %q, want %q", got, "1.2.3-rc.1")
	}

	Version = "2.0.0"
	if got := Styled(); got != "2.0.0" {
		t.Errorf("Styled() = %q, want %q", got, "2.0.0")
	}

	// Non-semver input passes through untouched.
	Version = "nightly"
	if got := Styled(); got != "nightly" {
		t.Errorf("Styled() = %q, want %q", got, "nightly")
	}
}

func TestSummaryIncludesBuildMetadata(t *testing.T) {
	origNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = origNoColor }()

	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version = "1.2.3"
	GitCommit = "abc123"
	BuildDate = "2024-01-15T10:30:00Z"

	got := Summary()
	if !strings.Contains(got, "1.2.3") || !strings.Contains(got, "abc123") || !strings.Contains(got, "2024-01-15") {
		t.Errorf("Summary() = %q, missing components", got)
	}

	GitCommit = ""
	BuildDate = ""
	if got := Summary(); got != "1.2.3" {
		t.Errorf("Summary() without metadata = %q, want %q", got, "1.2.3")
	}
}
