package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the prism CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Styled renders the version with each component colored. Pre-release and
// build suffixes stay plain.
func Styled() string {
	base, suffix, found := strings.Cut(Version, "-")
	parts := strings.SplitN(base, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2])
	if found {
		out += "-" + suffix
	}
	return out
}

// Summary renders the full build description: version plus commit and date
// when they were stamped in.
func Summary() string {
	var b strings.Builder
	b.WriteString(Styled())
	if GitCommit != "" {
		b.WriteString(" (")
		b.WriteString(GitCommit)
		b.WriteString(")")
	}
	if BuildDate != "" {
		b.WriteString(" built ")
		b.WriteString(BuildDate)
	}
	return b.String()
}
