// Package profile configures how the bare arithmetic operators behave.
// A deployment profile maps the unannotated +, -, * of the surface layer
// onto one of the explicit modes; the annotated forms are always available
// regardless of profile.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Mode selects the overflow behavior the bare operators forward to.
type Mode uint8

const (
	// ModeChecked reports overflow as an error.
	ModeChecked Mode = iota
	// ModeWrapping reduces results modulo 2^width.
	ModeWrapping
	// ModeSaturating clamps results to the type bounds.
	ModeSaturating
)

// String returns the manifest spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeChecked:
		return "checked"
	case ModeWrapping:
		return "wrapping"
	case ModeSaturating:
		return "saturating"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// ErrUnknownMode indicates an arithmetic mode name the manifest does not define.
var ErrUnknownMode = errors.New("unknown arithmetic mode")

// ParseMode reads a manifest mode name.
func ParseMode(s string) (Mode, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "checked":
		return ModeChecked, nil
	case "wrapping":
		return ModeWrapping, nil
	case "saturating":
		return ModeSaturating, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Profile is the resolved arithmetic configuration.
type Profile struct {
	Name string
	Mode Mode
}

// Debug is the development profile: bare operators are checked.
func Debug() Profile {
	return Profile{Name: "debug", Mode: ModeChecked}
}

// Release is the production profile: bare operators wrap.
func Release() Profile {
	return Profile{Name: "release", Mode: ModeWrapping}
}

type manifest struct {
	Profile struct {
		Name string `toml:"name"`
		Mode string `toml:"mode"`
	} `toml:"profile"`
}

// Load parses a prism.toml manifest. An absent [profile] section yields the
// debug profile; an explicit profile name fills in its default mode unless
// the manifest overrides it.
func Load(path string) (Profile, error) {
	var cfg manifest
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("profile") {
		return Debug(), nil
	}
	p, err := byName(cfg.Profile.Name)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	if meta.IsDefined("profile", "mode") {
		mode, err := ParseMode(cfg.Profile.Mode)
		if err != nil {
			return Profile{}, fmt.Errorf("%s: %w", path, err)
		}
		p.Mode = mode
	}
	return p, nil
}

// ErrUnknownProfile indicates a profile name the manifest does not define.
var ErrUnknownProfile = errors.New("unknown profile")

func byName(name string) (Profile, error) {
	switch strings.TrimSpace(strings.ToLower(name)) {
	case "", "debug":
		return Debug(), nil
	case "release":
		return Release(), nil
	default:
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
}

// FindManifest walks up from startDir to locate prism.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "prism.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Resolve loads the nearest manifest above startDir, falling back to the
// debug profile when none exists.
func Resolve(startDir string) (Profile, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return Profile{}, err
	}
	if !ok {
		return Debug(), nil
	}
	return Load(path)
}
