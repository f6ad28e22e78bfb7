package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file looked up when no explicit config path is given.
const ManifestName = ".flint.toml"

// ErrUnknownCheck indicates a [lint].disabled entry naming no known check.
// Validation against the registry happens in the caller; the config layer
// only carries the names.
var ErrUnknownCheck = errors.New("unknown check name")

// Config carries the tunable lint settings. The zero value disables nothing
// and bans nothing; Default() adds the stock tables.
type Config struct {
	// Disabled lists check names excluded from every run.
	Disabled []string `toml:"disabled"`
	// Banned maps an identifier to the replacement suggested when it is
	// used as a function call.
	Banned map[string]string `toml:"banned"`
	// DeprecatedIncludes maps an include path to its replacement.
	DeprecatedIncludes map[string]string `toml:"deprecated_includes"`
}

type manifest struct {
	Lint Config `toml:"lint"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Banned: map[string]string{
			"strtok": "strtok_r",
		},
		DeprecatedIncludes: map[string]string{},
	}
}

// Enabled reports whether the named check is not disabled.
func (c Config) Enabled(name string) bool {
	for _, d := range c.Disabled {
		if d == name {
			return false
		}
	}
	return true
}

// Hash returns a stable fingerprint of the configuration, used to key the
// result cache so a config change invalidates cached findings.
func (c Config) Hash() string {
	h := sha256.New()
	disabled := append([]string(nil), c.Disabled...)
	sort.Strings(disabled)
	for _, d := range disabled {
		fmt.Fprintf(h, "disabled\x00%s\x00", d)
	}
	writeSortedMap(h, "banned", c.Banned)
	writeSortedMap(h, "deprecated", c.DeprecatedIncludes)
	return hex.EncodeToString(h.Sum(nil))
}

func writeSortedMap(h io.Writer, tag string, m map[string]string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(h, "%s\x00%s\x00%s\x00", tag, k, m[k])
	}
}

// Load parses a manifest file. Settings live under [lint]; sections the
// decoder does not know are rejected so typos surface instead of silently
// doing nothing.
func Load(path string) (Config, error) {
	var m manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg := Default()
	if meta.IsDefined("lint", "disabled") {
		cfg.Disabled = m.Lint.Disabled
	}
	for k, v := range m.Lint.Banned {
		cfg.Banned[k] = v
	}
	for k, v := range m.Lint.DeprecatedIncludes {
		cfg.DeprecatedIncludes[k] = v
	}
	return cfg, nil
}

// FindManifest walks up from startDir to locate the nearest manifest file.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
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

// LoadFromDir loads the nearest manifest above startDir, falling back to
// Default() when none exists. The returned path is empty for the fallback.
func LoadFromDir(startDir string) (Config, string, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}
