// Package config discovers and decodes stdsynth.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"stdsynth/internal/dump"
	"stdsynth/internal/symbols"
	"stdsynth/internal/trace"
)

// FileName is the manifest looked up from the working directory upwards.
const FileName = "stdsynth.toml"

// ErrNotFound reports that no manifest exists in the directory chain.
var ErrNotFound = errors.New("no " + FileName + " found")

// Config mirrors stdsynth.toml.
type Config struct {
	Output Output `toml:"output"`
	Trace  Trace  `toml:"trace"`
	Verify Verify `toml:"verify"`
	Scope  Scope  `toml:"scope"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

// Output is the [output] table.
type Output struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// Trace is the [trace] table; values use the --trace-* flag spellings.
type Trace struct {
	Level    string `toml:"level"`
	Mode     string `toml:"mode"`
	Output   string `toml:"output"`
	RingSize int    `toml:"ring_size"`
}

// Verify is the [verify] table. A relative Snapshot is resolved against
// the manifest directory.
type Verify struct {
	Jobs     int    `toml:"jobs"`
	Snapshot string `toml:"snapshot"`
}

// Scope is the [scope] table. No namespaces means the whole catalog.
type Scope struct {
	Namespaces []string `toml:"namespaces"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Output: Output{Format: "text", Color: "auto"},
		Trace:  Trace{Level: "off", Mode: "stream", Output: "-"},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrNotFound
}

// Discover finds and loads the manifest, falling back to Default when none
// exists.
func Discover(startDir string) (Config, error) {
	path, err := Find(startDir)
	if errors.Is(err, ErrNotFound) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}

// Load decodes path over Default and validates the result. Unknown keys are
// rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("verify", "jobs") && cfg.Verify.Jobs < 0 {
		return Config{}, fmt.Errorf("%s: [verify].jobs must not be negative", path)
	}
	if meta.IsDefined("trace", "ring_size") && cfg.Trace.RingSize <= 0 {
		return Config{}, fmt.Errorf("%s: [trace].ring_size must be positive", path)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Verify.Snapshot != "" && !filepath.IsAbs(cfg.Verify.Snapshot) {
		cfg.Verify.Snapshot = filepath.Join(filepath.Dir(path), cfg.Verify.Snapshot)
	}
	cfg.Path = path
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := dump.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("[output].format: %w", err)
	}
	switch strings.ToLower(c.Output.Color) {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color: expected auto|on|off, got %q", c.Output.Color)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		return fmt.Errorf("[trace].mode: %w", err)
	}
	if _, err := c.Namespaces(); err != nil {
		return err
	}
	return nil
}

// Namespaces resolves [scope].namespaces; nil means every namespace.
func (c Config) Namespaces() ([]symbols.Namespace, error) {
	if len(c.Scope.Namespaces) == 0 {
		return nil, nil
	}
	out := make([]symbols.Namespace, 0, len(c.Scope.Namespaces))
	for _, name := range c.Scope.Namespaces {
		ns, ok := symbols.ParseNamespace(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("[scope].namespaces: unknown namespace %q", name)
		}
		out = append(out, ns)
	}
	return out, nil
}

// Symbols lists the builtins in scope, in catalog order.
func (c Config) Symbols() ([]symbols.Symbol, error) {
	nss, err := c.Namespaces()
	if err != nil {
		return nil, err
	}
	if nss == nil {
		return symbols.Builtins(), nil
	}
	want := make(map[symbols.Namespace]bool, len(nss))
	for _, ns := range nss {
		want[ns] = true
	}
	var out []symbols.Symbol
	for _, sym := range symbols.Builtins() {
		if want[sym.Namespace()] {
			out = append(out, sym)
		}
	}
	return out, nil
}
