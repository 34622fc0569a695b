// Package config loads the optional configuration file and the plain-text
// figure lists the command line accepts. The configuration file supplies
// defaults for flags; flags always win, and built-in defaults apply when
// neither is given.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the settings the configuration file may provide.
type Config struct {
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`
	Ignore   string `toml:"ignore"` // path to a figure list
	Target   string `toml:"target"` // path to a figure list
	YAML     string `toml:"yaml"`   // table dump destination
	Workers  int    `toml:"workers"`
	Format   string `toml:"format"` // text or json
}

// Default returns the built-in settings used when no file and no flag
// says otherwise.
func Default() Config {
	return Config{
		LogLevel: "info",
		Workers:  10,
		Format:   "text",
	}
}

// Load reads the TOML file at path over the built-in defaults. With an
// empty path the default location is tried, and its absence is not an
// error; an explicitly given file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = defaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	path = ExpandPath(path)
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("load config %s: workers must be positive, got %d", path, cfg.Workers)
	}
	return cfg, nil
}

// defaultPath is $XDG_CONFIG_HOME/nvme-lint/config.toml with the usual
// ~/.config fallback, or "" when no home directory can be resolved.
func defaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "nvme-lint", "config.toml")
}

// ReadFigureList reads a figure-number list: one unsigned decimal number
// per line, blank lines allowed. An empty path yields an empty list.
func ReadFigureList(path string) ([]int, error) {
	if path == "" {
		return nil, nil
	}
	path = ExpandPath(path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("figure list: %w", err)
	}
	defer f.Close()

	var figures []int
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("figure list %s:%d: %q is not a figure number", path, line, text)
		}
		figures = append(figures, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("figure list %s: %w", path, err)
	}
	return figures, nil
}

// ExpandPath expands environment variables and a leading ~ and makes the
// path absolute. Paths that cannot be made absolute are returned expanded.
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~/"))
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
