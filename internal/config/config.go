// Package config loads the optional per-user defaults file for the installer.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/k3DW/debug/internal/messages"
)

// Config holds the optional defaults read from the user's config file.
// Explicit flags always win over config values.
type Config struct {
	DownloadTo  string `toml:"download_to"`
	LibcxxSo    string `toml:"libcxx_so"`
	AutoLoadDir string `toml:"auto_load_dir"`
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return filepath.Join(home, ".config", "libcxx-printers", "config.toml"), nil
}

// Load reads the config file at path. A missing file yields an empty config;
// a malformed file is an error. Unknown keys are rejected to catch typos.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFmt, path, err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigParseFmt, path, err)
	}
	return &cfg, nil
}

// ExpandPath resolves a leading ~ in p to the user's home directory.
func ExpandPath(p string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, p, err)
	}
	return expanded, nil
}
