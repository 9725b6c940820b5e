// Package config provides the options file loader for stylecache.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/stylecache/internal/core/domain"
	"go.trai.ch/stylecache/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the nearest options file at or above cwd and returns the options
// it sets. Without an options file it returns empty Options and no error.
// Relative paths in the file are resolved against the file's directory.
func (l *Loader) Load(cwd string) (domain.Options, error) {
	configPath, ok := findConfiguration(cwd)
	if !ok {
		return domain.Options{}, nil
	}
	return l.LoadFile(configPath)
}

// LoadFile reads the options file at configPath.
func (l *Loader) LoadFile(configPath string) (domain.Options, error) {
	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.Options{}, err
	}

	configDir := filepath.Dir(configPath)
	opts := domain.Options{
		Cache:  file.Cache,
		Parser: file.Parser,
	}

	if file.CacheLocation != "" {
		opts.CacheLocation = resolvePath(configDir, file.CacheLocation)
	}

	if file.LoadPaths != nil {
		opts.LoadPaths = make([]string, 0, len(file.LoadPaths))
		for _, p := range file.LoadPaths {
			if p == "" {
				l.Logger.Warn(fmt.Sprintf("ignoring empty load path in %s", configPath))
				continue
			}
			opts.LoadPaths = append(opts.LoadPaths, resolvePath(configDir, p))
		}
	}

	return opts, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		currentDir = cwd
	}

	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func resolvePath(configDir, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(configDir, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigReadFailed, err), "failed to load options"), "path", configPath)
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrConfigParseFailed, parseErr), "failed to load options"), "path", configPath)
	}

	return nil
}
