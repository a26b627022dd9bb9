// Package content loads the static site content document.
package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"sagarneeli.dev/internal/models"
)

// ErrUnsupportedFormat is returned for documents that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported content format")

// LoadError reports a content document that is missing or cannot be decoded.
type LoadError struct {
	Path  string   // resolved path, or the configured path when nothing was found
	Tried []string // candidate paths checked during resolution
	Err   error
}

func (e *LoadError) Error() string {
	if len(e.Tried) > 1 {
		return fmt.Sprintf("content: load %s (tried %s): %v", e.Path, strings.Join(e.Tried, ", "), e.Err)
	}
	return fmt.Sprintf("content: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Resolve locates path relative to root. Absolute paths are used as they are.
// Relative paths are tried at root/path and then one directory above root,
// which covers running from a subdirectory of the application root.
func Resolve(root, path string) (string, []string, error) {
	var candidates []string
	if filepath.IsAbs(path) {
		candidates = []string{filepath.Clean(path)}
	} else {
		candidates = []string{
			filepath.Join(root, path),
			filepath.Join(root, "..", path),
		}
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, candidates, nil
		}
	}

	return "", candidates, fs.ErrNotExist
}

// Load reads and decodes the document at path. The format is chosen by file
// extension: .json (or none) is JSON, .yaml and .yml are YAML.
func Load(path string) (*models.SiteContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	content, err := decode(path, data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return content, nil
}

func decode(path string, data []byte) (*models.SiteContent, error) {
	var content models.SiteContent
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty document")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &content); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json", "":
		if err := json.Unmarshal(data, &content); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	return &content, nil
}
