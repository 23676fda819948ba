package settings

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

	"github.com/ardnew/comi/alias"
	"github.com/ardnew/comi/pkg"
)

// Settings is the decoded contents of a settings file.
type Settings struct {
	ComPorts alias.Config `json:"com_ports" yaml:"com_ports"`
}

// format is a settings file encoding.
type format uint8

const (
	formatJSON format = iota
	formatYAML
)

// formatOf returns the encoding implied by a file name.
func formatOf(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// Load reads and decodes the settings file at path. Decoding failures wrap
// pkg.ErrConfigParse.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	s, err := decode(data, formatOf(path))
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %s: %w", pkg.ErrConfigParse, path, err)
	}
	pkg.LogDebug(pkg.ComponentSettings, "loaded settings", "path", path, "entries", len(s.ComPorts))
	return s, nil
}

func decode(data []byte, f format) (Settings, error) {
	var s Settings
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, err
		}
	default:
		if err := json.Unmarshal(data, &s); err != nil {
			return Settings{}, err
		}
	}
	return s, nil
}

// Save encodes s and writes it to path, replacing any existing file.
func Save(path string, s Settings) error {
	data, err := encode(s, formatOf(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	pkg.LogDebug(pkg.ComponentSettings, "saved settings", "path", path, "entries", len(s.ComPorts))
	return nil
}

func encode(s Settings, f format) ([]byte, error) {
	if s.ComPorts == nil {
		s.ComPorts = alias.Config{}
	}
	switch f {
	case formatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
}

// Append adds each entry of entries whose identity is not already present in
// the settings file at path, then rewrites the file. A missing file is
// created. It returns the number of entries written.
func Append(path string, entries alias.Config) (int, error) {
	if path == "" {
		return 0, pkg.ErrNoSettingsPath
	}

	s, err := Load(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		s = Settings{}
	default:
		return 0, err
	}

	written := 0
	for _, e := range entries {
		if present(s.ComPorts, e) {
			continue
		}
		s.ComPorts = append(s.ComPorts, e)
		written++
	}

	if err := Save(path, s); err != nil {
		return 0, err
	}
	return written, nil
}

func present(c alias.Config, e alias.Entry) bool {
	id := e.Identity()
	for _, existing := range c {
		if alias.FuzzyEqual(existing.Identity(), id) {
			return true
		}
	}
	return false
}
