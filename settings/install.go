package settings

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ardnew/comi/pkg"
)

//go:embed template.json
var defaultTemplate []byte

// TemplatePath returns the settings template shipped next to the executable.
func TemplatePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), FileName), nil
}

// Install creates the settings file at target from the template file when
// target does not already exist. An empty template path, or one naming a
// missing file, installs the built-in empty template. It reports whether a
// file was created. Errors wrap pkg.ErrInstall.
func Install(target, template string) (bool, error) {
	if _, err := os.Stat(target); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("%w: %w", pkg.ErrInstall, err)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false, fmt.Errorf("%w: create directory: %w", pkg.ErrInstall, err)
	}

	src, source, err := openTemplate(template)
	if err != nil {
		return false, fmt.Errorf("%w: open template: %w", pkg.ErrInstall, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return false, fmt.Errorf("%w: create %s: %w", pkg.ErrInstall, target, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(target)
		return false, fmt.Errorf("%w: copy %s to %s: %w", pkg.ErrInstall, source, target, err)
	}
	if err := dst.Close(); err != nil {
		return false, fmt.Errorf("%w: close %s: %w", pkg.ErrInstall, target, err)
	}

	pkg.LogInfo(pkg.ComponentSettings, "installed settings file", "path", target, "template", source)
	return true, nil
}

// openTemplate opens the template file, falling back to the built-in
// template when path is empty or missing.
func openTemplate(path string) (io.ReadCloser, string, error) {
	if path != "" {
		f, err := os.Open(path)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, path, err
		}
	}
	return io.NopCloser(bytes.NewReader(defaultTemplate)), "built-in", nil
}
