package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/ardnew/comi/pkg"
)

// Default settings location, relative to the user's documents directory.
const (
	AppDir   = "Comi"
	FileName = "settings.json"
)

// DefaultPath returns the default settings file path.
func DefaultPath() (string, error) {
	docs := xdg.UserDirs.Documents
	if docs == "" {
		return "", fmt.Errorf("%w: documents directory unknown", pkg.ErrNoSettingsPath)
	}
	return filepath.Join(docs, AppDir, FileName), nil
}

// FindPath returns the settings file to use: override when non-empty,
// otherwise the default path. It reports false when the chosen file does
// not exist.
func FindPath(override string) (string, bool) {
	path := override
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			pkg.LogWarn(pkg.ComponentSettings, "no default settings path", "error", err)
			return "", false
		}
		path = p
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		pkg.LogDebug(pkg.ComponentSettings, "settings file not found", "path", path)
		return path, false
	}
	return path, true
}
