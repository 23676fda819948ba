package pkg

import "errors"

// Failure kinds. None of them is fatal; callers log and degrade.
var (
	// ErrEnumeration indicates the OS query for attached ports failed.
	ErrEnumeration = errors.New("port enumeration failed")

	// ErrConfigParse indicates the settings file could not be decoded.
	ErrConfigParse = errors.New("malformed settings file")

	// ErrConfigValidation indicates the settings contain an invalid or
	// conflicting alias entry.
	ErrConfigValidation = errors.New("invalid settings")

	// ErrInstall indicates the default settings template could not be
	// installed.
	ErrInstall = errors.New("settings install failed")

	// ErrNoSettingsPath indicates no usable settings file location exists.
	ErrNoSettingsPath = errors.New("no settings path")

	// ErrAliasNotFound indicates no attached port carries the requested alias.
	ErrAliasNotFound = errors.New("alias not found")

	// ErrNotSupported indicates an unsupported operation or platform.
	ErrNotSupported = errors.New("not supported")
)
