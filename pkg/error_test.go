package pkg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrors(t *testing.T) {
	errs := []error{
		ErrEnumeration,
		ErrConfigParse,
		ErrConfigValidation,
		ErrInstall,
		ErrNoSettingsPath,
		ErrAliasNotFound,
		ErrNotSupported,
	}

	for i, err1 := range errs {
		assert.NotNil(t, err1, "error %d", i)
		for j, err2 := range errs {
			if i != j {
				assert.False(t, errors.Is(err1, err2), "error %d and %d are equal", i, j)
			}
		}
	}
}

func TestWrappedErrors(t *testing.T) {
	err := fmt.Errorf("read /tmp/settings.json: %w", ErrConfigParse)
	assert.ErrorIs(t, err, ErrConfigParse)
	assert.NotErrorIs(t, err, ErrInstall)
}
