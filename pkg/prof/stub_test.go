//go:build !profile

package prof

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStub(t *testing.T) {
	assert.False(t, Enabled)

	path := filepath.Join(t.TempDir(), "cpu.prof")
	s, err := Start(path, "")
	require.NoError(t, err)
	require.NoError(t, s.Stop())
	assert.NoFileExists(t, path)
}
