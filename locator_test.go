package phpext

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBinConfiguredPathMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist", "php-config")
	t.Setenv(ConfigEnvVar, missing)

	// A wrong override must not fall through to PATH.
	dir := t.TempDir()
	writeScript(t, dir, ConfigBinary, "exit 0")
	t.Setenv("PATH", dir)

	path, err := FindBin()
	require.Error(t, err)
	assert.Empty(t, path)
	assert.ErrorIs(t, err, ErrConfiguredPathNotFound)
	assert.NotErrorIs(t, err, ErrExecutableNotFound)

	var pathErr *ConfiguredPathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, missing, pathErr.Path)
	assert.Contains(t, err.Error(), missing)
}

func TestFindBinConfiguredPathExists(t *testing.T) {
	// Existence is enough; the file need not be executable.
	path := filepath.Join(t.TempDir(), "my-php-config")
	require.NoError(t, os.WriteFile(path, []byte("not a binary"), 0o644))
	t.Setenv(ConfigEnvVar, path)

	found, err := FindBin()
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindBinSearchesPath(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	dir := t.TempDir()
	script := writeScript(t, dir, ConfigBinary, "exit 0")
	t.Setenv("PATH", dir)

	found, err := FindBin()
	require.NoError(t, err)
	assert.Equal(t, script, found)
}

func TestFindBinNotFound(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	t.Setenv("PATH", t.TempDir())

	_, err := FindBin()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutableNotFound)
	assert.False(t, errors.Is(err, ErrConfiguredPathNotFound))
	assert.Contains(t, err.Error(), ConfigEnvVar)
	assert.Contains(t, err.Error(), "PATH")
}

func TestFindBinUsesLookPath(t *testing.T) {
	t.Setenv(ConfigEnvVar, "")
	origLookPath := execLookPath
	defer func() { execLookPath = origLookPath }()

	var looked []string
	execLookPath = func(name string) (string, error) {
		looked = append(looked, name)
		return "/opt/php/bin/php-config", nil
	}

	for range 2 {
		found, err := FindBin()
		require.NoError(t, err)
		assert.Equal(t, "/opt/php/bin/php-config", found)
	}

	// Resolution is repeated on every call.
	assert.Equal(t, []string{ConfigBinary, ConfigBinary}, looked)
}
