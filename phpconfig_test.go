package phpext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPHPConfigReturnsStdout(t *testing.T) {
	script := writeScript(t, t.TempDir(), "php-config", `printf '%s' "$#:$1"`)
	t.Setenv(ConfigEnvVar, script)

	out, err := FromInfo(FromCommand()).PHPConfig(context.Background(), "--includes")
	require.NoError(t, err)
	assert.Equal(t, "1:--includes", out)
}

func TestPHPConfigNonZeroExit(t *testing.T) {
	script := writeScript(t, t.TempDir(), "php-config", `echo "some output"
echo "bad flag" >&2
exit 3`)
	t.Setenv(ConfigEnvVar, script)

	_, err := FromInfo(FromCommand()).PHPConfig(context.Background(), "--includes")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonZeroExit)
	assert.NotErrorIs(t, err, ErrSpawnFailure)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, "some output\n", exitErr.Stdout)
	assert.Equal(t, "bad flag\n", exitErr.Stderr)
	assert.Equal(t, script, exitErr.Path)
	assert.Contains(t, err.Error(), "some output")
	assert.Contains(t, err.Error(), "bad flag")
}

func TestPHPConfigSpawnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "php-config")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o644))
	t.Setenv(ConfigEnvVar, path)

	_, err := FromInfo(FromCommand()).PHPConfig(context.Background(), "--includes")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpawnFailure)
	assert.NotErrorIs(t, err, ErrNonZeroExit)

	var spawnErr *SpawnError
	require.ErrorAs(t, err, &spawnErr)
	assert.Equal(t, path, spawnErr.Path)
	assert.Error(t, spawnErr.Unwrap())
}

func TestPHPConfigInvalidUTF8(t *testing.T) {
	script := writeScript(t, t.TempDir(), "php-config", `printf '\377ok'`)
	t.Setenv(ConfigEnvVar, script)

	out, err := FromInfo(FromCommand()).PHPConfig(context.Background(), "--includes")
	require.NoError(t, err)
	assert.Equal(t, "�ok", out)
}

func TestPHPConfigResolutionError(t *testing.T) {
	t.Setenv(ConfigEnvVar, filepath.Join(t.TempDir(), "missing"))

	_, err := FromInfo(FromCommand()).PHPConfig(context.Background(), "--includes")
	assert.ErrorIs(t, err, ErrConfiguredPathNotFound)
}

func TestDecodeLossy(t *testing.T) {
	assert.Equal(t, "-I/usr/include/php", decodeLossy([]byte("-I/usr/include/php")))
	assert.Equal(t, "a�b", decodeLossy([]byte{'a', 0xff, 'b'}))
	assert.Equal(t, "", decodeLossy(nil))
}
