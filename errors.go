package phpext

import (
	"errors"
	"fmt"
)

// Sentinel errors for identifying failure kinds with errors.Is.
var (
	// ErrConfiguredPathNotFound indicates PHP_CONFIG names a path that does not exist.
	ErrConfiguredPathNotFound = errors.New("configured php-config path not found")

	// ErrExecutableNotFound indicates php-config could not be located on PATH.
	ErrExecutableNotFound = errors.New("could not find `php-config` executable. " +
		"Please ensure `php-config` is in your PATH or the " +
		"`" + ConfigEnvVar + "` environment variable is set")

	// ErrSpawnFailure indicates php-config could not be started.
	ErrSpawnFailure = errors.New("failed to run `php-config`")

	// ErrNonZeroExit indicates php-config ran but reported failure.
	ErrNonZeroExit = errors.New("`php-config` exited with failure")

	// ErrMissingKey indicates a snapshot lacks a required key.
	ErrMissingKey = errors.New("required key missing from snapshot")

	// ErrInvalidSnapshot indicates a snapshot file could not be decoded.
	ErrInvalidSnapshot = errors.New("invalid snapshot file")
)

// ConfiguredPathError is returned when the override variable points at a
// path that does not exist. It matches ErrConfiguredPathNotFound.
type ConfiguredPathError struct {
	Path string
}

func (e *ConfiguredPathError) Error() string {
	return fmt.Sprintf("php-config executable not found at %q (set via %s)", e.Path, ConfigEnvVar)
}

func (e *ConfiguredPathError) Is(target error) bool {
	return target == ErrConfiguredPathNotFound
}

// SpawnError wraps an OS-level failure to launch php-config.
// It matches ErrSpawnFailure and unwraps to the underlying error.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to run `php-config` (%s): %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

func (e *SpawnError) Is(target error) bool {
	return target == ErrSpawnFailure
}

// ExitError is returned when php-config exits with a non-success status.
//
// Stdout and Stderr hold the captured streams, already decoded with
// invalid byte sequences replaced. It matches ErrNonZeroExit and unwraps to
// the *exec.ExitError.
type ExitError struct {
	Path   string
	Arg    string
	Stdout string
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("failed to run `php-config %s`: %s %s", e.Arg, e.Stdout, e.Stderr)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func (e *ExitError) Is(target error) bool {
	return target == ErrNonZeroExit
}

// KeyError is returned when a snapshot lacks a required key.
// It matches ErrMissingKey.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("could not find %s in snapshot", e.Key)
}

func (e *KeyError) Is(target error) bool {
	return target == ErrMissingKey
}
