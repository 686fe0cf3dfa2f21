package phpext

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

const (
	// ConfigEnvVar pins the exact path of php-config and disables PATH search.
	ConfigEnvVar = "PHP_CONFIG"

	// ConfigBinary is the conventional name of the configuration executable.
	ConfigBinary = "php-config"
)

var execLookPath = exec.LookPath

// FindBin resolves the filesystem path of php-config.
//
// # Resolution Order
//
//  1. If PHP_CONFIG is set, its value is used as-is. A path that does not
//     exist is a hard error naming that path; it never falls through to
//     PATH search. No executability check is made.
//  2. Otherwise PATH is searched for php-config.
//  3. If neither yields a path, ErrExecutableNotFound is returned.
//
// Nothing is cached. Every call re-reads the environment and the filesystem.
//
// # Thread Safety
//
// This function is thread-safe and can be called concurrently.
func FindBin() (string, error) {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", &ConfiguredPathError{Path: path}
			}
			return "", fmt.Errorf("checking %s=%q: %w", ConfigEnvVar, path, err)
		}
		return path, nil
	}

	path, err := execLookPath(ConfigBinary)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExecutableNotFound, err)
	}
	return path, nil
}
