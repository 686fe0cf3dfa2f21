// Package phpext discovers the compiler flags needed to build native PHP
// extensions on POSIX-like systems.
//
// It answers two questions for a downstream build: where the runtime's
// header files live, and which preprocessor defines match the runtime's
// configuration.
//
// # Configuration Sources
//
// A PHPInfo selects one of two sources:
//   - Command-backed - runs php-config (found via PHP_CONFIG or PATH)
//   - Snapshot-backed - reads "includes" and "defines" from a key/value
//     snapshot, for cross-compilation or sandboxed builds
//
// Snapshots can be built directly with FromSnapshot, read from the
// environment with SnapshotFromEnv, or loaded from a TOML file with
// LoadSnapshotFile.
//
// # Basic Usage
//
//	info, err := phpext.ResolveInfo(phpext.ResolveOptions{FromEnv: true})
//	if err != nil {
//	    return err
//	}
//	provider := phpext.FromInfo(info)
//
//	includes, err := provider.Includes(ctx)
//	if err != nil {
//	    return err
//	}
//	defines, err := provider.Defines(ctx)
//	if err != nil {
//	    return err
//	}
//	cflags := phpext.CompilerFlags(includes, defines)
//
// # Errors
//
// Failures can be identified with errors.Is against ErrConfiguredPathNotFound,
// ErrExecutableNotFound, ErrSpawnFailure, ErrNonZeroExit and ErrMissingKey,
// or inspected with errors.As for the typed errors carrying details.
// Nothing is retried, and the package never writes to a console or log.
//
// # Platform Support
//
// Linux, macOS and the BSDs. Windows toolchains are not supported.
package phpext
