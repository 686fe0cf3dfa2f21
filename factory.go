package phpext

// ResolveOptions controls how ResolveInfo picks a configuration source.
type ResolveOptions struct {
	// SnapshotFile, if set, is a TOML snapshot that takes priority over
	// everything else.
	SnapshotFile string

	// FromEnv enables reading a snapshot from <EnvPrefix>INCLUDES and
	// <EnvPrefix>DEFINES.
	FromEnv bool

	// EnvPrefix defaults to DefaultEnvPrefix.
	EnvPrefix string
}

// ResolveInfo selects the PHPInfo for a build.
//
// Sources are tried in this order:
//  1. opts.SnapshotFile, if set (errors are returned, never skipped)
//  2. The environment snapshot, if opts.FromEnv and at least one variable is set
//  3. php-config (command-backed)
//
// Only the snapshot file is read here; php-config is not run until a
// provider query needs it.
func ResolveInfo(opts ResolveOptions) (*PHPInfo, error) {
	if opts.SnapshotFile != "" {
		return LoadSnapshotFile(opts.SnapshotFile)
	}

	if opts.FromEnv {
		if info, ok := SnapshotFromEnv(opts.EnvPrefix); ok {
			return info, nil
		}
	}

	return FromCommand(), nil
}
