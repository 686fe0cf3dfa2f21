package phpext

// Source identifies where a PHPInfo gets its configuration from.
type Source int

const (
	// SourceCommand means configuration is obtained by running php-config.
	SourceCommand Source = iota
	// SourceSnapshot means configuration comes from a pre-captured key/value snapshot.
	SourceSnapshot
)

// String returns a short name for the source, used in logs and error messages.
func (s Source) String() string {
	switch s {
	case SourceCommand:
		return "command"
	case SourceSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// Snapshot keys consumed by the provider.
const (
	KeyIncludes = "includes"
	KeyDefines  = "defines"
)

// PHPInfo describes the PHP runtime an extension is built against.
//
// A PHPInfo is one of two variants, fixed at construction:
//   - Command-backed: carries no data, values are fetched from php-config on demand
//   - Snapshot-backed: carries a key/value mapping captured from the
//     environment or a configuration file
//
// Use FromCommand or FromSnapshot to construct one. The zero value is a
// command-backed description.
//
// # Thread Safety
//
// PHPInfo is immutable after construction and safe for concurrent reads.
type PHPInfo struct {
	source   Source
	snapshot map[string]string
}

// FromCommand returns a description that resolves configuration by running php-config.
func FromCommand() *PHPInfo {
	return &PHPInfo{source: SourceCommand}
}

// FromSnapshot returns a description backed by the given key/value snapshot.
//
// The mapping is copied, so later changes to values do not affect the
// returned PHPInfo. A nil map is treated as an empty snapshot.
func FromSnapshot(values map[string]string) *PHPInfo {
	snapshot := make(map[string]string, len(values))
	for k, v := range values {
		snapshot[k] = v
	}
	return &PHPInfo{source: SourceSnapshot, snapshot: snapshot}
}

// Source reports which variant is active.
func (i *PHPInfo) Source() Source {
	return i.source
}

// GetKey looks up a snapshot value. It always reports false for a
// command-backed description.
func (i *PHPInfo) GetKey(key string) (string, bool) {
	if i.source != SourceSnapshot {
		return "", false
	}
	value, ok := i.snapshot[key]
	return value, ok
}

// Define is a preprocessor define and its value.
type Define struct {
	Name  string
	Value string
}
