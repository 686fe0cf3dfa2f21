package phpext

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultEnvPrefix is the prefix SnapshotFromEnv uses when none is given.
const DefaultEnvPrefix = "PHP_"

// SnapshotFromEnv builds a snapshot-backed PHPInfo from environment variables.
//
// It reads <prefix>INCLUDES and <prefix>DEFINES into the "includes" and
// "defines" keys. The second result is false when neither variable is set,
// in which case callers usually fall back to FromCommand.
//
// # Example
//
//	// PHP_INCLUDES=/opt/php/include/php,/opt/php/include/php/main
//	// PHP_DEFINES=ZTS,ZEND_DEBUG=0
//	info, ok := phpext.SnapshotFromEnv("")
//	if !ok {
//	    info = phpext.FromCommand()
//	}
func SnapshotFromEnv(prefix string) (*PHPInfo, bool) {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}

	values := map[string]string{}
	if v, ok := os.LookupEnv(prefix + "INCLUDES"); ok {
		values[KeyIncludes] = v
	}
	if v, ok := os.LookupEnv(prefix + "DEFINES"); ok {
		values[KeyDefines] = v
	}
	if len(values) == 0 {
		return nil, false
	}
	return FromSnapshot(values), true
}

// LoadSnapshotFile reads a TOML snapshot from path.
//
// The file holds top-level "includes" and "defines" entries, each either a
// comma-joined string or an array of strings:
//
//	includes = ["/opt/php/include/php", "/opt/php/include/php/main"]
//	defines = "ZTS,ZEND_DEBUG=0"
//
// Other keys are kept as strings when they are strings and ignored otherwise.
func LoadSnapshotFile(path string) (*PHPInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidSnapshot, path, err)
	}

	values := make(map[string]string, len(raw))
	for key, v := range raw {
		switch typed := v.(type) {
		case string:
			values[key] = typed
		case []any:
			parts := make([]string, 0, len(typed))
			for _, item := range typed {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("%w %s: %q must contain only strings", ErrInvalidSnapshot, path, key)
				}
				parts = append(parts, s)
			}
			values[key] = strings.Join(parts, ",")
		default:
			if key == KeyIncludes || key == KeyDefines {
				return nil, fmt.Errorf("%w %s: %q must be a string or an array of strings", ErrInvalidSnapshot, path, key)
			}
		}
	}

	return FromSnapshot(values), nil
}
