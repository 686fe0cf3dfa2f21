package phpext

import (
	"context"
	"strings"
)

// Provider defines the interface for discovering the compiler flags needed to
// build a native extension against a PHP runtime.
//
// Each provider targets one platform convention. UnixProvider covers
// POSIX-like systems that ship php-config; Windows toolchains are handled
// elsewhere.
//
// # Example
//
//	provider := phpext.FromInfo(phpext.FromCommand())
//
//	includes, err := provider.Includes(ctx)
//	if err != nil {
//	    return err
//	}
//	defines, err := provider.Defines(ctx)
//	if err != nil {
//	    return err
//	}
//	args := phpext.CompilerFlags(includes, defines)
type Provider interface {
	// Includes returns the header search paths, in the order reported by
	// the source. Paths are not deduplicated or checked for existence.
	Includes(ctx context.Context) ([]string, error)

	// Defines returns the preprocessor defines the runtime requires.
	Defines(ctx context.Context) ([]Define, error)
}

// UnixProvider resolves build flags from a PHPInfo on POSIX-like systems.
//
// Every query dispatches on the PHPInfo source. Nothing is cached between
// calls, so repeated queries always reflect the current state of the source.
//
// # Thread Safety
//
// A UnixProvider holds no mutable state. It is intended for use by a single
// build step; parallel builds should each construct their own.
type UnixProvider struct {
	info *PHPInfo
}

var _ Provider = (*UnixProvider)(nil)

// FromInfo binds a provider to info. It performs no I/O and always succeeds.
// A nil info is treated as command-backed.
func FromInfo(info *PHPInfo) *UnixProvider {
	if info == nil {
		info = FromCommand()
	}
	return &UnixProvider{info: info}
}

// Info returns the description the provider is bound to.
func (p *UnixProvider) Info() *PHPInfo {
	return p.info
}

// Includes returns the include paths for the runtime.
//
// Command-backed: runs "php-config --includes", splits the output on
// whitespace and strips one leading "-I" from each token. Tokens without the
// prefix are passed through unchanged.
//
// Snapshot-backed: splits the "includes" value on commas, keeping each
// segment verbatim. A missing key returns a *KeyError.
func (p *UnixProvider) Includes(ctx context.Context) ([]string, error) {
	switch p.info.Source() {
	case SourceSnapshot:
		value, ok := p.info.GetKey(KeyIncludes)
		if !ok {
			return nil, &KeyError{Key: KeyIncludes}
		}
		return strings.Split(value, ","), nil
	default:
		output, err := p.PHPConfig(ctx, includesFlag)
		if err != nil {
			return nil, err
		}
		return parseIncludeFlags(output), nil
	}
}

// Defines returns the preprocessor defines for the runtime.
//
// Snapshot-backed: splits the "defines" value on commas and each segment on
// its first "=". A segment without "=" gets the value "1". A missing key is
// not an error and yields an empty result.
//
// Command-backed: always empty. php-config is never asked for defines.
func (p *UnixProvider) Defines(ctx context.Context) ([]Define, error) {
	if p.info.Source() != SourceSnapshot {
		return []Define{}, nil
	}

	value, ok := p.info.GetKey(KeyDefines)
	if !ok {
		return []Define{}, nil
	}
	return parseDefines(value), nil
}

// parseIncludeFlags turns "-I/a -I/b" into ["/a", "/b"].
// Empty segments from repeated or trailing whitespace are dropped.
func parseIncludeFlags(output string) []string {
	tokens := strings.Fields(output)
	includes := make([]string, 0, len(tokens))
	for _, token := range tokens {
		includes = append(includes, strings.TrimPrefix(token, "-I"))
	}
	return includes
}

func parseDefines(value string) []Define {
	segments := strings.Split(value, ",")
	defines := make([]Define, 0, len(segments))
	for _, segment := range segments {
		name, val, found := strings.Cut(segment, "=")
		if !found {
			val = "1"
		}
		defines = append(defines, Define{Name: name, Value: val})
	}
	return defines
}
