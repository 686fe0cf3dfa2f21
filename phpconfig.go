package phpext

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Flags passed to php-config.
const (
	includesFlag = "--includes"
)

// PHPConfig runs php-config with exactly one argument and returns its
// standard output.
//
// # Process Flow
//
//  1. Resolve the executable with FindBin
//  2. Spawn "<path> <arg>" directly, with no shell and no stdin
//  3. Wait for completion, capturing stdout and stderr separately
//
// # Errors
//
//   - Resolution errors from FindBin are returned unchanged
//   - *SpawnError if the process could not be started
//   - *ExitError if the process exited with a non-success status; it carries
//     both captured streams
//   - The context error if ctx is canceled while php-config runs
//
// Output is decoded permissively: invalid UTF-8 is replaced with U+FFFD
// rather than causing an error.
func (p *UnixProvider) PHPConfig(ctx context.Context, arg string) (string, error) {
	path, err := FindBin()
	if err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, arg)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("running php-config %s: %w", arg, ctxErr)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExitError{
				Path:   path,
				Arg:    arg,
				Stdout: decodeLossy(stdout.Bytes()),
				Stderr: decodeLossy(stderr.Bytes()),
				Err:    err,
			}
		}
		return "", &SpawnError{Path: path, Err: err}
	}

	return decodeLossy(stdout.Bytes()), nil
}

// decodeLossy decodes UTF-8, replacing invalid sequences instead of failing.
func decodeLossy(b []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(decoded)
}
