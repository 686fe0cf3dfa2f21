package phpext

import (
	"fmt"
	"strings"
)

// ToolChecker is implemented by providers that can verify their external
// tools before a build starts.
//
// # Consumer Usage
//
//	if checker, ok := provider.(ToolChecker); ok {
//	    if err := checker.CheckTools(); err != nil {
//	        return fmt.Errorf("build tools missing: %w", err)
//	    }
//	}
type ToolChecker interface {
	// RequiredTools returns the tools this provider and the downstream
	// compile step need.
	RequiredTools() []ToolRequirement

	// CheckTools returns nil if every required tool is found, or an error
	// naming the missing ones. Optional tools never cause an error.
	CheckTools() error
}

// ToolRequirement describes a tool dependency.
//
// Tool with alternatives:
//
//	ToolRequirement{
//	    Name: "cc",
//	    Alternatives: []string{"gcc", "clang"},
//	    Purpose: "C compiler",
//	}
type ToolRequirement struct {
	// Name is the primary tool binary name (e.g., "php-config", "cc").
	Name string

	// Alternatives can satisfy the requirement in place of Name.
	Alternatives []string

	// Optional tools are checked but never reported as missing.
	Optional bool

	// Purpose is a human-readable description of why this tool is needed.
	Purpose string
}

// RequiredTools returns php-config (command-backed only) and a C compiler.
func (p *UnixProvider) RequiredTools() []ToolRequirement {
	var tools []ToolRequirement
	if p.info.Source() == SourceCommand {
		tools = append(tools, ToolRequirement{
			Name:    ConfigBinary,
			Purpose: "PHP build configuration",
		})
	}
	return append(tools, ToolRequirement{
		Name:         "cc",
		Alternatives: []string{"gcc", "clang"},
		Purpose:      "C compiler for native extensions",
	})
}

// CheckTools verifies the required tools are available.
//
// php-config honors PHP_CONFIG the same way FindBin does, so a pinned path
// satisfies the requirement without being on PATH.
func (p *UnixProvider) CheckTools() error {
	var rest []ToolRequirement
	var missing []string
	for _, req := range p.RequiredTools() {
		if req.Name != ConfigBinary {
			rest = append(rest, req)
			continue
		}
		if _, err := FindBin(); err != nil {
			missing = append(missing, fmt.Sprintf("%s (%v)", req.Name, err))
		}
	}

	if err := CheckRequiredTools(rest); err != nil {
		missing = append(missing, err.Error())
	}

	switch len(missing) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%s", missing[0])
	default:
		return fmt.Errorf("missing required tools: %s", strings.Join(missing, "; "))
	}
}

// CheckToolAvailable checks if a tool is available in the system PATH.
//
// # Thread Safety
//
// This function is thread-safe and can be called concurrently.
func CheckToolAvailable(tool string) error {
	_, err := execLookPath(tool)
	if err != nil {
		return fmt.Errorf("%s not found in PATH", tool)
	}
	return nil
}

// CheckRequiredTools verifies all required tools are available.
//
// # Behavior
//
//   - Checks the primary tool name first
//   - If not found, tries each alternative tool in order
//   - Optional tools are checked but don't cause errors
//   - Returns all missing required tools in a single error
//
// # Error Format
//
// Single missing tool:
//
//	cc (C compiler) not found in PATH
//
// Multiple missing tools:
//
//	missing required tools: php-config (PHP build configuration), cc (C compiler)
func CheckRequiredTools(requirements []ToolRequirement) error {
	var missingTools []string

	for _, req := range requirements {
		found := CheckToolAvailable(req.Name) == nil

		if !found {
			for _, alt := range req.Alternatives {
				if CheckToolAvailable(alt) == nil {
					found = true
					break
				}
			}
		}

		if !found && !req.Optional {
			if req.Purpose != "" {
				missingTools = append(missingTools, fmt.Sprintf("%s (%s)", req.Name, req.Purpose))
			} else {
				missingTools = append(missingTools, req.Name)
			}
		}
	}

	if len(missingTools) == 0 {
		return nil
	}

	if len(missingTools) == 1 {
		return fmt.Errorf("%s not found in PATH", missingTools[0])
	}

	return fmt.Errorf("missing required tools: %s", strings.Join(missingTools, ", "))
}
