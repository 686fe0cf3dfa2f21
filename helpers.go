package phpext

import (
	"fmt"
	"strings"
)

// CompilerFlags formats include paths and defines as C compiler arguments.
//
// Includes become "-I<path>" and defines become "-D<name>=<value>", in that
// order, preserving the order of each input.
//
// # Example
//
//	flags := CompilerFlags(
//	    []string{"/usr/include/php"},
//	    []Define{{Name: "ZTS", Value: "1"}},
//	)
//	// flags == []string{"-I/usr/include/php", "-DZTS=1"}
//
// # Thread Safety
//
// This function is thread-safe and can be called concurrently.
func CompilerFlags(includes []string, defines []Define) []string {
	flags := make([]string, 0, len(includes)+len(defines))
	for _, include := range includes {
		flags = append(flags, "-I"+include)
	}
	for _, define := range defines {
		flags = append(flags, fmt.Sprintf("-D%s=%s", define.Name, define.Value))
	}
	return flags
}

// FormatDefines renders defines back into the snapshot "defines" syntax.
// Defines whose value is "1" are written as a bare name.
func FormatDefines(defines []Define) string {
	parts := make([]string, 0, len(defines))
	for _, define := range defines {
		if define.Value == "1" {
			parts = append(parts, define.Name)
			continue
		}
		parts = append(parts, define.Name+"="+define.Value)
	}
	return strings.Join(parts, ",")
}
