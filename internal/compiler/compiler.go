// compiler.go - Real compiler resolution and process replacement
package compiler

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// DefaultName is the compiler invoked when no override is configured.
const DefaultName = "clang++"

// MakeArguments builds the argument vector recorded in the database: the
// configured compiler name in place of argv[0], followed by the invocation's
// own flags and operands. Database consumers must see the real compiler
// name, not the hook's.
func MakeArguments(compilerName string, argv []string) []string {
	result := make([]string, 0, len(argv))
	result = append(result, compilerName)
	if len(argv) > 1 {
		result = append(result, argv[1:]...)
	}
	return result
}

// Replacer hands the process over to the real compiler. The database update
// has no dependency on this happening, and tests substitute a stub.
type Replacer interface {
	// Replace replaces the current process image with the named compiler,
	// passing argv and the inherited environment and descriptors. On success
	// it never returns.
	Replace(name string, argv []string) error
}

// ExecReplacer implements Replacer with execvp semantics: the name is
// resolved against PATH, then the process image is swapped.
type ExecReplacer struct{}

func (ExecReplacer) Replace(name string, argv []string) error {
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("resolve compiler %s: %w", name, err)
	}
	if err := syscall.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
