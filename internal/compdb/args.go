// args.go - Source file extraction from a compiler argument vector
package compdb

import "strings"

// flagsWithArgument lists the compiler flags that consume the following
// token as their value. The token after one of these is skipped
// unconditionally, even when it looks like a file name (`-o out.o` must not
// record out.o as a source).
var flagsWithArgument = map[string]struct{}{
	"-MF":      {},
	"-include": {},
	"-iquote":  {},
	"-isystem": {},
	"-o":       {},
	"-target":  {},
}

// ExtractSourceFiles walks the argument vector and collects the source file
// operands: tokens that are neither flags nor flag values. args[0] is the
// program name and is skipped; unrecognized flags are skipped without
// consuming a value.
func ExtractSourceFiles(cwd string, args []string) SourceFileSet {
	files := make(SourceFileSet)
	for i := 1; i < len(args); i++ {
		if _, ok := flagsWithArgument[args[i]]; ok {
			i++
		} else if !strings.HasPrefix(args[i], "-") {
			files.Add(NewSourceFile(cwd, args[i]))
		}
	}
	return files
}
