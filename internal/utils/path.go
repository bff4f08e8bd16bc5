// utils/path.go - Path handling utilities
package utils

import "strings"

// DatabaseFileName is the well-known compilation database file name. See
// https://clang.llvm.org/docs/JSONCompilationDatabase.html for the format.
const DatabaseFileName = "compile_commands.json"

// JoinPath resolves fileName against baseDirectory. Absolute names and names
// with an empty base are returned unchanged; otherwise the two parts are
// joined with exactly one separator. The compilation database format uses
// forward slashes regardless of how entries were produced, so this is a pure
// string operation rather than a filepath call.
func JoinPath(baseDirectory, fileName string) string {
	if baseDirectory == "" || strings.HasPrefix(fileName, "/") {
		return fileName
	}
	if strings.HasSuffix(baseDirectory, "/") {
		return baseDirectory + fileName
	}
	return baseDirectory + "/" + fileName
}
