// source_file.go - Source file operands of one compiler invocation
package compdb

import (
	"sort"

	"compdb-hook/internal/utils"
)

// SourceFile identifies one compiled file. Two source files are the same
// file iff their absolute paths match; the relative path is kept because new
// database entries record the path exactly as it appeared on the command
// line.
type SourceFile struct {
	RelativePath string
	AbsolutePath string
}

// NewSourceFile resolves relativePath against baseDirectory.
func NewSourceFile(baseDirectory, relativePath string) SourceFile {
	return SourceFile{
		RelativePath: relativePath,
		AbsolutePath: utils.JoinPath(baseDirectory, relativePath),
	}
}

// SourceFileSet indexes source files by absolute path. Duplicate operands on
// a command line collapse to one element.
type SourceFileSet map[string]SourceFile

func (s SourceFileSet) Add(file SourceFile) {
	s[file.AbsolutePath] = file
}

// Remove deletes the file with the given absolute path, reporting whether it
// was present.
func (s SourceFileSet) Remove(absolutePath string) bool {
	if _, ok := s[absolutePath]; !ok {
		return false
	}
	delete(s, absolutePath)
	return true
}

// Sorted returns the remaining files ordered by absolute path, so appended
// entries land in a stable order.
func (s SourceFileSet) Sorted() []SourceFile {
	files := make([]SourceFile, 0, len(s))
	for _, file := range s {
		files = append(files, file)
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].AbsolutePath < files[j].AbsolutePath
	})
	return files
}
