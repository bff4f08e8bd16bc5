// entry.go - Compilation database record model
package compdb

import "encoding/json"

// CommandEntry is one record of the compilation database. See
// https://clang.llvm.org/docs/JSONCompilationDatabase.html for the format.
//
// None of the fields are optional in the format, but a database written by
// other tooling (or a partially corrupt one) may be missing some of them, and
// one bad entry must not fail the whole run. Pointer fields keep
// "absent" distinguishable from "empty".
type CommandEntry struct {
	Directory *string  `json:"directory,omitempty"`
	Arguments []string `json:"arguments,omitempty"`
	File      *string  `json:"file,omitempty"`
}

// NewCommandEntry builds a fully-populated entry for one source file.
func NewCommandEntry(directory string, arguments []string, file string) CommandEntry {
	args := make([]string, len(arguments))
	copy(args, arguments)
	return CommandEntry{
		Directory: &directory,
		Arguments: args,
		File:      &file,
	}
}

// String renders the entry as compact JSON, for diagnostics.
func (e CommandEntry) String() string {
	data, err := json.Marshal(e)
	if err != nil {
		return "<unprintable entry>"
	}
	return string(data)
}

// CommandEntries is the ordered entry collection. Order is append/update
// order and is preserved across rewrites: it is the only record of which
// entries are oldest.
type CommandEntries []CommandEntry

// Marshal serializes the collection as the pretty-printed JSON array the
// database file holds, with a trailing newline.
func (entries CommandEntries) Marshal() ([]byte, error) {
	if entries == nil {
		entries = CommandEntries{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
