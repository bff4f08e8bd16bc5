// reconciler.go - Merges one invocation into the existing entry collection
package compdb

import (
	"compdb-hook/internal/utils"
	"compdb-hook/pkg/logger"
)

// Reconciler merges the source files of the current invocation into an
// existing entry collection. Entries matching a current file get their
// arguments refreshed in place; files with no entry are appended; everything
// else is left untouched. The database is a best-effort union of all
// invocations ever observed, never a snapshot of one build, so stale rows
// are deliberately not pruned.
type Reconciler struct {
	logger logger.Logger
}

func NewReconciler(logger logger.Logger) *Reconciler {
	return &Reconciler{logger: logger}
}

// Reconcile updates entries in place against the invocation described by
// arguments (the full recorded vector, compiler name first) and returns the
// collection with any new entries appended.
//
// An existing entry is matched by resolving its file against its directory
// (or cwd when the directory is absent) and looking the result up among the
// invocation's source files. Matched entries keep their position, directory
// and file; only arguments are overwritten. Entries without a file field
// cannot be keyed, so they are logged and left as they are.
func (r *Reconciler) Reconcile(cwd string, arguments []string, entries CommandEntries) CommandEntries {
	files := ExtractSourceFiles(cwd, arguments)
	for i := range entries {
		entry := &entries[i]
		if entry.File == nil {
			r.logger.Error("compilation database entry has no file field: %s", entry.String())
			continue
		}
		baseDirectory := cwd
		if entry.Directory != nil {
			baseDirectory = *entry.Directory
		}
		if files.Remove(utils.JoinPath(baseDirectory, *entry.File)) {
			args := make([]string, len(arguments))
			copy(args, arguments)
			entry.Arguments = args
		}
	}
	for _, file := range files.Sorted() {
		entries = append(entries, NewCommandEntry(cwd, arguments, file.RelativePath))
	}
	return entries
}
