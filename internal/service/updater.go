// updater.go - One database update cycle per compiler invocation
package service

import (
	"fmt"

	"compdb-hook/internal/compdb"
	"compdb-hook/internal/storage"
	"compdb-hook/internal/utils"
	"compdb-hook/pkg/logger"
)

// Updater runs the transactional database update for one invocation:
// open, lock, read, parse, reconcile, rewrite. The lock is released on every
// exit path; only after Update returns successfully may the caller hand the
// process over to the real compiler.
type Updater struct {
	store        *storage.Store
	reconciler   *compdb.Reconciler
	workspaceDir string
	logger       logger.Logger
}

func NewUpdater(store *storage.Store, reconciler *compdb.Reconciler, workspaceDir string, logger logger.Logger) *Updater {
	return &Updater{
		store:        store,
		reconciler:   reconciler,
		workspaceDir: workspaceDir,
		logger:       logger,
	}
}

// Update merges the invocation described by arguments (full recorded vector,
// compiler name first) into the database. Any I/O failure aborts the cycle;
// the caller must then fail the build rather than run the compiler with
// stale metadata on disk.
func (u *Updater) Update(arguments []string) error {
	invocationID, err := utils.GenerateUUID()
	if err != nil {
		invocationID = "unknown"
	}
	u.logger.Info("invocation %s: updating %s for %v", invocationID, u.store.Path(), arguments)

	if err := u.store.Open(); err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer u.store.Close()

	if err := u.store.Lock(); err != nil {
		return fmt.Errorf("lock database: %w", err)
	}
	defer u.store.Unlock()

	data, err := u.store.ReadAll()
	if err != nil {
		return fmt.Errorf("read database: %w", err)
	}
	entries := u.store.Parse(data)
	before := len(entries)

	entries = u.reconciler.Reconcile(u.workspaceDir, arguments, entries)
	if err := u.store.Rewrite(entries); err != nil {
		return fmt.Errorf("rewrite database: %w", err)
	}

	u.logger.Info("invocation %s: database has %d entries (%d new)", invocationID, len(entries), len(entries)-before)
	return nil
}
