// store.go - Compilation database file store
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/tidwall/gjson"

	"compdb-hook/internal/compdb"
	"compdb-hook/pkg/logger"
)

// Store owns the database file handle for the duration of one update cycle.
// The advisory lock on the handle is the only concurrency control between
// the hook processes a parallel build launches: the whole
// read-reconcile-rewrite cycle runs while holding it. The kernel drops the
// lock when the handle is closed, including on process exit and exec.
type Store struct {
	path   string
	file   *os.File
	logger logger.Logger
}

func NewStore(path string, logger logger.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Open creates the database file if absent and opens it read-write.
func (s *Store) Open() error {
	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_RDWR, 0664)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	s.file = file
	return nil
}

// Lock acquires the exclusive advisory lock on the open file, blocking until
// any concurrent invocation finishes its own cycle.
func (s *Store) Lock() error {
	if err := syscall.Flock(int(s.file.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("lock %s: %w", s.path, err)
	}
	return nil
}

// Unlock releases the advisory lock. Safe to call when not locked.
func (s *Store) Unlock() error {
	if err := syscall.Flock(int(s.file.Fd()), syscall.LOCK_UN); err != nil {
		return fmt.Errorf("unlock %s: %w", s.path, err)
	}
	return nil
}

// Close closes the handle, releasing the lock if still held.
func (s *Store) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// ReadAll reads the database content from the current offset to the end.
func (s *Store) ReadAll() ([]byte, error) {
	data, err := io.ReadAll(s.file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return data, nil
}

// Parse decodes the persisted entry collection. Corruption of any kind
// yields an empty collection instead of an error: a bad prior write must not
// block every subsequent build, and the next rewrite replaces the file
// wholesale anyway.
func (s *Store) Parse(data []byte) compdb.CommandEntries {
	if len(data) == 0 {
		s.logger.Debug("database %s is empty", s.path)
		return compdb.CommandEntries{}
	}
	if !gjson.ValidBytes(data) {
		s.logger.Warn("database %s is not valid JSON, starting over", s.path)
		return compdb.CommandEntries{}
	}
	if !gjson.ParseBytes(data).IsArray() {
		s.logger.Warn("database %s does not hold a JSON array, starting over", s.path)
		return compdb.CommandEntries{}
	}
	var entries compdb.CommandEntries
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("database %s does not decode as an entry array, starting over: %v", s.path, err)
		return compdb.CommandEntries{}
	}
	return entries
}

// Rewrite replaces the file content with the serialized collection. The file
// is truncated and rewritten from the start; partial writes are retried
// until every byte is flushed.
func (s *Store) Rewrite(entries compdb.CommandEntries) error {
	data, err := entries.Marshal()
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}
	if err := s.file.Truncate(0); err != nil {
		return fmt.Errorf("truncate %s: %w", s.path, err)
	}
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek %s: %w", s.path, err)
	}
	for written := 0; written < len(data); {
		n, err := s.file.Write(data[written:])
		if err != nil {
			return fmt.Errorf("write %s: %w", s.path, err)
		}
		written += n
	}
	return nil
}
