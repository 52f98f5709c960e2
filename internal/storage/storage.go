package storage

import (
	"os"
	"strings"
	"time"

	"github.com/julianstephens/remind/internal/codec"
	"github.com/julianstephens/remind/internal/errors"
	"github.com/julianstephens/remind/internal/logger"
	"github.com/julianstephens/remind/internal/models"
)

// Store owns the reminder file and the in-memory record sequence for one
// run. Records keep file order; nothing sorts or deduplicates. The file
// is not locked: two concurrent runs race and the last writer wins,
// an accepted limitation for a single-user tool.
type Store struct {
	path  string
	today time.Time
	items []models.Reminder
}

func New(path string, today time.Time) *Store {
	return &Store{
		path:  path,
		today: today,
	}
}

// Load reads the reminder file and parses every non-empty line. A
// missing file is an empty set. The first malformed line aborts the
// whole run: surfacing corruption beats silently dropping records.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return &errors.StorageError{Op: "read", Path: s.path, Err: err}
	}

	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		item, err := codec.Parse(s.today, strings.Split(line, " "))
		if err != nil {
			logger.Error("malformed reminder line", "path", s.path, "line", line)
			return err
		}
		s.Add(item)
	}

	logger.Info("loaded reminders", "path", s.path, "count", len(s.items))
	return nil
}

// Add appends a record.
func (s *Store) Add(item models.Reminder) {
	s.items = append(s.items, item)
}

// DueWithin returns, in insertion order, every record dated in
// [today, today+n days). n == 0 lifts the upper bound and keeps
// everything from today onward.
func (s *Store) DueWithin(n int) []models.Reminder {
	limit := s.today.AddDate(0, 0, n)
	var due []models.Reminder
	for _, item := range s.items {
		if item.Date.Before(s.today) {
			continue
		}
		if n != 0 && !item.Date.Before(limit) {
			continue
		}
		due = append(due, item)
	}
	return due
}

// Save rewrites the file with every record from today onward, one line
// per record. Past records are dropped here; this is the pruning step
// that every run finishes with.
func (s *Store) Save() error {
	kept := s.DueWithin(0)

	var b strings.Builder
	for _, item := range kept {
		b.WriteString(item.String())
		b.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0600); err != nil {
		return &errors.StorageError{Op: "write", Path: s.path, Err: err}
	}

	logger.Info("saved reminders", "path", s.path, "kept", len(kept), "pruned", len(s.items)-len(kept))
	return nil
}
