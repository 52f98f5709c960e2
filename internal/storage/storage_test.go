package storage

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/remind/internal/errors"
	"github.com/julianstephens/remind/internal/models"
)

var today = time.Date(2019, 6, 30, 0, 0, 0, 0, time.UTC)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func tempStore(t *testing.T, content string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".reminders")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	return New(path, today)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := tempStore(t, "")

	if err := s.Load(); err != nil {
		t.Fatalf("Load on missing file failed: %v", err)
	}
	if got := s.DueWithin(0); len(got) != 0 {
		t.Errorf("expected empty store, got %d records", len(got))
	}
}

func TestLoad_SkipsBlankLines(t *testing.T) {
	s := tempStore(t, "7 4 Independence Day\n\n\n2019 7 2 lunch with Pat\n")

	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := s.DueWithin(0); len(got) != 2 {
		t.Errorf("expected 2 records, got %d", len(got))
	}
}

func TestLoad_MalformedLineAborts(t *testing.T) {
	s := tempStore(t, "7 4 Independence Day\nnot a reminder line\n")

	err := s.Load()
	if !stderrors.Is(err, errors.ErrUsage) {
		t.Fatalf("Load err = %v, want usage error", err)
	}
}

func TestDueWithin_Window(t *testing.T) {
	s := tempStore(t, "")
	s.Add(models.Reminder{Date: date(2019, 7, 4), Message: "Independence Day"})
	s.Add(models.Reminder{Date: date(2020, 7, 2), HasYear: true, Message: "far out"})
	s.Add(models.Reminder{Date: date(2019, 5, 13), HasYear: true, Message: "past"})
	s.Add(models.Reminder{Date: date(2019, 7, 7), HasYear: true, Message: "on the boundary"})

	due := s.DueWithin(7)
	if len(due) != 1 {
		t.Fatalf("DueWithin(7) returned %d records, want 1: %v", len(due), due)
	}
	if due[0].Message != "Independence Day" {
		t.Errorf("DueWithin(7)[0] = %+v", due[0])
	}
}

func TestDueWithin_ZeroMeansNoUpperBound(t *testing.T) {
	s := tempStore(t, "")
	s.Add(models.Reminder{Date: date(2019, 5, 13), HasYear: true, Message: "past"})
	s.Add(models.Reminder{Date: date(2019, 6, 30), HasYear: true, Message: "today"})
	s.Add(models.Reminder{Date: date(2031, 1, 1), HasYear: true, Message: "distant"})

	due := s.DueWithin(0)
	if len(due) != 2 {
		t.Fatalf("DueWithin(0) returned %d records, want 2", len(due))
	}
	if due[0].Message != "today" || due[1].Message != "distant" {
		t.Errorf("DueWithin(0) = %v, want insertion order with past pruned", due)
	}
}

func TestSave_PrunesPastRecords(t *testing.T) {
	s := tempStore(t, "2019 5 13 dentist 2:00pm\n2019 7 2 lunch with Pat\n")

	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "2019 7 2 lunch with Pat\n" {
		t.Errorf("file after save = %q", string(data))
	}
}

func TestSave_PreservesOrderAndYearlessForm(t *testing.T) {
	content := "4 2 Anne birthday\n10 13 Kate birthday\n7 4 Independence Day\n2019 7 2 lunch with Pat\n"
	s := tempStore(t, content)

	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != content {
		t.Errorf("file after save = %q, want %q", string(data), content)
	}
}

func TestSave_WriteFailureIsStorageError(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, today) // a directory cannot be written as a file
	s.Add(models.Reminder{Date: date(2019, 7, 4), Message: "Independence Day"})

	err := s.Save()
	var serr *errors.StorageError
	if !stderrors.As(err, &serr) {
		t.Fatalf("Save err = %v, want StorageError", err)
	}
	if serr.Path != dir || serr.Op != "write" {
		t.Errorf("StorageError = %+v", serr)
	}
}
