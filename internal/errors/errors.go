package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/remind/internal/constants"
	"github.com/julianstephens/remind/internal/logger"
)

// ErrUsage marks malformed input: bad add-mode arguments or a malformed
// stored record. Its message is the fixed usage string.
var ErrUsage = errors.New(constants.Usage)

// ErrNoHomeDir is returned when the user's home directory cannot be
// resolved. Nothing is read or written in that case.
var ErrNoHomeDir = errors.New("could not find home directory")

// Usagef wraps ErrUsage with detail about what failed to parse. The
// detail goes to the log; the user sees the usage string.
func Usagef(format string, args ...interface{}) error {
	logger.Info("parse rejected", "reason", fmt.Sprintf(format, args...))
	return ErrUsage
}

// StorageError is an I/O failure on the reminder file. A missing file on
// read is not a StorageError; every other read or write failure is.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("could not %s reminders at %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
