package constants

const (
	AppName = "remind"
	Version = "v1.0.0"

	// ReminderFileName is the database file, kept directly under the
	// user's home directory.
	ReminderFileName = ".reminders"

	// StateDirName holds logs, under ~/.local/state.
	StateDirName = "remind"

	// Usage is the fixed message printed on any malformed input.
	Usage = "usage: remind [year] month day message"

	// YearThreshold: a leading token is a year only if it parses as an
	// integer strictly greater than this. One- and two-digit values can
	// never be years.
	YearThreshold = 99

	// WindowDays is the upcoming window shown in list mode.
	WindowDays = 7

	// LeapSearchYears caps the forward search for the next Feb 29 so
	// malformed input cannot loop forever. Leap years occur at least
	// every eight years, so the cap is never hit for real dates.
	LeapSearchYears = 100
)
