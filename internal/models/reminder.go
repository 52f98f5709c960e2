package models

import (
	"fmt"
	"time"
)

// Reminder is a single dated note. Date is always a concrete day at UTC
// midnight; a yearless reminder carries its next upcoming occurrence,
// recomputed each time the file is loaded.
type Reminder struct {
	Date    time.Time
	HasYear bool
	Message string
}

// String renders the storage-line form: "[year] month day message" with
// plain unpadded decimals. The year is emitted only when the reminder
// was entered with one.
func (r Reminder) String() string {
	if r.HasYear {
		return fmt.Sprintf("%d %d %d %s", r.Date.Year(), int(r.Date.Month()), r.Date.Day(), r.Message)
	}
	return fmt.Sprintf("%d %d %s", int(r.Date.Month()), r.Date.Day(), r.Message)
}
