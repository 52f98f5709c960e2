// Package codec parses and formats reminder records. One routine serves
// both sources of tokens: command-line arguments and stored lines split
// on single spaces, so the two stay in round-trip agreement.
package codec

import (
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/remind/internal/constants"
	"github.com/julianstephens/remind/internal/errors"
	"github.com/julianstephens/remind/internal/models"
	"github.com/julianstephens/remind/internal/utils"
)

// Parse turns a token sequence "[year] month day message..." into a
// Reminder. The leading token is a year only when it parses as an
// integer strictly greater than 99; otherwise it is the month and the
// date recurs yearly, resolved against today to its next occurrence.
// Any malformed input fails with the usage error.
func Parse(today time.Time, tokens []string) (models.Reminder, error) {
	if len(tokens) == 0 {
		return models.Reminder{}, errors.Usagef("no tokens")
	}

	first, err := strconv.Atoi(tokens[0])
	if err != nil {
		return models.Reminder{}, errors.Usagef("leading token %q is not an integer", tokens[0])
	}

	i := 0
	year := 0
	hasYear := false
	if first > constants.YearThreshold {
		year = first
		hasYear = true
		i = 1
	}

	// Past the optional year there must be a month, a day, and at
	// least one message token.
	if len(tokens)-i < 3 {
		return models.Reminder{}, errors.Usagef("too few tokens")
	}

	month, err := parseField(tokens[i])
	if err != nil {
		return models.Reminder{}, errors.Usagef("bad month %q", tokens[i])
	}
	day, err := parseField(tokens[i+1])
	if err != nil {
		return models.Reminder{}, errors.Usagef("bad day %q", tokens[i+1])
	}

	var date time.Time
	if hasYear {
		var ok bool
		date, ok = utils.MakeDate(year, month, day)
		if !ok {
			return models.Reminder{}, errors.Usagef("invalid date %d-%d-%d", year, month, day)
		}
	} else {
		date, err = utils.NextOccurrence(today, month, day)
		if err != nil {
			return models.Reminder{}, errors.Usagef("invalid recurring date: %v", err)
		}
	}

	return models.Reminder{
		Date:    date,
		HasYear: hasYear,
		Message: strings.Join(tokens[i+2:], " "),
	}, nil
}

func parseField(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
