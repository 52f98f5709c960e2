package cli

import (
	"time"

	"github.com/julianstephens/remind/internal/codec"
	"github.com/julianstephens/remind/internal/logger"
)

// AddCmd appends one reminder parsed from the raw argument tokens. A
// parse failure aborts before any write, leaving the file untouched.
type AddCmd struct {
	Today  time.Time
	Tokens []string
}

func (c *AddCmd) Run(ctx *Context) error {
	item, err := codec.Parse(c.Today, c.Tokens)
	if err != nil {
		return err
	}

	ctx.Store.Add(item)
	logger.Info("added reminder", "date", item.Date.Format("2006-01-02"), "recurring", !item.HasYear)

	return ctx.Store.Save()
}
