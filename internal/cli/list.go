package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/remind/internal/constants"
	"github.com/julianstephens/remind/internal/logger"
)

// ListCmd prints every reminder due within the next week, one storage
// line per reminder, then saves to prune past entries.
type ListCmd struct {
	// Out defaults to stdout; tests redirect it.
	Out io.Writer
}

func (c *ListCmd) Run(ctx *Context) error {
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	due := ctx.Store.DueWithin(constants.WindowDays)
	for _, item := range due {
		fmt.Fprintln(out, item.String())
	}
	logger.Info("listed reminders", "window_days", constants.WindowDays, "due", len(due))

	return ctx.Store.Save()
}
