package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/remind/internal/cli"
	"github.com/julianstephens/remind/internal/constants"
	"github.com/julianstephens/remind/internal/errors"
	"github.com/julianstephens/remind/internal/logger"
	"github.com/julianstephens/remind/internal/storage"
	"github.com/julianstephens/remind/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	// passthrough keeps dash-prefixed tokens (a negative month, say)
	// out of flag parsing so they reach the codec and fail with the
	// usage string rather than a flag error.
	Tokens []string `arg:"" optional:"" passthrough:"" name:"token" help:"[year] month day message; omit to list reminders for the next seven days."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Print reminders of upcoming events"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	home, err := os.UserHomeDir()
	if err != nil {
		errors.Fatal(errors.ErrNoHomeDir)
	}

	// Best-effort: a missing state dir must not stop the run.
	_ = logger.Init(filepath.Join(home, ".local", "state", constants.StateDirName))

	today := utils.Today()
	store := storage.New(filepath.Join(home, constants.ReminderFileName), today)
	appCtx := &cli.Context{Store: store}

	if err := store.Load(); err != nil {
		errors.Fatal(err)
	}

	if len(CLI.Tokens) == 0 {
		err = (&cli.ListCmd{}).Run(appCtx)
	} else {
		err = (&cli.AddCmd{Today: today, Tokens: CLI.Tokens}).Run(appCtx)
	}
	errors.Fatal(err)
}
