package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/Makepad-fr/tada-undo/internal/cli"
	"github.com/Makepad-fr/tada-undo/internal/config"
	"github.com/Makepad-fr/tada-undo/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group output by pending/done")
	configPath := flag.String("config", "", "config file (default ~/.tada/config.yaml)")
	dataFile := flag.String("data", "", "items file (default ./todos.json)")
	theme := flag.String("theme", "", "classic, neon or mono")
	noColor := flag.Bool("no-color", false, "disable colors")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *configPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			*configPath = p
		}
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(2)
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if *theme != "" {
		cfg.Theme = *theme
	}

	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.Level())
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	ui.SetColorForcing(false, *noColor)
	ui.SetTheme(cfg.Theme)

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stderr)
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Group:      *groupPending || cfg.Group,
		DataFile:   cfg.DataFile,
		MaxHistory: cfg.MaxHistory,
		Log:        log.StandardLogger(),
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
