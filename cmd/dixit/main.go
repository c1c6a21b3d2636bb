package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Makepad-fr/dixit/internal/cli"
	"github.com/Makepad-fr/dixit/internal/config"
	"github.com/Makepad-fr/dixit/internal/tui"
	"github.com/Makepad-fr/dixit/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	yes := flag.Bool("yes", false, "answer yes to every confirmation prompt")
	theme := flag.String("theme", "", "classic, neon or mono (overrides config)")
	noColor := flag.Bool("no-color", false, "disable colored output")
	forceColor := flag.Bool("force-color", false, "color even when stdout is not a TTY")
	flag.Parse()

	log.SetLevel(log.WarnLevel)
	if os.Getenv("DIXIT_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(1)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	ui.SetColorForcing(*forceColor, *noColor || cfg.NoColor)
	ui.SetTheme(cfg.Theme)

	// No subcommand: open the interactive browser.
	args := flag.Args()
	if len(args) == 0 {
		if err := tui.Run(); err != nil {
			ui.Fail("tui: " + err.Error())
			os.Exit(1)
		}
		return
	}

	code := cli.Run(args, cli.Options{
		Yes: *yes,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
