package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/wondertools/wswantool/bin2c"
	"github.com/wondertools/wswantool/ccmerge"
	"github.com/wondertools/wswantool/config"
	"github.com/wondertools/wswantool/filebuf"
	"github.com/wondertools/wswantool/layout"
	"github.com/wondertools/wswantool/ldscript"
	"github.com/wondertools/wswantool/settings"
)

// command is one dispatchable subcommand. Remaining CLI arguments are
// passed through untouched.
type command struct {
	descr string
	run   func(name string, args []string) error
}

var commands = map[string]command{
	"link":    {"generate a linker script from a Lua memory map", runLink},
	"bin2c":   {"embed a binary file as a C source/header pair", runBin2c},
	"ccmerge": {"merge compile-commands fragments into one JSON array", runCcmerge},
	"config":  {"inspect or edit the tool configuration repository", runConfig},
}

func main() {
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Usage = usage
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		layout.SetLogger(logger)
		ldscript.SetLogger(logger)
		config.SetLogger(logger)
		filebuf.SetLogger(logger)
		bin2c.SetLogger(logger)
		ccmerge.SetLogger(logger)
		settings.SetLogger(logger)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "wswantool: unknown command %q\n\n", args[0])
		usage()
		os.Exit(1)
	}

	if err := cmd.run(args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: wswantool [-v] COMMAND [OPTIONS]")
	fmt.Fprintln(os.Stderr, "Commands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", name, commands[name].descr)
	}
}
