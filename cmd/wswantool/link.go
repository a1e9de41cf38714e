package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/wondertools/wswantool/config"
	"github.com/wondertools/wswantool/layout"
	"github.com/wondertools/wswantool/ldscript"
)

func runLink(name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  wswantool %s [OPTIONS]\nOptions:\n", name)
		fs.PrintDefaults()
	}
	cfgPath := fs.String("config", "wfconfig.lua", "Lua build configuration")
	out := fs.String("o", "link.ld", "Output linker script")
	inspect := fs.Bool("i", false, "Inspect the normalized layout in a TUI instead of emitting")
	fs.Parse(args)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}

	n, err := layout.Normalize(cfg.Regions, cfg.Model)
	if err != nil {
		return err
	}

	if *inspect {
		return runInspector(cfg, n)
	}

	// Buffer the script so a failed emission leaves no partial file behind.
	var buf bytes.Buffer
	if err := ldscript.Emit(&buf, n, cfg.Constants, cfg.ROMStart, cfg.ROMLength); err != nil {
		return err
	}
	return os.WriteFile(*out, buf.Bytes(), 0o644)
}
