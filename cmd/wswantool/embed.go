package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wondertools/wswantool/bin2c"
	"github.com/wondertools/wswantool/filebuf"
)

func runBin2c(name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  wswantool %s [OPTIONS] INPUT OUTPUT.c OUTPUT.h\nOptions:\n", name)
		fs.PrintDefaults()
	}
	symbol := fs.String("name", "", "Symbol name (default: derived from the input file name)")
	align := fs.Int("align", 0, "Array alignment in bytes")
	space := fs.String("space", "", "Address-space qualifier, e.g. __far")
	fs.Parse(args)
	if fs.NArg() != 3 {
		fs.Usage()
		os.Exit(1)
	}

	ref, err := filebuf.From(fs.Arg(0))
	if err != nil {
		return err
	}
	data, err := filebuf.AsData(ref)
	if err != nil {
		return err
	}

	sym := *symbol
	if sym == "" {
		sym = bin2c.SymbolName(filepath.Base(fs.Arg(0)))
	}

	source, header, err := bin2c.Convert(sym, data.Bytes, bin2c.Options{
		Align:        *align,
		AddressSpace: *space,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(fs.Arg(1), source, 0o644); err != nil {
		return err
	}
	return os.WriteFile(fs.Arg(2), header, 0o644)
}
