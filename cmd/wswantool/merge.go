package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wondertools/wswantool/ccmerge"
)

func runCcmerge(name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  wswantool %s -o OUTPUT FRAGMENT...\nOptions:\n", name)
		fs.PrintDefaults()
	}
	out := fs.String("o", "compile_commands.json", "Output JSON file")
	fs.Parse(args)

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := ccmerge.Merge(f, fs.Args()); err != nil {
		f.Close()
		os.Remove(*out)
		return err
	}
	return f.Close()
}
