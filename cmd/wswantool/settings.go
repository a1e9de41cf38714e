package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wondertools/wswantool/settings"
)

func runConfig(name string, args []string) error {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  wswantool %s [OPTIONS] list\n  wswantool %s [OPTIONS] get KEY\n  wswantool %s [OPTIONS] set KEY VALUE\n  wswantool %s [OPTIONS] unset KEY\nOptions:\n", name, name, name, name)
		fs.PrintDefaults()
	}
	file := fs.String("file", ".wswantool.json", "Configuration repository file")
	fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(1)
	}

	store, err := settings.Open(*file)
	if err != nil {
		return err
	}

	switch verb := fs.Arg(0); verb {
	case "list":
		for _, key := range store.Keys() {
			value, _ := store.Get(key)
			fmt.Printf("%s=%s\n", key, value)
		}
		return nil
	case "get":
		if fs.NArg() != 2 {
			fs.Usage()
			os.Exit(1)
		}
		value, ok := store.Get(fs.Arg(1))
		if !ok {
			return fmt.Errorf("key %q not set", fs.Arg(1))
		}
		fmt.Println(value)
		return nil
	case "set":
		if fs.NArg() != 3 {
			fs.Usage()
			os.Exit(1)
		}
		store.Set(fs.Arg(1), fs.Arg(2))
		return store.Save()
	case "unset":
		if fs.NArg() != 2 {
			fs.Usage()
			os.Exit(1)
		}
		if !store.Unset(fs.Arg(1)) {
			return fmt.Errorf("key %q not set", fs.Arg(1))
		}
		return store.Save()
	default:
		return fmt.Errorf("unknown config verb %q", verb)
	}
}
