package main

import (
	"flag"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/osse101/NumeneraItems_Go/internal/tables"
)

type ValidateCommand struct {
	out io.Writer
}

func (c *ValidateCommand) Name() string {
	return "validate"
}

func (c *ValidateCommand) Description() string {
	return "Check an item pack against its schema and rule tables"
}

func (c *ValidateCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	strict := fs.Bool("strict", true, "reject values outside the rule tables")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errMissingPack
	}

	PrintHeader("Validating " + fs.Arg(0))
	_, pack, result, err := buildPack(fs.Arg(0), "en-US", *strict)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "version  %s\nchecksum %s\n", pack.Version, pack.Checksum)
	for _, tag := range slices.Sorted(maps.Keys(result.ByType)) {
		fmt.Fprintf(c.out, "%s %-10s %d\n", tables.Icon(tag), tag, result.ByType[tag])
	}

	PrintSuccess("%d items valid", len(result.Items))
	return nil
}
