package main

import (
	"flag"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/osse101/NumeneraItems_Go/internal/i18n"
	"github.com/osse101/NumeneraItems_Go/internal/tables"
)

type TablesCommand struct {
	out io.Writer
}

func (c *TablesCommand) Name() string {
	return "tables"
}

func (c *TablesCommand) Description() string {
	return "Print the rule tables with localized labels"
}

func (c *TablesCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	locale := fs.String("locale", "en-US", "label locale")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bundle, err := i18n.LoadEmbedded(i18n.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to load locales: %w", err)
	}
	loc := bundle.Localizer(*locale)

	all := tables.All()
	for _, name := range slices.Sorted(maps.Keys(all)) {
		if fs.NArg() > 0 && !slices.Contains(fs.Args(), name) {
			continue
		}
		labels := make([]string, len(all[name].Entries))
		for i, e := range all[name].Entries {
			labels[i] = fmt.Sprintf("%s=%s", e.ID, loc.Localize(e.Label))
		}
		fmt.Fprintf(c.out, "%s: %s\n", name, strings.Join(labels, ", "))
	}
	return nil
}
