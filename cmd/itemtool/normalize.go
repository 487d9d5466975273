package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/osse101/NumeneraItems_Go/internal/i18n"
	"github.com/osse101/NumeneraItems_Go/internal/item"
	"github.com/osse101/NumeneraItems_Go/internal/library"
	"github.com/osse101/NumeneraItems_Go/internal/validation"
)

var errMissingPack = errors.New("pack path required")

// newLoader builds a pack loader whose items localize into locale.
func newLoader(locale string) (library.Loader, error) {
	bundle, err := i18n.LoadEmbedded(i18n.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to load locales: %w", err)
	}
	factory := item.NewFactory(item.Services{Localizer: bundle.Localizer(locale)}, nil)
	return library.NewLoader(factory, validation.NewSchemaValidator()), nil
}

// buildPack loads and builds the pack at path.
func buildPack(path, locale string, strict bool) (library.Loader, *library.Pack, *library.BuildResult, error) {
	loader, err := newLoader(locale)
	if err != nil {
		return nil, nil, nil, err
	}
	pack, err := loader.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	result, err := loader.Build(context.Background(), pack, library.BuildOptions{Strict: strict})
	if err != nil {
		return nil, nil, nil, err
	}
	return loader, pack, result, nil
}

type NormalizeCommand struct {
	out io.Writer
}

func (c *NormalizeCommand) Name() string {
	return "normalize"
}

func (c *NormalizeCommand) Description() string {
	return "Normalize an item pack and write the stored form"
}

func (c *NormalizeCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	strict := fs.Bool("strict", false, "reject values outside the rule tables")
	locale := fs.String("locale", "en-US", "locale for default names")
	output := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errMissingPack
	}

	loader, _, result, err := buildPack(fs.Arg(0), *locale, *strict)
	if err != nil {
		return err
	}

	w := c.out
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := loader.Export(context.Background(), w, result.Items); err != nil {
		return err
	}
	if *output != "" {
		PrintSuccess("Wrote %d items to %s", len(result.Items), *output)
	}
	return nil
}
