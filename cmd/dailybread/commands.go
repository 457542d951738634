package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/FocuswithJustin/DailyBread/core/bible"
	"github.com/FocuswithJustin/DailyBread/core/catalog"
	"github.com/FocuswithJustin/DailyBread/core/errors"
	"github.com/FocuswithJustin/DailyBread/core/passage"
	"github.com/FocuswithJustin/DailyBread/internal/api"
	"github.com/FocuswithJustin/DailyBread/internal/config"
	"github.com/FocuswithJustin/DailyBread/internal/importer"
	"github.com/FocuswithJustin/DailyBread/internal/metrics"
)

// ReadCmd prints passages.
type ReadCmd struct {
	Passages     []string `arg:"" optional:"" help:"Passages to read, e.g. John 3:16; Psalm 23"`
	Version      string   `short:"v" help:"Version abbreviation (default from config)"`
	VerseNumbers bool     `short:"n" default:"true" negatable:"" help:"Show verse numbers"`
	Strict       bool     `help:"Fail if any reference cannot be read"`
}

func (c *ReadCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	query := strings.TrimSpace(strings.Join(c.Passages, " "))
	if query == "" {
		return fmt.Errorf("no passage given")
	}
	return g.withBible(func(b *bible.Bible, cfg config.Config) error {
		if c.Version != "" {
			if err := b.SetVersion(c.Version); err != nil {
				return err
			}
		}
		opts := b.Formatting()
		opts.ShowVerseNumbers = c.VerseNumbers
		b.SetFormatting(opts)

		passages, err := b.Get(ctx, bible.Text(query), bible.GetOptions{Strict: c.Strict})
		if err != nil {
			return err
		}
		if len(passages) == 0 {
			return fmt.Errorf("no passages found")
		}
		for _, p := range passages {
			printPassage(out, p)
		}
		return nil
	})
}

func printPassage(out io.Writer, p passage.Passage) {
	fmt.Fprintf(out, "%s\n\n%s\n\n", p.Reference, p.Text)
}

// BookCmd describes one book of the catalog.
type BookCmd struct {
	Name    []string `arg:"" help:"Book name or abbreviation"`
	Version string   `short:"v" help:"Version whose language and canon are used"`
}

func (c *BookCmd) Run(g *Globals, out io.Writer) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	abbrev := cfg.Version
	if c.Version != "" {
		abbrev = c.Version
	}
	v, ok := catalog.FindVersion(abbrev)
	if !ok {
		return errors.NewUnsupportedVersion(abbrev)
	}

	name := strings.Join(c.Name, " ")
	book, ok := catalog.DefaultBooks().Lookup(name, v.Language, v.Deuterocanon)
	if !ok {
		return errors.NewBookNotFound(name)
	}
	categories := strings.Join(book.Categories.Names(), ", ")
	if categories == "" {
		categories = "-"
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", book.Name(v.Language))
	fmt.Fprintf(w, "Key:\t%s\n", book.Key)
	fmt.Fprintf(w, "Chapters:\t%d\n", book.Chapters)
	fmt.Fprintf(w, "Testament:\t%s\n", book.Testament)
	fmt.Fprintf(w, "Canon:\t%s\n", book.Canon)
	fmt.Fprintf(w, "Categories:\t%s\n", categories)
	return w.Flush()
}

// VersionsCmd lists the version catalog.
type VersionsCmd struct {
	Language string `short:"l" help:"Only list versions of this language"`
}

func (c *VersionsCmd) Run(g *Globals, out io.Writer) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	active, _ := catalog.FindVersion(cfg.Version)

	versions := catalog.Versions()
	if c.Language != "" {
		versions = catalog.VersionsFor(catalog.Language(strings.ToLower(c.Language)))
		if len(versions) == 0 {
			return fmt.Errorf("no versions for language %q", c.Language)
		}
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tVERSION\tLANGUAGE\tNAME")
	for _, v := range versions {
		mark := ""
		if v.Abbreviation == active.Abbreviation {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", mark, v.Abbreviation, v.Language, v.Name)
	}
	return w.Flush()
}

// VotdCmd prints the featured verse of the day.
type VotdCmd struct {
	Version string `short:"v" help:"Version abbreviation (default from config)"`
}

func (c *VotdCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	return g.withBible(func(b *bible.Bible, cfg config.Config) error {
		if c.Version != "" {
			if err := b.SetVersion(c.Version); err != nil {
				return err
			}
		}
		p, err := b.Featured(ctx)
		if err != nil {
			return err
		}
		printPassage(out, p)
		return nil
	})
}

// ImportCmd loads a Zefania XML or TSV file into the verse database.
type ImportCmd struct {
	File    string `arg:"" help:"File to import (.xml, .tsv, optionally .gz or .xz)" type:"existingfile"`
	Version string `short:"v" required:"" help:"Version abbreviation the verses belong to"`
	Force   bool   `short:"f" help:"Import even if this file was imported before"`
}

func (c *ImportCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := importer.New(s).Import(ctx, c.File, importer.Options{Version: c.Version, Force: c.Force})
	if err != nil {
		return err
	}
	if res.Skipped {
		fmt.Fprintf(out, "Skipped %s: already imported as %s (use --force to import again)\n", res.Path, res.Version)
		return nil
	}
	fmt.Fprintf(out, "Imported %d verses of %s from %d file(s) into %s\n", res.Verses, res.Version, res.Files, s.Path())
	fmt.Fprintf(out, "  Digest: %s\n", res.Digest)
	return nil
}

// ExportCmd writes a stored version as TSV.
type ExportCmd struct {
	Output  string `arg:"" help:"Output file (.tsv, .tsv.gz, or .tsv.xz)" type:"path"`
	Version string `short:"v" required:"" help:"Version abbreviation to export"`
}

func (c *ExportCmd) Run(ctx context.Context, g *Globals, out io.Writer) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := importer.Export(ctx, s, c.Version, c.Output)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Exported %d verses of %s to %s\n", n, strings.ToUpper(c.Version), c.Output)
	return nil
}

// ServeCmd runs the API server until interrupted.
type ServeCmd struct {
	Port int `short:"p" help:"HTTP server port (default from config)"`
}

func (c *ServeCmd) Run(ctx context.Context, g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}
	src, closeSource, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	m := metrics.New()
	b, err := newBible(src, cfg, m)
	if err != nil {
		return err
	}
	srv, err := api.New(b, m, apiConfig(cfg))
	if err != nil {
		return err
	}
	defer srv.Close()
	return srv.ListenAndServe(ctx)
}

// AboutCmd prints the program version.
type AboutCmd struct{}

func (c *AboutCmd) Run(out io.Writer) error {
	fmt.Fprintf(out, "dailybread version %s\n", version)
	return nil
}
