// Package importer loads verse text into the local store from Zefania XML
// or TSV files, plain, xz or gzip compressed, or bundled in a tar archive.
//
// Every input is fingerprinted with BLAKE3; importing the same file for the
// same version twice is a no-op unless forced.
package importer

import (
	"context"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/DailyBread/core/catalog"
	"github.com/FocuswithJustin/DailyBread/core/errors"
	"github.com/FocuswithJustin/DailyBread/internal/archive"
	"github.com/FocuswithJustin/DailyBread/internal/logging"
	"github.com/FocuswithJustin/DailyBread/internal/store"
)

// Options controls an import.
type Options struct {
	// Version is the abbreviation the verses are stored under.
	Version string
	// Force imports even if the same file was imported before.
	Force bool
}

// Result describes a finished import.
type Result struct {
	Path    string `json:"path"`
	Version string `json:"version"`
	Digest  string `json:"digest"`
	Files   int    `json:"files"`
	Verses  int    `json:"verses"`
	Skipped bool   `json:"skipped"`
}

// Importer writes parsed verses into a store.
type Importer struct {
	store *store.Store
	books *catalog.Books
}

// New returns an Importer writing to s.
func New(s *store.Store) *Importer {
	return &Importer{store: s, books: catalog.DefaultBooks()}
}

// Import loads the file at path. A file whose format cannot be told from its
// name is sniffed: XML if it starts with '<', TSV otherwise.
func (im *Importer) Import(ctx context.Context, path string, opts Options) (Result, error) {
	start := time.Now()
	v, ok := catalog.FindVersion(opts.Version)
	if !ok {
		return Result{}, errors.NewUnsupportedVersion(opts.Version)
	}
	res := Result{Path: path, Version: v.Abbreviation}

	digest, err := Digest(path)
	if err != nil {
		return res, err
	}
	res.Digest = digest

	if !opts.Force {
		done, err := im.store.HasImport(ctx, digest, v.Abbreviation)
		if err != nil {
			return res, err
		}
		if done {
			res.Skipped = true
			logging.ImportCompleted(path, v.Abbreviation, 0, true, time.Since(start))
			return res, nil
		}
	}

	var verses []store.Verse
	err = archive.Walk(path, func(name string, r io.Reader) (bool, error) {
		if err := ctx.Err(); err != nil {
			return true, err
		}
		parsed, ok, err := im.parse(name, r, v.Language)
		if err != nil {
			return true, err
		}
		if !ok {
			logging.Debug("import_entry_skipped", "path", path, "entry", name)
			return false, nil
		}
		res.Files++
		verses = append(verses, parsed...)
		return false, nil
	})
	if err != nil {
		return res, err
	}
	if len(verses) == 0 {
		return res, errors.NewParse("import", path, "no verses found")
	}

	rec := store.ImportRecord{Digest: digest, Version: v.Abbreviation, Path: path, Verses: len(verses)}
	if err := im.store.Import(ctx, rec, verses); err != nil {
		return res, err
	}
	res.Verses = len(verses)
	logging.ImportCompleted(path, v.Abbreviation, res.Verses, false, time.Since(start), "files", res.Files)
	return res, nil
}

// parse dispatches on the entry name. ok is false for entries that are not
// Bible text, such as a README inside a bundle.
func (im *Importer) parse(name string, r io.Reader, lang catalog.Language) ([]store.Verse, bool, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xml":
		verses, err := parseZefania(r, name, im.books, lang)
		return verses, true, err
	case ".tsv", ".tab", ".txt":
		verses, err := parseTSV(r, name, im.books, lang)
		return verses, true, err
	case "":
		br := newSniffer(r)
		if br.isXML() {
			verses, err := parseZefania(br, name, im.books, lang)
			return verses, true, err
		}
		verses, err := parseTSV(br, name, im.books, lang)
		return verses, true, err
	}
	return nil, false, nil
}

// Export writes every stored verse of version to path as TSV, compressed
// according to the extension of path.
func Export(ctx context.Context, s *store.Store, version, path string) (int, error) {
	v, ok := catalog.FindVersion(version)
	if !ok {
		return 0, errors.NewUnsupportedVersion(version)
	}
	w, err := archive.Create(path)
	if err != nil {
		return 0, errors.NewIO("create", path, err)
	}

	n := 0
	err = s.EachVerse(ctx, v.Abbreviation, func(verse store.Verse) error {
		n++
		return writeTSV(w, verse)
	})
	if cerr := w.Close(); err == nil && cerr != nil {
		err = errors.NewIO("write", path, cerr)
	}
	if err != nil {
		os.Remove(path)
		return 0, err
	}
	if n == 0 {
		os.Remove(path)
		return 0, errors.NewPassageNotFound("verses of " + v.Abbreviation)
	}
	return n, nil
}

// Digest returns the hex BLAKE3 hash of the file at path as stored on disk.
func Digest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.NewIO("open", path, err)
	}
	defer f.Close()

	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.NewIO("read", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
