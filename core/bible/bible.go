// Package bible is the entry point for reading passages. A Bible resolves
// reader input against the book and version catalogs, cleans and formats
// each reference, and fetches the text from a content source.
//
// A Bible is safe for concurrent use. Each Get or GetOne call captures the
// version, formatting, and limits at entry; changing them while a call is
// in flight affects only later calls.
package bible

import (
	"context"
	"sync"
	"time"

	"github.com/FocuswithJustin/DailyBread/core/catalog"
	"github.com/FocuswithJustin/DailyBread/core/errors"
	"github.com/FocuswithJustin/DailyBread/core/fetch"
	"github.com/FocuswithJustin/DailyBread/core/passage"
	"github.com/FocuswithJustin/DailyBread/core/reference"
	"github.com/FocuswithJustin/DailyBread/internal/cache"
	"github.com/FocuswithJustin/DailyBread/internal/logging"
)

// GetOptions selects the failure policy of Get.
type GetOptions = fetch.GetOptions

// DefaultFeaturedTTL is how long a featured verse is reused.
const DefaultFeaturedTTL = time.Hour

// Bible reads passages of the active version from a content source.
type Bible struct {
	books     *catalog.Books
	assembler *fetch.Assembler
	featured  *cache.TTLCache[featuredKey, passage.Passage]

	mu         sync.RWMutex
	version    catalog.Version
	formatting passage.FormattingOptions
	limits     fetch.Limits
}

type featuredKey struct {
	version    string
	formatting passage.FormattingOptions
}

type config struct {
	version     string
	formatting  passage.FormattingOptions
	limits      fetch.Limits
	featuredTTL time.Duration
	books       *catalog.Books
	observer    fetch.Observer
}

// Option configures a Bible.
type Option func(*config)

// WithVersion sets the initial version by abbreviation. Default NIV.
func WithVersion(abbreviation string) Option {
	return func(c *config) { c.version = abbreviation }
}

// WithFormatting sets the initial formatting options.
func WithFormatting(opts passage.FormattingOptions) Option {
	return func(c *config) { c.formatting = opts }
}

// WithLimits sets the query size limits used by the planner.
func WithLimits(limits fetch.Limits) Option {
	return func(c *config) { c.limits = limits }
}

// WithFeaturedTTL sets how long a featured verse is cached. Zero disables caching.
func WithFeaturedTTL(ttl time.Duration) Option {
	return func(c *config) { c.featuredTTL = ttl }
}

// WithBooks replaces the default book catalog.
func WithBooks(books *catalog.Books) Option {
	return func(c *config) { c.books = books }
}

// WithObserver reports planning and fetch events, typically to metrics.
func WithObserver(obs fetch.Observer) Option {
	return func(c *config) { c.observer = obs }
}

// New returns a Bible reading from source. It fails with an unsupported
// version error if the configured version is not in the catalog.
func New(source fetch.Source, opts ...Option) (*Bible, error) {
	cfg := config{
		version:     catalog.DefaultVersion,
		formatting:  passage.DefaultFormatting(),
		limits:      fetch.DefaultLimits(),
		featuredTTL: DefaultFeaturedTTL,
		books:       catalog.DefaultBooks(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.limits.MaxVerse < 1 || cfg.limits.MaxChaptersPerQuery < 1 {
		return nil, &errors.ValidationError{Field: "limits", Message: "limits must be positive"}
	}

	b := &Bible{
		books:      cfg.books,
		assembler:  fetch.NewAssembler(source, cfg.observer),
		featured:   cache.New[featuredKey, passage.Passage](cfg.featuredTTL),
		formatting: cfg.formatting,
		limits:     cfg.limits,
	}
	if err := b.SetVersion(cfg.version); err != nil {
		return nil, err
	}
	return b, nil
}

// IsSupportedVersion reports whether abbreviation names a catalogued version.
func (b *Bible) IsSupportedVersion(abbreviation string) bool {
	_, ok := catalog.FindVersion(abbreviation)
	return ok
}

// Version returns the active version.
func (b *Bible) Version() catalog.Version {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// SetVersion changes the active version.
func (b *Bible) SetVersion(abbreviation string) error {
	v, ok := catalog.FindVersion(abbreviation)
	if !ok {
		return errors.NewUnsupportedVersion(abbreviation)
	}
	b.mu.Lock()
	b.version = v
	b.mu.Unlock()
	return nil
}

// Formatting returns the active formatting options.
func (b *Bible) Formatting() passage.FormattingOptions {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.formatting
}

// SetFormatting changes the formatting options of later calls.
func (b *Bible) SetFormatting(opts passage.FormattingOptions) {
	b.mu.Lock()
	b.formatting = opts
	b.mu.Unlock()
}

// Limits returns the planner limits.
func (b *Bible) Limits() fetch.Limits {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.limits
}

// Books returns the book catalog.
func (b *Bible) Books() *catalog.Books {
	return b.books
}

// Book finds a book by name, abbreviation, or alias in the language of the
// active version. Deuterocanonical books are found only if the version
// includes them.
func (b *Bible) Book(name string) (*catalog.Book, error) {
	return b.lookup(name, b.Version())
}

func (b *Bible) lookup(name string, v catalog.Version) (*catalog.Book, error) {
	book, ok := b.books.Lookup(name, v.Language, v.Deuterocanon)
	if !ok {
		return nil, errors.NewBookNotFound(name)
	}
	return book, nil
}

type snapshot struct {
	version  catalog.Version
	settings fetch.Settings
}

func (b *Bible) snapshot() snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return snapshot{
		version: b.version,
		settings: fetch.Settings{
			Version:    b.version.Abbreviation,
			Formatting: b.formatting,
			Limits:     b.limits,
		},
	}
}

// Get reads every reference in input. With opts.Strict the first failing
// reference fails the call; otherwise failing references are dropped and the
// remaining passages are returned in input order.
func (b *Bible) Get(ctx context.Context, input Input, opts GetOptions) ([]passage.Passage, error) {
	ctx = logging.EnsureRequestID(ctx)
	snap := b.snapshot()

	matches, err := flatten(input)
	if err != nil {
		return nil, err
	}
	tasks := make([]fetch.Task, len(matches))
	for i, m := range matches {
		m := m
		tasks[i] = fetch.Task{
			Input: label(m),
			Resolve: func(ctx context.Context) (passage.Passage, error) {
				if m.Err != nil {
					return passage.Passage{}, m.Err
				}
				return b.resolve(ctx, m.Ref, snap)
			},
		}
	}
	return b.assembler.ResolveAll(ctx, tasks, opts)
}

// GetOne reads the first reference in input, failing if there is none or it
// cannot be read. Any further references are ignored.
//
// A first reference that cannot be parsed, names an unknown book, or fails
// validation is reported as a passage not found error whose cause is the
// underlying book, validation, or parse error.
func (b *Bible) GetOne(ctx context.Context, input Input) (passage.Passage, error) {
	ctx = logging.EnsureRequestID(ctx)
	snap := b.snapshot()

	matches, err := flatten(input)
	if err != nil {
		return passage.Passage{}, err
	}
	if len(matches) == 0 {
		return passage.Passage{}, errors.NewPassageNotFound("")
	}

	m := matches[0]
	notFound := func(cause error) error {
		return &errors.NotFoundError{Resource: errors.ResourcePassage, ID: label(m), Err: cause}
	}
	if m.Err != nil {
		return passage.Passage{}, notFound(m.Err)
	}
	book, ref, err := b.prepare(m.Ref, snap)
	if err != nil {
		return passage.Passage{}, notFound(err)
	}
	return b.assembler.Resolve(ctx, ref, book, snap.settings)
}

// resolve looks up, cleans, and fetches one raw reference.
func (b *Bible) resolve(ctx context.Context, raw reference.PassageReference, snap snapshot) (passage.Passage, error) {
	book, ref, err := b.prepare(raw, snap)
	if err != nil {
		return passage.Passage{}, err
	}
	return b.assembler.Resolve(ctx, ref, book, snap.settings)
}

// prepare looks up the book of raw and cleans it against that book.
func (b *Bible) prepare(raw reference.PassageReference, snap snapshot) (*catalog.Book, reference.PassageReference, error) {
	book, err := b.lookup(raw.Book, snap.version)
	if err != nil {
		return nil, raw, err
	}
	ref, err := reference.Clean(raw, book, snap.version.Language)
	if err != nil {
		return nil, raw, errors.Wrap(err, reference.Format(raw))
	}
	return book, ref, nil
}

// Featured returns the featured verse of the day for the active version.
// Results are cached per version and formatting.
func (b *Bible) Featured(ctx context.Context) (passage.Passage, error) {
	ctx = logging.EnsureRequestID(ctx)
	snap := b.snapshot()
	key := featuredKey{version: snap.settings.Version, formatting: snap.settings.Formatting}
	return b.featured.GetOrLoad(ctx, key, func(ctx context.Context) (passage.Passage, error) {
		return b.assembler.Source().FetchFeatured(ctx, snap.settings.Version, snap.settings.Formatting)
	})
}
