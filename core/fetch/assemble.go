package fetch

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/FocuswithJustin/DailyBread/core/catalog"
	"github.com/FocuswithJustin/DailyBread/core/errors"
	"github.com/FocuswithJustin/DailyBread/core/passage"
	"github.com/FocuswithJustin/DailyBread/core/reference"
	"github.com/FocuswithJustin/DailyBread/internal/logging"
)

// GetOptions selects the failure policy for a multi-reference request.
type GetOptions struct {
	// Strict fails the whole request when any reference fails. When false,
	// failing references are dropped and the rest are returned.
	Strict bool `json:"strict"`
}

// Task resolves one reference of a multi-reference request.
type Task struct {
	// Input identifies the reference in logs, usually as the caller typed it.
	Input   string
	Resolve func(ctx context.Context) (passage.Passage, error)
}

// Assembler issues planned queries against a Source and stitches the results.
type Assembler struct {
	source   Source
	observer Observer
}

// NewAssembler returns an Assembler reading from source. A nil observer
// discards events.
func NewAssembler(source Source, observer Observer) *Assembler {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Assembler{source: source, observer: observer}
}

// Source returns the content source the assembler reads from.
func (a *Assembler) Source() Source {
	return a.source
}

// Resolve fetches a cleaned reference. Every planned query is issued
// concurrently and the results are joined in planned order with the
// separator of the formatting options. If any query returns nothing the
// whole reference fails with a passage not found error; partial text is
// never returned.
func (a *Assembler) Resolve(ctx context.Context, ref reference.PassageReference, book *catalog.Book, settings Settings) (passage.Passage, error) {
	label := reference.Format(ref)
	queries := Plan(ref, book, settings.Limits)
	opts := settings.Formatting
	a.observer.Planned(len(queries))

	texts := make([]string, len(queries))
	var g errgroup.Group
	for i, query := range queries {
		i, query := i, query
		g.Go(func() error {
			start := time.Now()
			results, err := a.source.FetchRange(ctx, settings.Version, query, opts)
			elapsed := time.Since(start)
			found := err == nil && len(results) > 0
			a.observer.QueryFinished(elapsed, found, err)
			logging.QueryIssued(ctx, query, elapsed, found)

			if err != nil {
				return errors.Wrapf(err, "fetch %q", query)
			}
			if !found {
				return errors.NewPassageNotFound(label)
			}
			parts := make([]string, len(results))
			for j, r := range results {
				parts[j] = r.Text
			}
			texts[i] = opts.Join(parts)
			return nil
		})
	}

	err := g.Wait()
	a.observer.PassageFinished(err)
	if err != nil {
		return passage.Passage{}, err
	}
	return passage.Passage{Reference: label, Text: opts.Join(texts)}, nil
}

// ResolveAll runs every task concurrently and returns the passages in task
// order.
//
// In strict mode the first failure fails the call; results of tasks still in
// flight are discarded. Otherwise each failure is logged and its reference
// dropped, and the surviving passages keep their relative order.
func (a *Assembler) ResolveAll(ctx context.Context, tasks []Task, opts GetOptions) ([]passage.Passage, error) {
	results := make([]passage.Passage, len(tasks))
	failed := make([]error, len(tasks))

	var g errgroup.Group
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			p, err := task.Resolve(ctx)
			if err != nil {
				if opts.Strict {
					return err
				}
				failed[i] = err
				return nil
			}
			results[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	passages := make([]passage.Passage, 0, len(tasks))
	for i, p := range results {
		if failed[i] != nil {
			a.observer.ReferenceDropped()
			logging.ReferenceDropped(ctx, tasks[i].Input, failed[i])
			continue
		}
		passages = append(passages, p)
	}
	return passages, nil
}
