// Package fetch plans the range queries needed to retrieve a passage and
// assembles their results.
//
// A reference is decomposed by Plan into bounded queries, which Resolve
// issues concurrently against a Source and joins in planned order.
// ResolveAll applies the strict or lenient failure policy across several
// references.
package fetch

import (
	"context"
	"time"

	"github.com/FocuswithJustin/DailyBread/core/passage"
)

// Source retrieves passage text of one version for a single range query
// such as "Genesis 1:1-5", "Psalm 1-3", or "Isaiah 53".
type Source interface {
	// FetchRange returns the passages matching query, or none when nothing
	// matches. An empty result is not an error.
	FetchRange(ctx context.Context, version, query string, opts passage.FormattingOptions) ([]passage.Passage, error)
	// FetchFeatured returns the featured verse of the day.
	FetchFeatured(ctx context.Context, version string, opts passage.FormattingOptions) (passage.Passage, error)
}

// Settings is the configuration a request runs under. It is captured once
// per request so every query of the request sees the same values.
type Settings struct {
	Version    string
	Formatting passage.FormattingOptions
	Limits     Limits
}

// Observer receives events from planning and assembly. Implementations must
// be safe for concurrent use.
type Observer interface {
	Planned(queries int)
	QueryFinished(d time.Duration, found bool, err error)
	PassageFinished(err error)
	ReferenceDropped()
}

type nopObserver struct{}

func (nopObserver) Planned(int) {}
func (nopObserver) QueryFinished(time.Duration, bool, error) {}
func (nopObserver) PassageFinished(error) {}
func (nopObserver) ReferenceDropped() {}
