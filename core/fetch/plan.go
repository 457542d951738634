package fetch

import (
	"fmt"

	"github.com/FocuswithJustin/DailyBread/core/catalog"
	"github.com/FocuswithJustin/DailyBread/core/reference"
)

// Limits bound the size of a single query sent to a Source.
type Limits struct {
	// MaxVerse stands in for "the last verse of the chapter". It must be larger
	// than the verse count of any real chapter; sources treat verse numbers
	// past the end of a chapter as absent.
	MaxVerse int `json:"max_verse" yaml:"max_verse"`
	// MaxChaptersPerQuery is the largest number of whole chapters requested at once.
	MaxChaptersPerQuery int `json:"max_chapters_per_query" yaml:"max_chapters_per_query"`
}

// DefaultLimits returns MaxVerse 200 and MaxChaptersPerQuery 5.
func DefaultLimits() Limits {
	return Limits{MaxVerse: 200, MaxChaptersPerQuery: 5}
}

// Plan decomposes a cleaned reference into the queries needed to fetch it,
// in reading order: a partial start chapter, runs of whole chapters, then a
// partial end chapter. The passage text is the query results joined in this
// order.
func Plan(ref reference.PassageReference, book *catalog.Book, limits Limits) []string {
	startChapter := valueOr(ref.From.Chapter, 1)
	endChapter := valueOr(ref.To.Chapter, valueOr(ref.From.Chapter, book.Chapters))
	startVerse := valueOr(ref.From.Verse, 1)
	endVerse := valueOr(ref.To.Verse, valueOr(ref.From.Verse, limits.MaxVerse))

	if startChapter == endChapter {
		return []string{fmt.Sprintf("%s %d:%d-%d", ref.Book, startChapter, startVerse, endVerse)}
	}

	var queries []string
	if startVerse != 1 {
		queries = append(queries, fmt.Sprintf("%s %d:%d-%d", ref.Book, startChapter, startVerse, limits.MaxVerse))
		startChapter++
	}

	var endPartial string
	if endVerse != limits.MaxVerse {
		endPartial = fmt.Sprintf("%s %d:1-%d", ref.Book, endChapter, endVerse)
		endChapter--
	}

	for _, r := range SplitRange(startChapter, endChapter, limits.MaxChaptersPerQuery) {
		if r[0] == r[1] {
			queries = append(queries, fmt.Sprintf("%s %d", ref.Book, r[0]))
		} else {
			queries = append(queries, fmt.Sprintf("%s %d-%d", ref.Book, r[0], r[1]))
		}
	}

	if endPartial != "" {
		queries = append(queries, endPartial)
	}
	return queries
}

// SplitRange splits the inclusive range [start, end] into the fewest
// consecutive inclusive ranges of at most size elements, in ascending order.
// An inverted range yields nothing.
func SplitRange(start, end, size int) [][2]int {
	if size < 1 {
		size = 1
	}
	var ranges [][2]int
	for end-start+1 > size {
		ranges = append(ranges, [2]int{start, start + size - 1})
		start += size
	}
	if start <= end {
		ranges = append(ranges, [2]int{start, end})
	}
	return ranges
}

func valueOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
