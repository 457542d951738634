package store

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/DailyBread/core/errors"
)

// rangeQuery is a parsed planner query. Either a verse span inside one
// chapter, or a run of whole chapters.
type rangeQuery struct {
	Book       string
	Chapter    int
	EndChapter int
	FromVerse  int
	ToVerse    int
}

// wholeChapters reports whether the query selects complete chapters.
func (q rangeQuery) wholeChapters() bool {
	return q.FromVerse == 0
}

var queryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[^\s\d:\-]+`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Punct", Pattern: `[:\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

//nolint:govet // participle grammar tags are not standard struct tags
type queryGrammar struct {
	Book       *bookName   `@@`
	Chapter    int         `@Number`
	Verses     *verseRange `( ":" @@`
	EndChapter *int        `| "-" @Number )?`
}

// bookName is everything before the chapter. A number is part of the name
// when another number follows it, as in "Psalm 151 1".
//
//nolint:govet // participle grammar tags are not standard struct tags
type bookName struct {
	Tokens []lexer.Token

	Parts []string `@Number? @Word ( @Word | @Number (?= Number) )*`
}

func (b *bookName) String() string {
	var sb strings.Builder
	for _, tok := range b.Tokens {
		sb.WriteString(tok.Value)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

//nolint:govet // participle grammar tags are not standard struct tags
type verseRange struct {
	From int  `@Number`
	To   *int `( "-" @Number )?`
}

var queryParser = participle.MustBuild[queryGrammar](
	participle.Lexer(queryLexer),
	participle.Elide("Whitespace"),
)

// parseQuery parses the range queries produced by the fetch planner:
//
//	<book> <chapter>:<verse>-<verse>
//	<book> <chapter>-<chapter>
//	<book> <chapter>
//
// A single verse "<book> <chapter>:<verse>" is accepted as well.
func parseQuery(s string) (rangeQuery, error) {
	g, err := queryParser.ParseString("", s)
	if err != nil {
		return rangeQuery{}, queryError(s, err.Error())
	}

	q := rangeQuery{Book: g.Book.String(), Chapter: g.Chapter, EndChapter: g.Chapter}
	if err := positive(q.Chapter); err != nil {
		return rangeQuery{}, queryError(s, err.Error())
	}

	switch {
	case g.Verses != nil:
		q.FromVerse, q.ToVerse = g.Verses.From, g.Verses.From
		if g.Verses.To != nil {
			q.ToVerse = *g.Verses.To
		}
		if err := positive(q.FromVerse); err != nil {
			return rangeQuery{}, queryError(s, err.Error())
		}
		if q.ToVerse < q.FromVerse {
			return rangeQuery{}, queryError(s, "end verse before start verse")
		}
	case g.EndChapter != nil:
		q.EndChapter = *g.EndChapter
		if q.EndChapter < q.Chapter {
			return rangeQuery{}, queryError(s, "end chapter before start chapter")
		}
	}
	return q, nil
}

func positive(n int) error {
	if n < 1 {
		return fmt.Errorf("%d is not positive", n)
	}
	return nil
}

func queryError(query, msg string) error {
	return errors.NewParse("range query", "", fmt.Sprintf("%q: %s", query, msg))
}
