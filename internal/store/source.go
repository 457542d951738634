package store

import (
	"context"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/DailyBread/core/errors"
	"github.com/FocuswithJustin/DailyBread/core/fetch"
	"github.com/FocuswithJustin/DailyBread/core/passage"
	"github.com/FocuswithJustin/DailyBread/core/reference"
)

var _ fetch.Source = (*Store)(nil)

// featuredStride spreads consecutive days across the whole version.
const featuredStride = 7919

// FetchRange returns the stored verses matching a planner query as one
// passage. Verse numbers past the end of a chapter simply match nothing, so
// a query with no stored verses yields no passages.
func (s *Store) FetchRange(ctx context.Context, version, query string, opts passage.FormattingOptions) ([]passage.Passage, error) {
	q, err := parseQuery(query)
	if err != nil {
		return nil, err
	}
	book, ok := s.books.Lookup(q.Book, language(version), true)
	if !ok {
		return nil, errors.NewBookNotFound(q.Book)
	}

	sqlQuery := "SELECT chapter, verse, text FROM verses WHERE version = ? AND book = ? AND chapter BETWEEN ? AND ?"
	args := []any{versionKey(version), book.Key, q.Chapter, q.EndChapter}
	if !q.wholeChapters() {
		sqlQuery += " AND verse BETWEEN ? AND ?"
		args = append(args, q.FromVerse, q.ToVerse)
	}
	sqlQuery += " ORDER BY chapter, verse"

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.NewIO("query", s.path, err)
	}
	defer rows.Close()

	var verses []Verse
	for rows.Next() {
		v := Verse{Book: book.Key}
		if err := rows.Scan(&v.Chapter, &v.Verse, &v.Text); err != nil {
			return nil, errors.NewIO("scan", s.path, err)
		}
		verses = append(verses, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewIO("query", s.path, err)
	}
	if len(verses) == 0 {
		return nil, nil
	}
	return []passage.Passage{{Reference: query, Text: render(verses, opts)}}, nil
}

// FetchFeatured picks the featured verse of the day: the same verse all day,
// a different one each day of the year.
func (s *Store) FetchFeatured(ctx context.Context, version string, opts passage.FormattingOptions) (passage.Passage, error) {
	key := versionKey(version)

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM verses WHERE version = ?", key).Scan(&count); err != nil {
		return passage.Passage{}, errors.NewIO("query", s.path, err)
	}
	if count == 0 {
		return passage.Passage{}, errors.NewPassageNotFound("featured verse of " + key)
	}

	offset := (s.now().YearDay() - 1) * featuredStride % count
	var v Verse
	err := s.db.QueryRowContext(ctx,
		"SELECT book, chapter, verse, text FROM verses WHERE version = ? ORDER BY book, chapter, verse LIMIT 1 OFFSET ?",
		key, offset).Scan(&v.Book, &v.Chapter, &v.Verse, &v.Text)
	if err != nil {
		return passage.Passage{}, errors.NewIO("query", s.path, err)
	}

	name := v.Book
	if book, ok := s.books.Lookup(v.Book, language(version), true); ok {
		name = book.Name(language(version))
	}
	ref := reference.PassageReference{Book: name, From: reference.ChapterVerse(v.Chapter, v.Verse)}

	// The featured verse stands alone, so its number is never shown.
	opts.ShowVerseNumbers = false
	return passage.Passage{Reference: reference.Format(ref), Text: render([]Verse{v}, opts)}, nil
}

// render joins verses into passage text. Verses of one chapter are joined by
// a space and chapters by the paragraph separator.
func render(verses []Verse, opts passage.FormattingOptions) string {
	var chapters []string
	var b strings.Builder
	for i, v := range verses {
		if i > 0 && v.Chapter != verses[i-1].Chapter {
			chapters = append(chapters, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		if opts.ShowVerseNumbers && (v.Verse != 1 || opts.ShowVerseNumberForVerseOne) {
			b.WriteString(passage.SuperscriptNumbers(strconv.Itoa(v.Verse)))
			b.WriteByte(' ')
		}
		b.WriteString(passage.TrimWhitespace(v.Text))
	}
	chapters = append(chapters, b.String())

	text := opts.Join(chapters)
	if !opts.AllowUnicodePunctuation {
		text = passage.ConvertUnicodePunctuation(text)
	}
	return text
}
