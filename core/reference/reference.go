// Package reference parses, normalizes, and formats passage references such
// as "John 3:16", "Isaiah 52:13-53:12", or "Obadiah 1-4".
//
// A raw reference comes from Parse or from a caller. Clean validates it
// against a book's facts and returns the canonical form, which Format
// renders as a display label and the fetch planner decomposes into queries.
package reference

// Reference is one endpoint of a passage range. A nil field is unspecified.
type Reference struct {
	Chapter *int `json:"chapter,omitempty"`
	Verse   *int `json:"verse,omitempty"`
}

// PassageReference is a book plus a from/to endpoint pair. Both endpoints
// empty means the whole book.
type PassageReference struct {
	Book string    `json:"book"`
	From Reference `json:"from"`
	To   Reference `json:"to"`
}

// Chapter returns an endpoint with only a chapter.
func Chapter(chapter int) Reference {
	return Reference{Chapter: intPtr(chapter)}
}

// Verse returns an endpoint with only a verse.
func Verse(verse int) Reference {
	return Reference{Verse: intPtr(verse)}
}

// ChapterVerse returns an endpoint with a chapter and a verse.
func ChapterVerse(chapter, verse int) Reference {
	return Reference{Chapter: intPtr(chapter), Verse: intPtr(verse)}
}

// IsEmpty reports whether neither chapter nor verse is set.
func (r Reference) IsEmpty() bool {
	return r.Chapter == nil && r.Verse == nil
}

// clone returns a copy that shares no pointers with r.
func (r Reference) clone() Reference {
	var out Reference
	if r.Chapter != nil {
		out.Chapter = intPtr(*r.Chapter)
	}
	if r.Verse != nil {
		out.Verse = intPtr(*r.Verse)
	}
	return out
}

// IsWholeBook reports whether the reference names a book with no range.
func (p PassageReference) IsWholeBook() bool {
	return p.From.IsEmpty() && p.To.IsEmpty()
}

// Clone returns a deep copy of p.
func (p PassageReference) Clone() PassageReference {
	return PassageReference{Book: p.Book, From: p.From.clone(), To: p.To.clone()}
}

func intPtr(n int) *int {
	return &n
}

func equalPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
