package reference

import (
	"strconv"
	"strings"
)

// Format renders a cleaned reference as a display label, e.g. "Genesis",
// "Genesis 1:1-2:2", or "Obadiah 1-2".
func Format(ref PassageReference) string {
	if ref.IsWholeBook() {
		return ref.Book
	}

	var sb strings.Builder
	sb.WriteString(ref.Book)
	if !ref.From.IsEmpty() {
		sb.WriteByte(' ')
		sb.WriteString(ref.From.String())
	}
	if !ref.To.IsEmpty() {
		sb.WriteByte('-')
		sb.WriteString(ref.To.String())
	}
	return sb.String()
}

// String renders the endpoint as "chapter:verse", "chapter", or "verse".
func (r Reference) String() string {
	switch {
	case r.Chapter != nil && r.Verse != nil:
		return strconv.Itoa(*r.Chapter) + ":" + strconv.Itoa(*r.Verse)
	case r.Chapter != nil:
		return strconv.Itoa(*r.Chapter)
	case r.Verse != nil:
		return strconv.Itoa(*r.Verse)
	}
	return ""
}

func (p PassageReference) String() string {
	return Format(p)
}
