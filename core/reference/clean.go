package reference

import (
	"github.com/FocuswithJustin/DailyBread/core/catalog"
	"github.com/FocuswithJustin/DailyBread/core/errors"
)

// Clean validates ref against book and returns its canonical form. The input
// is not modified.
//
// In the canonical form Book is the display name in lang, chapter fields are
// absent for single-chapter books, a to endpoint never repeats what from
// already says, and an out-of-range end chapter is clamped to the last
// chapter of the book. Cleaning a cleaned reference returns it unchanged.
func Clean(ref PassageReference, book *catalog.Book, lang catalog.Language) (PassageReference, error) {
	out := ref.Clone()
	out.Book = book.Name(lang)

	if out.IsWholeBook() {
		return out, nil
	}

	if book.SingleChapter() {
		out.From = collapseChapter(out.From)
		out.To = collapseChapter(out.To)
		if out.IsWholeBook() {
			return out, nil
		}
	} else {
		if out.From.Chapter == nil {
			return out, errors.NewValidation(errors.MissingStartChapter, "from.chapter")
		}
		if !book.HasChapter(*out.From.Chapter) {
			return out, errors.NewValidation(errors.ChapterNotFound, "from.chapter")
		}
	}

	from, to := &out.From, &out.To

	if to.Chapter != nil {
		switch {
		case equalPtr(to.Chapter, from.Chapter):
			to.Chapter = nil
		case *to.Chapter > book.Chapters:
			// The verse belonged to a chapter that does not exist.
			to.Chapter = intPtr(book.Chapters)
			to.Verse = nil
			if from.Verse != nil {
				return out, errors.NewValidation(errors.MustSpecifyEndVerse, "to.verse")
			}
			if equalPtr(to.Chapter, from.Chapter) {
				to.Chapter = nil
			}
		}
	}

	if from.Verse != nil && to.Chapter != nil && to.Verse == nil {
		return out, errors.NewValidation(errors.MustSpecifyEndVerse, "to.verse")
	}

	if from.Verse != nil && *from.Verse < 1 {
		return out, errors.NewValidation(errors.InvalidStartVerse, "from.verse")
	}
	if to.Verse != nil {
		if *to.Verse < 1 {
			return out, errors.NewValidation(errors.InvalidEndVerse, "to.verse")
		}
		if from.Verse == nil {
			from.Verse = intPtr(1)
		}
		if to.Chapter == nil && *to.Verse == *from.Verse {
			to.Verse = nil
		}
	}

	if to.Chapter != nil && *to.Chapter < *from.Chapter {
		return out, errors.NewValidation(errors.InvalidChapterRange, "to.chapter")
	}
	if to.Chapter == nil && to.Verse != nil && *to.Verse < *from.Verse {
		return out, errors.NewValidation(errors.InvalidVerseRange, "to.verse")
	}

	return out, nil
}

// collapseChapter rewrites an endpoint of a single-chapter book. Chapter 1 is
// the only chapter and is dropped; any other chapter number is read as a verse.
func collapseChapter(r Reference) Reference {
	if r.Chapter == nil {
		return r
	}
	if *r.Chapter != 1 {
		r.Verse = r.Chapter
	}
	r.Chapter = nil
	return r
}
