package reference

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/FocuswithJustin/DailyBread/core/catalog"
	dberrors "github.com/FocuswithJustin/DailyBread/core/errors"
)

type cleanCase struct {
	name     string
	from, to Reference
	want     *PassageReference
	wantKind dberrors.ValidationKind
}

func lookupBook(t *testing.T, name string) *catalog.Book {
	t.Helper()
	book, ok := catalog.DefaultBooks().Lookup(name, catalog.English, false)
	if !ok {
		t.Fatalf("book %q not in catalog", name)
	}
	return book
}

func runCleanCases(t *testing.T, book *catalog.Book, tests []cleanCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := PassageReference{Book: book.Key, From: tt.from, To: tt.to}
			before := in.Clone()

			got, err := Clean(in, book, catalog.English)
			if diff := cmp.Diff(before, in); diff != "" {
				t.Errorf("Clean() modified its input (-before +after):\n%s", diff)
			}

			if tt.want == nil {
				if err == nil {
					t.Fatalf("Clean() = %v, want %v error", got, tt.wantKind)
				}
				if !errors.Is(err, &dberrors.ValidationError{Kind: tt.wantKind}) {
					t.Errorf("Clean() error = %v, want kind %v", err, tt.wantKind)
				}
				if !errors.Is(err, dberrors.ErrInvalidInput) {
					t.Errorf("Clean() error %v does not match ErrInvalidInput", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Clean() error = %v", err)
			}
			if diff := cmp.Diff(*tt.want, got); diff != "" {
				t.Errorf("Clean() mismatch (-want +got):\n%s", diff)
			}

			again, err := Clean(got, book, catalog.English)
			if err != nil {
				t.Fatalf("Clean(Clean(x)) error = %v", err)
			}
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("Clean is not idempotent (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestCleanMultiChapter(t *testing.T) {
	book := lookupBook(t, "GEN")
	ref := func(from, to Reference) *PassageReference {
		return &PassageReference{Book: "Genesis", From: from, To: to}
	}

	runCleanCases(t, book, []cleanCase{
		{name: "whole book", want: ref(Reference{}, Reference{})},
		{name: "chapter", from: Chapter(1), want: ref(Chapter(1), Reference{})},
		{name: "chapter past end", from: Chapter(51), wantKind: dberrors.ChapterNotFound},
		{name: "chapter zero", from: Chapter(0), wantKind: dberrors.ChapterNotFound},
		{name: "verse without chapter", from: Verse(2), wantKind: dberrors.MissingStartChapter},
		{name: "chapter and verse", from: ChapterVerse(1, 2), want: ref(ChapterVerse(1, 2), Reference{})},
		{name: "end chapter only", to: Chapter(3), wantKind: dberrors.MissingStartChapter},
		{name: "end verse only", to: Verse(4), wantKind: dberrors.MissingStartChapter},
		{name: "end chapter and verse only", to: ChapterVerse(3, 4), wantKind: dberrors.MissingStartChapter},
		{name: "chapter range", from: Chapter(1), to: Chapter(3), want: ref(Chapter(1), Chapter(3))},
		{name: "inverted chapter range", from: Chapter(3), to: Chapter(1), wantKind: dberrors.InvalidChapterRange},
		{name: "same chapter twice", from: Chapter(1), to: Chapter(1), want: ref(Chapter(1), Reference{})},
		{name: "end chapter clamped", from: Chapter(1), to: Chapter(51), want: ref(Chapter(1), Chapter(50))},
		{name: "clamped onto start chapter", from: Chapter(50), to: Chapter(60), want: ref(Chapter(50), Reference{})},
		{name: "clamp with start verse", from: ChapterVerse(49, 3), to: ChapterVerse(51, 2), wantKind: dberrors.MustSpecifyEndVerse},
		{name: "verses without chapter", from: Verse(1), to: Verse(3), wantKind: dberrors.MissingStartChapter},
		{name: "across chapters", from: ChapterVerse(1, 2), to: ChapterVerse(3, 4), want: ref(ChapterVerse(1, 2), ChapterVerse(3, 4))},
		{name: "implicit start verse", from: Chapter(1), to: ChapterVerse(3, 4), want: ref(ChapterVerse(1, 1), ChapterVerse(3, 4))},
		{name: "missing end verse", from: ChapterVerse(1, 2), to: Chapter(3), wantKind: dberrors.MustSpecifyEndVerse},
		{name: "verse range", from: ChapterVerse(1, 2), to: ChapterVerse(1, 4), want: ref(ChapterVerse(1, 2), Verse(4))},
		{name: "inverted verse range", from: ChapterVerse(1, 2), to: ChapterVerse(1, 1), wantKind: dberrors.InvalidVerseRange},
		{name: "equal verses collapse", from: ChapterVerse(1, 2), to: ChapterVerse(1, 2), want: ref(ChapterVerse(1, 2), Reference{})},
		{name: "equal verses across chapters kept", from: ChapterVerse(1, 2), to: ChapterVerse(2, 2), want: ref(ChapterVerse(1, 2), ChapterVerse(2, 2))},
		{name: "start verse zero", from: ChapterVerse(1, 0), wantKind: dberrors.InvalidStartVerse},
		{name: "end verse zero", from: ChapterVerse(1, 2), to: ChapterVerse(1, 0), wantKind: dberrors.InvalidEndVerse},
	})
}

func TestCleanSingleChapter(t *testing.T) {
	book := lookupBook(t, "OBA")
	ref := func(from, to Reference) *PassageReference {
		return &PassageReference{Book: "Obadiah", From: from, To: to}
	}

	runCleanCases(t, book, []cleanCase{
		{name: "whole book", want: ref(Reference{}, Reference{})},
		{name: "chapter one is the book", from: Chapter(1), want: ref(Reference{}, Reference{})},
		{name: "chapter read as verse", from: Chapter(51), want: ref(Verse(51), Reference{})},
		{name: "verse", from: Verse(2), want: ref(Verse(2), Reference{})},
		{name: "chapter one and verse", from: ChapterVerse(1, 2), want: ref(Verse(2), Reference{})},
		{name: "end chapter read as verse", to: Chapter(3), want: ref(Verse(1), Verse(3))},
		{name: "end verse", to: Verse(4), want: ref(Verse(1), Verse(4))},
		{name: "end chapter wins over end verse", to: ChapterVerse(3, 4), want: ref(Verse(1), Verse(3))},
		{name: "chapters read as verses", from: Chapter(1), to: Chapter(3), want: ref(Verse(1), Verse(3))},
		{name: "end chapter one dropped", from: Chapter(3), to: Chapter(1), want: ref(Verse(3), Reference{})},
		{name: "chapter one twice", from: Chapter(1), to: Chapter(1), want: ref(Reference{}, Reference{})},
		{name: "large end chapter", from: Chapter(1), to: Chapter(51), want: ref(Verse(1), Verse(51))},
		{name: "verse range", from: Verse(1), to: Verse(3), want: ref(Verse(1), Verse(3))},
		{name: "inverted verse range", from: Verse(3), to: Verse(1), wantKind: dberrors.InvalidVerseRange},
		{name: "equal verses", from: Verse(1), to: Verse(1), want: ref(Verse(1), Reference{})},
		{name: "implicit start equals end", to: Verse(1), want: ref(Verse(1), Reference{})},
		{name: "mixed endpoints", from: ChapterVerse(1, 2), to: ChapterVerse(3, 4), want: ref(Verse(2), Verse(3))},
		{name: "start verse with end chapter", from: ChapterVerse(1, 2), to: Chapter(3), want: ref(Verse(2), Verse(3))},
		{name: "explicit chapter one range", from: ChapterVerse(1, 2), to: ChapterVerse(1, 4), want: ref(Verse(2), Verse(4))},
		{name: "explicit chapter one inverted", from: ChapterVerse(1, 2), to: ChapterVerse(1, 1), wantKind: dberrors.InvalidVerseRange},
	})
}

func TestCleanSetsLanguageName(t *testing.T) {
	book := lookupBook(t, "John")
	got, err := Clean(PassageReference{Book: "jn", From: Chapter(3)}, book, catalog.Spanish)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if got.Book != "John" {
		t.Errorf("Clean().Book = %q, want English fallback %q", got.Book, "John")
	}
}
