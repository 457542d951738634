package reference

import (
	"testing"

	"github.com/FocuswithJustin/DailyBread/core/catalog"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		ref  PassageReference
		want string
	}{
		{"whole book", PassageReference{Book: "Genesis"}, "Genesis"},
		{"chapter", PassageReference{Book: "Genesis", From: Chapter(1)}, "Genesis 1"},
		{"single-chapter verse", PassageReference{Book: "Obadiah", From: Verse(1)}, "Obadiah 1"},
		{"chapter and verse", PassageReference{Book: "Genesis", From: ChapterVerse(1, 1)}, "Genesis 1:1"},
		{"chapter range", PassageReference{Book: "Genesis", From: Chapter(1), To: Chapter(2)}, "Genesis 1-2"},
		{"verse range", PassageReference{Book: "Genesis", From: ChapterVerse(1, 1), To: Verse(2)}, "Genesis 1:1-2"},
		{"across chapters", PassageReference{Book: "Genesis", From: ChapterVerse(1, 1), To: ChapterVerse(2, 2)}, "Genesis 1:1-2:2"},
		{"single-chapter verse range", PassageReference{Book: "Obadiah", From: Verse(1), To: Verse(2)}, "Obadiah 1-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.ref); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
			if got := tt.ref.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCleanFormat(t *testing.T) {
	books := catalog.DefaultBooks()
	tests := []struct {
		input string
		want  string
	}{
		{"Obadiah", "Obadiah"},
		{"obadiah 1-2", "Obadiah 1-2"},
		{"oba 1:1-2", "Obadiah 1-2"},
		{"2 sam 7:1-17", "2 Samuel 7:1-17"},
		{"Isaiah 52:13-53:12", "Isaiah 52:13-53:12"},
		{"gen 49-51", "Genesis 49-50"},
		{"Psalms 23", "Psalm 23"},
		{"Song of Solomon 2:4", "Song of Songs 2:4"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			refs, err := Parse(tt.input)
			if err != nil || len(refs) != 1 {
				t.Fatalf("Parse(%q) = %v, %v", tt.input, refs, err)
			}
			book, ok := books.Lookup(refs[0].Book, catalog.English, false)
			if !ok {
				t.Fatalf("book %q not found", refs[0].Book)
			}
			cleaned, err := Clean(refs[0], book, catalog.English)
			if err != nil {
				t.Fatalf("Clean() error = %v", err)
			}
			if got := Format(cleaned); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}
