package catalog

import (
	"testing"
)

func TestLookup(t *testing.T) {
	books := DefaultBooks()
	tests := []struct {
		name         string
		input        string
		lang         Language
		deuterocanon bool
		wantKey      string
	}{
		{"key", "GEN", English, false, "GEN"},
		{"full name", "Exodus", English, false, "EXOD"},
		{"upper case", "MATTHEW", English, false, "MATT"},
		{"lower case", "matthew", English, false, "MATT"},
		{"alias", "Song of Solomon", English, false, "SONG"},
		{"display name", "Song of Songs", English, false, "SONG"},
		{"spaced alias", "1 Sam", English, false, "1SAM"},
		{"collapsed whitespace", "  2   samuel ", English, false, "2SAM"},
		{"plural psalms", "psalms", English, false, "PS"},
		{"philemon key", "PHLM", English, false, "PHLM"},
		{"philippians key", "PHIL", English, false, "PHIL"},
		{"english fallback", "John", Spanish, false, "JOHN"},
		{"deuterocanon key", "BAR", English, true, "BAR"},
		{"deuterocanon alias", "GK ESTH", English, true, "GKESTH"},
		{"psalm 151", "Psalm 151", English, true, "PS151"},
		{"wisdom any case", "WISDOM", English, true, "WIS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, ok := books.Lookup(tt.input, tt.lang, tt.deuterocanon)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.input)
			}
			if book.Key != tt.wantKey {
				t.Errorf("Lookup(%q).Key = %q, want %q", tt.input, book.Key, tt.wantKey)
			}
		})
	}
}

func TestLookupNotFound(t *testing.T) {
	books := DefaultBooks()
	tests := []struct {
		name         string
		input        string
		deuterocanon bool
	}{
		{"unknown", "Unknown", false},
		{"empty", "", false},
		{"blank", "   ", false},
		{"deuterocanon excluded", "1MACC", false},
		{"psalm 151 excluded", "Psalm 151", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if book, ok := books.Lookup(tt.input, English, tt.deuterocanon); ok {
				t.Errorf("Lookup(%q) = %s, want not found", tt.input, book.Key)
			}
		})
	}
}

func TestBookCounts(t *testing.T) {
	books := DefaultBooks()
	if got := len(books.Canon()); got != 66 {
		t.Errorf("len(Canon()) = %d, want 66", got)
	}
	if got := len(books.Deuterocanon()); got != 18 {
		t.Errorf("len(Deuterocanon()) = %d, want 18", got)
	}
	if got := len(books.Testament(OldTestament)); got != 39 {
		t.Errorf("len(Testament(Old)) = %d, want 39", got)
	}
	if got := len(books.Testament(NewTestament)); got != 27 {
		t.Errorf("len(Testament(New)) = %d, want 27", got)
	}

	seen := make(map[string]bool)
	for _, b := range append(books.Canon(), books.Deuterocanon()...) {
		if seen[b.Key] {
			t.Errorf("duplicate key %q", b.Key)
		}
		seen[b.Key] = true
		if b.Chapters < 1 {
			t.Errorf("%s has %d chapters", b.Key, b.Chapters)
		}
	}
}

func TestBook(t *testing.T) {
	books := DefaultBooks()
	oba, _ := books.Lookup("Obadiah", English, false)
	if !oba.SingleChapter() {
		t.Error("Obadiah should be single-chapter")
	}
	isa, _ := books.Lookup("Isaiah", English, false)
	if isa.SingleChapter() {
		t.Error("Isaiah should not be single-chapter")
	}
	if !isa.HasChapter(66) || isa.HasChapter(67) || isa.HasChapter(0) {
		t.Error("Isaiah chapter bounds wrong")
	}
	if got := isa.Name(French); got != "Isaiah" {
		t.Errorf("Name(French) = %q, want English fallback", got)
	}
	if !isa.Categories.Has(MajorProphets | Prophetic) {
		t.Errorf("Isaiah categories = %v", isa.Categories)
	}
}

func TestCategoryString(t *testing.T) {
	c := Gospel | Epistle
	if got := c.String(); got != "Gospel, Epistle" {
		t.Errorf("String() = %q", got)
	}
	if got := Category(0).String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestFindVersion(t *testing.T) {
	tests := []struct {
		input    string
		want     Version
		wantFind bool
	}{
		{"NIV", Version{"NIV", "New International Version", English, false}, true},
		{"nkjv", Version{"NKJV", "New King James Version", English, false}, true},
		{"cei", Version{"CEI", "Conferenza Episcopale Italiana", Italian, true}, true},
		{"nvi-pt", Version{"NVI-PT", "Nova Versão Internacional", Portuguese, false}, true},
		{"UNK", Version{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := FindVersion(tt.input)
			if ok != tt.wantFind {
				t.Fatalf("FindVersion(%q) ok = %v, want %v", tt.input, ok, tt.wantFind)
			}
			if got != tt.want {
				t.Errorf("FindVersion(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersions(t *testing.T) {
	if _, ok := FindVersion(DefaultVersion); !ok {
		t.Fatalf("default version %q not in catalog", DefaultVersion)
	}
	total := 0
	for _, lang := range Languages() {
		vs := VersionsFor(lang)
		if len(vs) == 0 {
			t.Errorf("no versions for %s", lang)
		}
		total += len(vs)
	}
	if total != len(Versions()) {
		t.Errorf("per-language total %d != %d", total, len(Versions()))
	}
}
