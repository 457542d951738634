// Package catalog holds the structural facts about books of the Bible and
// the versions that can be read: chapter counts, display names per
// language, canons, and name/alias lookup.
//
// Catalogs are immutable after construction and safe for concurrent use.
package catalog

import (
	"strings"
)

// Language identifies the language of a version and of book display names.
type Language string

// Supported languages.
const (
	English    Language = "english"
	Spanish    Language = "spanish"
	Chinese    Language = "chinese"
	Korean     Language = "korean"
	Japanese   Language = "japanese"
	Portuguese Language = "portuguese"
	French     Language = "french"
	German     Language = "german"
	Italian    Language = "italian"
	Hindi      Language = "hindi"
)

// Testament is the testament (old or new) that a book belongs to.
type Testament string

const (
	OldTestament Testament = "old"
	NewTestament Testament = "new"
)

// String returns the capitalized testament name.
func (t Testament) String() string {
	switch t {
	case OldTestament:
		return "Old"
	case NewTestament:
		return "New"
	}
	return string(t)
}

// Canon is the canon that a book belongs to.
type Canon int

const (
	Canonical Canon = iota + 1
	Deuterocanonical
)

func (c Canon) String() string {
	switch c {
	case Canonical:
		return "Canon"
	case Deuterocanonical:
		return "Deuterocanon"
	}
	return "Unknown"
}

// Category is a bit set of traditional groupings of books.
type Category uint32

const (
	// Instruction is the first five books of law.
	Instruction Category = 1 << iota
	// Prophets are books about the spokespeople of God.
	Prophets
	FormerProphets
	LatterProphets
	MinorProphets
	// Writings are the books of the Hebrew Bible outside the law and prophets.
	Writings
	Poetic
	// Scrolls are the Five Scrolls.
	Scrolls
	// Historical refers to the historical section of the Writings.
	Historical
	Pentateuch
	// HistoricalNarrative is every Old Testament book read as history outside the Pentateuch.
	HistoricalNarrative
	Wisdom
	Prophetic
	MajorProphets
	Gospel
	Acts
	Epistle
	Apocalyptic
	Sapiental
	// Novel is reserved for the deuterocanon.
	Novel
	Philosophical
)

var categoryNames = []struct {
	bit  Category
	name string
}{
	{Instruction, "Instruction"},
	{Prophets, "Prophets"},
	{FormerProphets, "FormerProphets"},
	{LatterProphets, "LatterProphets"},
	{MinorProphets, "MinorProphets"},
	{Writings, "Writings"},
	{Poetic, "Poetic"},
	{Scrolls, "Scrolls"},
	{Historical, "Historical"},
	{Pentateuch, "Pentateuch"},
	{HistoricalNarrative, "HistoricalNarrative"},
	{Wisdom, "Wisdom"},
	{Prophetic, "Prophetic"},
	{MajorProphets, "MajorProphets"},
	{Gospel, "Gospel"},
	{Acts, "Acts"},
	{Epistle, "Epistle"},
	{Apocalyptic, "Apocalyptic"},
	{Sapiental, "Sapiental"},
	{Novel, "Novel"},
	{Philosophical, "Philosophical"},
}

// Has reports whether every bit of other is set in c.
func (c Category) Has(other Category) bool {
	return c&other == other
}

// Names returns the names of the set bits in declaration order.
func (c Category) Names() []string {
	var names []string
	for _, cn := range categoryNames {
		if c&cn.bit != 0 {
			names = append(names, cn.name)
		}
	}
	return names
}

func (c Category) String() string {
	return strings.Join(c.Names(), ", ")
}

// Book holds the facts about one book of the Bible.
type Book struct {
	// Key is the stable abbreviation, e.g. "GEN", "1SAM", "PS151".
	Key        string
	Names      map[Language]string
	Testament  Testament
	Categories Category
	Chapters   int
	Canon      Canon
}

// Name returns the display name of the book in the given language, falling
// back to English when the language has no name of its own.
func (b *Book) Name(lang Language) string {
	if name, ok := b.Names[lang]; ok {
		return name
	}
	return b.Names[English]
}

// SingleChapter reports whether the book is addressed by verse only.
func (b *Book) SingleChapter() bool {
	return b.Chapters == 1
}

// HasChapter reports whether chapter lies within the book.
func (b *Book) HasChapter(chapter int) bool {
	return chapter >= 1 && chapter <= b.Chapters
}

func english(name string) map[Language]string {
	return map[Language]string{English: name}
}
