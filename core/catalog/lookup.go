package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// foldKey normalizes a book name or version abbreviation for lookup:
// Unicode case folding plus collapsed interior whitespace.
func foldKey(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

// canonAliases lists additional names and abbreviations, keyed by book key.
var canonAliases = map[Language][][2]string{
	English: {
		{"EX", "EXOD"},
		{"1 SAM", "1SAM"},
		{"2 SAM", "2SAM"},
		{"1 KGS", "1KGS"},
		{"2 KGS", "2KGS"},
		{"1 CHR", "1CHR"},
		{"2 CHR", "2CHR"},
		{"ESTH", "EST"},
		{"PSA", "PS"},
		{"ECCL", "ECC"},
		{"EZEK", "EZE"},
		{"1 COR", "1COR"},
		{"2 COR", "2COR"},
		{"1 THESS", "1THESS"},
		{"2 THESS", "2THESS"},
		{"1 TIM", "1TIM"},
		{"2 TIM", "2TIM"},
		{"1 PET", "1PET"},
		{"2 PET", "2PET"},
		{"1 JOHN", "1JOHN"},
		{"2 JOHN", "2JOHN"},
		{"3 JOHN", "3JOHN"},
		{"Song of Solomon", "SONG"},
		{"Psalms", "PS"},
		{"Acts of the Apostles", "ACTS"},
		{"Phillippians", "PHIL"},
		{"PHILEM", "PHLM"},
	},
}

var deuterocanonAliases = map[Language][][2]string{
	English: {
		{"GK ESTH", "GKESTH"},
		{"EP JER", "EPJER"},
		{"PR AZAR", "PRAZAR"},
		{"1 MACC", "1MACC"},
		{"2 MACC", "2MACC"},
		{"1 ESD", "1ESD"},
		{"PR MAN", "PRMAN"},
		{"PS 151", "PS151"},
		{"PSA151", "PS151"},
		{"PSA 151", "PS151"},
		{"PSALM151", "PS151"},
		{"Psalms 151", "PS151"},
		{"3 MACC", "3MACC"},
		{"2 ESD", "2ESD"},
		{"4 MACC", "4MACC"},
	},
}

// Books is a case-insensitive, alias-aware book catalog.
type Books struct {
	canon        []*Book
	deuterocanon []*Book

	canonByName        map[Language]map[string]*Book
	deuterocanonByName map[Language]map[string]*Book
}

// NewBooks builds a catalog from the given book tables and alias lists.
// Every book is findable by key and by each of its display names; aliases
// whose target key is unknown are ignored.
func NewBooks(canon, deuterocanon []*Book, canonAlias, deuteroAlias map[Language][][2]string) *Books {
	b := &Books{
		canon:              canon,
		deuterocanon:       deuterocanon,
		canonByName:        indexBooks(canon, canonAlias),
		deuterocanonByName: indexBooks(deuterocanon, deuteroAlias),
	}
	return b
}

func indexBooks(books []*Book, aliases map[Language][][2]string) map[Language]map[string]*Book {
	byKey := make(map[string]*Book, len(books))
	index := make(map[Language]map[string]*Book)
	ensure := func(lang Language) map[string]*Book {
		m, ok := index[lang]
		if !ok {
			m = make(map[string]*Book)
			index[lang] = m
		}
		return m
	}

	english := ensure(English)
	for _, book := range books {
		byKey[book.Key] = book
		english[foldKey(book.Key)] = book
		for lang, name := range book.Names {
			m := ensure(lang)
			m[foldKey(book.Key)] = book
			m[foldKey(name)] = book
		}
	}
	for lang, list := range aliases {
		m := ensure(lang)
		for _, alias := range list {
			if book, ok := byKey[alias[1]]; ok {
				m[foldKey(alias[0])] = book
			}
		}
	}
	return index
}

// DefaultBooks returns the catalog of the 66 canon and 18 deuterocanon books.
func DefaultBooks() *Books {
	return defaultBooks
}

var defaultBooks = NewBooks(canonBooks, deuterocanonBooks, canonAliases, deuterocanonAliases)

// Lookup finds a book by key, display name, or alias in the given language.
// Names in the language are tried first, then English. The deuterocanon is
// only consulted when includeDeuterocanon is set.
func (b *Books) Lookup(name string, lang Language, includeDeuterocanon bool) (*Book, bool) {
	key := foldKey(name)
	if key == "" {
		return nil, false
	}
	if book, ok := find(b.canonByName, key, lang); ok {
		return book, true
	}
	if includeDeuterocanon {
		return find(b.deuterocanonByName, key, lang)
	}
	return nil, false
}

func find(index map[Language]map[string]*Book, key string, lang Language) (*Book, bool) {
	if book, ok := index[lang][key]; ok {
		return book, true
	}
	if lang != English {
		if book, ok := index[English][key]; ok {
			return book, true
		}
	}
	return nil, false
}

// Canon returns the canon books in canonical order.
func (b *Books) Canon() []*Book {
	return append([]*Book(nil), b.canon...)
}

// Deuterocanon returns the deuterocanon books in canonical order.
func (b *Books) Deuterocanon() []*Book {
	return append([]*Book(nil), b.deuterocanon...)
}

// Testament returns the canon books of one testament in canonical order.
func (b *Books) Testament(t Testament) []*Book {
	var out []*Book
	for _, book := range b.canon {
		if book.Testament == t {
			out = append(out, book)
		}
	}
	return out
}
