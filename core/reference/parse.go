package reference

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/DailyBread/core/errors"
)

// bookPattern matches a book token: an optional ordinal digit group followed
// by a run of characters that are neither digits nor reference punctuation.
const bookPattern = `(?:\d+\s*)?[^\s\d:,;.\-][^\d:,;.\-\r\n]*`

// psalm151Pattern matches "Psalm 151" and its abbreviations whole so that 151
// is not taken as a chapter of Psalms.
const psalm151Pattern = `(?i:ps(?:a|alms?)?)[^\S\r\n]*151`

// chapterNumber is the first number after a book. At most one line break may
// sit between the book and its chapter.
var chapterNumber = lexer.Rule{
	Name:    "ChapterNumber",
	Pattern: `[^\S\r\n]*(?:\r?\n[^\S\r\n]*)?\d+`,
	Action:  lexer.Pop(),
}

// referenceLexer tokenizes free text. After a Book token the lexer enters the
// Chapter state, where the first number is always the chapter; this keeps a
// following "1 John" from being read as chapter 1 of the previous book.
// Psalm 151 has a single chapter, so it may also be followed directly by
// ":verse".
var referenceLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Psalm151", Pattern: psalm151Pattern, Action: lexer.Push("Psalm151")},
		{Name: "Book", Pattern: bookPattern, Action: lexer.Push("Chapter")},
		{Name: "ColonNumber", Pattern: `:\d+`},
		{Name: "DashNumber", Pattern: `\s*-\s*\d+`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "Punct", Pattern: `[\s:,;.\-]+`},
	},
	"Chapter": {
		chapterNumber,
		lexer.Return(),
	},
	"Psalm151": {
		chapterNumber,
		{Name: "LeadingVerse", Pattern: `[^\S\r\n]*:\d+`, Action: lexer.Pop()},
		lexer.Return(),
	},
})

//nolint:govet // participle grammar tags are not standard struct tags
type referenceList struct {
	Passages []*rawPassage `( @@ | Number | ColonNumber | DashNumber | Punct )*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type rawPassage struct {
	Tokens []lexer.Token

	Book   string     `@( Psalm151 | Book )`
	Range  *rawRange  `( @@`
	Verses *rawVerses `| @@ )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type rawRange struct {
	Chapter string  `@ChapterNumber`
	Verse   *string `@ColonNumber?`
	End     *rawEnd `@@?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type rawEnd struct {
	Number string  `@DashNumber`
	Verse  *string `@ColonNumber?`
}

// rawVerses is a verse range in a single-chapter book written without the
// chapter, as in "Psalm 151:1-3".
//
//nolint:govet // participle grammar tags are not standard struct tags
type rawVerses struct {
	From string  `@LeadingVerse`
	To   *string `@DashNumber?`
}

var referenceParser = participle.MustBuild[referenceList](
	participle.Lexer(referenceLexer),
)

// Match is one reference found in free text. Text is the source text of the
// reference. Err is set when the text looked like a reference but could not
// be read, for example because a number does not fit in an int; Ref then
// holds only the book.
type Match struct {
	Ref  PassageReference
	Text string
	Err  error
}

// Scan extracts every passage reference in s, in order of appearance, and
// reports a per-reference error for each one that cannot be read. An error is
// returned only when s as a whole cannot be tokenized.
func Scan(s string) ([]Match, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parsed, err := referenceParser.ParseString("", s)
	if err != nil {
		return nil, &errors.ParseError{Format: "reference", Message: err.Error()}
	}

	matches := make([]Match, 0, len(parsed.Passages))
	for _, raw := range parsed.Passages {
		ref, err := raw.toPassageReference()
		if err != nil {
			ref = PassageReference{Book: ref.Book}
		}
		matches = append(matches, Match{Ref: ref, Text: raw.text(), Err: err})
	}
	return matches, nil
}

// Parse extracts every readable passage reference in s, in order of
// appearance. References may be separated by any mix of ";", ",", ".", and
// whitespace. Input without a book token, such as "" or "9001", yields no
// references. A reference that cannot be read is skipped; use Scan to see why.
//
// The result is raw: book tokens are as typed and endpoints are unvalidated.
func Parse(s string) ([]PassageReference, error) {
	matches, err := Scan(s)
	if err != nil || matches == nil {
		return nil, err
	}

	refs := make([]PassageReference, 0, len(matches))
	for _, m := range matches {
		if m.Err == nil {
			refs = append(refs, m.Ref)
		}
	}
	return refs, nil
}

func (raw *rawPassage) text() string {
	var b strings.Builder
	for _, tok := range raw.Tokens {
		b.WriteString(tok.Value)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func (raw *rawPassage) toPassageReference() (PassageReference, error) {
	ref := PassageReference{Book: strings.TrimSpace(raw.Book)}
	if raw.Verses != nil {
		return raw.Verses.toPassageReference(ref)
	}
	r := raw.Range
	if r == nil {
		return ref, nil
	}

	chapter, err := number(r.Chapter)
	if err != nil {
		return ref, err
	}
	ref.From.Chapter = &chapter

	if r.Verse != nil {
		verse, err := number(*r.Verse)
		if err != nil {
			return ref, err
		}
		ref.From.Verse = &verse
	}

	if r.End == nil {
		return ref, nil
	}
	end, err := number(r.End.Number)
	if err != nil {
		return ref, err
	}
	switch {
	case r.End.Verse != nil:
		endVerse, err := number(*r.End.Verse)
		if err != nil {
			return ref, err
		}
		ref.To = Reference{Chapter: &end, Verse: &endVerse}
	case ref.From.Verse != nil:
		// chapter:verse-n names an end verse in the same chapter.
		ref.To = Reference{Chapter: intPtr(chapter), Verse: &end}
	default:
		ref.To = Reference{Chapter: &end}
	}
	return ref, nil
}

func (v *rawVerses) toPassageReference(ref PassageReference) (PassageReference, error) {
	from, err := number(v.From)
	if err != nil {
		return ref, err
	}
	ref.From = Verse(from)
	if v.To != nil {
		to, err := number(*v.To)
		if err != nil {
			return ref, err
		}
		ref.To = Verse(to)
	}
	return ref, nil
}

// number converts a token such as "12", ":12", or " - 12" to an int.
func number(tok string) (int, error) {
	digits := strings.TrimFunc(tok, func(r rune) bool { return !unicode.IsDigit(r) })
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &errors.ParseError{Format: "reference", Message: "number out of range: " + digits}
	}
	return n, nil
}
