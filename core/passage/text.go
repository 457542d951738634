package passage

import (
	"regexp"
	"strings"
	"unicode"
)

const superscriptDigits = "⁰¹²³⁴⁵⁶⁷⁸⁹"

var toSuperscript = func() *strings.Replacer {
	var pairs []string
	for i, r := range []rune(superscriptDigits) {
		pairs = append(pairs, string(rune('0'+i)), string(r))
	}
	return strings.NewReplacer(pairs...)
}()

var (
	superscriptRun       = regexp.MustCompile(`[` + superscriptDigits + `]`)
	superscriptWithSpace = regexp.MustCompile(`[` + superscriptDigits + `]+\s?`)
	poetryPadding        = regexp.MustCompile(`^([` + superscriptDigits + `]+)?[\s\p{Zs}]*`)
)

var unicodePunctuationToASCII = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‟", `"`,
	"‘", "'",
	"’", "'",
	"–", "-",
	"—", "-",
)

// SuperscriptNumbers replaces every ASCII digit in s with its superscript form.
func SuperscriptNumbers(s string) string {
	return toSuperscript.Replace(s)
}

// RemoveSuperscriptNumbers removes superscript verse numbers and the single
// space that follows each of them.
func RemoveSuperscriptNumbers(s string) string {
	return superscriptWithSpace.ReplaceAllString(s, "")
}

// ReplaceSuperscriptNumbers replaces each superscript digit with replacement.
func ReplaceSuperscriptNumbers(s, replacement string) string {
	return superscriptRun.ReplaceAllLiteralString(s, replacement)
}

// ConvertUnicodePunctuation converts curly quotes and dashes to ASCII.
func ConvertUnicodePunctuation(s string) string {
	return unicodePunctuationToASCII.Replace(s)
}

// TrimWhitespace trims Unicode whitespace, including no-break spaces and
// byte order marks, from both ends of s.
func TrimWhitespace(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

// PadPoetryLine indents a line of poetry so its text starts at column width,
// counting a leading verse number as part of the indent. A line without a
// verse number that is already fully indented is indented a further half
// width, since it continues the previous line.
func PadPoetryLine(line string, width int) string {
	m := poetryPadding.FindStringSubmatchIndex(line)
	end := m[1]
	existing := []rune(line[:end])
	hasVerse := m[2] >= 0

	spaces := 0
	switch {
	case !hasVerse && len(existing) == width:
		spaces = width / 2
	case len(existing) < width:
		spaces = width - len(existing)
	}
	return line[:end] + strings.Repeat(" ", spaces) + line[end:]
}
