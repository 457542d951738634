// Package passage defines the passage returned to readers and the options
// that control how content sources format its text.
package passage

import "strings"

// Passage is a labelled run of text that can be printed continuously.
type Passage struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

// FormattingOptions controls the text produced by content sources.
type FormattingOptions struct {
	// ParagraphSpacing is the number of newlines between paragraphs.
	// Zero separates paragraphs with a single space.
	ParagraphSpacing int `json:"paragraph_spacing" yaml:"paragraph_spacing"`
	// ShowVerseNumbers renders verse numbers as superscript digits.
	ShowVerseNumbers bool `json:"show_verse_numbers" yaml:"show_verse_numbers"`
	// AllowUnicodePunctuation keeps curly quotes and dashes; when false they
	// are converted to ASCII.
	AllowUnicodePunctuation bool `json:"allow_unicode_punctuation" yaml:"allow_unicode_punctuation"`
	// PreserveSmallCaps renders small caps text such as "Lord" in upper
	// case, as "LORD", so the distinction survives as plain text.
	PreserveSmallCaps bool `json:"preserve_small_caps" yaml:"preserve_small_caps"`
	// ShowVerseNumberForVerseOne adds a "1" before the first verse of a chapter.
	ShowVerseNumberForVerseOne bool `json:"show_verse_number_for_verse_one" yaml:"show_verse_number_for_verse_one"`
}

// DefaultFormatting returns the default formatting options.
func DefaultFormatting() FormattingOptions {
	return FormattingOptions{
		ParagraphSpacing:           2,
		ShowVerseNumbers:           true,
		AllowUnicodePunctuation:    true,
		PreserveSmallCaps:          false,
		ShowVerseNumberForVerseOne: false,
	}
}

// Separator returns the string placed between paragraphs and between the
// pieces of a passage fetched in several queries.
func (o FormattingOptions) Separator() string {
	if o.ParagraphSpacing <= 0 {
		return " "
	}
	return strings.Repeat("\n", o.ParagraphSpacing)
}

// Join concatenates texts with the separator of o.
func (o FormattingOptions) Join(texts []string) string {
	return strings.Join(texts, o.Separator())
}
