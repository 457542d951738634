package bible

import (
	"github.com/FocuswithJustin/DailyBread/core/reference"
)

// Input is what a caller asks to read: free text, a structured reference,
// or a list of either. Build one with Text, Ref, or Inputs.
type Input interface {
	references() ([]reference.Match, error)
}

type textInput string

// Text is free text holding one or more references, e.g. "John 3:16; Ps 23".
// A reference in the text that cannot be read fails on its own; the others
// are still read.
func Text(s string) Input {
	return textInput(s)
}

func (t textInput) references() ([]reference.Match, error) {
	return reference.Scan(string(t))
}

type refInput reference.PassageReference

// Ref is a structured reference that has not been cleaned yet.
func Ref(r reference.PassageReference) Input {
	return refInput(r.Clone())
}

func (r refInput) references() ([]reference.Match, error) {
	ref := reference.PassageReference(r).Clone()
	return []reference.Match{{Ref: ref, Text: reference.Format(ref)}}, nil
}

type listInput []Input

// Inputs combines several inputs; their references are read in order.
func Inputs(in ...Input) Input {
	return listInput(in)
}

func (l listInput) references() ([]reference.Match, error) {
	var matches []reference.Match
	for _, in := range l {
		m, err := in.references()
		if err != nil {
			return nil, err
		}
		matches = append(matches, m...)
	}
	return matches, nil
}

// flatten normalizes in to a list of raw references, each carrying its own
// parse error if it could not be read.
func flatten(in Input) ([]reference.Match, error) {
	if in == nil {
		return nil, nil
	}
	return in.references()
}

// label names a match in logs and errors.
func label(m reference.Match) string {
	if m.Err != nil {
		return m.Text
	}
	return reference.Format(m.Ref)
}
