package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "book",
			err:      NewBookNotFound("Hezekiah"),
			wantMsg:  "book not found: Hezekiah",
			wantBase: ErrBookNotFound,
		},
		{
			name:     "passage",
			err:      NewPassageNotFound("John 3:99"),
			wantMsg:  "passage not found: John 3:99",
			wantBase: ErrPassageNotFound,
		},
		{
			name:     "without ID",
			err:      &NotFoundError{Resource: "verse"},
			wantMsg:  "verse not found",
			wantBase: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, tt.wantBase) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.wantBase)
			}
			if !errors.Is(tt.err, ErrNotFound) {
				t.Errorf("errors.Is(%v, ErrNotFound) = false", tt.err)
			}
		})
	}

	t.Run("book is not passage", func(t *testing.T) {
		if errors.Is(NewBookNotFound("x"), ErrPassageNotFound) {
			t.Error("book not found matched ErrPassageNotFound")
		}
	})

	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("disk error")
		err := &NotFoundError{Resource: "passage", ID: "Gen 1", Err: underlyingErr}
		if got := err.Unwrap(); got != underlyingErr {
			t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
		}
		if !errors.Is(err, ErrPassageNotFound) {
			t.Error("errors.Is(err, ErrPassageNotFound) = false with a cause set")
		}
	})

	t.Run("passage wrapping a missing book", func(t *testing.T) {
		err := &NotFoundError{Resource: ResourcePassage, ID: "Hezekiah 1", Err: NewBookNotFound("Hezekiah")}
		if !errors.Is(err, ErrPassageNotFound) {
			t.Error("errors.Is(err, ErrPassageNotFound) = false")
		}
		if !errors.Is(err, ErrBookNotFound) {
			t.Error("errors.Is(err, ErrBookNotFound) = false")
		}
		if errors.Is(NewPassageNotFound("x"), ErrBookNotFound) {
			t.Error("plain passage not found matched ErrBookNotFound")
		}
	})
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ValidationError
		wantMsg string
	}{
		{
			name:    "with field",
			err:     NewValidation(ChapterNotFound, "from.chapter"),
			wantMsg: "validation failed for from.chapter: chapter not found",
		},
		{
			name:    "without field",
			err:     NewValidation(InvalidVerseRange, ""),
			wantMsg: "validation failed: invalid verse range",
		},
		{
			name:    "message falls back to kind",
			err:     &ValidationError{Kind: MustSpecifyEndVerse},
			wantMsg: "validation failed: must specify end verse in end chapter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrInvalidInput) {
				t.Errorf("errors.Is(%v, ErrInvalidInput) = false", tt.err)
			}
		})
	}

	t.Run("matches by kind", func(t *testing.T) {
		err := Wrap(NewValidation(InvalidStartVerse, "from.verse"), "John 3:0")
		if !errors.Is(err, &ValidationError{Kind: InvalidStartVerse}) {
			t.Error("errors.Is did not match same kind")
		}
		if errors.Is(err, &ValidationError{Kind: InvalidEndVerse}) {
			t.Error("errors.Is matched a different kind")
		}
		if got := KindOf(err); got != InvalidStartVerse {
			t.Errorf("KindOf() = %v, want %v", got, InvalidStartVerse)
		}
	})

	t.Run("KindOf non-validation", func(t *testing.T) {
		if got := KindOf(fmt.Errorf("boom")); got != KindUnknown {
			t.Errorf("KindOf() = %v, want %v", got, KindUnknown)
		}
	})

	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("strconv: out of range")
		err := &ValidationError{Kind: InvalidEndVerse, Err: underlyingErr}
		if got := err.Unwrap(); got != underlyingErr {
			t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
		}
	})
}

func TestValidationKindString(t *testing.T) {
	tests := []struct {
		kind ValidationKind
		want string
	}{
		{MissingStartChapter, "missing start chapter"},
		{ChapterNotFound, "chapter not found"},
		{MustSpecifyEndVerse, "must specify end verse in end chapter"},
		{InvalidStartVerse, "invalid start verse"},
		{InvalidEndVerse, "invalid end verse"},
		{InvalidChapterRange, "invalid chapter range"},
		{InvalidVerseRange, "invalid verse range"},
		{ValidationKind(99), "ValidationKind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ValidationKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestIOError(t *testing.T) {
	baseErr := fmt.Errorf("permission denied")
	tests := []struct {
		name    string
		err     *IOError
		wantMsg string
	}{
		{
			name:    "with path",
			err:     &IOError{Operation: "open", Path: "/var/lib/bible.db", Err: baseErr},
			wantMsg: "failed to open /var/lib/bible.db: permission denied",
		},
		{
			name:    "without path",
			err:     &IOError{Operation: "query verses", Err: baseErr},
			wantMsg: "failed to query verses: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, baseErr) {
				t.Errorf("Unwrap() = %v, want %v", got, baseErr)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ParseError
		wantMsg string
	}{
		{
			name:    "with path",
			err:     NewParse("Zefania XML", "kjv.xml", "missing XMLBIBLE root"),
			wantMsg: "failed to parse Zefania XML at kjv.xml: missing XMLBIBLE root",
		},
		{
			name:    "without path",
			err:     NewParse("reference", "", "unexpected token"),
			wantMsg: "failed to parse reference: unexpected token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrInvalidInput) {
				t.Errorf("errors.Is(%v, ErrInvalidInput) = false", tt.err)
			}
		})
	}
}

func TestUnsupportedError(t *testing.T) {
	tests := []struct {
		name     string
		err      *UnsupportedError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "version",
			err:      NewUnsupportedVersion("XYZ"),
			wantMsg:  "unsupported version: XYZ is not supported",
			wantBase: ErrUnsupportedVersion,
		},
		{
			name:     "without reason",
			err:      &UnsupportedError{Feature: "source"},
			wantMsg:  "unsupported source",
			wantBase: ErrUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, tt.wantBase) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.wantBase)
			}
			if !errors.Is(tt.err, ErrUnsupported) {
				t.Errorf("errors.Is(%v, ErrUnsupported) = false", tt.err)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("wraps error", func(t *testing.T) {
		baseErr := fmt.Errorf("base error")
		wrapped := Wrap(baseErr, "context message")
		if wrapped == nil {
			t.Fatal("Wrap() returned nil")
		}
		if !errors.Is(wrapped, baseErr) {
			t.Errorf("Wrap() error does not unwrap to base error")
		}
		wantMsg := "context message: base error"
		if wrapped.Error() != wantMsg {
			t.Errorf("Wrap() = %q, want %q", wrapped.Error(), wantMsg)
		}
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		if got := Wrap(nil, "context"); got != nil {
			t.Errorf("Wrap(nil) = %v, want nil", got)
		}
	})
}

func TestWrapf(t *testing.T) {
	baseErr := fmt.Errorf("base error")
	wrapped := Wrapf(baseErr, "resolve %s", "Gen 1")
	if !errors.Is(wrapped, baseErr) {
		t.Errorf("Wrapf() error does not unwrap to base error")
	}
	if want := "resolve Gen 1: base error"; wrapped.Error() != want {
		t.Errorf("Wrapf() = %q, want %q", wrapped.Error(), want)
	}
	if got := Wrapf(nil, "context %s", "test"); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}
}

func TestAs(t *testing.T) {
	err := Wrap(NewBookNotFound("Hezekiah"), "resolve")
	var nfErr *NotFoundError
	if !As(err, &nfErr) {
		t.Fatal("As() failed to match NotFoundError")
	}
	if nfErr.ID != "Hezekiah" {
		t.Errorf("As() nfErr.ID = %q, want %q", nfErr.ID, "Hezekiah")
	}
	if !Is(err, ErrBookNotFound) {
		t.Error("Is() failed to match ErrBookNotFound")
	}
}
