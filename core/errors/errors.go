// Package errors provides the error taxonomy shared by the reference,
// fetch, and orchestration packages.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an unsupported operation or format
	ErrUnsupported = errors.New("unsupported")

	// ErrBookNotFound indicates a book token did not match the catalog.
	ErrBookNotFound = fmt.Errorf("book %w", ErrNotFound)
	// ErrPassageNotFound indicates a planned sub-query returned no text,
	// or that no reference could be parsed at all.
	ErrPassageNotFound = fmt.Errorf("passage %w", ErrNotFound)
	// ErrUnsupportedVersion indicates a version abbreviation is not in the catalog.
	ErrUnsupportedVersion = fmt.Errorf("version %w", ErrUnsupported)
)

// Resource names used with NotFoundError.
const (
	ResourceBook    = "book"
	ResourcePassage = "passage"
)

// NotFoundError represents a resource not found error with context
type NotFoundError struct {
	Resource string // Type of resource ("book", "passage")
	ID       string // Identifier of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.sentinel()
}

// Is matches the sentinel for the resource even when Err holds a cause.
func (e *NotFoundError) Is(target error) bool {
	return target == e.sentinel() || target == ErrNotFound
}

func (e *NotFoundError) sentinel() error {
	switch e.Resource {
	case ResourceBook:
		return ErrBookNotFound
	case ResourcePassage:
		return ErrPassageNotFound
	}
	return ErrNotFound
}

// ValidationKind identifies which structural rule a reference broke.
type ValidationKind int

const (
	// KindUnknown is the zero value; never produced by the validator.
	KindUnknown ValidationKind = iota
	// MissingStartChapter: a multi-chapter book was given no start chapter.
	MissingStartChapter
	// ChapterNotFound: a chapter lies outside the book.
	ChapterNotFound
	// MustSpecifyEndVerse: a cross-chapter range starts at a verse but has no end verse.
	MustSpecifyEndVerse
	// InvalidStartVerse: the start verse is below 1.
	InvalidStartVerse
	// InvalidEndVerse: the end verse is below 1.
	InvalidEndVerse
	// InvalidChapterRange: the end chapter precedes the start chapter.
	InvalidChapterRange
	// InvalidVerseRange: within one chapter, the end verse precedes the start verse.
	InvalidVerseRange
)

var validationKindText = map[ValidationKind]string{
	KindUnknown:         "invalid reference",
	MissingStartChapter: "missing start chapter",
	ChapterNotFound:     "chapter not found",
	MustSpecifyEndVerse: "must specify end verse in end chapter",
	InvalidStartVerse:   "invalid start verse",
	InvalidEndVerse:     "invalid end verse",
	InvalidChapterRange: "invalid chapter range",
	InvalidVerseRange:   "invalid verse range",
}

func (k ValidationKind) String() string {
	if s, ok := validationKindText[k]; ok {
		return s
	}
	return fmt.Sprintf("ValidationKind(%d)", int(k))
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Kind    ValidationKind // Rule that failed
	Field   string         // Field name that failed validation
	Message string         // Human-readable error message
	Err     error          // Underlying error, if any
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, msg)
	}
	return fmt.Sprintf("validation failed: %s", msg)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// Is reports whether target is a ValidationError of the same kind, so callers
// can write errors.Is(err, &ValidationError{Kind: ChapterNotFound}).
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "query", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing or deserialization error
type ParseError struct {
	Format  string // Format being parsed (e.g., "reference", "Zefania XML", "TSV")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// UnsupportedError represents an unsupported feature, such as a version
// abbreviation missing from the catalog.
type UnsupportedError struct {
	Feature string // Feature that is unsupported ("version")
	Reason  string // Why it's not supported
	Err     error  // Underlying error, if any
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	if e.Feature == "version" {
		return ErrUnsupportedVersion
	}
	return ErrUnsupported
}

// Helper functions for creating common errors

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewBookNotFound creates a NotFoundError for an unknown book token.
func NewBookNotFound(name string) *NotFoundError {
	return NewNotFound(ResourceBook, name)
}

// NewPassageNotFound creates a NotFoundError for a passage with missing text.
func NewPassageNotFound(reference string) *NotFoundError {
	return NewNotFound(ResourcePassage, reference)
}

// NewValidation creates a ValidationError of the given kind.
func NewValidation(kind ValidationKind, field string) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Field:   field,
		Message: kind.String(),
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// NewUnsupportedVersion creates an UnsupportedError for a version abbreviation.
func NewUnsupportedVersion(abbreviation string) *UnsupportedError {
	return NewUnsupported("version", abbreviation+" is not supported")
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// KindOf returns the validation kind carried by err, or KindUnknown.
func KindOf(err error) ValidationKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return KindUnknown
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
