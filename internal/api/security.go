package api

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/DailyBread/internal/server"
)

const (
	// MaxQueryLength bounds the passage query a client may send.
	MaxQueryLength = 512
	// MaxBookNameLength bounds a book name in a URL path.
	MaxBookNameLength = 64
)

// ValidateQuery cleans a client supplied passage query. Control characters
// are removed; an empty or oversized query is rejected.
func ValidateQuery(q string) (string, error) {
	if len(q) > MaxQueryLength {
		return "", fmt.Errorf("query exceeds %d bytes", MaxQueryLength)
	}
	q = server.SanitizeUserInput(q)
	if q == "" {
		return "", fmt.Errorf("query is required")
	}
	return q, nil
}

// ValidateBookName cleans a book name taken from a URL path.
func ValidateBookName(name string) (string, error) {
	name = server.SanitizeUserInput(server.LimitStringLength(name, MaxBookNameLength+1))
	switch {
	case name == "":
		return "", fmt.Errorf("book name is required")
	case len(name) > MaxBookNameLength:
		return "", fmt.Errorf("book name exceeds %d bytes", MaxBookNameLength)
	case strings.ContainsAny(name, "/\\"):
		return "", fmt.Errorf("book name cannot contain path separators")
	}
	return name, nil
}
