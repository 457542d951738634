package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/FocuswithJustin/DailyBread/core/bible"
	"github.com/FocuswithJustin/DailyBread/core/catalog"
	"github.com/FocuswithJustin/DailyBread/core/errors"
	"github.com/FocuswithJustin/DailyBread/internal/logging"
)

// AppVersion is reported by the root and health endpoints.
const AppVersion = "1.0.0"

// Error codes.
const (
	CodeBookNotFound       = "BOOK_NOT_FOUND"
	CodePassageNotFound    = "PASSAGE_NOT_FOUND"
	CodeInvalidReference   = "INVALID_REFERENCE"
	CodeUnsupportedVersion = "UNSUPPORTED_VERSION"
	CodeBadRequest         = "BAD_REQUEST"
	CodeRateLimited        = "RATE_LIMITED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeSourceError        = "SOURCE_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
)

// APIResponse is the standard API response wrapper.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIMeta contains response metadata.
type APIMeta struct {
	Total     int    `json:"total,omitempty"`
	Version   string `json:"version,omitempty"`
	Timestamp string `json:"timestamp"`
}

// BookInfo describes a book of the catalog.
type BookInfo struct {
	Key        string   `json:"key"`
	Name       string   `json:"name"`
	Testament  string   `json:"testament"`
	Canon      string   `json:"canon"`
	Chapters   int      `json:"chapters"`
	Categories []string `json:"categories"`
}

// VersionInfo describes a supported version.
type VersionInfo struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
	Language     string `json:"language"`
	Deuterocanon bool   `json:"deuterocanon"`
	Active       bool   `json:"active"`
}

// HealthInfo is the health check response.
type HealthInfo struct {
	Status           string `json:"status"`
	Version          string `json:"version"`
	Uptime           string `json:"uptime"`
	BibleVersion     string `json:"bible_version"`
	WebSocketClients int    `json:"websocket_clients"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		respondError(w, http.StatusNotFound, CodeNotFound, "Endpoint not found")
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"name":    "DailyBread API",
		"version": AppVersion,
		"endpoints": []string{
			"GET /health",
			"GET /passages?q=&strict=",
			"GET /passage?q=",
			"GET /books/:name",
			"GET /versions",
			"GET /votd",
			"GET /metrics",
			"WS /ws",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, HealthInfo{
		Status:           "healthy",
		Version:          AppVersion,
		Uptime:           time.Since(s.started).Round(time.Second).String(),
		BibleVersion:     s.bible.Version().Abbreviation,
		WebSocketClients: s.hub.Count(),
	})
}

// handlePassages resolves every reference in q. With strict=true the first
// failing reference fails the request.
func (s *Server) handlePassages(w http.ResponseWriter, r *http.Request) {
	q, err := ValidateQuery(r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}
	strict, err := parseBool(r.URL.Query().Get("strict"))
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeBadRequest, "strict must be a boolean")
		return
	}

	passages, err := s.bible.Get(r.Context(), bible.Text(q), bible.GetOptions{Strict: strict})
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respondList(w, passages, s.bible.Version().Abbreviation)
}

func (s *Server) handlePassage(w http.ResponseWriter, r *http.Request) {
	q, err := ValidateQuery(r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}
	p, err := s.bible.GetOne(r.Context(), bible.Text(q))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	name, err := ValidateBookName(strings.TrimPrefix(r.URL.Path, "/books/"))
	if err != nil {
		respondError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}
	book, err := s.bible.Book(name)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respond(w, http.StatusOK, newBookInfo(book, s.bible.Version().Language))
}

func (s *Server) handleVersions(w http.ResponseWriter, r *http.Request) {
	active := s.bible.Version().Abbreviation
	versions := catalog.Versions()
	infos := make([]VersionInfo, len(versions))
	for i, v := range versions {
		infos[i] = VersionInfo{
			Abbreviation: v.Abbreviation,
			Name:         v.Name,
			Language:     string(v.Language),
			Deuterocanon: v.Deuterocanon,
			Active:       v.Abbreviation == active,
		}
	}
	respondList(w, infos, active)
}

func (s *Server) handleVotd(w http.ResponseWriter, r *http.Request) {
	p, err := s.bible.Featured(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func newBookInfo(b *catalog.Book, lang catalog.Language) BookInfo {
	return BookInfo{
		Key:        b.Key,
		Name:       b.Name(lang),
		Testament:  b.Testament.String(),
		Canon:      b.Canon.String(),
		Chapters:   b.Chapters,
		Categories: b.Categories.Names(),
	}
}

func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}

// errorCode maps a lookup error to its HTTP status and API error code. A
// passage not found error from GetOne carries its cause, so the more specific
// book and input checks come first.
func errorCode(err error) (int, string) {
	switch {
	case errors.Is(err, errors.ErrBookNotFound):
		return http.StatusNotFound, CodeBookNotFound
	case errors.Is(err, errors.ErrInvalidInput):
		return http.StatusBadRequest, CodeInvalidReference
	case errors.Is(err, errors.ErrPassageNotFound):
		return http.StatusNotFound, CodePassageNotFound
	case errors.Is(err, errors.ErrUnsupportedVersion):
		return http.StatusBadRequest, CodeUnsupportedVersion
	case errors.As(err, new(*errors.IOError)):
		return http.StatusBadGateway, CodeSourceError
	}
	return http.StatusInternalServerError, CodeInternal
}

func respondErr(w http.ResponseWriter, r *http.Request, err error) {
	status, code := errorCode(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		logging.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		if status == http.StatusInternalServerError {
			msg = "internal error"
		}
	}
	respondError(w, status, code, msg)
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, APIResponse{
		Success: true,
		Data:    data,
		Meta:    &APIMeta{Timestamp: timestamp()},
	})
}

func respondList[T any](w http.ResponseWriter, items []T, version string) {
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    items,
		Meta: &APIMeta{
			Total:     len(items),
			Version:   version,
			Timestamp: timestamp(),
		},
	})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message},
		Meta:    &APIMeta{Timestamp: timestamp()},
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
