package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/FocuswithJustin/DailyBread/core/bible"
	dberrors "github.com/FocuswithJustin/DailyBread/core/errors"
	"github.com/FocuswithJustin/DailyBread/core/passage"
	"github.com/FocuswithJustin/DailyBread/internal/metrics"
)

// stubSource answers planner queries from a fixed table. Queries for Exodus
// fail as if the upstream were down.
type stubSource struct{}

var texts = map[string]string{
	"John 3:16-16":  "For God so loved the world",
	"Genesis 1:1-1": "In the beginning",
	"Psalm 23:1-1":  "The Lord is my shepherd",
}

func (stubSource) FetchRange(ctx context.Context, version, query string, opts passage.FormattingOptions) ([]passage.Passage, error) {
	if strings.HasPrefix(query, "Exodus") {
		return nil, dberrors.NewIO("request", "/passage/", io.ErrUnexpectedEOF)
	}
	if text, ok := texts[query]; ok {
		return []passage.Passage{{Reference: query, Text: text}}, nil
	}
	return nil, nil
}

func (stubSource) FetchFeatured(ctx context.Context, version string, opts passage.FormattingOptions) (passage.Passage, error) {
	return passage.Passage{Reference: "Psalm 23:1", Text: "The Lord is my shepherd"}, nil
}

func newTestServer(t *testing.T, cfg Config) (*Server, *httptest.Server) {
	t.Helper()
	b, err := bible.New(stubSource{})
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(b, metrics.New(), cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(func() {
		ts.Close()
		s.Close()
	})
	return s, ts
}

// decode reads an envelope, decoding its data into data when non-nil.
func decode(t *testing.T, resp *http.Response, data interface{}) APIResponse {
	t.Helper()
	defer resp.Body.Close()
	var raw struct {
		APIResponse
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if data != nil && len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, data); err != nil {
			t.Fatalf("failed to decode data: %v", err)
		}
	}
	return raw.APIResponse
}

func TestPassagesEndpoint(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCode   string
		want       []passage.Passage
	}{
		{
			name:       "several references",
			query:      "q=John+3:16;+Genesis+1:1",
			wantStatus: http.StatusOK,
			want: []passage.Passage{
				{Reference: "John 3:16", Text: "For God so loved the world"},
				{Reference: "Genesis 1:1", Text: "In the beginning"},
			},
		},
		{
			name:       "lenient drops unknown book",
			query:      "q=Hezekiah+1;+John+3:16",
			wantStatus: http.StatusOK,
			want:       []passage.Passage{{Reference: "John 3:16", Text: "For God so loved the world"}},
		},
		{
			name:       "nothing found",
			query:      "q=Genesis+2:4",
			wantStatus: http.StatusOK,
			want:       []passage.Passage{},
		},
		{
			name:       "strict unknown book",
			query:      "q=Hezekiah+1;+John+3:16&strict=true",
			wantStatus: http.StatusNotFound,
			wantCode:   CodeBookNotFound,
		},
		{
			name:       "strict missing text",
			query:      "q=Genesis+2:4&strict=1",
			wantStatus: http.StatusNotFound,
			wantCode:   CodePassageNotFound,
		},
		{
			name:       "strict chapter out of range",
			query:      "q=Genesis+51&strict=true",
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidReference,
		},
		{
			name:       "strict source failure",
			query:      "q=Exodus+1:1&strict=true",
			wantStatus: http.StatusBadGateway,
			wantCode:   CodeSourceError,
		},
		{
			name:       "missing query",
			query:      "",
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeBadRequest,
		},
		{
			name:       "bad strict flag",
			query:      "q=John+3:16&strict=maybe",
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/passages?" + tt.query)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			var got []passage.Passage
			env := decode(t, resp, &got)
			if tt.wantCode != "" {
				if env.Success || env.Error == nil || env.Error.Code != tt.wantCode {
					t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
				}
				return
			}
			if !env.Success {
				t.Fatalf("success = false, error = %+v", env.Error)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("passages mismatch (-want +got):\n%s", diff)
			}
			if env.Meta == nil || env.Meta.Total != len(tt.want) || env.Meta.Version != "NIV" {
				t.Errorf("meta = %+v", env.Meta)
			}
		})
	}
}

func TestPassageEndpoint(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	resp, err := http.Get(ts.URL + "/passage?q=Psalm+23:1;+John+3:16")
	if err != nil {
		t.Fatal(err)
	}
	var got passage.Passage
	if env := decode(t, resp, &got); !env.Success {
		t.Fatalf("error = %+v", env.Error)
	}
	want := passage.Passage{Reference: "Psalm 23:1", Text: "The Lord is my shepherd"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("passage mismatch (-want +got):\n%s", diff)
	}

	resp, err = http.Get(ts.URL + "/passage?q=Genesis+2:4")
	if err != nil {
		t.Fatal(err)
	}
	if env := decode(t, resp, nil); resp.StatusCode != http.StatusNotFound || env.Error.Code != CodePassageNotFound {
		t.Errorf("missing text: status %d error %+v", resp.StatusCode, env.Error)
	}

	failures := []struct {
		query      string
		wantStatus int
		wantCode   string
	}{
		{"Hezekiah+1", http.StatusNotFound, CodeBookNotFound},
		{"Genesis+51", http.StatusBadRequest, CodeInvalidReference},
		{"Genesis+99999999999999999999", http.StatusBadRequest, CodeInvalidReference},
	}
	for _, f := range failures {
		resp, err := http.Get(ts.URL + "/passage?q=" + f.query)
		if err != nil {
			t.Fatal(err)
		}
		if env := decode(t, resp, nil); resp.StatusCode != f.wantStatus || env.Error.Code != f.wantCode {
			t.Errorf("%s: status %d error %+v, want %d %s", f.query, resp.StatusCode, env.Error, f.wantStatus, f.wantCode)
		}
	}
}

func TestBookEndpoint(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	resp, err := http.Get(ts.URL + "/books/psalms")
	if err != nil {
		t.Fatal(err)
	}
	var got BookInfo
	if env := decode(t, resp, &got); !env.Success {
		t.Fatalf("error = %+v", env.Error)
	}
	if got.Key != "PS" || got.Name != "Psalm" || got.Chapters != 150 || got.Testament != "Old" || got.Canon != "Canon" {
		t.Errorf("book = %+v", got)
	}
	if len(got.Categories) == 0 {
		t.Error("categories are empty")
	}

	for path, want := range map[string]int{
		"/books/Hezekiah": http.StatusNotFound,
		"/books/Tobit":    http.StatusNotFound,
		"/books/":         http.StatusBadRequest,
	} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != want {
			t.Errorf("GET %s status = %d, want %d", path, resp.StatusCode, want)
		}
	}
}

func TestVersionsEndpoint(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	resp, err := http.Get(ts.URL + "/versions")
	if err != nil {
		t.Fatal(err)
	}
	var got []VersionInfo
	env := decode(t, resp, &got)
	if !env.Success || env.Meta.Total != len(got) || len(got) == 0 {
		t.Fatalf("envelope = %+v with %d versions", env, len(got))
	}

	active := 0
	for _, v := range got {
		if v.Active {
			active++
			if v.Abbreviation != "NIV" {
				t.Errorf("active version = %s, want NIV", v.Abbreviation)
			}
		}
	}
	if active != 1 {
		t.Errorf("%d active versions, want 1", active)
	}
}

func TestVotdAndHealth(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	resp, err := http.Get(ts.URL + "/votd")
	if err != nil {
		t.Fatal(err)
	}
	var p passage.Passage
	if env := decode(t, resp, &p); !env.Success || p.Reference != "Psalm 23:1" {
		t.Errorf("votd = %+v, envelope %+v", p, env)
	}

	resp, err = http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	var h HealthInfo
	decode(t, resp, &h)
	if h.Status != "healthy" || h.BibleVersion != "NIV" || h.Version != AppVersion {
		t.Errorf("health = %+v", h)
	}
}

func TestRoutingAndHeaders(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	resp, err := http.Post(ts.URL+"/passages?q=John+3:16", "text/plain", nil)
	if err != nil {
		t.Fatal(err)
	}
	if env := decode(t, resp, nil); resp.StatusCode != http.StatusMethodNotAllowed || env.Error.Code != CodeMethodNotAllowed {
		t.Errorf("POST status = %d, error %+v", resp.StatusCode, env.Error)
	}

	resp, err = http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	if env := decode(t, resp, nil); resp.StatusCode != http.StatusNotFound || env.Error.Code != CodeNotFound {
		t.Errorf("unknown path status = %d, error %+v", resp.StatusCode, env.Error)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	for k, want := range map[string]string{
		"X-Request-ID":                "req-123",
		"X-Content-Type-Options":      "nosniff",
		"Access-Control-Allow-Origin": "*",
		"Content-Type":                "application/json",
	} {
		if got := resp.Header.Get(k); got != want {
			t.Errorf("%s = %q, want %q", k, got, want)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	_, ts := newTestServer(t, Config{})

	for _, path := range []string{"/passages?q=John+3:16", "/passages?q=Hezekiah+1"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
	}

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	for _, want := range []string{
		`dailybread_http_requests_total{code="2xx",route="/passages"} 2`,
		"dailybread_references_dropped_total 1",
		`dailybread_fetch_queries_total{status="found"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestNewValidatesConfig(t *testing.T) {
	b, err := bible.New(stubSource{})
	if err != nil {
		t.Fatal(err)
	}
	bad := []Config{
		{Auth: AuthConfig{Enabled: true}},
		{Auth: AuthConfig{Enabled: true, APIKey: "short"}},
		{TLS: TLSConfig{CertFile: "cert.pem"}},
	}
	for _, cfg := range bad {
		if _, err := New(b, nil, cfg); err == nil {
			t.Errorf("New(%+v) succeeded, want error", cfg)
		}
	}

	s, err := New(b, nil, Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("/metrics without metrics status = %d, want 404", rec.Code)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	b, err := bible.New(stubSource{})
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(b, nil, Config{Port: 0})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()
	cancel()
	if err := <-done; err != nil {
		t.Errorf("ListenAndServe() error = %v", err)
	}
}
