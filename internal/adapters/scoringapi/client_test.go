package scoringapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"greenpath/internal/core/scoring"
	perr "greenpath/internal/platform/errors"
)

func TestScoreSuccess(t *testing.T) {
	want := scoring.Result{
		Score:           88,
		Confidence:      91.5,
		Risks:           []string{"a", "b"},
		Opportunities:   []string{"c", "d"},
		Recommendations: []string{"e"},
		SDGAlignment:    []int{7, 12},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/validate" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer k-123" {
			t.Errorf("missing bearer token, got %q", got)
		}
		var req ScoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Title != "Solar kits" || req.Description == "" {
			t.Errorf("unexpected payload %+v", req)
		}
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, APIKey: "k-123"})
	got, err := c.Score(context.Background(), ScoreRequest{
		Title:       "Solar kits",
		Description: "Off-grid solar kits for rural areas",
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got.Score != want.Score || got.Confidence != want.Confidence {
		t.Fatalf("got %+v want %+v", got, want)
	}
	if len(got.SDGAlignment) != 2 || got.SDGAlignment[0] != 7 {
		t.Fatalf("sdgs %v", got.SDGAlignment)
	}
}

func TestScoreNon200IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	_, err := c.Score(context.Background(), ScoreRequest{Title: "t", Description: "d"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected Unavailable, got %v", err)
	}
}

func TestScoreMalformedBodyIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	_, err := c.Score(context.Background(), ScoreRequest{Title: "t", Description: "d"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected Unavailable, got %v", err)
	}
}

func TestScoreOutOfRangeResultIsUnavailable(t *testing.T) {
	cases := []struct {
		name string
		res  scoring.Result
	}{
		{"score too high", scoring.Result{Score: 180, Confidence: 90, SDGAlignment: []int{7}}},
		{"score negative", scoring.Result{Score: -1, Confidence: 90, SDGAlignment: []int{7}}},
		{"confidence too high", scoring.Result{Score: 80, Confidence: 250, SDGAlignment: []int{7}}},
		{"confidence negative", scoring.Result{Score: 80, Confidence: -5, SDGAlignment: []int{7}}},
		{"no sdgs", scoring.Result{Score: 80, Confidence: 90}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_ = json.NewEncoder(w).Encode(tc.res)
			}))
			defer srv.Close()

			c := NewClient(Options{BaseURL: srv.URL})
			_, err := c.Score(context.Background(), ScoreRequest{Title: "t", Description: "d"})
			if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
				t.Fatalf("expected Unavailable, got %v", err)
			}
		})
	}
}

func TestScoreUnconfiguredBaseURL(t *testing.T) {
	c := NewClient(Options{})
	_, err := c.Score(context.Background(), ScoreRequest{Title: "t", Description: "d"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected Unavailable, got %v", err)
	}
}

func TestScoreContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
	_, err := c.Score(context.Background(), ScoreRequest{Title: "t", Description: "d"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected Unavailable, got %v", err)
	}
}
