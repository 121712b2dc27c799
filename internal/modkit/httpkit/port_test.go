package httpkit

import (
	"errors"
	"net/http/httptest"
	"testing"

	perr "greenpath/internal/platform/errors"
)

func TestPort_Parse(t *testing.T) {
	ok := NewPortFunc(func(token string) (string, error) {
		if token == "good" {
			return "user-1", nil
		}
		return "", errors.New("bad")
	})

	cases := []struct {
		name    string
		header  string
		wantUID string
		wantErr bool
	}{
		{"missing header", "", "", true},
		{"not bearer", "Basic abc", "", true},
		{"bearer no token", "Bearer   ", "", true},
		{"bad token", "Bearer nope", "", true},
		{"good token", "Bearer good", "user-1", false},
		{"case insensitive scheme", "bearer good", "user-1", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if c.header != "" {
				r.Header.Set("Authorization", c.header)
			}
			uid, err := ok.Parse(r)
			if c.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
					t.Fatalf("expected unauthorized, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected: %v", err)
			}
			if uid != c.wantUID {
				t.Fatalf("uid %q want %q", uid, c.wantUID)
			}
		})
	}
}

func TestPort_NilParser(t *testing.T) {
	p := NewPortFunc(nil)
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer abc")
	if _, err := p.Parse(r); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
