package bind

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "greenpath/internal/platform/errors"
)

// shared payload for many tests
type payload struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=10"`
}

func body(s string) *http.Request {
	return httptest.NewRequest("POST", "/", strings.NewReader(s))
}

func TestParseJSON_Success(t *testing.T) {
	got, err := ParseJSON[payload](body(`{"title":"Solar kits","description":"Affordable solar for off-grid homes"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Solar kits" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_EmptyBody_Disallow(t *testing.T) {
	req := httptest.NewRequest("POST", "/", http.NoBody)
	_, err := ParseJSON[payload](req)
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_EmptyBody_SafeMethodOK(t *testing.T) {
	req := httptest.NewRequest("GET", "/", http.NoBody)
	got, err := ParseJSON[payload](req)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got != (payload{}) {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestParseJSON_AllowEmptyBody_EOF_OK(t *testing.T) {
	type emptyOK struct {
		Note string `json:"note"`
	}
	opts := JSONOptions{AllowEmptyBody: true}
	req := httptest.NewRequest("POST", "/", http.NoBody)

	got, err := ParseJSON[emptyOK](req, opts)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got != (emptyOK{}) {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := ParseJSON[payload](body(`{`))
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error code, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_UnknownField(t *testing.T) {
	_, err := ParseJSON[payload](body(`{"title":"abc","description":"long enough here","boom":1}`))
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error for unknown field, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_DisallowUnknownFalse_OK(t *testing.T) {
	opts := JSONOptions{DisallowUnknown: false}
	got, err := ParseJSON[payload](
		httptest.NewRequest("POST", "/",
			strings.NewReader(`{"title":"abc","description":"long enough here","extra":"ok"}`)), opts)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got.Title != "abc" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

// Forces trailing-data branch via seam
func TestParseJSON_TrailingData_Seam(t *testing.T) {
	orig := jsonMore
	jsonMore = func(_ *json.Decoder) bool { return true }
	defer func() { jsonMore = orig }()

	_, err := ParseJSON[payload](body(`{"title":"abc","description":"long enough here"}`))
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error for trailing data, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_ValidationError(t *testing.T) {
	_, err := ParseJSON[payload](body(`{"title":"ab","description":"short"}`))
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error code, got %v (%v)", perr.CodeOf(err), err)
	}
	e, ok := perr.As(err)
	if !ok || e.Field() == "" {
		t.Fatalf("expected field attached, got %+v", e)
	}
}

func TestValidationFieldAndMessage(t *testing.T) {
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatal("nil should yield empties")
	}
	err := Get().Validator.Struct(payload{Title: "x", Description: "short"})
	f, m := ValidationFieldAndMessage(err)
	if f == "" || m == "" {
		t.Fatalf("expected field+message, got %q %q", f, m)
	}
}
