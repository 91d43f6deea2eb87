package httpkit

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "vibecheck/internal/platform/net/http"
)

// serve runs a mounted handler against body and returns status plus body text
func serve(t *testing.T, h phttp.Handler, method string, body io.Reader) (int, string) {
	t.Helper()
	if h == nil {
		t.Fatal("no handler mounted")
	}
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(method, "/x", body))
	return rec.Code, rec.Body.String()
}

func TestSugar_MountsVerbAndPath(t *testing.T) {
	r := &spyRouter{}

	type batch struct{ N int }
	PostJSON[batch](r, "/batch", func(*http.Request, batch) (any, error) { return "ok", nil })
	Get(r, "/model", func(*http.Request) (any, error) { return "ok", nil })
	Post(r, "/retrain", func(*http.Request) (any, error) { return "ok", nil })

	want := []spyCall{
		{"POST", "/batch", true},
		{"GET", "/model", true},
		{"POST", "/retrain", true},
	}
	if len(r.calls) != len(want) {
		t.Fatalf("registered %d routes, want %d: %#v", len(r.calls), len(want), r.calls)
	}
	for i, w := range want {
		if r.calls[i] != w {
			t.Fatalf("registration %d = %+v, want %+v", i, r.calls[i], w)
		}
	}
}

func TestPostJSON_AppliesValidateTags(t *testing.T) {
	r := &spyRouter{}
	type payload struct {
		Name string `json:"name" validate:"required"`
	}
	PostJSON[payload](r, "/things", func(_ *http.Request, in payload) (any, error) {
		return map[string]string{"got": in.Name}, nil
	})
	h := r.handlers[0]

	// a missing required field is rejected before the handler runs
	code, body := serve(t, h, http.MethodPost, strings.NewReader(`{}`))
	if code != http.StatusBadRequest {
		t.Fatalf("missing field status = %d, want 400", code)
	}
	if !strings.Contains(body, "name") {
		t.Fatalf("error body %q does not name the field", body)
	}

	// a valid payload reaches the handler
	code, body = serve(t, h, http.MethodPost, strings.NewReader(`{"name":"x"}`))
	if code != http.StatusOK {
		t.Fatalf("valid payload status = %d, want 200", code)
	}
	if !strings.Contains(body, `"got":"x"`) {
		t.Fatalf("body %q does not echo the name", body)
	}
}

func TestBodyless_ResponsePassthrough(t *testing.T) {
	r := &spyRouter{}
	Get(r, "/g", func(*http.Request) (any, error) {
		return Created("fresh"), nil
	})

	code, body := serve(t, r.handlers[0], http.MethodGet, nil)
	if code != http.StatusCreated {
		t.Fatalf("Response passthrough status = %d, want 201", code)
	}
	if !strings.Contains(body, "fresh") {
		t.Fatalf("body %q does not carry the payload", body)
	}
}
