package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type classifyIn struct {
	Text string `json:"text"`
}

func postJSONHandler(h Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/classify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestJSONHandler_BindComputeRespond(t *testing.T) {
	t.Parallel()

	h := JSONHandler[classifyIn](func(_ *http.Request, in classifyIn) (any, error) {
		return map[string]string{"verdict": "positive", "echo": in.Text}, nil
	})

	rr := postJSONHandler(h, `{"text":"love this"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"verdict":"positive"`) || !strings.Contains(body, `"echo":"love this"`) {
		t.Fatalf("body %q missing computed fields", body)
	}
}

func TestJSONHandler_MalformedBodySkipsCompute(t *testing.T) {
	t.Parallel()

	h := JSONHandler[classifyIn](func(_ *http.Request, _ classifyIn) (any, error) {
		t.Fatal("compute ran despite a bind failure")
		return nil, nil
	})

	rr := postJSONHandler(h, `{`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for malformed JSON", rr.Code)
	}
	if !strings.Contains(strings.ToLower(rr.Body.String()), "error") {
		t.Fatalf("body %q carries no error text", rr.Body.String())
	}
}

func TestJSONHandler_ComputeErrorSurfaces(t *testing.T) {
	t.Parallel()

	h := JSONHandler[classifyIn](func(_ *http.Request, _ classifyIn) (any, error) {
		return nil, errors.New("model not trained")
	})

	rr := postJSONHandler(h, `{"text":"hm"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 for a foreign error", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "model not trained") {
		t.Fatalf("body %q missing the error message", rr.Body.String())
	}
}
