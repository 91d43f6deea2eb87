package bind

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "vibecheck/internal/platform/errors"
)

// classifyBody mirrors the shape handlers bind for single classifications
type classifyBody struct {
	Text  string `json:"text" validate:"required,min=2"`
	Limit int    `json:"limit" validate:"min=1"`
}

func postReq(body string) *http.Request {
	return httptest.NewRequest("POST", "/classify", strings.NewReader(body))
}

func TestParseJSON_BindsAndValidates(t *testing.T) {
	got, err := ParseJSON[classifyBody](postReq(`{"text":"great day","limit":3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "great day" || got.Limit != 3 {
		t.Fatalf("bound %+v", got)
	}
}

func TestParseJSON_EmptyBody(t *testing.T) {
	// POST with nothing is a JSON error
	req := httptest.NewRequest("POST", "/classify", http.NoBody)
	if _, err := ParseJSON[classifyBody](req); perr.CodeOf(err) != perr.CodeJSON {
		t.Fatalf("POST empty body: code %v (%v)", perr.CodeOf(err), err)
	}

	// GET with nothing binds the zero value
	get := httptest.NewRequest("GET", "/classify/model", http.NoBody)
	got, err := ParseJSON[classifyBody](get)
	if err != nil {
		t.Fatalf("GET empty body: %v", err)
	}
	if got != (classifyBody{}) {
		t.Fatalf("GET empty body bound %+v", got)
	}
}

func TestParseJSON_AllowEmptyBody(t *testing.T) {
	type note struct {
		Note string `json:"note"`
	}

	// EOF on an empty body yields the zero value
	req := httptest.NewRequest("POST", "/", http.NoBody)
	got, err := ParseJSON[note](req, JSONOptions{AllowEmptyBody: true})
	if err != nil {
		t.Fatalf("empty: %v", err)
	}
	if got != (note{}) {
		t.Fatalf("empty bound %+v", got)
	}

	// and the size cap still applies on that path
	got2, err := ParseJSON[note](postReq(`{}`), JSONOptions{AllowEmptyBody: true, MaxBytes: 8})
	if err != nil {
		t.Fatalf("capped: %v", err)
	}
	if got2 != (note{}) {
		t.Fatalf("capped bound %+v", got2)
	}
}

func TestParseJSON_DecodeFailures(t *testing.T) {
	// truncated JSON
	if _, err := ParseJSON[classifyBody](postReq(`{"text":`)); perr.CodeOf(err) != perr.CodeJSON {
		t.Fatalf("truncated: code %v (%v)", perr.CodeOf(err), err)
	}

	// unknown fields rejected by default
	if _, err := ParseJSON[classifyBody](postReq(`{"text":"ok","limit":1,"mood":"?"}`)); perr.CodeOf(err) != perr.CodeJSON {
		t.Fatalf("unknown field: code %v (%v)", perr.CodeOf(err), err)
	}

	// size cap cuts the body mid-object
	tooSmall := JSONOptions{MaxBytes: 5, DisallowUnknown: true}
	if _, err := ParseJSON[classifyBody](postReq(`{"text":"great day","limit":3}`), tooSmall); perr.CodeOf(err) != perr.CodeJSON {
		t.Fatalf("size cap: code %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_UnknownFieldsTolerated(t *testing.T) {
	got, err := ParseJSON[classifyBody](postReq(`{"text":"ok","limit":1,"mood":"?"}`), JSONOptions{DisallowUnknown: false})
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got.Text != "ok" || got.Limit != 1 {
		t.Fatalf("bound %+v", got)
	}
}

func TestParseJSON_TrailingData(t *testing.T) {
	orig := jsonMore
	jsonMore = func(_ *json.Decoder) bool { return true }
	defer func() { jsonMore = orig }()

	if _, err := ParseJSON[classifyBody](postReq(`{"text":"ok","limit":1}`)); perr.CodeOf(err) != perr.CodeJSON {
		t.Fatalf("trailing: code %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_ValidateTags(t *testing.T) {
	// text too short trips min=2
	if _, err := ParseJSON[classifyBody](postReq(`{"text":"a","limit":1}`)); perr.CodeOf(err) != perr.CodeValidation {
		t.Fatalf("validation: code %v (%v)", perr.CodeOf(err), err)
	}
}

func TestParseJSON_SizeCapBranches(t *testing.T) {
	// uncapped probe+combine path
	if _, err := ParseJSON[classifyBody](postReq(`{"text":"ok","limit":1}`), JSONOptions{MaxBytes: 0}); err != nil {
		t.Fatalf("uncapped: %v", err)
	}
	// capped, but roomy enough
	if _, err := ParseJSON[classifyBody](postReq(`{"text":"ok","limit":1}`), JSONOptions{MaxBytes: 64}); err != nil {
		t.Fatalf("capped: %v", err)
	}
}

func TestParseJSON_NonStructTarget(t *testing.T) {
	// validator cannot Struct an int; ParseJSON reports it as a JSON-coded error
	if _, err := ParseJSON[int](postReq(`5`)); perr.CodeOf(err) != perr.CodeJSON {
		t.Fatalf("non-struct: code %v (%v)", perr.CodeOf(err), err)
	}
}

func TestFieldNames_FollowJSONTags(t *testing.T) {
	type tagged struct {
		Val int `json:"token_limit,omitempty" validate:"min=1"`
	}
	field, msg := ValidationFieldAndMessage(Get().Validator.Struct(tagged{}))
	if field != "token_limit" {
		t.Fatalf("field = %q, want token_limit", field)
	}
	if !strings.Contains(msg, "at least") {
		t.Fatalf("message = %q", msg)
	}

	type hidden struct {
		Secret int `json:"-" validate:"min=1"`
	}
	if field, _ := ValidationFieldAndMessage(Get().Validator.Struct(hidden{})); field != "Secret" {
		t.Fatalf("dash tag field = %q, want Secret", field)
	}

	type untagged struct {
		Plain int `validate:"min=1"`
	}
	if field, _ := ValidationFieldAndMessage(Get().Validator.Struct(untagged{})); field != "Plain" {
		t.Fatalf("untagged field = %q, want Plain", field)
	}
}

func TestValidationFieldAndMessage_Passthrough(t *testing.T) {
	if field, msg := ValidationFieldAndMessage(nil); field != "" || msg != "" {
		t.Fatalf("nil: %q %q", field, msg)
	}
	if field, msg := ValidationFieldAndMessage(errors.New("boom")); field != "" || msg != "boom" {
		t.Fatalf("generic: %q %q", field, msg)
	}
}

func TestShortMinMaxMessages(t *testing.T) {
	type limits struct {
		Count int    `json:"count" validate:"max=5"`
		Text  string `json:"text" validate:"min=2"`
	}

	_, maxMsg := ValidationFieldAndMessage(Get().Validator.Struct(limits{Count: 6, Text: "ok"}))
	if maxMsg != "count must be at most 5" {
		t.Fatalf("max message = %q", maxMsg)
	}

	_, minMsg := ValidationFieldAndMessage(Get().Validator.Struct(limits{Count: 1, Text: "x"}))
	if minMsg != "text must be at least 2" {
		t.Fatalf("min message = %q", minMsg)
	}
}
