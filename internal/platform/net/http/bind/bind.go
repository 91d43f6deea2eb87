// Package bind decodes and validates JSON request bodies
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "vibecheck/internal/platform/errors"
	"vibecheck/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// JSONOptions tunes ParseJSON per call site
type JSONOptions struct {
	MaxBytes        int64 // cap on body size, default 1MB
	DisallowUnknown bool  // reject unknown fields, default true
	AllowEmptyBody  bool  // treat an empty body as the zero value, default false
}

// decoder seam so tests can force the trailing-data branch
var jsonMore = func(dec *json.Decoder) bool { return dec.More() }

// ParseJSON decodes the request body into T and runs its validate tags.
// Decode failures come back as JSON-coded errors, tag failures as
// Validation-coded ones, so the responder maps both to 400.
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("request body close failed")
		}
	}()

	body, empty := probeBody(r.Body, o)
	if empty {
		// body-less safe methods bind the zero value
		switch r.Method {
		case http.MethodGet, http.MethodDelete, http.MethodHead, http.MethodOptions:
			return zero, nil
		}
		return zero, perr.JSONErrf("empty body")
	}

	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Get().Validator.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return zero, perr.JSONErrf("validation error")
		}
		_, msg := ValidationFieldAndMessage(err)
		return zero, perr.Newf(perr.CodeValidation, "%s", msg)
	}
	return dst, nil
}

// probeBody reads one byte to distinguish an empty body from content,
// then hands back a reader carrying that byte plus the rest, size-capped.
// When AllowEmptyBody is set the probe is skipped; the decoder's EOF
// handles emptiness there.
func probeBody(body io.Reader, o JSONOptions) (io.Reader, bool) {
	if o.AllowEmptyBody {
		return capReader(body, o.MaxBytes), false
	}
	probe := make([]byte, 1)
	n, _ := body.Read(probe)
	if n == 0 {
		return nil, true
	}
	combined := io.MultiReader(bytes.NewReader(probe[:n]), body)
	return capReader(combined, o.MaxBytes), false
}

func capReader(r io.Reader, max int64) io.Reader {
	if max > 0 {
		return io.LimitReader(r, max)
	}
	return r
}

// ValidatorSvc bundles the validator with its message translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

// Get hands back the shared validator, built on first use: english
// messages, json tag names in errors, short min/max wording
var Get = sync.OnceValue(func() *ValidatorSvc {
	enLoc := en.New()
	trans, _ := ut.New(enLoc, enLoc).GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	_ = en_translations.RegisterDefaultTranslations(v, trans)
	registerShort(v, trans, "min", "{0} must be at least {1}")
	registerShort(v, trans, "max", "{0} must be at most {1}")

	return &ValidatorSvc{Validator: v, Translator: trans}
})

// jsonFieldName makes validation messages speak in wire field names
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// ValidationFieldAndMessage pulls the first failed field and its translated
// message out of a validator error
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		return "", inv.Error()
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	return "", err.Error()
}

// registerShort overrides a tag's default message with a two-slot template
func registerShort(v *validator.Validate, trans ut.Translator, tag, format string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, format, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
