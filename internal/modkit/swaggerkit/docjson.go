//go:build swag

package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"vibecheck/internal/platform/config"

	docs "vibecheck/internal/services/api/docs"
)

// serveDocJSON parses the generated document on every request, lifts it
// to OAS3 and injects the error responses the annotations leave implicit
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		normalizeOpenAPI(spec, "/api/v1")

		cfg := config.New().Prefix("VIBECHECK_API_")
		if suffix := cfg.MayString("DOCS_TITLE_SUFFIX", ""); suffix != "" {
			retitle(spec, suffix)
		}

		ensureErrorSchema(spec)
		addDefaultResponse(spec, "500", errorExample(500, "Internal Server Error", 1, "panic recovered"))
		addDefaultResponse(spec, "400", errorExample(400, "Bad Request", 8, "text must be at least 2"))

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// normalizeOpenAPI lifts swagger 2 documents to OAS3, pins 3.1 back to
// 3.0.3 (the served UI cannot render 3.1) and fills in a servers array
func normalizeOpenAPI(spec map[string]any, baseURL string) {
	if _, isV2 := spec["swagger"]; isV2 {
		delete(spec, "swagger")
		spec["openapi"] = "3.0.3"
	}
	if v, _ := spec["openapi"].(string); v == "" || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": baseURL}}
	}
}

// retitle appends suffix to info.title when the document carries one
func retitle(spec map[string]any, suffix string) {
	info, ok := spec["info"].(map[string]any)
	if !ok {
		return
	}
	if title, ok := info["title"].(string); ok {
		info["title"] = title + " " + suffix
	}
}

// subMap returns m[key] as a map, inserting a fresh one when the key is
// absent or holds something else
func subMap(m map[string]any, key string) map[string]any {
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}
	sub := map[string]any{}
	m[key] = sub
	return sub
}

// ensureErrorSchema inserts the error envelope model if the generated
// document does not already carry one. Mirrors the runtime wire shape.
func ensureErrorSchema(spec map[string]any) {
	schemas := subMap(subMap(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// errorExample builds an OAS3 response object referencing the error schema
func errorExample(status int, description string, code int, message string) map[string]any {
	return map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      description,
					"code":        code,
					"error":       message,
					"request_id":  "9dc1b6e3a24f/vc-000042",
				},
			},
		},
	}
}

// addDefaultResponse walks every operation and injects resp under the given
// status when the annotation did not declare one
func addDefaultResponse(spec map[string]any, status string, resp map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, entry := range paths {
		ops, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		for _, raw := range ops {
			op, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			responses := subMap(op, "responses")
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}
