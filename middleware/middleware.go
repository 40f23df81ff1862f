// Package middleware provides a framework-free net/http middleware that
// validates JSON request bodies against a typeval type description.
package middleware

import (
	"context"
	"net/http"

	gojson "github.com/goccy/go-json"

	typeval "github.com/reoring/typeval"
)

// ctxKeyBody is a typed context key for storing the decoded request body.
type ctxKeyBody struct{}

// ContextWithValue attaches a decoded body value to the context.
func ContextWithValue(ctx context.Context, v any) context.Context {
	return context.WithValue(ctx, ctxKeyBody{}, v)
}

// ValueFromContext retrieves the decoded body value stashed by ValidateJSON.
func ValueFromContext(ctx context.Context) (any, bool) {
	v := ctx.Value(ctxKeyBody{})
	return v, v != nil
}

// ErrorPayload shapes an ErrorList for JSON responses. Descriptor references
// and offending values are dropped; only message, code and path travel.
func ErrorPayload(errs typeval.ErrorList) map[string]any {
	out := make([]map[string]any, 0, len(errs))
	for _, e := range errs {
		entry := map[string]any{"message": e.Message, "path": e.Path.Pointer()}
		if e.Code != "" {
			entry["code"] = e.Code
		}
		out = append(out, entry)
	}
	return map[string]any{"errors": out}
}

// ValidateJSON decodes the incoming JSON body, validates it against
// description, stores the decoded value in the request context, and on
// validation failure responds 400 with the ErrorPayload. Malformed JSON also
// yields 400 with a single error entry.
func ValidateJSON(description any, next http.Handler) http.Handler {
	t := typeval.TypeObject(description)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, err := decodeBody(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"errors": []map[string]any{{"message": err.Error(), "path": "/"}},
			})
			return
		}
		if errs := typeval.TypeErrors(t, v); len(errs) > 0 {
			writeJSON(w, http.StatusBadRequest, ErrorPayload(errs))
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithValue(r.Context(), v)))
	})
}

func decodeBody(r *http.Request) (any, error) {
	dec := gojson.NewDecoder(r.Body)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = gojson.NewEncoder(w).Encode(payload)
}
