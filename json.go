package typeval

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// DecodeJSON decodes a JSON document into the generic value shapes the engine
// walks (map[string]any, []any, json.Number, string, bool, nil). Numbers are
// preserved as json.Number so numeric fidelity survives classification.
func DecodeJSON(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// ValidateJSON decodes data and validates it against description. The result
// is nil when the document conforms, the decode error when the bytes are not
// JSON, and an ErrorList otherwise.
func ValidateJSON(description any, data []byte) error {
	v, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	if errs := TypeErrors(description, v); len(errs) > 0 {
		return errs
	}
	return nil
}
