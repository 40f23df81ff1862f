package typeval

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a YAML document into the generic value shapes the engine
// walks. yaml.v3 already produces map[string]any for string-keyed mappings;
// the occasional non-string key is stringified so object validation stays
// uniform.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalizeYAML(v), nil
}

// ValidateYAML decodes data and validates it against description, mirroring
// ValidateJSON.
func ValidateYAML(description any, data []byte) error {
	v, err := DecodeYAML(data)
	if err != nil {
		return err
	}
	if errs := TypeErrors(description, v); len(errs) > 0 {
		return errs
	}
	return nil
}

func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeYAML(val)
		}
		return out
	default:
		return v
	}
}
