package api

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultOpenAPI describes the endpoints served by this module's resource groups.
//
//go:embed openapi.yaml
var DefaultOpenAPI []byte

var ErrInvalidOpenAPI = errors.New("api: invalid openapi document")

// LoadOpenAPI parses a YAML (or JSON) OpenAPI document into a value that
// encodes back to the same JSON object.
func LoadOpenAPI(data []byte) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidOpenAPI, err)
	}
	doc, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrInvalidOpenAPI)
	}
	return doc, nil
}

// normalize converts YAML mappings with non-string keys (status codes
// such as 200 decode as ints) into JSON-encodable maps.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}
