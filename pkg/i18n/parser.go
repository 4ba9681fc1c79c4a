package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser decodes a translation file into language -> nested key map.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	SupportsFileExtension(ext string) bool
}

// ParserForFile returns the parser matching the file extension, or nil.
func ParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	for _, p := range []Parser{NewJSONParser(), NewYAMLParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// normalize turns decoded documents into string-keyed nested maps. YAML may
// decode nested maps as map[any]any.
func normalize(v any) any {
	switch m := v.(type) {
	case map[string]any:
		for k, val := range m {
			m[k] = normalize(val)
		}
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = normalize(val)
			}
		}
		return out
	default:
		return v
	}
}

func byLanguage(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := normalize(val).(map[string]any)
		if !ok {
			return nil, &StructureError{Lang: lang, Got: val}
		}
		result[lang] = m
	}
	return result, nil
}
