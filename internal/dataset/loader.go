package dataset

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	gojson "github.com/goccy/go-json"
	"golang.org/x/text/encoding/charmap"
	"gopkg.in/yaml.v3"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile loads an export file and returns decodable UTF-8 bytes. Exports in
// the wild arrive as UTF-8, UTF-8 with a BOM, or Latin-1; a BOM is stripped
// and invalid UTF-8 is re-decoded as Latin-1.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decoding latin-1 export: %w", err)
		}
		data = decoded
	}
	return data, nil
}

// LoadRaw parses the export into untyped values suitable for schema inference
// and querying. Number literals are preserved as json.Number.
func LoadRaw(path string) (any, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRaw(data, IsYAML(path))
}

// ParseRaw decodes export bytes. YAML documents are rewritten into JSON-shaped
// values so the rest of the pipeline sees one value vocabulary.
func ParseRaw(data []byte, yamlFormat bool) (any, error) {
	if yamlFormat {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parsing export YAML: %w", err)
		}
		return normalizeYAML(v), nil
	}

	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parsing export JSON: %w", err)
	}
	return v, nil
}

// LoadExport decodes the export into typed records. The reports expect the
// usual top-level array of per-user records.
func LoadExport(path string) ([]Record, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := gojson.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding export records: %w", err)
	}
	return records, nil
}

// IsYAML reports whether the file extension marks a YAML export.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// normalizeYAML rewrites YAML-decoded values into JSON-shaped ones: mapping
// keys become strings and nested values are converted recursively.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprintf("%v", k)] = normalizeYAML(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalizeYAML(item)
		}
		return val
	default:
		return v
	}
}
