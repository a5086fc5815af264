package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/pelletier/go-toml/v2"
)

// ReferenceEntry documents one leaf key of the config file.
type ReferenceEntry struct {
	Key         string
	Type        string
	Default     string
	Constraint  string
	Description string
}

// Reference lists every config key in file order, with its type, default
// value, and schema constraints.
func Reference() ([]ReferenceEntry, error) {
	r := &jsonschema.Reflector{FieldNameTag: "toml", DoNotReference: true}
	schema := r.Reflect(&Config{})

	raw, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to encode defaults: %w", err)
	}
	var defaults map[string]any
	if err := toml.Unmarshal(raw, &defaults); err != nil {
		return nil, fmt.Errorf("failed to decode defaults: %w", err)
	}

	var out []ReferenceEntry
	walkSchema(schema, "", defaults, &out)
	return out, nil
}

func walkSchema(s *jsonschema.Schema, prefix string, defaults map[string]any, out *[]ReferenceEntry) {
	if s.Properties == nil {
		return
	}
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		key, child := pair.Key, pair.Value
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if child.Type == "object" && child.Properties != nil {
			nested, _ := defaults[key].(map[string]any)
			walkSchema(child, full, nested, out)
			continue
		}
		entry := ReferenceEntry{
			Key:         full,
			Type:        schemaType(child),
			Constraint:  constraint(child),
			Description: child.Description,
		}
		if v, ok := defaults[key]; ok {
			entry.Default = formatDefault(v)
		}
		*out = append(*out, entry)
	}
}

func schemaType(s *jsonschema.Schema) string {
	if s.Type == "array" && s.Items != nil {
		return "array of " + s.Items.Type
	}
	return s.Type
}

func constraint(s *jsonschema.Schema) string {
	var parts []string
	if len(s.Enum) > 0 {
		values := make([]string, 0, len(s.Enum))
		for _, v := range s.Enum {
			values = append(values, fmt.Sprint(v))
		}
		parts = append(parts, "one of "+strings.Join(values, ", "))
	}
	if s.Minimum != "" {
		parts = append(parts, "minimum "+s.Minimum.String())
	}
	if s.Maximum != "" {
		parts = append(parts, "maximum "+s.Maximum.String())
	}
	return strings.Join(parts, "; ")
}

func formatDefault(v any) string {
	switch t := v.(type) {
	case string:
		return strconv.Quote(t)
	case []any:
		items := make([]string, 0, len(t))
		for _, item := range t {
			items = append(items, formatDefault(item))
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return fmt.Sprint(t)
	}
}
