package openapi

import (
	"reflect"
	"sort"
	"strings"
	"time"
)

// JSONSchema is a JSON Schema object (the subset OpenAPI 3.1 needs).
type JSONSchema struct {
	Type        string                `json:"type,omitempty"`
	Format      string                `json:"format,omitempty"`
	Properties  map[string]JSONSchema `json:"properties,omitempty"`
	Items       *JSONSchema           `json:"items,omitempty"`
	Required    []string              `json:"required,omitempty"`
	Description string                `json:"description,omitempty"`
	Enum        []string              `json:"enum,omitempty"`
	Ref         string                `json:"$ref,omitempty"`

	// AdditionalProperties holds the value schema for map types.
	AdditionalProperties *JSONSchema `json:"additionalProperties,omitempty"`
}

// SchemaSet accumulates named component schemas while a document is built.
// Adding the same name twice keeps the first definition.
type SchemaSet struct {
	schemas map[string]JSONSchema
}

// NewSchemaSet creates an empty schema set.
func NewSchemaSet() *SchemaSet {
	return &SchemaSet{schemas: make(map[string]JSONSchema)}
}

// Add records a named component schema. The first definition wins.
func (s *SchemaSet) Add(name string, schema JSONSchema) {
	if _, ok := s.schemas[name]; ok {
		return
	}
	s.schemas[name] = schema
}

// Len returns the number of collected schemas.
func (s *SchemaSet) Len() int { return len(s.schemas) }

// Names returns the collected schema names in sorted order.
func (s *SchemaSet) Names() []string {
	names := make([]string, 0, len(s.schemas))
	for name := range s.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SchemaOf reflects a value into a schema suitable for a media type object.
// Named struct types are registered in the set as components and referenced
// with $ref; everything else is inlined. Nested named structs register
// transitively.
func SchemaOf(v interface{}, set *SchemaSet) JSONSchema {
	if v == nil {
		return JSONSchema{}
	}
	return typeToSchema(reflect.TypeOf(v), set)
}

// RegisterSchemasOf records the component schemas for a value without
// returning the top-level shape. Used by registry entries.
func RegisterSchemasOf(v interface{}, set *SchemaSet) {
	SchemaOf(v, set)
}

func typeToSchema(t reflect.Type, set *SchemaSet) JSONSchema {
	if t.Kind() == reflect.Pointer {
		return typeToSchema(t.Elem(), set)
	}

	switch t {
	case reflect.TypeFor[time.Time]():
		return JSONSchema{Type: "string", Format: "date-time"}
	case reflect.TypeFor[time.Duration]():
		return JSONSchema{Type: "string", Format: "duration"}
	}

	switch t.Kind() {
	case reflect.String:
		return JSONSchema{Type: "string"}
	case reflect.Bool:
		return JSONSchema{Type: "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return JSONSchema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return JSONSchema{Type: "number"}
	case reflect.Slice, reflect.Array:
		if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8 {
			return JSONSchema{Type: "string", Format: "byte"}
		}
		items := typeToSchema(t.Elem(), set)
		return JSONSchema{Type: "array", Items: &items}
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return JSONSchema{Type: "object"}
		}
		valSchema := typeToSchema(t.Elem(), set)
		return JSONSchema{Type: "object", AdditionalProperties: &valSchema}
	case reflect.Struct:
		if t.Name() == "" {
			return structToSchema(t, set)
		}
		set.Add(t.Name(), structToSchema(t, set))
		return JSONSchema{Ref: "#/components/schemas/" + t.Name()}
	case reflect.Interface:
		return JSONSchema{}
	default:
		return JSONSchema{}
	}
}

func structToSchema(t reflect.Type, set *SchemaSet) JSONSchema {
	schema := JSONSchema{
		Type:       "object",
		Properties: make(map[string]JSONSchema),
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := jsonFieldName(f)
		if name == "-" {
			continue
		}

		prop := typeToSchema(f.Type, set)
		if doc := f.Tag.Get("doc"); doc != "" {
			prop.Description = doc
		}
		schema.Properties[name] = prop

		if isRequiredField(f) {
			schema.Required = append(schema.Required, name)
		}
	}

	return schema
}

func jsonFieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}

// isRequiredField reads the "required" constraint off the validate tag so
// request models document themselves.
func isRequiredField(f reflect.StructField) bool {
	for _, rule := range strings.Split(f.Tag.Get("validate"), ",") {
		if rule == "required" {
			return true
		}
	}
	return false
}
