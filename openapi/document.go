package openapi

import (
	"sort"
	"strconv"
)

// Info holds API metadata for the document header.
type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// DefaultInfo returns the document metadata used when the host application
// does not provide its own.
func DefaultInfo() Info {
	return Info{
		Title:       "dykit API",
		Version:     "0.1.0",
		Description: "API built with dykit",
	}
}

// Document is the top-level OpenAPI 3.1 document.
type Document struct {
	OpenAPI    string              `json:"openapi"`
	Info       Info                `json:"info"`
	Paths      map[string]PathItem `json:"paths"`
	Components *Components         `json:"components,omitempty"`
}

// Components holds the named schemas referenced from operations.
type Components struct {
	Schemas map[string]JSONSchema `json:"schemas,omitempty"`
}

// PathItem maps lowercase HTTP verbs to operations.
type PathItem map[string]Operation

// Operation describes a single API operation on a path.
type Operation struct {
	Summary     string                 `json:"summary,omitempty"`
	Description string                 `json:"description,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	OperationID string                 `json:"operationId,omitempty"`
	RequestBody *RequestBody           `json:"requestBody,omitempty"`
	Responses   map[string]ResponseObj `json:"responses"`
}

// RequestBody describes the request body.
type RequestBody struct {
	Required bool                `json:"required"`
	Content  map[string]MediaObj `json:"content"`
}

// MediaObj is a media type object with an optional schema.
type MediaObj struct {
	Schema *JSONSchema `json:"schema,omitempty"`
}

// ResponseObj describes a single response.
type ResponseObj struct {
	Description string              `json:"description"`
	Content     map[string]MediaObj `json:"content,omitempty"`
}

// BuildDocument assembles an OpenAPI document from every registered entry.
// Paths are emitted in sorted order. When two entries claim the same path and
// method, the first registration wins. Components are attached only when at
// least one schema was collected.
func BuildDocument(info Info) Document {
	doc := Document{
		OpenAPI: "3.1.0",
		Info:    info,
		Paths:   make(map[string]PathItem),
	}

	for _, entry := range Entries() {
		item, ok := doc.Paths[entry.Path]
		if !ok {
			item = make(PathItem)
			doc.Paths[entry.Path] = item
		}
		if _, taken := item[entry.Method]; taken {
			continue
		}
		item[entry.Method] = entry.Operation()
	}

	set := NewSchemaSet()
	for _, entry := range Entries() {
		if entry.RegisterSchemas != nil {
			entry.RegisterSchemas(set)
		}
	}
	if set.Len() > 0 {
		doc.Components = &Components{Schemas: set.schemas}
	}

	return doc
}

// SortedPaths returns the document's path templates in sorted order. JSON
// object keys carry no order; clients that need a stable listing use this.
func (d Document) SortedPaths() []string {
	paths := make([]string, 0, len(d.Paths))
	for p := range d.Paths {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func statusKey(code int) string {
	return strconv.Itoa(code)
}
