package openapi

import (
	"fmt"
	"strings"
	"sync"
)

// Entry is a single documented route in the registry.
type Entry struct {
	// Path is the route template, e.g. "/auth/login".
	Path string

	// Method is the lowercase HTTP verb.
	Method string

	// Operation produces the OpenAPI operation object for this route.
	Operation func() Operation

	// RegisterSchemas adds the component schemas this route references.
	// May be nil when the route has no structured bodies.
	RegisterSchemas func(*SchemaSet)
}

var allowedMethods = map[string]bool{
	"get":    true,
	"post":   true,
	"put":    true,
	"delete": true,
	"patch":  true,
}

var (
	registerMu sync.Mutex
	entries    []Entry
)

// Register appends an entry to the registry. Registration happens from init
// functions; once the process is serving, the registry must not change.
func Register(e Entry) error {
	method := strings.ToLower(e.Method)
	if !allowedMethods[method] {
		return fmt.Errorf("openapi: unsupported HTTP method %q for %s", e.Method, e.Path)
	}
	if e.Path == "" {
		return fmt.Errorf("openapi: entry with empty path")
	}
	if e.Operation == nil {
		return fmt.Errorf("openapi: entry %s %s without operation", method, e.Path)
	}
	e.Method = method

	registerMu.Lock()
	defer registerMu.Unlock()
	entries = append(entries, e)
	return nil
}

// MustRegister is Register that panics on invalid entries. Called from init
// functions, an invalid descriptor stops the process before it can serve.
func MustRegister(e Entry) {
	if err := Register(e); err != nil {
		panic(err)
	}
}

// HasEntries reports whether any routes have been registered. Servers use it
// to decide whether to mount the documentation endpoints.
func HasEntries() bool {
	return len(entries) > 0
}

// Entries returns a snapshot of the registered entries in registration order.
func Entries() []Entry {
	return append([]Entry(nil), entries...)
}
