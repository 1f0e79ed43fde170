package openapi

import "net/http"

// Endpoint is a declarative route descriptor. Packages declare one per
// documented route and register it from an init function; MustRegisterEndpoint
// panics on a bad descriptor, so mistakes surface at process start rather
// than in the served document.
type Endpoint struct {
	// Method is the HTTP verb, case-insensitive. One of get, post, put,
	// delete, patch.
	Method string

	// Path is the route template, e.g. "/auth/login".
	Path string

	// Handler names the handler function; it becomes the operation id.
	Handler string

	// Summary is a one-line description shown in route listings.
	Summary string

	// Description elaborates on the operation.
	Description string

	// Tag groups the operation in the rendered documentation.
	Tag string

	// Request is a zero value of the request body type, or nil when the
	// operation takes no body.
	Request interface{}

	// Response is a zero value of the success response type, or nil.
	Response interface{}

	// Status is the success status code. Zero means 200.
	Status int
}

// RegisterEndpoint compiles the descriptor into a registry entry.
func RegisterEndpoint(e Endpoint) error {
	return Register(Entry{
		Path:            e.Path,
		Method:          e.Method,
		Operation:       e.operation,
		RegisterSchemas: e.registerSchemas,
	})
}

// MustRegisterEndpoint is RegisterEndpoint that panics on invalid
// descriptors. Meant for init functions.
func MustRegisterEndpoint(e Endpoint) {
	if err := RegisterEndpoint(e); err != nil {
		panic(err)
	}
}

func (e Endpoint) operation() Operation {
	op := Operation{
		Summary:     e.Summary,
		Description: e.Description,
		OperationID: e.Handler,
		Responses:   make(map[string]ResponseObj),
	}
	if e.Tag != "" {
		op.Tags = []string{e.Tag}
	}

	// The operation only needs reference shapes; full component schemas are
	// collected separately through registerSchemas.
	scratch := NewSchemaSet()

	if e.Request != nil {
		schema := SchemaOf(e.Request, scratch)
		op.RequestBody = &RequestBody{
			Required: true,
			Content: map[string]MediaObj{
				"application/json": {Schema: &schema},
			},
		}
	}

	status := e.Status
	if status == 0 {
		status = http.StatusOK
	}
	resp := ResponseObj{Description: "Successful response"}
	if e.Response != nil {
		schema := SchemaOf(e.Response, scratch)
		resp.Content = map[string]MediaObj{
			"application/json": {Schema: &schema},
		}
	}
	op.Responses[statusKey(status)] = resp

	return op
}

func (e Endpoint) registerSchemas(set *SchemaSet) {
	if e.Request != nil {
		RegisterSchemasOf(e.Request, set)
	}
	if e.Response != nil {
		RegisterSchemasOf(e.Response, set)
	}
}
