// Package openapi builds an OpenAPI 3.1 document from endpoint descriptors
// registered at process start.
//
// Packages describe their routes with Endpoint values and register them from
// init functions via MustRegisterEndpoint. The registry is append-only and is
// expected to be fully populated before the server starts serving; reads
// after that point are lock-free. BuildDocument assembles the document on
// demand, and serve.go mounts it on a gin router together with an interactive
// docs page.
package openapi
