// Package openapi synthesizes OpenAPI 3.0 documents from flattened catalog
// entries and validates their basic structure.
package openapi

import (
	"github.com/fincatalog/specforge/internal/catalog"
	"github.com/fincatalog/specforge/internal/schema"
)

// Document is a synthesized OpenAPI 3.0 document. It is purely a function
// of its inputs and is never persisted by this package.
type Document struct {
	OpenAPI    string              `json:"openapi" yaml:"openapi"`
	Info       Info                `json:"info" yaml:"info"`
	Servers    []Server            `json:"servers,omitempty" yaml:"servers,omitempty"`
	Tags       []Tag               `json:"tags,omitempty" yaml:"tags,omitempty"`
	Paths      map[string]PathItem `json:"paths" yaml:"paths"`
	Components Components          `json:"components" yaml:"components"`
}

// Info is the document info block.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version" yaml:"version"`
}

// Server is one server entry.
type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Tag groups operations by service domain.
type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PathItem maps a lower-cased HTTP method to its operation.
type PathItem map[string]*Operation

// Operation is one method entry under a path.
type Operation struct {
	Tags        []string              `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string                `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	OperationID string                `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Parameters  []Parameter           `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody          `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]Response   `json:"responses" yaml:"responses"`
	Security    []map[string][]string `json:"security,omitempty" yaml:"security,omitempty"`
}

// Parameter is a query, path or header parameter.
type Parameter struct {
	Name        string        `json:"name" yaml:"name"`
	In          string        `json:"in" yaml:"in"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool          `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      *SchemaOrRef  `json:"schema,omitempty" yaml:"schema,omitempty"`
	Example     any           `json:"example,omitempty" yaml:"example,omitempty"`
}

// RequestBody is an operation's request body.
type RequestBody struct {
	Required bool                 `json:"required,omitempty" yaml:"required,omitempty"`
	Content  map[string]MediaType `json:"content" yaml:"content"`
}

// Response is one response entry.
type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType carries a schema reference and an optional example.
type MediaType struct {
	Schema  *SchemaOrRef `json:"schema,omitempty" yaml:"schema,omitempty"`
	Example any          `json:"example,omitempty" yaml:"example,omitempty"`
}

// SchemaOrRef is either a $ref to a component schema or an inline schema.
type SchemaOrRef struct {
	Ref     string `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Default any    `json:"default,omitempty" yaml:"default,omitempty"`
	Maximum *int   `json:"maximum,omitempty" yaml:"maximum,omitempty"`
}

// Components holds named schemas and security schemes.
type Components struct {
	Schemas         map[string]SchemaObject   `json:"schemas" yaml:"schemas"`
	SecuritySchemes map[string]SecurityScheme `json:"securitySchemes" yaml:"securitySchemes"`
}

// SchemaObject is a named component schema built from inferred properties.
type SchemaObject struct {
	Type       string                     `json:"type" yaml:"type"`
	Properties map[string]schema.Property `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// SecurityScheme describes an authentication scheme.
type SecurityScheme struct {
	Type         string `json:"type" yaml:"type"`
	Scheme       string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	BearerFormat string `json:"bearerFormat,omitempty" yaml:"bearerFormat,omitempty"`
}

// Customization is a user's per-API override bundle, consumed read-only.
// When Payload is non-empty it takes precedence over any generated example.
type Customization struct {
	Payload    map[string]any    `json:"payload,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
	Notes      string            `json:"notes,omitempty"`
}

// UseCaseAPI is one suggested API, with endpoints, inside a use case.
type UseCaseAPI struct {
	Name        string             `json:"name"`
	Domain      string             `json:"domain"`
	Description string             `json:"description"`
	Endpoints   []catalog.Endpoint `json:"endpoints"`
	Coverage    []string           `json:"coverage,omitempty"`
	Limitations []string           `json:"limitations,omitempty"`
}

// UseCase is the aggregate synthesis input.
type UseCase struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	APIs        []UseCaseAPI `json:"apis"`
}
