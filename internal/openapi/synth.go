package openapi

import (
	"fmt"
	"strings"

	"github.com/fincatalog/specforge/internal/catalog"
	"github.com/fincatalog/specforge/internal/classify"
	"github.com/fincatalog/specforge/internal/schema"
)

const (
	openAPIVersion  = "3.0.0"
	documentVersion = "1.0.0"
	jsonMediaType   = "application/json"
)

var standardServers = []Server{
	{URL: "https://api.bank.example.com/v1", Description: "Production"},
	{URL: "https://sandbox.api.bank.example.com/v1", Description: "Sandbox"},
}

// SynthesizeSingle produces a document for exactly one (API, endpoint)
// pair, folding in the caller's customization when present.
func SynthesizeSingle(api catalog.FlattenedAPI, cust *Customization) *Document {
	doc := &Document{
		OpenAPI: openAPIVersion,
		Info: Info{
			Title:       fmt.Sprintf("%s API", api.Name),
			Description: api.Description,
			Version:     documentVersion,
		},
		Paths: map[string]PathItem{},
		Components: Components{
			Schemas:         map[string]SchemaObject{},
			SecuritySchemes: securitySchemes(),
		},
	}

	op, reqExample := buildOperation(api.Name, api.Domain, api.Description, api.Method, api.Parameters, cust)
	op.Tags = []string{api.Domain}
	doc.Paths[api.Endpoint] = PathItem{strings.ToLower(api.Method): op}

	addSchemas(doc, api.Name, api.Method, reqExample, cannedExampleFor(api.Name, api.Domain))
	return doc
}

// SynthesizeAggregate produces one document covering every (API, endpoint)
// pair of a use case. Aggregate mode is customization-agnostic.
func SynthesizeAggregate(uc UseCase) *Document {
	doc := &Document{
		OpenAPI: openAPIVersion,
		Info: Info{
			Title:       fmt.Sprintf("%s API Specification", uc.Name),
			Description: uc.Description,
			Version:     documentVersion,
		},
		Servers: standardServers,
		Paths:   map[string]PathItem{},
		Components: Components{
			Schemas:         map[string]SchemaObject{},
			SecuritySchemes: securitySchemes(),
		},
	}

	seenDomains := make(map[string]bool)
	for _, api := range uc.APIs {
		if api.Domain != "" && !seenDomains[api.Domain] {
			seenDomains[api.Domain] = true
			doc.Tags = append(doc.Tags, Tag{
				Name:        api.Domain,
				Description: fmt.Sprintf("%s operations", api.Domain),
			})
		}

		for _, e := range api.Endpoints {
			displayName := fmt.Sprintf("%s - %s", api.Name, e.Operation)
			params := classify.ExtractPathParams(e.Path)

			op, reqExample := buildOperation(displayName, api.Domain, e.Description, e.Method, params, nil)
			op.Tags = []string{api.Domain}

			item, ok := doc.Paths[e.Path]
			if !ok {
				item = PathItem{}
				doc.Paths[e.Path] = item
			}
			item[strings.ToLower(e.Method)] = op

			addSchemas(doc, displayName, e.Method, reqExample, cannedExampleFor(api.Name, api.Domain))
		}
	}

	return doc
}

// buildOperation assembles an operation for one method, returning the
// resolved request example (nil for bodyless methods).
func buildOperation(displayName, domain, description, method string, pathParams []classify.PathParam, cust *Customization) (*Operation, map[string]any) {
	normalized := normalizeName(displayName)
	method = strings.ToUpper(method)

	op := &Operation{
		Summary:     displayName,
		Description: description,
		OperationID: strings.ToLower(method) + normalized,
		Responses:   standardResponses(normalized),
		Security:    []map[string][]string{{"bearerAuth": {}}},
	}

	for _, p := range pathParams {
		op.Parameters = append(op.Parameters, Parameter{
			Name:     p.Name,
			In:       "path",
			Required: true,
			Schema:   &SchemaOrRef{Type: "string"},
		})
	}

	if method == "GET" {
		maxLimit := 100
		op.Parameters = append(op.Parameters,
			Parameter{
				Name:        "limit",
				In:          "query",
				Description: "Maximum number of results to return",
				Schema:      &SchemaOrRef{Type: "integer", Default: 10, Maximum: &maxLimit},
			},
			Parameter{
				Name:        "offset",
				In:          "query",
				Description: "Number of results to skip",
				Schema:      &SchemaOrRef{Type: "integer", Default: 0},
			},
		)
	}

	var reqExample map[string]any
	if method == "POST" || method == "PUT" || method == "PATCH" {
		reqExample = resolveExample(displayName, domain, cust)
		op.RequestBody = &RequestBody{
			Required: true,
			Content: map[string]MediaType{
				jsonMediaType: {
					Schema:  &SchemaOrRef{Ref: schemaRef(normalized + "Request")},
					Example: reqExample,
				},
			},
		}
	}

	if cust != nil {
		for name, example := range cust.Headers {
			op.Parameters = append(op.Parameters, Parameter{
				Name:    name,
				In:      "header",
				Schema:  &SchemaOrRef{Type: "string"},
				Example: example,
			})
		}
		for name, example := range cust.Parameters {
			op.Parameters = append(op.Parameters, Parameter{
				Name:    name,
				In:      "query",
				Schema:  &SchemaOrRef{Type: "string"},
				Example: example,
			})
		}
	}

	return op, reqExample
}

// resolveExample applies the example precedence: custom payload, then the
// domain-keyword canned table, then the generic fallback.
func resolveExample(displayName, domain string, cust *Customization) map[string]any {
	if cust != nil && len(cust.Payload) > 0 {
		return cust.Payload
	}
	return cannedExampleFor(displayName, domain)
}

// addSchemas registers the request (body methods only), response and shared
// error schemas for one operation.
func addSchemas(doc *Document, displayName, method string, reqExample, cannedExample map[string]any) {
	normalized := normalizeName(displayName)

	if reqExample != nil {
		doc.Components.Schemas[normalized+"Request"] = SchemaObject{
			Type:       "object",
			Properties: schema.InferProperties(reqExample),
		}
	}

	base := reqExample
	if base == nil {
		base = cannedExample
	}
	doc.Components.Schemas[normalized+"Response"] = SchemaObject{
		Type:       "object",
		Properties: schema.InferProperties(responseExample(base)),
	}

	if _, ok := doc.Components.Schemas["ErrorResponse"]; !ok {
		doc.Components.Schemas["ErrorResponse"] = errorResponseSchema()
	}
}

// responseExample derives a representative response payload from a request
// or canned payload.
func responseExample(base map[string]any) map[string]any {
	resp := map[string]any{
		"id":          "9c41f2aa-5ed1-4c7e-9b35-2f8d0a6e7c11",
		"status":      "ACTIVE",
		"lastUpdated": "2025-01-15T10:30:00Z",
	}
	for k, v := range base {
		resp[k] = v
	}
	return resp
}

func standardResponses(normalized string) map[string]Response {
	errRef := &SchemaOrRef{Ref: schemaRef("ErrorResponse")}
	return map[string]Response{
		"200": {
			Description: "Successful operation",
			Content: map[string]MediaType{
				jsonMediaType: {Schema: &SchemaOrRef{Ref: schemaRef(normalized + "Response")}},
			},
		},
		"400": {Description: "Bad request", Content: map[string]MediaType{jsonMediaType: {Schema: errRef}}},
		"401": {Description: "Unauthorized", Content: map[string]MediaType{jsonMediaType: {Schema: errRef}}},
		"404": {Description: "Not found", Content: map[string]MediaType{jsonMediaType: {Schema: errRef}}},
		"500": {Description: "Internal server error", Content: map[string]MediaType{jsonMediaType: {Schema: errRef}}},
	}
}

func errorResponseSchema() SchemaObject {
	return SchemaObject{
		Type: "object",
		Properties: map[string]schema.Property{
			"success": {Type: "boolean", Example: false},
			"error": {
				Type: "object",
				Properties: map[string]schema.Property{
					"code":    {Type: "string", Example: "VALIDATION_ERROR"},
					"message": {Type: "string", Example: "The request could not be processed"},
					"details": {Type: "array", Items: &schema.Property{Type: "string"}},
				},
			},
			"timestamp": {Type: "string", Example: "2025-01-15T10:30:00Z"},
		},
	}
}

func securitySchemes() map[string]SecurityScheme {
	return map[string]SecurityScheme{
		"bearerAuth": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}
}

// normalizeName strips whitespace to form schema and operation
// identifiers. Two display names that normalize alike collide within one
// document; that matches the upstream behavior and is documented rather
// than fixed.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), "")
}

func schemaRef(name string) string {
	return "#/components/schemas/" + name
}

// ListingSchemas derives the request and response property maps advertised
// on a flattened catalog entry. Bodyless methods have no request schema.
func ListingSchemas(api catalog.FlattenedAPI) (req, resp map[string]schema.Property) {
	example := cannedExampleFor(api.Name, api.Domain)

	method := strings.ToUpper(api.Method)
	if method == "POST" || method == "PUT" || method == "PATCH" {
		req = schema.InferProperties(example)
	}
	resp = schema.InferProperties(responseExample(example))
	return req, resp
}
