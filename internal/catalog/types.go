package catalog

import "github.com/fincatalog/specforge/internal/classify"

// ServiceDomain is a named business capability area grouping related APIs.
// Domains are immutable once registered.
type ServiceDomain struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	BusinessAreas []string `json:"businessAreas"`
	CommonAPIs    []string `json:"commonApis"`
}

// Endpoint is one (path template, HTTP method, operation verb) triple within
// an API template.
type Endpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Operation   string `json:"operation"`
	Description string `json:"description"`
}

// APITemplate is a reusable definition of one banking capability's
// operations.
type APITemplate struct {
	Name        string     `json:"name"`
	Domain      string     `json:"domain"`
	Description string     `json:"description"`
	Endpoints   []Endpoint `json:"endpoints"`
	Coverage    []string   `json:"coverage,omitempty"`
	Limitations []string   `json:"limitations,omitempty"`
}

// Clone returns a deep copy of the template. Callers that need to mutate a
// template (the AI merge step appends endpoints) must clone first so the
// catalog's registered copy stays untouched.
func (t *APITemplate) Clone() *APITemplate {
	c := *t
	c.Endpoints = append([]Endpoint(nil), t.Endpoints...)
	c.Coverage = append([]string(nil), t.Coverage...)
	c.Limitations = append([]string(nil), t.Limitations...)
	return &c
}

// FlattenedAPI is the per-endpoint, caller-facing projection of an API
// template. It is derived on every request, never stored.
type FlattenedAPI struct {
	Name             string                 `json:"name"`
	Domain           string                 `json:"domain"`
	Description      string                 `json:"description"`
	Version          string                 `json:"version"`
	OperationType    classify.OperationKind `json:"operationType"`
	Endpoint         string                 `json:"endpoint"`
	Method           string                 `json:"method"`
	AvailableMethods []string               `json:"availableMethods"`
	Parameters       []classify.PathParam   `json:"parameters"`
}

// DomainCandidate is the input shape for dynamic domain registration.
type DomainCandidate struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	BusinessArea string `json:"businessArea,omitempty"`
}

// APICandidate is the input shape for dynamic API registration.
type APICandidate struct {
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	Description string `json:"description"`
}
