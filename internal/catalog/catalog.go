// Package catalog holds the in-memory registry of service domains and API
// templates. The registry is an owned, injectable store: construct one per
// process (or per test) and pass it where it is needed.
package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fincatalog/specforge/internal/classify"
)

// DefaultAPIVersion is the version reported on flattened entries.
const DefaultAPIVersion = "1.0.0"

// Catalog is the registry of domains and templates. Registration is
// append-only and guarded by the mutex; reads take the read lock and return
// copies or freshly derived values.
type Catalog struct {
	mu            sync.RWMutex
	domains       []*ServiceDomain
	domainIndex   map[string]*ServiceDomain
	templates     []*APITemplate
	templateIndex map[string]*APITemplate
}

// NewCatalog returns a catalog populated with the seed domains and
// templates.
func NewCatalog() *Catalog {
	c := NewEmptyCatalog()
	for _, d := range seedDomains() {
		c.addDomain(d)
	}
	for _, t := range seedTemplates() {
		c.addTemplate(t)
	}
	return c
}

// NewEmptyCatalog returns a catalog with no entries, for tests and for
// callers that seed their own data.
func NewEmptyCatalog() *Catalog {
	return &Catalog{
		domainIndex:   make(map[string]*ServiceDomain),
		templateIndex: make(map[string]*APITemplate),
	}
}

func (c *Catalog) addDomain(d *ServiceDomain) {
	c.domains = append(c.domains, d)
	c.domainIndex[d.Name] = d
}

func (c *Catalog) addTemplate(t *APITemplate) {
	c.templates = append(c.templates, t)
	c.templateIndex[t.Name] = t
}

// Domains returns all registered domains in insertion order.
func (c *Catalog) Domains() []*ServiceDomain {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*ServiceDomain(nil), c.domains...)
}

// DomainByName looks up a domain by exact name.
func (c *Catalog) DomainByName(name string) (*ServiceDomain, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.domainIndex[name]
	return d, ok
}

// SearchDomains returns domains whose name, description or any business
// area contains the term, case-insensitively.
func (c *Catalog) SearchDomains(term string) []*ServiceDomain {
	term = strings.ToLower(term)

	c.mu.RLock()
	defer c.mu.RUnlock()

	var matches []*ServiceDomain
	for _, d := range c.domains {
		if strings.Contains(strings.ToLower(d.Name), term) ||
			strings.Contains(strings.ToLower(d.Description), term) {
			matches = append(matches, d)
			continue
		}
		for _, area := range d.BusinessAreas {
			if strings.Contains(strings.ToLower(area), term) {
				matches = append(matches, d)
				break
			}
		}
	}
	return matches
}

// RegisterDomains resolves each candidate to a domain: the existing one if
// the name is already registered, otherwise a freshly created one. Calling
// it repeatedly with overlapping input is safe; no duplicates are created
// and existing domains are never mutated.
func (c *Catalog) RegisterDomains(candidates []DomainCandidate) []*ServiceDomain {
	c.mu.Lock()
	defer c.mu.Unlock()

	resolved := make([]*ServiceDomain, 0, len(candidates))
	for _, cand := range candidates {
		if existing, ok := c.domainIndex[cand.Name]; ok {
			resolved = append(resolved, existing)
			continue
		}
		area := cand.BusinessArea
		if area == "" {
			area = "AI-Suggested"
		}
		d := &ServiceDomain{
			Name:          cand.Name,
			Description:   cand.Description,
			BusinessAreas: []string{area},
			CommonAPIs:    []string{cand.Name + " API"},
		}
		c.addDomain(d)
		resolved = append(resolved, d)
	}
	return resolved
}

// RegisterAPIs resolves each candidate to a template with the same
// dedupe-by-name semantics as RegisterDomains. New templates are seeded
// with three synthetic endpoints derived from the API name.
func (c *Catalog) RegisterAPIs(candidates []APICandidate) []*APITemplate {
	c.mu.Lock()
	defer c.mu.Unlock()

	resolved := make([]*APITemplate, 0, len(candidates))
	for _, cand := range candidates {
		if existing, ok := c.templateIndex[cand.Name]; ok {
			resolved = append(resolved, existing)
			continue
		}
		base := "/" + strings.ReplaceAll(strings.ToLower(cand.Name), " ", "-")
		t := &APITemplate{
			Name:        cand.Name,
			Domain:      cand.Domain,
			Description: cand.Description,
			Endpoints: []Endpoint{
				{Path: base, Method: "POST", Operation: "Initiate", Description: fmt.Sprintf("Initiate a %s request", cand.Name)},
				{Path: base + "/{id}", Method: "GET", Operation: "Retrieve", Description: fmt.Sprintf("Retrieve a %s record", cand.Name)},
				{Path: base + "/{id}", Method: "PUT", Operation: "Update", Description: fmt.Sprintf("Update a %s record", cand.Name)},
			},
		}
		c.addTemplate(t)
		resolved = append(resolved, t)
	}
	return resolved
}

// TemplateByName looks up a template by exact name.
func (c *Catalog) TemplateByName(name string) (*APITemplate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.templateIndex[name]
	return t, ok
}

// TemplatesForDomains resolves the templates relevant to a set of domains.
// Two passes: first the common APIs each requested domain declares, then a
// full registry scan for templates owned by a requested domain that no
// domain lists as common. The second pass is what makes dynamically
// registered templates discoverable.
func (c *Catalog) TemplatesForDomains(domainNames []string) []*APITemplate {
	requested := make(map[string]bool, len(domainNames))
	for _, name := range domainNames {
		requested[name] = true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var result []*APITemplate

	for _, name := range domainNames {
		d, ok := c.domainIndex[name]
		if !ok {
			continue
		}
		for _, apiName := range d.CommonAPIs {
			t, ok := c.templateIndex[apiName]
			if !ok || seen[t.Name] {
				continue
			}
			seen[t.Name] = true
			result = append(result, t)
		}
	}

	for _, t := range c.templates {
		if requested[t.Domain] && !seen[t.Name] {
			seen[t.Name] = true
			result = append(result, t)
		}
	}

	return result
}

// Flatten projects templates to one FlattenedAPI per (template, endpoint)
// pair. Derived fresh on every call so catalog mutations are immediately
// visible.
func Flatten(templates []*APITemplate) []FlattenedAPI {
	var entries []FlattenedAPI
	for _, t := range templates {
		methods := make([]string, 0, len(t.Endpoints))
		for _, e := range t.Endpoints {
			methods = append(methods, e.Method)
		}
		for _, e := range t.Endpoints {
			entries = append(entries, FlattenedAPI{
				Name:             fmt.Sprintf("%s - %s", t.Name, e.Operation),
				Domain:           t.Domain,
				Description:      e.Description,
				Version:          DefaultAPIVersion,
				OperationType:    classify.Classify(e.Operation),
				Endpoint:         e.Path,
				Method:           e.Method,
				AvailableMethods: methods,
				Parameters:       classify.ExtractPathParams(e.Path),
			})
		}
	}
	return entries
}

// APIsForDomains resolves and flattens in one step.
func (c *Catalog) APIsForDomains(domainNames []string) []FlattenedAPI {
	return Flatten(c.TemplatesForDomains(domainNames))
}
