// Package service orchestrates the catalog, the AI refinement step and the
// OpenAPI synthesizer behind one facade consumed by the web layer and the
// CLI.
package service

import (
	"context"
	"errors"
	"log"

	"github.com/fincatalog/specforge/internal/catalog"
	"github.com/fincatalog/specforge/internal/openapi"
	"github.com/fincatalog/specforge/internal/schema"
	"github.com/fincatalog/specforge/internal/storage"
	"github.com/fincatalog/specforge/internal/suggest"
)

// Refiner is the AI suggestion merge step. Outcomes are always usable;
// degradation is reported, never raised.
type Refiner interface {
	Refine(ctx context.Context, base []*catalog.APITemplate, useCaseContext string, domains []string) suggest.Outcome
}

// CustomizationSource supplies per-user customization records, read-only.
type CustomizationSource interface {
	Get(useCaseID, apiName, userID string) (*storage.CustomizationRecord, error)
}

// Service wires the core components together. Refiner and customizations
// are optional; a nil refiner skips AI refinement, a nil source skips
// customization lookup.
type Service struct {
	catalog        *catalog.Catalog
	refiner        Refiner
	customizations CustomizationSource
}

// New creates a service around an owned catalog.
func New(cat *catalog.Catalog, refiner Refiner, customizations CustomizationSource) *Service {
	return &Service{
		catalog:        cat,
		refiner:        refiner,
		customizations: customizations,
	}
}

// Catalog exposes the underlying registry for callers that register
// domains or templates directly.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Domains lists all registered domains.
func (s *Service) Domains() []*catalog.ServiceDomain {
	return s.catalog.Domains()
}

// SearchDomains searches domains by substring.
func (s *Service) SearchDomains(term string) []*catalog.ServiceDomain {
	return s.catalog.SearchDomains(term)
}

// DomainByName looks up one domain.
func (s *Service) DomainByName(name string) (*catalog.ServiceDomain, bool) {
	return s.catalog.DomainByName(name)
}

// CreateDomains idempotently registers domains.
func (s *Service) CreateDomains(candidates []catalog.DomainCandidate) []*catalog.ServiceDomain {
	return s.catalog.RegisterDomains(candidates)
}

// CreateAPIs idempotently registers API templates.
func (s *Service) CreateAPIs(candidates []catalog.APICandidate) []*catalog.APITemplate {
	return s.catalog.RegisterAPIs(candidates)
}

// APIListing is the caller-facing flattened entry, extended with inferred
// request and response schemas.
type APIListing struct {
	catalog.FlattenedAPI
	RequestSchema  map[string]schema.Property `json:"requestSchema,omitempty"`
	ResponseSchema map[string]schema.Property `json:"responseSchema,omitempty"`
}

// APIListingResult carries the listing plus the refinement outcome tag.
type APIListingResult struct {
	Entries        []APIListing `json:"entries"`
	Refined        bool         `json:"refined"`
	DegradedReason string       `json:"degradedReason,omitempty"`
}

// APIsForDomains resolves candidate APIs for the requested domains,
// optionally refines them against the use-case context, and flattens the
// result. Refinement failures degrade silently to the catalog list.
func (s *Service) APIsForDomains(ctx context.Context, domainNames []string, useCaseContext string) APIListingResult {
	templates := s.catalog.TemplatesForDomains(domainNames)

	result := APIListingResult{}
	if s.refiner != nil && useCaseContext != "" {
		outcome := s.refiner.Refine(ctx, templates, useCaseContext, domainNames)
		templates = outcome.APIs
		result.Refined = !outcome.Degraded
		result.DegradedReason = outcome.Reason
	}

	for _, entry := range catalog.Flatten(templates) {
		req, resp := openapi.ListingSchemas(entry)
		result.Entries = append(result.Entries, APIListing{
			FlattenedAPI:   entry,
			RequestSchema:  req,
			ResponseSchema: resp,
		})
	}
	return result
}

// GenerateSpec synthesizes a single-operation document for one flattened
// entry, folding in the user's stored customization when one exists, then
// validates the result.
func (s *Service) GenerateSpec(api catalog.FlattenedAPI, useCaseID, userID string) (*openapi.Document, openapi.Report) {
	var cust *openapi.Customization
	if s.customizations != nil && useCaseID != "" && userID != "" {
		rec, err := s.customizations.Get(useCaseID, api.Name, userID)
		switch {
		case err == nil:
			cust = &openapi.Customization{
				Payload:    rec.Payload,
				Headers:    rec.Headers,
				Parameters: rec.Parameters,
				Notes:      rec.Notes,
			}
		case errors.Is(err, storage.ErrNotFound):
			// No customization recorded; synthesize with defaults.
		default:
			log.Printf("service: customization lookup failed, continuing without: %v", err)
		}
	}

	doc := openapi.SynthesizeSingle(api, cust)
	return doc, openapi.Validate(doc)
}

// GenerateUseCaseSpec synthesizes the aggregate document for a use case
// and validates it.
func (s *Service) GenerateUseCaseSpec(uc openapi.UseCase) (*openapi.Document, openapi.Report) {
	doc := openapi.SynthesizeAggregate(uc)
	return doc, openapi.Validate(doc)
}
