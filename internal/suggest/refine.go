package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fincatalog/specforge/internal/catalog"
)

const defaultTimeout = 30 * time.Second

// Outcome is the tagged result of a refinement. APIs is always usable:
// either the refined list or, when Degraded is set, the base list passed
// in.
type Outcome struct {
	APIs     []*catalog.APITemplate
	Degraded bool
	Reason   string
}

// Refiner merges model-recommended APIs into a catalog-derived base list.
type Refiner struct {
	completer Completer
	timeout   time.Duration
}

// NewRefiner creates a refiner. A zero timeout selects the default.
func NewRefiner(completer Completer, timeout time.Duration) *Refiner {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Refiner{completer: completer, timeout: timeout}
}

// recommendation is one entry of the model's expected JSON output.
type recommendation struct {
	Name                string             `json:"name"`
	Domain              string             `json:"domain"`
	Description         string             `json:"description"`
	Endpoints           []catalog.Endpoint `json:"endpoints"`
	AdditionalEndpoints []catalog.Endpoint `json:"additionalEndpoints"`
	Coverage            []string           `json:"coverage"`
	Limitations         []string           `json:"limitations"`
}

type refineResponse struct {
	RecommendedAPIs []recommendation `json:"recommendedApis"`
}

// Refine asks the completion model to refine the base API list for a use
// case. Matched recommendations extend the base API (endpoints appended,
// coverage and limitations replaced wholesale); unmatched ones pass through
// verbatim. Every failure degrades to the base list; callers never see this
// step fail outright.
func (r *Refiner) Refine(ctx context.Context, base []*catalog.APITemplate, useCaseContext string, domains []string) Outcome {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := r.completer.Complete(ctx, buildPrompt(base, useCaseContext, domains))
	if err != nil {
		log.Printf("suggest: completion failed, using base list: %v", err)
		return Outcome{APIs: base, Degraded: true, Reason: fmt.Sprintf("completion failed: %v", err)}
	}

	var parsed refineResponse
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &parsed); err != nil {
		log.Printf("suggest: response parse failed, using base list: %v", err)
		return Outcome{APIs: base, Degraded: true, Reason: fmt.Sprintf("parse failed: %v", err)}
	}
	if len(parsed.RecommendedAPIs) == 0 {
		log.Printf("suggest: response carried no recommendations, using base list")
		return Outcome{APIs: base, Degraded: true, Reason: "no recommendations in response"}
	}

	return Outcome{APIs: merge(base, parsed.RecommendedAPIs)}
}

// merge applies the recommendation list to the base list. Base templates
// are cloned before mutation; the catalog's registered copies are shared
// and must stay untouched.
func merge(base []*catalog.APITemplate, recs []recommendation) []*catalog.APITemplate {
	byName := make(map[string]int, len(base))
	result := make([]*catalog.APITemplate, len(base))
	for i, t := range base {
		byName[t.Name] = i
		result[i] = t
	}

	for _, rec := range recs {
		if i, ok := byName[rec.Name]; ok {
			t := result[i].Clone()
			t.Endpoints = append(t.Endpoints, rec.AdditionalEndpoints...)
			if rec.Coverage != nil {
				t.Coverage = rec.Coverage
			}
			if rec.Limitations != nil {
				t.Limitations = rec.Limitations
			}
			result[i] = t
			continue
		}

		// Unmatched recommendations are trusted verbatim.
		result = append(result, &catalog.APITemplate{
			Name:        rec.Name,
			Domain:      rec.Domain,
			Description: rec.Description,
			Endpoints:   append(rec.Endpoints, rec.AdditionalEndpoints...),
			Coverage:    rec.Coverage,
			Limitations: rec.Limitations,
		})
	}

	return result
}

// buildPrompt renders the structured refinement prompt.
func buildPrompt(base []*catalog.APITemplate, useCaseContext string, domains []string) string {
	var b strings.Builder
	b.WriteString("You are refining a list of banking API definitions for a use case.\n\n")
	fmt.Fprintf(&b, "Use case: %s\n", useCaseContext)
	fmt.Fprintf(&b, "Service domains: %s\n\n", strings.Join(domains, ", "))

	b.WriteString("Candidate APIs:\n")
	for _, t := range base {
		fmt.Fprintf(&b, "- %s (%s): %s\n", t.Name, t.Domain, t.Description)
		for _, e := range t.Endpoints {
			fmt.Fprintf(&b, "    %s %s (%s)\n", e.Method, e.Path, e.Operation)
		}
	}

	b.WriteString("\nRecommend the APIs best suited to the use case. You may add endpoints ")
	b.WriteString("to a candidate via additionalEndpoints, or propose new APIs. Return ONLY valid JSON:\n")
	b.WriteString(`{"recommendedApis": [{"name": "...", "domain": "...", "description": "...", ` +
		`"additionalEndpoints": [{"path": "...", "method": "...", "operation": "...", "description": "..."}], ` +
		`"coverage": ["..."], "limitations": ["..."]}]}`)
	b.WriteString("\n")

	return b.String()
}
