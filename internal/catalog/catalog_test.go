package catalog

import (
	"strings"
	"testing"

	"github.com/fincatalog/specforge/internal/classify"
)

func TestRegisterDomainsIdempotent(t *testing.T) {
	cat := NewEmptyCatalog()

	first := cat.RegisterDomains([]DomainCandidate{
		{Name: "Trade Finance", Description: "Trade finance services"},
	})
	second := cat.RegisterDomains([]DomainCandidate{
		{Name: "Trade Finance", Description: "a different description"},
	})

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected one resolved domain per call, got %d and %d", len(first), len(second))
	}
	if first[0] != second[0] {
		t.Error("second call should resolve to the same domain record")
	}
	if len(cat.Domains()) != 1 {
		t.Errorf("catalog should hold exactly one domain, got %d", len(cat.Domains()))
	}
	if first[0].Description != "Trade finance services" {
		t.Error("existing domain must not be mutated by re-registration")
	}
}

func TestRegisterDomainsDefaults(t *testing.T) {
	cat := NewEmptyCatalog()

	resolved := cat.RegisterDomains([]DomainCandidate{
		{Name: "Wealth Advisory", Description: "Advisory services"},
		{Name: "Treasury", Description: "Treasury desk", BusinessArea: "Markets"},
	})

	if got := resolved[0].BusinessAreas; len(got) != 1 || got[0] != "AI-Suggested" {
		t.Errorf("default business area = %v, want [AI-Suggested]", got)
	}
	if got := resolved[1].BusinessAreas; len(got) != 1 || got[0] != "Markets" {
		t.Errorf("explicit business area = %v, want [Markets]", got)
	}
	if got := resolved[0].CommonAPIs; len(got) != 1 || got[0] != "Wealth Advisory API" {
		t.Errorf("placeholder common API = %v, want [Wealth Advisory API]", got)
	}
}

func TestRegisterAPIsSyntheticEndpoints(t *testing.T) {
	cat := NewEmptyCatalog()

	resolved := cat.RegisterAPIs([]APICandidate{
		{Name: "Standing Order API", Domain: "Payment Order", Description: "Standing orders"},
	})

	if len(resolved) != 1 {
		t.Fatalf("expected one template, got %d", len(resolved))
	}
	eps := resolved[0].Endpoints
	if len(eps) != 3 {
		t.Fatalf("expected three synthetic endpoints, got %d", len(eps))
	}

	if eps[0].Path != "/standing-order-api" || eps[0].Method != "POST" || eps[0].Operation != "Initiate" {
		t.Errorf("unexpected first endpoint: %+v", eps[0])
	}
	if eps[1].Path != "/standing-order-api/{id}" || eps[1].Method != "GET" || eps[1].Operation != "Retrieve" {
		t.Errorf("unexpected second endpoint: %+v", eps[1])
	}
	if eps[2].Path != "/standing-order-api/{id}" || eps[2].Method != "PUT" || eps[2].Operation != "Update" {
		t.Errorf("unexpected third endpoint: %+v", eps[2])
	}

	// Re-registration is a no-op returning the existing template.
	again := cat.RegisterAPIs([]APICandidate{
		{Name: "Standing Order API", Domain: "Other", Description: "changed"},
	})
	if again[0] != resolved[0] {
		t.Error("re-registration should resolve to the existing template")
	}
}

func TestSearchDomains(t *testing.T) {
	cat := NewCatalog()

	tests := []struct {
		term      string
		wantMatch string
	}{
		{"payment", "Payment Order"},
		{"PAYMENT", "Payment Order"},
		{"lending", "Consumer Loan"}, // business-area match
		{"compliance", "Fraud Detection"},
		{"mortgage servicing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			results := cat.SearchDomains(tt.term)
			if tt.wantMatch == "" {
				if len(results) != 0 {
					t.Errorf("search %q should match nothing, got %d results", tt.term, len(results))
				}
				return
			}
			for _, d := range results {
				if d.Name == tt.wantMatch {
					return
				}
			}
			t.Errorf("search %q did not return %q", tt.term, tt.wantMatch)
		})
	}
}

func TestDomainByName(t *testing.T) {
	cat := NewCatalog()

	if _, ok := cat.DomainByName("Payment Order"); !ok {
		t.Error("seeded domain should be found")
	}
	if _, ok := cat.DomainByName("Nonexistent"); ok {
		t.Error("unknown domain should report not found")
	}
}

func TestAPIsForDomainsDynamicDiscoverability(t *testing.T) {
	cat := NewEmptyCatalog()
	cat.RegisterDomains([]DomainCandidate{{Name: "Bar", Description: "test domain"}})

	// "Bar" declares only "Bar API" as common; "Foo" is registered
	// afterwards and never listed by any domain.
	cat.RegisterAPIs([]APICandidate{{Name: "Foo", Domain: "Bar", Description: "dynamic API"}})

	entries := cat.APIsForDomains([]string{"Bar"})

	found := false
	for _, e := range entries {
		if strings.HasPrefix(e.Name, "Foo - ") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("dynamically registered API not discoverable; entries: %+v", entries)
	}
}

func TestFlattenEntries(t *testing.T) {
	cat := NewCatalog()
	entries := cat.APIsForDomains([]string{"Payment Order"})

	if len(entries) == 0 {
		t.Fatal("expected flattened entries for Payment Order")
	}

	var initiate *FlattenedAPI
	for i := range entries {
		if entries[i].Name == "Payment Initiation API - Initiate" {
			initiate = &entries[i]
			break
		}
	}
	if initiate == nil {
		t.Fatal("missing 'Payment Initiation API - Initiate' entry")
	}

	if initiate.OperationType != classify.KindCreate {
		t.Errorf("operation type = %v, want %v", initiate.OperationType, classify.KindCreate)
	}
	if initiate.Method != "POST" {
		t.Errorf("method = %q, want POST", initiate.Method)
	}
	if len(initiate.AvailableMethods) != 3 {
		t.Errorf("available methods = %v, want three siblings", initiate.AvailableMethods)
	}
	if initiate.Version != DefaultAPIVersion {
		t.Errorf("version = %q, want %q", initiate.Version, DefaultAPIVersion)
	}

	// Retrieve entry carries its path parameter.
	for _, e := range entries {
		if e.Name == "Payment Initiation API - Retrieve" {
			if len(e.Parameters) != 1 || e.Parameters[0].Name != "payment-order-id" {
				t.Errorf("unexpected parameters: %+v", e.Parameters)
			}
		}
	}
}

func TestTemplatesForDomainsDeduplicates(t *testing.T) {
	cat := NewCatalog()

	// Requesting the same domain twice must not duplicate templates.
	templates := cat.TemplatesForDomains([]string{"Payment Order", "Payment Order"})

	seen := make(map[string]int)
	for _, tpl := range templates {
		seen[tpl.Name]++
	}
	for name, n := range seen {
		if n > 1 {
			t.Errorf("template %q appears %d times", name, n)
		}
	}
}

func TestCloneIsolation(t *testing.T) {
	orig := &APITemplate{
		Name:      "X",
		Endpoints: []Endpoint{{Path: "/x", Method: "GET", Operation: "Retrieve"}},
		Coverage:  []string{"a"},
	}

	c := orig.Clone()
	c.Endpoints = append(c.Endpoints, Endpoint{Path: "/y", Method: "POST", Operation: "Initiate"})
	c.Coverage[0] = "changed"

	if len(orig.Endpoints) != 1 {
		t.Error("clone endpoint append leaked into original")
	}
	if orig.Coverage[0] != "a" {
		t.Error("clone coverage mutation leaked into original")
	}
}
