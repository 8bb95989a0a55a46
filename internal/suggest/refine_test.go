package suggest

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/fincatalog/specforge/internal/catalog"
)

// completerFunc adapts a function to the Completer interface.
type completerFunc func(ctx context.Context, prompt string) (string, error)

func (f completerFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func baseList() []*catalog.APITemplate {
	return []*catalog.APITemplate{
		{
			Name:        "Payment Initiation API",
			Domain:      "Payment Order",
			Description: "Initiate payment orders",
			Endpoints: []catalog.Endpoint{
				{Path: "/payment-orders", Method: "POST", Operation: "Initiate"},
			},
			Coverage: []string{"SEPA credit transfer"},
		},
	}
}

func TestRefineDegradesOnError(t *testing.T) {
	tests := []struct {
		name      string
		completer Completer
	}{
		{
			name: "transport error",
			completer: completerFunc(func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("connection refused")
			}),
		},
		{
			name: "unparseable response",
			completer: completerFunc(func(ctx context.Context, prompt string) (string, error) {
				return "I recommend using the payment API!", nil
			}),
		},
		{
			name: "wrong JSON shape",
			completer: completerFunc(func(ctx context.Context, prompt string) (string, error) {
				return `{"somethingElse": true}`, nil
			}),
		},
		{
			name: "timeout",
			completer: completerFunc(func(ctx context.Context, prompt string) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := baseList()
			r := NewRefiner(tt.completer, 50*time.Millisecond)

			outcome := r.Refine(context.Background(), base, "settle invoices", []string{"Payment Order"})

			if !outcome.Degraded {
				t.Fatal("expected degraded outcome")
			}
			if outcome.Reason == "" {
				t.Error("degraded outcome should carry a reason")
			}
			if !reflect.DeepEqual(outcome.APIs, base) {
				t.Errorf("degraded outcome must return the base list unchanged, got %+v", outcome.APIs)
			}
		})
	}
}

func TestRefineMergesMatchedRecommendation(t *testing.T) {
	response := `{"recommendedApis": [{
		"name": "Payment Initiation API",
		"additionalEndpoints": [
			{"path": "/payment-orders/{payment-order-id}/cancel", "method": "POST", "operation": "Execute", "description": "Cancel a pending order"}
		],
		"coverage": ["instant payments"],
		"limitations": ["no cross-border"]
	}]}`

	base := baseList()
	r := NewRefiner(completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return response, nil
	}), 0)

	outcome := r.Refine(context.Background(), base, "ctx", []string{"Payment Order"})

	if outcome.Degraded {
		t.Fatalf("unexpected degrade: %s", outcome.Reason)
	}
	if len(outcome.APIs) != 1 {
		t.Fatalf("expected one API, got %d", len(outcome.APIs))
	}

	merged := outcome.APIs[0]
	if len(merged.Endpoints) != 2 {
		t.Errorf("additional endpoint not appended: %+v", merged.Endpoints)
	}
	if len(merged.Coverage) != 1 || merged.Coverage[0] != "instant payments" {
		t.Errorf("coverage should be replaced wholesale, got %v", merged.Coverage)
	}
	if len(merged.Limitations) != 1 || merged.Limitations[0] != "no cross-border" {
		t.Errorf("limitations should be replaced wholesale, got %v", merged.Limitations)
	}

	// The catalog's registered copy must not be touched.
	if len(base[0].Endpoints) != 1 {
		t.Error("merge mutated the base template")
	}
	if base[0].Coverage[0] != "SEPA credit transfer" {
		t.Error("merge mutated base coverage")
	}
}

func TestRefineMatchedWithoutOverridesKeepsBaseFields(t *testing.T) {
	response := `{"recommendedApis": [{"name": "Payment Initiation API"}]}`

	r := NewRefiner(completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return response, nil
	}), 0)

	outcome := r.Refine(context.Background(), baseList(), "ctx", nil)
	if outcome.Degraded {
		t.Fatalf("unexpected degrade: %s", outcome.Reason)
	}
	if got := outcome.APIs[0].Coverage; len(got) != 1 || got[0] != "SEPA credit transfer" {
		t.Errorf("absent coverage must leave base coverage intact, got %v", got)
	}
}

func TestRefinePassesThroughUnmatchedRecommendation(t *testing.T) {
	response := `{"recommendedApis": [
		{"name": "Payment Initiation API"},
		{"name": "Direct Debit API", "domain": "Payment Order", "description": "Manage mandates",
		 "endpoints": [{"path": "/mandates", "method": "POST", "operation": "Initiate", "description": "Create mandate"}]}
	]}`

	r := NewRefiner(completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return response, nil
	}), 0)

	outcome := r.Refine(context.Background(), baseList(), "ctx", nil)
	if outcome.Degraded {
		t.Fatalf("unexpected degrade: %s", outcome.Reason)
	}
	if len(outcome.APIs) != 2 {
		t.Fatalf("expected two APIs, got %d", len(outcome.APIs))
	}
	added := outcome.APIs[1]
	if added.Name != "Direct Debit API" || len(added.Endpoints) != 1 {
		t.Errorf("unmatched recommendation not passed through verbatim: %+v", added)
	}
}

func TestRefineStripsCodeFences(t *testing.T) {
	response := "```json\n{\"recommendedApis\": [{\"name\": \"Payment Initiation API\"}]}\n```"

	r := NewRefiner(completerFunc(func(ctx context.Context, prompt string) (string, error) {
		return response, nil
	}), 0)

	outcome := r.Refine(context.Background(), baseList(), "ctx", nil)
	if outcome.Degraded {
		t.Errorf("fenced JSON should parse, got degrade: %s", outcome.Reason)
	}
}

func TestRefinePromptCarriesContext(t *testing.T) {
	var captured string
	r := NewRefiner(completerFunc(func(ctx context.Context, prompt string) (string, error) {
		captured = prompt
		return "", errors.New("stop here")
	}), 0)

	r.Refine(context.Background(), baseList(), "supplier invoice settlement", []string{"Payment Order", "Account Management"})

	for _, want := range []string{
		"supplier invoice settlement",
		"Payment Order, Account Management",
		"Payment Initiation API",
		"POST /payment-orders",
	} {
		if !strings.Contains(captured, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
