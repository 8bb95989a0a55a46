package openapi

import (
	"strings"
	"testing"
)

func validDoc() *Document {
	return &Document{
		OpenAPI: "3.0.0",
		Info:    Info{Title: "T", Version: "1.0.0"},
		Paths: map[string]PathItem{
			"/x": {"get": &Operation{Responses: map[string]Response{"200": {Description: "ok"}}}},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Document)
		wantValid  bool
		wantErrors []string
	}{
		{
			name:      "well formed",
			mutate:    func(d *Document) {},
			wantValid: true,
		},
		{
			name:       "missing version",
			mutate:     func(d *Document) { d.OpenAPI = "" },
			wantErrors: []string{"openapi version"},
		},
		{
			name:       "missing title",
			mutate:     func(d *Document) { d.Info.Title = "" },
			wantErrors: []string{"info.title"},
		},
		{
			name:       "missing info version",
			mutate:     func(d *Document) { d.Info.Version = "" },
			wantErrors: []string{"info.version"},
		},
		{
			name:       "no paths",
			mutate:     func(d *Document) { d.Paths = nil },
			wantErrors: []string{"no paths"},
		},
		{
			name: "operation without responses",
			mutate: func(d *Document) {
				d.Paths["/x"]["get"].Responses = nil
			},
			wantErrors: []string{"no responses"},
		},
		{
			name: "all failures accumulate",
			mutate: func(d *Document) {
				d.OpenAPI = ""
				d.Info.Title = ""
				d.Info.Version = ""
				d.Paths["/x"]["get"].Responses = nil
			},
			wantErrors: []string{"openapi version", "info.title", "info.version", "no responses"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDoc()
			tt.mutate(doc)

			report := Validate(doc)
			if report.Valid != tt.wantValid {
				t.Errorf("valid = %v, want %v (errors: %v)", report.Valid, tt.wantValid, report.Errors)
			}
			for _, want := range tt.wantErrors {
				found := false
				for _, e := range report.Errors {
					if strings.Contains(e, want) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected an error containing %q, got %v", want, report.Errors)
				}
			}
		})
	}
}

func TestValidateNilDocument(t *testing.T) {
	report := Validate(nil)
	if report.Valid {
		t.Error("nil document should be invalid")
	}
	if len(report.Errors) == 0 {
		t.Error("nil document should report an error")
	}
}
