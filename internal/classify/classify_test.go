package classify

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		verb string
		want OperationKind
	}{
		{"Register", KindCreate},
		{"Initiate", KindCreate},
		{"create", KindCreate},
		{"Update", KindUpdate},
		{"modify", KindUpdate},
		{"Retrieve", KindRequest},
		{"Get", KindRequest},
		{"Request", KindRequest},
		{"Evaluate", KindBehaviorQualifier},
		{"Execute", KindBehaviorQualifier},
		{"process", KindBehaviorQualifier},
		{"Bespoke", KindRequest},  // unknown verb defaults safely
		{"", KindRequest},
		{"  Retrieve  ", KindRequest},
		{"RETRIEVE", KindRequest},
	}

	for _, tt := range tests {
		t.Run(tt.verb, func(t *testing.T) {
			if got := Classify(tt.verb); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.verb, got, tt.want)
			}
		})
	}
}

func TestExtractPathParams(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{
			name: "two parameters in order",
			path: "/loan/{loan-id}/payments/{payment-id}",
			want: []string{"loan-id", "payment-id"},
		},
		{
			name: "no parameters",
			path: "/accounts",
			want: nil,
		},
		{
			name: "single parameter",
			path: "/customers/{customer-id}",
			want: []string{"customer-id"},
		},
		{
			name: "duplicate tokens are preserved",
			path: "/a/{id}/b/{id}",
			want: []string{"id", "id"},
		},
		{
			name: "unclosed brace yields nothing",
			path: "/a/{id",
			want: nil,
		},
		{
			name: "empty braces are skipped",
			path: "/a/{}/b/{x}",
			want: []string{"x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := ExtractPathParams(tt.path)
			if len(params) != len(tt.want) {
				t.Fatalf("got %d params, want %d", len(params), len(tt.want))
			}
			for i, p := range params {
				if p.Name != tt.want[i] {
					t.Errorf("param %d = %q, want %q", i, p.Name, tt.want[i])
				}
				if p.Type != "string" {
					t.Errorf("param %d type = %q, want string", i, p.Type)
				}
				if !p.Required {
					t.Errorf("param %d should be required", i)
				}
				if p.In != "path" {
					t.Errorf("param %d in = %q, want path", i, p.In)
				}
			}
		})
	}
}
