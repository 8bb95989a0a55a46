package openapi

import "fmt"

// Report is the outcome of a structural validation. Findings are data, not
// errors; the caller decides whether to reject the document.
type Report struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

// Validate runs a cheap structural sanity check over a document. It is not
// a certifying OpenAPI validator: it accumulates every failed check and
// never panics.
func Validate(doc *Document) Report {
	var errs []string

	if doc == nil {
		return Report{Valid: false, Errors: []string{"document is nil"}}
	}
	if doc.OpenAPI == "" {
		errs = append(errs, "missing openapi version field")
	}
	if doc.Info.Title == "" {
		errs = append(errs, "missing info.title")
	}
	if doc.Info.Version == "" {
		errs = append(errs, "missing info.version")
	}
	if len(doc.Paths) == 0 {
		errs = append(errs, "document has no paths")
	}
	for path, item := range doc.Paths {
		for method, op := range item {
			if op == nil {
				errs = append(errs, fmt.Sprintf("path %s method %s has no operation object", path, method))
				continue
			}
			if len(op.Responses) == 0 {
				errs = append(errs, fmt.Sprintf("path %s method %s has no responses", path, method))
			}
		}
	}

	return Report{Valid: len(errs) == 0, Errors: errs}
}
