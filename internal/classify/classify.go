// Package classify maps endpoint operation verbs to operation kinds and
// extracts parameters from templated paths.
package classify

import "strings"

// OperationKind is the four-way classification of an endpoint's verb.
type OperationKind string

const (
	KindCreate            OperationKind = "CREATE"
	KindUpdate            OperationKind = "UPDATE"
	KindRequest           OperationKind = "REQUEST"
	KindBehaviorQualifier OperationKind = "BEHAVIOR_QUALIFIER"
)

// verbKinds is the fixed verb lookup table. Keys are lower-case.
var verbKinds = map[string]OperationKind{
	"register": KindCreate,
	"initiate": KindCreate,
	"create":   KindCreate,
	"open":     KindCreate,
	"add":      KindCreate,

	"update": KindUpdate,
	"modify": KindUpdate,
	"amend":  KindUpdate,

	"retrieve": KindRequest,
	"get":      KindRequest,
	"request":  KindRequest,
	"fetch":    KindRequest,

	"evaluate": KindBehaviorQualifier,
	"execute":  KindBehaviorQualifier,
	"process":  KindBehaviorQualifier,
	"validate": KindBehaviorQualifier,
}

// Classify maps a free-text operation verb to its kind. Unknown verbs
// classify as KindRequest; the function is total.
func Classify(verb string) OperationKind {
	if kind, ok := verbKinds[strings.ToLower(strings.TrimSpace(verb))]; ok {
		return kind
	}
	return KindRequest
}

// PathParam is one parameter extracted from a templated path.
type PathParam struct {
	Name     string `json:"name"`
	In       string `json:"in"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// ExtractPathParams returns every {token} in the path template, in order of
// first appearance. Duplicate tokens are preserved as duplicates; callers
// de-duplicate if they need to.
func ExtractPathParams(pathTemplate string) []PathParam {
	var params []PathParam
	rest := pathTemplate
	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			break
		}
		close := strings.Index(rest[open:], "}")
		if close < 0 {
			break
		}
		name := rest[open+1 : open+close]
		if name != "" {
			params = append(params, PathParam{
				Name:     name,
				In:       "path",
				Type:     "string",
				Required: true,
			})
		}
		rest = rest[open+close+1:]
	}
	return params
}
