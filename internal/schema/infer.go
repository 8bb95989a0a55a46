// Package schema infers JSON-Schema-shaped property maps from example
// payloads. The inference is a deliberate heuristic: single pass, first
// array element only, no union types. Callers get a best-effort schema for
// any input; the functions here never fail.
package schema

import "fmt"

// maxDepth bounds the recursion so cyclic or pathologically nested example
// data cannot blow the stack. Anything deeper degrades to a string property.
const maxDepth = 16

// Property is one inferred field schema.
type Property struct {
	Type       string              `json:"type"`
	Example    any                 `json:"example,omitempty"`
	Properties map[string]Property `json:"properties,omitempty"`
	Items      *Property           `json:"items,omitempty"`
}

// InferProperties maps each field of an example object to an inferred
// Property. Only objects are accepted at the top level; nested scalars and
// arrays are handled inside the recursion.
func InferProperties(example map[string]any) map[string]Property {
	return inferObject(example, 0)
}

func inferObject(example map[string]any, depth int) map[string]Property {
	props := make(map[string]Property, len(example))
	for name, value := range example {
		props[name] = inferValue(value, depth+1)
	}
	return props
}

func inferValue(value any, depth int) Property {
	// Past the depth limit the value is not rendered: formatting a cyclic
	// structure would itself recurse forever.
	if depth > maxDepth {
		return Property{Type: "string"}
	}

	switch v := value.(type) {
	case string:
		return Property{Type: "string", Example: v}
	case bool:
		return Property{Type: "boolean", Example: v}
	case float64:
		return Property{Type: "number", Example: v}
	case float32:
		return Property{Type: "number", Example: v}
	case int:
		return Property{Type: "number", Example: v}
	case int32:
		return Property{Type: "number", Example: v}
	case int64:
		return Property{Type: "number", Example: v}
	case []any:
		// Only the first element's type is inspected; heterogeneous arrays
		// are not modeled.
		itemType := "string"
		if len(v) > 0 {
			itemType = inferValue(v[0], depth+1).Type
		}
		return Property{
			Type:    "array",
			Items:   &Property{Type: itemType},
			Example: v,
		}
	case map[string]any:
		return Property{
			Type:       "object",
			Properties: inferObject(v, depth),
			Example:    v,
		}
	case nil:
		return Property{Type: "string", Example: "null"}
	default:
		return Property{Type: "string", Example: fmt.Sprintf("%v", v)}
	}
}
