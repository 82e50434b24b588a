package logger

import (
	"encoding/json"
	stderrs "errors"
	"fmt"

	"github.com/pkg/errors"
)

// errorDetails is the structural projection of an error chain. Without it,
// errors would JSON-serialize as "{}" and lose their message and stack.
type errorDetails struct {
	Name    string        `json:"name"`
	Message string        `json:"message"`
	Stack   string        `json:"stack,omitempty"`
	Cause   *errorDetails `json:"cause,omitempty"`
}

// stackTracer is the pkg/errors contract for stack-carrying errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Normalize converts an arbitrary logged value into a value a text-oriented
// sink can emit. Strings, booleans, and numeric values pass through
// unchanged. Errors become single-line JSON of their projected chain
// (name, message, stack, nested cause). Any other structured value becomes
// single-line JSON. Normalize never panics: values that cannot be
// serialized fall back to their default string form.
func Normalize(v any) any {
	switch v := v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return v
	case error:
		return marshalString(projectError(v))
	default:
		return marshalString(toRenderable(v, 0))
	}
}

// projectError walks err's unwrap chain and returns its structural form.
// Depth is capped so a cyclic Unwrap cannot recurse unboundedly. Wrapper
// layers whose message repeats the inner one are kept: pkg/errors stacks
// its withStack/withMessage layers that way.
func projectError(err error) *errorDetails {
	const maxDepth = 50

	var head, tail *errorDetails
	for depth := 0; err != nil && depth < maxDepth; depth++ {
		d := &errorDetails{
			Name:    fmt.Sprintf("%T", err),
			Message: err.Error(),
			Stack:   errorStack(err),
		}
		if head == nil {
			head = d
		} else {
			tail.Cause = d
		}
		tail = d
		err = stderrs.Unwrap(err)
	}
	return head
}

// errorStack renders the stack of a pkg/errors-style stack carrier, or ""
// for errors that do not carry one.
func errorStack(err error) string {
	st, ok := err.(stackTracer)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%+v", st.StackTrace())
}

// toRenderable recursively rewrites a structured value so embedded errors
// survive JSON serialization instead of collapsing to "{}".
func toRenderable(v any, depth int) any {
	const maxDepth = 10
	if depth > maxDepth {
		return v
	}
	switch v := v.(type) {
	case error:
		return projectError(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = toRenderable(e, depth+1)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = toRenderable(e, depth+1)
		}
		return out
	default:
		return v
	}
}

func marshalString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// renderToken renders a single log argument for a text sink.
func renderToken(v any) string {
	n := Normalize(v)
	if s, ok := n.(string); ok {
		return s
	}
	return fmt.Sprint(n)
}
