// Package query provides JQ-based querying over the parsed dataset.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// Engine executes JQ expressions against parsed JSON values.
type Engine struct{}

// NewEngine creates a new query engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Result contains the outcome of a JQ query.
type Result struct {
	Values   []any    `json:"values"`           // extracted values
	Errors   []string `json:"errors,omitempty"` // per-item errors (e.g. type mismatch)
	RawCount int      `json:"raw_count"`        // count before deduplication
}

// Query runs a JQ expression against a parsed value. Nil results are skipped;
// deduplication and maxResults bound the output.
func (e *Engine) Query(input any, expression string, deduplicate bool, maxResults int) (*Result, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	result := &Result{
		Values: make([]any, 0),
		Errors: make([]string, 0),
	}

	seen := make(map[string]bool)
	iter := code.Run(normalizeInput(input))

	for {
		v, ok := iter.Next()
		if !ok {
			break
		}

		if err, isErr := v.(error); isErr {
			result.Errors = append(result.Errors, formatJQError(err))
			continue
		}
		if v == nil {
			continue
		}

		result.RawCount++

		if deduplicate {
			key := valueKey(v)
			if seen[key] {
				continue
			}
			seen[key] = true
		}

		result.Values = append(result.Values, v)

		if maxResults > 0 && len(result.Values) >= maxResults {
			break
		}
	}

	return result, nil
}

// ValidateExpression checks a JQ expression without executing it.
func (e *Engine) ValidateExpression(expression string) error {
	query, err := gojq.Parse(expression)
	if err != nil {
		var parseErr *gojq.ParseError
		if errors.As(err, &parseErr) {
			return fmt.Errorf("invalid jq expression at position %d: %w", parseErr.Offset, err)
		}
		return fmt.Errorf("invalid jq expression: %w", err)
	}
	if _, err := gojq.Compile(query); err != nil {
		return fmt.Errorf("failed to compile jq expression: %w", err)
	}
	return nil
}

// normalizeInput rewrites values into the vocabulary gojq accepts. The loader
// preserves number literals as json.Number, which gojq rejects.
func normalizeInput(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return int(i)
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeInput(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeInput(item)
		}
		return out
	default:
		return v
	}
}

// formatJQError decorates runtime JQ errors with hints for common mistakes.
// Runtime errors from gojq are plain errors without typed wrappers, so string
// matching only ever shapes the display message, never control flow.
func formatJQError(err error) string {
	var haltErr *gojq.HaltError
	if errors.As(err, &haltErr) {
		if haltErr.Value() == nil {
			return "query halted"
		}
		return fmt.Sprintf("query halted with: %v", haltErr.Value())
	}

	errStr := err.Error()
	var hint string
	switch {
	case strings.Contains(errStr, "cannot iterate over: null"):
		hint = " (the path may not exist in this dataset)"
	case strings.Contains(errStr, "cannot index") && strings.Contains(errStr, "with"):
		hint = " (field not found or wrong type)"
	case strings.Contains(errStr, "object") && strings.Contains(errStr, "cannot be iterated"):
		hint = " (expected array but got object, try removing '[]')"
	case strings.Contains(errStr, "array") && strings.Contains(errStr, "cannot be indexed"):
		hint = " (expected object but got array, try adding '[]')"
	}
	return errStr + hint
}

// valueKey creates a string key for deduplication.
func valueKey(v any) string {
	switch val := v.(type) {
	case string:
		return "s:" + val
	case float64:
		return fmt.Sprintf("n:%v", val)
	case int:
		return fmt.Sprintf("n:%v", val)
	case bool:
		return fmt.Sprintf("b:%v", val)
	case nil:
		return "null"
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("?:%v", val)
		}
		return "j:" + string(b)
	}
}
