package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// QueryInput is the input for tinder_query.
type QueryInput struct {
	Expression  string `json:"expression" jsonschema:"JQ expression evaluated against the whole export, e.g. '.[].conversations[].messages[].message'"`
	Deduplicate bool   `json:"deduplicate,omitempty" jsonschema:"Drop duplicate values from the result"`
	MaxResults  int    `json:"max_results,omitempty" jsonschema:"Cap on returned values (default from config)"`
}

// QueryOutput is the output of tinder_query.
type QueryOutput struct {
	Values   []any    `json:"values"`
	Errors   []string `json:"errors,omitempty"`
	RawCount int      `json:"raw_count"`
}

// ToolQuery runs a JQ expression over the parsed export.
func ToolQuery(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input QueryInput) (*sdkmcp.CallToolResult, QueryOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input QueryInput) (*sdkmcp.CallToolResult, QueryOutput, error) {
		if input.Expression == "" {
			return nil, QueryOutput{}, ErrInvalidInput("expression is required")
		}

		maxResults := input.MaxResults
		if maxResults <= 0 {
			maxResults = d.Config.QueryLimit
		}

		result, err := d.Query.Query(d.Raw, input.Expression, input.Deduplicate, maxResults)
		if err != nil {
			return nil, QueryOutput{}, ErrInvalidInput(err.Error())
		}

		return nil, QueryOutput{
			Values:   result.Values,
			Errors:   result.Errors,
			RawCount: result.RawCount,
		}, nil
	}
}
