package tools

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timf34/TinderDataAdventures/pkg/schema"
)

// ExportInput is the input for tinder_export_jsonschema.
type ExportInput struct {
	SkipCompileCheck bool `json:"skip_compile_check,omitempty" jsonschema:"Skip the self-consistency compile of the exported schema against the 2020-12 metaschema"`
}

// ExportOutput is the output of tinder_export_jsonschema.
type ExportOutput struct {
	Schema   map[string]any `json:"schema"`
	Compiled bool           `json:"compiled"` // true when the compile check ran and passed
}

// ToolExport infers the dataset schema and exports it as JSON Schema Draft
// 2020-12.
func ToolExport(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ExportInput) (*sdkmcp.CallToolResult, ExportOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ExportInput) (*sdkmcp.CallToolResult, ExportOutput, error) {
		tree, err := schema.Infer(d.Raw)
		if err != nil {
			return nil, ExportOutput{}, ErrDataset("dataset is not a record collection", err)
		}

		exported := schema.ToJSONSchema(tree)
		if !input.SkipCompileCheck {
			if err := schema.CompileCheck(exported); err != nil {
				return nil, ExportOutput{}, ErrDataset("exported schema failed compile check", err)
			}
		}

		raw, err := json.Marshal(exported)
		if err != nil {
			return nil, ExportOutput{}, ErrDataset("marshaling exported schema", err)
		}
		var asMap map[string]any
		if err := json.Unmarshal(raw, &asMap); err != nil {
			return nil, ExportOutput{}, ErrDataset("decoding exported schema", err)
		}

		return nil, ExportOutput{Schema: asMap, Compiled: !input.SkipCompileCheck}, nil
	}
}
