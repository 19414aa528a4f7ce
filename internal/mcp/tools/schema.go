package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timf34/TinderDataAdventures/pkg/schema"
)

// SchemaInput is the input for tinder_schema.
type SchemaInput struct {
	Format string `json:"format,omitempty" jsonschema:"Output format: 'tree' (default) nests objects and arrays; 'paths' lists flat normalized paths with types and examples"`
}

// PathEntry is one row of the flat path listing.
type PathEntry struct {
	Path     string   `json:"path"`
	Type     string   `json:"type"`
	Examples []string `json:"examples,omitempty"`
}

// SchemaOutput is the output of tinder_schema.
type SchemaOutput struct {
	Tree      *schema.Tree `json:"tree,omitempty"`
	Paths     []PathEntry  `json:"paths,omitempty"`
	PathCount int          `json:"path_count"`
}

// ToolSchema infers the dataset's schema from one representative record.
func ToolSchema(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SchemaInput) (*sdkmcp.CallToolResult, SchemaOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SchemaInput) (*sdkmcp.CallToolResult, SchemaOutput, error) {
		format := input.Format
		if format == "" {
			format = "tree"
		}
		if format != "tree" && format != "paths" {
			return nil, SchemaOutput{}, ErrInvalidInput("format must be 'tree' or 'paths'")
		}

		doc, err := schema.NewDocument(d.Raw)
		if err != nil {
			return nil, SchemaOutput{}, ErrDataset("dataset is not a record collection", err)
		}

		reg := schema.NewRegistry()
		walker := schema.NewWalker(reg, schema.NewNormalizer(d.Config.SegmentCacheSize))
		if record, ok := doc.Representative(); ok {
			walker.Walk("", record)
		}

		output := SchemaOutput{PathCount: reg.Len()}
		if format == "tree" {
			output.Tree = schema.BuildTree(reg)
			return nil, output, nil
		}

		output.Paths = make([]PathEntry, 0, reg.Len())
		for _, path := range reg.Paths() {
			entry, _ := reg.Entry(path)
			output.Paths = append(output.Paths, PathEntry{
				Path:     path,
				Type:     string(entry.Type),
				Examples: entry.Samples,
			})
		}
		return nil, output, nil
	}
}
