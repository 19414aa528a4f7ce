package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timf34/TinderDataAdventures/internal/report"
)

// PopularityInput is the input for tinder_popularity.
type PopularityInput struct {
	Top int `json:"top,omitempty" jsonschema:"Users returned, most matched first (default: all)"`
}

// PopularityOutput is the output of tinder_popularity.
type PopularityOutput struct {
	Users []report.UserStats `json:"users"`
	Total int                `json:"total"` // users in the dataset
}

// ToolPopularity computes per-user aggregate stats across the export.
func ToolPopularity(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input PopularityInput) (*sdkmcp.CallToolResult, PopularityOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input PopularityInput) (*sdkmcp.CallToolResult, PopularityOutput, error) {
		stats, err := report.Popularity(ctx, d.Records, report.PopularityOptions{
			Workers: d.Config.Workers,
		})
		if err != nil {
			return nil, PopularityOutput{}, ErrDataset("computing popularity stats", err)
		}

		total := len(stats)
		if input.Top > 0 && len(stats) > input.Top {
			stats = stats[:input.Top]
		}

		return nil, PopularityOutput{Users: stats, Total: total}, nil
	}
}
