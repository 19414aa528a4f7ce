package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timf34/TinderDataAdventures/internal/report"
)

// MessagesInput is the input for tinder_repeated_messages.
type MessagesInput struct {
	MinLength int `json:"min_length,omitempty" jsonschema:"Shortest message counted (default from config); filters out 'hey' and friends"`
	Top       int `json:"top,omitempty" jsonschema:"Rows returned, most reused first (default from config)"`
}

// MessagesOutput is the output of tinder_repeated_messages.
type MessagesOutput struct {
	Messages []report.RepeatedMessage `json:"messages"`
	Total    int                      `json:"total"` // rows before the top cut
}

// ToolMessages reports outbound messages each user copy-pasted to multiple
// matches.
func ToolMessages(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input MessagesInput) (*sdkmcp.CallToolResult, MessagesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input MessagesInput) (*sdkmcp.CallToolResult, MessagesOutput, error) {
		opts := report.MessagesOptions{
			MinLength: input.MinLength,
			TopN:      0,
		}
		if opts.MinLength <= 0 {
			opts.MinLength = d.Config.MinMessageLen
		}

		rows := report.RepeatedMessages(d.Records, opts)
		total := len(rows)

		top := input.Top
		if top <= 0 {
			top = d.Config.TopMessages
		}
		if len(rows) > top {
			rows = rows[:top]
		}

		return nil, MessagesOutput{Messages: rows, Total: total}, nil
	}
}
