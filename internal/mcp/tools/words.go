package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timf34/TinderDataAdventures/internal/wordfreq"
)

// WordsInput is the input for tinder_word_stats.
type WordsInput struct {
	Top int `json:"top,omitempty" jsonschema:"Tokens returned, most frequent first (default from config)"`
}

// WordsOutput is the output of tinder_word_stats.
type WordsOutput struct {
	Words       []wordfreq.WordStat `json:"words"`
	UniqueWords int                 `json:"unique_words"`
}

// ToolWords reports the most frequent message words across all conversations.
func ToolWords(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input WordsInput) (*sdkmcp.CallToolResult, WordsOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input WordsInput) (*sdkmcp.CallToolResult, WordsOutput, error) {
		top := input.Top
		if top <= 0 {
			top = d.Config.TopWords
		}

		idx := wordfreq.BuildIndex(d.Records)
		return nil, WordsOutput{
			Words:       idx.Top(top),
			UniqueWords: idx.Len(),
		}, nil
	}
}
