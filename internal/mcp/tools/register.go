package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "tinder_schema",
		Description: "Infer the dataset's schema from one representative record. Returns either a nested tree (format=tree) or a flat list of normalized paths with types and example values (format=paths). Date-keyed maps collapse to a single pattern path like yyyy-mm-dd_1.",
	}, ToolSchema(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "tinder_export_jsonschema",
		Description: "Export the inferred dataset schema as a JSON Schema Draft 2020-12 document, compile-checked against the metaschema unless skip_compile_check is set.",
	}, ToolExport(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "tinder_query",
		Description: "Run a JQ expression against the whole export and return matching values. Supports deduplication and a result cap. Use tinder_schema first to discover paths.",
	}, ToolQuery(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "tinder_repeated_messages",
		Description: "Find outbound messages a user copy-pasted to several matches. Rows are sorted by times used, then message length. min_length filters out short greetings.",
	}, ToolMessages(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "tinder_popularity",
		Description: "Compute per-user aggregate stats: age, account age, totals for matches, messages, likes and passes, conversation counts, and match rate (matches / likes given). Sorted by total matches.",
	}, ToolPopularity(d))

	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "tinder_word_stats",
		Description: "Rank the most frequent words across all conversation messages, with both total occurrences and the number of distinct records each word appears in. Stopwords and tokens under 3 letters are dropped.",
	}, ToolWords(d))
}
