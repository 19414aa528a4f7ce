// Command tda analyzes a Tinder data export: schema inference, JSON Schema
// export, JQ queries, and the messages, popularity, and word-frequency
// reports. It also serves the same analyses over MCP on stdio.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/timf34/TinderDataAdventures/internal/config"
	"github.com/timf34/TinderDataAdventures/internal/dataset"
	"github.com/timf34/TinderDataAdventures/internal/logging"
	"github.com/timf34/TinderDataAdventures/internal/mcp"
	"github.com/timf34/TinderDataAdventures/internal/mcp/tools"
	"github.com/timf34/TinderDataAdventures/internal/query"
	"github.com/timf34/TinderDataAdventures/internal/render"
	"github.com/timf34/TinderDataAdventures/internal/report"
	"github.com/timf34/TinderDataAdventures/internal/wordfreq"
	"github.com/timf34/TinderDataAdventures/pkg/schema"
)

const usage = `Usage: tda <command> [flags]

Commands:
  schema      Infer and print the dataset schema
  export      Export the inferred schema as JSON Schema Draft 2020-12
  query       Run a JQ expression against the dataset
  messages    Report messages copy-pasted to multiple matches
  popularity  Report per-user activity stats
  words       Report the most frequent conversation words
  mcp         Serve the analyses over MCP on stdio

Configuration comes from TDA_* environment variables (see internal/config);
-data overrides TDA_DATA_PATH per invocation.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	closeLog, err := logging.Init(logging.Options{
		Level:    cfg.LogLevel,
		File:     cfg.LogFile,
		MaxSize:  cfg.LogMaxSizeMB,
		Backups:  cfg.LogMaxBackups,
		MaxAge:   cfg.LogMaxAgeDays,
		Compress: cfg.LogCompress,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging setup:", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(ctx, cfg, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		slog.Error("command failed", "command", os.Args[1], "error", err)
		fmt.Fprintln(os.Stderr, "tda:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, command string, args []string) error {
	switch command {
	case "schema":
		return runSchema(cfg, args)
	case "export":
		return runExport(cfg, args)
	case "query":
		return runQuery(cfg, args)
	case "messages":
		return runMessages(cfg, args)
	case "popularity":
		return runPopularity(ctx, cfg, args)
	case "words":
		return runWords(cfg, args)
	case "mcp":
		return runMCP(ctx, cfg, args)
	case "-h", "--help", "help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// dataFlag adds the shared -data flag to a subcommand's flag set.
func dataFlag(fs *flag.FlagSet, cfg *config.Config) *string {
	return fs.String("data", cfg.DataPath, "path to the export file (.json, .yaml)")
}

func runSchema(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	dataPath := dataFlag(fs, cfg)
	format := fs.String("format", "tree", "output format: tree or paths")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := dataset.LoadRaw(*dataPath)
	if err != nil {
		return err
	}

	doc, err := schema.NewDocument(raw)
	if err != nil {
		return err
	}
	reg := schema.NewRegistry()
	walker := schema.NewWalker(reg, schema.NewNormalizer(cfg.SegmentCacheSize))
	if record, ok := doc.Representative(); ok {
		walker.Walk("", record)
	}

	switch *format {
	case "tree":
		return render.Tree(os.Stdout, schema.BuildTree(reg))
	case "paths":
		return render.PathTable(os.Stdout, reg)
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func runExport(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	dataPath := dataFlag(fs, cfg)
	skipCheck := fs.Bool("skip-compile-check", false, "skip the metaschema compile check")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := dataset.LoadRaw(*dataPath)
	if err != nil {
		return err
	}
	tree, err := schema.Infer(raw)
	if err != nil {
		return err
	}

	exported := schema.ToJSONSchema(tree)
	if !*skipCheck {
		if err := schema.CompileCheck(exported); err != nil {
			return err
		}
	}
	return render.JSON(os.Stdout, exported)
}

func runQuery(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	dataPath := dataFlag(fs, cfg)
	dedupe := fs.Bool("dedupe", false, "drop duplicate values")
	max := fs.Int("max", cfg.QueryLimit, "cap on returned values, 0 for no cap")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("query needs exactly one JQ expression argument")
	}

	raw, err := dataset.LoadRaw(*dataPath)
	if err != nil {
		return err
	}

	result, err := query.NewEngine().Query(raw, fs.Arg(0), *dedupe, *max)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		slog.Warn("query item error", "detail", msg)
	}
	return render.JSON(os.Stdout, result.Values)
}

func runMessages(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("messages", flag.ExitOnError)
	dataPath := dataFlag(fs, cfg)
	minLen := fs.Int("min-length", cfg.MinMessageLen, "shortest message counted")
	top := fs.Int("top", cfg.TopMessages, "rows kept, 0 for all")
	asJSON := fs.Bool("json", false, "emit JSON instead of CSV")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := dataset.LoadExport(*dataPath)
	if err != nil {
		return err
	}
	rows := report.RepeatedMessages(records, report.MessagesOptions{
		MinLength: *minLen,
		TopN:      *top,
	})
	if *asJSON {
		return render.JSON(os.Stdout, rows)
	}
	return report.WriteMessagesCSV(os.Stdout, rows)
}

func runPopularity(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("popularity", flag.ExitOnError)
	dataPath := dataFlag(fs, cfg)
	asJSON := fs.Bool("json", false, "emit JSON instead of CSV")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := dataset.LoadExport(*dataPath)
	if err != nil {
		return err
	}
	stats, err := report.Popularity(ctx, records, report.PopularityOptions{Workers: cfg.Workers})
	if err != nil {
		return err
	}
	if *asJSON {
		return render.JSON(os.Stdout, stats)
	}
	return report.WritePopularityCSV(os.Stdout, stats)
}

func runWords(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("words", flag.ExitOnError)
	dataPath := dataFlag(fs, cfg)
	top := fs.Int("top", cfg.TopWords, "tokens kept, 0 for all")
	if err := fs.Parse(args); err != nil {
		return err
	}

	records, err := dataset.LoadExport(*dataPath)
	if err != nil {
		return err
	}
	idx := wordfreq.BuildIndex(records)
	return render.JSON(os.Stdout, idx.Top(*top))
}

func runMCP(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	dataPath := dataFlag(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := dataset.LoadRaw(*dataPath)
	if err != nil {
		return err
	}
	records, err := dataset.LoadExport(*dataPath)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&tools.Deps{
		Config:  cfg,
		Raw:     raw,
		Records: records,
		Query:   query.NewEngine(),
	})
	if err != nil {
		return err
	}

	slog.Info("starting MCP server on stdio", "data", *dataPath, "records", len(records))
	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("server stopped")
	return nil
}
