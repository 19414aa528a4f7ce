// Package render writes schema trees and path registries in human-readable
// form for the CLI.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	gojson "github.com/goccy/go-json"

	"github.com/timf34/TinderDataAdventures/pkg/schema"
)

// Tree writes the schema tree as indented JSON.
func Tree(w io.Writer, tree *schema.Tree) error {
	enc := gojson.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tree)
}

// JSON writes any value as indented JSON. Used for query results and reports
// when CSV output is not requested.
func JSON(w io.Writer, v any) error {
	enc := gojson.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PathTable writes the flat registry as an aligned path / type / examples
// table, one row per normalized path in lexicographic order.
func PathTable(w io.Writer, reg *schema.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "PATH\tTYPE\tEXAMPLES"); err != nil {
		return err
	}
	for _, path := range reg.Paths() {
		entry, _ := reg.Entry(path)
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", path, entry.Type, formatExamples(entry.Samples)); err != nil {
			return err
		}
	}
	return tw.Flush()
}

const maxExampleWidth = 60

func formatExamples(samples []string) string {
	if len(samples) == 0 {
		return "-"
	}
	joined := strings.Join(samples, ", ")
	if len(joined) > maxExampleWidth {
		joined = joined[:maxExampleWidth-3] + "..."
	}
	return joined
}
