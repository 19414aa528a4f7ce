package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	invopop "github.com/invopop/jsonschema"
	tekuri "github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ToJSONSchema converts an inferred tree into a JSON Schema Draft 2020-12
// document. Scalar examples are carried into the schema's examples keyword.
// Fallback type tags (runtime type names from Classify) have no JSON Schema
// equivalent and emit an untyped schema.
func ToJSONSchema(t *Tree) *invopop.Schema {
	if t == nil || t.Root == nil {
		return &invopop.Schema{Version: invopop.Version, Type: "object"}
	}
	s := nodeToJSONSchema(t.Root)
	s.Version = invopop.Version
	return s
}

func nodeToJSONSchema(n *Node) *invopop.Schema {
	switch n.Kind {
	case KindObject:
		s := &invopop.Schema{Type: "object", Properties: invopop.NewProperties()}
		names := make([]string, 0, len(n.Properties))
		for name := range n.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			s.Properties.Set(name, nodeToJSONSchema(n.Properties[name]))
		}
		return s
	case KindArray:
		s := &invopop.Schema{Type: "array"}
		if n.Items != nil {
			s.Items = nodeToJSONSchema(n.Items)
		}
		return s
	default:
		s := &invopop.Schema{}
		if jt, ok := jsonSchemaType(n.Type); ok {
			s.Type = jt
		}
		for _, ex := range n.Examples {
			s.Examples = append(s.Examples, ex)
		}
		return s
	}
}

// jsonSchemaType maps a type tag to its JSON Schema spelling.
func jsonSchemaType(tag TypeTag) (string, bool) {
	switch tag {
	case TypeNull, TypeBoolean, TypeInteger, TypeString:
		return string(tag), true
	case TypeFloat:
		return "number", true
	default:
		return "", false
	}
}

// printer localizes schema compiler error messages.
var printer = message.NewPrinter(language.English)

// CompileCheck compiles an exported schema document against the 2020-12
// metaschema as a self-consistency check on the exporter. It does not
// validate dataset documents.
func CompileCheck(s *invopop.Schema) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("unmarshaling schema: %w", err)
	}

	compiler := tekuri.NewCompiler()
	if err := compiler.AddResource("inferred.json", doc); err != nil {
		return fmt.Errorf("adding schema resource: %w", err)
	}
	if _, err := compiler.Compile("inferred.json"); err != nil {
		if details := compileErrorDetails(err); details != "" {
			return fmt.Errorf("inferred schema does not compile: %s", details)
		}
		return fmt.Errorf("inferred schema does not compile: %w", err)
	}
	return nil
}

// compileErrorDetails extracts localized leaf messages when the compiler
// failure wraps a validation error against the metaschema.
func compileErrorDetails(err error) string {
	var verr *tekuri.ValidationError
	if !errors.As(err, &verr) {
		return ""
	}
	var msgs []string
	collectCauses(verr, &msgs)
	return strings.Join(msgs, "; ")
}

// collectCauses gathers leaf errors (those without causes) from a validation
// error tree.
func collectCauses(err *tekuri.ValidationError, msgs *[]string) {
	if err.ErrorKind != nil && len(err.Causes) == 0 {
		msg := err.ErrorKind.LocalizedString(printer)
		if len(err.InstanceLocation) > 0 {
			msg = "/" + strings.Join(err.InstanceLocation, "/") + ": " + msg
		}
		*msgs = append(*msgs, msg)
	}
	for _, cause := range err.Causes {
		collectCauses(cause, msgs)
	}
}
