// Package schema infers a structural schema from an undocumented JSON value.
// It walks a single representative record, collapses volatile (date-like) map
// keys into stable path tokens, collects bounded example values per field, and
// rebuilds the result as a nested schema tree.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// TypeTag identifies the semantic type of a JSON value.
type TypeTag string

// Known type tags. Values that do not match any JSON shape fall back to a tag
// carrying the Go type name; see Classify.
const (
	TypeNull    TypeTag = "null"
	TypeBoolean TypeTag = "boolean"
	TypeInteger TypeTag = "integer"
	TypeFloat   TypeTag = "float"
	TypeString  TypeTag = "string"
	TypeArray   TypeTag = "array"
	TypeObject  TypeTag = "object"
)

// Classify maps a decoded JSON value to its type tag. It is total over all
// JSON-representable values and never fails: anything unrecognized yields a
// tag carrying the runtime type name.
//
// Booleans are matched before numeric kinds. The distinction matters for
// decoders that can surface booleans as numeric values; the check order is
// part of the contract.
func Classify(v any) TypeTag {
	if v == nil {
		return TypeNull
	}
	switch val := v.(type) {
	case bool:
		return TypeBoolean
	case json.Number:
		if _, err := val.Int64(); err == nil {
			return TypeInteger
		}
		return TypeFloat
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return TypeInteger
	case float64:
		return classifyFloat(val)
	case float32:
		return classifyFloat(float64(val))
	case string:
		return TypeString
	case []any:
		return TypeArray
	case map[string]any:
		return TypeObject
	default:
		return TypeTag(fmt.Sprintf("%T", v))
	}
}

// classifyFloat handles decoders that surface every number as a float.
// Without the original literal, a number with no fractional part counts
// as an integer.
func classifyFloat(f float64) TypeTag {
	if math.Trunc(f) == f && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return TypeInteger
	}
	return TypeFloat
}

// stringify renders a scalar value for the sample set.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
