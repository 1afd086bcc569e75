package services

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var measurementStringRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([a-zA-Z"']*)$`)

// ConvertValue coerces a resolved raw value into the rule's declared
// data type. It is only applied to non-empty values; unparseable
// strings pass through unchanged rather than erroring.
func ConvertValue(value interface{}, dataType string) interface{} {
	switch strings.ToLower(dataType) {
	case "number":
		return toNumber(value, false)
	case "integer":
		return toNumber(value, true)
	case "boolean":
		return toBoolean(value)
	case "array":
		return toArray(value)
	case "measurement":
		return toMeasurement(value)
	case "enum", "object":
		return value
	default:
		return toString(value)
	}
}

func toNumber(value interface{}, floor bool) interface{} {
	switch t := value.(type) {
	case float64:
		if floor {
			return math.Floor(t)
		}
		return t
	case int:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return t
		}
		if floor {
			return math.Floor(f)
		}
		return f
	default:
		return value
	}
}

var truthyStrings = map[string]bool{"true": true, "1": true, "yes": true}

func toBoolean(value interface{}) interface{} {
	switch t := value.(type) {
	case bool:
		return t
	case string:
		return truthyStrings[strings.ToLower(strings.TrimSpace(t))]
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return value != nil
	}
}

func toArray(value interface{}) interface{} {
	switch t := value.(type) {
	case []interface{}:
		return t
	case []string:
		out := make([]interface{}, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case string:
		trimmed := strings.TrimSpace(t)
		if strings.HasPrefix(trimmed, "[") {
			var parsed []interface{}
			if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil {
				return parsed
			}
		}
		parts := strings.FieldsFunc(trimmed, func(r rune) bool {
			return r == ';' || r == ','
		})
		out := make([]interface{}, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return []interface{}{value}
	}
}

func toMeasurement(value interface{}) interface{} {
	switch t := value.(type) {
	case map[string]interface{}:
		if _, ok := t["measure"]; ok {
			return t
		}
		return value
	case string:
		m := measurementStringRe.FindStringSubmatch(strings.TrimSpace(t))
		if m == nil {
			return value
		}
		measure, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return value
		}
		out := map[string]interface{}{"measure": measure}
		if m[2] != "" {
			out["unit"] = m[2]
		}
		return out
	case float64, int:
		return map[string]interface{}{"measure": value}
	default:
		return value
	}
}

// toString stringifies scalars but passes objects and arrays through
// unchanged to avoid a lossy "[object Object]"-style rendering.
func toString(value interface{}) interface{} {
	switch value.(type) {
	case map[string]interface{}, []interface{}, []string:
		return value
	case string:
		return value
	default:
		return fmt.Sprintf("%v", value)
	}
}
