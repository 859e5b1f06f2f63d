package export

import (
	"strconv"
	"strings"
)

// SniffType classifies a single non-empty cell value. Rule order: textual
// boolean, parseable integer, parseable float, fallback text.
func SniffType(raw string) FieldType {
	s := strings.TrimSpace(raw)
	if s == "" {
		return TypeString
	}
	switch strings.ToLower(s) {
	case "true", "false":
		return TypeBool
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return TypeInt
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return TypeFloat
	}
	return TypeString
}

// InferColumnType derives a column's type from the first non-empty value,
// then promotes integer to float if any value in the column carries a
// decimal point. Later incompatible values do not demote the type; they are
// coerced at row-build time.
func InferColumnType(values []string) FieldType {
	inferred := TypeString
	for _, raw := range values {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		inferred = SniffType(raw)
		break
	}

	if inferred == TypeInt {
		for _, raw := range values {
			s := strings.TrimSpace(raw)
			if s == "" {
				continue
			}
			if _, err := strconv.ParseFloat(s, 64); err == nil && strings.Contains(s, ".") {
				return TypeFloat
			}
		}
	}

	return inferred
}

// Coercion is the explicit result of converting a cell to its column type.
// Defaulted is set when the cell was empty or could not be parsed and the
// zero value was substituted instead.
type Coercion struct {
	Value     any
	Defaulted bool
}

// Coerce converts a raw cell value to the column type. It never fails:
// unparseable values degrade to the type's zero value with Defaulted set.
func Coerce(raw string, t FieldType) Coercion {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Coercion{Value: t.Zero(), Defaulted: true}
	}

	switch t {
	case TypeInt:
		i, err := strconv.Atoi(s)
		if err != nil {
			return Coercion{Value: 0, Defaulted: true}
		}
		return Coercion{Value: i}
	case TypeFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Coercion{Value: 0.0, Defaulted: true}
		}
		return Coercion{Value: f}
	case TypeBool:
		switch strings.ToLower(s) {
		case "true", "1", "yes":
			return Coercion{Value: true}
		default:
			return Coercion{Value: false}
		}
	default:
		return Coercion{Value: s}
	}
}
