package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// EncodeDocument serializes a table into the {"items":[...]} document the
// generated wrapper classes deserialize. Fields are emitted in header order
// with two-space indentation, so identical input always produces identical
// bytes. encoding/json alone cannot do this for map-shaped rows (it sorts
// keys), hence the ordered writer.
func EncodeDocument(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"items":[`)
	for i, row := range t.Rows {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for j, col := range t.Columns {
			if j > 0 {
				buf.WriteByte(',')
			}
			name, err := json.Marshal(col.Name)
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')
			value, err := encodeValue(row.Values[j], col.Type)
			if err != nil {
				return nil, fmt.Errorf("row %d field %s: %w", i+1, col.Name, err)
			}
			buf.WriteString(value)
		}
		buf.WriteByte('}')
	}
	buf.WriteString(`]}`)

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// encodeValue renders one already-coerced value. Floats always carry a
// decimal point (150.0, not 150) so JsonUtility sees the declared type.
func encodeValue(v any, t FieldType) (string, error) {
	switch t {
	case TypeInt:
		i, ok := v.(int)
		if !ok {
			return "", fmt.Errorf("expected int, got %T", v)
		}
		return strconv.Itoa(i), nil
	case TypeFloat:
		f, ok := v.(float64)
		if !ok {
			return "", fmt.Errorf("expected float64, got %T", v)
		}
		return formatFloat(f), nil
	case TypeBool:
		b, ok := v.(bool)
		if !ok {
			return "", fmt.Errorf("expected bool, got %T", v)
		}
		return strconv.FormatBool(b), nil
	default:
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("expected string, got %T", v)
		}
		data, err := json.Marshal(s)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
