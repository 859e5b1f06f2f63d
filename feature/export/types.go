package export

// FieldType is the primitive type inferred for a column. The values double
// as the C# type names used by the code generator.
type FieldType string

const (
	TypeInt    FieldType = "int"
	TypeFloat  FieldType = "float"
	TypeBool   FieldType = "bool"
	TypeString FieldType = "string"
)

// Zero returns the type's zero value, used when a cell is empty or fails
// to coerce.
func (t FieldType) Zero() any {
	switch t {
	case TypeInt:
		return 0
	case TypeFloat:
		return 0.0
	case TypeBool:
		return false
	default:
		return ""
	}
}

// Column is one named, typed field shared by all rows in a table.
type Column struct {
	// Header is the raw header cell text.
	Header string
	// Name is the normalized (PascalCase) field name used in JSON and C#.
	Name string
	// Type is the inferred primitive type.
	Type FieldType
}

// Row is one record within a table. Values are aligned with the table's
// columns and already coerced to the column type (int, float64, bool or
// string). Defaulted marks the cells that were empty or failed coercion
// and therefore carry the column's zero value.
type Row struct {
	Values    []any
	Defaulted []bool
}

// Table is one logical dataset corresponding to a populated sheet.
type Table struct {
	// Key is the output name: the file stem, or "<stem>_<sheet>" when the
	// workbook has more than one populated sheet.
	Key string
	// Source is the workbook file stem.
	Source string
	// Sheet is the sheet name inside the workbook.
	Sheet string

	Columns []Column
	Rows    []Row
}

// DefaultedCells counts the cells across all rows that carry a substituted
// zero value.
func (t *Table) DefaultedCells() int {
	n := 0
	for _, row := range t.Rows {
		for _, d := range row.Defaulted {
			if d {
				n++
			}
		}
	}
	return n
}
