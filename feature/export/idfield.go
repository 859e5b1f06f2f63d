package export

import "strings"

// idFieldVariants are the exact identifier names tried first, in order.
var idFieldVariants = []string{"Id", "ID", "id", "iD", "ID_", "Id_", "id_"}

// DetectIDColumn returns the index of the column used as the table's
// identifier, or -1 when none qualifies. Exact variants win over the
// fallback, which picks the first column whose name contains "id"
// (case-insensitive).
func DetectIDColumn(columns []Column) int {
	for _, variant := range idFieldVariants {
		for i, col := range columns {
			if col.Name == variant {
				return i
			}
		}
	}
	for i, col := range columns {
		if strings.Contains(strings.ToLower(col.Name), "id") {
			return i
		}
	}
	return -1
}

// DetectIDField applies the same ladder to a bare field-name list, used by
// the preview store when indexing already-exported documents.
func DetectIDField(names []string) string {
	for _, variant := range idFieldVariants {
		for _, name := range names {
			if name == variant {
				return name
			}
		}
	}
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), "id") {
			return name
		}
	}
	return ""
}
