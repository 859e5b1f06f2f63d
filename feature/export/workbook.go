package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseWorkbook reads one .xlsx file and materializes a Table per populated
// sheet. Sheets with fewer than two rows, or with no data rows after
// dropping fully-blank ones, are skipped. The returned tables carry their
// final output keys: the file stem alone when exactly one sheet is
// populated, "<stem>_<sheet>" otherwise.
func ParseWorkbook(path string) ([]*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var tables []*Table
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}
		if len(rows) < 2 {
			continue
		}

		table := buildTable(stem, sheet, rows)
		if table != nil {
			tables = append(tables, table)
		}
	}

	// Collapse to the stem when the file has exactly one populated sheet.
	for _, t := range tables {
		if len(tables) == 1 {
			t.Key = t.Source
		} else {
			t.Key = t.Source + "_" + t.Sheet
		}
	}

	return tables, nil
}

// buildTable turns a header row plus data rows into a typed Table.
// Returns nil when no data rows survive the blank-row filter.
func buildTable(stem, sheet string, rows [][]string) *Table {
	// excelize trims trailing empty cells per row, so the header row alone
	// can undercount the table width. Size at the widest row and synthesize
	// names for columns the header row does not reach.
	width := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) > width {
			width = len(row)
		}
	}

	headers := make([]string, width)
	for i := range headers {
		header := ""
		if i < len(rows[0]) {
			header = strings.TrimSpace(rows[0][i])
		}
		if header == "" {
			header = fmt.Sprintf("Column%d", i+1)
		}
		headers[i] = header
	}

	// Materialize data rows at header width, dropping fully-blank ones.
	var raw [][]string
	for _, row := range rows[1:] {
		cells := make([]string, len(headers))
		blank := true
		for i := range headers {
			if i < len(row) {
				cells[i] = strings.TrimSpace(row[i])
			}
			if cells[i] != "" {
				blank = false
			}
		}
		if !blank {
			raw = append(raw, cells)
		}
	}
	if len(raw) == 0 {
		return nil
	}

	columns := make([]Column, len(headers))
	for i, header := range headers {
		values := make([]string, len(raw))
		for j, cells := range raw {
			values[j] = cells[i]
		}
		columns[i] = Column{
			Header: header,
			Name:   ToPascalCase(header),
			Type:   InferColumnType(values),
		}
	}

	table := &Table{
		Source:  stem,
		Sheet:   sheet,
		Columns: columns,
	}
	for _, cells := range raw {
		row := Row{
			Values:    make([]any, len(columns)),
			Defaulted: make([]bool, len(columns)),
		}
		for i, col := range columns {
			c := Coerce(cells[i], col.Type)
			row.Values[i] = c.Value
			row.Defaulted[i] = c.Defaulted
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}
