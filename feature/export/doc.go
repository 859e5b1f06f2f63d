// Package export implements the spreadsheet-to-Unity data pipeline.
//
// The pipeline reads .xlsx workbooks from the input directory, infers a
// primitive type for every column, and produces two artifacts per table:
//
//   - A JSON document of shape {"items":[...]} that Unity's JsonUtility can
//     deserialize through a generated wrapper class.
//   - Generated C# source: one [Serializable] data class per table, one
//     wrapper class per table, and a static ExcelDataManager with by-id
//     lookup, full-list retrieval and predicate queries.
//
// # Tables
//
// Each populated sheet becomes one table. A workbook with a single populated
// sheet is named after the file stem; with several, tables are named
// "<stem>_<sheet>". The header row defines column order and names; blank
// headers are synthesized as ColumnN.
//
// # Error Policy
//
// The pipeline degrades and continues: unreadable workbooks and empty sheets
// are skipped with a diagnostic, and cells that fail to coerce to their
// column's type are substituted with the type's zero value. Every defaulted
// cell is surfaced in the run summary rather than silently swallowed.
//
// # Preview
//
// The package also ships the read-only preview surface (Store, Handler,
// Feature) that the serve command mounts, and the Publisher that uploads
// exported documents to object storage.
package export
