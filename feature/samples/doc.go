// Package samples regenerates the sample game configuration workbooks that
// feed the export pipeline.
//
// Each Definition is one .xlsx file with a single styled sheet: a bold
// header row followed by data rows. The sample set is intentionally small
// but covers all inferred column types (integer, float, boolean, text),
// a column promoted from integer to float, and empty cells.
package samples
