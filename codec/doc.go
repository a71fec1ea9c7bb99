// Package codec reads and writes labeled tables as YAML, JSON, or CSV.
//
// The on-disk document is a small envelope around the table's labels and
// cells:
//
//	name: Sales
//	rows: [North, South]
//	columns: [Total, Count]
//	cells:
//	  - [120, 14]
//	  - [80, null]
//
// Numbers decode to numeric cells, strings to text cells, and nulls to
// typed missing values (typed after the column's other cells). CSV uses the
// first row as the header; an empty first header cell marks the first
// column as row labels.
//
// Format is detected from the file extension, falling back to sniffing the
// content. Input is decoded BOM-aware, so files exported from spreadsheet
// tools read cleanly.
package codec
