package codec

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/erraggy/tabletools/taberrors"
	"github.com/erraggy/tabletools/table"
)

// document is the on-disk envelope for a table.
type document struct {
	Name    string   `yaml:"name,omitempty" json:"name,omitempty"`
	Rows    []string `yaml:"rows,omitempty" json:"rows,omitempty"`
	Columns []string `yaml:"columns,omitempty" json:"columns,omitempty"`
	Cells   [][]any  `yaml:"cells" json:"cells"`
}

// ReadTable reads a table document from a file, detecting the format from
// the path extension and falling back to content sniffing.
func ReadTable(path string) (*table.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("codec: reading %s: %w", path, err)
	}
	format := DetectFormatFromPath(path)
	if format == FormatUnknown {
		format = DetectFormatFromContent(data)
		codecLogger.Debug("format detected from content", "path", path, "format", string(format))
	}
	t, err := ReadTableFrom(strings.NewReader(string(data)), format)
	if err != nil {
		var perr *taberrors.ParseError
		if errors.As(err, &perr) && perr.Path == "" {
			perr.Path = path
		}
		return nil, err
	}
	return t, nil
}

// ReadTableFrom decodes a table document from r in the given format. The
// reader is decoded BOM-aware: a leading UTF-8/UTF-16 byte order mark is
// honored and stripped.
func ReadTableFrom(r io.Reader, format Format) (*table.Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, &taberrors.ParseError{Message: "reading input", Cause: err}
	}

	switch format {
	case FormatYAML:
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, &taberrors.ParseError{Message: "decoding YAML", Cause: err}
		}
		return fromDocument(&doc)
	case FormatJSON:
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, &taberrors.ParseError{Message: "decoding JSON", Cause: err}
		}
		return fromDocument(&doc)
	case FormatCSV:
		return fromCSV(data)
	default:
		return nil, &taberrors.ParseError{Message: fmt.Sprintf("unsupported format %q", format)}
	}
}

// fromDocument converts the decoded envelope into a table.
func fromDocument(doc *document) (*table.Table, error) {
	cells := make([][]table.Cell, len(doc.Cells))
	width := -1
	for r, row := range doc.Cells {
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, &taberrors.ParseError{
				Line:    r + 1,
				Message: fmt.Sprintf("row %d has %d cells, want %d", r+1, len(row), width),
			}
		}
		cells[r] = make([]table.Cell, len(row))
		for c, v := range row {
			cell, err := decodeCell(v)
			if err != nil {
				return nil, &taberrors.ParseError{
					Line:    r + 1,
					Column:  c + 1,
					Message: "decoding cell",
					Cause:   err,
				}
			}
			cells[r][c] = cell
		}
	}
	t := table.New(doc.Name, doc.Rows, doc.Columns, cells)
	retypeNulls(t)
	return t, nil
}

// decodeCell maps a decoded scalar onto a cell value.
func decodeCell(v any) (table.Cell, error) {
	switch x := v.(type) {
	case nil:
		return table.NullOf(table.KindNumber), nil
	case float64:
		return table.Number(x), nil
	case int:
		return table.Number(float64(x)), nil
	case int64:
		return table.Number(float64(x)), nil
	case uint64:
		return table.Number(float64(x)), nil
	case string:
		return table.Text(x), nil
	default:
		return table.Cell{}, fmt.Errorf("unsupported cell type %T", v)
	}
}

// retypeNulls aligns each null cell's kind with its column's first
// non-null value, so padding stays type-correct downstream.
func retypeNulls(t *table.Table) {
	for c := 0; c < t.NumCols(); c++ {
		kind := t.ColumnKind(c)
		for r := range t.Cells {
			if t.Cells[r][c].Null {
				t.Cells[r][c].Kind = kind
			}
		}
	}
}

// fromCSV parses a comma-separated table. The first record is the header;
// an empty first header cell means the first column holds row labels.
func fromCSV(data []byte) (*table.Table, error) {
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		return nil, &taberrors.ParseError{Message: "decoding CSV", Cause: err}
	}
	if len(records) == 0 {
		return nil, &taberrors.ParseError{Message: "empty CSV document"}
	}

	header := records[0]
	hasRowLabels := len(header) > 0 && header[0] == ""

	var colLabels []string
	if hasRowLabels {
		colLabels = header[1:]
	} else {
		colLabels = header
	}

	var rowLabels []string
	cells := make([][]table.Cell, 0, len(records)-1)
	for _, rec := range records[1:] {
		values := rec
		if hasRowLabels {
			rowLabels = append(rowLabels, rec[0])
			values = rec[1:]
		}
		row := make([]table.Cell, len(values))
		for c, s := range values {
			row[c] = decodeCSVCell(s)
		}
		cells = append(cells, row)
	}

	t := table.New("", rowLabels, append([]string(nil), colLabels...), cells)
	retypeNulls(t)
	return t, nil
}

// decodeCSVCell maps a CSV field onto a cell: empty is null, numeric
// parses as a number, anything else is text.
func decodeCSVCell(s string) table.Cell {
	if s == "" {
		return table.NullOf(table.KindNumber)
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return table.Number(n)
	}
	return table.Text(s)
}
