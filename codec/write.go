package codec

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/tabletools/table"
)

// WriteTable writes t to path, detecting the format from the extension.
// Unknown extensions default to YAML.
func WriteTable(t *table.Table, path string) error {
	format := DetectFormatFromPath(path)
	if format == FormatUnknown {
		format = FormatYAML
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("codec: writing %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	if err := WriteTableTo(f, t, format); err != nil {
		return fmt.Errorf("codec: writing %s: %w", path, err)
	}
	return nil
}

// WriteTableTo encodes t to w in the given format.
func WriteTableTo(w io.Writer, t *table.Table, format Format) error {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(toDocument(t))
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		data, err := json.MarshalIndent(toDocument(t), "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatCSV:
		return writeCSV(w, t)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// toDocument converts a table into the on-disk envelope.
func toDocument(t *table.Table) *document {
	doc := &document{
		Name:    t.Name,
		Rows:    t.RowLabels,
		Columns: t.ColLabels,
		Cells:   make([][]any, t.NumRows()),
	}
	for r := range t.Cells {
		row := make([]any, len(t.Cells[r]))
		for c, cell := range t.Cells[r] {
			row[c] = encodeCell(cell)
		}
		doc.Cells[r] = row
	}
	return doc
}

// encodeCell maps a cell onto a document scalar.
func encodeCell(c table.Cell) any {
	switch {
	case c.Null:
		return nil
	case c.Kind == table.KindNumber:
		return c.Num
	default:
		return c.Str
	}
}

// writeCSV renders the table with a header row; when row labels are
// present they occupy the first column under an empty header cell.
func writeCSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, t.NumCols()+1)
	if t.HasRowLabels() {
		header = append(header, "")
	}
	if t.HasColLabels() {
		header = append(header, t.ColLabels...)
	} else {
		for c := 0; c < t.NumCols(); c++ {
			header = append(header, "col"+strconv.Itoa(c+1))
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for r := range t.Cells {
		rec := make([]string, 0, len(header))
		if t.HasRowLabels() {
			rec = append(rec, t.RowLabels[r])
		}
		for _, cell := range t.Cells[r] {
			rec = append(rec, encodeCSVCell(cell))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// encodeCSVCell renders one cell as a CSV field. Nulls become empty fields.
func encodeCSVCell(c table.Cell) string {
	switch {
	case c.Null:
		return ""
	case c.Kind == table.KindNumber:
		return strconv.FormatFloat(c.Num, 'g', -1, 64)
	default:
		return c.Str
	}
}
