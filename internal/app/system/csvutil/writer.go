// internal/app/system/csvutil/writer.go
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// bom lets spreadsheet apps detect UTF-8.
var bom = []byte{0xEF, 0xBB, 0xBF}

// Writer writes spreadsheet-safe CSV.
type Writer struct {
	cw *csv.Writer
}

// NewWriter writes the UTF-8 BOM to w and returns a CRLF CSV writer.
func NewWriter(w io.Writer) (*Writer, error) {
	if _, err := w.Write(bom); err != nil {
		return nil, fmt.Errorf("write BOM: %w", err)
	}
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return &Writer{cw: cw}, nil
}

// Write writes one record, neutralising cells a spreadsheet would treat as
// formulas.
func (w *Writer) Write(fields ...string) error {
	rec := make([]string, len(fields))
	for i, f := range fields {
		rec[i] = SafeField(f)
	}
	return w.cw.Write(rec)
}

// Flush flushes buffered rows and reports any write error.
func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

// SafeField prefixes values starting with a formula trigger with a quote.
func SafeField(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

// SetDownloadHeaders marks the response as a CSV attachment named filename.
func SetDownloadHeaders(w http.ResponseWriter, filename string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))
}
