package export

import (
	"context"
	"strings"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// fixed column widths per kind, in Excel character units
var columnWidths = map[report.ColumnKind]float64{
	report.ColumnText:    28,
	report.ColumnMoney:   16,
	report.ColumnNumber:  12,
	report.ColumnPercent: 10,
	report.ColumnDate:    14,
}

const maxSheetNameLen = 31

// SpreadsheetRenderer writes documents to a single-sheet XLSX workbook.
// The header block occupies the first rows, followed by a blank row and
// then the first section's header and data rows. Each later section
// follows a blank row and a section title row.
type SpreadsheetRenderer struct {
	formatter *Formatter
	now       func() time.Time
}

var _ DocumentRenderer = (*SpreadsheetRenderer)(nil)

// NewSpreadsheetRenderer creates a SpreadsheetRenderer
func NewSpreadsheetRenderer(formatter *Formatter) *SpreadsheetRenderer {
	return &SpreadsheetRenderer{formatter: formatter, now: time.Now}
}

type sheetStyles struct {
	title   int
	header  int
	section int
	money   int
	number  int
	decimal int
	percent int
	date    int
}

// Render builds the workbook in memory
func (r *SpreadsheetRenderer) Render(_ context.Context, doc *report.Document) (*report.Artifact, error) {
	if doc == nil {
		return nil, NewRenderError(ErrCodeInvalidInput, "document is nil", nil)
	}
	generatedAt := doc.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = r.now()
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetName(doc.Title)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "rename sheet", err)
	}
	styles, err := r.styles(f)
	if err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "create styles", err)
	}

	w := &sheetWriter{f: f, sheet: sheet, row: 1}
	w.text(doc.Title, styles.title)
	w.text("Generated: "+r.formatter.Timestamp(generatedAt), 0)
	if doc.CompanyName != "" {
		w.text(doc.CompanyName, 0)
	}
	w.row++

	widths := map[int]float64{}
	for i, s := range doc.Sections {
		if i > 0 {
			w.row++
		}
		if i > 0 && s.Title != "" {
			w.text(s.Title, styles.section)
		}
		for c, col := range s.Columns {
			w.cell(c+1, col.Title, styles.header)
			if width := columnWidths[col.Kind]; width > widths[c+1] {
				widths[c+1] = width
			}
		}
		w.row++
		for _, row := range s.Rows {
			for c, col := range s.Columns {
				var v any
				if c < len(row) {
					v = row[c]
				}
				value, style := r.cellValue(col.Kind, v, styles)
				w.cell(c+1, value, style)
			}
			w.row++
		}
	}
	if w.err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "write cells", w.err)
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return nil, NewRenderError(ErrCodeRenderFailed, "column name", err)
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return nil, NewRenderError(ErrCodeRenderFailed, "set column width", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "write workbook", err)
	}

	return &report.Artifact{
		Filename:    r.formatter.Filename(doc.ReportType, report.FormatSpreadsheet, generatedAt),
		ContentType: report.FormatSpreadsheet.ContentType(),
		Format:      report.FormatSpreadsheet,
		ReportType:  doc.ReportType,
		Data:        buf.Bytes(),
	}, nil
}

// cellValue converts v into a native spreadsheet value so numbers stay numeric
func (r *SpreadsheetRenderer) cellValue(kind report.ColumnKind, v any, st sheetStyles) (any, int) {
	if v == nil {
		return nil, 0
	}
	switch kind {
	case report.ColumnMoney:
		if d, ok := asDecimal(v); ok {
			d = d.Round(2)
			// Excel cells hold doubles; amounts a double cannot carry to the cent stay text
			if f := d.InexactFloat64(); decimal.NewFromFloat(f).Equal(d) {
				return f, st.money
			}
			return r.formatter.Money(d), 0
		}
	case report.ColumnNumber, report.ColumnPercent:
		style := st.number
		if kind == report.ColumnPercent {
			style = st.percent
		}
		switch n := v.(type) {
		case int, int64:
			return n, style
		case float64:
			if kind == report.ColumnNumber {
				style = st.decimal
			}
			return n, style
		case decimal.Decimal:
			if kind == report.ColumnNumber {
				style = st.decimal
			}
			if f := n.InexactFloat64(); decimal.NewFromFloat(f).Equal(n) {
				return f, style
			}
		}
	case report.ColumnDate:
		if t, ok := asTime(v); ok {
			local := t.In(r.formatter.location)
			return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC), st.date
		}
		return nil, 0
	}
	return r.formatter.Cell(kind, v), 0
}

func (r *SpreadsheetRenderer) styles(f *excelize.File) (sheetStyles, error) {
	var st sheetStyles
	currency := `"` + strings.ReplaceAll(r.formatter.currency, `"`, ``) + `"`
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&st.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}},
		{&st.section, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}}},
		{&st.header, &excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E4E7EB"}},
		}},
		{&st.money, &excelize.Style{CustomNumFmt: strPtr(currency + "#,##0.00;-" + currency + "#,##0.00")}},
		{&st.number, &excelize.Style{CustomNumFmt: strPtr("#,##0")}},
		{&st.decimal, &excelize.Style{CustomNumFmt: strPtr("#,##0.##")}},
		{&st.percent, &excelize.Style{CustomNumFmt: strPtr(`0.##"%"`)}},
		{&st.date, &excelize.Style{CustomNumFmt: strPtr(excelDateFormat(r.formatter.dateLayout))}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return st, err
		}
		*d.dst = id
	}
	return st, nil
}

// sheetWriter keeps the current row and the first error
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	err   error
}

func (w *sheetWriter) text(s string, style int) {
	w.cell(1, s, style)
	w.row++
}

func (w *sheetWriter) cell(col int, value any, style int) {
	if w.err != nil {
		return
	}
	ref, err := excelize.CoordinatesToCellName(col, w.row)
	if err != nil {
		w.err = err
		return
	}
	if value != nil {
		if w.err = w.f.SetCellValue(w.sheet, ref, value); w.err != nil {
			return
		}
	}
	if style != 0 {
		w.err = w.f.SetCellStyle(w.sheet, ref, ref, style)
	}
}

// sheetName strips characters Excel rejects and truncates to 31 runes
func sheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return ' '
		}
		return r
	}, strings.TrimSpace(title))
	name = strings.Trim(name, "' ")
	if name == "" {
		return "Report"
	}
	if runes := []rune(name); len(runes) > maxSheetNameLen {
		name = string(runes[:maxSheetNameLen])
	}
	return name
}

// excelDateFormat translates a Go date layout into an Excel number format
func excelDateFormat(layout string) string {
	return strings.NewReplacer("2006", "yyyy", "01", "mm", "02", "dd").Replace(layout)
}

func strPtr(s string) *string {
	return &s
}
