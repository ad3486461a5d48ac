package report

import (
	"fmt"
	"time"
)

// ColumnKind controls how a cell is formatted by export renderers
type ColumnKind string

const (
	ColumnText    ColumnKind = "text"
	ColumnMoney   ColumnKind = "money"
	ColumnNumber  ColumnKind = "number"
	ColumnPercent ColumnKind = "percent"
	ColumnDate    ColumnKind = "date"
)

// Column describes one table column
type Column struct {
	Key   string
	Title string
	Kind  ColumnKind
}

// Section is one table of a document. Cells hold string, int, int64,
// float64, decimal.Decimal, time.Time or *time.Time values; nil renders empty.
type Section struct {
	Title   string
	Columns []Column
	Rows    [][]any
}

// Document is the renderer-neutral form of a tabular export
type Document struct {
	ReportType  ReportType
	Title       string
	CompanyName string
	GeneratedAt time.Time
	Sections    []Section
}

// ChartRegion names a renderable dashboard region by its stable key
type ChartRegion struct {
	Key   string
	Label string
}

// ChartRequest asks for a snapshot of dashboard regions
type ChartRequest struct {
	ReportType  ReportType
	Title       string
	CompanyName string
	GeneratedAt time.Time
	Regions     []ChartRegion
}

// Artifact is a rendered export
type Artifact struct {
	Filename    string
	ContentType string
	Format      Format
	ReportType  ReportType
	Data        []byte
	// Skipped lists chart regions that could not be captured
	Skipped []string
}

// Filename builds "<report-type>_<YYYY-MM-DD>.<ext>" from the export date
func Filename(rt ReportType, f Format, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", rt, at.Format("2006-01-02"), f.Extension())
}
