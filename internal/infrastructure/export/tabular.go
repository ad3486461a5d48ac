package export

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
)

const tabularTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
@page { size: A4; margin: 12mm; }
body { font-family: "Helvetica Neue", Arial, sans-serif; font-size: 10pt; color: #1f2933; }
header.report-header { border-bottom: 2px solid #3e4c59; margin-bottom: 12px; padding-bottom: 6px; }
header.report-header h1 { font-size: 16pt; margin: 0 0 4px 0; }
header.report-header p { margin: 0; color: #52606d; }
section.report-section + section.report-section { break-before: page; page-break-before: always; }
section.report-section h2 { font-size: 12pt; margin: 8px 0; }
table { width: 100%; border-collapse: collapse; }
thead { display: table-header-group; }
th { background: #e4e7eb; text-align: left; padding: 4px 6px; border-bottom: 1px solid #9aa5b1; }
td { padding: 3px 6px; border-bottom: 1px solid #e4e7eb; }
td.num, th.num { text-align: right; white-space: nowrap; }
</style>
</head>
<body>
<header class="report-header">
<h1>{{.Title}}</h1>
{{if .Company}}<p class="company">{{.Company}}</p>{{end}}
<p class="generated">Generated: {{.Generated}}</p>
</header>
{{range .Sections}}<section class="report-section">
{{if .Title}}<h2>{{.Title}}</h2>{{end}}
<table>
<thead><tr>{{range .Headers}}<th{{if .Numeric}} class="num"{{end}}>{{.Title}}</th>{{end}}</tr></thead>
<tbody>{{range .Rows}}
<tr>{{range .}}<td{{if .Numeric}} class="num"{{end}}>{{.Text}}</td>{{end}}</tr>{{end}}
</tbody>
</table>
</section>
{{end}}</body>
</html>
`

var tabularTmpl = template.Must(template.New("tabular").Parse(tabularTemplate))

type htmlCell struct {
	Title   string
	Text    string
	Numeric bool
}

type htmlSection struct {
	Title   string
	Headers []htmlCell
	Rows    [][]htmlCell
}

type htmlDocument struct {
	Lang      string
	Title     string
	Company   string
	Generated string
	Sections  []htmlSection
}

// TabularRenderer prints documents as PDF tables
type TabularRenderer struct {
	browser   Browser
	formatter *Formatter
	lang      string
	now       func() time.Time
}

var _ DocumentRenderer = (*TabularRenderer)(nil)

// NewTabularRenderer creates a TabularRenderer
func NewTabularRenderer(browser Browser, formatter *Formatter, lang string) *TabularRenderer {
	if lang == "" {
		lang = "en"
	}
	return &TabularRenderer{browser: browser, formatter: formatter, lang: lang, now: time.Now}
}

// HTML renders the intermediate HTML document
func (r *TabularRenderer) HTML(doc *report.Document) (string, error) {
	if doc == nil {
		return "", NewRenderError(ErrCodeInvalidInput, "document is nil", nil)
	}
	return r.html(doc, r.generatedAt(doc))
}

func (r *TabularRenderer) generatedAt(doc *report.Document) time.Time {
	if doc.GeneratedAt.IsZero() {
		return r.now()
	}
	return doc.GeneratedAt
}

func (r *TabularRenderer) html(doc *report.Document, generatedAt time.Time) (string, error) {
	view := htmlDocument{
		Lang:      r.lang,
		Title:     doc.Title,
		Company:   doc.CompanyName,
		Generated: r.formatter.Timestamp(generatedAt),
		Sections:  make([]htmlSection, 0, len(doc.Sections)),
	}
	for _, s := range doc.Sections {
		view.Sections = append(view.Sections, r.section(s))
	}

	var buf bytes.Buffer
	if err := tabularTmpl.Execute(&buf, view); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "template execution failed", err)
	}
	return buf.String(), nil
}

func (r *TabularRenderer) section(s report.Section) htmlSection {
	out := htmlSection{
		Title:   s.Title,
		Headers: make([]htmlCell, len(s.Columns)),
		Rows:    make([][]htmlCell, 0, len(s.Rows)),
	}
	for i, c := range s.Columns {
		out.Headers[i] = htmlCell{Title: c.Title, Numeric: isNumeric(c.Kind)}
	}
	for _, row := range s.Rows {
		cells := make([]htmlCell, len(s.Columns))
		for i, c := range s.Columns {
			var v any
			if i < len(row) {
				v = row[i]
			}
			cells[i] = htmlCell{Text: r.formatter.Cell(c.Kind, v), Numeric: isNumeric(c.Kind)}
		}
		out.Rows = append(out.Rows, cells)
	}
	return out
}

// Render prints the document to PDF
func (r *TabularRenderer) Render(ctx context.Context, doc *report.Document) (*report.Artifact, error) {
	if doc == nil {
		return nil, NewRenderError(ErrCodeInvalidInput, "document is nil", nil)
	}
	generatedAt := r.generatedAt(doc)

	html, err := r.html(doc, generatedAt)
	if err != nil {
		return nil, err
	}
	pdf, err := r.browser.PrintToPDF(ctx, html)
	if err != nil {
		return nil, err
	}

	return &report.Artifact{
		Filename:    r.formatter.Filename(doc.ReportType, report.FormatTabularDocument, generatedAt),
		ContentType: report.FormatTabularDocument.ContentType(),
		Format:      report.FormatTabularDocument,
		ReportType:  doc.ReportType,
		Data:        pdf,
	}, nil
}

func isNumeric(k report.ColumnKind) bool {
	return k == report.ColumnMoney || k == report.ColumnNumber || k == report.ColumnPercent
}
