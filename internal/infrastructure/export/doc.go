// Package export renders report documents into downloadable artifacts.
//
// Three renderers are provided:
//
//   - TabularRenderer: an HTML document printed to PDF through a headless browser
//   - SpreadsheetRenderer: an XLSX workbook with one sheet
//   - ChartSnapshotRenderer: dashboard chart regions captured as images and
//     laid out one per page in a PDF
//
// Browser access goes through the Browser interface so renderers can be
// exercised without Chrome.
package export
