package report

import (
	"context"
	"errors"
	"testing"
	"time"

	filesapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/files"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/files"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/finance"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestExportService(t *testing.T, sources Sources, renderers Renderers, store ArtifactStore) *ExportService {
	t.Helper()
	a, _ := newTestAssembler(sources)
	s := NewExportService(a, renderers, store, "Acme Ltd", nil, nil)
	s.now = func() time.Time { return fixedNow }
	return s
}

func pdfArtifact(rt report.ReportType) *report.Artifact {
	return &report.Artifact{
		Filename:    report.Filename(rt, report.FormatTabularDocument, fixedNow),
		ContentType: "application/pdf",
		Format:      report.FormatTabularDocument,
		ReportType:  rt,
		Data:        []byte("%PDF-1.4"),
	}
}

func TestValidateExport(t *testing.T) {
	tests := []struct {
		name    string
		rt      report.ReportType
		format  report.Format
		wantErr bool
	}{
		{"summary as pdf", report.ReportTypeSummary, report.FormatTabularDocument, false},
		{"sales as spreadsheet", report.ReportTypeSales, report.FormatSpreadsheet, false},
		{"charts as snapshot", report.ReportTypeDashboardCharts, report.FormatChartSnapshot, false},
		{"charts as spreadsheet", report.ReportTypeDashboardCharts, report.FormatSpreadsheet, true},
		{"invoices as snapshot", report.ReportTypeInvoices, report.FormatChartSnapshot, true},
		{"unknown type", report.ReportType("payroll"), report.FormatTabularDocument, true},
		{"unknown format", report.ReportTypeSummary, report.Format("docx"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateExport(tt.rt, tt.format)
			if tt.wantErr {
				assert.ErrorIs(t, err, shared.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExportService_TabularExportIsStored(t *testing.T) {
	renderer := new(MockDocumentRenderer)
	store := new(MockArtifactStore)
	s := newTestExportService(t, populatedSources(t), Renderers{Tabular: renderer}, store)

	artifact := pdfArtifact(report.ReportTypeInvoices)
	renderer.On("Render", mock.Anything, mock.MatchedBy(func(doc *report.Document) bool {
		return doc.Title == "Invoices" && len(doc.Sections) == 1 && len(doc.Sections[0].Rows) == 2
	})).Return(artifact, nil)

	userID := uuid.New()
	fileID := uuid.New()
	store.On("StoreArtifact", mock.Anything, mock.MatchedBy(func(req filesapp.StoreArtifactRequest) bool {
		return req.Category == files.CategoryExport &&
			req.Name == "invoices_2024-03-15.pdf" &&
			req.ReportType == "invoices" &&
			req.Format == "tabular-document" &&
			req.CreatedBy != nil && *req.CreatedBy == userID
	})).Return(&filesapp.FileResponse{ID: fileID, Name: artifact.Filename}, nil)

	result, err := s.Export(context.Background(), ExportRequest{
		ReportType:  "invoices",
		Format:      "tabular-document",
		RequestedBy: &userID,
	})

	require.NoError(t, err)
	assert.Same(t, artifact, result.Artifact)
	require.NotNil(t, result.File)
	assert.Equal(t, fileID, result.File.ID)
	renderer.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestExportService_WithoutStore(t *testing.T) {
	renderer := new(MockDocumentRenderer)
	s := newTestExportService(t, emptySources(), Renderers{Spreadsheet: renderer}, nil)

	renderer.On("Render", mock.Anything, mock.Anything).Return(pdfArtifact(report.ReportTypeSummary), nil)

	result, err := s.Export(context.Background(), ExportRequest{ReportType: "summary", Format: "spreadsheet"})
	require.NoError(t, err)
	assert.Nil(t, result.File)
}

func TestExportService_RenderFailureSkipsStore(t *testing.T) {
	renderer := new(MockDocumentRenderer)
	store := new(MockArtifactStore)
	s := newTestExportService(t, emptySources(), Renderers{Tabular: renderer}, store)

	renderer.On("Render", mock.Anything, mock.Anything).Return(nil, errors.New("chrome crashed"))

	result, err := s.Export(context.Background(), ExportRequest{ReportType: "employees", Format: "tabular-document"})
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "chrome crashed")
	store.AssertNotCalled(t, "StoreArtifact", mock.Anything, mock.Anything)
}

func TestExportService_StoreFailure(t *testing.T) {
	renderer := new(MockDocumentRenderer)
	store := new(MockArtifactStore)
	s := newTestExportService(t, emptySources(), Renderers{Tabular: renderer}, store)

	renderer.On("Render", mock.Anything, mock.Anything).Return(pdfArtifact(report.ReportTypeExpenses), nil)
	store.On("StoreArtifact", mock.Anything, mock.Anything).Return(nil, errors.New("bucket missing"))

	_, err := s.Export(context.Background(), ExportRequest{ReportType: "expenses", Format: "tabular-document"})
	assert.ErrorContains(t, err, "store export artifact")
}

func TestExportService_ChartSnapshot(t *testing.T) {
	charts := new(MockChartRenderer)
	s := newTestExportService(t, emptySources(), Renderers{Charts: charts}, nil)

	charts.On("RenderCharts", mock.Anything, mock.MatchedBy(func(req *report.ChartRequest) bool {
		return req.Title == "Dashboard Charts" &&
			req.CompanyName == "Acme Ltd" &&
			req.GeneratedAt.Equal(fixedNow) &&
			len(req.Regions) == len(DefaultChartRegions)
	})).Return(&report.Artifact{Filename: "dashboard-charts_2024-03-15.pdf", Skipped: []string{"project-status"}}, nil)

	result, err := s.Export(context.Background(), ExportRequest{ReportType: "dashboard-charts", Format: "chart-snapshot"})
	require.NoError(t, err)
	assert.Equal(t, []string{"project-status"}, result.Artifact.Skipped)
	charts.AssertExpectations(t)
}

func TestExportService_RendererNotConfigured(t *testing.T) {
	s := newTestExportService(t, emptySources(), Renderers{}, nil)

	_, err := s.Export(context.Background(), ExportRequest{ReportType: "dashboard-charts", Format: "chart-snapshot"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = s.Export(context.Background(), ExportRequest{ReportType: "summary", Format: "spreadsheet"})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestExportService_DocumentLayouts(t *testing.T) {
	s := newTestExportService(t, populatedSources(t), Renderers{}, nil)

	tests := []struct {
		rt       report.ReportType
		sections []string
	}{
		{report.ReportTypeFinancial, []string{"Totals", "Invoices", "Expenses"}},
		{report.ReportTypeInvoices, []string{"Invoices"}},
		{report.ReportTypeExpenses, []string{"Expenses"}},
		{report.ReportTypeEmployees, []string{"Employees"}},
		{report.ReportTypeProjects, []string{"Projects", "Tasks"}},
		{report.ReportTypeProcurement, []string{"Purchase Requests"}},
		{report.ReportTypeSales, []string{"Leads", "Opportunities"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.rt), func(t *testing.T) {
			doc, err := s.Document(context.Background(), tt.rt)
			require.NoError(t, err)

			titles := make([]string, len(doc.Sections))
			for i, sec := range doc.Sections {
				titles[i] = sec.Title
			}
			assert.Equal(t, tt.sections, titles)
			assert.Equal(t, "Acme Ltd", doc.CompanyName)
			assert.Equal(t, fixedNow, doc.GeneratedAt)
		})
	}
}

func TestExportService_SummaryListsDegradedDomains(t *testing.T) {
	sources := emptySources()
	sources.Invoices = listReader[finance.Invoice]{err: errors.New("down")}
	s := newTestExportService(t, sources, Renderers{}, nil)

	doc, err := s.Document(context.Background(), report.ReportTypeSummary)
	require.NoError(t, err)

	last := doc.Sections[len(doc.Sections)-1]
	assert.Equal(t, "Unavailable Data", last.Title)
	require.Len(t, last.Rows, 1)
	assert.Equal(t, "Finance", last.Rows[0][0])
}

func TestExportService_EmptyDatasetKeepsHeaders(t *testing.T) {
	s := newTestExportService(t, emptySources(), Renderers{}, nil)

	doc, err := s.Document(context.Background(), report.ReportTypeInvoices)
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	assert.NotEmpty(t, doc.Sections[0].Columns)
	assert.Empty(t, doc.Sections[0].Rows)
}

func TestChartRegions(t *testing.T) {
	assert.Equal(t, DefaultChartRegions, chartRegions(nil))

	regions := chartRegions([]string{"project-status", "custom-kpi"})
	assert.Equal(t, []report.ChartRegion{
		{Key: "project-status", Label: "Project Status"},
		{Key: "custom-kpi"},
	}, regions)
}
