package report

import (
	"context"
	"fmt"
	"time"

	filesapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/files"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/files"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/sales"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/logger"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// DefaultChartRegions are captured when an export names no chart keys
var DefaultChartRegions = []report.ChartRegion{
	{Key: "revenue-overview", Label: "Revenue Overview"},
	{Key: "expenses-by-category", Label: "Expenses by Category"},
	{Key: "employees-by-department", Label: "Employees by Department"},
	{Key: "project-status", Label: "Project Status"},
	{Key: "procurement-status", Label: "Procurement Status"},
}

// DocumentRenderer turns a tabular document into an artifact
type DocumentRenderer interface {
	Render(ctx context.Context, doc *report.Document) (*report.Artifact, error)
}

// ChartRenderer captures dashboard chart regions into an artifact
type ChartRenderer interface {
	RenderCharts(ctx context.Context, req *report.ChartRequest) (*report.Artifact, error)
}

// ArtifactStore persists rendered artifacts
type ArtifactStore interface {
	StoreArtifact(ctx context.Context, req filesapp.StoreArtifactRequest) (*filesapp.FileResponse, error)
}

// DatasetSource supplies the data behind exports
type DatasetSource interface {
	AssembleWithRecords(ctx context.Context) (*report.Payload, *Records)
	SalesRecords(ctx context.Context) ([]sales.Lead, []sales.Opportunity, error)
}

// Renderers maps formats to their renderer. Charts handles chart-snapshot.
type Renderers struct {
	Tabular     DocumentRenderer
	Spreadsheet DocumentRenderer
	Charts      ChartRenderer
}

// ExportService resolves a report dataset, renders it and records the
// artifact in the Files module
type ExportService struct {
	source      DatasetSource
	renderers   Renderers
	store       ArtifactStore
	companyName string
	metrics     *telemetry.ReportMetrics
	logger      *zap.Logger
	now         func() time.Time
}

// NewExportService creates a new ExportService. store may be nil, in which
// case artifacts are returned without being persisted.
func NewExportService(
	source DatasetSource,
	renderers Renderers,
	store ArtifactStore,
	companyName string,
	metrics *telemetry.ReportMetrics,
	log *zap.Logger,
) *ExportService {
	if metrics == nil {
		metrics = telemetry.NoopReportMetrics()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ExportService{
		source:      source,
		renderers:   renderers,
		store:       store,
		companyName: companyName,
		metrics:     metrics,
		logger:      log,
		now:         time.Now,
	}
}

// Export renders the requested report and persists the result
func (s *ExportService) Export(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	rt := report.ReportType(req.ReportType)
	format := report.Format(req.Format)
	if err := validateExport(rt, format); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartSpan(ctx, "report.export",
		"report_type", string(rt), "format", string(format))
	defer span.End()

	start := time.Now()
	artifact, err := s.render(ctx, rt, format, req.ChartKeys)
	s.metrics.RecordExport(ctx, string(format), string(rt), time.Since(start), err)
	if err != nil {
		telemetry.RecordError(span, err)
		logger.Using(ctx, s.logger).Error("Report export failed",
			zap.String("report_type", string(rt)),
			zap.String("format", string(format)),
			zap.Error(err),
		)
		return nil, err
	}

	result := &ExportResult{Artifact: artifact}
	if s.store != nil {
		stored, err := s.store.StoreArtifact(ctx, filesapp.StoreArtifactRequest{
			Name:        artifact.Filename,
			ContentType: artifact.ContentType,
			Data:        artifact.Data,
			Category:    files.CategoryExport,
			ReportType:  string(rt),
			Format:      string(format),
			CreatedBy:   req.RequestedBy,
		})
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, fmt.Errorf("store export artifact: %w", err)
		}
		result.File = stored
	}

	logger.Using(ctx, s.logger).Info("Report exported",
		zap.String("report_type", string(rt)),
		zap.String("format", string(format)),
		zap.String("filename", artifact.Filename),
		zap.Int("bytes", len(artifact.Data)),
		zap.Strings("skipped_regions", artifact.Skipped),
	)
	return result, nil
}

func validateExport(rt report.ReportType, format report.Format) error {
	if !rt.IsValid() {
		return shared.ErrInvalidInput.WithMessage("unknown report type " + string(rt))
	}
	if !format.IsValid() {
		return shared.ErrInvalidInput.WithMessage("unknown export format " + string(format))
	}
	if (rt == report.ReportTypeDashboardCharts) != (format == report.FormatChartSnapshot) {
		return shared.ErrInvalidInput.WithMessage("dashboard-charts is exported as chart-snapshot and only as chart-snapshot")
	}
	return nil
}

func (s *ExportService) render(ctx context.Context, rt report.ReportType, format report.Format, chartKeys []string) (*report.Artifact, error) {
	if format == report.FormatChartSnapshot {
		if s.renderers.Charts == nil {
			return nil, shared.ErrInvalidInput.WithMessage("chart export is not configured")
		}
		return s.renderers.Charts.RenderCharts(ctx, &report.ChartRequest{
			ReportType:  rt,
			Title:       rt.Title(),
			CompanyName: s.companyName,
			GeneratedAt: s.now(),
			Regions:     chartRegions(chartKeys),
		})
	}

	renderer := s.renderers.Tabular
	if format == report.FormatSpreadsheet {
		renderer = s.renderers.Spreadsheet
	}
	if renderer == nil {
		return nil, shared.ErrInvalidInput.WithMessage(string(format) + " export is not configured")
	}

	doc, err := s.Document(ctx, rt)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, doc)
}

// Document resolves the dataset for rt and lays it out for rendering
func (s *ExportService) Document(ctx context.Context, rt report.ReportType) (*report.Document, error) {
	if rt == report.ReportTypeSales {
		leads, opportunities, err := s.source.SalesRecords(ctx)
		if err != nil {
			return nil, err
		}
		return newDocument(rt, s.companyName, s.now(), leadSection(leads), opportunitySection(opportunities)), nil
	}

	payload, records := s.source.AssembleWithRecords(ctx)
	at := payload.GeneratedAt
	if at.IsZero() {
		at = s.now()
	}
	if payload.CompanyName == "" {
		payload.CompanyName = s.companyName
	}

	switch rt {
	case report.ReportTypeSummary:
		return summaryDocument(payload), nil
	case report.ReportTypeFinancial:
		return newDocument(rt, payload.CompanyName, at,
			financeTotalsSection(payload.Finance),
			invoiceSection(records.Invoices), expenseSection(records.Expenses)), nil
	case report.ReportTypeInvoices:
		return newDocument(rt, payload.CompanyName, at, invoiceSection(records.Invoices)), nil
	case report.ReportTypeExpenses:
		return newDocument(rt, payload.CompanyName, at, expenseSection(records.Expenses)), nil
	case report.ReportTypeEmployees:
		return newDocument(rt, payload.CompanyName, at, employeeSection(records.Employees)), nil
	case report.ReportTypeProjects:
		return newDocument(rt, payload.CompanyName, at,
			projectSection(records.Projects), taskSection(records.Tasks, records.Projects, at)), nil
	case report.ReportTypeProcurement:
		return newDocument(rt, payload.CompanyName, at, requestSection(records.Requests)), nil
	}
	return nil, shared.ErrInvalidInput.WithMessage("report type " + string(rt) + " has no tabular layout")
}

func chartRegions(keys []string) []report.ChartRegion {
	if len(keys) == 0 {
		return DefaultChartRegions
	}
	regions := make([]report.ChartRegion, 0, len(keys))
	for _, k := range keys {
		label := ""
		for _, d := range DefaultChartRegions {
			if d.Key == k {
				label = d.Label
				break
			}
		}
		regions = append(regions, report.ChartRegion{Key: k, Label: label})
	}
	return regions
}
