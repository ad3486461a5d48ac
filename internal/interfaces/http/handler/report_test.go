package handler

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	filesapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/files"
	reportapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/export"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/persistence"
	"github.com/Deoshabh/it-erp-system-sub003/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAssembler struct {
	payload *report.Payload
}

func (a staticAssembler) Assemble(context.Context) *report.Payload { return a.payload }

type fakeExporter struct {
	mu       sync.Mutex
	requests []reportapp.ExportRequest
	result   *reportapp.ExportResult
	err      error
}

func (e *fakeExporter) Export(_ context.Context, req reportapp.ExportRequest) (*reportapp.ExportResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.requests = append(e.requests, req)
	return e.result, e.err
}

type recordingDeliverer struct {
	mu         sync.Mutex
	deliveries []report.Delivery
}

func (d *recordingDeliverer) Deliver(_ context.Context, delivery report.Delivery) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deliveries = append(d.deliveries, delivery)
	return nil
}

func (d *recordingDeliverer) Name() string { return "recording" }

type financeStatsFunc func(context.Context) (report.FinanceStats, error)

func (f financeStatsFunc) Stats(ctx context.Context) (report.FinanceStats, error) { return f(ctx) }

type reportFixture struct {
	router    *gin.Engine
	exporter  *fakeExporter
	deliverer *recordingDeliverer
	userID    uuid.UUID
}

func newReportFixture(t *testing.T, payload *report.Payload, stats StatsSources) *reportFixture {
	t.Helper()
	f := &reportFixture{
		exporter: &fakeExporter{result: &reportapp.ExportResult{
			Artifact: &report.Artifact{
				Filename:    "financial_2024-03-15.xlsx",
				ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
				Format:      report.FormatSpreadsheet,
				ReportType:  report.ReportTypeFinancial,
				Data:        []byte("PK\x03\x04xlsx"),
			},
		}},
		deliverer: &recordingDeliverer{},
		userID:    uuid.New(),
	}
	db := setupTestDB(t)
	schedules := reportapp.NewScheduleService(persistence.NewGormReportScheduleRepository(db), f.exporter, f.deliverer, nil, nil)
	h := NewReportHandler(staticAssembler{payload: payload}, f.exporter, schedules, stats, true)

	f.router = authedRouter(f.userID)
	g := f.router.Group("/reports")
	g.GET("/summary", h.Summary)
	g.GET("/types", h.Types)
	g.POST("/export", h.Export)
	g.POST("/schedules", h.CreateSchedule)
	g.GET("/schedules", h.ListSchedules)
	g.GET("/schedules/:id", h.GetSchedule)
	g.POST("/schedules/:id/deactivate", h.DeactivateSchedule)
	g.POST("/schedules/:id/run", h.RunSchedule)
	g.DELETE("/schedules/:id", h.DeleteSchedule)
	f.router.GET("/invoices/stats", h.FinanceStats)
	f.router.GET("/sales/stats", h.SalesStats)
	return f
}

func TestReportHandler_Summary(t *testing.T) {
	payload := report.EmptyPayload(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC), "Acme Corp")
	payload.Finance.TotalRevenue = decimal.RequireFromString("1500.50")
	payload.Degraded = []report.Domain{report.DomainEmployees}
	f := newReportFixture(t, payload, StatsSources{})

	w := serve(f.router, http.MethodGet, "/reports/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, w)
	assert.Equal(t, "Acme Corp", data["company_name"])
	assert.Equal(t, []any{"employees"}, data["degraded_domains"])
	assert.Equal(t, 1500.5, data["finance"].(map[string]any)["total_revenue"])
	assert.Equal(t, float64(0), data["employees"].(map[string]any)["total"])
}

func TestReportHandler_Export(t *testing.T) {
	t.Run("returns the artifact as an attachment", func(t *testing.T) {
		f := newReportFixture(t, report.EmptyPayload(time.Now(), "Acme"), StatsSources{})
		fileID := uuid.New()
		f.exporter.result.File = &filesapp.FileResponse{ID: fileID}

		w := serve(f.router, http.MethodPost, "/reports/export", map[string]any{
			"report_type": "financial",
			"format":      "spreadsheet",
		})

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "PK\x03\x04xlsx", w.Body.String())
		assert.Equal(t, "attachment; filename=financial_2024-03-15.xlsx", w.Header().Get("Content-Disposition"))
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Equal(t, "8", w.Header().Get("Content-Length"))
		assert.Equal(t, fileID.String(), w.Header().Get(HeaderFileID))
		assert.Empty(t, w.Header().Get(HeaderSkippedRegions))

		require.Len(t, f.exporter.requests, 1)
		require.NotNil(t, f.exporter.requests[0].RequestedBy)
		assert.Equal(t, f.userID, *f.exporter.requests[0].RequestedBy)
	})

	t.Run("lists skipped chart regions", func(t *testing.T) {
		f := newReportFixture(t, report.EmptyPayload(time.Now(), "Acme"), StatsSources{})
		f.exporter.result.Artifact.Skipped = []string{"revenue-chart", "expense-chart"}

		w := serve(f.router, http.MethodPost, "/reports/export", map[string]any{
			"report_type": "dashboard-charts",
			"format":      "chart-snapshot",
			"chart_keys":  []string{"revenue-chart", "expense-chart", "headcount-chart"},
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "revenue-chart,expense-chart", w.Header().Get(HeaderSkippedRegions))
	})

	t.Run("unknown format is rejected before rendering", func(t *testing.T) {
		f := newReportFixture(t, report.EmptyPayload(time.Now(), "Acme"), StatsSources{})
		w := serve(f.router, http.MethodPost, "/reports/export", map[string]any{
			"report_type": "financial",
			"format":      "docx",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, f.exporter.requests)
	})

	t.Run("render failure maps to its error code", func(t *testing.T) {
		f := newReportFixture(t, report.EmptyPayload(time.Now(), "Acme"), StatsSources{})
		f.exporter.result = nil
		f.exporter.err = export.NewRenderError("RENDER_TIMEOUT", "chart capture timed out", context.DeadlineExceeded)

		w := serve(f.router, http.MethodPost, "/reports/export", map[string]any{
			"report_type": "dashboard-charts",
			"format":      "chart-snapshot",
		})
		resp := decodeResponse(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, dto.NormalizeErrorCode("RENDER_TIMEOUT"), resp.Error.Code)
		assert.Equal(t, dto.GetHTTPStatus(resp.Error.Code), w.Code)
	})
}

func TestReportHandler_Types(t *testing.T) {
	f := newReportFixture(t, report.EmptyPayload(time.Now(), "Acme"), StatsSources{})

	w := serve(f.router, http.MethodGet, "/reports/types", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataMap(t, w)
	assert.Equal(t, true, data["enabled"])
	assert.Contains(t, data["formats"], "spreadsheet")
	assert.Contains(t, data["report_types"], "summary")
}

func TestReportHandler_Schedules(t *testing.T) {
	f := newReportFixture(t, report.EmptyPayload(time.Now(), "Acme"), StatsSources{})

	w := serve(f.router, http.MethodPost, "/reports/schedules", map[string]any{
		"report_type": "financial",
		"cadence":     "weekly",
		"recipients":  []string{"cfo@example.com"},
		"format":      "spreadsheet",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := dataMap(t, w)
	id := created["id"].(string)
	assert.Equal(t, true, created["active"])
	assert.Equal(t, f.userID.String(), created["created_by"])
	assert.NotEmpty(t, created["next_run_at"])

	t.Run("invalid recipient", func(t *testing.T) {
		w := serve(f.router, http.MethodPost, "/reports/schedules", map[string]any{
			"report_type": "financial",
			"cadence":     "weekly",
			"recipients":  []string{"not-an-email"},
			"format":      "spreadsheet",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list", func(t *testing.T) {
		w := serve(f.router, http.MethodGet, "/reports/schedules?report_type=financial", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(1), decodeResponse(t, w).Meta.Total)
	})

	t.Run("run now delivers without moving the next run", func(t *testing.T) {
		w := serve(f.router, http.MethodPost, "/reports/schedules/"+id+"/run", nil)
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
		require.Len(t, f.deliverer.deliveries, 1)
		assert.Equal(t, []string{"cfo@example.com"}, f.deliverer.deliveries[0].Recipients)

		w = serve(f.router, http.MethodGet, "/reports/schedules/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
		before, err := time.Parse(time.RFC3339Nano, created["next_run_at"].(string))
		require.NoError(t, err)
		after, err := time.Parse(time.RFC3339Nano, dataMap(t, w)["next_run_at"].(string))
		require.NoError(t, err)
		assert.True(t, before.Equal(after), "next run moved from %s to %s", before, after)
	})

	t.Run("deactivated schedule cannot run", func(t *testing.T) {
		w := serve(f.router, http.MethodPost, "/reports/schedules/"+id+"/deactivate", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, dataMap(t, w)["active"])

		w = serve(f.router, http.MethodPost, "/reports/schedules/"+id+"/run", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, serve(f.router, http.MethodDelete, "/reports/schedules/"+id, nil).Code)
		assert.Equal(t, http.StatusNotFound, serve(f.router, http.MethodGet, "/reports/schedules/"+id, nil).Code)
	})
}

func TestReportHandler_Stats(t *testing.T) {
	t.Run("serves the rollup", func(t *testing.T) {
		src := financeStatsFunc(func(context.Context) (report.FinanceStats, error) {
			return report.FinanceStats{
				TotalRevenue: decimal.NewFromInt(1000),
				PaidRevenue:  decimal.NewFromInt(400),
				InvoiceCount: 3,
			}, nil
		})
		f := newReportFixture(t, report.EmptyPayload(time.Now(), "Acme"), StatsSources{Finance: src})

		w := serve(f.router, http.MethodGet, "/invoices/stats", nil)
		require.Equal(t, http.StatusOK, w.Code)
		data := dataMap(t, w)
		assert.Equal(t, float64(1000), data["total_revenue"])
		assert.Equal(t, float64(3), data["invoice_count"])
		assert.Equal(t, map[string]any{}, data["invoices_by_status"])
	})

	t.Run("store failure", func(t *testing.T) {
		src := financeStatsFunc(func(context.Context) (report.FinanceStats, error) {
			return report.FinanceStats{}, errors.New("connection reset")
		})
		f := newReportFixture(t, report.EmptyPayload(time.Now(), "Acme"), StatsSources{Finance: src})

		w := serve(f.router, http.MethodGet, "/invoices/stats", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})

	t.Run("missing source", func(t *testing.T) {
		f := newReportFixture(t, report.EmptyPayload(time.Now(), "Acme"), StatsSources{})
		assert.Equal(t, http.StatusNotFound, serve(f.router, http.MethodGet, "/sales/stats", nil).Code)
	})
}
