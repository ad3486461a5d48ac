package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	reportapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/gin-gonic/gin"
)

// Response headers set on exported artifacts
const (
	HeaderSkippedRegions = "X-Skipped-Regions"
	HeaderFileID         = "X-File-ID"
)

// SummaryAssembler builds the composite report payload
type SummaryAssembler interface {
	Assemble(ctx context.Context) *report.Payload
}

// ReportExporter renders and stores a report artifact
type ReportExporter interface {
	Export(ctx context.Context, req reportapp.ExportRequest) (*reportapp.ExportResult, error)
}

type statsSource[T any] interface {
	Stats(ctx context.Context) (T, error)
}

// StatsSources are the per-module rollups served under each module's /stats
type StatsSources struct {
	Finance     statsSource[report.FinanceStats]
	Employees   statsSource[report.EmployeeStats]
	Projects    statsSource[report.ProjectStats]
	Procurement statsSource[report.ProcurementStats]
	Sales       statsSource[report.SalesStats]
}

// ReportHandler serves the summary report, exports, schedules and module stats
type ReportHandler struct {
	BaseHandler
	assembler        SummaryAssembler
	exporter         ReportExporter
	schedules        *reportapp.ScheduleService
	stats            StatsSources
	schedulerEnabled bool
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(
	assembler SummaryAssembler,
	exporter ReportExporter,
	schedules *reportapp.ScheduleService,
	stats StatsSources,
	schedulerEnabled bool,
) *ReportHandler {
	return &ReportHandler{
		assembler:        assembler,
		exporter:         exporter,
		schedules:        schedules,
		stats:            stats,
		schedulerEnabled: schedulerEnabled,
	}
}

// Summary godoc
// @ID           getReportSummary
//
//	@Summary		Composite business report
//	@Description	Finance, employee, project and procurement rollups. Domains whose store failed are zeroed and listed in degraded_domains.
//	@Tags			reports
//	@Produce		json
//	@Success		200	{object}	APIResponse[reportapp.SummaryResponse]
//	@Security		BearerAuth
//	@Router			/reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	payload := h.assembler.Assemble(c.Request.Context())
	h.Success(c, reportapp.ToSummaryResponse(payload))
}

// Export godoc
// @ID           exportReport
//
//	@Summary		Export a report
//	@Description	Renders the report as a tabular document (PDF), spreadsheet (XLSX) or chart snapshot and returns the file
//	@Tags			reports
//	@Accept			json
//	@Produce		octet-stream
//	@Param			request	body	reportapp.ExportRequest	true	"Export request"
//	@Success		200
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/export [post]
func (h *ReportHandler) Export(c *gin.Context) {
	var req reportapp.ExportRequest
	if !h.BindJSON(c, &req) {
		return
	}
	req.RequestedBy = getUserID(c)

	result, err := h.exporter.Export(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	artifact := result.Artifact
	if len(artifact.Skipped) > 0 {
		c.Header(HeaderSkippedRegions, strings.Join(artifact.Skipped, ","))
	}
	if result.File != nil {
		c.Header(HeaderFileID, result.File.ID.String())
	}
	c.Header("Content-Disposition", attachment(artifact.Filename))
	c.Header("Content-Length", strconv.Itoa(len(artifact.Data)))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// Types godoc
// @ID           getReportTypes
//
//	@Summary		Exportable report types and formats
//	@Tags			reports
//	@Produce		json
//	@Success		200	{object}	APIResponse[SchedulerStatusData]
//	@Security		BearerAuth
//	@Router			/reports/types [get]
func (h *ReportHandler) Types(c *gin.Context) {
	h.Success(c, SchedulerStatusData{
		Enabled: h.schedulerEnabled,
		ReportTypes: []string{
			string(report.ReportTypeSummary), string(report.ReportTypeFinancial),
			string(report.ReportTypeInvoices), string(report.ReportTypeExpenses),
			string(report.ReportTypeEmployees), string(report.ReportTypeProjects),
			string(report.ReportTypeProcurement), string(report.ReportTypeSales),
			string(report.ReportTypeDashboardCharts),
		},
		Formats: []string{
			string(report.FormatTabularDocument),
			string(report.FormatSpreadsheet),
			string(report.FormatChartSnapshot),
		},
	})
}

// CreateSchedule godoc
// @ID           createReportSchedule
//
//	@Summary		Schedule a recurring report
//	@Tags			reports
//	@Accept			json
//	@Produce		json
//	@Param			request	body		reportapp.CreateScheduleRequest	true	"Schedule"
//	@Success		201		{object}	APIResponse[reportapp.ScheduleResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/schedules [post]
func (h *ReportHandler) CreateSchedule(c *gin.Context) {
	var req reportapp.CreateScheduleRequest
	if !h.BindJSON(c, &req) {
		return
	}
	req.CreatedBy = getUserID(c)

	schedule, err := h.schedules.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, schedule)
}

// ListSchedules godoc
// @ID           listReportSchedules
//
//	@Summary		List report schedules
//	@Tags			reports
//	@Produce		json
//	@Param			report_type	query		string	false	"Report type"
//	@Param			active		query		bool	false	"Active only"
//	@Param			page		query		int		false	"Page"		default(1)
//	@Param			page_size	query		int		false	"Page size"	default(20)
//	@Success		200			{object}	APIResponse[[]reportapp.ScheduleResponse]
//	@Security		BearerAuth
//	@Router			/reports/schedules [get]
func (h *ReportHandler) ListSchedules(c *gin.Context) {
	var filter reportapp.ScheduleListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	schedules, total, err := h.schedules.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, schedules, total, filter.Page, filter.PageSize)
}

// GetSchedule godoc
// @ID           getReportSchedule
//
//	@Summary		Get a report schedule
//	@Tags			reports
//	@Produce		json
//	@Param			id	path		string	true	"Schedule ID"	format(uuid)
//	@Success		200	{object}	APIResponse[reportapp.ScheduleResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/schedules/{id} [get]
func (h *ReportHandler) GetSchedule(c *gin.Context) {
	id, ok := h.parseID(c, "schedule")
	if !ok {
		return
	}
	schedule, err := h.schedules.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, schedule)
}

// DeactivateSchedule godoc
// @ID           deactivateReportSchedule
//
//	@Summary		Pause a report schedule
//	@Tags			reports
//	@Produce		json
//	@Param			id	path		string	true	"Schedule ID"	format(uuid)
//	@Success		200	{object}	APIResponse[reportapp.ScheduleResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/schedules/{id}/deactivate [post]
func (h *ReportHandler) DeactivateSchedule(c *gin.Context) {
	id, ok := h.parseID(c, "schedule")
	if !ok {
		return
	}
	schedule, err := h.schedules.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, schedule)
}

// RunSchedule godoc
// @ID           runReportSchedule
//
//	@Summary		Run a report schedule now
//	@Description	Exports and delivers immediately without moving the next run
//	@Tags			reports
//	@Param			id	path	string	true	"Schedule ID"	format(uuid)
//	@Success		202
//	@Failure		404	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/schedules/{id}/run [post]
func (h *ReportHandler) RunSchedule(c *gin.Context) {
	id, ok := h.parseID(c, "schedule")
	if !ok {
		return
	}
	if err := h.schedules.RunNow(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// DeleteSchedule godoc
// @ID           deleteReportSchedule
//
//	@Summary		Delete a report schedule
//	@Tags			reports
//	@Param			id	path	string	true	"Schedule ID"	format(uuid)
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/reports/schedules/{id} [delete]
func (h *ReportHandler) DeleteSchedule(c *gin.Context) {
	id, ok := h.parseID(c, "schedule")
	if !ok {
		return
	}
	if err := h.schedules.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// FinanceStats godoc
// @ID           getFinanceStats
//
//	@Summary		Finance rollup
//	@Tags			finance
//	@Produce		json
//	@Success		200	{object}	APIResponse[reportapp.FinanceStatsResponse]
//	@Security		BearerAuth
//	@Router			/invoices/stats [get]
func (h *ReportHandler) FinanceStats(c *gin.Context) {
	serveStats(h, c, h.stats.Finance, reportapp.ToFinanceStatsResponse)
}

// EmployeeStats godoc
// @ID           getEmployeeStats
//
//	@Summary		Employee rollup
//	@Tags			employees
//	@Produce		json
//	@Success		200	{object}	APIResponse[reportapp.EmployeeStatsResponse]
//	@Security		BearerAuth
//	@Router			/employees/stats [get]
func (h *ReportHandler) EmployeeStats(c *gin.Context) {
	serveStats(h, c, h.stats.Employees, reportapp.ToEmployeeStatsResponse)
}

// ProjectStats godoc
// @ID           getProjectStats
//
//	@Summary		Project and task rollup
//	@Tags			projects
//	@Produce		json
//	@Success		200	{object}	APIResponse[reportapp.ProjectStatsResponse]
//	@Security		BearerAuth
//	@Router			/projects/stats [get]
func (h *ReportHandler) ProjectStats(c *gin.Context) {
	serveStats(h, c, h.stats.Projects, reportapp.ToProjectStatsResponse)
}

// ProcurementStats godoc
// @ID           getProcurementStats
//
//	@Summary		Procurement rollup
//	@Tags			procurement
//	@Produce		json
//	@Success		200	{object}	APIResponse[reportapp.ProcurementStatsResponse]
//	@Security		BearerAuth
//	@Router			/procurement/requests/stats [get]
func (h *ReportHandler) ProcurementStats(c *gin.Context) {
	serveStats(h, c, h.stats.Procurement, reportapp.ToProcurementStatsResponse)
}

// SalesStats godoc
// @ID           getSalesStats
//
//	@Summary		CRM pipeline rollup
//	@Tags			sales
//	@Produce		json
//	@Success		200	{object}	APIResponse[reportapp.SalesStatsResponse]
//	@Security		BearerAuth
//	@Router			/sales/stats [get]
func (h *ReportHandler) SalesStats(c *gin.Context) {
	serveStats(h, c, h.stats.Sales, reportapp.ToSalesStatsResponse)
}

func serveStats[T, R any](h *ReportHandler, c *gin.Context, src statsSource[T], convert func(T) R) {
	if src == nil {
		h.NotFound(c, "Statistics are not available")
		return
	}
	stats, err := src.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, convert(stats))
}
