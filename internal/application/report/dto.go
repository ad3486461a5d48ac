package report

import (
	"time"

	filesapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/files"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExportRequest represents a request to export a report
type ExportRequest struct {
	ReportType  string     `json:"report_type" binding:"required"`
	Format      string     `json:"format" binding:"required,oneof=tabular-document spreadsheet chart-snapshot"`
	ChartKeys   []string   `json:"chart_keys" binding:"omitempty,max=20,dive,min=1,max=64"`
	RequestedBy *uuid.UUID `json:"-"`
}

// ExportResult is a rendered artifact and, when persisted, its file record
type ExportResult struct {
	Artifact *report.Artifact
	File     *filesapp.FileResponse
}

// FinanceStatsResponse represents finance statistics in API responses
type FinanceStatsResponse struct {
	TotalRevenue       float64            `json:"total_revenue"`
	PaidRevenue        float64            `json:"paid_revenue"`
	OutstandingRevenue float64            `json:"outstanding_revenue"`
	TotalExpenses      float64            `json:"total_expenses"`
	ApprovedExpenses   float64            `json:"approved_expenses"`
	NetProfit          float64            `json:"net_profit"`
	InvoiceCount       int                `json:"invoice_count"`
	ExpenseCount       int                `json:"expense_count"`
	InvoicesByStatus   map[string]int     `json:"invoices_by_status"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
}

// EmployeeStatsResponse represents employee statistics in API responses
type EmployeeStatsResponse struct {
	Total         int            `json:"total"`
	Active        int            `json:"active"`
	ByStatus      map[string]int `json:"by_status"`
	Departments   map[string]int `json:"departments"`
	TotalSalary   float64        `json:"total_salary"`
	AverageSalary float64        `json:"average_salary"`
}

// ProjectStatsResponse represents project statistics in API responses
type ProjectStatsResponse struct {
	TotalProjects     int            `json:"total_projects"`
	TotalTasks        int            `json:"total_tasks"`
	ProjectsByStatus  map[string]int `json:"projects_by_status"`
	TasksByStatus     map[string]int `json:"tasks_by_status"`
	OverdueTasks      int            `json:"overdue_tasks"`
	AverageCompletion float64        `json:"average_completion"`
	TotalBudget       float64        `json:"total_budget"`
}

// ProcurementStatsResponse represents procurement statistics in API responses
type ProcurementStatsResponse struct {
	Total           int            `json:"total"`
	PendingApproval int            `json:"pending_approval"`
	Approved        int            `json:"approved"`
	Rejected        int            `json:"rejected"`
	ByStatus        map[string]int `json:"by_status"`
	TotalBudget     float64        `json:"total_budget"`
	PendingBudget   float64        `json:"pending_budget"`
	ApprovedBudget  float64        `json:"approved_budget"`
}

// SalesStatsResponse represents CRM pipeline statistics in API responses
type SalesStatsResponse struct {
	TotalLeads           int            `json:"total_leads"`
	LeadsByStatus        map[string]int `json:"leads_by_status"`
	TotalOpportunities   int            `json:"total_opportunities"`
	OpportunitiesByStage map[string]int `json:"opportunities_by_stage"`
	PipelineValue        float64        `json:"pipeline_value"`
	WeightedPipeline     float64        `json:"weighted_pipeline"`
	WonValue             float64        `json:"won_value"`
	ConversionRate       float64        `json:"conversion_rate"`
}

// SummaryResponse represents the composite report in API responses
type SummaryResponse struct {
	GeneratedAt     time.Time                `json:"generated_at"`
	CompanyName     string                   `json:"company_name"`
	Finance         FinanceStatsResponse     `json:"finance"`
	Employees       EmployeeStatsResponse    `json:"employees"`
	Projects        ProjectStatsResponse     `json:"projects"`
	Procurement     ProcurementStatsResponse `json:"procurement"`
	DegradedDomains []string                 `json:"degraded_domains"`
}

// ToFinanceStatsResponse converts FinanceStats to its response
func ToFinanceStatsResponse(s report.FinanceStats) FinanceStatsResponse {
	byCategory := make(map[string]float64, len(s.ExpensesByCategory))
	for k, v := range s.ExpensesByCategory {
		byCategory[k] = toFloat64(v)
	}
	return FinanceStatsResponse{
		TotalRevenue:       toFloat64(s.TotalRevenue),
		PaidRevenue:        toFloat64(s.PaidRevenue),
		OutstandingRevenue: toFloat64(s.OutstandingRevenue),
		TotalExpenses:      toFloat64(s.TotalExpenses),
		ApprovedExpenses:   toFloat64(s.ApprovedExpenses),
		NetProfit:          toFloat64(s.NetProfit),
		InvoiceCount:       s.InvoiceCount,
		ExpenseCount:       s.ExpenseCount,
		InvoicesByStatus:   nonNil(s.InvoicesByStatus),
		ExpensesByCategory: byCategory,
	}
}

// ToEmployeeStatsResponse converts EmployeeStats to its response
func ToEmployeeStatsResponse(s report.EmployeeStats) EmployeeStatsResponse {
	return EmployeeStatsResponse{
		Total:         s.Total,
		Active:        s.Active,
		ByStatus:      nonNil(s.ByStatus),
		Departments:   nonNil(s.Departments),
		TotalSalary:   toFloat64(s.TotalSalary),
		AverageSalary: toFloat64(s.AverageSalary),
	}
}

// ToProjectStatsResponse converts ProjectStats to its response
func ToProjectStatsResponse(s report.ProjectStats) ProjectStatsResponse {
	return ProjectStatsResponse{
		TotalProjects:     s.TotalProjects,
		TotalTasks:        s.TotalTasks,
		ProjectsByStatus:  nonNil(s.ProjectsByStatus),
		TasksByStatus:     nonNil(s.TasksByStatus),
		OverdueTasks:      s.OverdueTasks,
		AverageCompletion: toFloat64(s.AverageCompletion),
		TotalBudget:       toFloat64(s.TotalBudget),
	}
}

// ToProcurementStatsResponse converts ProcurementStats to its response
func ToProcurementStatsResponse(s report.ProcurementStats) ProcurementStatsResponse {
	return ProcurementStatsResponse{
		Total:           s.Total,
		PendingApproval: s.PendingApproval,
		Approved:        s.Approved,
		Rejected:        s.Rejected,
		ByStatus:        nonNil(s.ByStatus),
		TotalBudget:     toFloat64(s.TotalBudget),
		PendingBudget:   toFloat64(s.PendingBudget),
		ApprovedBudget:  toFloat64(s.ApprovedBudget),
	}
}

// ToSalesStatsResponse converts SalesStats to its response
func ToSalesStatsResponse(s report.SalesStats) SalesStatsResponse {
	return SalesStatsResponse{
		TotalLeads:           s.TotalLeads,
		LeadsByStatus:        nonNil(s.LeadsByStatus),
		TotalOpportunities:   s.TotalOpportunities,
		OpportunitiesByStage: nonNil(s.OpportunitiesByStage),
		PipelineValue:        toFloat64(s.PipelineValue),
		WeightedPipeline:     toFloat64(s.WeightedPipeline),
		WonValue:             toFloat64(s.WonValue),
		ConversionRate:       toFloat64(s.ConversionRate),
	}
}

// ToSummaryResponse converts a Payload to its response
func ToSummaryResponse(p *report.Payload) SummaryResponse {
	degraded := make([]string, len(p.Degraded))
	for i, d := range p.Degraded {
		degraded[i] = string(d)
	}
	return SummaryResponse{
		GeneratedAt:     p.GeneratedAt,
		CompanyName:     p.CompanyName,
		Finance:         ToFinanceStatsResponse(p.Finance),
		Employees:       ToEmployeeStatsResponse(p.Employees),
		Projects:        ToProjectStatsResponse(p.Projects),
		Procurement:     ToProcurementStatsResponse(p.Procurement),
		DegradedDomains: degraded,
	}
}

// CreateScheduleRequest represents a request to schedule a recurring report
type CreateScheduleRequest struct {
	ReportType string     `json:"report_type" binding:"required"`
	Cadence    string     `json:"cadence" binding:"required,oneof=daily weekly monthly"`
	Recipients []string   `json:"recipients" binding:"required,min=1,max=50,dive,email"`
	Format     string     `json:"format" binding:"required,oneof=tabular-document spreadsheet"`
	CreatedBy  *uuid.UUID `json:"-"`
}

// ScheduleListFilter represents filter options for the schedule list
type ScheduleListFilter struct {
	ReportType string `form:"report_type"`
	Active     *bool  `form:"active"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ScheduleResponse represents a report schedule in API responses
type ScheduleResponse struct {
	ID         uuid.UUID  `json:"id"`
	ReportType string     `json:"report_type"`
	Cadence    string     `json:"cadence"`
	Recipients []string   `json:"recipients"`
	Format     string     `json:"format"`
	NextRunAt  time.Time  `json:"next_run_at"`
	LastRunAt  *time.Time `json:"last_run_at,omitempty"`
	LastError  string     `json:"last_error,omitempty"`
	Active     bool       `json:"active"`
	CreatedBy  *uuid.UUID `json:"created_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ToScheduleResponse converts a Schedule to ScheduleResponse
func ToScheduleResponse(s *report.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:         s.ID,
		ReportType: string(s.ReportType),
		Cadence:    string(s.Cadence),
		Recipients: s.Recipients,
		Format:     string(s.Format),
		NextRunAt:  s.NextRunAt,
		LastRunAt:  s.LastRunAt,
		LastError:  s.LastError,
		Active:     s.Active,
		CreatedBy:  s.CreatedBy,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// ToScheduleResponses converts a slice of Schedule to ScheduleResponse
func ToScheduleResponses(schedules []report.Schedule) []ScheduleResponse {
	responses := make([]ScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = ToScheduleResponse(&schedules[i])
	}
	return responses
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func nonNil(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	return m
}
