package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/finance"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/hr"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/procurement"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/project"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/sales"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/logger"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Record readers used by the assembler. Each returns an empty slice, not
// an error, when the store holds no records.
type (
	InvoiceReader interface {
		ListAll(ctx context.Context) ([]finance.Invoice, error)
	}
	ExpenseReader interface {
		ListAll(ctx context.Context) ([]finance.Expense, error)
	}
	EmployeeReader interface {
		ListAll(ctx context.Context) ([]hr.Employee, error)
	}
	ProjectReader interface {
		ListAll(ctx context.Context) ([]project.Project, error)
	}
	TaskReader interface {
		ListAll(ctx context.Context) ([]project.Task, error)
	}
	RequestReader interface {
		ListAll(ctx context.Context) ([]procurement.Request, error)
	}
	LeadReader interface {
		ListAll(ctx context.Context) ([]sales.Lead, error)
	}
	OpportunityReader interface {
		ListAll(ctx context.Context) ([]sales.Opportunity, error)
	}
)

// Sources groups the record stores the assembler reads from
type Sources struct {
	Invoices      InvoiceReader
	Expenses      ExpenseReader
	Employees     EmployeeReader
	Projects      ProjectReader
	Tasks         TaskReader
	Requests      RequestReader
	Leads         LeadReader
	Opportunities OpportunityReader
}

// DomainResult is the outcome of fetching and summarising one domain. When
// Err is set, Stats holds the statistics of an empty record set.
type DomainResult[T any] struct {
	Stats T
	Err   error
}

// Records keeps the raw records behind a payload for export. Slices of a
// degraded domain are empty.
type Records struct {
	Invoices  []finance.Invoice
	Expenses  []finance.Expense
	Employees []hr.Employee
	Projects  []project.Project
	Tasks     []project.Task
	Requests  []procurement.Request
}

// Assembler builds the composite report from the four record domains.
// Domains are fetched concurrently and a failing domain never fails the
// report: it falls back to its zero statistics and is listed in
// Payload.Degraded.
type Assembler struct {
	sources     Sources
	companyName string
	metrics     *telemetry.ReportMetrics
	logger      *zap.Logger
	now         func() time.Time
}

// NewAssembler creates an Assembler. A nil metrics or logger is replaced with a no-op.
func NewAssembler(sources Sources, companyName string, metrics *telemetry.ReportMetrics, log *zap.Logger) *Assembler {
	if metrics == nil {
		metrics = telemetry.NoopReportMetrics()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{
		sources:     sources,
		companyName: companyName,
		metrics:     metrics,
		logger:      log,
		now:         time.Now,
	}
}

// Assemble returns the composite report. It never returns nil.
func (a *Assembler) Assemble(ctx context.Context) *report.Payload {
	payload, _ := a.AssembleWithRecords(ctx)
	return payload
}

// AssembleWithRecords returns the composite report together with the
// records it was computed from.
func (a *Assembler) AssembleWithRecords(ctx context.Context) (*report.Payload, *Records) {
	ctx, span := telemetry.StartSpan(ctx, "report.assemble")
	defer span.End()

	now := a.now()
	records := &Records{}

	var (
		fin  DomainResult[report.FinanceStats]
		emp  DomainResult[report.EmployeeStats]
		proj DomainResult[report.ProjectStats]
		proc DomainResult[report.ProcurementStats]
		wg   sync.WaitGroup
	)
	wg.Add(len(report.Domains))

	// each goroutine writes only its own result and its own Records fields
	go func() {
		defer wg.Done()
		fin = runDomain(ctx, a, report.DomainFinance, report.SummarizeFinance(nil, nil),
			func(ctx context.Context) (report.FinanceStats, error) {
				invoices, err := a.sources.Invoices.ListAll(ctx)
				if err != nil {
					return report.FinanceStats{}, fmt.Errorf("list invoices: %w", err)
				}
				expenses, err := a.sources.Expenses.ListAll(ctx)
				if err != nil {
					return report.FinanceStats{}, fmt.Errorf("list expenses: %w", err)
				}
				stats := report.SummarizeFinance(invoices, expenses)
				records.Invoices, records.Expenses = invoices, expenses
				return stats, nil
			})
	}()
	go func() {
		defer wg.Done()
		emp = runDomain(ctx, a, report.DomainEmployees, report.SummarizeEmployees(nil),
			func(ctx context.Context) (report.EmployeeStats, error) {
				employees, err := a.sources.Employees.ListAll(ctx)
				if err != nil {
					return report.EmployeeStats{}, fmt.Errorf("list employees: %w", err)
				}
				stats := report.SummarizeEmployees(employees)
				records.Employees = employees
				return stats, nil
			})
	}()
	go func() {
		defer wg.Done()
		proj = runDomain(ctx, a, report.DomainProjects, report.SummarizeProjects(nil, nil, now),
			func(ctx context.Context) (report.ProjectStats, error) {
				projects, err := a.sources.Projects.ListAll(ctx)
				if err != nil {
					return report.ProjectStats{}, fmt.Errorf("list projects: %w", err)
				}
				tasks, err := a.sources.Tasks.ListAll(ctx)
				if err != nil {
					return report.ProjectStats{}, fmt.Errorf("list tasks: %w", err)
				}
				stats := report.SummarizeProjects(projects, tasks, now)
				records.Projects, records.Tasks = projects, tasks
				return stats, nil
			})
	}()
	go func() {
		defer wg.Done()
		proc = runDomain(ctx, a, report.DomainProcurement, report.SummarizeProcurement(nil),
			func(ctx context.Context) (report.ProcurementStats, error) {
				requests, err := a.sources.Requests.ListAll(ctx)
				if err != nil {
					return report.ProcurementStats{}, fmt.Errorf("list purchase requests: %w", err)
				}
				stats := report.SummarizeProcurement(requests)
				records.Requests = requests
				return stats, nil
			})
	}()
	wg.Wait()

	payload := &report.Payload{
		GeneratedAt: now,
		CompanyName: a.companyName,
		Finance:     fin.Stats,
		Employees:   emp.Stats,
		Projects:    proj.Stats,
		Procurement: proc.Stats,
		Degraded:    []report.Domain{},
	}
	// fixed order so the degraded list is deterministic
	for _, d := range []struct {
		domain report.Domain
		err    error
	}{
		{report.DomainFinance, fin.Err},
		{report.DomainEmployees, emp.Err},
		{report.DomainProjects, proj.Err},
		{report.DomainProcurement, proc.Err},
	} {
		if d.err != nil {
			payload.Degraded = append(payload.Degraded, d.domain)
		}
	}

	telemetry.SetAttributes(span, "degraded_domains", len(payload.Degraded))
	a.metrics.RecordAssembly(ctx, len(payload.Degraded))
	return payload, records
}

// SalesRecords returns every lead and opportunity
func (a *Assembler) SalesRecords(ctx context.Context) ([]sales.Lead, []sales.Opportunity, error) {
	leads, err := a.sources.Leads.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list leads: %w", err)
	}
	opportunities, err := a.sources.Opportunities.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list opportunities: %w", err)
	}
	return leads, opportunities, nil
}

// SalesStats summarises the CRM pipeline. Unlike the composite report,
// a failing store is returned as an error.
func (a *Assembler) SalesStats(ctx context.Context) (*report.SalesStats, error) {
	ctx, span := telemetry.StartSpan(ctx, "report.sales_stats")
	defer span.End()

	leads, opportunities, err := a.SalesRecords(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	stats := report.SummarizeSales(leads, opportunities)
	return &stats, nil
}

// runDomain fetches and summarises one domain, converting an error or a
// panic into the fallback statistics.
func runDomain[T any](ctx context.Context, a *Assembler, domain report.Domain, fallback T, fetch func(context.Context) (T, error)) (result DomainResult[T]) {
	ctx, span := telemetry.StartSpan(ctx, "report.domain", "domain", string(domain))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			result = DomainResult[T]{Err: fmt.Errorf("panic while summarising %s: %v", domain, r)}
		}
		if result.Err == nil {
			return
		}
		result.Stats = fallback
		telemetry.RecordError(span, result.Err)
		a.metrics.RecordDomainFailure(ctx, string(domain))
		logger.Using(ctx, a.logger).Warn("Report domain unavailable, using empty statistics",
			zap.String("domain", string(domain)),
			zap.Error(result.Err),
		)
	}()

	stats, err := fetch(ctx)
	return DomainResult[T]{Stats: stats, Err: err}
}
