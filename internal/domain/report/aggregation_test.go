package report

import (
	"testing"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/finance"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/hr"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/procurement"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/project"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/sales"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func assertDec(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), append([]any{"want %d got %s", want, got.String()}, msgAndArgs...)...)
}

func TestSummarizeFinance_Scenario(t *testing.T) {
	invoices := []finance.Invoice{
		{Amount: dec(1000), Status: finance.InvoiceStatusPaid},
		{Amount: dec(500), Status: finance.InvoiceStatusDraft},
	}
	expenses := []finance.Expense{{Amount: dec(300), Status: finance.ExpenseStatusPending, Category: finance.ExpenseCategoryOffice}}

	s := SummarizeFinance(invoices, expenses)

	assertDec(t, 1500, s.TotalRevenue)
	assertDec(t, 1000, s.PaidRevenue)
	assertDec(t, 300, s.TotalExpenses)
	assertDec(t, 700, s.NetProfit)
	assertDec(t, 0, s.ApprovedExpenses)
	assert.Equal(t, map[string]int{"paid": 1, "draft": 1}, s.InvoicesByStatus)
	assertDec(t, 300, s.ExpensesByCategory["office"])
}

func TestSummarizeFinance_NegativeNetProfit(t *testing.T) {
	s := SummarizeFinance(
		[]finance.Invoice{{Amount: dec(100), Status: finance.InvoiceStatusPaid}, {Amount: dec(900), Status: finance.InvoiceStatusSent}},
		[]finance.Expense{{Amount: dec(250), Status: finance.ExpenseStatusApproved}, {Amount: dec(50), Status: finance.ExpenseStatusRejected}},
	)
	assertDec(t, -200, s.NetProfit)
	assertDec(t, 900, s.OutstandingRevenue)
	assertDec(t, 250, s.ApprovedExpenses)
	assertDec(t, 300, s.TotalExpenses, "every status counts toward total expenses")
}

func TestSummarizeEmployees_Scenario(t *testing.T) {
	s1, s2 := dec(1000), dec(2000)
	s := SummarizeEmployees([]hr.Employee{
		{Department: "Eng", Status: hr.EmployeeStatusActive, Salary: &s1},
		{Department: "Eng", Status: hr.EmployeeStatusInactive, Salary: &s2},
	})

	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Active)
	assert.Equal(t, map[string]int{"Eng": 1}, s.Departments)
	assertDec(t, 1000, s.TotalSalary)
	assertDec(t, 1000, s.AverageSalary)
}

func TestSummarizeEmployees_NoActive(t *testing.T) {
	s1 := dec(5000)
	s := SummarizeEmployees([]hr.Employee{
		{Department: "Ops", Status: hr.EmployeeStatusTerminated, Salary: &s1},
		{Department: "Ops", Status: hr.EmployeeStatusInactive},
	})
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 0, s.Active)
	assertDec(t, 0, s.AverageSalary)
	assert.Empty(t, s.Departments)
}

func TestSummarizeEmployees_MissingSalaryCountsAsZero(t *testing.T) {
	s1 := dec(3000)
	s := SummarizeEmployees([]hr.Employee{
		{Department: "Eng", Status: hr.EmployeeStatusActive, Salary: &s1},
		{Department: "Sales", Status: hr.EmployeeStatusActive},
	})
	assertDec(t, 3000, s.TotalSalary)
	assertDec(t, 1500, s.AverageSalary)
}

func TestSummarizeProjects_Scenario(t *testing.T) {
	s := SummarizeProjects([]project.Project{{Progress: 40}, {Progress: 80}}, nil, time.Now())
	assertDec(t, 60, s.AverageCompletion)
	assert.NotNil(t, s.TasksByStatus)
	assert.Empty(t, s.TasksByStatus)
}

func TestSummarizeProjects_Overdue(t *testing.T) {
	now := time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tasks := []project.Task{
		{Status: project.TaskStatusTodo, DueDate: &past},
		{Status: project.TaskStatusInProgress, DueDate: &past},
		{Status: project.TaskStatusDone, DueDate: &past},
		{Status: project.TaskStatusCancelled, DueDate: &past},
		{Status: project.TaskStatusTodo, DueDate: &future},
		{Status: project.TaskStatusTodo},
	}
	s := SummarizeProjects(nil, tasks, now)

	assert.Equal(t, 2, s.OverdueTasks)
	assert.Equal(t, 6, s.TotalTasks)
	assert.Equal(t, 3, s.TasksByStatus["todo"])
	assertDec(t, 0, s.AverageCompletion)
}

func TestSummarizeProcurement(t *testing.T) {
	s := SummarizeProcurement([]procurement.Request{
		{Status: procurement.StatusPendingApproval, EstimatedAmount: dec(100)},
		{Status: procurement.StatusPendingApproval, EstimatedAmount: dec(50)},
		{Status: procurement.StatusApproved, EstimatedAmount: dec(400)},
		{Status: procurement.StatusRejected, EstimatedAmount: dec(25)},
		{Status: procurement.StatusDraft, EstimatedAmount: dec(5)},
	})

	assert.Equal(t, 2, s.PendingApproval)
	assert.Equal(t, 1, s.Approved)
	assert.Equal(t, 1, s.Rejected)
	assert.Equal(t, 5, s.Total)
	assertDec(t, 580, s.TotalBudget)
	assertDec(t, 150, s.PendingBudget)
	assertDec(t, 400, s.ApprovedBudget)
}

func TestSummarizeSales(t *testing.T) {
	s := SummarizeSales(
		[]sales.Lead{
			{Status: sales.LeadStatusConverted},
			{Status: sales.LeadStatusNew},
			{Status: sales.LeadStatusLost},
			{Status: sales.LeadStatusConverted},
		},
		[]sales.Opportunity{
			{Stage: sales.StageProposal, Value: dec(1000), Probability: 50},
			{Stage: sales.StageWon, Value: dec(700), Probability: 100},
			{Stage: sales.StageLost, Value: dec(300)},
		},
	)

	assertDec(t, 50, s.ConversionRate)
	assertDec(t, 1000, s.PipelineValue)
	assertDec(t, 500, s.WeightedPipeline)
	assertDec(t, 700, s.WonValue)
	assert.Equal(t, 1, s.OpportunitiesByStage["lost"])
}

func TestSummarize_EmptyInputs(t *testing.T) {
	now := time.Now()

	f := SummarizeFinance(nil, nil)
	assertDec(t, 0, f.TotalRevenue)
	assertDec(t, 0, f.NetProfit)
	assert.NotNil(t, f.InvoicesByStatus)

	e := SummarizeEmployees([]hr.Employee{})
	assert.Zero(t, e.Total)
	assertDec(t, 0, e.AverageSalary)
	assert.NotNil(t, e.Departments)

	p := SummarizeProjects(nil, nil, now)
	assertDec(t, 0, p.AverageCompletion)
	assert.NotNil(t, p.ProjectsByStatus)

	pr := SummarizeProcurement(nil)
	assertDec(t, 0, pr.PendingBudget)

	s := SummarizeSales(nil, nil)
	assertDec(t, 0, s.ConversionRate)
}

func TestEmptyPayload(t *testing.T) {
	now := time.Now()
	p := EmptyPayload(now, "Acme")

	assert.Equal(t, "Acme", p.CompanyName)
	assert.Empty(t, p.Degraded)
	assert.False(t, p.IsDegraded(DomainFinance))
	assertDec(t, 0, p.Finance.TotalRevenue)

	p.Degraded = append(p.Degraded, DomainProjects)
	assert.True(t, p.IsDegraded(DomainProjects))
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 10, 3, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "financial_2026-10-03.pdf", Filename(ReportTypeFinancial, FormatTabularDocument, at))
	assert.Equal(t, "employees_2026-10-03.xlsx", Filename(ReportTypeEmployees, FormatSpreadsheet, at))
	assert.Equal(t, "dashboard-charts_2026-10-03.pdf", Filename(ReportTypeDashboardCharts, FormatChartSnapshot, at))
}
