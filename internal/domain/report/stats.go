package report

import "github.com/shopspring/decimal"

// FinanceStats summarises invoices and expenses.
//
// TotalExpenses counts every expense regardless of approval status;
// ApprovedExpenses is reported alongside it and is not used in NetProfit.
type FinanceStats struct {
	TotalRevenue       decimal.Decimal
	PaidRevenue        decimal.Decimal
	OutstandingRevenue decimal.Decimal
	TotalExpenses      decimal.Decimal
	ApprovedExpenses   decimal.Decimal
	NetProfit          decimal.Decimal
	InvoiceCount       int
	ExpenseCount       int
	InvoicesByStatus   map[string]int
	ExpensesByCategory map[string]decimal.Decimal
}

// EmployeeStats summarises headcount and payroll. Departments, TotalSalary and
// AverageSalary consider active employees only.
type EmployeeStats struct {
	Total         int
	Active        int
	ByStatus      map[string]int
	Departments   map[string]int
	TotalSalary   decimal.Decimal
	AverageSalary decimal.Decimal
}

// ProjectStats summarises projects and their tasks
type ProjectStats struct {
	TotalProjects     int
	TotalTasks        int
	ProjectsByStatus  map[string]int
	TasksByStatus     map[string]int
	OverdueTasks      int
	AverageCompletion decimal.Decimal
	TotalBudget       decimal.Decimal
}

// ProcurementStats summarises purchase requests
type ProcurementStats struct {
	Total           int
	PendingApproval int
	Approved        int
	Rejected        int
	ByStatus        map[string]int
	TotalBudget     decimal.Decimal
	PendingBudget   decimal.Decimal
	ApprovedBudget  decimal.Decimal
}

// SalesStats summarises the CRM pipeline. It is served on its own and is not
// part of the composite Payload.
type SalesStats struct {
	TotalLeads           int
	LeadsByStatus        map[string]int
	TotalOpportunities   int
	OpportunitiesByStage map[string]int
	PipelineValue        decimal.Decimal
	WeightedPipeline     decimal.Decimal
	WonValue             decimal.Decimal
	ConversionRate       decimal.Decimal
}
