package report

import (
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/finance"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/hr"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/procurement"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/project"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// The Summarize functions are pure reductions. They accept nil or empty
// input, never mutate records, and guard every division so a zero
// denominator yields zero. Inputs are trusted to be valid; validation
// happens where records are written.

// ratioScale is the number of decimal places kept for averages and rates
const ratioScale = 2

var hundred = decimal.NewFromInt(100)

// SummarizeFinance reduces invoices and expenses into FinanceStats
func SummarizeFinance(invoices []finance.Invoice, expenses []finance.Expense) FinanceStats {
	s := FinanceStats{
		TotalRevenue:       decimal.Zero,
		PaidRevenue:        decimal.Zero,
		OutstandingRevenue: decimal.Zero,
		TotalExpenses:      decimal.Zero,
		ApprovedExpenses:   decimal.Zero,
		InvoiceCount:       len(invoices),
		ExpenseCount:       len(expenses),
		InvoicesByStatus:   make(map[string]int),
		ExpensesByCategory: make(map[string]decimal.Decimal),
	}

	for i := range invoices {
		inv := &invoices[i]
		s.TotalRevenue = s.TotalRevenue.Add(inv.Amount)
		s.InvoicesByStatus[string(inv.Status)]++
		switch inv.Status {
		case finance.InvoiceStatusPaid:
			s.PaidRevenue = s.PaidRevenue.Add(inv.Amount)
		case finance.InvoiceStatusSent, finance.InvoiceStatusOverdue:
			s.OutstandingRevenue = s.OutstandingRevenue.Add(inv.Amount)
		}
	}

	for i := range expenses {
		exp := &expenses[i]
		s.TotalExpenses = s.TotalExpenses.Add(exp.Amount)
		cat := string(exp.Category)
		s.ExpensesByCategory[cat] = s.ExpensesByCategory[cat].Add(exp.Amount)
		if exp.Status == finance.ExpenseStatusApproved {
			s.ApprovedExpenses = s.ApprovedExpenses.Add(exp.Amount)
		}
	}

	s.NetProfit = s.PaidRevenue.Sub(s.TotalExpenses)
	return s
}

// SummarizeEmployees reduces employees into EmployeeStats
func SummarizeEmployees(employees []hr.Employee) EmployeeStats {
	s := EmployeeStats{
		Total:         len(employees),
		ByStatus:      make(map[string]int),
		Departments:   make(map[string]int),
		TotalSalary:   decimal.Zero,
		AverageSalary: decimal.Zero,
	}

	for i := range employees {
		e := &employees[i]
		s.ByStatus[string(e.Status)]++
		if !e.IsActive() {
			continue
		}
		s.Active++
		s.Departments[e.Department]++
		s.TotalSalary = s.TotalSalary.Add(e.SalaryOrZero())
	}

	s.AverageSalary = safeDiv(s.TotalSalary, s.Active)
	return s
}

// SummarizeProjects reduces projects and tasks into ProjectStats. A task is
// overdue when its due date is before now and it is neither done nor cancelled.
func SummarizeProjects(projects []project.Project, tasks []project.Task, now time.Time) ProjectStats {
	s := ProjectStats{
		TotalProjects:     len(projects),
		TotalTasks:        len(tasks),
		ProjectsByStatus:  make(map[string]int),
		TasksByStatus:     make(map[string]int),
		AverageCompletion: decimal.Zero,
		TotalBudget:       decimal.Zero,
	}

	progress := decimal.Zero
	for i := range projects {
		p := &projects[i]
		s.ProjectsByStatus[string(p.Status)]++
		s.TotalBudget = s.TotalBudget.Add(p.Budget)
		progress = progress.Add(decimal.NewFromInt(int64(p.Progress)))
	}
	s.AverageCompletion = safeDiv(progress, len(projects))

	for i := range tasks {
		t := &tasks[i]
		s.TasksByStatus[string(t.Status)]++
		if t.IsOverdue(now) {
			s.OverdueTasks++
		}
	}
	return s
}

// SummarizeProcurement reduces purchase requests into ProcurementStats
func SummarizeProcurement(requests []procurement.Request) ProcurementStats {
	s := ProcurementStats{
		Total:          len(requests),
		ByStatus:       make(map[string]int),
		TotalBudget:    decimal.Zero,
		PendingBudget:  decimal.Zero,
		ApprovedBudget: decimal.Zero,
	}

	for i := range requests {
		r := &requests[i]
		s.ByStatus[string(r.Status)]++
		s.TotalBudget = s.TotalBudget.Add(r.EstimatedAmount)
		switch r.Status {
		case procurement.StatusPendingApproval:
			s.PendingApproval++
			s.PendingBudget = s.PendingBudget.Add(r.EstimatedAmount)
		case procurement.StatusApproved:
			s.Approved++
			s.ApprovedBudget = s.ApprovedBudget.Add(r.EstimatedAmount)
		case procurement.StatusRejected:
			s.Rejected++
		}
	}
	return s
}

// SummarizeSales reduces leads and opportunities into SalesStats.
// ConversionRate is the percentage of leads marked converted.
func SummarizeSales(leads []sales.Lead, opportunities []sales.Opportunity) SalesStats {
	s := SalesStats{
		TotalLeads:           len(leads),
		LeadsByStatus:        make(map[string]int),
		TotalOpportunities:   len(opportunities),
		OpportunitiesByStage: make(map[string]int),
		PipelineValue:        decimal.Zero,
		WeightedPipeline:     decimal.Zero,
		WonValue:             decimal.Zero,
		ConversionRate:       decimal.Zero,
	}

	converted := 0
	for i := range leads {
		s.LeadsByStatus[string(leads[i].Status)]++
		if leads[i].Status == sales.LeadStatusConverted {
			converted++
		}
	}
	s.ConversionRate = safeDiv(decimal.NewFromInt(int64(converted)).Mul(hundred), len(leads))

	for i := range opportunities {
		o := &opportunities[i]
		s.OpportunitiesByStage[string(o.Stage)]++
		switch {
		case o.Stage == sales.StageWon:
			s.WonValue = s.WonValue.Add(o.Value)
		case o.Stage.IsOpen():
			s.PipelineValue = s.PipelineValue.Add(o.Value)
			s.WeightedPipeline = s.WeightedPipeline.Add(o.WeightedValue())
		}
	}
	return s
}

func safeDiv(sum decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(n))).Round(ratioScale)
}
