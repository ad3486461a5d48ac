package report

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/finance"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/hr"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/procurement"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/project"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func col(key, title string, kind report.ColumnKind) report.Column {
	return report.Column{Key: key, Title: title, Kind: kind}
}

func newDocument(rt report.ReportType, company string, at time.Time, sections ...report.Section) *report.Document {
	return &report.Document{
		ReportType:  rt,
		Title:       rt.Title(),
		CompanyName: company,
		GeneratedAt: at,
		Sections:    sections,
	}
}

// summaryDocument lays out the composite payload as metric tables
func summaryDocument(p *report.Payload) *report.Document {
	fin, emp, proj, proc := p.Finance, p.Employees, p.Projects, p.Procurement

	money := report.Section{
		Title:   "Financial Overview",
		Columns: []report.Column{col("metric", "Metric", report.ColumnText), col("value", "Amount", report.ColumnMoney)},
		Rows: [][]any{
			{"Total revenue", fin.TotalRevenue},
			{"Paid revenue", fin.PaidRevenue},
			{"Outstanding revenue", fin.OutstandingRevenue},
			{"Total expenses", fin.TotalExpenses},
			{"Approved expenses", fin.ApprovedExpenses},
			{"Net profit", fin.NetProfit},
			{"Active payroll", emp.TotalSalary},
			{"Average salary", emp.AverageSalary},
			{"Project budget", proj.TotalBudget},
			{"Procurement budget", proc.TotalBudget},
			{"Pending procurement", proc.PendingBudget},
		},
	}

	counts := report.Section{
		Title:   "Activity",
		Columns: []report.Column{col("metric", "Metric", report.ColumnText), col("value", "Value", report.ColumnNumber)},
		Rows: [][]any{
			{"Invoices", fin.InvoiceCount},
			{"Expenses", fin.ExpenseCount},
			{"Employees", emp.Total},
			{"Active employees", emp.Active},
			{"Projects", proj.TotalProjects},
			{"Tasks", proj.TotalTasks},
			{"Overdue tasks", proj.OverdueTasks},
			{"Average completion (%)", proj.AverageCompletion},
			{"Purchase requests", proc.Total},
			{"Pending approval", proc.PendingApproval},
			{"Approved", proc.Approved},
			{"Rejected", proc.Rejected},
		},
	}

	sections := []report.Section{money, counts,
		countSection("Employees by Department", "Department", emp.Departments),
		countSection("Projects by Status", "Status", proj.ProjectsByStatus),
		countSection("Tasks by Status", "Status", proj.TasksByStatus),
		countSection("Purchase Requests by Status", "Status", proc.ByStatus),
		amountSection("Expenses by Category", "Category", fin.ExpensesByCategory),
	}

	if len(p.Degraded) > 0 {
		unavailable := report.Section{
			Title:   "Unavailable Data",
			Columns: []report.Column{col("domain", "Domain", report.ColumnText), col("note", "Note", report.ColumnText)},
		}
		for _, d := range p.Degraded {
			unavailable.Rows = append(unavailable.Rows, []any{titleCase(string(d)), "Source unavailable, figures shown as zero"})
		}
		sections = append(sections, unavailable)
	}

	return newDocument(report.ReportTypeSummary, p.CompanyName, p.GeneratedAt, sections...)
}

func financeTotalsSection(fin report.FinanceStats) report.Section {
	return report.Section{
		Title:   "Totals",
		Columns: []report.Column{col("metric", "Metric", report.ColumnText), col("value", "Amount", report.ColumnMoney)},
		Rows: [][]any{
			{"Total revenue", fin.TotalRevenue},
			{"Paid revenue", fin.PaidRevenue},
			{"Outstanding revenue", fin.OutstandingRevenue},
			{"Total expenses", fin.TotalExpenses},
			{"Approved expenses", fin.ApprovedExpenses},
			{"Net profit", fin.NetProfit},
		},
	}
}

func countSection(title, label string, m map[string]int) report.Section {
	s := report.Section{
		Title:   title,
		Columns: []report.Column{col("key", label, report.ColumnText), col("count", "Count", report.ColumnNumber)},
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		s.Rows = append(s.Rows, []any{titleCase(k), m[k]})
	}
	return s
}

func amountSection(title, label string, m map[string]decimal.Decimal) report.Section {
	s := report.Section{
		Title:   title,
		Columns: []report.Column{col("key", label, report.ColumnText), col("amount", "Amount", report.ColumnMoney)},
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		s.Rows = append(s.Rows, []any{titleCase(k), m[k]})
	}
	return s
}

func invoiceSection(invoices []finance.Invoice) report.Section {
	s := report.Section{
		Title: "Invoices",
		Columns: []report.Column{
			col("number", "Number", report.ColumnText),
			col("customer_name", "Customer", report.ColumnText),
			col("category", "Category", report.ColumnText),
			col("status", "Status", report.ColumnText),
			col("issue_date", "Issued", report.ColumnDate),
			col("due_date", "Due", report.ColumnDate),
			col("amount", "Amount", report.ColumnMoney),
		},
		Rows: make([][]any, 0, len(invoices)),
	}
	for i := range invoices {
		inv := &invoices[i]
		s.Rows = append(s.Rows, []any{inv.Number, inv.CustomerName, inv.Category,
			titleCase(string(inv.Status)), inv.IssueDate, inv.DueDate, inv.Amount})
	}
	return s
}

func expenseSection(expenses []finance.Expense) report.Section {
	s := report.Section{
		Title: "Expenses",
		Columns: []report.Column{
			col("title", "Title", report.ColumnText),
			col("category", "Category", report.ColumnText),
			col("status", "Status", report.ColumnText),
			col("expense_date", "Date", report.ColumnDate),
			col("amount", "Amount", report.ColumnMoney),
		},
		Rows: make([][]any, 0, len(expenses)),
	}
	for i := range expenses {
		e := &expenses[i]
		s.Rows = append(s.Rows, []any{e.Title, titleCase(string(e.Category)),
			titleCase(string(e.Status)), e.Date, e.Amount})
	}
	return s
}

func employeeSection(employees []hr.Employee) report.Section {
	s := report.Section{
		Title: "Employees",
		Columns: []report.Column{
			col("employee_code", "Code", report.ColumnText),
			col("name", "Name", report.ColumnText),
			col("email", "Email", report.ColumnText),
			col("department", "Department", report.ColumnText),
			col("position", "Position", report.ColumnText),
			col("status", "Status", report.ColumnText),
			col("hire_date", "Hired", report.ColumnDate),
			col("salary", "Salary", report.ColumnMoney),
		},
		Rows: make([][]any, 0, len(employees)),
	}
	for i := range employees {
		e := &employees[i]
		var salary any
		if e.Salary != nil {
			salary = *e.Salary
		}
		s.Rows = append(s.Rows, []any{e.EmployeeCode, e.FullName(), e.Email, e.Department,
			e.Position, titleCase(string(e.Status)), e.HireDate, salary})
	}
	return s
}

func projectSection(projects []project.Project) report.Section {
	s := report.Section{
		Title: "Projects",
		Columns: []report.Column{
			col("name", "Name", report.ColumnText),
			col("status", "Status", report.ColumnText),
			col("priority", "Priority", report.ColumnText),
			col("progress", "Progress", report.ColumnPercent),
			col("start_date", "Start", report.ColumnDate),
			col("end_date", "End", report.ColumnDate),
			col("budget", "Budget", report.ColumnMoney),
		},
		Rows: make([][]any, 0, len(projects)),
	}
	for i := range projects {
		p := &projects[i]
		s.Rows = append(s.Rows, []any{p.Name, titleCase(string(p.Status)), titleCase(string(p.Priority)),
			p.Progress, p.StartDate, p.EndDate, p.Budget})
	}
	return s
}

func taskSection(tasks []project.Task, projects []project.Project, now time.Time) report.Section {
	names := make(map[uuid.UUID]string, len(projects))
	for i := range projects {
		names[projects[i].ID] = projects[i].Name
	}
	s := report.Section{
		Title: "Tasks",
		Columns: []report.Column{
			col("title", "Title", report.ColumnText),
			col("project", "Project", report.ColumnText),
			col("status", "Status", report.ColumnText),
			col("priority", "Priority", report.ColumnText),
			col("due_date", "Due", report.ColumnDate),
			col("overdue", "Overdue", report.ColumnText),
		},
		Rows: make([][]any, 0, len(tasks)),
	}
	for i := range tasks {
		t := &tasks[i]
		overdue := ""
		if t.IsOverdue(now) {
			overdue = "Yes"
		}
		s.Rows = append(s.Rows, []any{t.Title, names[t.ProjectID], titleCase(string(t.Status)),
			titleCase(string(t.Priority)), t.DueDate, overdue})
	}
	return s
}

func requestSection(requests []procurement.Request) report.Section {
	s := report.Section{
		Title: "Purchase Requests",
		Columns: []report.Column{
			col("request_number", "Number", report.ColumnText),
			col("title", "Title", report.ColumnText),
			col("department", "Department", report.ColumnText),
			col("vendor", "Vendor", report.ColumnText),
			col("status", "Status", report.ColumnText),
			col("needed_by", "Needed By", report.ColumnDate),
			col("estimated_amount", "Estimated", report.ColumnMoney),
		},
		Rows: make([][]any, 0, len(requests)),
	}
	for i := range requests {
		r := &requests[i]
		s.Rows = append(s.Rows, []any{r.RequestNumber, r.Title, r.Department, r.Vendor,
			titleCase(string(r.Status)), r.NeededBy, r.EstimatedAmount})
	}
	return s
}

func leadSection(leads []sales.Lead) report.Section {
	s := report.Section{
		Title: "Leads",
		Columns: []report.Column{
			col("name", "Name", report.ColumnText),
			col("company", "Company", report.ColumnText),
			col("email", "Email", report.ColumnText),
			col("source", "Source", report.ColumnText),
			col("status", "Status", report.ColumnText),
			col("estimated_value", "Estimated Value", report.ColumnMoney),
		},
		Rows: make([][]any, 0, len(leads)),
	}
	for i := range leads {
		l := &leads[i]
		s.Rows = append(s.Rows, []any{l.Name, l.Company, l.Email, l.Source,
			titleCase(string(l.Status)), l.EstimatedValue})
	}
	return s
}

func opportunitySection(opportunities []sales.Opportunity) report.Section {
	s := report.Section{
		Title: "Opportunities",
		Columns: []report.Column{
			col("name", "Name", report.ColumnText),
			col("account_name", "Account", report.ColumnText),
			col("stage", "Stage", report.ColumnText),
			col("probability", "Probability", report.ColumnPercent),
			col("expected_close", "Expected Close", report.ColumnDate),
			col("value", "Value", report.ColumnMoney),
		},
		Rows: make([][]any, 0, len(opportunities)),
	}
	for i := range opportunities {
		o := &opportunities[i]
		s.Rows = append(s.Rows, []any{o.Name, o.AccountName, titleCase(string(o.Stage)),
			o.Probability, o.ExpectedClose, o.Value})
	}
	return s
}

func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
