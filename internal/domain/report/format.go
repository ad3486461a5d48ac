package report

// Format is an export target
type Format string

const (
	FormatTabularDocument Format = "tabular-document"
	FormatSpreadsheet     Format = "spreadsheet"
	FormatChartSnapshot   Format = "chart-snapshot"
)

// IsValid checks if the format is known
func (f Format) IsValid() bool {
	switch f {
	case FormatTabularDocument, FormatSpreadsheet, FormatChartSnapshot:
		return true
	}
	return false
}

// Schedulable reports whether the format can be produced without a browser
// session on the dashboard.
func (f Format) Schedulable() bool {
	return f == FormatTabularDocument || f == FormatSpreadsheet
}

// Extension returns the file extension for the format
func (f Format) Extension() string {
	if f == FormatSpreadsheet {
		return "xlsx"
	}
	return "pdf"
}

// ContentType returns the MIME type for the format
func (f Format) ContentType() string {
	if f == FormatSpreadsheet {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// ReportType selects the dataset of an export
type ReportType string

const (
	ReportTypeSummary         ReportType = "summary"
	ReportTypeFinancial       ReportType = "financial"
	ReportTypeInvoices        ReportType = "invoices"
	ReportTypeExpenses        ReportType = "expenses"
	ReportTypeEmployees       ReportType = "employees"
	ReportTypeProjects        ReportType = "projects"
	ReportTypeProcurement     ReportType = "procurement"
	ReportTypeSales           ReportType = "sales"
	ReportTypeDashboardCharts ReportType = "dashboard-charts"
)

// IsValid checks if the report type is known
func (rt ReportType) IsValid() bool {
	switch rt {
	case ReportTypeSummary, ReportTypeFinancial, ReportTypeInvoices, ReportTypeExpenses,
		ReportTypeEmployees, ReportTypeProjects, ReportTypeProcurement, ReportTypeSales,
		ReportTypeDashboardCharts:
		return true
	}
	return false
}

// Title returns the human readable report title
func (rt ReportType) Title() string {
	switch rt {
	case ReportTypeSummary:
		return "Business Summary"
	case ReportTypeFinancial:
		return "Financial Report"
	case ReportTypeInvoices:
		return "Invoices"
	case ReportTypeExpenses:
		return "Expenses"
	case ReportTypeEmployees:
		return "Employees"
	case ReportTypeProjects:
		return "Projects"
	case ReportTypeProcurement:
		return "Procurement Requests"
	case ReportTypeSales:
		return "Sales Pipeline"
	case ReportTypeDashboardCharts:
		return "Dashboard Charts"
	}
	return string(rt)
}
