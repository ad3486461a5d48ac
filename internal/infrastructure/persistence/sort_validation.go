package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

func sortFields(fields ...string) map[string]bool {
	m := map[string]bool{"id": true, "created_at": true, "updated_at": true}
	for _, f := range fields {
		m[f] = true
	}
	return m
}

var (
	InvoiceSortFields            = sortFields("number", "customer_name", "amount", "issue_date", "due_date", "status")
	ExpenseSortFields            = sortFields("title", "amount", "expense_date", "category", "status")
	EmployeeSortFields           = sortFields("employee_code", "first_name", "last_name", "email", "department", "position", "status", "salary", "hire_date")
	ProjectSortFields            = sortFields("name", "status", "priority", "progress", "budget", "start_date", "end_date")
	TaskSortFields               = sortFields("title", "status", "priority", "due_date", "completed_at")
	ProcurementRequestSortFields = sortFields("request_number", "title", "department", "estimated_amount", "status", "needed_by")
	LeadSortFields               = sortFields("name", "company", "source", "status", "estimated_value")
	OpportunitySortFields        = sortFields("name", "account_name", "stage", "value", "probability", "expected_close")
	StoredFileSortFields         = sortFields("name", "size", "category", "report_type")
	ReportScheduleSortFields     = sortFields("report_type", "cadence", "next_run_at", "last_run_at")
)
