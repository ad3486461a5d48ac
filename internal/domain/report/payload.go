package report

import (
	"slices"
	"time"
)

// Domain names one section of the composite report
type Domain string

const (
	DomainFinance     Domain = "finance"
	DomainEmployees   Domain = "employees"
	DomainProjects    Domain = "projects"
	DomainProcurement Domain = "procurement"
)

// Domains lists every section of the composite report
var Domains = []Domain{DomainFinance, DomainEmployees, DomainProjects, DomainProcurement}

// Payload is the composite report for a single request. Every section is
// always populated; a section whose source failed holds its zero-valued
// statistics and the domain is listed in Degraded.
type Payload struct {
	GeneratedAt time.Time
	CompanyName string
	Finance     FinanceStats
	Employees   EmployeeStats
	Projects    ProjectStats
	Procurement ProcurementStats
	Degraded    []Domain
}

// EmptyPayload returns a payload whose sections equal the statistics of
// empty record sets.
func EmptyPayload(generatedAt time.Time, companyName string) *Payload {
	return &Payload{
		GeneratedAt: generatedAt,
		CompanyName: companyName,
		Finance:     SummarizeFinance(nil, nil),
		Employees:   SummarizeEmployees(nil),
		Projects:    SummarizeProjects(nil, nil, generatedAt),
		Procurement: SummarizeProcurement(nil),
		Degraded:    []Domain{},
	}
}

// IsDegraded reports whether d fell back to its zero default
func (p *Payload) IsDegraded(d Domain) bool {
	return slices.Contains(p.Degraded, d)
}
