// Package models contains GORM persistence models mapped to database tables.
// Domain entities stay free of ORM tags; each model carries a ToDomain
// method and a FromDomain constructor, and repositories only ever hand
// domain values back to callers.
//
// Files follow the bounded contexts:
// - base.go: BaseModel shared by every table
// - finance.go: invoices and expenses
// - hr.go: employees
// - project.go: projects and tasks
// - procurement.go: purchase requests
// - sales.go: leads and opportunities
// - files.go: stored export and upload index
// - report.go: report schedules
package models
