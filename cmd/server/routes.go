package main

import (
	"github.com/Deoshabh/it-erp-system-sub003/internal/interfaces/http/handler"
	"github.com/Deoshabh/it-erp-system-sub003/internal/interfaces/http/router"
)

type routeHandlers struct {
	system      *handler.SystemHandler
	employees   *handler.EmployeeHandler
	finance     *handler.FinanceHandler
	projects    *handler.ProjectHandler
	procurement *handler.ProcurementHandler
	sales       *handler.SalesHandler
	files       *handler.FileHandler
	reports     *handler.ReportHandler
}

// registerRoutes mounts every domain group under the API prefix.
// Static segments such as /stats are registered next to /:id.
func registerRoutes(r *router.Router, h routeHandlers) {
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", h.system.GetSystemInfo)
	systemRoutes.GET("/ping", h.system.Ping)

	employeeRoutes := router.NewDomainGroup("employees", "/employees")
	employeeRoutes.GET("", h.employees.List)
	employeeRoutes.POST("", h.employees.Create)
	employeeRoutes.GET("/stats", h.reports.EmployeeStats)
	employeeRoutes.GET("/:id", h.employees.GetByID)
	employeeRoutes.PUT("/:id", h.employees.Update)
	employeeRoutes.DELETE("/:id", h.employees.Delete)

	invoiceRoutes := router.NewDomainGroup("invoices", "/invoices")
	invoiceRoutes.GET("", h.finance.ListInvoices)
	invoiceRoutes.POST("", h.finance.CreateInvoice)
	invoiceRoutes.GET("/stats", h.reports.FinanceStats)
	invoiceRoutes.POST("/mark-overdue", h.finance.MarkOverdue)
	invoiceRoutes.GET("/:id", h.finance.GetInvoice)
	invoiceRoutes.PUT("/:id", h.finance.UpdateInvoice)
	invoiceRoutes.DELETE("/:id", h.finance.DeleteInvoice)
	invoiceRoutes.POST("/:id/send", h.finance.SendInvoice)
	invoiceRoutes.POST("/:id/pay", h.finance.PayInvoice)
	invoiceRoutes.POST("/:id/cancel", h.finance.CancelInvoice)

	expenseRoutes := router.NewDomainGroup("expenses", "/expenses")
	expenseRoutes.GET("", h.finance.ListExpenses)
	expenseRoutes.POST("", h.finance.CreateExpense)
	expenseRoutes.GET("/stats", h.reports.FinanceStats)
	expenseRoutes.GET("/:id", h.finance.GetExpense)
	expenseRoutes.PUT("/:id", h.finance.UpdateExpense)
	expenseRoutes.DELETE("/:id", h.finance.DeleteExpense)
	expenseRoutes.POST("/:id/approve", h.finance.ApproveExpense)
	expenseRoutes.POST("/:id/reject", h.finance.RejectExpense)

	procurementRoutes := router.NewDomainGroup("procurement", "/procurement")
	requests := procurementRoutes.Group("requests", "/requests")
	requests.GET("", h.procurement.List)
	requests.POST("", h.procurement.Create)
	requests.GET("/stats", h.reports.ProcurementStats)
	requests.GET("/:id", h.procurement.GetByID)
	requests.PUT("/:id", h.procurement.Update)
	requests.DELETE("/:id", h.procurement.Delete)
	requests.POST("/:id/submit", h.procurement.Submit)
	requests.POST("/:id/approve", h.procurement.Approve)
	requests.POST("/:id/reject", h.procurement.Reject)
	requests.POST("/:id/order", h.procurement.MarkOrdered)

	projectRoutes := router.NewDomainGroup("projects", "/projects")
	projectRoutes.GET("", h.projects.ListProjects)
	projectRoutes.POST("", h.projects.CreateProject)
	projectRoutes.GET("/stats", h.reports.ProjectStats)
	projectRoutes.GET("/:id", h.projects.GetProject)
	projectRoutes.PUT("/:id", h.projects.UpdateProject)
	projectRoutes.DELETE("/:id", h.projects.DeleteProject)

	taskRoutes := router.NewDomainGroup("tasks", "/tasks")
	taskRoutes.GET("", h.projects.ListTasks)
	taskRoutes.POST("", h.projects.CreateTask)
	taskRoutes.GET("/stats", h.reports.ProjectStats)
	taskRoutes.GET("/:id", h.projects.GetTask)
	taskRoutes.PUT("/:id", h.projects.UpdateTask)
	taskRoutes.DELETE("/:id", h.projects.DeleteTask)

	salesRoutes := router.NewDomainGroup("sales", "/sales")
	salesRoutes.GET("/stats", h.reports.SalesStats)
	leads := salesRoutes.Group("leads", "/leads")
	leads.GET("", h.sales.ListLeads)
	leads.POST("", h.sales.CreateLead)
	leads.GET("/stats", h.reports.SalesStats)
	leads.GET("/:id", h.sales.GetLead)
	leads.PUT("/:id", h.sales.UpdateLead)
	leads.DELETE("/:id", h.sales.DeleteLead)
	leads.POST("/:id/convert", h.sales.ConvertLead)
	opportunities := salesRoutes.Group("opportunities", "/opportunities")
	opportunities.GET("", h.sales.ListOpportunities)
	opportunities.POST("", h.sales.CreateOpportunity)
	opportunities.GET("/stats", h.reports.SalesStats)
	opportunities.GET("/:id", h.sales.GetOpportunity)
	opportunities.PUT("/:id", h.sales.UpdateOpportunity)
	opportunities.DELETE("/:id", h.sales.DeleteOpportunity)

	reportRoutes := router.NewDomainGroup("reports", "/reports")
	reportRoutes.GET("/summary", h.reports.Summary)
	reportRoutes.GET("/types", h.reports.Types)
	reportRoutes.POST("/export", h.reports.Export)
	schedules := reportRoutes.Group("schedules", "/schedules")
	schedules.GET("", h.reports.ListSchedules)
	schedules.POST("", h.reports.CreateSchedule)
	schedules.GET("/:id", h.reports.GetSchedule)
	schedules.DELETE("/:id", h.reports.DeleteSchedule)
	schedules.POST("/:id/deactivate", h.reports.DeactivateSchedule)
	schedules.POST("/:id/run", h.reports.RunSchedule)

	fileRoutes := router.NewDomainGroup("files", "/files")
	fileRoutes.GET("", h.files.List)
	fileRoutes.GET("/:id", h.files.GetByID)
	fileRoutes.GET("/:id/download", h.files.Download)
	fileRoutes.DELETE("/:id", h.files.Delete)

	r.Register(systemRoutes).
		Register(employeeRoutes).
		Register(invoiceRoutes).
		Register(expenseRoutes).
		Register(procurementRoutes).
		Register(projectRoutes).
		Register(taskRoutes).
		Register(salesRoutes).
		Register(reportRoutes).
		Register(fileRoutes)
}
