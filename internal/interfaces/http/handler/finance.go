package handler

import (
	"context"

	financeapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/finance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FinanceHandler handles invoice and expense API endpoints
type FinanceHandler struct {
	BaseHandler
	invoiceService *financeapp.InvoiceService
	expenseService *financeapp.ExpenseService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(invoiceService *financeapp.InvoiceService, expenseService *financeapp.ExpenseService) *FinanceHandler {
	return &FinanceHandler{
		invoiceService: invoiceService,
		expenseService: expenseService,
	}
}

// CreateInvoice godoc
// @ID           createInvoice
//
//	@Summary		Create an invoice
//	@Description	Creates a draft invoice. The creator becomes its owner.
//	@Tags			finance
//	@Accept			json
//	@Produce		json
//	@Param			request	body		financeapp.CreateInvoiceRequest	true	"Invoice"
//	@Success		201		{object}	APIResponse[financeapp.InvoiceResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/invoices [post]
func (h *FinanceHandler) CreateInvoice(c *gin.Context) {
	var req financeapp.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	req.OwnerID = getUserID(c)

	invoice, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, invoice)
}

// GetInvoice godoc
// @ID           getInvoiceById
//
//	@Summary		Get invoice by ID
//	@Tags			finance
//	@Produce		json
//	@Param			id	path		string	true	"Invoice ID"	format(uuid)
//	@Success		200	{object}	APIResponse[financeapp.InvoiceResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/invoices/{id} [get]
func (h *FinanceHandler) GetInvoice(c *gin.Context) {
	id, ok := h.parseID(c, "invoice")
	if !ok {
		return
	}
	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// ListInvoices godoc
// @ID           listInvoices
//
//	@Summary		List invoices
//	@Tags			finance
//	@Produce		json
//	@Param			status		query		string	false	"Status"	Enums(draft, sent, paid, overdue, cancelled)
//	@Param			from_date	query		string	false	"Issued on or after (YYYY-MM-DD)"
//	@Param			to_date		query		string	false	"Issued on or before (YYYY-MM-DD)"
//	@Param			page		query		int		false	"Page"		default(1)
//	@Param			page_size	query		int		false	"Page size"	default(20)
//	@Success		200			{object}	APIResponse[[]financeapp.InvoiceResponse]
//	@Security		BearerAuth
//	@Router			/invoices [get]
func (h *FinanceHandler) ListInvoices(c *gin.Context) {
	var filter financeapp.InvoiceListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	invoices, total, err := h.invoiceService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, invoices, total, filter.Page, filter.PageSize)
}

// UpdateInvoice godoc
// @ID           updateInvoice
//
//	@Summary		Update a draft invoice
//	@Tags			finance
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Invoice ID"	format(uuid)
//	@Param			request	body		financeapp.UpdateInvoiceRequest	true	"Invoice"
//	@Success		200		{object}	APIResponse[financeapp.InvoiceResponse]
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/invoices/{id} [put]
func (h *FinanceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := h.parseID(c, "invoice")
	if !ok {
		return
	}
	var req financeapp.UpdateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	invoice, err := h.invoiceService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// SendInvoice godoc
// @ID           sendInvoice
//
//	@Summary		Mark an invoice as sent
//	@Tags			finance
//	@Produce		json
//	@Param			id	path		string	true	"Invoice ID"	format(uuid)
//	@Success		200	{object}	APIResponse[financeapp.InvoiceResponse]
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/invoices/{id}/send [post]
func (h *FinanceHandler) SendInvoice(c *gin.Context) {
	h.invoiceTransition(c, h.invoiceService.Send)
}

// PayInvoice godoc
// @ID           payInvoice
//
//	@Summary		Mark an invoice as paid
//	@Tags			finance
//	@Produce		json
//	@Param			id	path		string	true	"Invoice ID"	format(uuid)
//	@Success		200	{object}	APIResponse[financeapp.InvoiceResponse]
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/invoices/{id}/pay [post]
func (h *FinanceHandler) PayInvoice(c *gin.Context) {
	h.invoiceTransition(c, h.invoiceService.MarkPaid)
}

// CancelInvoice godoc
// @ID           cancelInvoice
//
//	@Summary		Cancel an invoice
//	@Tags			finance
//	@Produce		json
//	@Param			id	path		string	true	"Invoice ID"	format(uuid)
//	@Success		200	{object}	APIResponse[financeapp.InvoiceResponse]
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/invoices/{id}/cancel [post]
func (h *FinanceHandler) CancelInvoice(c *gin.Context) {
	h.invoiceTransition(c, h.invoiceService.Cancel)
}

func (h *FinanceHandler) invoiceTransition(c *gin.Context, fn func(context.Context, uuid.UUID) (*financeapp.InvoiceResponse, error)) {
	id, ok := h.parseID(c, "invoice")
	if !ok {
		return
	}
	invoice, err := fn(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, invoice)
}

// DeleteInvoice godoc
// @ID           deleteInvoice
//
//	@Summary		Delete an invoice
//	@Tags			finance
//	@Param			id	path	string	true	"Invoice ID"	format(uuid)
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/invoices/{id} [delete]
func (h *FinanceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := h.parseID(c, "invoice")
	if !ok {
		return
	}
	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// MarkOverdue godoc
// @ID           markOverdueInvoices
//
//	@Summary		Flag sent invoices past their due date as overdue
//	@Tags			finance
//	@Produce		json
//	@Success		200	{object}	APIResponse[CountData]
//	@Security		BearerAuth
//	@Router			/invoices/mark-overdue [post]
func (h *FinanceHandler) MarkOverdue(c *gin.Context) {
	n, err := h.invoiceService.MarkOverdueInvoices(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, CountData{Count: n})
}

// CreateExpense godoc
// @ID           createExpense
//
//	@Summary		Submit an expense
//	@Tags			finance
//	@Accept			json
//	@Produce		json
//	@Param			request	body		financeapp.CreateExpenseRequest	true	"Expense"
//	@Success		201		{object}	APIResponse[financeapp.ExpenseResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses [post]
func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var req financeapp.CreateExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}
	req.OwnerID = getUserID(c)

	expense, err := h.expenseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, expense)
}

// GetExpense godoc
// @ID           getExpenseById
//
//	@Summary		Get expense by ID
//	@Tags			finance
//	@Produce		json
//	@Param			id	path		string	true	"Expense ID"	format(uuid)
//	@Success		200	{object}	APIResponse[financeapp.ExpenseResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/{id} [get]
func (h *FinanceHandler) GetExpense(c *gin.Context) {
	id, ok := h.parseID(c, "expense")
	if !ok {
		return
	}
	expense, err := h.expenseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

// ListExpenses godoc
// @ID           listExpenses
//
//	@Summary		List expenses
//	@Tags			finance
//	@Produce		json
//	@Param			status		query		string	false	"Status"	Enums(pending, approved, rejected)
//	@Param			category	query		string	false	"Category"
//	@Param			page		query		int		false	"Page"		default(1)
//	@Param			page_size	query		int		false	"Page size"	default(20)
//	@Success		200			{object}	APIResponse[[]financeapp.ExpenseResponse]
//	@Security		BearerAuth
//	@Router			/expenses [get]
func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	var filter financeapp.ExpenseListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	expenses, total, err := h.expenseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, expenses, total, filter.Page, filter.PageSize)
}

// UpdateExpense godoc
// @ID           updateExpense
//
//	@Summary		Update a pending expense
//	@Tags			finance
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Expense ID"	format(uuid)
//	@Param			request	body		financeapp.UpdateExpenseRequest	true	"Expense"
//	@Success		200		{object}	APIResponse[financeapp.ExpenseResponse]
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/{id} [put]
func (h *FinanceHandler) UpdateExpense(c *gin.Context) {
	id, ok := h.parseID(c, "expense")
	if !ok {
		return
	}
	var req financeapp.UpdateExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}
	expense, err := h.expenseService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

// ApproveExpense godoc
// @ID           approveExpense
//
//	@Summary		Approve a pending expense
//	@Tags			finance
//	@Produce		json
//	@Param			id	path		string	true	"Expense ID"	format(uuid)
//	@Success		200	{object}	APIResponse[financeapp.ExpenseResponse]
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/{id}/approve [post]
func (h *FinanceHandler) ApproveExpense(c *gin.Context) {
	id, ok := h.parseID(c, "expense")
	if !ok {
		return
	}
	expense, err := h.expenseService.Approve(c.Request.Context(), id, getUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

// RejectExpense godoc
// @ID           rejectExpense
//
//	@Summary		Reject a pending expense
//	@Tags			finance
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Expense ID"	format(uuid)
//	@Param			request	body		financeapp.RejectExpenseRequest	true	"Reason"
//	@Success		200		{object}	APIResponse[financeapp.ExpenseResponse]
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/{id}/reject [post]
func (h *FinanceHandler) RejectExpense(c *gin.Context) {
	id, ok := h.parseID(c, "expense")
	if !ok {
		return
	}
	var req financeapp.RejectExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}
	expense, err := h.expenseService.Reject(c.Request.Context(), id, getUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, expense)
}

// DeleteExpense godoc
// @ID           deleteExpense
//
//	@Summary		Delete an expense
//	@Tags			finance
//	@Param			id	path	string	true	"Expense ID"	format(uuid)
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/expenses/{id} [delete]
func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	id, ok := h.parseID(c, "expense")
	if !ok {
		return
	}
	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
