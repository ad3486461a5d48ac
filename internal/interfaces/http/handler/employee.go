package handler

import (
	hrapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/hr"
	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employee API endpoints
type EmployeeHandler struct {
	BaseHandler
	employeeService *hrapp.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService *hrapp.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create godoc
// @ID           createEmployee
//
//	@Summary		Create an employee
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hrapp.CreateEmployeeRequest	true	"Employee"
//	@Success		201		{object}	APIResponse[hrapp.EmployeeResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req hrapp.CreateEmployeeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, employee)
}

// GetByID godoc
// @ID           getEmployeeById
//
//	@Summary		Get employee by ID
//	@Tags			employees
//	@Produce		json
//	@Param			id	path		string	true	"Employee ID"	format(uuid)
//	@Success		200	{object}	APIResponse[hrapp.EmployeeResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "employee")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// List godoc
// @ID           listEmployees
//
//	@Summary		List employees
//	@Description	Paginated employee list filtered by status, department, position or hire date
//	@Tags			employees
//	@Produce		json
//	@Param			search		query		string	false	"Search term (name, email, code)"
//	@Param			status		query		string	false	"Status"	Enums(active, inactive, terminated)
//	@Param			department	query		string	false	"Department"
//	@Param			page		query		int		false	"Page"		default(1)
//	@Param			page_size	query		int		false	"Page size"	default(20)
//	@Success		200			{object}	APIResponse[[]hrapp.EmployeeResponse]
//	@Security		BearerAuth
//	@Router			/employees [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	var filter hrapp.EmployeeListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	employees, total, err := h.employeeService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, employees, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateEmployee
//
//	@Summary		Update an employee
//	@Tags			employees
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Employee ID"	format(uuid)
//	@Param			request	body		hrapp.UpdateEmployeeRequest	true	"Employee"
//	@Success		200		{object}	APIResponse[hrapp.EmployeeResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "employee")
	if !ok {
		return
	}
	var req hrapp.UpdateEmployeeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	employee, err := h.employeeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, employee)
}

// Delete godoc
// @ID           deleteEmployee
//
//	@Summary		Delete an employee
//	@Tags			employees
//	@Param			id	path	string	true	"Employee ID"	format(uuid)
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "employee")
	if !ok {
		return
	}
	if err := h.employeeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
