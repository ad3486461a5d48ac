package handler

import (
	procurementapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/procurement"
	"github.com/gin-gonic/gin"
)

// ProcurementHandler handles purchase request API endpoints
type ProcurementHandler struct {
	BaseHandler
	requestService *procurementapp.RequestService
}

// NewProcurementHandler creates a new ProcurementHandler
func NewProcurementHandler(requestService *procurementapp.RequestService) *ProcurementHandler {
	return &ProcurementHandler{requestService: requestService}
}

// Create godoc
// @ID           createPurchaseRequest
//
//	@Summary		Create a purchase request
//	@Description	Creates a draft purchase request on behalf of the caller
//	@Tags			procurement
//	@Accept			json
//	@Produce		json
//	@Param			request	body		procurementapp.RequestBody	true	"Purchase request"
//	@Success		201		{object}	APIResponse[procurementapp.RequestResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/procurement/requests [post]
func (h *ProcurementHandler) Create(c *gin.Context) {
	var body procurementapp.RequestBody
	if !h.BindJSON(c, &body) {
		return
	}
	body.RequestedBy = getUserID(c)

	req, err := h.requestService.Create(c.Request.Context(), body)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, req)
}

// GetByID godoc
// @ID           getPurchaseRequestById
//
//	@Summary		Get purchase request by ID
//	@Tags			procurement
//	@Produce		json
//	@Param			id	path		string	true	"Request ID"	format(uuid)
//	@Success		200	{object}	APIResponse[procurementapp.RequestResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/procurement/requests/{id} [get]
func (h *ProcurementHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "request")
	if !ok {
		return
	}
	req, err := h.requestService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, req)
}

// List godoc
// @ID           listPurchaseRequests
//
//	@Summary		List purchase requests
//	@Tags			procurement
//	@Produce		json
//	@Param			status		query		string	false	"Status"	Enums(draft, pending_approval, approved, rejected, ordered)
//	@Param			department	query		string	false	"Department"
//	@Param			page		query		int		false	"Page"		default(1)
//	@Param			page_size	query		int		false	"Page size"	default(20)
//	@Success		200			{object}	APIResponse[[]procurementapp.RequestResponse]
//	@Security		BearerAuth
//	@Router			/procurement/requests [get]
func (h *ProcurementHandler) List(c *gin.Context) {
	var filter procurementapp.RequestListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	requests, total, err := h.requestService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, requests, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updatePurchaseRequest
//
//	@Summary		Edit a draft purchase request
//	@Tags			procurement
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Request ID"	format(uuid)
//	@Param			request	body		procurementapp.RequestBody	true	"Purchase request"
//	@Success		200		{object}	APIResponse[procurementapp.RequestResponse]
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/procurement/requests/{id} [put]
func (h *ProcurementHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "request")
	if !ok {
		return
	}
	var body procurementapp.RequestBody
	if !h.BindJSON(c, &body) {
		return
	}
	req, err := h.requestService.Update(c.Request.Context(), id, body)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, req)
}

// Submit godoc
// @ID           submitPurchaseRequest
//
//	@Summary		Submit a draft for approval
//	@Tags			procurement
//	@Produce		json
//	@Param			id	path		string	true	"Request ID"	format(uuid)
//	@Success		200	{object}	APIResponse[procurementapp.RequestResponse]
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/procurement/requests/{id}/submit [post]
func (h *ProcurementHandler) Submit(c *gin.Context) {
	id, ok := h.parseID(c, "request")
	if !ok {
		return
	}
	req, err := h.requestService.Submit(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, req)
}

// Approve godoc
// @ID           approvePurchaseRequest
//
//	@Summary		Approve a pending request
//	@Tags			procurement
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Request ID"	format(uuid)
//	@Param			request	body		procurementapp.DecisionRequest	false	"Decision note"
//	@Success		200		{object}	APIResponse[procurementapp.RequestResponse]
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/procurement/requests/{id}/approve [post]
func (h *ProcurementHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// Reject godoc
// @ID           rejectPurchaseRequest
//
//	@Summary		Reject a pending request
//	@Tags			procurement
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Request ID"	format(uuid)
//	@Param			request	body		procurementapp.DecisionRequest	false	"Decision note"
//	@Success		200		{object}	APIResponse[procurementapp.RequestResponse]
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/procurement/requests/{id}/reject [post]
func (h *ProcurementHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *ProcurementHandler) decide(c *gin.Context, approve bool) {
	id, ok := h.parseID(c, "request")
	if !ok {
		return
	}
	var decision procurementapp.DecisionRequest
	// The note is optional, so an empty body is allowed
	if c.Request.ContentLength != 0 && !h.BindJSON(c, &decision) {
		return
	}

	var (
		req *procurementapp.RequestResponse
		err error
	)
	if approve {
		req, err = h.requestService.Approve(c.Request.Context(), id, getUserID(c), decision)
	} else {
		req, err = h.requestService.Reject(c.Request.Context(), id, getUserID(c), decision)
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, req)
}

// MarkOrdered godoc
// @ID           orderPurchaseRequest
//
//	@Summary		Mark an approved request as ordered
//	@Tags			procurement
//	@Produce		json
//	@Param			id	path		string	true	"Request ID"	format(uuid)
//	@Success		200	{object}	APIResponse[procurementapp.RequestResponse]
//	@Failure		422	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/procurement/requests/{id}/order [post]
func (h *ProcurementHandler) MarkOrdered(c *gin.Context) {
	id, ok := h.parseID(c, "request")
	if !ok {
		return
	}
	req, err := h.requestService.MarkOrdered(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, req)
}

// Delete godoc
// @ID           deletePurchaseRequest
//
//	@Summary		Delete a purchase request
//	@Tags			procurement
//	@Param			id	path	string	true	"Request ID"	format(uuid)
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/procurement/requests/{id} [delete]
func (h *ProcurementHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "request")
	if !ok {
		return
	}
	if err := h.requestService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
