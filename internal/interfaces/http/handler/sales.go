package handler

import (
	salesapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/sales"
	"github.com/gin-gonic/gin"
)

// SalesHandler handles CRM lead and opportunity API endpoints
type SalesHandler struct {
	BaseHandler
	salesService *salesapp.SalesService
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(salesService *salesapp.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// CreateLead godoc
// @ID           createLead
//
//	@Summary		Create a lead
//	@Tags			sales
//	@Accept			json
//	@Produce		json
//	@Param			request	body		salesapp.LeadRequest	true	"Lead"
//	@Success		201		{object}	APIResponse[salesapp.LeadResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/sales/leads [post]
func (h *SalesHandler) CreateLead(c *gin.Context) {
	var req salesapp.LeadRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if req.OwnerID == nil {
		req.OwnerID = getUserID(c)
	}
	lead, err := h.salesService.CreateLead(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, lead)
}

// GetLead godoc
// @ID           getLeadById
//
//	@Summary		Get lead by ID
//	@Tags			sales
//	@Produce		json
//	@Param			id	path		string	true	"Lead ID"	format(uuid)
//	@Success		200	{object}	APIResponse[salesapp.LeadResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/sales/leads/{id} [get]
func (h *SalesHandler) GetLead(c *gin.Context) {
	id, ok := h.parseID(c, "lead")
	if !ok {
		return
	}
	lead, err := h.salesService.GetLead(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lead)
}

// ListLeads godoc
// @ID           listLeads
//
//	@Summary		List leads
//	@Tags			sales
//	@Produce		json
//	@Param			status		query		string	false	"Status"	Enums(new, contacted, qualified, converted, lost)
//	@Param			source		query		string	false	"Source"
//	@Param			page		query		int		false	"Page"		default(1)
//	@Param			page_size	query		int		false	"Page size"	default(20)
//	@Success		200			{object}	APIResponse[[]salesapp.LeadResponse]
//	@Security		BearerAuth
//	@Router			/sales/leads [get]
func (h *SalesHandler) ListLeads(c *gin.Context) {
	var filter salesapp.LeadListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	leads, total, err := h.salesService.ListLeads(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, leads, total, filter.Page, filter.PageSize)
}

// UpdateLead godoc
// @ID           updateLead
//
//	@Summary		Replace a lead
//	@Tags			sales
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Lead ID"	format(uuid)
//	@Param			request	body		salesapp.LeadRequest	true	"Lead"
//	@Success		200		{object}	APIResponse[salesapp.LeadResponse]
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/sales/leads/{id} [put]
func (h *SalesHandler) UpdateLead(c *gin.Context) {
	id, ok := h.parseID(c, "lead")
	if !ok {
		return
	}
	var req salesapp.LeadRequest
	if !h.BindJSON(c, &req) {
		return
	}
	lead, err := h.salesService.UpdateLead(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, lead)
}

// DeleteLead godoc
// @ID           deleteLead
//
//	@Summary		Delete a lead
//	@Tags			sales
//	@Param			id	path	string	true	"Lead ID"	format(uuid)
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/sales/leads/{id} [delete]
func (h *SalesHandler) DeleteLead(c *gin.Context) {
	id, ok := h.parseID(c, "lead")
	if !ok {
		return
	}
	if err := h.salesService.DeleteLead(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ConvertLead godoc
// @ID           convertLead
//
//	@Summary		Convert a lead into an opportunity
//	@Tags			sales
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Lead ID"	format(uuid)
//	@Param			request	body		salesapp.ConvertLeadRequest	true	"Opportunity values"
//	@Success		201		{object}	APIResponse[salesapp.OpportunityResponse]
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/sales/leads/{id}/convert [post]
func (h *SalesHandler) ConvertLead(c *gin.Context) {
	id, ok := h.parseID(c, "lead")
	if !ok {
		return
	}
	var req salesapp.ConvertLeadRequest
	if !h.BindJSON(c, &req) {
		return
	}
	opp, err := h.salesService.ConvertLead(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, opp)
}

// CreateOpportunity godoc
// @ID           createOpportunity
//
//	@Summary		Create an opportunity
//	@Tags			sales
//	@Accept			json
//	@Produce		json
//	@Param			request	body		salesapp.OpportunityRequest	true	"Opportunity"
//	@Success		201		{object}	APIResponse[salesapp.OpportunityResponse]
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/sales/opportunities [post]
func (h *SalesHandler) CreateOpportunity(c *gin.Context) {
	var req salesapp.OpportunityRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if req.OwnerID == nil {
		req.OwnerID = getUserID(c)
	}
	opp, err := h.salesService.CreateOpportunity(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, opp)
}

// GetOpportunity godoc
// @ID           getOpportunityById
//
//	@Summary		Get opportunity by ID
//	@Tags			sales
//	@Produce		json
//	@Param			id	path		string	true	"Opportunity ID"	format(uuid)
//	@Success		200	{object}	APIResponse[salesapp.OpportunityResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/sales/opportunities/{id} [get]
func (h *SalesHandler) GetOpportunity(c *gin.Context) {
	id, ok := h.parseID(c, "opportunity")
	if !ok {
		return
	}
	opp, err := h.salesService.GetOpportunity(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, opp)
}

// ListOpportunities godoc
// @ID           listOpportunities
//
//	@Summary		List opportunities
//	@Tags			sales
//	@Produce		json
//	@Param			stage		query		string	false	"Stage"	Enums(prospecting, proposal, negotiation, won, lost)
//	@Param			page		query		int		false	"Page"		default(1)
//	@Param			page_size	query		int		false	"Page size"	default(20)
//	@Success		200			{object}	APIResponse[[]salesapp.OpportunityResponse]
//	@Security		BearerAuth
//	@Router			/sales/opportunities [get]
func (h *SalesHandler) ListOpportunities(c *gin.Context) {
	var filter salesapp.OpportunityListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	opps, total, err := h.salesService.ListOpportunities(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, opps, total, filter.Page, filter.PageSize)
}

// UpdateOpportunity godoc
// @ID           updateOpportunity
//
//	@Summary		Replace an opportunity
//	@Tags			sales
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Opportunity ID"	format(uuid)
//	@Param			request	body		salesapp.OpportunityRequest	true	"Opportunity"
//	@Success		200		{object}	APIResponse[salesapp.OpportunityResponse]
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/sales/opportunities/{id} [put]
func (h *SalesHandler) UpdateOpportunity(c *gin.Context) {
	id, ok := h.parseID(c, "opportunity")
	if !ok {
		return
	}
	var req salesapp.OpportunityRequest
	if !h.BindJSON(c, &req) {
		return
	}
	opp, err := h.salesService.UpdateOpportunity(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, opp)
}

// DeleteOpportunity godoc
// @ID           deleteOpportunity
//
//	@Summary		Delete an opportunity
//	@Tags			sales
//	@Param			id	path	string	true	"Opportunity ID"	format(uuid)
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/sales/opportunities/{id} [delete]
func (h *SalesHandler) DeleteOpportunity(c *gin.Context) {
	id, ok := h.parseID(c, "opportunity")
	if !ok {
		return
	}
	if err := h.salesService.DeleteOpportunity(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
