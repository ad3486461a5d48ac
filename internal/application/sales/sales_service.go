package sales

import (
	"context"
	"fmt"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/sales"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
)

// SalesService provides lead and opportunity operations
type SalesService struct {
	leads         sales.LeadRepository
	opportunities sales.OpportunityRepository
}

// NewSalesService creates a new SalesService
func NewSalesService(leads sales.LeadRepository, opportunities sales.OpportunityRepository) *SalesService {
	return &SalesService{leads: leads, opportunities: opportunities}
}

// ===================== Leads =====================

// CreateLead creates a lead
func (s *SalesService) CreateLead(ctx context.Context, req LeadRequest) (*LeadResponse, error) {
	l, err := sales.NewLead(req.details())
	if err != nil {
		return nil, err
	}
	if err := s.leads.Save(ctx, l); err != nil {
		return nil, err
	}
	resp := ToLeadResponse(l)
	return &resp, nil
}

// GetLead returns a lead by ID
func (s *SalesService) GetLead(ctx context.Context, id uuid.UUID) (*LeadResponse, error) {
	l, err := s.leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToLeadResponse(l)
	return &resp, nil
}

// ListLeads returns one page of leads
func (s *SalesService) ListLeads(ctx context.Context, filter LeadListFilter) ([]LeadResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		From:     filter.FromDate,
		To:       filter.ToDate,
		Filters:  make(map[string]any),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Source != "" {
		domainFilter.Filters["source"] = filter.Source
	}
	if filter.OwnerID != "" {
		domainFilter.Filters["owner_id"] = filter.OwnerID
	}

	leads, total, err := s.leads.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToLeadResponses(leads), total, nil
}

// UpdateLead replaces a lead's editable fields
func (s *SalesService) UpdateLead(ctx context.Context, id uuid.UUID, req LeadRequest) (*LeadResponse, error) {
	l, err := s.leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := l.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.leads.Save(ctx, l); err != nil {
		return nil, err
	}
	resp := ToLeadResponse(l)
	return &resp, nil
}

// DeleteLead removes a lead
func (s *SalesService) DeleteLead(ctx context.Context, id uuid.UUID) error {
	return s.leads.Delete(ctx, id)
}

// ConvertLead marks a lead converted and opens an opportunity linked to it.
// Converted and lost leads cannot be converted again.
func (s *SalesService) ConvertLead(ctx context.Context, id uuid.UUID, req ConvertLeadRequest) (*OpportunityResponse, error) {
	l, err := s.leads.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := l.Convert(); err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = l.Company
	}
	if name == "" {
		name = l.Name
	}
	value := req.Value
	if value.IsZero() {
		value = l.EstimatedValue
	}

	o, err := sales.NewOpportunity(sales.OpportunityDetails{
		Name:          name,
		LeadID:        &l.ID,
		AccountName:   l.Company,
		Value:         value,
		Probability:   req.Probability,
		ExpectedClose: req.ExpectedClose,
		OwnerID:       l.OwnerID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.leads.Save(ctx, l); err != nil {
		return nil, err
	}
	if err := s.opportunities.Save(ctx, o); err != nil {
		return nil, err
	}
	resp := ToOpportunityResponse(o)
	return &resp, nil
}

// ===================== Opportunities =====================

// CreateOpportunity creates an opportunity, checking the linked lead exists
func (s *SalesService) CreateOpportunity(ctx context.Context, req OpportunityRequest) (*OpportunityResponse, error) {
	if req.LeadID != nil {
		if _, err := s.leads.FindByID(ctx, *req.LeadID); err != nil {
			return nil, err
		}
	}
	o, err := sales.NewOpportunity(req.details())
	if err != nil {
		return nil, err
	}
	if err := s.opportunities.Save(ctx, o); err != nil {
		return nil, err
	}
	resp := ToOpportunityResponse(o)
	return &resp, nil
}

// GetOpportunity returns an opportunity by ID
func (s *SalesService) GetOpportunity(ctx context.Context, id uuid.UUID) (*OpportunityResponse, error) {
	o, err := s.opportunities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToOpportunityResponse(o)
	return &resp, nil
}

// ListOpportunities returns one page of opportunities
func (s *SalesService) ListOpportunities(ctx context.Context, filter OpportunityListFilter) ([]OpportunityResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		From:     filter.FromDate,
		To:       filter.ToDate,
		Filters:  make(map[string]any),
	}
	if filter.Stage != "" {
		domainFilter.Filters["stage"] = filter.Stage
	}
	if filter.LeadID != "" {
		domainFilter.Filters["lead_id"] = filter.LeadID
	}
	if filter.OwnerID != "" {
		domainFilter.Filters["owner_id"] = filter.OwnerID
	}

	opportunities, total, err := s.opportunities.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToOpportunityResponses(opportunities), total, nil
}

// UpdateOpportunity replaces an opportunity's editable fields
func (s *SalesService) UpdateOpportunity(ctx context.Context, id uuid.UUID, req OpportunityRequest) (*OpportunityResponse, error) {
	o, err := s.opportunities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := o.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.opportunities.Save(ctx, o); err != nil {
		return nil, err
	}
	resp := ToOpportunityResponse(o)
	return &resp, nil
}

// DeleteOpportunity removes an opportunity
func (s *SalesService) DeleteOpportunity(ctx context.Context, id uuid.UUID) error {
	return s.opportunities.Delete(ctx, id)
}

// Stats summarises every lead and opportunity
func (s *SalesService) Stats(ctx context.Context) (report.SalesStats, error) {
	leads, err := s.leads.ListAll(ctx)
	if err != nil {
		return report.SalesStats{}, fmt.Errorf("list leads: %w", err)
	}
	opportunities, err := s.opportunities.ListAll(ctx)
	if err != nil {
		return report.SalesStats{}, fmt.Errorf("list opportunities: %w", err)
	}
	return report.SummarizeSales(leads, opportunities), nil
}
