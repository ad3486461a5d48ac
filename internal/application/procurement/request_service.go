package procurement

import (
	"context"
	"fmt"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/procurement"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
)

// RequestService provides purchase request operations and approvals
type RequestService struct {
	repo procurement.RequestRepository
}

// NewRequestService creates a new RequestService
func NewRequestService(repo procurement.RequestRepository) *RequestService {
	return &RequestService{repo: repo}
}

// Create creates a draft request with the next request number
func (s *RequestService) Create(ctx context.Context, body RequestBody) (*RequestResponse, error) {
	number, err := s.repo.NextNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate request number: %w", err)
	}
	r, err := procurement.NewRequest(number, body.details(), body.RequestedBy)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	resp := ToRequestResponse(r)
	return &resp, nil
}

// GetByID returns a request by ID
func (s *RequestService) GetByID(ctx context.Context, id uuid.UUID) (*RequestResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToRequestResponse(r)
	return &resp, nil
}

// List returns one page of requests
func (s *RequestService) List(ctx context.Context, filter RequestListFilter) ([]RequestResponse, int64, error) {
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
	if filter.Department != "" {
		domainFilter.Filters["department"] = filter.Department
	}
	if filter.RequestedBy != "" {
		domainFilter.Filters["requested_by"] = filter.RequestedBy
	}

	requests, total, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToRequestResponses(requests), total, nil
}

// Update edits a draft or rejected request
func (s *RequestService) Update(ctx context.Context, id uuid.UUID, body RequestBody) (*RequestResponse, error) {
	return s.mutate(ctx, id, func(r *procurement.Request) error {
		return r.Update(body.details())
	})
}

// Submit sends a request for approval
func (s *RequestService) Submit(ctx context.Context, id uuid.UUID) (*RequestResponse, error) {
	return s.mutate(ctx, id, (*procurement.Request).Submit)
}

// Approve accepts a pending request
func (s *RequestService) Approve(ctx context.Context, id uuid.UUID, approver *uuid.UUID, req DecisionRequest) (*RequestResponse, error) {
	return s.mutate(ctx, id, func(r *procurement.Request) error {
		return r.Approve(approver, req.Note)
	})
}

// Reject declines a pending request
func (s *RequestService) Reject(ctx context.Context, id uuid.UUID, approver *uuid.UUID, req DecisionRequest) (*RequestResponse, error) {
	return s.mutate(ctx, id, func(r *procurement.Request) error {
		return r.Reject(approver, req.Note)
	})
}

// MarkOrdered records that an approved request became an order
func (s *RequestService) MarkOrdered(ctx context.Context, id uuid.UUID) (*RequestResponse, error) {
	return s.mutate(ctx, id, (*procurement.Request).MarkOrdered)
}

// Delete removes a request
func (s *RequestService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Stats summarises every purchase request
func (s *RequestService) Stats(ctx context.Context) (report.ProcurementStats, error) {
	requests, err := s.repo.ListAll(ctx)
	if err != nil {
		return report.ProcurementStats{}, fmt.Errorf("list purchase requests: %w", err)
	}
	return report.SummarizeProcurement(requests), nil
}

func (s *RequestService) mutate(ctx context.Context, id uuid.UUID, fn func(*procurement.Request) error) (*RequestResponse, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(r); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	resp := ToRequestResponse(r)
	return &resp, nil
}
