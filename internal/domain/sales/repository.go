package sales

import (
	"context"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
)

// LeadRepository persists leads.
// Recognised filter keys: status, source, owner_id.
type LeadRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Lead, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Lead, int64, error)
	ListAll(ctx context.Context) ([]Lead, error)
	Save(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OpportunityRepository persists opportunities.
// Recognised filter keys: stage, lead_id, owner_id.
type OpportunityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Opportunity, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Opportunity, int64, error)
	ListAll(ctx context.Context) ([]Opportunity, error)
	Save(ctx context.Context, opportunity *Opportunity) error
	Delete(ctx context.Context, id uuid.UUID) error
}
