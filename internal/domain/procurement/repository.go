package procurement

import (
	"context"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
)

// RequestRepository persists purchase requests.
// Recognised filter keys: status, department, requested_by.
type RequestRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Request, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Request, int64, error)
	ListAll(ctx context.Context) ([]Request, error)
	Save(ctx context.Context, request *Request) error
	Delete(ctx context.Context, id uuid.UUID) error
	NextNumber(ctx context.Context) (string, error)
}
