package report

import (
	"context"
	"time"

	filesapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/files"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/finance"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/hr"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/procurement"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/project"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/sales"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// listReader serves a fixed slice, an error, or a panic
type listReader[T any] struct {
	items []T
	err   error
	panic bool
}

func (r listReader[T]) ListAll(context.Context) ([]T, error) {
	if r.panic {
		panic("store exploded")
	}
	if r.err != nil {
		return nil, r.err
	}
	if r.items == nil {
		return []T{}, nil
	}
	return r.items, nil
}

func emptySources() Sources {
	return Sources{
		Invoices:      listReader[finance.Invoice]{},
		Expenses:      listReader[finance.Expense]{},
		Employees:     listReader[hr.Employee]{},
		Projects:      listReader[project.Project]{},
		Tasks:         listReader[project.Task]{},
		Requests:      listReader[procurement.Request]{},
		Leads:         listReader[sales.Lead]{},
		Opportunities: listReader[sales.Opportunity]{},
	}
}

type MockDocumentRenderer struct {
	mock.Mock
}

func (m *MockDocumentRenderer) Render(ctx context.Context, doc *report.Document) (*report.Artifact, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Artifact), args.Error(1)
}

type MockChartRenderer struct {
	mock.Mock
}

func (m *MockChartRenderer) RenderCharts(ctx context.Context, req *report.ChartRequest) (*report.Artifact, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Artifact), args.Error(1)
}

type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) StoreArtifact(ctx context.Context, req filesapp.StoreArtifactRequest) (*filesapp.FileResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*filesapp.FileResponse), args.Error(1)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*report.Schedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]report.Schedule, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]report.Schedule), args.Get(1).(int64), args.Error(2)
}

func (m *MockScheduleRepository) FindDue(ctx context.Context, now time.Time, limit int) ([]report.Schedule, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]report.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) Save(ctx context.Context, schedule *report.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Export(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ExportResult), args.Error(1)
}

type MockDeliverer struct {
	mock.Mock
}

func (m *MockDeliverer) Deliver(ctx context.Context, d report.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliverer) Name() string {
	return "mock"
}
