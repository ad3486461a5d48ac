package report

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Delivery describes a scheduled artifact handed to the delivery
// collaborator. The artifact itself stays in file storage; FileID
// locates it.
type Delivery struct {
	ScheduleID  uuid.UUID
	ReportType  ReportType
	Format      Format
	Recipients  []string
	FileID      *uuid.UUID
	Filename    string
	ContentType string
	Size        int64
	GeneratedAt time.Time
}

// Deliverer hands a produced report to whatever sends it on. There is no
// retry and no confirmation of receipt.
type Deliverer interface {
	Deliver(ctx context.Context, d Delivery) error
	// Name identifies the provider in logs and metrics
	Name() string
}
