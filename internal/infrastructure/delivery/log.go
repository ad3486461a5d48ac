// Package delivery hands scheduled report artifacts to downstream systems.
package delivery

import (
	"context"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LogDeliverer only records deliveries in the application log
type LogDeliverer struct {
	logger *zap.Logger
}

// NewLogDeliverer creates a LogDeliverer
func NewLogDeliverer(log *zap.Logger) *LogDeliverer {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogDeliverer{logger: log}
}

// Deliver logs the delivery at info level
func (d *LogDeliverer) Deliver(ctx context.Context, delivery report.Delivery) error {
	fields := []zap.Field{
		zap.String("schedule_id", delivery.ScheduleID.String()),
		zap.String("report_type", string(delivery.ReportType)),
		zap.String("format", string(delivery.Format)),
		zap.Strings("recipients", delivery.Recipients),
		zap.String("filename", delivery.Filename),
		zap.Int64("size", delivery.Size),
	}
	if delivery.FileID != nil {
		fields = append(fields, zap.String("file_id", delivery.FileID.String()))
	}
	logger.Using(ctx, d.logger).Info("Report ready for delivery", fields...)
	return nil
}

// Name implements report.Deliverer
func (d *LogDeliverer) Name() string {
	return "log"
}

var _ report.Deliverer = (*LogDeliverer)(nil)
