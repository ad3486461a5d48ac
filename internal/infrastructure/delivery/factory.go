package delivery

import (
	"context"
	"fmt"

	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/config"
	"go.uber.org/zap"
)

// New builds the deliverer selected by cfg.Provider. The returned close
// func is never nil.
func New(ctx context.Context, cfg config.DeliveryConfig, log *zap.Logger) (report.Deliverer, func() error, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch cfg.Provider {
	case "", "log":
		log.Info("Report delivery uses the log deliverer")
		return NewLogDeliverer(log), func() error { return nil }, nil
	case "pubsub":
		client, err := NewPubSubClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		d := NewPubSubDeliverer(client, cfg.Topic, log)
		log.Info("Report delivery uses Pub/Sub",
			zap.String("project_id", cfg.ProjectID),
			zap.String("topic", cfg.Topic),
		)
		return d, d.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown delivery provider %q", cfg.Provider)
}
