package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/Deoshabh/it-erp-system-sub003/internal/domain/report"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/config"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Message is the JSON body published for each delivery. Subscribers fetch
// the artifact through the Files API using FileID.
type Message struct {
	ScheduleID  uuid.UUID  `json:"schedule_id"`
	ReportType  string     `json:"report_type"`
	Format      string     `json:"format"`
	Recipients  []string   `json:"recipients"`
	FileID      *uuid.UUID `json:"file_id,omitempty"`
	Filename    string     `json:"filename"`
	ContentType string     `json:"content_type"`
	Size        int64      `json:"size"`
	GeneratedAt time.Time  `json:"generated_at"`
}

func newMessage(d report.Delivery) Message {
	return Message{
		ScheduleID:  d.ScheduleID,
		ReportType:  string(d.ReportType),
		Format:      string(d.Format),
		Recipients:  d.Recipients,
		FileID:      d.FileID,
		Filename:    d.Filename,
		ContentType: d.ContentType,
		Size:        d.Size,
		GeneratedAt: d.GeneratedAt,
	}
}

// NewPubSubClient creates a Pub/Sub client. Without inline credentials it
// uses Application Default Credentials.
func NewPubSubClient(ctx context.Context, cfg config.DeliveryConfig, opts ...option.ClientOption) (*pubsub.Client, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("delivery.project_id is required for pubsub delivery")
	}
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}
	client, err := pubsub.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create pubsub client: %w", err)
	}
	return client, nil
}

// PubSubDeliverer publishes one message per delivery. It waits for the
// server to accept the message but does not track consumption.
type PubSubDeliverer struct {
	client *pubsub.Client
	topic  *pubsub.Topic
	logger *zap.Logger
}

// NewPubSubDeliverer publishes to topicID on client
func NewPubSubDeliverer(client *pubsub.Client, topicID string, log *zap.Logger) *PubSubDeliverer {
	if log == nil {
		log = zap.NewNop()
	}
	return &PubSubDeliverer{
		client: client,
		topic:  client.Topic(topicID),
		logger: log,
	}
}

// EnsureTopic creates the topic when it does not exist yet
func (d *PubSubDeliverer) EnsureTopic(ctx context.Context) error {
	ok, err := d.topic.Exists(ctx)
	if err != nil {
		return fmt.Errorf("check topic %q: %w", d.topic.ID(), err)
	}
	if ok {
		return nil
	}
	if _, err := d.client.CreateTopic(ctx, d.topic.ID()); err != nil {
		return fmt.Errorf("create topic %q: %w", d.topic.ID(), err)
	}
	return nil
}

// Deliver publishes the delivery and waits for the message ID
func (d *PubSubDeliverer) Deliver(ctx context.Context, delivery report.Delivery) error {
	data, err := json.Marshal(newMessage(delivery))
	if err != nil {
		return fmt.Errorf("encode delivery: %w", err)
	}

	result := d.topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"schedule_id": delivery.ScheduleID.String(),
			"report_type": string(delivery.ReportType),
			"format":      string(delivery.Format),
		},
	})
	id, err := result.Get(ctx)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", d.topic.ID(), err)
	}

	logger.Using(ctx, d.logger).Info("Report delivery published",
		zap.String("schedule_id", delivery.ScheduleID.String()),
		zap.String("topic", d.topic.ID()),
		zap.String("message_id", id),
	)
	return nil
}

// Name implements report.Deliverer
func (d *PubSubDeliverer) Name() string {
	return "pubsub"
}

// Close flushes pending publishes and closes the client
func (d *PubSubDeliverer) Close() error {
	d.topic.Stop()
	return d.client.Close()
}

var _ report.Deliverer = (*PubSubDeliverer)(nil)
