package gateway

import (
	"context"

	"github.com/carevan/carevan/internal/pkg/models"
	nsqpkg "github.com/carevan/carevan/internal/pkg/nsq"
)

// EventGateway publishes pricing events to NSQ
type EventGateway struct {
	producer *nsqpkg.Producer
	cfg      *models.NSQConfig
}

// NewEventGateway creates a new event gateway
func NewEventGateway(producer *nsqpkg.Producer, cfg *models.NSQConfig) *EventGateway {
	return &EventGateway{
		producer: producer,
		cfg:      cfg,
	}
}

// PublishQuoteCreated publishes a quote-created event to the quote topic
func (g *EventGateway) PublishQuoteCreated(_ context.Context, event models.QuoteCreatedEvent) error {
	return g.producer.Publish(g.cfg.QuoteTopic, event)
}
