package nsq

import (
	"context"

	"github.com/carevan/carevan/internal/pkg/logger"
	"github.com/carevan/carevan/internal/pkg/models"
	nsqpkg "github.com/carevan/carevan/internal/pkg/nsq"
	"github.com/carevan/carevan/services/invoice"
)

// QuotesHandler consumes quote-created events and records them as billable
// trips
type QuotesHandler struct {
	invoiceUC invoice.InvoiceUC
	cfg       *models.Config
	consumer  *nsqpkg.Consumer
}

// NewQuotesHandler creates a new quote event handler
func NewQuotesHandler(invoiceUC invoice.InvoiceUC, cfg *models.Config) *QuotesHandler {
	return &QuotesHandler{
		invoiceUC: invoiceUC,
		cfg:       cfg,
	}
}

// InitConsumers subscribes to the quote topic. Handler errors requeue the
// message; the idempotent insert makes redelivery safe.
func (h *QuotesHandler) InitConsumers() error {
	consumer, err := nsqpkg.NewConsumer(
		h.cfg.NSQ.QuoteTopic,
		h.cfg.NSQ.InvoiceChannel,
		h.cfg.NSQ.NSQDAddress,
		h.handleQuoteCreated,
	)
	if err != nil {
		return err
	}

	if len(h.cfg.NSQ.LookupdAddresses) > 0 {
		if err := consumer.ConnectToLookupd(h.cfg.NSQ.LookupdAddresses); err != nil {
			return err
		}
	}

	h.consumer = consumer
	logger.Info("Subscribed to quote events",
		logger.String("topic", h.cfg.NSQ.QuoteTopic),
		logger.String("channel", h.cfg.NSQ.InvoiceChannel))
	return nil
}

func (h *QuotesHandler) handleQuoteCreated(message []byte) error {
	var event models.QuoteCreatedEvent
	if err := nsqpkg.UnmarshalMessage(message, &event); err != nil {
		// A malformed payload will never parse; drop it instead of requeueing.
		logger.Error("Dropping malformed quote event", logger.Err(err))
		return nil
	}

	logger.Debug("Received quote created event",
		logger.String("quote_id", event.QuoteID.String()),
		logger.String("facility_id", event.FacilityID))

	return h.invoiceUC.RecordBillableTrip(context.Background(), event)
}

// Stop stops the consumer
func (h *QuotesHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}
