package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/carevan/carevan/internal/pkg/middleware"
	"github.com/carevan/carevan/internal/pkg/models"
	"github.com/carevan/carevan/services/invoice"
	httpHandler "github.com/carevan/carevan/services/invoice/handler/http"
	nsqHandler "github.com/carevan/carevan/services/invoice/handler/nsq"
)

// Handler combines all handlers for the invoice service
type Handler struct {
	invoicesHTTP *httpHandler.InvoicesHandler
	quotesNSQ    *nsqHandler.QuotesHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(invoiceUC invoice.InvoiceUC, cfg *models.Config) *Handler {
	return &Handler{
		invoicesHTTP: httpHandler.NewInvoicesHandler(invoiceUC),
		quotesNSQ:    nsqHandler.NewQuotesHandler(invoiceUC, cfg),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Invoice endpoints are for the
// billing system and require an API key.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	apiKey := middleware.NewAPIKeyMiddleware(&h.cfg.APIKey)

	v1 := e.Group("/v1", apiKey.Validate)
	v1.GET("/invoices/:facilityID", h.invoicesHTTP.GetMonthlyInvoice)
}

// InitConsumers starts the NSQ consumers
func (h *Handler) InitConsumers() error {
	return h.quotesNSQ.InitConsumers()
}

// Stop stops the NSQ consumers
func (h *Handler) Stop() {
	h.quotesNSQ.Stop()
}
