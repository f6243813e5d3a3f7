package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/carevan/carevan/internal/pkg/middleware"
	"github.com/carevan/carevan/internal/pkg/models"
	"github.com/carevan/carevan/services/pricing"
	httpHandler "github.com/carevan/carevan/services/pricing/handler/http"
)

// Handler combines all handlers for the pricing service
type Handler struct {
	quotesHTTP *httpHandler.QuotesHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(pricingUC pricing.PricingUC, cfg *models.Config) *Handler {
	return &Handler{
		quotesHTTP: httpHandler.NewQuotesHandler(pricingUC),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Quote endpoints require a staff
// JWT issued by the dispatch auth layer.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	quotes := v1.Group("/quotes")
	quotes.POST("/preview", h.quotesHTTP.PreviewQuote)
	quotes.POST("", h.quotesHTTP.CreateQuote)
	quotes.GET("/:quoteID", h.quotesHTTP.GetQuote)
}
