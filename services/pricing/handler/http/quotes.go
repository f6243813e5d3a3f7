package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/carevan/carevan/internal/pkg/fare"
	"github.com/carevan/carevan/internal/pkg/logger"
	"github.com/carevan/carevan/internal/pkg/models"
	"github.com/carevan/carevan/internal/utils"
	"github.com/carevan/carevan/services/pricing"
)

// QuotesHandler handles HTTP requests for quote operations
type QuotesHandler struct {
	pricingUC pricing.PricingUC
}

// NewQuotesHandler creates a new quote HTTP handler
func NewQuotesHandler(pricingUC pricing.PricingUC) *QuotesHandler {
	return &QuotesHandler{
		pricingUC: pricingUC,
	}
}

// PreviewQuote prices a trip without persisting. Backs the dispatch form's
// live fare recalculation.
func (h *QuotesHandler) PreviewQuote(c echo.Context) error {
	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	quote, err := h.pricingUC.PreviewQuote(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, fare.ErrInvalidInput) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to preview quote",
			logger.String("pickup_address", req.PickupAddress),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to price trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quote previewed successfully", quote)
}

// CreateQuote prices and stores a trip quote
func (h *QuotesHandler) CreateQuote(c echo.Context) error {
	var req models.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	quote, err := h.pricingUC.CreateQuote(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, fare.ErrInvalidInput) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to create quote",
			logger.String("pickup_address", req.PickupAddress),
			logger.String("facility_id", req.FacilityID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create quote")
	}

	logger.Info("Created quote",
		logger.String("quote_id", quote.ID.String()),
		logger.Int64("total_cents", quote.TotalCents))

	return utils.SuccessResponse(c, http.StatusCreated, "Quote created successfully", quote)
}

// GetQuote retrieves a stored quote by ID
func (h *QuotesHandler) GetQuote(c echo.Context) error {
	id, err := uuid.Parse(c.Param("quoteID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid quote ID")
	}

	quote, err := h.pricingUC.GetQuote(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrQuoteNotFound) {
			return utils.NotFoundResponse(c, "Quote not found")
		}
		logger.Error("Failed to get quote",
			logger.String("quote_id", id.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get quote")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Quote retrieved successfully", quote)
}
