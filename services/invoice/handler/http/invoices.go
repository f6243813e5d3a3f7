package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carevan/carevan/internal/pkg/logger"
	"github.com/carevan/carevan/internal/pkg/models"
	"github.com/carevan/carevan/internal/utils"
	"github.com/carevan/carevan/services/invoice"
)

// InvoicesHandler handles HTTP requests for invoice operations
type InvoicesHandler struct {
	invoiceUC invoice.InvoiceUC
}

// NewInvoicesHandler creates a new invoice HTTP handler
func NewInvoicesHandler(invoiceUC invoice.InvoiceUC) *InvoicesHandler {
	return &InvoicesHandler{
		invoiceUC: invoiceUC,
	}
}

// GetMonthlyInvoice returns a facility's invoice for one service month.
// The month query parameter is required, in YYYY-MM form.
func (h *InvoicesHandler) GetMonthlyInvoice(c echo.Context) error {
	facilityID := c.Param("facilityID")
	if facilityID == "" {
		return utils.BadRequestResponse(c, "Facility ID is required")
	}

	month := c.QueryParam("month")
	if month == "" {
		return utils.BadRequestResponse(c, "month query parameter is required (YYYY-MM)")
	}

	inv, err := h.invoiceUC.GetMonthlyInvoice(c.Request().Context(), facilityID, month)
	if err != nil {
		if errors.Is(err, models.ErrInvalidMonth) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to build invoice",
			logger.String("facility_id", facilityID),
			logger.String("month", month),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to build invoice")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Invoice retrieved successfully", inv)
}
