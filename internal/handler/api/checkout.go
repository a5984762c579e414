package api

import (
	"net/http"

	reqdto "shalean-booking-api/internal/handler/dto/request"
	resdto "shalean-booking-api/internal/handler/dto/response"
	"shalean-booking-api/internal/handler/httperr"
	"shalean-booking-api/internal/handler/middleware"
	"shalean-booking-api/internal/pkg/errs"
	"shalean-booking-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout commands.CheckoutCommands
}

func NewCheckoutHandler(checkout commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// @Summary Verify payment
// @Description Verify a Paystack reference and confirm the booking when the charge succeeded
// @Tags checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyPaymentRequest true "Transaction reference"
// @Success 200 {object} resdto.VerifyPaymentResponse
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkout/verify [post]
func (h *CheckoutHandler) Verify(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Customer not authenticated"})
		return
	}

	var req reqdto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.checkout.VerifyPayment(c.Request.Context(), customerID, req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrNoOpenBooking):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No booking awaiting payment", nil)
		case errs.Is(err, commands.ErrBookingNotPayable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is not awaiting payment", nil)
		case errs.Is(err, commands.ErrPaymentNotVerified):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err, "Payment could not be verified", nil)
		case errs.Is(err, commands.ErrPaymentAmountMismatch), errs.Is(err, commands.ErrPaymentCurrencyInvalid):
			httperr.AbortWithError(c, http.StatusConflict, err, "Payment does not match the booking total", nil)
		case errs.Is(err, commands.ErrPaymentRefMismatch):
			httperr.AbortWithError(c, http.StatusConflict, err, "Payment reference does not match the booking", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.FromVerifyPaymentResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel checkout
// @Description Cancel the open booking and clear the wizard
// @Tags checkout
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /checkout/cancel [post]
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Customer not authenticated"})
		return
	}

	if err := h.checkout.Cancel(c.Request.Context(), customerID); err != nil {
		if errs.Is(err, commands.ErrNoOpenBooking) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "No open booking", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}
