package api

import (
	"net/http"

	resdto "shalean-booking-api/internal/handler/dto/response"
	"shalean-booking-api/internal/handler/httperr"
	"shalean-booking-api/internal/handler/middleware"
	"shalean-booking-api/internal/infra"
	"shalean-booking-api/internal/pkg/errs"
	"shalean-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingQueries queries.BookingQueries
}

func NewBookingHandler(bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{bookingQueries: bookingQueries}
}

// @Summary List bookings
// @Description List the customer's submitted bookings, newest first
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.BookingListResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Customer not authenticated"})
		return
	}

	items, err := h.bookingQueries.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := resdto.FromBookingListItems(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get booking
// @Description Fetch one booking with its line items and extras
// @Tags bookings
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Customer not authenticated"})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID", nil)
		return
	}

	detail, err := h.bookingQueries.GetByID(c.Request.Context(), customerID, bookingID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrBookingNotOwned):
			// Hide other customers' bookings behind a 404.
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case infra.IsKind(err, infra.KindNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.FromBookingDetailView(detail)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
