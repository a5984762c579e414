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
	"github.com/google/uuid"
)

type WizardHandler struct {
	wizard commands.WizardCommands
}

func NewWizardHandler(wizard commands.WizardCommands) *WizardHandler {
	return &WizardHandler{wizard: wizard}
}

func (h *WizardHandler) customerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Customer not authenticated"})
	}
	return id, ok
}

func (h *WizardHandler) respondState(c *gin.Context, state *commands.WizardState, err error) {
	if err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizardState(state))
}

func (h *WizardHandler) mapError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errs.Is(err, commands.ErrExtraNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service extra not found", nil)
	case errs.Is(err, commands.ErrSuburbNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Suburb not found", nil)
	case errs.Is(err, commands.ErrCleanerNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cleaner not found", nil)
	case errs.Is(err, commands.ErrStepIncomplete):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Step requirements not met", nil)
	case errs.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// @Summary Get wizard state
// @Description Current selection and quote for the authenticated customer
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 401 {object} map[string]string
// @Router /bookings/wizard [get]
func (h *WizardHandler) GetState(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}
	state, err := h.wizard.GetState(c.Request.Context(), customerID)
	h.respondState(c, state, err)
}

// @Summary Submit service step
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitServiceRequest true "Service selection"
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/wizard/service [post]
func (h *WizardHandler) SubmitService(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	var req reqdto.SubmitServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	state, err := h.wizard.SubmitService(c.Request.Context(), customerID, req)
	h.respondState(c, state, err)
}

// @Summary Submit property step
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitPropertyRequest true "Property details"
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 422 {object} httperr.Response
// @Router /bookings/wizard/property [post]
func (h *WizardHandler) SubmitProperty(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	var req reqdto.SubmitPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	state, err := h.wizard.SubmitProperty(c.Request.Context(), customerID, req)
	h.respondState(c, state, err)
}

// @Summary Submit schedule step
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitScheduleRequest true "Schedule details"
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 422 {object} httperr.Response
// @Router /bookings/wizard/schedule [post]
func (h *WizardHandler) SubmitSchedule(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	var req reqdto.SubmitScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	state, err := h.wizard.SubmitSchedule(c.Request.Context(), customerID, req)
	h.respondState(c, state, err)
}

// @Summary Submit extras step
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitExtrasRequest true "Selected extras"
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/wizard/extras [post]
func (h *WizardHandler) SubmitExtras(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	var req reqdto.SubmitExtrasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	state, err := h.wizard.SubmitExtras(c.Request.Context(), customerID, req)
	h.respondState(c, state, err)
}

// @Summary Submit contact details
// @Tags wizard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitContactRequest true "Contact details"
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 422 {object} httperr.Response
// @Router /bookings/wizard/contact [post]
func (h *WizardHandler) SubmitContact(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	var req reqdto.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	state, err := h.wizard.SubmitContact(c.Request.Context(), customerID, req)
	h.respondState(c, state, err)
}

// @Summary Step back
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.WizardStateResponse
// @Router /bookings/wizard/retreat [post]
func (h *WizardHandler) Retreat(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}
	state, err := h.wizard.Retreat(c.Request.Context(), customerID)
	h.respondState(c, state, err)
}

// @Summary Reset the wizard
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.WizardStateResponse
// @Router /bookings/wizard/reset [post]
func (h *WizardHandler) Reset(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}
	state, err := h.wizard.Reset(c.Request.Context(), customerID)
	h.respondState(c, state, err)
}

// @Summary Complete review
// @Description Freeze the quote, mark the draft ready for payment and return the charge parameters
// @Tags wizard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.PaymentInitResponse
// @Failure 422 {object} httperr.Response
// @Router /bookings/wizard/complete [post]
func (h *WizardHandler) Complete(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	init, err := h.wizard.Complete(c.Request.Context(), customerID)
	if err != nil {
		h.mapError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentInit(init))
}
