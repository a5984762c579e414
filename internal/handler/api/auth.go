package api

import (
	"net/http"

	reqdto "shalean-booking-api/internal/handler/dto/request"
	resdto "shalean-booking-api/internal/handler/dto/response"
	"shalean-booking-api/internal/handler/middleware"
	"shalean-booking-api/internal/pkg/config"
	"shalean-booking-api/internal/pkg/cookie"
	"shalean-booking-api/internal/pkg/errs"
	"shalean-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookieCfg   config.CookieConfig
	jwtCfg      config.JWTConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cookieCfg config.CookieConfig, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookieCfg:   cookieCfg,
		jwtCfg:      jwtCfg,
	}
}

// @Summary Customer login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	token, customer, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errs.Is(err, usecase.ErrInvalidCredentials), errs.Is(err, usecase.ErrCustomerNotFound):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetAccessTokenCookie(c, h.cookieCfg, token, h.jwtCfg.Duration)

	response := resdto.LoginResponse{
		AccessToken: token,
		Customer:    customer,
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Customer logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current customer
// @Description Get the authenticated customer's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedCustomerView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Customer not authenticated",
		})
		return
	}

	customer, err := h.authUseCase.GetCurrentCustomer(c.Request.Context(), customerID)
	if err != nil {
		if errs.Is(err, usecase.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, customer)
}
