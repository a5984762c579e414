//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"shalean-booking-api/internal/handler/dto/request"
	"shalean-booking-api/tests/common/dbtest"
	"shalean-booking-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginCustomer(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "access token cookie missing")
	require.NotEmpty(t, accessCookie.Value)

	return accessCookie.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) string {
	t.Helper()
	dbtest.CreateTestCustomer(t, db, email)
	return LoginCustomer(t, router, email, "password123")
}
