//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"storebook/internal/handler/dto/request"
	"storebook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// RegisterUser creates an account through the public registration endpoint.
func RegisterUser(t *testing.T, router *gin.Engine, email, name, phone, role string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register",
		request.RegisterRequest{
			Email:    email,
			Password: DefaultPassword,
			Name:     name,
			Phone:    phone,
			Role:     role,
		}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Extract access token from cookie
	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// RegisterAndLogin registers a fresh account and returns its access token.
func RegisterAndLogin(t *testing.T, router *gin.Engine, email, name, phone, role string) string {
	t.Helper()
	RegisterUser(t, router, email, name, phone, role)
	return LoginUser(t, router, email, DefaultPassword)
}
