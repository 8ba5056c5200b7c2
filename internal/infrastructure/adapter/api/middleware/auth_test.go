package middleware

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/budget-tracker/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/budget-tracker/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func basicHeader(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func TestBasicAuth(t *testing.T) {
	user := &entity.User{ID: 7, Name: "Dana", Email: "dana@example.com"}

	t.Run("Valid credentials reach the handler", func(t *testing.T) {
		mockAuth := usecasemocks.NewMockAuthUseCase(t)
		mockAuth.EXPECT().
			SignIn(mock.Anything, "dana@example.com", "secret").
			Return(user, nil).
			Once()

		router := gin.New()
		router.Use(BasicAuth(mockAuth, logger.NewNoopLogger()))
		router.GET("/protected", func(c *gin.Context) {
			got, ok := CurrentUser(c)
			require.True(t, ok)
			assert.Equal(t, user, got)
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", basicHeader("dana@example.com", "secret"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Missing or malformed header answers 401 without a lookup", func(t *testing.T) {
		headers := map[string]string{
			"no header":       "",
			"wrong scheme":    "Bearer sometoken",
			"bad base64":      "Basic %%%not-base64%%%",
			"no colon":        "Basic " + base64.StdEncoding.EncodeToString([]byte("danaexample.com")),
			"lowercase basic": "basic " + base64.StdEncoding.EncodeToString([]byte("dana@example.com:secret")),
		}

		for name, header := range headers {
			t.Run(name, func(t *testing.T) {
				mockAuth := usecasemocks.NewMockAuthUseCase(t)

				router := gin.New()
				router.Use(BasicAuth(mockAuth, logger.NewNoopLogger()))
				router.GET("/protected", func(c *gin.Context) {
					t.Fatal("handler must not run without credentials")
				})

				req := httptest.NewRequest(http.MethodGet, "/protected", nil)
				if header != "" {
					req.Header.Set("Authorization", header)
				}
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				assert.Equal(t, http.StatusUnauthorized, w.Code)
				assert.Equal(t, `Basic realm="budget-tracker"`, w.Header().Get("WWW-Authenticate"))
				assert.Contains(t, w.Body.String(), `"code":4010`)
				mockAuth.AssertNotCalled(t, "SignIn", mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Rejected credentials answer 401", func(t *testing.T) {
		mockAuth := usecasemocks.NewMockAuthUseCase(t)
		mockAuth.EXPECT().
			SignIn(mock.Anything, "dana@example.com", "wrong").
			Return(nil, domainerr.ErrInvalidCredentials).
			Once()

		router := gin.New()
		router.Use(BasicAuth(mockAuth, logger.NewNoopLogger()))
		router.GET("/protected", func(c *gin.Context) {
			t.Fatal("handler must not run for rejected credentials")
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", basicHeader("dana@example.com", "wrong"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"code":4010`)
	})

	t.Run("Infrastructure failures are logged and still answer 401", func(t *testing.T) {
		mockAuth := usecasemocks.NewMockAuthUseCase(t)
		mockAuth.EXPECT().
			SignIn(mock.Anything, "dana@example.com", "secret").
			Return(nil, errors.New("connection reset")).
			Once()

		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Error("Authentication lookup failed", mock.Anything).Once()

		router := gin.New()
		router.Use(BasicAuth(mockAuth, mockLogger))
		router.GET("/protected", func(c *gin.Context) {
			t.Fatal("handler must not run when the lookup fails")
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", basicHeader("dana@example.com", "secret"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
