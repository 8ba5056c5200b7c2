package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/budget-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/budget-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/budget-tracker/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/budget-tracker/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// asUser injects an authenticated user the way BasicAuth would
func asUser(user *entity.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCurrentUser(c, user)
		c.Next()
	}
}

func categoryRouter(t *testing.T, user *entity.User) (*gin.Engine, *usecasemocks.MockCategoryUseCase) {
	t.Helper()
	mockUseCase := usecasemocks.NewMockCategoryUseCase(t)
	h := NewCategoryHandler(mockUseCase, logger.NewNoopLogger(), true)

	router := gin.New()
	group := router.Group("/api/categories", asUser(user))
	group.GET("", h.List)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PATCH("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	return router, mockUseCase
}

func TestCategoryHandlerList(t *testing.T) {
	user := &entity.User{ID: 10}
	router, mockUseCase := categoryRouter(t, user)

	categories := []*entity.Category{
		{ID: 1, Name: "Groceries", Type: entity.TypeExpense, UserID: 10},
		{ID: 2, Name: "Salary", Type: entity.TypeIncome, UserID: 10},
	}
	mockUseCase.EXPECT().List(mock.Anything, uint64(10)).Return(categories, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CategoryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Groceries", resp[0].Name)
	assert.Equal(t, "income", resp[1].Type)
}

func TestCategoryHandlerCreate(t *testing.T) {
	user := &entity.User{ID: 10}

	t.Run("Successful creation returns 201", func(t *testing.T) {
		router, mockUseCase := categoryRouter(t, user)

		category := &entity.Category{ID: 1, Name: "Groceries", Type: entity.TypeExpense, UserID: 10}
		mockUseCase.EXPECT().Create(mock.Anything, uint64(10), "Groceries", "expense").Return(category, nil).Once()

		w := postJSON(t, router, "/api/categories", dto.CreateCategoryRequest{Name: "Groceries", Type: "expense"})

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.CategoryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint64(1), resp.ID)
		assert.Equal(t, uint64(10), resp.UserID)
	})

	t.Run("Invalid type returns 400", func(t *testing.T) {
		router, mockUseCase := categoryRouter(t, user)

		mockUseCase.EXPECT().Create(mock.Anything, uint64(10), "Groceries", "savings").
			Return(nil, errs.ErrInvalidCategoryType).Once()

		w := postJSON(t, router, "/api/categories", dto.CreateCategoryRequest{Name: "Groceries", Type: "savings"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeInvalidCategoryType, decodeError(t, w).Code)
	})
}

func TestCategoryHandlerGet(t *testing.T) {
	user := &entity.User{ID: 10}

	t.Run("Owned category returns 200", func(t *testing.T) {
		router, mockUseCase := categoryRouter(t, user)

		category := &entity.Category{ID: 1, Name: "Groceries", Type: entity.TypeExpense, UserID: 10}
		mockUseCase.EXPECT().Get(mock.Anything, uint64(10), uint64(1)).Return(category, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/categories/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Foreign or absent category returns 404", func(t *testing.T) {
		router, mockUseCase := categoryRouter(t, user)

		mockUseCase.EXPECT().Get(mock.Anything, uint64(10), uint64(7)).
			Return(nil, errs.ErrCategoryNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/categories/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, errs.CodeNotFound, decodeError(t, w).Code)
	})

	t.Run("Non-numeric id returns 400", func(t *testing.T) {
		router, _ := categoryRouter(t, user)

		req := httptest.NewRequest(http.MethodGet, "/api/categories/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeInvalidRequest, decodeError(t, w).Code)
	})
}

func TestCategoryHandlerUpdate(t *testing.T) {
	user := &entity.User{ID: 10}
	name := "Rent"

	t.Run("Successful update returns 204", func(t *testing.T) {
		router, mockUseCase := categoryRouter(t, user)

		mockUseCase.EXPECT().Update(mock.Anything, uint64(10), uint64(1), entity.CategoryPatch{Name: &name}).
			Return(nil).Once()

		payload, _ := json.Marshal(dto.UpdateCategoryRequest{Name: &name})
		req := httptest.NewRequest(http.MethodPatch, "/api/categories/1", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("Empty patch returns 400", func(t *testing.T) {
		router, mockUseCase := categoryRouter(t, user)

		mockUseCase.EXPECT().Update(mock.Anything, uint64(10), uint64(1), entity.CategoryPatch{}).
			Return(errs.ErrEmptyUpdate).Once()

		req := httptest.NewRequest(http.MethodPatch, "/api/categories/1", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errs.CodeEmptyUpdate, decodeError(t, w).Code)
	})
}

func TestCategoryHandlerDelete(t *testing.T) {
	user := &entity.User{ID: 10}

	t.Run("Successful delete returns 202", func(t *testing.T) {
		router, mockUseCase := categoryRouter(t, user)

		mockUseCase.EXPECT().Delete(mock.Anything, uint64(10), uint64(1)).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/categories/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("Foreign category returns 404", func(t *testing.T) {
		router, mockUseCase := categoryRouter(t, user)

		mockUseCase.EXPECT().Delete(mock.Anything, uint64(10), uint64(7)).
			Return(errs.ErrCategoryNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/categories/7", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
