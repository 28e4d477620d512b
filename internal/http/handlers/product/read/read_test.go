package read

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/stock-api/internal/models"
	"github.com/magabrotheeeer/stock-api/internal/storage/repository"
)

type ProductServiceMock struct {
	mock.Mock
}

func (m *ProductServiceMock) Read(ctx context.Context, id int) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newTestRouter(serviceMock *ProductServiceMock) http.Handler {
	handler := New(newNoopLogger(), serviceMock)
	router := chi.NewRouter()
	router.Get("/api/products/{id}", handler.ServeHTTP)
	return router
}

func TestReadHandler_ServeHTTP(t *testing.T) {
	t.Run("existing product", func(t *testing.T) {
		serviceMock := new(ProductServiceMock)
		updated := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
		stored := &models.Product{
			ID:              7,
			Name:            "Widget",
			Description:     "small widget",
			Price:           9.99,
			Stock:           3,
			CreatedDate:     time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
			LastUpdatedDate: &updated,
		}
		serviceMock.On("Read", mock.Anything, 7).Return(stored, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/products/7", nil)
		rec := httptest.NewRecorder()
		newTestRouter(serviceMock).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got models.ProductView
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, 7, got.ID)
		assert.Equal(t, "Widget", got.Name)
		assert.Equal(t, "small widget", got.Description)
		assert.Equal(t, 9.99, got.Price)
		assert.Equal(t, 3, got.Stock)
		require.NotNil(t, got.LastUpdatedDate)
		assert.True(t, got.LastUpdatedDate.Equal(updated))

		serviceMock.AssertExpectations(t)
	})

	t.Run("missing product returns problem details", func(t *testing.T) {
		serviceMock := new(ProductServiceMock)
		serviceMock.On("Read", mock.Anything, 99).Return(nil, repository.ErrProductNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/products/99", nil)
		rec := httptest.NewRecorder()
		newTestRouter(serviceMock).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var got map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "Not Found", got["title"])
		assert.Equal(t, float64(http.StatusNotFound), got["status"])
		assert.Equal(t, "Product with ID '99' was not found.", got["detail"])
		assert.Equal(t, "/api/products/99", got["instance"])

		serviceMock.AssertExpectations(t)
	})

	t.Run("non-numeric id returns problem details", func(t *testing.T) {
		serviceMock := new(ProductServiceMock)

		req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
		rec := httptest.NewRecorder()
		newTestRouter(serviceMock).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var got map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "Product with ID 'abc' was not found.", got["detail"])

		serviceMock.AssertNotCalled(t, "Read", mock.Anything, mock.Anything)
	})

	t.Run("storage error", func(t *testing.T) {
		serviceMock := new(ProductServiceMock)
		serviceMock.On("Read", mock.Anything, 7).Return(nil, assert.AnError).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/products/7", nil)
		rec := httptest.NewRecorder()
		newTestRouter(serviceMock).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		serviceMock.AssertExpectations(t)
	})
}
