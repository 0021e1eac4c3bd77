package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mockflow_backend/internal/feature/catalog/domain/entity"
	"mockflow_backend/internal/feature/catalog/transport/http/dto"
)

// mockSymbolUsecase is a mock implementation of the SymbolUsecase interface.
type mockSymbolUsecase struct {
	ListActiveSymbolsFunc func(ctx context.Context) ([]entity.Symbol, error)
}

// ListActiveSymbols is the mock implementation of the ListActiveSymbols method.
func (m *mockSymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	if m.ListActiveSymbolsFunc != nil {
		return m.ListActiveSymbolsFunc(ctx)
	}
	return nil, nil
}

func TestSymbolHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockFunc       func(ctx context.Context) ([]entity.Symbol, error)
		expectedStatus int
		validateFunc   func(t *testing.T, body []byte)
	}{
		{
			name: "success: returns public fields only",
			mockFunc: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{
					{Code: "BTC", Name: "Bitcoin mock market", Scenario: "bull", BasePrice: 50000},
					{Code: "ETH", Name: "Ethereum mock market"},
				}, nil
			},
			expectedStatus: http.StatusOK,
			validateFunc: func(t *testing.T, body []byte) {
				var items []dto.SymbolItem
				require.NoError(t, json.Unmarshal(body, &items))
				require.Len(t, items, 2)
				assert.Equal(t, "BTC", items[0].Code)
				assert.Equal(t, "bull", items[0].Scenario)
				assert.Equal(t, "ETH", items[1].Code)
				assert.Empty(t, items[1].Scenario)
				// BasePrice は内部設定のため、レスポンスに含まれない
				assert.NotContains(t, string(body), "50000")
			},
		},
		{
			name: "success: empty list",
			mockFunc: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{}, nil
			},
			expectedStatus: http.StatusOK,
			validateFunc: func(t *testing.T, body []byte) {
				assert.JSONEq(t, "[]", string(body))
			},
		},
		{
			name: "failure: repository error returns 500",
			mockFunc: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, errors.New("db connection lost")
			},
			expectedStatus: http.StatusInternalServerError,
			validateFunc: func(t *testing.T, body []byte) {
				var resp gin.H
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "db connection lost", resp["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSymbolHandler(&mockSymbolUsecase{ListActiveSymbolsFunc: tt.mockFunc})

			router := gin.New()
			router.GET("/symbols", h.List)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/symbols", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateFunc(t, w.Body.Bytes())
		})
	}
}
