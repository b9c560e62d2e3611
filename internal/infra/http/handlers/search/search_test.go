package search_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	appsearch "github.com/homeglue/spotify-home-search/internal/app/services/search"
	handler "github.com/homeglue/spotify-home-search/internal/infra/http/handlers/search"
	"github.com/homeglue/spotify-home-search/internal/infra/http/handlers/search/mocks"
)

func TestSearchHandler_Statuses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		pathType       string
		rawQuery       string
		expectedQuery  string
		serviceResult  appsearch.Result
		serviceErr     error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "empty query",
			pathType:       "artist",
			rawQuery:       "",
			expectedQuery:  "",
			serviceErr:     appsearch.ErrEmptyQuery,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "no query provided",
		},
		{
			name:           "invalid type",
			pathType:       "podcast",
			rawQuery:       "twice",
			expectedQuery:  "twice",
			serviceErr:     appsearch.ErrInvalidKind,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid search type",
		},
		{
			name:           "no results",
			pathType:       "artist",
			rawQuery:       "twice",
			expectedQuery:  "twice",
			serviceErr:     appsearch.ErrNoResults,
			expectedStatus: http.StatusNotFound,
			expectedError:  "no results found",
		},
		{
			name:           "not configured",
			pathType:       "artist",
			rawQuery:       "twice",
			expectedQuery:  "twice",
			serviceErr:     appsearch.ErrNotConfigured,
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  "spotify not configured",
		},
		{
			name:           "client error",
			pathType:       "artist",
			rawQuery:       "aespa",
			expectedQuery:  "aespa",
			serviceErr:     appsearch.ErrClient,
			expectedStatus: http.StatusBadGateway,
			expectedError:  "spotify client error",
		},
		{
			name:           "malformed item",
			pathType:       "artist",
			rawQuery:       "aespa",
			expectedQuery:  "aespa",
			serviceErr:     appsearch.ErrInvalidItem,
			expectedStatus: http.StatusBadGateway,
			expectedError:  "invalid item data",
		},
		{
			name:           "unexpected error",
			pathType:       "artist",
			rawQuery:       "ive",
			expectedQuery:  "ive",
			serviceErr:     assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
		{
			name:           "success with slash in query",
			pathType:       "artist",
			rawQuery:       "/AC%2FDC",
			expectedQuery:  "AC/DC",
			serviceResult:  appsearch.Result{URI: "spotify:artist:1", Name: "AC/DC", Type: "artist"},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			req := httptest.NewRequest(http.MethodGet, "/search/"+tt.pathType+"/"+tt.rawQuery, nil)
			ctx.Request = req
			ctx.Params = gin.Params{
				{Key: "type", Value: tt.pathType},
				{Key: "query", Value: tt.rawQuery},
			}

			mockService := &mocks.MockSearchService{}
			t.Cleanup(func() {
				mockService.AssertExpectations(t)
			})

			if tt.serviceErr != nil {
				mockService.On("Search", mock.Anything, tt.expectedQuery, tt.pathType).
					Return(nil, tt.serviceErr).
					Once()
			} else {
				mockService.On("Search", mock.Anything, tt.expectedQuery, tt.pathType).
					Return(tt.serviceResult, nil).
					Once()
			}

			h := handler.New(otel.Tracer("test"), mockService)
			h.Search(ctx)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				var payload appsearch.Result
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
				assert.Equal(t, tt.serviceResult, payload)
				return
			}

			var payload map[string]string
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
			assert.Equal(t, tt.expectedError, payload["error"])
		})
	}
}

func TestSearchHandler_ClearCache(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		result appsearch.ClearResult
	}{
		{
			name:   "cache cleared",
			result: appsearch.ClearResult{Success: true, Message: "Cache cleared"},
		},
		{
			name:   "cache already empty",
			result: appsearch.ClearResult{Success: false, Message: "Cache was already empty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)
			ctx.Request = httptest.NewRequest(http.MethodPost, "/cache/clear", nil)

			mockService := &mocks.MockSearchService{}
			mockService.On("ClearCache", mock.Anything).
				Return(tt.result).
				Once()

			h := handler.New(otel.Tracer("test"), mockService)
			h.ClearCache(ctx)

			assert.Equal(t, http.StatusOK, recorder.Code)

			var payload appsearch.ClearResult
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
			assert.Equal(t, tt.result, payload)
			mockService.AssertExpectations(t)
		})
	}
}
