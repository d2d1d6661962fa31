package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pulse-ai/backend/internal/api"
	"pulse-ai/backend/internal/interfaces/mocks"
	"pulse-ai/backend/internal/model"
)

func TestModelHandler_HandleListModels(t *testing.T) {
	mockSvc := mocks.NewMockModelService(t)
	handler := api.NewModelHandler(mockSvc)

	catalogue := []model.Model{
		{ID: "google/gemma-3-27b", Name: "Gemma 3 27B"},
		{ID: "qwen/qwen3-vl-30b", Name: "Qwen3 VL 30B", Vision: true},
	}
	mockSvc.On("List", mock.Anything).Return(catalogue, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/models", nil)
	rec := httptest.NewRecorder()
	handler.HandleListModels(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got api.ModelsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Data, 2)
	assert.True(t, got.Data[1].Vision)
}
