package api

import (
	"net/http"

	"pulse-ai/backend/internal/interfaces"
	"pulse-ai/backend/internal/model"
)

// ModelHandler serves the model catalogue.
type ModelHandler struct {
	models interfaces.ModelService
}

func NewModelHandler(models interfaces.ModelService) *ModelHandler {
	return &ModelHandler{models: models}
}

// ModelsResponse mirrors the upstream catalogue shape so the frontend can
// consume either source unchanged.
type ModelsResponse struct {
	Data []model.Model `json:"data"`
}

// HandleListModels returns the available models. When the upstream is
// unreachable the response is the fixed fallback catalogue, never an error.
// @Summary List available models
// @Tags models
// @Produce json
// @Success 200 {object} ModelsResponse
// @Router /api/v1/models [get]
func (h *ModelHandler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	models, err := h.models.List(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ModelsResponse{Data: models})
}
