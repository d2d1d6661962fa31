package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "pulse-ai/backend/internal/errors"
	"pulse-ai/backend/internal/inference"
	"pulse-ai/backend/internal/interfaces"
)

// maxUploadBytes caps in-memory buffering of multipart uploads (32 MiB,
// matching the upstream's own file limit).
const maxUploadBytes = 32 << 20

// PlaygroundHandler serves the vision, file and voice pass-through endpoints.
type PlaygroundHandler struct {
	playground interfaces.PlaygroundService
}

func NewPlaygroundHandler(playground interfaces.PlaygroundService) *PlaygroundHandler {
	return &PlaygroundHandler{playground: playground}
}

// VisionBase64Request is the DTO for inline-image vision queries.
type VisionBase64Request struct {
	Base64Image string `json:"base64Image" validate:"required"`
	Query       string `json:"query" validate:"required"`
	Model       string `json:"model" validate:"required"`
}

// VisionURLRequest is the DTO for remote-image vision queries.
type VisionURLRequest struct {
	ImageURL string `json:"imageUrl" validate:"required,url"`
	Query    string `json:"query" validate:"required"`
	Model    string `json:"model" validate:"required"`
}

// HandleVisionBase64 analyzes an inline base64 image.
// @Summary Analyze a base64-encoded image
// @Tags playground
// @Accept json
// @Produce json
// @Param request body VisionBase64Request true "Image and query"
// @Success 200 {object} ReplyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/vision/base64 [post]
func (h *PlaygroundHandler) HandleVisionBase64(w http.ResponseWriter, r *http.Request) {
	var req VisionBase64Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	reply, err := h.playground.AnalyzeImageBase64(r.Context(), &inference.VisionBase64Request{
		Base64Image: req.Base64Image,
		Query:       req.Query,
		Model:       req.Model,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ReplyResponse{Content: reply})
}

// HandleVisionURL analyzes an image by URL.
// @Summary Analyze an image by URL
// @Tags playground
// @Accept json
// @Produce json
// @Param request body VisionURLRequest true "Image URL and query"
// @Success 200 {object} ReplyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/vision/url [post]
func (h *PlaygroundHandler) HandleVisionURL(w http.ResponseWriter, r *http.Request) {
	var req VisionURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	reply, err := h.playground.AnalyzeImageURL(r.Context(), &inference.VisionURLRequest{
		ImageURL: req.ImageURL,
		Query:    req.Query,
		Model:    req.Model,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ReplyResponse{Content: reply})
}

// HandleProcessFile forwards a document upload with its query.
// @Summary Process a document
// @Tags playground
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to process"
// @Param query formData string true "Question about the document"
// @Param model formData string true "Model id"
// @Success 200 {object} inference.FileResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/files [post]
func (h *PlaygroundHandler) HandleProcessFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid multipart body", app_errors.ErrValidation))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, fmt.Errorf("%w: missing file field", app_errors.ErrValidation))
		return
	}
	defer file.Close()

	query := r.FormValue("query")
	modelID := r.FormValue("model")
	if query == "" || modelID == "" {
		respondWithError(w, fmt.Errorf("%w: query and model fields are required", app_errors.ErrValidation))
		return
	}

	result, err := h.playground.ProcessFile(r.Context(), &inference.FileUpload{
		Filename: header.Filename,
		Content:  file,
		Query:    query,
		Model:    modelID,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// HandleVoice forwards an audio upload for transcription, optionally with a
// query to answer about the recording.
// @Summary Transcribe a voice recording
// @Tags playground
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio recording"
// @Param query formData string false "Optional question about the recording"
// @Success 200 {object} inference.VoiceResult
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/voice [post]
func (h *PlaygroundHandler) HandleVoice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid multipart body", app_errors.ErrValidation))
		return
	}
	audio, header, err := r.FormFile("audio")
	if err != nil {
		respondWithError(w, fmt.Errorf("%w: missing audio field", app_errors.ErrValidation))
		return
	}
	defer audio.Close()

	result, err := h.playground.Transcribe(r.Context(), &inference.AudioUpload{
		Filename: header.Filename,
		Content:  audio,
		Query:    r.FormValue("query"),
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
