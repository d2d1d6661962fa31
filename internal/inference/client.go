package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"pulse-ai/backend/internal/model"
)

type httpProvider struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewHTTPProvider creates a Provider talking to the given base URL. The token,
// when non-empty, is attached to every request as a bearer Authorization.
func NewHTTPProvider(baseURL, token string) Provider {
	return &httpProvider{
		client:  &http.Client{},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

// ListModels fetches the model catalogue. The upstream usually wraps the
// list in a `data` field but older deployments return a bare array, and the
// entries disagree on field names; both shapes are normalized here.
func (p *httpProvider) ListModels(ctx context.Context) ([]model.Model, error) {
	body, err := p.doJSON(ctx, http.MethodGet, "/v1/models", nil)
	if err != nil {
		return nil, err
	}

	type rawModel struct {
		ID          string `json:"id"`
		Model       string `json:"model"`
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
		Vision      bool   `json:"vision"`
	}
	var wrapped struct {
		Data []rawModel `json:"data"`
	}
	var raw []rawModel
	if err := json.Unmarshal(body, &wrapped); err == nil && len(wrapped.Data) > 0 {
		raw = wrapped.Data
	} else {
		var bare []rawModel
		if err := json.Unmarshal(body, &bare); err == nil {
			raw = bare
		}
	}

	models := make([]model.Model, 0, len(raw))
	for _, m := range raw {
		id := m.ID
		if id == "" {
			id = m.Model
		}
		if id == "" {
			continue
		}
		name := m.DisplayName
		if name == "" {
			name = m.Name
		}
		if name == "" {
			name = id
		}
		models = append(models, model.Model{ID: id, Name: name, Vision: m.Vision})
	}
	return models, nil
}

// ChatCompletion sends the conversation and returns the assistant's reply.
func (p *httpProvider) ChatCompletion(ctx context.Context, req *ChatRequest) (string, error) {
	body, err := p.doJSON(ctx, http.MethodPost, "/v1/chat/completions", req)
	if err != nil {
		return "", err
	}
	return ParseReply(body)
}

func (p *httpProvider) VisionBase64(ctx context.Context, req *VisionBase64Request) (string, error) {
	body, err := p.doJSON(ctx, http.MethodPost, "/vision/base64", req)
	if err != nil {
		return "", err
	}
	return ParseReply(body)
}

func (p *httpProvider) VisionURL(ctx context.Context, req *VisionURLRequest) (string, error) {
	body, err := p.doJSON(ctx, http.MethodPost, "/vision/url", req)
	if err != nil {
		return "", err
	}
	return ParseReply(body)
}

// ProcessFile uploads a document with its query as multipart form data.
func (p *httpProvider) ProcessFile(ctx context.Context, upload *FileUpload) (*FileResult, error) {
	fields := map[string]string{"query": upload.Query, "model": upload.Model}
	body, err := p.doMultipart(ctx, "/process/file", "file", upload.Filename, upload.Content, fields)
	if err != nil {
		return nil, err
	}
	var result FileResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("could not decode file response: %w", err)
	}
	return &result, nil
}

// Transcribe uploads an audio recording, with an optional query for the
// query-and-answer mode.
func (p *httpProvider) Transcribe(ctx context.Context, upload *AudioUpload) (*VoiceResult, error) {
	fields := map[string]string{}
	if upload.Query != "" {
		fields["query"] = upload.Query
	}
	body, err := p.doMultipart(ctx, "/voice", "audio", upload.Filename, upload.Content, fields)
	if err != nil {
		return nil, err
	}
	var result VoiceResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("could not decode voice response: %w", err)
	}
	return &result, nil
}

// doJSON performs a JSON request against the upstream and returns the raw
// response body. Non-2xx statuses are reported as errors carrying the status
// code and response text.
func (p *httpProvider) doJSON(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return p.send(httpReq)
}

func (p *httpProvider) doMultipart(ctx context.Context, path, fileField, filename string, content io.Reader, fields map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fileField, filename)
	if err != nil {
		return nil, fmt.Errorf("could not create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("could not copy upload content: %w", err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("could not write form field %q: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("could not finalize multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	return p.send(httpReq)
}

func (p *httpProvider) send(req *http.Request) ([]byte, error) {
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("api returned non-2xx status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
