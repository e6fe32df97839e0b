package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Transport handles low-level HTTP and error classification
type Transport struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewTransport creates a transport with base URL
func NewTransport(baseURL string, httpClient *http.Client, logger *slog.Logger) *Transport {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Transport{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: httpClient,
		Logger:     logger,
	}
}

// helper: build full URL with query params, omitting the query when empty
func (t *Transport) buildURL(path string, query url.Values) string {
	full := t.BaseURL + path
	if len(query) > 0 {
		full += "?" + query.Encode()
	}
	return full
}

// Do sends a request with an optional JSON body and decodes a JSON response into out when out is
// non-nil.
func (t *Transport) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	networkErr := func(err error) error {
		return &APIError{Method: method, Path: path, kind: ErrNetworkFailure, cause: err}
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, t.buildURL(path, query), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	t.Logger.Debug("api request", "method", method, "path", path, "query", query.Encode())

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return networkErr(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkErr(err)
	}

	if resp.StatusCode >= 300 {
		apiErr := &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			kind:       classify(resp.StatusCode),
		}
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &payload) == nil {
			apiErr.Message = payload.Error
		}
		t.Logger.Debug("api request failed", "method", method, "path", path, "status", resp.StatusCode, "error", apiErr.Message)
		return apiErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return networkErr(err)
	}
	return nil
}
