package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	api "github.com/kubev2v/switch-inventory/api/v1alpha1"
	"github.com/kubev2v/switch-inventory/pkg/requestid"
)

// Client talks to the /api/v1 endpoints of a switch inventory server.
type Client struct {
	server   string
	callerID string
	http     *http.Client
}

func NewFromConfig(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		server:   strings.TrimRight(config.Service.Server, "/"),
		callerID: config.Service.CallerID,
		http:     NewHTTPClientFromConfig(config),
	}, nil
}

// ResponseError is returned for any non 2xx answer.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// SwitchParams are the optional filters of ListSwitches.
type SwitchParams struct {
	Search      string
	Status      string
	Criticality string
}

func (c *Client) Ask(ctx context.Context, question string) (*api.QueryResponse, error) {
	body, err := json.Marshal(api.QueryRequest{Question: question})
	if err != nil {
		return nil, err
	}

	var resp api.QueryResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/query", bytes.NewReader(body), "application/json", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Status(ctx context.Context) (*api.SystemStatus, error) {
	var resp api.SystemStatus
	if err := c.do(ctx, http.MethodGet, "/api/v1/stats", nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListSwitches(ctx context.Context, params SwitchParams) (api.SwitchList, error) {
	query := url.Values{}
	for key, value := range map[string]string{"search": params.Search, "status": params.Status, "criticality": params.Criticality} {
		if value != "" {
			query.Set(key, value)
		}
	}

	path := "/api/v1/switches"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var resp api.SwitchList
	if err := c.do(ctx, http.MethodGet, path, nil, "", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) GetSwitch(ctx context.Context, id uuid.UUID) (*api.Switch, error) {
	var resp api.Switch
	if err := c.do(ctx, http.MethodGet, "/api/v1/switches/"+id.String(), nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteSwitch(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/switches/"+id.String(), nil, "", nil)
}

func (c *Client) SwitchStats(ctx context.Context) (*api.InventoryStats, error) {
	var resp api.InventoryStats
	if err := c.do(ctx, http.MethodGet, "/api/v1/switches/stats", nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ImportSwitches uploads an inventory workbook as the "file" field of a multipart form.
func (c *Client) ImportSwitches(ctx context.Context, filename string, content io.Reader) (*api.ImportResult, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	var resp api.ImportResult
	if err := c.do(ctx, http.MethodPost, "/api/v1/switches/import", body, writer.FormDataContentType(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.server+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set(requestid.Header, requestid.Generate())
	if c.callerID != "" {
		req.Header.Set(api.CallerIDHeader, c.callerID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr api.Error
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &ResponseError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
