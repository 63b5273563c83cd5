package builder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"grant-portal/internal/storage"
)

const (
	CustomReportPath   = "/api/reports/custom"
	ReportTemplatePath = "/api/reports/templates"

	maxBodySize = 32 << 20
)

// Client talks to the portal report API. It never retries.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type customReportResponse struct {
	Data []storage.ReportRow `json:"data"`
}

func (c *Client) Generate(ctx context.Context, spec storage.ReportSpecification) (*storage.ReportResult, error) {
	const op = "builder.Client.Generate"

	body, err := c.post(ctx, CustomReportPath, spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var resp customReportResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}

	if resp.Data == nil {
		resp.Data = []storage.ReportRow{}
	}

	return &storage.ReportResult{Data: resp.Data, Total: len(resp.Data)}, nil
}

// SaveTemplate only checks for a 2xx status; the body is ignored.
func (c *Client) SaveTemplate(ctx context.Context, spec storage.ReportSpecification) error {
	const op = "builder.Client.SaveTemplate"

	if _, err := c.post(ctx, ReportTemplatePath, spec); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("POST %s: unexpected status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}
