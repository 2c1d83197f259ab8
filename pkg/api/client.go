// Package api talks to the driver registration server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cadastrobot/pkg/logger"
	"cadastrobot/pkg/models"
)

var (
	// ErrRejected means the server bounced a registration back to the form.
	ErrRejected = errors.New("registration rejected by server")
	ErrNotFound = errors.New("driver not found")
)

// Client wraps the registration server's HTTP endpoints.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	log        logger.ILogger
}

// NewClient builds a client for baseURL. Redirects are not followed: the
// server answers form posts with redirects and the target tells the outcome.
func NewClient(baseURL string, timeout time.Duration, log logger.ILogger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("server url %q must be absolute", baseURL)
	}

	return &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: log,
	}, nil
}

// DriverURL is the server page of one driver.
func (c *Client) DriverURL(id string) string {
	return c.endpoint("/motorista/" + url.PathEscape(id))
}

func (c *Client) endpoint(path string) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = ""
	return u.String()
}

// Search runs GET /buscar?q=query. The query is sent as typed; trimming and
// the empty case belong to the caller.
func (c *Client) Search(ctx context.Context, query string) ([]models.Driver, error) {
	endpoint := c.endpoint("/buscar") + "?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var drivers []models.Driver
	if err := json.NewDecoder(resp.Body).Decode(&drivers); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return drivers, nil
}

type statusRequest struct {
	Status string `json:"status"`
}

type actionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// SetStatus switches a driver between ativo and inativo.
func (c *Client) SetStatus(ctx context.Context, id, status string) (string, error) {
	if status != models.StatusAtivo && status != models.StatusInativo {
		return "", fmt.Errorf("invalid status %q", status)
	}

	body, err := json.Marshal(statusRequest{Status: status})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint("/toggle_status/"+url.PathEscape(id)), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doAction(req)
}

// doAction executes a request answered with {success,message} or {error}.
func (c *Client) doAction(req *http.Request) (string, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	var out actionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode %s response (status %d): %w", req.URL.Path, resp.StatusCode, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%s: %w", out.Error, ErrNotFound)
	case resp.StatusCode >= 400 || !out.Success:
		msg := out.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", fmt.Errorf("%s: %s", req.URL.Path, msg)
	}
	return out.Message, nil
}
