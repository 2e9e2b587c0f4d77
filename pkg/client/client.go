// Package client provides a Go client for the masking service API.
//
// The client hashes caller data onto the Ristretto255 group before sending
// it, so raw values never leave the caller in a recoverable form. Mask
// tokens returned by the service are opaque and only usable by the service
// that issued them.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	circl "github.com/cloudflare/circl/group"
)

// dataDST is the domain separation tag for hashing data onto the group.
// It must match the tag used by the service.
var dataDST = []byte("maskd/v1:data")

// ErrEvaluationFailed is returned when the service answers with a failure
// status. The protocol exposes no further detail.
var ErrEvaluationFailed = errors.New("maskd: evaluation failed")

// Request is the wire request for the evaluate endpoint.
// Both fields are single-element sequences when present.
type Request struct {
	Mask []string `json:"mask,omitempty"`
	Data []string `json:"data,omitempty"`
}

// Response is the wire response from the evaluate endpoint.
type Response struct {
	Status string   `json:"status"`
	Mask   []string `json:"mask,omitempty"`
	Data   []string `json:"data,omitempty"`
}

// Client calls the masking service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the service at baseURL (e.g. "http://localhost:8080").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// RequestMask asks the service to issue a fresh mask token.
// The returned token is Base64 text, opaque to the caller.
func (c *Client) RequestMask(ctx context.Context) (string, error) {
	response, err := c.Evaluate(ctx, Request{})
	if err != nil {
		return "", err
	}

	if response.Status != "success" || len(response.Mask) != 1 {
		return "", ErrEvaluationFailed
	}

	return response.Mask[0], nil
}

// ApplyMask hashes data onto the group and asks the service to apply the
// given mask token to it. Returns the 32-byte masked group element.
// The same token and data always yield the same result.
func (c *Client) ApplyMask(ctx context.Context, maskToken string, data []byte) ([]byte, error) {
	element := circl.Ristretto255.HashToElement(data, dataDST)
	raw, err := element.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to encode data point: %w", err)
	}

	response, err := c.Evaluate(ctx, Request{
		Mask: []string{maskToken},
		Data: []string{base64.StdEncoding.EncodeToString(raw)},
	})
	if err != nil {
		return nil, err
	}

	if response.Status != "success" || len(response.Data) != 1 {
		return nil, ErrEvaluationFailed
	}

	masked, err := base64.StdEncoding.DecodeString(response.Data[0])
	if err != nil {
		return nil, fmt.Errorf("failed to decode masked data: %w", err)
	}

	return masked, nil
}

// Evaluate sends a raw protocol request and returns the decoded response.
// Most callers should use RequestMask and ApplyMask instead.
func (c *Client) Evaluate(ctx context.Context, request Request) (Response, error) {
	var response Response

	body, err := json.Marshal(request)
	if err != nil {
		return response, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/oprf/evaluate",
		bytes.NewReader(body),
	)
	if err != nil {
		return response, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return response, fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(raw, &response); err != nil {
		return response, fmt.Errorf("failed to decode response: %w", err)
	}

	return response, nil
}
