// Package viacep resolves Brazilian postal codes through the public
// ViaCEP API (https://viacep.com.br).
package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ordertrack/internal/core/ports"
)

const defaultBaseURL = "https://viacep.com.br"

// Client implements ports.AddressResolver against the ViaCEP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// viaCEPResponse mirrors the fields of the ViaCEP JSON payload this
// adapter cares about. An unknown CEP returns {"erro": true}.
type viaCEPResponse struct {
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	Error        bool   `json:"erro"`
}

func (c *Client) Resolve(ctx context.Context, cep string) (ports.ResolvedAddress, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.ResolvedAddress{}, fmt.Errorf("build cep lookup request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.ResolvedAddress{}, fmt.Errorf("cep lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.ResolvedAddress{}, fmt.Errorf("cep lookup: unexpected status %d", resp.StatusCode)
	}

	var payload viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.ResolvedAddress{}, fmt.Errorf("decode cep lookup response: %w", err)
	}
	if payload.Error {
		return ports.ResolvedAddress{}, fmt.Errorf("cep %s not found", cep)
	}

	return ports.ResolvedAddress{
		Street:       payload.Street,
		Neighborhood: payload.Neighborhood,
		City:         payload.City,
		State:        payload.State,
	}, nil
}
