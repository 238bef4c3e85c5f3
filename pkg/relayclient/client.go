package relayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Submission is the payload the relay expects.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitResponse mirrors the relay's JSON envelope.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
	Error   string `json:"error"`
}

// Client calls the contact relay over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// Submit posts a contact form submission and returns the relay's response.
// Any transport failure, non-200 status or unsuccessful envelope is an error.
func (c *Client) Submit(ctx context.Context, sub Submission) (*SubmitResponse, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("encoding submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/contact", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contact relay unreachable: %w", err)
	}
	defer resp.Body.Close()

	var out SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding relay response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !out.Success {
		if out.Error != "" {
			return nil, fmt.Errorf("relay rejected submission: %s", out.Error)
		}
		return nil, fmt.Errorf("relay returned status %d", resp.StatusCode)
	}

	return &out, nil
}
