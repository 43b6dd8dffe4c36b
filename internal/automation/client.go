package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sagheerabbass/talenttrack/internal/transport/dto"
)

const defaultTimeout = 10 * time.Second

// Client talks to the external workflow automation service over HTTP.
// Every request carries the shared bearer credential.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient builds a client for the automation service at baseURL. A zero
// timeout falls back to the default.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// RunWorkflow triggers the automation service's resume intake workflow and
// returns the candidate payload it produced.
func (c *Client) RunWorkflow(ctx context.Context) (*dto.RunWorkflowResponse, error) {
	var out dto.RunWorkflowResponse
	if err := c.post(ctx, "/run-workflow", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SendInvite asks the automation service to deliver an interview invite.
func (c *Client) SendInvite(ctx context.Context, req *dto.InviteRequest) (*dto.InviteResponse, error) {
	var out dto.InviteResponse
	if err := c.post(ctx, "/send-invite", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request for %s: %w", path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling automation service %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("automation service %s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response from %s: %w", path, err)
		}
	}
	return nil
}
