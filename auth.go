package unitedpayment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"github.com/unitedpayment/vpos-go/internal/expiry"
)

const loginEndpoint = "/auth/"

// ensureToken returns a usable auth token, logging in when none is
// cached or the cached one is about to expire. Refresh is serialized; a
// concurrent operation waits here instead of racing a second login.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && !expiry.Expired(c.tokenDeadline, time.Now(), expiry.DefaultSkew) {
		return c.token, nil
	}
	if err := c.login(ctx); err != nil {
		return "", err
	}
	return c.token, nil
}

// login exchanges the merchant credentials for a bearer token. Caller
// holds c.mu.
func (c *Client) login(ctx context.Context) error {
	op := "POST " + loginEndpoint

	b, err := json.Marshal(map[string]string{
		"email":    c.email,
		"password": c.password,
	})
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginEndpoint, bytes.NewReader(b))
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return apiError(resp.StatusCode, body)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &out); err != nil || out.Token == "" {
		return &APIError{StatusCode: resp.StatusCode, Message: "login response missing token", Body: body}
	}

	c.token = out.Token
	if exp, err := expiry.FromJWTExp(out.Token); err == nil {
		c.tokenDeadline = exp
	} else {
		// Opaque token: fall back to the documented session window.
		c.tokenDeadline = expiry.Deadline(time.Now(), 0)
	}

	c.logger.Info("gateway login", slog.Time("token_deadline", c.tokenDeadline))
	return nil
}
