package unitedpayment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

const defaultTimeout = 30 * time.Second

// Config holds everything needed to talk to a United Payment vPOS
// environment. It is copied at construction; changing it afterwards has
// no effect on the client.
type Config struct {
	// BaseURL is the gateway root, e.g. "https://test-vpos.unitedpayment.az/api".
	BaseURL string
	// Email and Password are the merchant credentials used to obtain the
	// auth token. They are never validated locally.
	Email    string
	Password string
	// HTTPClient overrides the transport. Defaults to a client with a
	// 30-second timeout.
	HTTPClient *http.Client
	// Logger receives request/login records. Defaults to a discard logger.
	Logger *slog.Logger
}

// Response is the gateway's JSON body, decoded verbatim. The client does
// not reinterpret it: whether a transaction succeeded is whatever the
// gateway's own fields say.
type Response map[string]any

// Client is a United Payment vPOS API client. It is safe for concurrent
// use; operations never serialize against each other, only token refresh
// is guarded.
type Client struct {
	baseURL  string
	email    string
	password string
	http     *http.Client
	logger   *slog.Logger

	mu            sync.Mutex
	token         string
	tokenDeadline time.Time
}

// New builds a Client from cfg. It performs no network I/O: the auth
// token is obtained lazily on the first operation call.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, &ConfigurationError{Field: "BaseURL", Reason: "required"}
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, &ConfigurationError{Field: "BaseURL", Reason: "must be an absolute http(s) URL"}
	}
	if cfg.Email == "" {
		return nil, &ConfigurationError{Field: "Email", Reason: "required"}
	}
	if cfg.Password == "" {
		return nil, &ConfigurationError{Field: "Password", Reason: "required"}
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		email:    cfg.Email,
		password: cfg.Password,
		http:     hc,
		logger:   logger.With(slog.String("component", "unitedpayment")),
	}, nil
}

// post issues an authenticated POST and decodes the JSON body.
func (c *Client) post(ctx context.Context, endpoint string, payload map[string]any) (Response, error) {
	body, status, err := c.send(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return nil, err
	}
	return decodeResponse(status, body)
}

// postRaw issues an authenticated POST and returns the body untouched.
// The pay-link endpoint answers with the link itself, not JSON.
func (c *Client) postRaw(ctx context.Context, endpoint string, payload map[string]any) (string, error) {
	body, _, err := c.send(ctx, http.MethodPost, endpoint, payload)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// get issues an authenticated GET with payload as query parameters.
func (c *Client) get(ctx context.Context, endpoint string, params map[string]any) (Response, error) {
	body, status, err := c.send(ctx, http.MethodGet, endpoint, params)
	if err != nil {
		return nil, err
	}
	return decodeResponse(status, body)
}

func (c *Client) send(ctx context.Context, method, endpoint string, payload map[string]any) ([]byte, int, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, 0, err
	}

	op := method + " " + endpoint
	var req *http.Request
	if method == http.MethodGet {
		u, err := url.Parse(c.baseURL + endpoint)
		if err != nil {
			return nil, 0, &TransportError{Op: op, Err: err}
		}
		q := u.Query()
		for k, v := range payload {
			q.Set(k, fmt.Sprint(v))
		}
		u.RawQuery = q.Encode()
		req, err = http.NewRequestWithContext(ctx, method, u.String(), nil)
		if err != nil {
			return nil, 0, &TransportError{Op: op, Err: err}
		}
	} else {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, &TransportError{Op: op, Err: err}
		}
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bytes.NewReader(b))
		if err != nil {
			return nil, 0, &TransportError{Op: op, Err: err}
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-auth-token", "Bearer "+token)

	c.logger.Debug("gateway request", slog.String("method", method), slog.String("endpoint", endpoint))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &TransportError{Op: op, Err: err}
	}
	if resp.StatusCode/100 != 2 {
		return nil, 0, apiError(resp.StatusCode, body)
	}
	return body, resp.StatusCode, nil
}

func decodeResponse(status int, body []byte) (Response, error) {
	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &APIError{StatusCode: status, Message: "malformed response body", Body: body}
	}
	// Some gateway endpoints signal failure inside a 2xx body.
	if code, ok := stringField(out, "errorCode"); ok {
		msg, _ := stringField(out, "message")
		return nil, &APIError{StatusCode: status, Code: code, Message: msg, Body: body}
	}
	if code, ok := stringField(out, "error"); ok {
		msg, _ := stringField(out, "message")
		return nil, &APIError{StatusCode: status, Code: code, Message: msg, Body: body}
	}
	return out, nil
}

func apiError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: body}
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err == nil {
		if code, ok := stringField(parsed, "errorCode"); ok {
			apiErr.Code = code
		} else if code, ok := stringField(parsed, "error"); ok {
			apiErr.Code = code
		}
		if msg, ok := stringField(parsed, "message"); ok {
			apiErr.Message = msg
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

func stringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// put adds key to the payload only when the value is non-empty, so
// optional fields never reach the wire unset.
func put(payload map[string]any, key, value string) {
	if value != "" {
		payload[key] = value
	}
}
