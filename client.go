package tgram

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const defaultAPIURL = "https://api.telegram.org"

// apiResponse is the envelope every Bot API method returns.
type apiResponse struct {
	OK          bool                `json:"ok"`
	Result      json.RawMessage     `json:"result,omitempty"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Description string              `json:"description,omitempty"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`
}

// Client is an HTTP Caller for the Telegram Bot API. It performs no
// retries and no rate limiting; failures surface as *Error (API rejection)
// or *HTTPError (undecodable response).
type Client struct {
	token  string
	apiURL string
	http   *http.Client
}

var _ Caller = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the underlying *http.Client. The default has a
// 30 second timeout.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithAPIURL overrides the Bot API base URL. Useful for local API servers
// and tests.
func WithAPIURL(u string) ClientOption {
	return func(c *Client) {
		c.apiURL = u
	}
}

// NewClient creates a Bot API client for the given bot token.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		token:  token,
		apiURL: defaultAPIURL,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call implements the Caller interface. Parameters are sent as a JSON body;
// media upload by multipart is not supported, pass file ids or URLs.
func (c *Client) Call(ctx context.Context, method string, params Params) (json.RawMessage, error) {
	u := c.apiURL + "/bot" + c.token + "/" + method

	body, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: u}
	}
	if !env.OK {
		return nil, &Error{
			ErrorCode:   env.ErrorCode,
			Description: env.Description,
			Parameters:  env.Parameters,
		}
	}
	return env.Result, nil
}

// GetMe fetches the bot's own identity. Typically called once at startup
// and passed to NewContext.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	raw, err := c.Call(ctx, "getMe", nil)
	if err != nil {
		return nil, err
	}
	var me User
	if err := json.Unmarshal(raw, &me); err != nil {
		return nil, err
	}
	return &me, nil
}
