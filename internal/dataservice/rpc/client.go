package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"hr-agent/internal/dataservice"
	pkgLog "hr-agent/pkg/log"
)

const defaultTimeout = 15 * time.Second

// OAuth2Config enables the client-credentials flow when ClientID is set.
type OAuth2Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// Config configures the remote Data Service client.
type Config struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
	OAuth2   OAuth2Config
}

// Client forwards Data Service requests to a remote JSON endpoint.
type Client struct {
	l          pkgLog.Logger
	endpoint   string
	token      string
	httpClient *http.Client
}

var _ dataservice.Service = (*Client)(nil)

// New creates a remote Data Service client.
func New(l pkgLog.Logger, cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: empty endpoint", dataservice.ErrDataService)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{}
	token := cfg.Token
	if cfg.OAuth2.ClientID != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.OAuth2.ClientID,
			ClientSecret: cfg.OAuth2.ClientSecret,
			TokenURL:     cfg.OAuth2.TokenURL,
			Scopes:       cfg.OAuth2.Scopes,
		}
		httpClient = cc.Client(context.Background())
		token = ""
	}
	httpClient.Timeout = timeout

	return &Client{
		l:          l,
		endpoint:   cfg.Endpoint,
		token:      token,
		httpClient: httpClient,
	}, nil
}

// Call posts the request and unwraps the {success, data, error} reply.
func (c *Client) Call(ctx context.Context, req dataservice.Request) (any, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", dataservice.ErrDataService, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %v", dataservice.ErrDataService, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	if id := pkgLog.RequestID(ctx); id != "" {
		httpReq.Header.Set("X-Request-ID", id)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.l.Errorf(ctx, "internal.dataservice.rpc.Call: %s %s: %v", req.Entity, req.Op, err)
		return nil, fmt.Errorf("%w: failed to call data service: %v", dataservice.ErrDataService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", dataservice.ErrDataService, resp.StatusCode, bytes.TrimSpace(raw))
	}

	var res dataservice.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("%w: failed to decode reply: %v", dataservice.ErrDataService, err)
	}
	if !res.Success {
		msg := res.Error
		if msg == "" {
			msg = "unknown error"
		}
		return nil, fmt.Errorf("%w: %s", dataservice.ErrDataService, msg)
	}
	return res.Data, nil
}
