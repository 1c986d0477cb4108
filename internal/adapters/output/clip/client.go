package clip

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"hue-mcp/internal/domain/model"
	"hue-mcp/internal/ports"
)

const (
	resourcePath = "/clip/v2/resource"
	appKeyHeader = "hue-application-key"
)

// Client is generic CRUD over /clip/v2/resource/{kind}[/{id}]. It never retries.
type Client struct {
	baseURL    string
	appKey     string
	httpClient *http.Client
}

var _ ports.ResourceOperations = (*Client)(nil)

type envelope struct {
	Data []json.RawMessage `json:"data"`
}

type refEnvelope struct {
	Data []model.ResourceRef `json:"data"`
}

// NewClient builds a client for the bridge at address. Certificate verification is
// disabled: the bridge only ever presents a self-signed certificate on the local network.
func NewClient(address, appKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL(address),
		appKey:  appKey,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec
			},
		},
	}
}

// NewFactory returns a ports.ResourceClientFactory producing clients with the given timeout.
func NewFactory(timeout time.Duration) ports.ResourceClientFactory {
	return func(conn model.Connection) ports.ResourceOperations {
		return NewClient(conn.Address, conn.Credentials.Username, timeout)
	}
}

func baseURL(address string) string {
	address = strings.TrimSuffix(address, "/")
	if strings.HasPrefix(address, "https://") || strings.HasPrefix(address, "http://") {
		return address
	}
	return "https://" + address
}

func (c *Client) List(ctx context.Context, kind model.ResourceKind) ([]json.RawMessage, error) {
	data, err := c.do(ctx, http.MethodGet, c.path(kind, ""), nil)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding %s list: %w", kind, err)
	}
	return env.Data, nil
}

func (c *Client) Get(ctx context.Context, kind model.ResourceKind, id string) (json.RawMessage, error) {
	data, err := c.do(ctx, http.MethodGet, c.path(kind, id), nil)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding %s %s: %w", kind, id, err)
	}
	if len(env.Data) == 0 {
		return nil, &model.NotFoundError{Kind: kind, Name: id}
	}
	return env.Data[0], nil
}

func (c *Client) Create(ctx context.Context, kind model.ResourceKind, body interface{}) ([]model.ResourceRef, error) {
	return c.refs(ctx, http.MethodPost, c.path(kind, ""), body)
}

func (c *Client) Update(ctx context.Context, kind model.ResourceKind, id string, body interface{}) ([]model.ResourceRef, error) {
	return c.refs(ctx, http.MethodPut, c.path(kind, id), body)
}

func (c *Client) Delete(ctx context.Context, kind model.ResourceKind, id string) ([]model.ResourceRef, error) {
	return c.refs(ctx, http.MethodDelete, c.path(kind, id), nil)
}

func (c *Client) path(kind model.ResourceKind, id string) string {
	if id == "" {
		return fmt.Sprintf("%s/%s", resourcePath, kind)
	}
	return fmt.Sprintf("%s/%s/%s", resourcePath, kind, id)
}

func (c *Client) refs(ctx context.Context, method, path string, body interface{}) ([]model.ResourceRef, error) {
	data, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	var env refEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decoding %s %s reply: %w", method, path, err)
	}
	return env.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set(appKeyHeader, c.appKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &model.TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &model.TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &model.BridgeAPIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	// The bridge can answer 2xx while still reporting per-resource errors.
	if descriptions := gjson.GetBytes(data, "errors.#.description").Array(); len(descriptions) > 0 {
		msgs := make([]string, 0, len(descriptions))
		for _, d := range descriptions {
			msgs = append(msgs, d.String())
		}
		return nil, &model.BridgeAPIError{StatusCode: resp.StatusCode, Body: strings.Join(msgs, "; ")}
	}

	return data, nil
}
