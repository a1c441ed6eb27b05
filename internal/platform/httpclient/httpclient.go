// Package httpclient es un cliente mínimo del API del zoológico.
// Lo usan el healthcheck de cmd/api (HEALTHCHECK del contenedor) y los tests end-to-end.
package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const DefaultTimeout = 10 * time.Second

// maxBody acota lo que se lee de cada respuesta.
const maxBody = 1 << 20

type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New valida baseURL (ej: http://localhost:3000) y arma el cliente.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Response es la respuesta cruda: status + body (texto plano en errores, JSON en éxito).
type Response struct {
	Status int
	Body   []byte
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// Do envía in como JSON (si no es nil) y devuelve status y body sin interpretar.
func (c *Client) Do(ctx context.Context, method, path string, in any) (Response, error) {
	if c == nil || c.HTTP == nil {
		return Response{}, errors.New("httpclient: nil client")
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return Response{}, fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return Response{}, fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return Response{}, fmt.Errorf("httpclient: read body: %w", err)
	}
	return Response{Status: resp.StatusCode, Body: raw}, nil
}

// DoJSON es Do + decode de out. Status no-2xx => *HTTPError.
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out any) error {
	res, err := c.Do(ctx, method, path, in)
	if err != nil {
		return err
	}
	if res.Status < 200 || res.Status >= 300 {
		return &HTTPError{StatusCode: res.Status, Body: strings.TrimSpace(string(res.Body))}
	}
	if out == nil || len(res.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.Body, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

// Healthy consulta /health.
func (c *Client) Healthy(ctx context.Context) error {
	res, err := c.Do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	if res.Status != http.StatusOK {
		return &HTTPError{StatusCode: res.Status, Body: strings.TrimSpace(string(res.Body))}
	}
	return nil
}

func (c *Client) resolve(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path
}
