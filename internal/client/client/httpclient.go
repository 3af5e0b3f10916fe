package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/whportal/internal/client/session"
	"github.com/dmitrijs2005/whportal/internal/common"
	"github.com/dmitrijs2005/whportal/internal/logging"
)

// maxBodySize caps what we read from any response.
const maxBodySize = 1 << 20

type HTTPClient struct {
	http      *http.Client
	pagesBase *url.URL
	log       logging.Logger
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(pagesBase string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(pagesBase)
	if err != nil {
		return nil, fmt.Errorf("pages base: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("pages base %q must be absolute", pagesBase)
	}
	return &HTTPClient{
		http:      &http.Client{Timeout: timeout},
		pagesBase: u,
		log:       log,
	}, nil
}

// Login posts the credentials as form fields, never as JSON.
func (c *HTTPClient) Login(ctx context.Context, apiBase, username, password string) (*LoginResult, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, endpoint(apiBase, common.EndpointLogin), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var dto loginDTO
	if err := c.doJSON(req, &dto); err != nil {
		return nil, err
	}
	return dto.result()
}

// Logout notifies the backend; the response body is never looked at.
func (c *HTTPClient) Logout(ctx context.Context, apiBase, token string) error {
	req, err := c.newRequest(ctx, http.MethodPost, endpoint(apiBase, common.EndpointLogout), http.NoBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
	return nil
}

func (c *HTTPClient) Me(ctx context.Context, apiBase, token string) (*session.Identity, error) {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint(apiBase, common.EndpointMe), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	var dto guestDTO
	if err := c.doJSON(req, &dto); err != nil {
		return nil, err
	}
	id, err := dto.identity()
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// FetchFragment GETs name relative to the pages base.
func (c *HTTPClient) FetchFragment(ctx context.Context, name string) ([]byte, error) {
	ref, err := url.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("fragment %q: %w", name, err)
	}
	req, err := c.newRequest(ctx, http.MethodGet, c.pagesBase.ResolveReference(ref).String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return b, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, target string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	return req, nil
}

// do sends req and maps transport errors and non-2xx statuses. On success
// the caller owns resp.Body.
func (c *HTTPClient) do(req *http.Request) (*http.Response, error) {
	log := c.log.With("method", req.Method, "url", req.URL.Redacted(), "request_id", req.Header.Get(common.RequestIDHeaderName))

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug(req.Context(), "request failed", "error", err)
		return nil, mapError(err)
	}
	log.Debug(req.Context(), "response", "status", resp.StatusCode)

	if err := mapStatus(resp.StatusCode); err != nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

func (c *HTTPClient) doJSON(req *http.Request, v any) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}

func endpoint(apiBase, path string) string {
	return strings.TrimRight(apiBase, "/") + path
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func mapStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, code)
	default:
		return fmt.Errorf("%w %d", ErrBadStatus, code)
	}
}
