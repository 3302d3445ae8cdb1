// Package api is the HTTP client for the code-generation backend. It speaks
// the backend's versioned JSON contract and maps failures onto the error
// taxonomy the orchestration core reports to the user.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to one backend instance. It is safe for use from tea.Cmd
// goroutines because it holds no mutable state after construction.
type Client struct {
	base *url.URL
	http *http.Client
}

// New builds a client for baseURL, which must include the API prefix
// (e.g. http://localhost:8000/api/v1). The timeout bounds every request;
// the orchestration core enforces no timeout of its own.
func New(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}
	return &Client{
		base: u,
		http: &http.Client{Timeout: timeout},
	}, nil
}

// CreateSession starts a new conversation session. Any transport failure,
// non-2xx status, or payload missing session_id yields a SessionCreationError.
func (c *Client) CreateSession(ctx context.Context) (SessionInfo, error) {
	var info SessionInfo
	if err := c.doJSON(ctx, http.MethodPost, c.endpoint("sessions"), struct{}{}, &info); err != nil {
		return SessionInfo{}, &SessionCreationError{Err: err}
	}
	if strings.TrimSpace(info.SessionID) == "" {
		return SessionInfo{}, &SessionCreationError{Err: fmt.Errorf("backend returned no session id")}
	}
	return info, nil
}

// GenerateCode submits one generation request under sessionID. Failures come
// back as *GenerationRequestError carrying the backend's detail message when
// the server supplied one.
func (c *Client) GenerateCode(ctx context.Context, sessionID string, req GenerateRequest) (GenerateResponse, error) {
	endpoint := c.endpoint("code", "generate") + "?" + url.Values{"session_id": {sessionID}}.Encode()

	var resp GenerateResponse
	if err := c.doJSON(ctx, http.MethodPost, endpoint, req, &resp); err != nil {
		if he, ok := err.(*httpError); ok {
			return GenerateResponse{}, &GenerationRequestError{StatusCode: he.StatusCode, Detail: he.Detail}
		}
		return GenerateResponse{}, &GenerationRequestError{Err: err}
	}
	return resp, nil
}

// ClearSession asks the server to drop sessionID's conversation log while
// keeping the session alive.
func (c *Client) ClearSession(ctx context.Context, sessionID string) error {
	return c.doJSON(ctx, http.MethodPost, c.endpoint("sessions", sessionID, "clear"), nil, nil)
}

// DeleteSession ends sessionID on the server.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint("sessions", sessionID), nil, nil)
}

// Health probes the server-root health endpoint (outside the API prefix).
func (c *Client) Health(ctx context.Context) (HealthInfo, error) {
	root := *c.base
	root.Path = "/health"
	var info HealthInfo
	if err := c.doJSON(ctx, http.MethodGet, root.String(), nil, &info); err != nil {
		return HealthInfo{}, err
	}
	return info, nil
}

// ListFiles returns the generated files stored on the server, newest first.
func (c *Client) ListFiles(ctx context.Context) (FileList, error) {
	var list FileList
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint("code", "files"), nil, &list); err != nil {
		return FileList{}, err
	}
	return list, nil
}

// DownloadFile fetches a previously generated file's content.
func (c *Client) DownloadFile(ctx context.Context, filename string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("code", "download", filename), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", filename, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", readError(resp)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", filename, err)
	}
	return string(body), nil
}

// DeleteFile removes a generated file from the server.
func (c *Client) DeleteFile(ctx context.Context, filename string) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint("code", "files", filename), nil, nil)
}

func (c *Client) endpoint(parts ...string) string {
	u := *c.base
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.Join(escaped, "/")
	return u.String()
}

// doJSON performs one request/response cycle. A nil in means no body; a nil
// out discards the response body. Non-2xx responses decode the backend's
// {"detail": ...} envelope into an *httpError.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readError(resp *http.Response) error {
	he := &httpError{StatusCode: resp.StatusCode}
	var eb errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&eb); err == nil {
		he.Detail = eb.Detail
	}
	return he
}
