package bridge

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

	"github.com/bnema/spacesync/internal/domain/entity"
)

// APIError is a non-2xx bridge response. It unwraps to the domain
// sentinel matching the status so callers can keep using errors.Is.
type APIError struct {
	Status  int
	Message string
	kind    error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bridge: %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.kind }

// Client talks to a running daemon's bridge. The CLI uses it so mutations
// go through the daemon's in-memory state instead of racing it on disk.
type Client struct {
	base string
	http *http.Client
}

// NewClient targets addr (host:port or a full http URL).
func NewClient(addr string) *Client {
	base := addr
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Ping checks /healthz.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/healthz", nil, nil)
}

// ListSpaces returns active and archived spaces.
func (c *Client) ListSpaces(ctx context.Context) (active, closed []entity.Space, err error) {
	var resp spacesResponse
	if err := c.do(ctx, http.MethodGet, "/api/spaces", nil, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Spaces, resp.Closed, nil
}

// RenameSpace sets a user-chosen name. expected 0 skips the version check.
func (c *Client) RenameSpace(ctx context.Context, id entity.SpaceID, name string, expected int64) (entity.Space, error) {
	var space entity.Space
	err := c.do(ctx, http.MethodPut, "/api/spaces/"+url.PathEscape(string(id))+"/name",
		renameRequest{Name: &name, ExpectedVersion: expected}, &space)
	return space, err
}

// DeleteSpace removes an archived space.
func (c *Client) DeleteSpace(ctx context.Context, id entity.SpaceID) error {
	return c.do(ctx, http.MethodDelete, "/api/spaces/"+url.PathEscape(string(id)), nil, nil)
}

// RestoreSpace asks the daemon to reopen an archived space.
func (c *Client) RestoreSpace(ctx context.Context, id entity.SpaceID, windowType entity.WindowType) (entity.RestoreSnapshot, error) {
	var snap entity.RestoreSnapshot
	err := c.do(ctx, http.MethodPost, "/api/spaces/"+url.PathEscape(string(id))+"/restore",
		restoreRequest{Type: windowType}, &snap)
	return snap, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bridge %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body errorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&body)
	if body.Error == "" {
		body.Error = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusConflict {
		return &entity.VersionConflictError{Expected: body.Expected, Current: body.Current}
	}

	apiErr := &APIError{Status: resp.StatusCode, Message: body.Error}
	switch resp.StatusCode {
	case http.StatusNotFound:
		apiErr.kind = entity.ErrSpaceNotFound
	case http.StatusBadRequest:
		apiErr.kind = entity.ErrInvalidArgument
	case http.StatusServiceUnavailable:
		apiErr.kind = entity.ErrLockTimeout
	}
	return apiErr
}
