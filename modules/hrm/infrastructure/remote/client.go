package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/avetra/hrdesk/pkg/configuration"
	"github.com/avetra/hrdesk/pkg/serrors"
)

// Client talks to the back-office HTTP API. Every request carries a
// fresh uuidv4 in the configured request-ID header so server logs can
// be correlated with client ones.
type Client struct {
	http      *http.Client
	baseURL   string
	token     string
	ridHeader string
	log       *logrus.Logger
}

func NewClient(opts configuration.APIOptions, log *logrus.Logger) *Client {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		http:      &http.Client{Timeout: opts.Timeout},
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		token:     opts.Token,
		ridHeader: opts.RequestIDHeader,
		log:       log,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to build request")
	}
	if c.ridHeader != "" {
		req.Header.Set(c.ridHeader, uuid.NewString())
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// do sends the request and maps failures onto the error taxonomy:
// transport problems become NetworkError, 4xx becomes ValidationError
// (404 NotFound) and 5xx ServerError, extracting the server's message
// field when present. The caller owns the body of a 2xx response.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithField("url", req.URL.String()).Error("remote: request failed")
		return nil, gerrors.Wrap(serrors.ErrNetwork, err.Error())
	}
	if resp.StatusCode >= 400 {
		defer func() { _ = resp.Body.Close() }()
		return nil, serrors.FromHTTPStatus(resp.StatusCode, extractMessage(resp.Body))
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return gerrors.Wrap(err, "failed to decode response")
	}
	return nil
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return gerrors.Wrap(err, "failed to encode payload")
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return gerrors.Wrap(err, "failed to decode response")
	}
	return nil
}

func (c *Client) upload(ctx context.Context, path, filename string, r io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return gerrors.Wrap(err, "failed to build multipart body")
	}
	if _, err := io.Copy(part, r); err != nil {
		return gerrors.Wrap(err, "failed to read upload")
	}
	if err := mw.Close(); err != nil {
		return gerrors.Wrap(err, "failed to finalize multipart body")
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return gerrors.Wrap(err, "failed to decode response")
	}
	return nil
}

func (c *Client) download(ctx context.Context, path string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, gerrors.Wrap(err, "failed to read export")
	}
	return blob, nil
}

// extractMessage pulls the structured message out of an error body.
// Anything unreadable degrades to the generic message of the mapped
// error kind.
func extractMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}
