// Package rest implements the repositories against the remote grading API.
// One client, one base URL; bearer token on authenticated calls; mutations
// travel as multipart form data, with a `_method` override field where the
// backend expects a tunneled PUT/DELETE. No retries, no caching.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/kodelab/panel/core/session"
)

// APIError is the uniform failure signal for non-2xx responses. Message is
// the server's own text where one could be extracted.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	sess    *session.Session
	http    *http.Client
}

func NewClient(baseURL string, sess *session.Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		sess:    sess,
		// no explicit timeout; the transport's default applies
		http: &http.Client{},
	}
}

func (c *Client) request(ctx context.Context, method, path string, body io.Reader, contentType string, authed bool, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrapf(err, "building %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.sess.Token())
	}

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer res.Body.Close()

	data, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return errors.Wrapf(err, "reading %s %s response", method, path)
	}

	if res.StatusCode == http.StatusUnauthorized {
		// the token is no longer good; treat as an implicit logout
		_ = c.sess.Clear()
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{Status: res.StatusCode, Message: extractMessage(res.Header.Get("Content-Type"), data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrapf(err, "decoding %s %s response", method, path)
		}
	}
	return nil
}

// extractMessage prefers a JSON `message` field, falls back to the full
// JSON text, and to the raw body for non-JSON responses.
func extractMessage(contentType string, body []byte) string {
	if strings.Contains(contentType, "application/json") {
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
			return payload.Message
		}
		return string(body)
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return "unknown error"
}

func (c *Client) get(ctx context.Context, path string, authed bool, out interface{}) error {
	return c.request(ctx, http.MethodGet, path, nil, "", authed, out)
}

// postForm sends a multipart POST; a non-empty override adds the `_method`
// field so the backend treats it as that verb.
func (c *Client) postForm(ctx context.Context, path string, fields map[string]string, override string, authed bool, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, val := range fields {
		if err := w.WriteField(key, val); err != nil {
			return errors.Wrapf(err, "writing form field %s", key)
		}
	}
	if override != "" {
		if err := w.WriteField("_method", override); err != nil {
			return errors.Wrap(err, "writing _method field")
		}
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "closing form writer")
	}
	return c.request(ctx, http.MethodPost, path, &buf, w.FormDataContentType(), authed, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, authed bool, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "encoding %s payload", path)
	}
	return c.request(ctx, http.MethodPost, path, bytes.NewReader(data), "application/json", authed, out)
}
