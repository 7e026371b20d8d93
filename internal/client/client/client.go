package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gownshop/internal/common"
	"github.com/dmitrijs2005/gownshop/internal/logging"
	"github.com/google/uuid"
)

// Client is the REST transport used by the services.
type Client interface {
	Request(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error)
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Patch(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)
	Upload(ctx context.Context, method, path string, form *MultipartForm) (json.RawMessage, error)
}

// Session is the part of session.Store the transport depends on.
type Session interface {
	Token(ctx context.Context) string
	Clear(ctx context.Context)
}

// RequestOptions describes one call. A nil Body sends no body; GET and HEAD
// never send one.
type RequestOptions struct {
	Method  string
	Body    any
	Headers map[string]string
}

type Options struct {
	// BaseURL is prepended to every path, e.g. "https://api.example.com".
	BaseURL    string
	HTTPClient *http.Client
	Session    Session
	Logger     logging.Logger
	// PassThroughHeaders are deployment-specific headers sent on every
	// request, such as ngrok-skip-browser-warning.
	PassThroughHeaders map[string]string
	Locale             Locale
	// LoginPath defaults to common.LoginPath.
	LoginPath string
}

type HTTPClient struct {
	baseURL     string
	http        *http.Client
	session     Session
	logger      logging.Logger
	passThrough map[string]string
	messages    Messages
	loginPath   string
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(opts Options) *HTTPClient {
	c := &HTTPClient{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		http:        opts.HTTPClient,
		session:     opts.Session,
		logger:      opts.Logger,
		passThrough: opts.PassThroughHeaders,
		messages:    MessagesFor(opts.Locale),
		loginPath:   opts.LoginPath,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.logger == nil {
		c.logger = logging.Nop()
	}
	if c.loginPath == "" {
		c.loginPath = common.LoginPath
	}
	c.logger = c.logger.With("component", "api")
	return c
}

// BuildHeaders returns the headers for one request: JSON defaults, then the
// pass-through headers, then extra (which wins on conflict), then the bearer
// token if the session still has a live one. The token is read from the
// session on every call so an expired token is purged and left out of the
// very request that found it.
func (c *HTTPClient) BuildHeaders(ctx context.Context, extra map[string]string) map[string]string {
	headers := map[string]string{
		common.HeaderContentType: common.MIMEApplicationJSON,
		common.HeaderAccept:      common.MIMEApplicationJSON,
	}
	for k, v := range c.passThrough {
		headers[http.CanonicalHeaderKey(k)] = v
	}
	for k, v := range extra {
		headers[http.CanonicalHeaderKey(k)] = v
	}

	if c.session != nil {
		if token := c.session.Token(ctx); token != "" {
			headers[common.HeaderAuthorization] = common.BearerPrefix + token
		}
	}
	return headers
}

// Request performs one API call and returns the decoded JSON body, or nil
// when the response carried none.
func (c *HTTPClient) Request(ctx context.Context, path string, opts RequestOptions) (json.RawMessage, error) {
	if c.baseURL == "" {
		return nil, ErrBaseURLNotSet
	}

	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil && method != http.MethodGet && method != http.MethodHead {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	return c.do(ctx, method, path, body, c.BuildHeaders(ctx, opts.Headers))
}

func (c *HTTPClient) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Request(ctx, path, RequestOptions{Method: http.MethodGet})
}

func (c *HTTPClient) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Request(ctx, path, RequestOptions{Method: http.MethodPost, Body: body})
}

func (c *HTTPClient) Patch(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Request(ctx, path, RequestOptions{Method: http.MethodPatch, Body: body})
}

func (c *HTTPClient) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Request(ctx, path, RequestOptions{Method: http.MethodDelete})
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, headers map[string]string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get(common.HeaderRequestID) == "" {
		req.Header.Set(common.HeaderRequestID, uuid.NewString())
	}
	log := c.logger.With("method", method, "path", path, "request_id", req.Header.Get(common.HeaderRequestID))

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "api request failed", "error", err)
		return nil, err
	}
	defer resp.Body.Close()
	log.Debug(ctx, "api request done", "status", resp.StatusCode, "duration", time.Since(started))

	data, decodeErr := decodeJSON(resp)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if decodeErr != nil {
			return nil, decodeErr
		}
		return data, nil
	}

	return nil, c.translate(ctx, log, path, resp.StatusCode, data)
}

// decodeJSON reads the body when Content-Type announces JSON. Other bodies
// are drained and reported as nil.
func decodeJSON(resp *http.Response) (json.RawMessage, error) {
	ct := strings.ToLower(resp.Header.Get(common.HeaderContentType))
	if !strings.Contains(ct, common.MIMEApplicationJSON) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, nil
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, nil
	}
	if !json.Valid(b) {
		return nil, ErrInvalidResponse
	}
	return json.RawMessage(b), nil
}

func (c *HTTPClient) translate(ctx context.Context, log logging.Logger, path string, status int, data json.RawMessage) error {
	loginCall := c.isLoginPath(path)

	msg := extractMessage(data)
	if msg == "" {
		msg = c.messages.Generic
	}
	if !loginCall && strings.Contains(msg, "Unauthorized") {
		msg = c.messages.LoginRequired
	}
	if strings.Contains(msg, "Bad Request") || strings.Contains(msg, "bad request") {
		msg = c.messages.Generic
	}

	apiErr := &APIError{Message: msg, Status: status}

	if status == http.StatusUnauthorized && !loginCall {
		if c.session != nil {
			c.session.Clear(ctx)
		}
		apiErr.Message = c.messages.SessionExpired
		apiErr.sessionExpired = true
		log.Info(ctx, "session rejected by server, cleared")
	}

	return apiErr
}

func (c *HTTPClient) isLoginPath(path string) bool {
	p, _, _ := strings.Cut(path, "?")
	return p == c.loginPath || strings.HasPrefix(p, c.loginPath+"/")
}

// extractMessage picks "message" (a string or a list of strings), then
// "error", from an error body.
func extractMessage(data json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}

	var body struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}

	if msg := stringOrList(body.Message); msg != "" {
		return msg
	}
	return stringOrList(body.Error)
}

func stringOrList(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", ")
	}
	return ""
}
