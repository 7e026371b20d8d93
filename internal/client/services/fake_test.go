package services

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/gownshop/internal/client/client"
)

// call is one request seen by fakeClient.
type call struct {
	Method string
	Path   string
	Body   any
	Form   *client.MultipartForm
}

// fakeClient implements client.Client for unit tests. Responses are keyed by
// "METHOD path".
type fakeClient struct {
	responses map[string]json.RawMessage
	errs      map[string]error
	calls     []call
}

func newFakeClient() *fakeClient {
	return &fakeClient{responses: map[string]json.RawMessage{}, errs: map[string]error{}}
}

func (f *fakeClient) on(method, path, body string) *fakeClient {
	f.responses[method+" "+path] = json.RawMessage(body)
	return f
}

func (f *fakeClient) fail(method, path string, err error) *fakeClient {
	f.errs[method+" "+path] = err
	return f
}

func (f *fakeClient) last() call {
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeClient) Request(_ context.Context, path string, opts client.RequestOptions) (json.RawMessage, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	f.calls = append(f.calls, call{Method: method, Path: path, Body: opts.Body})
	key := method + " " + path
	if err := f.errs[key]; err != nil {
		return nil, err
	}
	return f.responses[key], nil
}

func (f *fakeClient) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return f.Request(ctx, path, client.RequestOptions{Method: http.MethodGet})
}

func (f *fakeClient) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return f.Request(ctx, path, client.RequestOptions{Method: http.MethodPost, Body: body})
}

func (f *fakeClient) Patch(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return f.Request(ctx, path, client.RequestOptions{Method: http.MethodPatch, Body: body})
}

func (f *fakeClient) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return f.Request(ctx, path, client.RequestOptions{Method: http.MethodDelete})
}

func (f *fakeClient) Upload(_ context.Context, method, path string, form *client.MultipartForm) (json.RawMessage, error) {
	f.calls = append(f.calls, call{Method: method, Path: path, Form: form})
	key := method + " " + path
	if err := f.errs[key]; err != nil {
		return nil, err
	}
	return f.responses[key], nil
}
