package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type RequestOption func(req *http.Request) *http.Request

func WithContext(ctx context.Context) RequestOption {
	return func(req *http.Request) *http.Request {
		return req.WithContext(ctx)
	}
}

func WithHeader(key string, value string, values ...string) RequestOption {
	return func(req *http.Request) *http.Request {
		req.Header.Add(key, value)
		for _, v := range values {
			req.Header.Add(key, v)
		}
		return req
	}
}

// = WithHeader("Content-Type", ctyp)
func ContentType(ctyp string) RequestOption {
	return WithHeader("Content-Type", ctyp)
}

// = ContentType("application/json")
func JSON() RequestOption {
	return ContentType("application/json")
}

// = WithHeader("Authorization", "token "+token)
func WithToken(token string) RequestOption {
	return WithHeader("Authorization", "token "+token)
}

// Serve sends a request to e and records its response.
//
// body may be nil.
func Serve(e *echo.Echo, method string, target string, body io.Reader, reqopts ...RequestOption) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for _, opt := range reqopts {
		req = opt(req)
	}
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)
	return resp
}

func Get(e *echo.Echo, target string, reqopts ...RequestOption) *httptest.ResponseRecorder {
	return Serve(e, http.MethodGet, target, nil, reqopts...)
}

// Post sends body as JSON.
func Post(e *echo.Echo, target string, body string, reqopts ...RequestOption) *httptest.ResponseRecorder {
	return Serve(e, http.MethodPost, target, strings.NewReader(body), append([]RequestOption{JSON()}, reqopts...)...)
}

// Patch sends body as JSON.
func Patch(e *echo.Echo, target string, body string, reqopts ...RequestOption) *httptest.ResponseRecorder {
	return Serve(e, http.MethodPatch, target, strings.NewReader(body), append([]RequestOption{JSON()}, reqopts...)...)
}

// Put sends body as JSON.
func Put(e *echo.Echo, target string, body string, reqopts ...RequestOption) *httptest.ResponseRecorder {
	return Serve(e, http.MethodPut, target, strings.NewReader(body), append([]RequestOption{JSON()}, reqopts...)...)
}

func Delete(e *echo.Echo, target string, reqopts ...RequestOption) *httptest.ResponseRecorder {
	return Serve(e, http.MethodDelete, target, nil, reqopts...)
}

// Decode reads JSON in the response body as T. On failure, it calls t.Fatal.
func Decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var ret T
	if err := json.Unmarshal(resp.Body.Bytes(), &ret); err != nil {
		t.Fatalf("cannot decode response (status = %d): %s: %v", resp.Code, resp.Body.String(), err)
	}
	return ret
}
