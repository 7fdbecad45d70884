package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/polyaxon/plx/pkg/buildtime"
	"github.com/polyaxon/plx/pkg/utils/retry"
)

// status codes which GET requests are retried for.
var retriable = map[int]struct{}{
	http.StatusTooManyRequests:    {},
	http.StatusBadGateway:         {},
	http.StatusServiceUnavailable: {},
	http.StatusGatewayTimeout:     {},
}

func (c *client) newRequest(ctx context.Context, method string, u string, query url.Values, body any) (*http.Request, error) {
	if len(query) != 0 {
		u = u + "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", buildtime.UserAgent())
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}
	return req, nil
}

func (c *client) send(req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	return c.httpclient.Do(req)
}

// do sends req.
//
// GET requests are retried up to maxRetry times
// for transport errors and for status codes in retriable.
func (c *client) do(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet || c.maxRetry <= 0 {
		return c.send(req)
	}

	ctx := req.Context()
	return retry.Do(ctx, c.backoff(), c.maxRetry+1, func(final bool) (*http.Response, error) {
		resp, err := c.send(req.Clone(ctx))
		if final {
			return resp, err
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %w", retry.ErrRetry, err)
		}
		if _, ok := retriable[resp.StatusCode]; ok {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil, fmt.Errorf("%w: status code = %d", retry.ErrRetry, resp.StatusCode)
		}
		return resp, nil
	})
}

// getJson sends GET request and reads its response as T.
func getJson[T any](
	ctx context.Context, c *client, query url.Values, messageFor MessageFor, path ...string,
) (T, error) {
	return sendJson[T](ctx, c, http.MethodGet, query, nil, messageFor, path...)
}

// sendJson sends a request with json body and reads its response as T.
func sendJson[T any](
	ctx context.Context, c *client, method string, query url.Values, body any, messageFor MessageFor, path ...string,
) (T, error) {
	var ret T
	req, err := c.newRequest(ctx, method, c.apipath(path...), query, body)
	if err != nil {
		return ret, err
	}
	resp, err := c.do(req)
	if err != nil {
		return ret, requestError(req, err)
	}
	defer resp.Body.Close()

	if err := unmarshalJsonResponse(resp, &ret, messageFor); err != nil {
		return *new(T), err
	}
	return ret, nil
}

// sendDiscarding sends a request and ignores payload of its response.
func sendDiscarding(
	ctx context.Context, c *client, method string, body any, messageFor MessageFor, path ...string,
) error {
	req, err := c.newRequest(ctx, method, c.apipath(path...), nil, body)
	if err != nil {
		return err
	}
	resp, err := c.do(req)
	if err != nil {
		return requestError(req, err)
	}
	defer resp.Body.Close()
	return unmarshalResponseDiscardingPayload(resp, messageFor)
}
