package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	cerr "github.com/polyaxon/plx/cmd/plx/errors"
	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// APIError is an error response from the api server.
type APIError struct {
	StatusCode int
	Method     string
	Path       string

	// parsed body, if the server responds in gRPC-gateway style.
	Runtime *apierr.RuntimeError

	// parsed body, if the server responds with {"detail": ...} or field errors.
	Message *apierr.ErrorMessage

	// body as is, when it is neither of above.
	Raw string
}

func (e *APIError) Error() string {
	prefix := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	switch {
	case e.Message != nil:
		return prefix + ": " + e.Message.String()
	case e.Runtime != nil:
		return prefix + ": " + e.Runtime.Error()
	case e.Raw != "":
		return prefix + ": " + e.Raw
	}
	return prefix
}

// Is makes errors.Is(err, ErrNotFound) and others work for APIError.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrConflict:
		return e.StatusCode == http.StatusConflict
	}
	return false
}

// detail is a human readable form of the body.
func (e *APIError) detail() string {
	switch {
	case e.Message != nil:
		if b, err := json.MarshalIndent(e.Message, "", "    "); err == nil {
			return string(b)
		}
		return e.Message.String()
	case e.Runtime != nil:
		if b, err := json.MarshalIndent(e.Runtime, "", "    "); err == nil {
			return string(b)
		}
		return e.Runtime.Error()
	}
	return e.Raw
}

// MessageFor is a title of error message for each HTTP status code range.
type MessageFor map[StatusCodeRange]string

func newAPIError(resp *http.Response, body []byte) *APIError {
	e := &APIError{StatusCode: resp.StatusCode}
	if resp.Request != nil {
		e.Method = resp.Request.Method
		e.Path = resp.Request.URL.Path
	}

	if rt, err := jsonUnmarshal[apierr.RuntimeError](body); err == nil && (rt.Code != 0 || rt.Message != "" || rt.Err != "") {
		e.Runtime = rt
		return e
	}
	if em, err := jsonUnmarshal[apierr.ErrorMessage](body); err == nil {
		e.Message = em
		return e
	}
	e.Raw = string(bytes.TrimSpace(body))
	return e
}

func errorResponse(resp *http.Response, messageFor MessageFor) error {
	scr := StatusCodeRangeOf(resp)
	message, ok := messageFor[scr]
	if !ok {
		message = fmt.Sprintf("%s (status code = %d)", scr.String(), resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return cerr.NewCuiError(
			fmt.Sprintf("%s\ncannot read server message: %s", message, err.Error()),
			cerr.WithCause(err),
		)
	}

	apiErr := newAPIError(resp, body)
	if d := apiErr.detail(); d != "" {
		return cerr.NewCuiError(message, cerr.WithCause(apiErr), cerr.WithDetailText(d))
	}
	return cerr.NewCuiError(message, cerr.WithCause(apiErr))
}

func requestError(req *http.Request, err error) error {
	return cerr.NewCuiError(
		fmt.Sprintf("cannot reach the server (%s %s)", req.Method, req.URL.Redacted()),
		cerr.WithCause(err),
	)
}

// unmarshal http response which has json content.
//
// args:
//   - resp: http response to be processed.
//   - v: value which response should be.
//     For 204 No Content or empty body, v is left as is.
//   - messageFor: title of error message for HTTP status code range.
//
// return:
//
//	error if...
//	- can not read response body
//	- response body is not shaped of v
//	- status code is not 2xx. It wraps *APIError.
func unmarshalJsonResponse[T any](resp *http.Response, v *T, messageFor MessageFor) error {
	if StatusCodeRangeOf(resp) != Status2xx {
		return errorResponse(resp, messageFor)
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return cerr.NewCuiError(
			fmt.Sprintf("cannot read response: %s (status code = %d)", err.Error(), resp.StatusCode),
			cerr.WithCause(err),
		)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		message := fmt.Sprintf("unexpected response: %s (status code = %d)", err.Error(), resp.StatusCode)
		return cerr.NewCuiError(message, cerr.WithCause(err))
	}
	return nil
}

func jsonUnmarshal[T any](buf []byte) (*T, error) {
	ret := new(T)
	if err := json.Unmarshal(buf, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func unmarshalResponseDiscardingPayload(resp *http.Response, messageFor MessageFor) error {
	if StatusCodeRangeOf(resp) != Status2xx {
		return errorResponse(resp, messageFor)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}
