package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/polyaxon/plx/cmd/plx_sandbox/handlers"
	httptestutil "github.com/polyaxon/plx/internal/testutils/http"
	"github.com/polyaxon/plx/pkg/configs/sandbox"
	kdb "github.com/polyaxon/plx/pkg/db"
	"github.com/polyaxon/plx/pkg/db/memory"
	"github.com/polyaxon/plx/pkg/utils/try"
)

// clock ticks a second for each call.
func clock() func() time.Time {
	t := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

// newServer mounts the sandbox api on a fresh echo with an empty memory store.
func newServer(t *testing.T, config string) (*echo.Echo, kdb.DocumentInterface) {
	t.Helper()
	conf := try.To(sandbox.Unmarshal([]byte(config))).OrFatal(t)
	docs := memory.New(memory.WithClock(clock()))
	e := echo.New()
	handlers.Mount(e.Group("/api/v1"), conf, docs)
	return e, docs
}

// marshal encodes v as a JSON string.
func marshal(t *testing.T, v any) string {
	t.Helper()
	return string(try.To(json.Marshal(v)).OrFatal(t))
}

// expectStatus checks the status code of resp.
func expectStatus(t *testing.T, resp *httptest.ResponseRecorder, code int) {
	t.Helper()
	if resp.Code != code {
		t.Fatalf("status: (actual, expected) = (%d, %d): %s", resp.Code, code, resp.Body.String())
	}
}

// mustCreate posts body to target and decodes the created entity.
func mustCreate[T any](t *testing.T, e *echo.Echo, target string, body any) T {
	t.Helper()
	resp := httptestutil.Post(e, target, marshal(t, body))
	if resp.Code != http.StatusCreated && resp.Code != http.StatusOK {
		t.Fatalf("cannot create %s: %d: %s", target, resp.Code, resp.Body.String())
	}
	return httptestutil.Decode[T](t, resp)
}
