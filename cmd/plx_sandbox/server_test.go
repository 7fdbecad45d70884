package main

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	httptestutil "github.com/polyaxon/plx/internal/testutils/http"
	"github.com/polyaxon/plx/pkg/api/types/versions"
	"github.com/polyaxon/plx/pkg/configs/sandbox"
	kdb "github.com/polyaxon/plx/pkg/db"
	"github.com/polyaxon/plx/pkg/db/memory"
	"github.com/polyaxon/plx/pkg/utils/try"
)

func TestBuildServer(t *testing.T) {
	conf := try.To(sandbox.Unmarshal(nil)).OrFatal(t)
	testee := BuildServer(conf, memory.New(), "off")

	t.Run("every route is under the api root", func(t *testing.T) {
		for _, r := range testee.Routes() {
			if !strings.HasPrefix(r.Path, API_ROOT) {
				t.Errorf("route out of api root: %s %s", r.Method, r.Path)
			}
		}
	})

	t.Run("it serves installation", func(t *testing.T) {
		resp := httptestutil.Get(testee, API_ROOT+"/installation")
		if resp.Code != http.StatusOK {
			t.Fatalf("status: %d: %s", resp.Code, resp.Body.String())
		}
		got := httptestutil.Decode[versions.Installation](t, resp)
		if got.Dist != "sandbox" {
			t.Errorf("unexpected installation: %+v", got)
		}
	})

	t.Run("missing run is not found", func(t *testing.T) {
		resp := httptestutil.Get(testee, API_ROOT+"/orgs/acme/mnist/runs/missing")
		if resp.Code != http.StatusNotFound {
			t.Errorf("status: %d: %s", resp.Code, resp.Body.String())
		}
	})
}

type closeCounter struct {
	kdb.DocumentInterface
	closed int
}

func (c *closeCounter) Close() error {
	c.closed += 1
	return c.DocumentInterface.Close()
}

func TestServe(t *testing.T) {
	conf := try.To(sandbox.Unmarshal(nil)).OrFatal(t)

	for name, testcase := range map[string]struct {
		addr     string
		canceled bool
		exit     int
	}{
		"when context is done, it stops with 0": {
			addr: "127.0.0.1:0", canceled: true, exit: 0,
		},
		"when the server can not start, it stops with 1": {
			addr: "127.0.0.1:-1", canceled: false, exit: 1,
		},
	} {
		t.Run(name, func(t *testing.T) {
			docs := &closeCounter{DocumentInterface: memory.New()}
			server := BuildServer(conf, docs, "off")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if testcase.canceled {
				cancel()
			}

			if exit := Serve(ctx, server, testcase.addr, docs); exit != testcase.exit {
				t.Errorf("exit code: (actual, expected) = (%d, %d)", exit, testcase.exit)
			}
			if docs.closed != 1 {
				t.Errorf("store is closed %d times", docs.closed)
			}
		})
	}
}
