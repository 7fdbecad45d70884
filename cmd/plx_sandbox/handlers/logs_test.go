package handlers_test

import (
	"net/http"
	"net/url"
	"slices"
	"testing"
	"time"

	"github.com/polyaxon/plx/cmd/plx_sandbox/handlers"
	httptestutil "github.com/polyaxon/plx/internal/testutils/http"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	"github.com/polyaxon/plx/pkg/api/types/runs"
)

func at(sec int) *rfctime.RFC3339 {
	return rfctime.Ref(rfctime.RFC3339(time.Date(2024, 5, 1, 12, 0, sec, 0, time.UTC)))
}

func values(lines []runs.LogLine) []string {
	ret := []string{}
	for _, l := range lines {
		ret = append(ret, l.Value)
	}
	return ret
}

func TestRunLogs(t *testing.T) {
	e, run := withRun(t, runs.Run{Name: "train"})
	logsPath := runsRoot + "/" + run.UUID + "/logs"

	for _, req := range []handlers.AppendLogsRequest{
		{
			// lines out of order are sorted by timestamp.
			Logs: []runs.LogLine{
				{Timestamp: at(2), Value: "epoch 2"},
				{Timestamp: at(1), Value: "epoch 1"},
			},
		},
		{
			File: "worker",
			Logs: []runs.LogLine{{Timestamp: at(3), Value: "worker up"}},
		},
		{
			Logs: []runs.LogLine{{Timestamp: at(4), Value: "epoch 3"}},
		},
	} {
		resp := httptestutil.Post(e, logsPath, marshal(t, req))
		expectStatus(t, resp, http.StatusOK)
	}

	type when struct {
		lastFile string
		lastTime *rfctime.RFC3339
	}
	type then struct {
		values   []string
		lastFile string
		lastTime *rfctime.RFC3339
	}
	for name, testcase := range map[string]struct {
		when when
		then then
	}{
		"first page is the first file": {
			when: when{},
			then: then{
				values:   []string{"epoch 1", "epoch 2", "epoch 3"},
				lastFile: handlers.DefaultLogFile,
				lastTime: at(4),
			},
		},
		"rest of the file after last_time": {
			when: when{lastFile: handlers.DefaultLogFile, lastTime: at(1)},
			then: then{
				values:   []string{"epoch 2", "epoch 3"},
				lastFile: handlers.DefaultLogFile,
				lastTime: at(4),
			},
		},
		"next file when the file has been read": {
			when: when{lastFile: handlers.DefaultLogFile, lastTime: at(4)},
			then: then{
				values:   []string{"worker up"},
				lastFile: "worker",
				lastTime: at(3),
			},
		},
		"nothing after the last file": {
			when: when{lastFile: "worker", lastTime: at(3)},
			then: then{
				values:   []string{},
				lastFile: "worker",
				lastTime: at(3),
			},
		},
		"unknown file restarts from the first file": {
			when: when{lastFile: "gone", lastTime: at(9)},
			then: then{
				values:   []string{"epoch 1", "epoch 2", "epoch 3"},
				lastFile: handlers.DefaultLogFile,
				lastTime: at(4),
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			q := url.Values{}
			if testcase.when.lastFile != "" {
				q.Set("last_file", testcase.when.lastFile)
			}
			if testcase.when.lastTime != nil {
				q.Set("last_time", testcase.when.lastTime.String())
			}
			resp := httptestutil.Get(e, logsPath+"?"+q.Encode())
			expectStatus(t, resp, http.StatusOK)
			got := httptestutil.Decode[runs.Logs](t, resp)

			if actual := values(got.Logs); !slices.Equal(actual, testcase.then.values) {
				t.Errorf("logs: (actual, expected) = (%v, %v)", actual, testcase.then.values)
			}
			if got.LastFile != testcase.then.lastFile {
				t.Errorf("last_file: (actual, expected) = (%s, %s)", got.LastFile, testcase.then.lastFile)
			}
			if got.LastTime == nil || !got.LastTime.Equal(*testcase.then.lastTime) {
				t.Errorf("last_time: (actual, expected) = (%v, %v)", got.LastTime, testcase.then.lastTime)
			}
			if !slices.Equal(got.Files, []string{handlers.DefaultLogFile, "worker"}) {
				t.Errorf("files: %v", got.Files)
			}
		})
	}

	t.Run("broken last_time is bad request", func(t *testing.T) {
		resp := httptestutil.Get(e, logsPath+"?last_time=yesterday")
		expectStatus(t, resp, http.StatusBadRequest)
	})

	t.Run("run without logs has no files", func(t *testing.T) {
		other := mustCreate[runs.Run](t, e, runsRoot, runs.Run{Name: "quiet"})
		resp := httptestutil.Get(e, runsRoot+"/"+other.UUID+"/logs")
		expectStatus(t, resp, http.StatusOK)
		got := httptestutil.Decode[runs.Logs](t, resp)
		if len(got.Logs) != 0 || len(got.Files) != 0 {
			t.Errorf("unexpected logs: %+v", got)
		}
	})

	t.Run("lines without timestamp are stamped", func(t *testing.T) {
		other := mustCreate[runs.Run](t, e, runsRoot, runs.Run{Name: "stamped"})
		path := runsRoot + "/" + other.UUID + "/logs"
		resp := httptestutil.Post(e, path, `{"logs": [{"value": "hello"}]}`)
		expectStatus(t, resp, http.StatusOK)

		got := httptestutil.Decode[runs.Logs](t, httptestutil.Get(e, path))
		if len(got.Logs) != 1 || got.Logs[0].Timestamp == nil {
			t.Errorf("unexpected logs: %+v", got)
		}
	})

	t.Run("lines appended at or before last_time are not served by following pages", func(t *testing.T) {
		other := mustCreate[runs.Run](t, e, runsRoot, runs.Run{Name: "late"})
		path := runsRoot + "/" + other.UUID + "/logs"
		first := handlers.AppendLogsRequest{Logs: []runs.LogLine{{Timestamp: at(5), Value: "first"}}}
		expectStatus(t, httptestutil.Post(e, path, marshal(t, first)), http.StatusOK)

		page := httptestutil.Decode[runs.Logs](t, httptestutil.Get(e, path))
		if !slices.Equal(values(page.Logs), []string{"first"}) {
			t.Fatalf("unexpected first page: %+v", page)
		}

		late := handlers.AppendLogsRequest{Logs: []runs.LogLine{
			{Timestamp: at(4), Value: "earlier"},
			{Timestamp: at(5), Value: "same time"},
			{Timestamp: at(6), Value: "later"},
		}}
		expectStatus(t, httptestutil.Post(e, path, marshal(t, late)), http.StatusOK)

		q := url.Values{}
		q.Set("last_file", page.LastFile)
		q.Set("last_time", page.LastTime.String())
		next := httptestutil.Decode[runs.Logs](t, httptestutil.Get(e, path+"?"+q.Encode()))
		if actual := values(next.Logs); !slices.Equal(actual, []string{"later"}) {
			t.Errorf("logs: (actual, expected) = (%v, %v)", actual, []string{"later"})
		}
	})

	t.Run("logs of deleted run are gone with it", func(t *testing.T) {
		expectStatus(t, httptestutil.Delete(e, runsRoot+"/"+run.UUID), http.StatusNoContent)
		expectStatus(t, httptestutil.Get(e, logsPath), http.StatusNotFound)
	})
}
