package rest

import (
	"context"
	"time"

	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	"github.com/polyaxon/plx/pkg/api/types/runs"
)

// FollowRunLogs reads logs of a run until the run is done.
//
// Each log line is passed to handler in order.
// When handler returns an error, following stops with the error.
//
// While the run is not done and no new logs arrive, it waits for interval before polling again.
func FollowRunLogs(
	ctx context.Context,
	client PlxClient,
	owner string, project string, uuid string,
	interval time.Duration,
	handler func(runs.LogLine) error,
) error {
	var lastTime *rfctime.RFC3339
	lastFile := ""

	for {
		// status is read before logs, so logs written until done are not missed.
		st, err := client.GetRunStatuses(ctx, owner, project, uuid)
		if err != nil {
			return err
		}
		done := st.Status.IsDone()

		chunk, err := client.GetRunLogs(ctx, owner, project, uuid, lastTime, lastFile)
		if err != nil {
			return err
		}
		for _, l := range chunk.Logs {
			if err := handler(l); err != nil {
				return err
			}
		}
		advanced := false
		if chunk.LastTime != nil {
			lastTime = chunk.LastTime
			advanced = true
		}
		if chunk.LastFile != "" && chunk.LastFile != lastFile {
			lastFile = chunk.LastFile
			advanced = true
		}

		if len(chunk.Logs) != 0 && advanced {
			continue
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
