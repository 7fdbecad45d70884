package handlers

import (
	"errors"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	binderr "github.com/polyaxon/plx/pkg/api-types-binding/errors"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	"github.com/polyaxon/plx/pkg/api/types/runs"
	kdb "github.com/polyaxon/plx/pkg/db"
)

// DefaultLogFile is the file name of log lines appended without file.
const DefaultLogFile = "main"

// logFile is a file of log lines of a run.
type logFile struct {
	Name  string         `json:"name"`
	Lines []runs.LogLine `json:"lines"`
}

func logEntities(docs kdb.DocumentInterface) entities[logFile] {
	return entities[logFile]{
		docs:  docs,
		kind:  kdb.Log,
		name:  func(f logFile) string { return f.Name },
		stamp: func(f logFile, _ kdb.Document) logFile { return f },
	}
}

// AppendLogsRequest is a request body to append log lines to a run.
type AppendLogsRequest struct {
	// empty means DefaultLogFile.
	File string         `json:"file,omitempty"`
	Logs []runs.LogLine `json:"logs"`
}

// GetRunLogsHandler responds log lines of a run, a page at a time.
//
// Files are read in order of their names. A page is the rest of a file after
// the position given by the last_file and last_time query.
// When the file has no more lines, the next file is read from its beginning.
//
// Positions are timestamps, not offsets. So lines appended later with a timestamp
// at or before the last_time already responded are not served by following pages.
func GetRunLogsHandler(docs kdb.DocumentInterface, ownerParam string, projectParam string, uuidParam string) echo.HandlerFunc {
	rs := runEntities(docs)
	ls := logEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		found, err := getRun(c, rs, c.Param(ownerParam), c.Param(projectParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}

		var lastTime *rfctime.RFC3339
		if s := c.QueryParam("last_time"); s != "" {
			t, err := rfctime.ParseRFC3339DateTime(s)
			if err != nil {
				return binderr.BadRequest("last_time should be rfc3339: "+s, err)
			}
			lastTime = &t
		}
		lastFile := c.QueryParam("last_file")

		files, _, err := ls.List(ctx, kdb.Query{Owner: found.Doc.Owner, Parent: found.Doc.UUID, Sort: "name"})
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, readLogs(files, lastTime, lastFile))
	}
}

func readLogs(files []logFile, lastTime *rfctime.RFC3339, lastFile string) runs.Logs {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	resp := runs.Logs{Files: names, LastTime: lastTime, LastFile: lastFile}

	start := 0
	seek := lastTime != nil
	if lastFile != "" {
		if i := slices.Index(names, lastFile); 0 <= i {
			start = i
		} else {
			seek = false
		}
	}

	for i := start; i < len(files); i++ {
		lines := files[i].Lines
		if i == start && seek {
			lines = slices.DeleteFunc(slices.Clone(lines), func(l runs.LogLine) bool {
				return l.Timestamp == nil || !l.Timestamp.Time().After(lastTime.Time())
			})
		}
		if len(lines) == 0 {
			continue
		}
		resp.Logs = lines
		resp.LastFile = files[i].Name
		if ts := lines[len(lines)-1].Timestamp; ts != nil {
			resp.LastTime = ts
		}
		break
	}
	return resp
}

// AppendRunLogsHandler appends log lines to a file of a run.
//
// Lines without timestamp are stamped with the current time.
// Lines in a file are kept in order of their timestamps.
func AppendRunLogsHandler(docs kdb.DocumentInterface, ownerParam string, projectParam string, uuidParam string) echo.HandlerFunc {
	rs := runEntities(docs)
	ls := logEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		found, err := getRun(c, rs, c.Param(ownerParam), c.Param(projectParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		body := new(AppendLogsRequest)
		if err := bindJSON(c, body); err != nil {
			return err
		}
		if body.File == "" {
			body.File = DefaultLogFile
		}

		now := rfctime.Now()
		lines := slices.Clone(body.Logs)
		for i := range lines {
			if lines[i].Timestamp == nil {
				lines[i].Timestamp = rfctime.Ref(now)
			}
		}

		owner, run := found.Doc.Owner, found.Doc.UUID
		file, err := ls.GetByName(ctx, owner, run, body.File)
		switch {
		case errors.Is(err, kdb.ErrMissing):
			f := logFile{Name: body.File, Lines: sortLines(lines)}
			if _, err := ls.Create(ctx, owner, run, f); err != nil {
				return storeError(err)
			}
		case err != nil:
			return storeError(err)
		default:
			f := file.Value
			f.Lines = sortLines(append(f.Lines, lines...))
			if _, err := ls.Update(ctx, file.Doc, f); err != nil {
				return storeError(err)
			}
		}
		return c.JSON(http.StatusOK, struct{}{})
	}
}

func sortLines(lines []runs.LogLine) []runs.LogLine {
	slices.SortStableFunc(lines, func(a, b runs.LogLine) int {
		return a.Timestamp.Time().Compare(b.Timestamp.Time())
	})
	return lines
}
