package runs

import (
	"fmt"

	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
)

type LogLine struct {
	Timestamp *rfctime.RFC3339 `json:"timestamp,omitempty"`
	Node      string           `json:"node,omitempty"`
	Pod       string           `json:"pod,omitempty"`
	Container string           `json:"container,omitempty"`
	Value     string           `json:"value,omitempty"`
}

func (l LogLine) Equal(o LogLine) bool {
	return cmp.PtrEqual(l.Timestamp, o.Timestamp) &&
		l.Node == o.Node &&
		l.Pod == o.Pod &&
		l.Container == o.Container &&
		l.Value == o.Value
}

func (l LogLine) String() string {
	ts := ""
	if l.Timestamp != nil {
		ts = l.Timestamp.String()
	}
	if l.Pod == "" {
		return fmt.Sprintf("%s | %s", ts, l.Value)
	}
	return fmt.Sprintf("%s | %s | %s", ts, l.Pod, l.Value)
}

// Logs is a chunk of logs of a run.
//
// To read next chunk, pass LastTime and LastFile to the next request.
type Logs struct {
	Logs     []LogLine        `json:"logs,omitempty"`
	LastTime *rfctime.RFC3339 `json:"last_time,omitempty"`
	LastFile string           `json:"last_file,omitempty"`
	Files    []string         `json:"files,omitempty"`
}

func (l Logs) Equal(o Logs) bool {
	return cmp.SliceEqual(l.Logs, o.Logs) &&
		cmp.PtrEqual(l.LastTime, o.LastTime) &&
		l.LastFile == o.LastFile &&
		cmp.StringsEqualUnordered(l.Files, o.Files)
}
