package runs

import (
	"bytes"
	"encoding/json"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
)

type EventChartKind string

const (
	ChartPlotly EventChartKind = "plotly"
	ChartBokeh  EventChartKind = "bokeh"
	ChartVega   EventChartKind = "vega"
)

func (k EventChartKind) String() string {
	return string(k)
}

func (k *EventChartKind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch EventChartKind(s) {
	case "", ChartPlotly, ChartBokeh, ChartVega:
		*k = EventChartKind(s)
		return nil
	}
	return apierr.Invalid("unknown chart kind: %s", s)
}

// EventChart is a chart logged by a run. Figure is kept as the library emits it.
type EventChart struct {
	Kind   EventChartKind  `json:"kind,omitempty"`
	Figure json.RawMessage `json:"figure,omitempty"`
}

func (e EventChart) Equal(o EventChart) bool {
	return e.Kind == o.Kind && bytes.Equal(e.Figure, o.Figure)
}
