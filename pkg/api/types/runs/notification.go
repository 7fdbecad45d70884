package runs

import (
	"slices"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/statuses"
)

type Notification struct {
	Connections []string          `json:"connections,omitempty"`
	Trigger     statuses.Statuses `json:"trigger,omitempty"`
}

func (n Notification) Equal(o Notification) bool {
	return slices.Equal(n.Connections, o.Connections) && n.Trigger == o.Trigger
}

// Validate checks the notification has connections and a trigger it can fire on.
func (n Notification) Validate() error {
	if len(n.Connections) == 0 {
		return apierr.Invalid("notification requires connections")
	}
	switch n.Trigger {
	case statuses.Succeeded, statuses.Failed, statuses.Stopped, statuses.Done:
		return nil
	}
	return apierr.Invalid("notification cannot be triggered by %q", n.Trigger)
}

// Fires reports the notification should be sent when the run gets s.
//
// "done" trigger fires on any of done statuses.
func (n Notification) Fires(s statuses.Statuses) bool {
	if n.Trigger == statuses.Done {
		return s.IsDone()
	}
	return n.Trigger == s
}
