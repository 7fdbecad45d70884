// Package statuses defines lifecycle statuses of runs and agents.
package statuses

import (
	"encoding/json"
	"fmt"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
)

type Statuses string

const (
	Created        Statuses = "created"
	Resuming       Statuses = "resuming"
	OnSchedule     Statuses = "on_schedule"
	Compiled       Statuses = "compiled"
	Queued         Statuses = "queued"
	Scheduled      Statuses = "scheduled"
	Starting       Statuses = "starting"
	Running        Statuses = "running"
	Processing     Statuses = "processing"
	Stopping       Statuses = "stopping"
	Failed         Statuses = "failed"
	Stopped        Statuses = "stopped"
	Succeeded      Statuses = "succeeded"
	Skipped        Statuses = "skipped"
	Warning        Statuses = "warning"
	Unschedulable  Statuses = "unschedulable"
	UpstreamFailed Statuses = "upstream_failed"
	Retrying       Statuses = "retrying"
	Unknown        Statuses = "unknown"
	Done           Statuses = "done"
)

var all = []Statuses{
	Created, Resuming, OnSchedule, Compiled, Queued, Scheduled,
	Starting, Running, Processing, Stopping,
	Failed, Stopped, Succeeded, Skipped, Warning, Unschedulable,
	UpstreamFailed, Retrying, Unknown, Done,
}

// All returns every known status.
func All() []Statuses {
	return append([]Statuses(nil), all...)
}

func (s Statuses) String() string {
	return string(s)
}

func Parse(s string) (Statuses, error) {
	for _, st := range all {
		if string(st) == s {
			return st, nil
		}
	}
	return "", apierr.Invalid("unknown status: %s", s)
}

func (s *Statuses) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	if str == "" {
		*s = ""
		return nil
	}
	st, err := Parse(str)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// IsDone reports the status is final.
func (s Statuses) IsDone() bool {
	switch s {
	case Succeeded, Failed, UpstreamFailed, Stopped, Skipped, Done:
		return true
	}
	return false
}

func (s Statuses) IsRunning() bool {
	switch s {
	case Starting, Running, Processing:
		return true
	}
	return false
}

func (s Statuses) IsPending() bool {
	switch s {
	case Created, OnSchedule, Compiled, Queued, Scheduled, Resuming, Retrying:
		return true
	}
	return false
}

// IsSafeStoppable reports a run in the status can be stopped
// without waiting for its workload to be torn down.
func (s Statuses) IsSafeStoppable() bool {
	switch s {
	case Created, OnSchedule, Compiled, Resuming, Unschedulable:
		return true
	}
	return false
}

// CanTransition reports s can move to next.
//
// Nothing moves back to created.
// A stopping run only moves to a final status.
// A final status only moves to resuming or retrying.
func (s Statuses) CanTransition(next Statuses) bool {
	if next == Created {
		return false
	}
	if s == Stopping && !next.IsDone() {
		return false
	}
	if s.IsDone() {
		return next == Resuming || next == Retrying
	}
	return true
}

// StatusCondition is an entry of status history.
type StatusCondition struct {
	Type               Statuses         `json:"type,omitempty"`
	Status             string           `json:"status,omitempty"`
	Reason             string           `json:"reason,omitempty"`
	Message            string           `json:"message,omitempty"`
	LastUpdateTime     *rfctime.RFC3339 `json:"last_update_time,omitempty"`
	LastTransitionTime *rfctime.RFC3339 `json:"last_transition_time,omitempty"`
}

// NewCondition builds a true condition of typ at now.
func NewCondition(typ Statuses, reason string, message string) StatusCondition {
	now := rfctime.Now()
	return StatusCondition{
		Type:               typ,
		Status:             "True",
		Reason:             reason,
		Message:            message,
		LastUpdateTime:     &now,
		LastTransitionTime: &now,
	}
}

func (c StatusCondition) Equal(o StatusCondition) bool {
	return c.Type == o.Type &&
		c.Status == o.Status &&
		c.Reason == o.Reason &&
		c.Message == o.Message &&
		cmp.PtrEqual(c.LastUpdateTime, o.LastUpdateTime) &&
		cmp.PtrEqual(c.LastTransitionTime, o.LastTransitionTime)
}

// Same reports c and o describe the same state, ignoring timestamps.
func (c StatusCondition) Same(o StatusCondition) bool {
	return c.Type == o.Type &&
		c.Status == o.Status &&
		c.Reason == o.Reason &&
		c.Message == o.Message
}

func (c StatusCondition) String() string {
	return fmt.Sprintf("%s (%s): %s", c.Type, c.Reason, c.Message)
}

// Status is status of an entity with its history.
type Status struct {
	UUID             string            `json:"uuid,omitempty"`
	Status           Statuses          `json:"status,omitempty"`
	StatusConditions []StatusCondition `json:"status_conditions,omitempty"`
}

func (s Status) Equal(o Status) bool {
	return s.UUID == o.UUID &&
		s.Status == o.Status &&
		cmp.SliceEqual(s.StatusConditions, o.StatusConditions)
}

// Apply appends cond to the history and updates current status.
//
// When cond is the same as the last condition, the last one is replaced.
// When the transition is not allowed, it returns an error wrapping apierr.ErrInvalid
// unless force is true.
func (s *Status) Apply(cond StatusCondition, force bool) error {
	if cond.Type == "" {
		return apierr.Invalid("condition type is empty")
	}
	if s.Status != "" && !force && !s.Status.CanTransition(cond.Type) {
		return apierr.Invalid("status cannot change from %s to %s", s.Status, cond.Type)
	}

	if n := len(s.StatusConditions); 0 < n && s.StatusConditions[n-1].Same(cond) {
		s.StatusConditions[n-1] = cond
	} else {
		s.StatusConditions = append(s.StatusConditions, cond)
	}
	s.Status = cond.Type
	return nil
}

// EntityStatusBodyRequest is a request body to post a new status condition.
type EntityStatusBodyRequest struct {
	Owner     string           `json:"owner,omitempty"`
	Project   string           `json:"project,omitempty"`
	UUID      string           `json:"uuid,omitempty"`
	Condition *StatusCondition `json:"condition,omitempty"`
	Force     bool             `json:"force,omitempty"`
}

func (e EntityStatusBodyRequest) Equal(o EntityStatusBodyRequest) bool {
	return e.Owner == o.Owner &&
		e.Project == o.Project &&
		e.UUID == o.UUID &&
		cmp.PtrEqual(e.Condition, o.Condition) &&
		e.Force == o.Force
}
