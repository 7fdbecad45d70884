package agents

import (
	"maps"
	"slices"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	"github.com/polyaxon/plx/pkg/api/types/names"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/polyaxon/plx/pkg/api/types/statuses"
	"k8s.io/apimachinery/pkg/util/validation"
)

type Agent struct {
	UUID             string                     `json:"uuid,omitempty"`
	Name             string                     `json:"name,omitempty"`
	Description      string                     `json:"description,omitempty"`
	Tags             []string                   `json:"tags,omitempty"`
	Live             *bool                      `json:"live,omitempty"`
	Namespace        string                     `json:"namespace,omitempty"`
	VersionApi       map[string]string          `json:"version_api,omitempty"`
	Version          string                     `json:"version,omitempty"`
	Content          string                     `json:"content,omitempty"`
	Status           statuses.Statuses          `json:"status,omitempty"`
	StatusConditions []statuses.StatusCondition `json:"status_conditions,omitempty"`
	IsReplica        *bool                      `json:"is_replica,omitempty"`
	IsUIManaged      *bool                      `json:"is_ui_managed,omitempty"`
	CreatedAt        *rfctime.RFC3339           `json:"created_at,omitempty"`
	UpdatedAt        *rfctime.RFC3339           `json:"updated_at,omitempty"`
}

func (a Agent) Equal(o Agent) bool {
	return a.UUID == o.UUID &&
		a.Name == o.Name &&
		a.Description == o.Description &&
		slices.Equal(a.Tags, o.Tags) &&
		cmp.PtrEq(a.Live, o.Live) &&
		a.Namespace == o.Namespace &&
		maps.Equal(a.VersionApi, o.VersionApi) &&
		a.Version == o.Version &&
		a.Content == o.Content &&
		a.Status == o.Status &&
		cmp.SliceEqual(a.StatusConditions, o.StatusConditions) &&
		cmp.PtrEq(a.IsReplica, o.IsReplica) &&
		cmp.PtrEq(a.IsUIManaged, o.IsUIManaged) &&
		cmp.PtrEqual(a.CreatedAt, o.CreatedAt) &&
		cmp.PtrEqual(a.UpdatedAt, o.UpdatedAt)
}

// Validate checks an agent to be created.
func (a Agent) Validate() error {
	if err := names.Validate(a.Name); err != nil {
		return err
	}
	if a.Namespace != "" {
		if errs := validation.IsDNS1123Label(a.Namespace); len(errs) != 0 {
			return apierr.Invalid("namespace %q: %v", a.Namespace, errs)
		}
	}
	return nil
}

// StatusBodyRequest is a request body to post a status condition of an agent.
type StatusBodyRequest struct {
	Condition *statuses.StatusCondition `json:"condition,omitempty"`
}

func (s StatusBodyRequest) Equal(o StatusBodyRequest) bool {
	return cmp.PtrEqual(s.Condition, o.Condition)
}

// State is a snapshot of runs an agent is handling, keyed by phase.
type State struct {
	Schedules []string `json:"schedules,omitempty"`
	Hooks     []string `json:"hooks,omitempty"`
	Watchdogs []string `json:"watchdogs,omitempty"`
	Tuners    []string `json:"tuners,omitempty"`
	Queued    []string `json:"queued,omitempty"`
	Stopping  []string `json:"stopping,omitempty"`
	Deleting  []string `json:"deleting,omitempty"`
	Apis      []string `json:"apis,omitempty"`
	Checks    []string `json:"checks,omitempty"`
	Full      bool     `json:"full,omitempty"`
}

func (s State) Equal(o State) bool {
	return cmp.StringsEqualUnordered(s.Schedules, o.Schedules) &&
		cmp.StringsEqualUnordered(s.Hooks, o.Hooks) &&
		cmp.StringsEqualUnordered(s.Watchdogs, o.Watchdogs) &&
		cmp.StringsEqualUnordered(s.Tuners, o.Tuners) &&
		cmp.StringsEqualUnordered(s.Queued, o.Queued) &&
		cmp.StringsEqualUnordered(s.Stopping, o.Stopping) &&
		cmp.StringsEqualUnordered(s.Deleting, o.Deleting) &&
		cmp.StringsEqualUnordered(s.Apis, o.Apis) &&
		cmp.StringsEqualUnordered(s.Checks, o.Checks) &&
		s.Full == o.Full
}

// Pending counts runs waiting for the agent.
func (s State) Pending() int {
	return len(s.Queued) + len(s.Schedules) + len(s.Stopping) + len(s.Deleting)
}

type StateResponse struct {
	Status            statuses.Statuses `json:"status,omitempty"`
	State             *State            `json:"state,omitempty"`
	LiveState         int32             `json:"live_state,omitempty"`
	CompatibleUpdates map[string]string `json:"compatible_updates,omitempty"`
}

func (s StateResponse) Equal(o StateResponse) bool {
	return s.Status == o.Status &&
		cmp.PtrEqual(s.State, o.State) &&
		s.LiveState == o.LiveState &&
		maps.Equal(s.CompatibleUpdates, o.CompatibleUpdates)
}

type ListAgentsResponse = pagination.List[Agent]
