package runs

import (
	"encoding/json"
	"slices"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"github.com/polyaxon/plx/pkg/api/types/statuses"
	"k8s.io/apimachinery/pkg/api/equality"
)

type Run struct {
	UUID             string                     `json:"uuid,omitempty"`
	Name             string                     `json:"name,omitempty"`
	Description      string                     `json:"description,omitempty"`
	Tags             []string                   `json:"tags,omitempty"`
	User             string                     `json:"user,omitempty"`
	Owner            string                     `json:"owner,omitempty"`
	Project          string                     `json:"project,omitempty"`
	Kind             RunKind                    `json:"kind,omitempty"`
	Runtime          string                     `json:"runtime,omitempty"`
	Status           statuses.Statuses          `json:"status,omitempty"`
	StatusConditions []statuses.StatusCondition `json:"status_conditions,omitempty"`
	IsManaged        *bool                      `json:"is_managed,omitempty"`
	IsApproved       *bool                      `json:"is_approved,omitempty"`
	Pending          string                     `json:"pending,omitempty"`
	Deleted          *bool                      `json:"deleted,omitempty"`
	Content          string                     `json:"content,omitempty"`
	RawContent       string                     `json:"raw_content,omitempty"`
	Inputs           map[string]any             `json:"inputs,omitempty"`
	Outputs          map[string]any             `json:"outputs,omitempty"`
	MetaInfo         map[string]any             `json:"meta_info,omitempty"`
	Notifications    []Notification             `json:"notifications,omitempty"`
	WaitTime         *int32                     `json:"wait_time,omitempty"`
	Duration         *int32                     `json:"duration,omitempty"`
	CreatedAt        *rfctime.RFC3339           `json:"created_at,omitempty"`
	UpdatedAt        *rfctime.RFC3339           `json:"updated_at,omitempty"`
	StartedAt        *rfctime.RFC3339           `json:"started_at,omitempty"`
	FinishedAt       *rfctime.RFC3339           `json:"finished_at,omitempty"`
}

func (r Run) Equal(o Run) bool {
	return r.UUID == o.UUID &&
		r.Name == o.Name &&
		r.Description == o.Description &&
		cmp.StringsEqualUnordered(r.Tags, o.Tags) &&
		r.User == o.User &&
		r.Owner == o.Owner &&
		r.Project == o.Project &&
		r.Kind == o.Kind &&
		r.Runtime == o.Runtime &&
		r.Status == o.Status &&
		cmp.SliceEqual(r.StatusConditions, o.StatusConditions) &&
		cmp.PtrEq(r.IsManaged, o.IsManaged) &&
		cmp.PtrEq(r.IsApproved, o.IsApproved) &&
		r.Pending == o.Pending &&
		cmp.PtrEq(r.Deleted, o.Deleted) &&
		r.Content == o.Content &&
		r.RawContent == o.RawContent &&
		equality.Semantic.DeepEqual(r.Inputs, o.Inputs) &&
		equality.Semantic.DeepEqual(r.Outputs, o.Outputs) &&
		equality.Semantic.DeepEqual(r.MetaInfo, o.MetaInfo) &&
		cmp.SliceEqual(r.Notifications, o.Notifications) &&
		cmp.PtrEq(r.WaitTime, o.WaitTime) &&
		cmp.PtrEq(r.Duration, o.Duration) &&
		cmp.PtrEqual(r.CreatedAt, o.CreatedAt) &&
		cmp.PtrEqual(r.UpdatedAt, o.UpdatedAt) &&
		cmp.PtrEqual(r.StartedAt, o.StartedAt) &&
		cmp.PtrEqual(r.FinishedAt, o.FinishedAt)
}

// CurrentStatus returns status part of the run.
func (r Run) CurrentStatus() statuses.Status {
	return statuses.Status{
		UUID:             r.UUID,
		Status:           r.Status,
		StatusConditions: slices.Clone(r.StatusConditions),
	}
}

// WithStatus returns a copy of r with status replaced by s.
//
// StartedAt and FinishedAt are filled with the time of the condition
// when the run starts running or gets done.
func (r Run) WithStatus(s statuses.Status) Run {
	r.Status = s.Status
	r.StatusConditions = slices.Clone(s.StatusConditions)
	if len(s.StatusConditions) == 0 {
		return r
	}
	last := s.StatusConditions[len(s.StatusConditions)-1]
	at := last.LastTransitionTime
	if at == nil {
		at = last.LastUpdateTime
	}
	if r.StartedAt == nil && s.Status.IsRunning() {
		r.StartedAt = at
	}
	if r.FinishedAt == nil && s.Status.IsDone() {
		r.FinishedAt = at
	}
	return r
}

// RunSpec decodes runtime section of Content.
//
// Content is a compiled operation, a JSON object having "run" section.
func (r Run) RunSpec() (*Runtime, error) {
	if r.Content == "" {
		return nil, apierr.Invalid("run %s has no content", r.UUID)
	}
	op := struct {
		Run *Runtime `json:"run"`
	}{}
	if err := json.Unmarshal([]byte(r.Content), &op); err != nil {
		return nil, apierr.Invalid("run %s: broken content: %v", r.UUID, err)
	}
	if op.Run == nil {
		return nil, apierr.Invalid("run %s: content has no run section", r.UUID)
	}
	return op.Run, nil
}

type ListRunsResponse = pagination.List[Run]
