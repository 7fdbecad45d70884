package queues

import (
	"maps"
	"slices"

	apierr "github.com/polyaxon/plx/pkg/api/types/errors"
	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	"github.com/polyaxon/plx/pkg/api/types/names"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/apimachinery/pkg/util/validation"
)

// Queue is a slot of runs scheduled on an agent.
type Queue struct {
	UUID        string           `json:"uuid,omitempty"`
	Agent       string           `json:"agent,omitempty"`
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Priority    *int32           `json:"priority,omitempty"`
	Concurrency *int32           `json:"concurrency,omitempty"`
	Resource    string           `json:"resource,omitempty"`
	Quota       *int32           `json:"quota,omitempty"`
	Stats       map[string]int32 `json:"stats,omitempty"`
	CreatedAt   *rfctime.RFC3339 `json:"created_at,omitempty"`
	UpdatedAt   *rfctime.RFC3339 `json:"updated_at,omitempty"`
}

func (q Queue) Equal(o Queue) bool {
	return q.UUID == o.UUID &&
		q.Agent == o.Agent &&
		q.Name == o.Name &&
		q.Description == o.Description &&
		slices.Equal(q.Tags, o.Tags) &&
		cmp.PtrEq(q.Priority, o.Priority) &&
		cmp.PtrEq(q.Concurrency, o.Concurrency) &&
		q.Resource == o.Resource &&
		cmp.PtrEq(q.Quota, o.Quota) &&
		maps.Equal(q.Stats, o.Stats) &&
		cmp.PtrEqual(q.CreatedAt, o.CreatedAt) &&
		cmp.PtrEqual(q.UpdatedAt, o.UpdatedAt)
}

// Validate checks a queue to be created.
//
// Resource is a resource name like "cpu" or "nvidia.com/gpu".
// When Quota is set, it should be understood as an amount of the Resource.
func (q Queue) Validate() error {
	if err := names.Validate(q.Name); err != nil {
		return err
	}
	if q.Priority != nil && *q.Priority < 0 {
		return apierr.Invalid("priority should not be negative: %d", *q.Priority)
	}
	if q.Concurrency != nil && *q.Concurrency < 1 {
		return apierr.Invalid("concurrency should be positive: %d", *q.Concurrency)
	}
	if q.Resource != "" {
		if errs := validation.IsQualifiedName(q.Resource); len(errs) != 0 {
			return apierr.Invalid("resource %q: %v", q.Resource, errs)
		}
	}
	if q.Quota != nil {
		if q.Resource == "" {
			return apierr.Invalid("quota requires resource")
		}
		if *q.Quota < 0 {
			return apierr.Invalid("quota should not be negative: %d", *q.Quota)
		}
	}
	return nil
}

// QuotaQuantity returns quota as a resource quantity, or nil if no quota is set.
func (q Queue) QuotaQuantity() *resource.Quantity {
	if q.Quota == nil {
		return nil
	}
	return resource.NewQuantity(int64(*q.Quota), resource.DecimalSI)
}

// Admits reports a request of the resource fits in the quota.
//
// Queues without quota admit anything.
func (q Queue) Admits(request resource.Quantity) bool {
	quota := q.QuotaQuantity()
	if quota == nil {
		return true
	}
	return request.Cmp(*quota) <= 0
}

type ListQueuesResponse = pagination.List[Queue]
