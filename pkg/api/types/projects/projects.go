package projects

import (
	"slices"

	"github.com/polyaxon/plx/pkg/api/types/internal/utils/cmp"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	"github.com/polyaxon/plx/pkg/api/types/names"
	"github.com/polyaxon/plx/pkg/api/types/pagination"
)

type Project struct {
	UUID               string           `json:"uuid,omitempty"`
	Owner              string           `json:"owner,omitempty"`
	Name               string           `json:"name,omitempty"`
	Description        string           `json:"description,omitempty"`
	Tags               []string         `json:"tags,omitempty"`
	Readme             string           `json:"readme,omitempty"`
	IsPublic           *bool            `json:"is_public,omitempty"`
	Bookmarked         *bool            `json:"bookmarked,omitempty"`
	ExcludedFeatures   []string         `json:"excluded_features,omitempty"`
	ExcludedRuntimes   []string         `json:"excluded_runtimes,omitempty"`
	ArchivedDeletionAt *rfctime.RFC3339 `json:"archived_deletion_at,omitempty"`
	Contributors       []string         `json:"contributors,omitempty"`
	Role               string           `json:"role,omitempty"`
	LiveState          int32            `json:"live_state,omitempty"`
	CreatedAt          *rfctime.RFC3339 `json:"created_at,omitempty"`
	UpdatedAt          *rfctime.RFC3339 `json:"updated_at,omitempty"`
}

func (p Project) Equal(o Project) bool {
	return p.UUID == o.UUID &&
		p.Owner == o.Owner &&
		p.Name == o.Name &&
		p.Description == o.Description &&
		cmp.StringsEqualUnordered(p.Tags, o.Tags) &&
		p.Readme == o.Readme &&
		cmp.PtrEq(p.IsPublic, o.IsPublic) &&
		cmp.PtrEq(p.Bookmarked, o.Bookmarked) &&
		cmp.StringsEqualUnordered(p.ExcludedFeatures, o.ExcludedFeatures) &&
		cmp.StringsEqualUnordered(p.ExcludedRuntimes, o.ExcludedRuntimes) &&
		cmp.PtrEqual(p.ArchivedDeletionAt, o.ArchivedDeletionAt) &&
		slices.Equal(p.Contributors, o.Contributors) &&
		p.Role == o.Role &&
		p.LiveState == o.LiveState &&
		cmp.PtrEqual(p.CreatedAt, o.CreatedAt) &&
		cmp.PtrEqual(p.UpdatedAt, o.UpdatedAt)
}

// IsArchived reports the project is scheduled for deletion.
func (p Project) IsArchived() bool {
	return p.ArchivedDeletionAt != nil
}

func (p Project) Validate() error {
	return names.ValidateUnreserved(p.Name)
}

// FullName is "owner/name".
func (p Project) FullName() string {
	if p.Owner == "" {
		return p.Name
	}
	return p.Owner + "/" + p.Name
}

type ListProjectsResponse = pagination.List[Project]
