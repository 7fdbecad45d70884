package handlers

import (
	"maps"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	binderr "github.com/polyaxon/plx/pkg/api-types-binding/errors"
	"github.com/polyaxon/plx/pkg/api/types/runs"
	"github.com/polyaxon/plx/pkg/api/types/statuses"
	kdb "github.com/polyaxon/plx/pkg/db"
	"github.com/polyaxon/plx/pkg/utils/pointer"
)

// pending reason of runs waiting for approval.
const pendingApproval = "approval"

func runEntities(docs kdb.DocumentInterface) entities[runs.Run] {
	return entities[runs.Run]{
		docs: docs,
		kind: kdb.Run,
		name: func(runs.Run) string { return "" },
		stamp: func(r runs.Run, d kdb.Document) runs.Run {
			r.UUID = d.UUID
			r.Owner = d.Owner
			r.Project = d.Parent
			r.CreatedAt = timestamp(d.CreatedAt)
			r.UpdatedAt = timestamp(d.UpdatedAt)
			return r
		},
	}
}

// getRun finds a run in the project.
func getRun(c echo.Context, rs entities[runs.Run], owner string, project string, uuid string) (entity[runs.Run], error) {
	found, err := rs.Get(c.Request().Context(), owner, uuid)
	if err != nil {
		return entity[runs.Run]{}, err
	}
	if found.Doc.Parent != project {
		return entity[runs.Run]{}, binderr.NotFound()
	}
	return found, nil
}

// transit applies a condition to the run and stores it.
func transit(c echo.Context, rs entities[runs.Run], found entity[runs.Run], cond statuses.StatusCondition, force bool) (entity[runs.Run], error) {
	st := found.Value.CurrentStatus()
	if err := st.Apply(stampCondition(cond), force); err != nil {
		return entity[runs.Run]{}, invalid("status", err)
	}
	return rs.Update(c.Request().Context(), found.Doc, found.Value.WithStatus(st))
}

// newRun stores r as a new run of the project, in "created" status.
func newRun(c echo.Context, rs entities[runs.Run], owner string, project string, r runs.Run) (entity[runs.Run], error) {
	r.User = CurrentUser(c)
	r.Status = ""
	r.StatusConditions = nil
	r.StartedAt = nil
	r.FinishedAt = nil
	if r.IsApproved != nil && !*r.IsApproved {
		r.Pending = pendingApproval
	}

	st := r.CurrentStatus()
	if err := st.Apply(statuses.NewCondition(statuses.Created, "PolyaxonRunCreated", "Run is created"), true); err != nil {
		return entity[runs.Run]{}, err
	}
	return rs.Create(c.Request().Context(), owner, project, r.WithStatus(st))
}

// ListRunsHandler lists runs in a project.
//
// "status:x" in the query selects runs in the status. "name:x" selects runs named x.
func ListRunsHandler(docs kdb.DocumentInterface, ownerParam string, projectParam string) echo.HandlerFunc {
	ps := projectEntities(docs)
	rs := runEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		owner, project := c.Param(ownerParam), c.Param(projectParam)
		if _, err := ps.GetByName(ctx, owner, "", project); err != nil {
			return storeError(err)
		}

		q, opts, err := listQuery(c, true)
		if err != nil {
			return storeError(err)
		}
		if st, ok := q.Fields["status"]; ok {
			if _, err := statuses.Parse(st); err != nil {
				return invalid("query", err)
			}
		}
		q.Owner = owner
		q.Parent = project
		found, total, err := rs.List(ctx, q)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, page(c, opts, found, total))
	}
}

// CreateRunHandler records a run in a project. The project should exist.
//
// Runs with is_approved = false wait for approval.
func CreateRunHandler(docs kdb.DocumentInterface, ownerParam string, projectParam string) echo.HandlerFunc {
	ps := projectEntities(docs)
	rs := runEntities(docs)
	return func(c echo.Context) error {
		owner, project := c.Param(ownerParam), c.Param(projectParam)
		if _, err := ps.GetByName(c.Request().Context(), owner, "", project); err != nil {
			return storeError(err)
		}

		run := new(runs.Run)
		if err := bindJSON(c, run); err != nil {
			return err
		}
		if run.Content != "" {
			if _, err := run.RunSpec(); err != nil {
				return invalid("run", err)
			}
		}
		created, err := newRun(c, rs, owner, project, *run)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusCreated, created.Value)
	}
}

func GetRunHandler(docs kdb.DocumentInterface, ownerParam string, projectParam string, uuidParam string) echo.HandlerFunc {
	rs := runEntities(docs)
	return func(c echo.Context) error {
		found, err := getRun(c, rs, c.Param(ownerParam), c.Param(projectParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, found.Value)
	}
}

// DeleteRunHandler deletes a run with its logs.
func DeleteRunHandler(docs kdb.DocumentInterface, ownerParam string, projectParam string, uuidParam string) echo.HandlerFunc {
	rs := runEntities(docs)
	return func(c echo.Context) error {
		found, err := getRun(c, rs, c.Param(ownerParam), c.Param(projectParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		if err := rs.Delete(c.Request().Context(), found.Doc.Owner, found.Doc.UUID); err != nil {
			return storeError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// StopRunHandler stops a run.
//
// Runs not started yet are stopped at once. Others become "stopping".
// Runs already done or stopping are left as they are.
func StopRunHandler(docs kdb.DocumentInterface, ownerParam string, projectParam string, uuidParam string) echo.HandlerFunc {
	rs := runEntities(docs)
	return func(c echo.Context) error {
		found, err := getRun(c, rs, c.Param(ownerParam), c.Param(projectParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		cur := found.Value.Status
		if cur.IsDone() || cur == statuses.Stopping {
			return c.JSON(http.StatusOK, struct{}{})
		}

		cond := statuses.NewCondition(statuses.Stopping, "StateManager", "Run is stopping; User requested to stop the run.")
		if cur.IsSafeStoppable() {
			cond = statuses.NewCondition(statuses.Stopped, "StateManager", "Run is stopped; User requested to stop the run.")
		}
		if _, err := transit(c, rs, found, cond, false); err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, struct{}{})
	}
}

// ApproveRunHandler lets a run waiting for approval go.
func ApproveRunHandler(docs kdb.DocumentInterface, ownerParam string, projectParam string, uuidParam string) echo.HandlerFunc {
	rs := runEntities(docs)
	return func(c echo.Context) error {
		found, err := getRun(c, rs, c.Param(ownerParam), c.Param(projectParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		if found.Value.Pending == "" {
			return c.JSON(http.StatusOK, struct{}{})
		}
		run := found.Value
		run.Pending = ""
		run.IsApproved = pointer.Ref(true)
		if _, err := rs.Update(c.Request().Context(), found.Doc, run); err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, struct{}{})
	}
}

// RestartRunHandler creates a new run with the same specification.
//
// The new run refers the original one in meta_info.restarted_from.
func RestartRunHandler(docs kdb.DocumentInterface, ownerParam string, projectParam string, uuidParam string) echo.HandlerFunc {
	rs := runEntities(docs)
	return func(c echo.Context) error {
		owner, project := c.Param(ownerParam), c.Param(projectParam)
		found, err := getRun(c, rs, owner, project, c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		orig := found.Value
		meta := maps.Clone(orig.MetaInfo)
		if meta == nil {
			meta = map[string]any{}
		}
		meta["restarted_from"] = orig.UUID

		restarted, err := newRun(c, rs, owner, project, runs.Run{
			Name:        orig.Name,
			Description: orig.Description,
			Tags:        slices.Clone(orig.Tags),
			Kind:        orig.Kind,
			Runtime:     orig.Runtime,
			IsManaged:   orig.IsManaged,
			IsApproved:  pointer.Ref(true),
			Content:     orig.Content,
			RawContent:  orig.RawContent,
			Inputs:      maps.Clone(orig.Inputs),
			MetaInfo:    meta,
		})
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusCreated, restarted.Value)
	}
}

func GetRunStatusesHandler(docs kdb.DocumentInterface, ownerParam string, projectParam string, uuidParam string) echo.HandlerFunc {
	rs := runEntities(docs)
	return func(c echo.Context) error {
		found, err := getRun(c, rs, c.Param(ownerParam), c.Param(projectParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, found.Value.CurrentStatus())
	}
}

// CreateRunStatusHandler appends a status condition to a run.
//
// The transition is checked unless force is true.
func CreateRunStatusHandler(docs kdb.DocumentInterface, ownerParam string, projectParam string, uuidParam string) echo.HandlerFunc {
	rs := runEntities(docs)
	return func(c echo.Context) error {
		found, err := getRun(c, rs, c.Param(ownerParam), c.Param(projectParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		body := new(statuses.EntityStatusBodyRequest)
		if err := bindJSON(c, body); err != nil {
			return err
		}
		if body.Condition == nil {
			return binderr.BadRequest("condition is required", nil)
		}
		updated, err := transit(c, rs, found, *body.Condition, body.Force)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, updated.Value.CurrentStatus())
	}
}
