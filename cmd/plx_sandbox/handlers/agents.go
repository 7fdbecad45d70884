package handlers

import (
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	binderr "github.com/polyaxon/plx/pkg/api-types-binding/errors"
	"github.com/polyaxon/plx/pkg/api/types/agents"
	"github.com/polyaxon/plx/pkg/api/types/misc/rfctime"
	"github.com/polyaxon/plx/pkg/api/types/statuses"
	kdb "github.com/polyaxon/plx/pkg/db"
)

func agentEntities(docs kdb.DocumentInterface) entities[agents.Agent] {
	return entities[agents.Agent]{
		docs: docs,
		kind: kdb.Agent,
		name: func(a agents.Agent) string { return a.Name },
		stamp: func(a agents.Agent, d kdb.Document) agents.Agent {
			a.UUID = d.UUID
			a.CreatedAt = timestamp(d.CreatedAt)
			a.UpdatedAt = timestamp(d.UpdatedAt)
			return a
		},
	}
}

// ListAgentsHandler lists agents.
//
// When namesOnly is true, only uuid and name of agents are responded.
func ListAgentsHandler(docs kdb.DocumentInterface, ownerParam string, namesOnly bool) echo.HandlerFunc {
	es := agentEntities(docs)
	return func(c echo.Context) error {
		q, opts, err := listQuery(c, false)
		if err != nil {
			return storeError(err)
		}
		q.Owner = c.Param(ownerParam)
		found, total, err := es.List(c.Request().Context(), q)
		if err != nil {
			return storeError(err)
		}
		if namesOnly {
			for i, a := range found {
				found[i] = agents.Agent{UUID: a.UUID, Name: a.Name}
			}
		}
		return c.JSON(http.StatusOK, page(c, opts, found, total))
	}
}

func GetAgentHandler(docs kdb.DocumentInterface, ownerParam string, uuidParam string) echo.HandlerFunc {
	es := agentEntities(docs)
	return func(c echo.Context) error {
		found, err := es.Get(c.Request().Context(), c.Param(ownerParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, found.Value)
	}
}

// CreateAgentHandler registers an agent. Its status starts from "created".
func CreateAgentHandler(docs kdb.DocumentInterface, ownerParam string) echo.HandlerFunc {
	es := agentEntities(docs)
	return func(c echo.Context) error {
		agent := new(agents.Agent)
		if err := bindJSON(c, agent); err != nil {
			return err
		}
		if err := agent.Validate(); err != nil {
			return invalid("agent", err)
		}
		st := statuses.Status{}
		if err := st.Apply(statuses.NewCondition(statuses.Created, "AgentCreated", "Agent is created"), true); err != nil {
			return binderr.InternalServerError(err)
		}
		agent.Status = st.Status
		agent.StatusConditions = st.StatusConditions

		created, err := es.Create(c.Request().Context(), c.Param(ownerParam), "", *agent)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusCreated, created.Value)
	}
}

// UpdateAgentHandler handles PUT and PATCH.
//
// Statuses of the agent are kept. They change only via the statuses endpoint.
func UpdateAgentHandler(docs kdb.DocumentInterface, ownerParam string, uuidParam string) echo.HandlerFunc {
	es := agentEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		found, err := es.Get(ctx, c.Param(ownerParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		agent := found.Value
		if c.Request().Method == http.MethodPut {
			agent = agents.Agent{}
		}
		if err := bindJSON(c, &agent); err != nil {
			return err
		}
		if err := agent.Validate(); err != nil {
			return invalid("agent", err)
		}
		agent.Status = found.Value.Status
		agent.StatusConditions = found.Value.StatusConditions

		updated, err := es.Update(ctx, found.Doc, agent)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, updated.Value)
	}
}

// SyncAgentHandler receives version information reported by an agent.
func SyncAgentHandler(docs kdb.DocumentInterface, ownerParam string, uuidParam string) echo.HandlerFunc {
	es := agentEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		found, err := es.Get(ctx, c.Param(ownerParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		report := new(agents.Agent)
		if err := bindJSON(c, report); err != nil {
			return err
		}

		agent := found.Value
		if report.Version != "" {
			agent.Version = report.Version
		}
		if len(report.VersionApi) != 0 {
			agent.VersionApi = report.VersionApi
		}
		if report.Namespace != "" {
			agent.Namespace = report.Namespace
		}
		if report.Live != nil {
			agent.Live = report.Live
		}
		if _, err := es.Update(ctx, found.Doc, agent); err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, struct{}{})
	}
}

func DeleteAgentHandler(docs kdb.DocumentInterface, ownerParam string, uuidParam string) echo.HandlerFunc {
	es := agentEntities(docs)
	return func(c echo.Context) error {
		if err := es.Delete(c.Request().Context(), c.Param(ownerParam), c.Param(uuidParam)); err != nil {
			return storeError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// GetAgentStateHandler tells runs of the owner waiting for the agent.
//
// Queued runs are in the queued list, stopping runs are in the stopping list.
func GetAgentStateHandler(docs kdb.DocumentInterface, ownerParam string, uuidParam string) echo.HandlerFunc {
	es := agentEntities(docs)
	rs := runEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		owner := c.Param(ownerParam)
		found, err := es.Get(ctx, owner, c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}

		uuidsIn := func(st statuses.Statuses) ([]string, error) {
			rr, _, err := rs.List(ctx, kdb.Query{
				Owner: owner, Fields: map[string]string{"status": st.String()},
			})
			if err != nil {
				return nil, err
			}
			ret := make([]string, 0, len(rr))
			for _, r := range rr {
				ret = append(ret, r.UUID)
			}
			return ret, nil
		}

		state := &agents.State{}
		if state.Queued, err = uuidsIn(statuses.Queued); err != nil {
			return storeError(err)
		}
		if state.Stopping, err = uuidsIn(statuses.Stopping); err != nil {
			return storeError(err)
		}

		resp := agents.StateResponse{Status: found.Value.Status, State: state}
		if found.Value.Live != nil && *found.Value.Live {
			resp.LiveState = 1
		}
		return c.JSON(http.StatusOK, resp)
	}
}

func GetAgentStatusesHandler(docs kdb.DocumentInterface, ownerParam string, uuidParam string) echo.HandlerFunc {
	es := agentEntities(docs)
	return func(c echo.Context) error {
		found, err := es.Get(c.Request().Context(), c.Param(ownerParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, statuses.Status{
			UUID:             found.Value.UUID,
			Status:           found.Value.Status,
			StatusConditions: found.Value.StatusConditions,
		})
	}
}

// CreateAgentStatusHandler appends a status condition to an agent.
func CreateAgentStatusHandler(docs kdb.DocumentInterface, ownerParam string, uuidParam string) echo.HandlerFunc {
	es := agentEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		found, err := es.Get(ctx, c.Param(ownerParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		body := new(agents.StatusBodyRequest)
		if err := bindJSON(c, body); err != nil {
			return err
		}
		if body.Condition == nil {
			return binderr.BadRequest("condition is required", nil)
		}

		agent := found.Value
		st := statuses.Status{
			UUID:             agent.UUID,
			Status:           agent.Status,
			StatusConditions: slices.Clone(agent.StatusConditions),
		}
		if err := st.Apply(stampCondition(*body.Condition), false); err != nil {
			return invalid("status", err)
		}
		agent.Status = st.Status
		agent.StatusConditions = st.StatusConditions
		if _, err := es.Update(ctx, found.Doc, agent); err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, st)
	}
}

// stampCondition fills timestamps of cond which are missing.
func stampCondition(cond statuses.StatusCondition) statuses.StatusCondition {
	now := rfctime.Now()
	if cond.LastUpdateTime == nil {
		cond.LastUpdateTime = rfctime.Ref(now)
	}
	if cond.LastTransitionTime == nil {
		cond.LastTransitionTime = rfctime.Ref(now)
	}
	if cond.Status == "" {
		cond.Status = "True"
	}
	return cond
}
