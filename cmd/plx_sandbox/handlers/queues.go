package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	binderr "github.com/polyaxon/plx/pkg/api-types-binding/errors"
	"github.com/polyaxon/plx/pkg/api/types/queues"
	kdb "github.com/polyaxon/plx/pkg/db"
)

func queueEntities(docs kdb.DocumentInterface) entities[queues.Queue] {
	return entities[queues.Queue]{
		docs: docs,
		kind: kdb.Queue,
		name: func(q queues.Queue) string { return q.Name },
		stamp: func(q queues.Queue, d kdb.Document) queues.Queue {
			q.UUID = d.UUID
			q.Agent = d.Parent
			q.CreatedAt = timestamp(d.CreatedAt)
			q.UpdatedAt = timestamp(d.UpdatedAt)
			return q
		},
	}
}

// ListQueuesHandler lists queues of an agent.
//
// When agentParam is empty, queues of all agents of the owner are listed.
func ListQueuesHandler(docs kdb.DocumentInterface, ownerParam string, agentParam string) echo.HandlerFunc {
	es := queueEntities(docs)
	as := agentEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		q, opts, err := listQuery(c, false)
		if err != nil {
			return storeError(err)
		}
		q.Owner = c.Param(ownerParam)
		if agentParam != "" {
			agent, err := as.Get(ctx, q.Owner, c.Param(agentParam))
			if err != nil {
				return storeError(err)
			}
			q.Parent = agent.Doc.UUID
		}
		found, total, err := es.List(ctx, q)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, page(c, opts, found, total))
	}
}

// getQueue finds a queue which belongs to the agent.
func getQueue(c echo.Context, es entities[queues.Queue], owner string, agent string, uuid string) (entity[queues.Queue], error) {
	found, err := es.Get(c.Request().Context(), owner, uuid)
	if err != nil {
		return entity[queues.Queue]{}, err
	}
	if found.Doc.Parent != agent {
		return entity[queues.Queue]{}, binderr.NotFound()
	}
	return found, nil
}

func GetQueueHandler(docs kdb.DocumentInterface, ownerParam string, agentParam string, uuidParam string) echo.HandlerFunc {
	es := queueEntities(docs)
	return func(c echo.Context) error {
		found, err := getQueue(c, es, c.Param(ownerParam), c.Param(agentParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, found.Value)
	}
}

// CreateQueueHandler creates a queue in an agent. The agent should exist.
func CreateQueueHandler(docs kdb.DocumentInterface, ownerParam string, agentParam string) echo.HandlerFunc {
	es := queueEntities(docs)
	as := agentEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		owner := c.Param(ownerParam)
		agent, err := as.Get(ctx, owner, c.Param(agentParam))
		if err != nil {
			return storeError(err)
		}

		queue := new(queues.Queue)
		if err := bindJSON(c, queue); err != nil {
			return err
		}
		if err := queue.Validate(); err != nil {
			return invalid("queue", err)
		}
		created, err := es.Create(ctx, owner, agent.Doc.UUID, *queue)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusCreated, created.Value)
	}
}

func UpdateQueueHandler(docs kdb.DocumentInterface, ownerParam string, agentParam string, uuidParam string) echo.HandlerFunc {
	es := queueEntities(docs)
	return func(c echo.Context) error {
		found, err := getQueue(c, es, c.Param(ownerParam), c.Param(agentParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		queue := found.Value
		if c.Request().Method == http.MethodPut {
			queue = queues.Queue{}
		}
		if err := bindJSON(c, &queue); err != nil {
			return err
		}
		if err := queue.Validate(); err != nil {
			return invalid("queue", err)
		}
		updated, err := es.Update(c.Request().Context(), found.Doc, queue)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, updated.Value)
	}
}

func DeleteQueueHandler(docs kdb.DocumentInterface, ownerParam string, agentParam string, uuidParam string) echo.HandlerFunc {
	es := queueEntities(docs)
	return func(c echo.Context) error {
		found, err := getQueue(c, es, c.Param(ownerParam), c.Param(agentParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		if err := es.Delete(c.Request().Context(), found.Doc.Owner, found.Doc.UUID); err != nil {
			return storeError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
