package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/polyaxon/plx/pkg/api/types/connections"
	kdb "github.com/polyaxon/plx/pkg/db"
)

func connectionEntities(docs kdb.DocumentInterface) entities[connections.ConnectionResponse] {
	return entities[connections.ConnectionResponse]{
		docs: docs,
		kind: kdb.Connection,
		name: func(c connections.ConnectionResponse) string { return c.Name },
		stamp: func(c connections.ConnectionResponse, d kdb.Document) connections.ConnectionResponse {
			c.UUID = d.UUID
			c.CreatedAt = timestamp(d.CreatedAt)
			c.UpdatedAt = timestamp(d.UpdatedAt)
			return c
		},
	}
}

// ListConnectionsHandler lists connections.
//
// When namesOnly is true, only uuid, name and kind of connections are responded.
func ListConnectionsHandler(docs kdb.DocumentInterface, ownerParam string, namesOnly bool) echo.HandlerFunc {
	es := connectionEntities(docs)
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
			for i, conn := range found {
				found[i] = connections.ConnectionResponse{UUID: conn.UUID, Name: conn.Name, Kind: conn.Kind}
			}
		}
		return c.JSON(http.StatusOK, page(c, opts, found, total))
	}
}

func GetConnectionHandler(docs kdb.DocumentInterface, ownerParam string, uuidParam string) echo.HandlerFunc {
	es := connectionEntities(docs)
	return func(c echo.Context) error {
		found, err := es.Get(c.Request().Context(), c.Param(ownerParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, found.Value)
	}
}

func CreateConnectionHandler(docs kdb.DocumentInterface, ownerParam string) echo.HandlerFunc {
	es := connectionEntities(docs)
	return func(c echo.Context) error {
		conn := new(connections.ConnectionResponse)
		if err := bindJSON(c, conn); err != nil {
			return err
		}
		if err := conn.Validate(); err != nil {
			return invalid("connection", err)
		}
		created, err := es.Create(c.Request().Context(), c.Param(ownerParam), "", *conn)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusCreated, created.Value)
	}
}

// UpdateConnectionHandler handles PUT and PATCH.
//
// PUT replaces the whole connection. PATCH overwrites fields in the request body.
func UpdateConnectionHandler(docs kdb.DocumentInterface, ownerParam string, uuidParam string) echo.HandlerFunc {
	es := connectionEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		found, err := es.Get(ctx, c.Param(ownerParam), c.Param(uuidParam))
		if err != nil {
			return storeError(err)
		}

		conn := found.Value
		if c.Request().Method == http.MethodPut {
			conn = connections.ConnectionResponse{}
		}
		if err := bindJSON(c, &conn); err != nil {
			return err
		}
		if err := conn.Validate(); err != nil {
			return invalid("connection", err)
		}

		updated, err := es.Update(ctx, found.Doc, conn)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, updated.Value)
	}
}

func DeleteConnectionHandler(docs kdb.DocumentInterface, ownerParam string, uuidParam string) echo.HandlerFunc {
	es := connectionEntities(docs)
	return func(c echo.Context) error {
		if err := es.Delete(c.Request().Context(), c.Param(ownerParam), c.Param(uuidParam)); err != nil {
			return storeError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
