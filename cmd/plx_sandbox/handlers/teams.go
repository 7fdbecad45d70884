package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/polyaxon/plx/pkg/api/types/teams"
	kdb "github.com/polyaxon/plx/pkg/db"
)

func teamEntities(docs kdb.DocumentInterface) entities[teams.Team] {
	return entities[teams.Team]{
		docs: docs,
		kind: kdb.Team,
		name: func(t teams.Team) string { return t.Name },
		stamp: func(t teams.Team, d kdb.Document) teams.Team {
			t.UUID = d.UUID
			t.CreatedAt = timestamp(d.CreatedAt)
			t.UpdatedAt = timestamp(d.UpdatedAt)
			return t
		},
	}
}

func ListTeamsHandler(docs kdb.DocumentInterface, ownerParam string) echo.HandlerFunc {
	es := teamEntities(docs)
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
		return c.JSON(http.StatusOK, page(c, opts, found, total))
	}
}

func CreateTeamHandler(docs kdb.DocumentInterface, ownerParam string) echo.HandlerFunc {
	es := teamEntities(docs)
	return func(c echo.Context) error {
		team := new(teams.Team)
		if err := bindJSON(c, team); err != nil {
			return err
		}
		if err := team.Validate(); err != nil {
			return invalid("team", err)
		}
		created, err := es.Create(c.Request().Context(), c.Param(ownerParam), "", *team)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusCreated, created.Value)
	}
}

func GetTeamHandler(docs kdb.DocumentInterface, ownerParam string, nameParam string) echo.HandlerFunc {
	es := teamEntities(docs)
	return func(c echo.Context) error {
		found, err := es.GetByName(c.Request().Context(), c.Param(ownerParam), "", c.Param(nameParam))
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, found.Value)
	}
}

func DeleteTeamHandler(docs kdb.DocumentInterface, ownerParam string, nameParam string) echo.HandlerFunc {
	es := teamEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		owner := c.Param(ownerParam)
		found, err := es.GetByName(ctx, owner, "", c.Param(nameParam))
		if err != nil {
			return storeError(err)
		}
		if err := es.Delete(ctx, owner, found.Doc.UUID); err != nil {
			return storeError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
