package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/polyaxon/plx/pkg/api/types/projects"
	kdb "github.com/polyaxon/plx/pkg/db"
)

func projectEntities(docs kdb.DocumentInterface) entities[projects.Project] {
	return entities[projects.Project]{
		docs: docs,
		kind: kdb.Project,
		name: func(p projects.Project) string { return p.Name },
		stamp: func(p projects.Project, d kdb.Document) projects.Project {
			p.UUID = d.UUID
			p.Owner = d.Owner
			p.CreatedAt = timestamp(d.CreatedAt)
			p.UpdatedAt = timestamp(d.UpdatedAt)
			return p
		},
	}
}

func ListProjectsHandler(docs kdb.DocumentInterface, ownerParam string) echo.HandlerFunc {
	es := projectEntities(docs)
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

func GetProjectHandler(docs kdb.DocumentInterface, ownerParam string, projectParam string) echo.HandlerFunc {
	es := projectEntities(docs)
	return func(c echo.Context) error {
		found, err := es.GetByName(c.Request().Context(), c.Param(ownerParam), "", c.Param(projectParam))
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, found.Value)
	}
}

func CreateProjectHandler(docs kdb.DocumentInterface, ownerParam string) echo.HandlerFunc {
	es := projectEntities(docs)
	return func(c echo.Context) error {
		project := new(projects.Project)
		if err := bindJSON(c, project); err != nil {
			return err
		}
		if err := project.Validate(); err != nil {
			return invalid("project", err)
		}
		created, err := es.Create(c.Request().Context(), c.Param(ownerParam), "", *project)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusCreated, created.Value)
	}
}

// PatchProjectHandler overwrites fields in the request body.
//
// Renaming is not allowed since runs refer their project by name.
func PatchProjectHandler(docs kdb.DocumentInterface, ownerParam string, projectParam string) echo.HandlerFunc {
	es := projectEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		found, err := es.GetByName(ctx, c.Param(ownerParam), "", c.Param(projectParam))
		if err != nil {
			return storeError(err)
		}
		project := found.Value
		if err := bindJSON(c, &project); err != nil {
			return err
		}
		if project.Name != found.Value.Name {
			return invalid("project", errRename)
		}
		updated, err := es.Update(ctx, found.Doc, project)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, updated.Value)
	}
}

// DeleteProjectHandler deletes a project with its runs.
func DeleteProjectHandler(docs kdb.DocumentInterface, ownerParam string, projectParam string) echo.HandlerFunc {
	es := projectEntities(docs)
	rs := runEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		owner := c.Param(ownerParam)
		found, err := es.GetByName(ctx, owner, "", c.Param(projectParam))
		if err != nil {
			return storeError(err)
		}

		rr, _, err := rs.List(ctx, kdb.Query{Owner: owner, Parent: found.Value.Name})
		if err != nil {
			return storeError(err)
		}
		for _, r := range rr {
			if err := rs.Delete(ctx, owner, r.UUID); err != nil {
				return storeError(err)
			}
		}
		if err := es.Delete(ctx, owner, found.Doc.UUID); err != nil {
			return storeError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
