package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/polyaxon/plx/pkg/api/types/hub"
	"github.com/polyaxon/plx/pkg/api/types/names"
	kdb "github.com/polyaxon/plx/pkg/db"
)

func modelEntities(docs kdb.DocumentInterface) entities[hub.Model] {
	return entities[hub.Model]{
		docs: docs,
		kind: kdb.Model,
		name: func(m hub.Model) string { return m.Name },
		stamp: func(m hub.Model, d kdb.Document) hub.Model {
			m.UUID = d.UUID
			m.CreatedAt = timestamp(d.CreatedAt)
			m.UpdatedAt = timestamp(d.UpdatedAt)
			return m
		},
	}
}

func componentEntities(docs kdb.DocumentInterface) entities[hub.Component] {
	return entities[hub.Component]{
		docs: docs,
		kind: kdb.Component,
		name: func(m hub.Component) string { return m.Name },
		stamp: func(m hub.Component, d kdb.Document) hub.Component {
			m.UUID = d.UUID
			m.CreatedAt = timestamp(d.CreatedAt)
			m.UpdatedAt = timestamp(d.UpdatedAt)
			return m
		},
	}
}

// modelName strips the tag from "name:tag".
func modelName(c echo.Context, nameParam string) string {
	name, _ := names.SplitVersioned(c.Param(nameParam))
	return name
}

func ListModelsHandler(docs kdb.DocumentInterface, ownerParam string) echo.HandlerFunc {
	es := modelEntities(docs)
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

// GetModelHandler finds a model by name. A tag in the path ("name:tag") is ignored.
func GetModelHandler(docs kdb.DocumentInterface, ownerParam string, nameParam string) echo.HandlerFunc {
	es := modelEntities(docs)
	return func(c echo.Context) error {
		found, err := es.GetByName(c.Request().Context(), c.Param(ownerParam), "", modelName(c, nameParam))
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, found.Value)
	}
}

func CreateModelHandler(docs kdb.DocumentInterface, ownerParam string) echo.HandlerFunc {
	es := modelEntities(docs)
	return func(c echo.Context) error {
		model := new(hub.Model)
		if err := bindJSON(c, model); err != nil {
			return err
		}
		if err := model.Validate(); err != nil {
			return invalid("model", err)
		}
		created, err := es.Create(c.Request().Context(), c.Param(ownerParam), "", model.Normalize())
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusCreated, created.Value)
	}
}

func PatchModelHandler(docs kdb.DocumentInterface, ownerParam string, nameParam string) echo.HandlerFunc {
	es := modelEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		found, err := es.GetByName(ctx, c.Param(ownerParam), "", modelName(c, nameParam))
		if err != nil {
			return storeError(err)
		}
		model := found.Value
		if err := bindJSON(c, &model); err != nil {
			return err
		}
		if err := model.Validate(); err != nil {
			return invalid("model", err)
		}
		updated, err := es.Update(ctx, found.Doc, model.Normalize())
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, updated.Value)
	}
}

func DeleteModelHandler(docs kdb.DocumentInterface, ownerParam string, nameParam string) echo.HandlerFunc {
	es := modelEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		found, err := es.GetByName(ctx, c.Param(ownerParam), "", modelName(c, nameParam))
		if err != nil {
			return storeError(err)
		}
		if err := es.Delete(ctx, found.Doc.Owner, found.Doc.UUID); err != nil {
			return storeError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func ListComponentsHandler(docs kdb.DocumentInterface, ownerParam string) echo.HandlerFunc {
	es := componentEntities(docs)
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

func GetComponentHandler(docs kdb.DocumentInterface, ownerParam string, nameParam string) echo.HandlerFunc {
	es := componentEntities(docs)
	return func(c echo.Context) error {
		found, err := es.GetByName(c.Request().Context(), c.Param(ownerParam), "", c.Param(nameParam))
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusOK, found.Value)
	}
}

func CreateComponentHandler(docs kdb.DocumentInterface, ownerParam string) echo.HandlerFunc {
	es := componentEntities(docs)
	return func(c echo.Context) error {
		component := new(hub.Component)
		if err := bindJSON(c, component); err != nil {
			return err
		}
		if err := component.Validate(); err != nil {
			return invalid("component", err)
		}
		created, err := es.Create(c.Request().Context(), c.Param(ownerParam), "", *component)
		if err != nil {
			return storeError(err)
		}
		return c.JSON(http.StatusCreated, created.Value)
	}
}

func DeleteComponentHandler(docs kdb.DocumentInterface, ownerParam string, nameParam string) echo.HandlerFunc {
	es := componentEntities(docs)
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		found, err := es.GetByName(ctx, c.Param(ownerParam), "", c.Param(nameParam))
		if err != nil {
			return storeError(err)
		}
		if err := es.Delete(ctx, found.Doc.Owner, found.Doc.UUID); err != nil {
			return storeError(err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
