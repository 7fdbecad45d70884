package handlers

import (
	"net/http"

	"github.com/Masterminds/semver/v3"
	"github.com/labstack/echo/v4"
	binderr "github.com/polyaxon/plx/pkg/api-types-binding/errors"
	"github.com/polyaxon/plx/pkg/configs/sandbox"
)

func GetInstallationHandler(conf *sandbox.SandboxConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, conf.Installation())
	}
}

// GetCompatibilityHandler tells supported versions of services.
//
// The version in the path should be a semver.
func GetCompatibilityHandler(conf *sandbox.SandboxConfig, versionParam string, serviceParam string) echo.HandlerFunc {
	services := map[string]struct{}{"cli": {}, "platform": {}, "agent": {}, "ui": {}}
	return func(c echo.Context) error {
		if _, err := semver.NewVersion(c.Param(versionParam)); err != nil {
			return binderr.BadRequest("version should be semver: "+c.Param(versionParam), err)
		}
		if _, ok := services[c.Param(serviceParam)]; !ok {
			return binderr.BadRequest("unknown service: "+c.Param(serviceParam), nil)
		}
		return c.JSON(http.StatusOK, conf.Compatibility())
	}
}

func GetLogHandlerHandler(conf *sandbox.SandboxConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, conf.LogHandler())
	}
}
