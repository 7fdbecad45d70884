package echoutil

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

var levels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"":      log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

// ParseLevel reads names of log levels: debug, info, warn, error or off.
//
// Empty means warn.
func ParseLevel(name string) (log.Lvl, error) {
	lvl, ok := levels[strings.ToLower(name)]
	if !ok {
		return log.WARN, fmt.Errorf("unknown loglevel: %s", name)
	}
	return lvl, nil
}

// SetLevel sets log level of e by name.
//
// Unknown names fall back to warn.
func SetLevel(e *echo.Echo, loglevel string) {
	lvl, err := ParseLevel(loglevel)
	e.Logger.SetLevel(lvl)
	if err != nil {
		e.Logger.Warnf("%s . fall-backed to warn", err)
	}
}

// LogHandlerFunc logs requests and responses with server-side latency.
func LogHandlerFunc(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		meth := c.Request().Method
		path := c.Request().URL
		BEGIN := time.Now()
		c.Logger().Infof(
			"< request @[%s] %s %s", BEGIN, meth, path,
		)

		var err error

		defer func() {
			END := time.Now()
			c.Logger().Infof(
				"> response @[%s] status = %d (for request @[%s] %s %s) in %v / error = %+v",
				END, c.Response().Status, BEGIN, meth, path, END.Sub(BEGIN), err,
			)
		}()

		err = next(c)
		return err
	}
}

// ErrorHandler responds err by echo's default way, then logs it.
//
// Server errors are logged as errors, others as debug.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		e.DefaultHTTPErrorHandler(err, c)

		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}
		if code < http.StatusInternalServerError {
			e.Logger.Debugf("%s %s: %d: %v", c.Request().Method, c.Request().URL, code, err)
			return
		}
		if he, ok := err.(*echo.HTTPError); ok && he.Internal != nil {
			e.Logger.Errorf("%s %s: %v (caused by %+v)", c.Request().Method, c.Request().URL, err, he.Internal)
			return
		}
		e.Logger.Error(err)
	}
}
