// Package httpx holds small echo helpers shared by the domain handlers.
package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// IDParam parses a positive integer path parameter.
func IDParam(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s %q: must be a positive integer", name, raw))
	}
	return id, nil
}

// Created writes a 201 response with a Location header pointing at the new
// resource.
func Created(c echo.Context, location string, body interface{}) error {
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusCreated, body)
}

// Bind decodes the request body into v. Decoding failures are 400s carrying
// the decoder's message.
func Bind(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	return nil
}
