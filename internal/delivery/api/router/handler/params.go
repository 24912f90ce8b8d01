package handler

import (
	"strconv"

	domainerrors "blog/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// pathID reads a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidInput.WithMessage("Invalid " + name)
	}

	return id, nil
}

// queryInt reads an integer query parameter, returning fallback when it is absent.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrInvalidInput.WithMessage(name + " must be an integer")
	}

	return v, nil
}
