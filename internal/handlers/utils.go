package handlers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// parseIDParam reads the :id path parameter as a UUID
func parseIDParam(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func pageLimit(requested int) int {
	switch {
	case requested <= 0:
		return defaultPageLimit
	case requested > maxPageLimit:
		return maxPageLimit
	default:
		return requested
	}
}
