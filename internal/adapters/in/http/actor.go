package http

import (
	"strings"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the gateway after authentication.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserRoles = "X-User-Roles"
)

// actorFrom reads the acting identity. Missing headers give the anonymous
// actor; authorization decides what it may do.
func actorFrom(c echo.Context) access.Actor {
	userID := c.Request().Header.Get(HeaderUserID)
	if userID == "" {
		return access.Anonymous()
	}

	var roles []string
	if raw := c.Request().Header.Get(HeaderUserRoles); raw != "" {
		roles = strings.Split(raw, ",")
	}
	return access.NewActor(userID, roles)
}

func uuidParam(c echo.Context, name, param string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return id, nil
}
