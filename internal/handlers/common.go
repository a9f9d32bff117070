package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/creativeimage/wedding-portal/backend/internal/middleware"
	"github.com/creativeimage/wedding-portal/backend/internal/services"
	"github.com/creativeimage/wedding-portal/backend/pkg/response"
)

// actorFrom builds the service-layer identity from the auth middleware keys.
func actorFrom(c *gin.Context) services.Actor {
	return services.Actor{
		ID:   middleware.GetUserID(c),
		Role: middleware.GetRole(c),
	}
}

// serviceError maps workflow sentinels onto HTTP statuses. Anything not in
// the taxonomy is a store failure and surfaces as 500.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidField),
		errors.Is(err, services.ErrInvalidValue),
		errors.Is(err, services.ErrNoChangesToNotify),
		errors.Is(err, services.ErrMissingEmail):
		response.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrAlreadyExists):
		response.Conflict(c, err.Error())
	default:
		response.ServerError(c, err.Error())
	}
}
