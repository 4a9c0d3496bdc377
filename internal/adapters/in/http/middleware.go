package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-booking-gateway/internal/core/domain"
	inport "github.com/suchimauz/clinic-booking-gateway/internal/core/ports/in"
)

// loginRoute is where every unauthorized request lands.
const loginRoute = "/login"

// requireAuth redirects unauthenticated visitors to the login route before
// any data fetch happens.
func requireAuth(session inport.SessionUseCase) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !session.Current().IsAuthenticated {
			ctx.Redirect(http.StatusFound, loginRoute)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// requireAction hides a route from roles whose navigation table does not
// list the action. Presentation gating only: the backend still authorizes
// every mutation on its own.
func requireAction(session inport.SessionUseCase, nav inport.NavigationUseCase, action domain.NavAction) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !nav.Allows(session.Current().Role, action) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": domain.ErrForbidden.Error(),
			})
			return
		}
		ctx.Next()
	}
}

// respondError is the single translation point from the failure taxonomy to
// HTTP. An unauthorized session becomes the login redirect; everything else
// stays a JSON error plus whatever notification the service already queued.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		ctx.Redirect(http.StatusFound, loginRoute)
		ctx.Abort()
	case errors.Is(err, domain.ErrValidation):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrSubmitInFlight):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrBackendRejected), errors.Is(err, domain.ErrMalformedResponse):
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
