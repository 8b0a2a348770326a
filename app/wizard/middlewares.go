package wizard

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/prognos/app/api"
	"github.com/joefazee/prognos/models"
)

const (
	SessionTokenHeader = "X-Session-Token"
	DraftTokenHeader   = "X-Draft-Token"
)

// RequireSessionToken rejects requests whose token was not issued for the
// session named in the path.
func RequireSessionToken(service Service) gin.HandlerFunc {
	return requireToken(SessionTokenHeader, "session", "session_id", service.Authorize)
}

// RequireDraftToken rejects requests whose token was not issued for the
// saved draft named in the path.
func RequireDraftToken(service Service) gin.HandlerFunc {
	return requireToken(DraftTokenHeader, "draft", "draft_id", service.AuthorizeDraft)
}

func requireToken(header, resource, key string, authorize func(string, uuid.UUID) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(header)
		if token == "" {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			api.BadRequestResponse(c, "Invalid "+resource+" ID format")
			c.Abort()
			return
		}

		if err := authorize(token, id); err != nil {
			if errors.Is(err, models.ErrForbidden) {
				api.ForbiddenResponse(c, "Token was not issued for this "+resource)
			} else {
				api.UnauthorizedResponse(c)
			}
			c.Abort()
			return
		}

		c.Set(key, id)
		c.Next()
	}
}
