package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/smartfinance/backend/internal/models"
	ez_uuid "github.com/smartfinance/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// ContextUser is the gin context key the user middleware stores the
// resolved user under.
const ContextUser = "user"

// currentUser returns the user the middleware resolved for this request.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(ContextUser).(models.User)
}
