package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextUserID = "userID"

// RequireUser resolves the requesting user from the X-User-ID header.
//
// Authentication itself happens in the proxy in front of the backend;
// this middleware only enforces that the header it sets is present and
// a valid UUID. Unknown users are provisioned on first request.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader("X-User-ID"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, httpError{
				Error: errUserIDRequired.Error(),
			})
			return
		}

		err = models.DB.
			Where(models.User{DefaultModel: models.DefaultModel{ID: id}}).
			FirstOrCreate(&models.User{}).Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, httpError{
				Error: models.ErrGeneral.Error(),
			})
			return
		}

		c.Set(contextUserID, id)
	}
}

// currentUser returns the user ID set by RequireUser.
func currentUser(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUserID).(uuid.UUID)
}
