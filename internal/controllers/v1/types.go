package v1

import (
	"time"

	app_uuid "github.com/centsible/backend/internal/uuid"
)

type URIID struct {
	ID app_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryMonth struct {
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" example:"2022-07"` // Year and month in YYYY-MM format
}
