package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"company_crud/internal/audit"
	"company_crud/internal/hierarchy"
)

// RequestIDKey is the gin context key holding the current request id.
const RequestIDKey = "request_id"

// pathID parses the named path parameter as an entity id, answering 400
// when it is not an integer. Ids that match no row are left to the
// services.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

// fail maps a service error onto its HTTP status.
func fail(c *gin.Context, err error) {
	switch {
	case hierarchy.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case hierarchy.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).
			Str("request_id", c.GetString(RequestIDKey)).
			Str("path", c.FullPath()).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// record appends an audit entry for a successful mutation. Failures are
// logged and never change the response.
func record(c *gin.Context, rec *audit.Recorder, action, entityType string, entityID int64, meta any) {
	if rec == nil {
		return
	}
	e := audit.Entry{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Metadata:   meta,
		IP:         c.ClientIP(),
		UserAgent:  c.GetHeader("User-Agent"),
		RequestID:  c.GetString(RequestIDKey),
	}
	if err := rec.Record(context.WithoutCancel(c.Request.Context()), e); err != nil {
		log.Warn().Err(err).Str("action", action).Int64("entity_id", entityID).Msg("audit log not written")
	}
}
