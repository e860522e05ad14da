package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"company_crud/internal/audit"
)

func ListAudit(rec *audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := audit.Query{Limit: audit.DefaultLimit}
		if limitStr := c.Query("limit"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= audit.MaxLimit {
				q.Limit = parsed
			}
		}
		if cursorStr := c.Query("after_id"); cursorStr != "" {
			if parsed, err := strconv.ParseInt(cursorStr, 10, 64); err == nil && parsed > 0 {
				q.AfterID = parsed
			}
		}
		q.Search = strings.TrimSpace(c.Query("q"))

		page, err := rec.List(c.Request.Context(), q)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}
