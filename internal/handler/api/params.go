package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/handler/httperr"
	"gin-jewelry-b2b/internal/handler/middleware"
	"gin-jewelry-b2b/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

var errUnknownStatus = errors.New("unknown status filter")

func actorOrAbort(c *gin.Context) (user.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthorized, "Unauthorized", nil)
		return user.Actor{}, false
	}
	return actor, true
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = strconv.ErrRange
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// bindOptionalJSON accepts an empty body as the zero value of v.
func bindOptionalJSON(c *gin.Context, v any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return false
	}
	return true
}

func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit := defaultPageSize
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}
