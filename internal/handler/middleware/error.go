package middleware

import (
	"log/slog"
	"net/http"

	"gin-jewelry-b2b/internal/handler/httperr"
	"gin-jewelry-b2b/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 5

// ErrorHandler logs the cause of every 5xx and answers for handlers that
// recorded an error without writing a response.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		if c.Writer.Written() {
			if c.Writer.Status() >= http.StatusInternalServerError {
				logFailure(logger, c, last.Err)
			}
			return
		}

		if resp, ok := last.Meta.(httperr.Response); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if httperr.StatusFor(last.Err) >= http.StatusInternalServerError {
			logFailure(logger, c, last.Err)
		}
		httperr.Abort(c, last.Err, "Internal server error")
	}
}

func logFailure(logger *slog.Logger, c *gin.Context, err error) {
	logger.Error("request failed",
		"request_id", GetRequestID(c),
		"route", c.FullPath(),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, stackLinesLogged))
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"panic", rec,
					"path", c.Request.URL.Path)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
