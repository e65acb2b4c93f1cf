package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/news-api/internal/apperror"
	"github.com/rs/zerolog"
)

const (
	msgBadRequest    = "Bad Request"
	msgInternalError = "Internal Server Error"
	msgPathNotFound  = "Path Not Found"
)

// PostgreSQL error codes reported to the client as a bad request
var badRequestCodes = map[pq.ErrorCode]bool{
	"22P02": true, // invalid_text_representation
	"22003": true, // numeric_value_out_of_range
	"23502": true, // not_null_violation
	"23503": true, // foreign_key_violation
	"23514": true, // check_violation
}

// errorMiddleware writes the response for the last error a handler
// attached with c.Error
func errorMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, msg := classify(err)
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("Unhandled error")
		}
		c.AbortWithStatusJSON(status, gin.H{"msg": msg})
	}
}

// classify maps err to a status and client-facing message
func classify(err error) (int, string) {
	if appErr, ok := apperror.As(err); ok {
		return appErr.Status, appErr.Msg
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && badRequestCodes[pqErr.Code] {
		return http.StatusBadRequest, msgBadRequest
	}

	return http.StatusInternalServerError, msgInternalError
}

func notFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"msg": msgPathNotFound})
}
