package controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"appcenter-datasource-backend/internal/util"
)

const HeaderRequestID = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's when present,
// and logs the request once it completes.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Header(HeaderRequestID, id)
		ctx.Request = ctx.Request.WithContext(util.WithRequestID(ctx.Request.Context(), id))

		start := time.Now()
		ctx.Next()

		log.Debug().
			Str("request_id", id).
			Str("method", ctx.Request.Method).
			Str("path", ctx.FullPath()).
			Int("status", ctx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Handled request")
	}
}
