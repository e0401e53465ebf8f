package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextRequestIDKey stores the request id inside Gin context.
const ContextRequestIDKey = "request_id"

// RequestID tags every request with a uuid, echoed in the X-Request-ID
// header. Clients correlate it with access log lines; together with the
// envelope token it lets the frontend drop responses from superseded
// navigation requests.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(ContextRequestIDKey, id)
		ctx.Writer.Header().Set("X-Request-ID", id)
		ctx.Next()
	}
}
