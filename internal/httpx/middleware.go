package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MikeMC777/catalog-gateway/internal/product"
	"github.com/MikeMC777/catalog-gateway/pkg/logger"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates or mints a request id and scopes a logger to it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set(HeaderRequestID, rid)

		ctx := logger.WithFields(c.Request.Context(), map[string]interface{}{"rid": rid})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info(c.Request.Context()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("dur", time.Since(start)).
			Msg("http")
	}
}

// CORS lets browser front-ends read the JSON endpoints.
func CORS(origin string) gin.HandlerFunc {
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control, X-Requested-With, "+HeaderRequestID)
		h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		h.Set("Access-Control-Expose-Headers", HeaderRequestID)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Error writes {"error": msg} and stops the handler chain.
func Error(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, product.HTTPError{Error: msg})
}

// NotFound answers unmatched routes with the JSON error shape.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		Error(c, http.StatusNotFound, "Not found")
	}
}
