package middleware

import (
	"net/http"
	"time"

	"github.com/lnbits/satspay/pkg/apperror"
	"github.com/lnbits/satspay/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	// HeaderAPIKey carries the caller's wallet API key.
	HeaderAPIKey = "X-Api-Key"

	// CtxUser is the authenticated caller identity. The instance is
	// single-tenant; every authenticated caller acts as the operator.
	CtxUser = "user"

	operatorUser = "operator"
)

// Keys holds the accepted API keys. The admin key implies invoice access.
type Keys struct {
	InvoiceKey string
	AdminKey   string
}

// APIKeyAuth verifies the invoice key (or admin key) on payment endpoints.
func APIKeyAuth(keys Keys) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAPIKey)
		if key == "" || (key != keys.InvoiceKey && key != keys.AdminKey) {
			response.Error(c, apperror.ErrInvalidAPIKey())
			c.Abort()
			return
		}
		c.Set(CtxUser, operatorUser)
		c.Next()
	}
}

// AdminKeyAuth verifies the admin key on mutating endpoints.
func AdminKeyAuth(keys Keys) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAPIKey)
		if key == "" {
			response.Error(c, apperror.ErrInvalidAPIKey())
			c.Abort()
			return
		}
		if key != keys.AdminKey {
			response.Error(c, apperror.ErrAdminKeyRequired())
			c.Abort()
			return
		}
		c.Set(CtxUser, operatorUser)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize returns middleware that limits the request body size. Reads
// past the limit fail, so oversized payloads surface as binding errors.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
