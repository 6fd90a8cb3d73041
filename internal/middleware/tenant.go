package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TenantHeader names the header carrying the caller's tenant identifier.
// The value is trusted as-is; it scopes data, it does not authenticate.
const TenantHeader = "X-User-ID"

// TenantMiddleware copies the tenant identifier from TenantHeader into the
// Gin context and the request context, and rejects requests without one.
func TenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tenantID := strings.TrimSpace(c.GetHeader(TenantHeader))
		if tenantID == "" {
			logger.Warn("Tenant header missing", slog.String("header", TenantHeader))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "missing_tenant",
				"message": TenantHeader + " header is required",
			})
			return
		}

		enrichedLogger := logger.With(slog.String("tenant_id", tenantID))
		ctx := WithLogger(WithTenantID(c.Request.Context(), tenantID), enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(tenantIDKey), tenantID)

		c.Next()
	}
}
