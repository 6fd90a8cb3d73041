package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// tenantIDKey is the key used to store the tenant identifier in both the Gin
// context and the request context.
const tenantIDKey = contextKey("tenantID")

// WithTenantID stores the tenant identifier in ctx.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// TenantIDFromCtx reads the tenant identifier from a standard context.
func TenantIDFromCtx(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(tenantIDKey).(string)
	return tenantID, ok && tenantID != ""
}

// GetTenantIDFromContext retrieves the tenant identifier from the Gin context.
// It returns the tenant ID and a boolean indicating if it was found.
func GetTenantIDFromContext(c *gin.Context) (string, bool) {
	tenantIDVal, exists := c.Get(string(tenantIDKey))
	if !exists {
		// check in the request context as well
		return TenantIDFromCtx(c.Request.Context())
	}

	tenantID, ok := tenantIDVal.(string)
	if !ok || tenantID == "" {
		return "", false
	}

	return tenantID, true
}
