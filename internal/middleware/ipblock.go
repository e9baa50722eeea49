package middleware

import (
	"context"
	"net/http"

	"studiodesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BlockStore is the injected lookup behind the IP filter. Backed by a
// relational table so blocks survive restarts and apply across replicas.
type BlockStore interface {
	IsBlocked(ctx context.Context, ip string) (bool, error)
}

// IPBlock rejects requests from blocked client IPs. Store failures are
// logged and the request is allowed through; the filter is a tripwire, not
// the authentication boundary.
func IPBlock(store BlockStore, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		blocked, err := store.IsBlocked(c.Request.Context(), ip)
		if err != nil {
			log.Warn("ip block lookup failed", zap.String("ip", ip), zap.Error(err))
			c.Next()
			return
		}

		if blocked {
			response.Error(c, http.StatusForbidden, "IP_BLOCKED", "Access denied")
			c.Abort()
			return
		}

		c.Next()
	}
}
