package middleware

import (
	"net/http"
	"strings"

	"studiodesk/internal/domain"
	jwtsvc "studiodesk/internal/pkg/jwt"
	"studiodesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// Auth validates the bearer token and attaches the resolved actor to the
// request context. Everything downstream reads the actor, never raw claims.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid Authorization header")
			c.Abort()
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Empty token")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		roles := make([]domain.Role, 0, len(claims.Roles))
		for _, r := range claims.Roles {
			roles = append(roles, domain.Role(r))
		}

		c.Set(actorKey, &domain.Actor{
			ID:            claims.UserID,
			Username:      claims.Username,
			Roles:         domain.NewRoleSet(roles...),
			DepartmentIDs: claims.DepartmentIDs,
			ClientID:      claims.ClientID,
		})

		c.Next()
	}
}

// ActorFrom returns the request actor set by Auth.
func ActorFrom(c *gin.Context) (*domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil, false
	}
	a, ok := v.(*domain.Actor)
	return a, ok
}
