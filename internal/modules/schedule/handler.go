package schedule

import (
	"net/http"

	"studiodesk/internal/domain"
	"studiodesk/internal/middleware"
	"studiodesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
	log *zap.Logger
}

func NewHandler(hub *Hub, log *zap.Logger) *Handler {
	return &Handler{hub: hub, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/schedule/ws", h.Connect)
}

// Connect upgrades the request and attaches the actor to the live feed.
// Client-role users book through the public surface and have no schedule
// view, so they are rejected here.
func (h *Handler) Connect(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	if actor.Roles.Has(domain.RoleClient) && len(actor.Roles) == 1 {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Schedule feed is staff-only")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.ServeWS(conn, actor.ID)
}
