package main

import (
	"log"

	"studiodesk/internal/config"
	"studiodesk/internal/database"
	"studiodesk/internal/middleware"
	"studiodesk/internal/modules/admin"
	"studiodesk/internal/modules/attendance"
	"studiodesk/internal/modules/auth"
	"studiodesk/internal/modules/booking"
	"studiodesk/internal/modules/catalog"
	"studiodesk/internal/modules/clients"
	"studiodesk/internal/modules/finance"
	"studiodesk/internal/modules/projects"
	"studiodesk/internal/modules/schedule"
	jwtsvc "studiodesk/internal/pkg/jwt"
	"studiodesk/internal/pkg/logger"
	"studiodesk/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connect failed", zap.Error(err))
	}
	if err := database.Migrate(db, cfg.DatabaseURL); err != nil {
		zlog.Fatal("database migrate failed", zap.Error(err))
	}

	jwt := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	bookingRepo := repository.NewBookingRepository(db)
	studioRepo := repository.NewStudioRepository(db)
	clientRepo := repository.NewClientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	userRepo := repository.NewUserRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	blockedIPRepo := repository.NewBlockedIPRepository(db)

	hub := schedule.NewHub(zlog)
	defer hub.Close()

	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, studioRepo, hub))
	clientsHandler := clients.NewHandler(clients.NewService(clientRepo))
	projectsHandler := projects.NewHandler(projects.NewService(projectRepo, clientRepo))
	attendanceHandler := attendance.NewHandler(attendance.NewService(attendanceRepo))
	financeHandler := finance.NewHandler(finance.NewService(invoiceRepo, expenseRepo, clientRepo))
	authHandler := auth.NewHandler(auth.NewService(userRepo, jwt))
	adminHandler := admin.NewHandler(admin.NewService(userRepo, departmentRepo, blockedIPRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(studioRepo))
	scheduleHandler := schedule.NewHandler(hub, zlog)

	if cfg.AppEnv == "prod" || cfg.AppEnv == "production" || cfg.AppEnv == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.IPBlock(blockedIPRepo, zlog))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	authHandler.RegisterPublicRoutes(api)
	bookingHandler.RegisterPublicRoutes(api)
	catalogHandler.RegisterPublicRoutes(api)

	protected := api.Group("", middleware.Auth(jwt))
	authHandler.RegisterRoutes(protected)
	bookingHandler.RegisterRoutes(protected)
	clientsHandler.RegisterRoutes(protected)
	projectsHandler.RegisterRoutes(protected)
	attendanceHandler.RegisterRoutes(protected)
	financeHandler.RegisterRoutes(protected)
	scheduleHandler.RegisterRoutes(protected)

	adminGroup := protected.Group("/admin", middleware.AdminOnly())
	adminHandler.RegisterRoutes(adminGroup)
	catalogHandler.RegisterAdminRoutes(adminGroup)

	zlog.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server exited", zap.Error(err))
	}
}
