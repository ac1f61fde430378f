package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/listeners"
	"gearguard/internal/repositories"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/filestorage"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
	"gearguard/pkg/websocket"
)

// InitRouter wires repositories, services and controllers onto the echo
// instance. Everything hangs off /api; all routes except auth and the
// websocket upgrade require a valid access token.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	hub *websocket.Hub,
	jwtSvc service.JWTService,
	cfg *config.Config,
	logger *zap.Logger,
) error {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Storage.BasePath)
	if err != nil {
		return err
	}

	bus := eventbus.New(logger)
	txRunner := repositories.NewTxRunner(dbConn)

	// repositories
	profileRepo := repositories.NewProfileRepository(dbConn)
	cacheRepo := repositories.NewCacheRepository(redisClient)
	teamRepo := repositories.NewTeamRepository(dbConn)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	workCenterRepo := repositories.NewWorkCenterRepository(dbConn)
	technicianRepo := repositories.NewTechnicianRepository(dbConn)
	requestRepo := repositories.NewRequestRepository(dbConn)
	notificationRepo := repositories.NewNotificationRepository(dbConn)

	// services
	feed := services.NewChangeFeed(hub, logger)
	authService := services.NewAuthService(profileRepo, cacheRepo, jwtSvc, fileStorage, cfg.Storage.AvatarBucket, logger)
	teamService := services.NewTeamService(teamRepo, feed, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, feed, logger)
	workCenterService := services.NewWorkCenterService(workCenterRepo, feed, logger)
	technicianService := services.NewTechnicianService(technicianRepo, feed, logger)
	requestService := services.NewRequestService(requestRepo, technicianService, cacheRepo, bus, feed, logger)
	boardService := services.NewBoardService(requestRepo, equipmentRepo, txRunner, cacheRepo, bus, feed, logger)
	reportService := services.NewReportService(requestRepo, cacheRepo, logger)
	notificationService := services.NewNotificationService(notificationRepo, hub, logger)

	listeners.NewNotificationListener(notificationService, logger).Register(bus)

	// controllers
	authCtrl := controllers.NewAuthController(authService, logger)
	teamCtrl := controllers.NewTeamController(teamService, logger)
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	workCenterCtrl := controllers.NewWorkCenterController(workCenterService, logger)
	technicianCtrl := controllers.NewTechnicianController(technicianService, logger)
	requestCtrl := controllers.NewRequestController(requestService, logger)
	boardCtrl := controllers.NewBoardController(boardService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)
	notificationCtrl := controllers.NewNotificationController(notificationService, logger)
	wsCtrl := controllers.NewWebsocketController(hub, jwtSvc, cfg.Server.AllowOrigins, logger)

	secure := api.Group("", authMW.Auth)

	runAuthRouter(api, secure, authCtrl)
	runTeamRouter(secure, teamCtrl)
	runEquipmentRouter(secure, equipmentCtrl)
	runWorkCenterRouter(secure, workCenterCtrl)
	runTechnicianRouter(secure, technicianCtrl)
	runRequestRouter(secure, requestCtrl)
	runBoardRouter(secure, boardCtrl)
	runReportRouter(secure, reportCtrl)
	runNotificationRouter(secure, notificationCtrl)

	api.GET("/ws", wsCtrl.Serve)

	logger.Info("router initialized")
	return nil
}
