package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/jaribu/attendance-api/docs"
	v1 "github.com/jaribu/attendance-api/internal/api/handler/v1"
	"github.com/jaribu/attendance-api/internal/api/middleware"
	"github.com/jaribu/attendance-api/internal/config"
	"github.com/jaribu/attendance-api/internal/notification"
	"github.com/jaribu/attendance-api/internal/policy"
	"github.com/jaribu/attendance-api/internal/qr"
	"github.com/jaribu/attendance-api/internal/repository"
	"github.com/jaribu/attendance-api/internal/repository/dao"
	"github.com/jaribu/attendance-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	// Sessions is exposed so the app can bootstrap the configured session
	// rows before serving.
	Sessions *service.SessionService
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	plan := conf.ClassroomPlan

	participantRepo := repository.NewParticipantRepository(dao.NewParticipantDAO(db))
	sessionRepo := repository.NewSessionRepository(dao.NewSessionDAO(db))
	requestRepo := repository.NewReassignmentRepository(dao.NewReassignmentDAO(db))
	attendanceRepo := repository.NewAttendanceRepository(dao.NewAttendanceDAO(db))

	capacity := service.NewCapacity(participantRepo, plan)
	sessionSvc := service.NewSessionService(sessionRepo, capacity, plan)
	s.Sessions = sessionSvc

	var notifier service.Notifier = notification.NoopSender{}
	if conf.Mail.Enabled {
		notifier = notification.NewSMTPSender(conf.Mail)
	}

	participantSvc := service.NewParticipantService(participantRepo, sessionSvc, plan, qr.NewGenerator(conf.Course.QRCodeDir))
	verificationSvc := service.NewVerificationService(participantRepo, sessionRepo, attendanceRepo)
	reassignmentSvc := service.NewReassignmentService(participantRepo, sessionRepo, requestRepo, capacity, plan, notifier)

	authHandler := s.initAuthHandler(db)
	checkInHandler := v1.NewCheckInHandler(verificationSvc, sessionSvc)
	sessionHandler := v1.NewSessionHandler(sessionSvc)
	reassignmentHandler := v1.NewReassignmentHandler(reassignmentSvc, participantSvc)
	participantHandler := v1.NewParticipantHandler(participantSvc)

	s.MountHandlers(authHandler, checkInHandler, sessionHandler, reassignmentHandler, participantHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	checkInHandler *v1.CheckInHandler,
	sessionHandler *v1.SessionHandler,
	reassignmentHandler *v1.ReassignmentHandler,
	participantHandler *v1.ParticipantHandler,
) {
	const basePath = "/api/v1"

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)

		// The scanner station and the participant self-service surface are
		// unauthenticated; participants identify themselves by unique id.
		public.GET("/check-in/scanner", checkInHandler.HandleScannerData)
		public.POST("/check-in/verify", checkInHandler.HandleVerifyCheckIn)
		public.GET("/check-in/history/:uniqueID", checkInHandler.HandleAttendanceHistory)

		public.GET("/sessions/available", sessionHandler.HandleAvailableSessions)

		public.POST("/reassignments", reassignmentHandler.HandleCreateRequest)
		public.GET("/reassignments/participant/:uniqueID", reassignmentHandler.HandleListParticipantRequests)
	}

	admin := s.Router.Group(basePath+"/admin", verifyJWT)
	{
		admin.GET("/reassignments/pending",
			middleware.RequirePermission(policy.ActionView, policy.ResourceReassignments),
			reassignmentHandler.HandleListPendingRequests)
		admin.POST("/reassignments/:requestID/process",
			middleware.RequirePermission(policy.ActionProcess, policy.ResourceReassignments),
			reassignmentHandler.HandleProcessRequest)

		admin.POST("/participants",
			middleware.RequirePermission(policy.ActionCreate, policy.ResourceParticipants),
			participantHandler.HandleCreateParticipant)
		admin.GET("/participants/:uniqueID",
			middleware.RequirePermission(policy.ActionView, policy.ResourceParticipants),
			participantHandler.HandleGetParticipant)
		admin.POST("/participants/reset-sessions",
			middleware.RequirePermission(policy.ActionReset, policy.ResourceParticipants),
			participantHandler.HandleResetSessions)
	}

	users := s.Router.Group(basePath, verifyJWT)
	{
		users.POST("/auth/users",
			middleware.RequirePermission(policy.ActionCreate, policy.ResourceUsers),
			authHandler.HandleCreateUser)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Attendance API"
	docs.SwaggerInfo.Description = "Session attendance tracking and reassignment API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
