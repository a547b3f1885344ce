package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/univista/ums-api/api/swagger"
	"github.com/univista/ums-api/internal/handler"
	"github.com/univista/ums-api/internal/middleware"
	"github.com/univista/ums-api/internal/repository"
	"github.com/univista/ums-api/internal/service"
	"github.com/univista/ums-api/pkg/cache"
	"github.com/univista/ums-api/pkg/config"
	"github.com/univista/ums-api/pkg/database"
	"github.com/univista/ums-api/pkg/export"
	"github.com/univista/ums-api/pkg/logger"
	corsmiddleware "github.com/univista/ums-api/pkg/middleware/cors"
	reqidmiddleware "github.com/univista/ums-api/pkg/middleware/requestid"
)

// @title University Management API
// @version 1.0.0
// @description Academic administration backend: accounts, org units and role profiles
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db, cfg.Database.MigrationsDir); err != nil {
		logr.Fatal("failed to run migrations", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, list caching disabled", zap.Error(err))
		}
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	semesterRepo := repository.NewAcademicSemesterRepository(db)
	academicFacultyRepo := repository.NewAcademicFacultyRepository(db)
	academicDepartmentRepo := repository.NewAcademicDepartmentRepository(db)
	managementDepartmentRepo := repository.NewManagementDepartmentRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled && redisClient != nil)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		RefreshTokenSecret: cfg.JWT.RefreshSecret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		BcryptCost:         cfg.Auth.BcryptCost,
	})
	userSvc := service.NewUserService(userRepo, semesterRepo, studentRepo, facultyRepo, adminRepo, validate, logr, service.UserConfig{
		DefaultStudentPassword: cfg.Auth.DefaultStudentPassword,
		DefaultFacultyPassword: cfg.Auth.DefaultFacultyPassword,
		DefaultAdminPassword:   cfg.Auth.DefaultAdminPassword,
		BcryptCost:             cfg.Auth.BcryptCost,
	})
	semesterSvc := service.NewAcademicSemesterService(semesterRepo, cacheSvc, validate, logr)
	academicFacultySvc := service.NewAcademicFacultyService(academicFacultyRepo, validate, logr)
	academicDepartmentSvc := service.NewAcademicDepartmentService(academicDepartmentRepo, validate, logr)
	managementDepartmentSvc := service.NewManagementDepartmentService(managementDepartmentRepo, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, export.NewCSVExporter(), export.NewPDFExporter(), validate, logr)
	facultySvc := service.NewFacultyService(facultyRepo, validate, logr)
	adminSvc := service.NewAdminService(adminRepo, validate, logr)

	handlers := &handler.Handlers{
		Auth:                handler.NewAuthHandler(authSvc, cfg.JWT.RefreshExpiration, cfg.Env == config.EnvProduction),
		Users:               handler.NewUserHandler(userSvc),
		AcademicSemesters:   handler.NewAcademicSemesterHandler(semesterSvc),
		AcademicFaculties:   handler.NewAcademicFacultyHandler(academicFacultySvc),
		AcademicDepartments: handler.NewAcademicDepartmentHandler(academicDepartmentSvc),
		ManagementDeparts:   handler.NewManagementDepartmentHandler(managementDepartmentSvc),
		Students:            handler.NewStudentHandler(studentSvc),
		Faculties:           handler.NewFacultyHandler(facultySvc),
		Admins:              handler.NewAdminHandler(adminSvc),
		AuthService:         authSvc,
		Metrics:             metricsSvc,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	handlers.Register(r, cfg.APIPrefix)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
