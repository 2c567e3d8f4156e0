package server

import (
	"strings"
	"time"

	"anoa.com/certdash/internal/config"
	"anoa.com/certdash/internal/middleware"

	certificateHttp "anoa.com/certdash/internal/modules/certificate/delivery/http"
	certificateRepo "anoa.com/certdash/internal/modules/certificate/repository"
	certificateService "anoa.com/certdash/internal/modules/certificate/service"

	profileHttp "anoa.com/certdash/internal/modules/profile/delivery/http"
	profileService "anoa.com/certdash/internal/modules/profile/service"

	studentHttp "anoa.com/certdash/internal/modules/student/delivery/http"
	studentRepo "anoa.com/certdash/internal/modules/student/repository"
	studentService "anoa.com/certdash/internal/modules/student/service"

	templateHttp "anoa.com/certdash/internal/modules/template/delivery/http"
	templateRepo "anoa.com/certdash/internal/modules/template/repository"
	templateService "anoa.com/certdash/internal/modules/template/service"

	verificationHttp "anoa.com/certdash/internal/modules/verification/delivery/http"
	verificationRepo "anoa.com/certdash/internal/modules/verification/repository"
	verificationService "anoa.com/certdash/internal/modules/verification/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	studentRepository := studentRepo.NewStudentRepository(db)
	studentSvc := studentService.NewStudentService(studentRepository)
	studentHandler := studentHttp.NewStudentHandler(studentSvc)

	templateRepository := templateRepo.NewTemplateRepository(db)
	templateSvc := templateService.NewTemplateService(templateRepository)
	templateHandler := templateHttp.NewTemplateHandler(templateSvc)

	certificateRepository := certificateRepo.NewCertificateRepository(db)
	certificateSvc := certificateService.NewCertificateService(certificateRepository, studentRepository, templateRepository)
	certificateHandler := certificateHttp.NewCertificateHandler(certificateSvc)

	verificationRepository := verificationRepo.NewVerificationRepository(db)
	verificationSvc := verificationService.NewVerificationService(verificationRepository)
	verificationHandler := verificationHttp.NewVerificationHandler(verificationSvc)

	profileSvc := profileService.NewProfileService(profileService.TenantProfile{
		FullName:         cfg.ProfileFullName,
		OrganizationName: cfg.ProfileOrganization,
		Email:            cfg.ProfileEmail,
	})
	profileHandler := profileHttp.NewProfileHandler(profileSvc)

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.QueryTimeout(cfg.QueryTimeout))

	api := router.Group("/api")
	{
		api.GET("/students", studentHandler.GetAllStudents)
		api.POST("/students", studentHandler.CreateStudent)
		api.GET("/students/:id", studentHandler.GetStudentByID)
		api.PUT("/students/:id", studentHandler.UpdateStudent)
		api.DELETE("/students/:id", studentHandler.DeleteStudent)

		api.GET("/templates", templateHandler.GetAllTemplates)
		api.POST("/templates", templateHandler.CreateTemplate)
		api.GET("/templates/:id", templateHandler.GetTemplateByID)
		api.PUT("/templates/:id", templateHandler.UpdateTemplate)
		api.DELETE("/templates/:id", templateHandler.DeleteTemplate)

		api.GET("/certificates", certificateHandler.GetAllCertificates)
		api.POST("/certificates", certificateHandler.IssueCertificates)
		api.GET("/certificates/:id", certificateHandler.GetCertificateByID)
		api.DELETE("/certificates/:id", certificateHandler.DeleteCertificate)

		// Public verification, rate limited when redis is configured
		api.POST("/verify", middleware.VerifyRateLimit(redisClient, cfg.RateLimitVerify), verificationHandler.VerifyCertificate)

		api.GET("/profile", profileHandler.GetProfile)
		api.PUT("/profile", profileHandler.UpdateProfile)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
