package api

import (
	"log"

	"github.com/InternHub/internhub-backend/config"
	"github.com/InternHub/internhub-backend/infra/queue"
	"github.com/InternHub/internhub-backend/internal/api/rest/handlers"
	"github.com/InternHub/internhub-backend/internal/domain"
	"github.com/InternHub/internhub-backend/internal/helper"
	"github.com/InternHub/internhub-backend/internal/repository"
	"github.com/InternHub/internhub-backend/internal/services"
	"github.com/InternHub/internhub-backend/pkg/cloudinary"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260901

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Role{},
		&domain.UserRole{},
		&domain.StudentProfile{},
		&domain.RecruiterProfile{},
		&domain.Listing{},
		&domain.Application{},
		&domain.CommunityPost{},
		&domain.AuditLog{},
		&domain.Notification{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	seedRoles(db)

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	cld, err := cloudinary.New()
	if err != nil {
		log.Fatalf("cloudinary init error: %v", err)
	}
	up := cloudinary.NewCloudinaryUploader(cld)

	authHelper := helper.SetupAuth(cfg.AccessSecret)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	userRoleRepo := repository.NewUserRoleRepository(db)
	studentRepo := repository.NewStudentProfileRepository(db)
	recruiterRepo := repository.NewRecruiterProfileRepository(db)
	listingRepo := repository.NewListingRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	communityRepo := repository.NewCommunityPostRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// ---------- Services ----------
	userSvc := services.NewUserService(
		userRepo,
		roleRepo,
		userRoleRepo,
		studentRepo,
		recruiterRepo,
		authHelper,
		kafkaProducer,
	)
	listingSvc := services.NewListingService(listingRepo, cfg.ListingsRequireVerified)
	applicationSvc := services.NewApplicationService(
		applicationRepo,
		listingRepo,
		userRepo,
		auditRepo,
		kafkaProducer,
	)
	adminSvc := services.NewAdminService(recruiterRepo, auditRepo, kafkaProducer)
	communitySvc := services.NewCommunityService(communityRepo)
	notificationSvc := services.NewNotificationService(notificationRepo)

	// ---------- Handlers ----------
	handlers.NewUserHandler(userSvc, authHelper).SetupRoutes(app)
	handlers.NewListingHandler(listingSvc, userSvc, authHelper).SetupRoutes(app)
	handlers.NewApplicationHandler(applicationSvc, userSvc, authHelper).SetupRoutes(app)
	handlers.NewAdminHandler(adminSvc, userSvc, authHelper).SetupRoutes(app)
	handlers.NewCommunityHandler(communitySvc, authHelper).SetupRoutes(app)
	handlers.NewUploadHandler(up, userSvc, authHelper).SetupRoutes(app)
	handlers.NewNotificationHandler(notificationSvc, authHelper).SetupRoutes(app)

	// ---------- Notification consumer ----------
	if cfg.KafkaGroupID != "" {
		consumer := queue.NewKafkaConsumer(
			cfg.KafkaBroker,
			cfg.KafkaTopic,
			cfg.KafkaGroupID,
			cfg.KafkaUsername,
			cfg.KafkaPassword,
			notificationSvc,
		)
		go consumer.Listen()
	}

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

func seedRoles(db *gorm.DB) {
	codes := []string{domain.RoleAdmin, domain.RoleStudent, domain.RoleRecruiter}

	for _, code := range codes {
		var r domain.Role
		err := db.Where("code = ?", code).First(&r).Error
		if err == gorm.ErrRecordNotFound {
			_ = db.Create(&domain.Role{
				Code: code,
				Name: code,
			}).Error
		}
	}
}
