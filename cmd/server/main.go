package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/api"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/events"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/model"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/repository"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/s3"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/service"
	"github.com/ananas-wonders/da-academy-schedule-sub000/internal/tracing"
	_ "github.com/ananas-wonders/da-academy-schedule-sub000/migrations"
)

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		fmt.Println("No .env.dev file found, reading from environment variables provided by Docker")
	}

	api.SetupGlobalHandler("schedule-service")

	shutdownTracer, err := tracing.InitTracerProvider("schedule-service")
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		handleMigrations()
		return
	}

	db := connectDB()
	defer db.Close()

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}
	eventPublisher, err := events.NewNatsPublisher(natsURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	log.Println("Successfully connected to NATS.")

	userRepo := repository.NewPostgresUserRepository(db)
	tokenRepo := repository.NewPostgresTokenRepository(db)
	sessionRepo := repository.NewPostgresSessionRepository(db)
	trackRepo := repository.NewPostgresTrackRepository(db)
	groupRepo := repository.NewPostgresTrackGroupRepository(db)
	courseRepo := repository.NewPostgresCourseRepository(db)
	instructorRepo := repository.NewPostgresInstructorRepository(db)
	changeLogRepo := repository.NewPostgresChangeLogRepository(db)

	authService := service.NewAuthService(userRepo, tokenRepo)
	scheduleService := service.NewScheduleService(sessionRepo, eventPublisher)
	trackService := service.NewTrackService(trackRepo, groupRepo, eventPublisher)
	catalogService := service.NewCatalogService(courseRepo, instructorRepo, eventPublisher)

	_, err = events.NewChangeLogSubscriber(natsURL, changeLogRepo)
	if err != nil {
		log.Printf("WARNING: Failed to start change-log subscriber: %v", err)
		// Continue running even if subscriber fails, NATS may not be ready
	}

	var presigner *s3.AvatarPresigner
	if os.Getenv("S3_BUCKET_NAME") != "" {
		presigner, err = s3.NewAvatarPresigner()
		if err != nil {
			log.Printf("WARNING: Failed to initialize S3 presigner: %v", err)
		}
	}

	authHandler := api.NewAuthHandler(authService)
	scheduleHandler := api.NewScheduleHandler(scheduleService)
	trackHandler := api.NewTrackHandler(trackService)
	catalogHandler := api.NewCatalogHandler(catalogService, presigner)

	app := fiber.New()
	app.Use(otelfiber.Middleware())
	app.Use(api.PrometheusMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "schedule-service"})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.Refresh)
	authRoutes.Post("/logout", authHandler.Logout)

	userRoutes := v1.Group("/users")
	userRoutes.Use(api.AuthMiddleware())
	userRoutes.Get("/me", authHandler.GetUserProfile)
	userRoutes.Post("/me/device-token", authHandler.RegisterDeviceToken)
	userRoutes.Put("/:id/role", api.RequireRole(model.RoleAdmin), authHandler.AssignRole)

	// every authenticated role can read the grid
	canRead := api.RequireRole(model.RoleAdmin, model.RoleEditor, model.RoleViewer)
	canWrite := api.RequireRole(model.RoleAdmin, model.RoleEditor)

	scheduleRoutes := v1.Group("/schedule")
	scheduleRoutes.Use(api.AuthMiddleware())
	scheduleRoutes.Get("/days", canRead, scheduleHandler.GetDays)
	scheduleRoutes.Get("/sessions", canRead, scheduleHandler.ListSessions)
	scheduleRoutes.Get("/sessions/occupied", canRead, scheduleHandler.GetOccupiedSlots)
	scheduleRoutes.Get("/sessions/:id", canRead, scheduleHandler.GetSession)
	scheduleRoutes.Post("/sessions", canWrite, scheduleHandler.CreateSession)
	scheduleRoutes.Put("/sessions/:id", canWrite, scheduleHandler.UpdateSession)
	scheduleRoutes.Delete("/sessions/:id", canWrite, scheduleHandler.DeleteSession)

	trackRoutes := v1.Group("/tracks")
	trackRoutes.Use(api.AuthMiddleware())
	trackRoutes.Get("/", canRead, trackHandler.ListTracks)
	trackRoutes.Post("/", canWrite, trackHandler.CreateTrack)
	trackRoutes.Put("/reorder", canWrite, trackHandler.ReorderTracks)
	trackRoutes.Put("/:id", canWrite, trackHandler.UpdateTrack)
	trackRoutes.Delete("/:id", canWrite, trackHandler.DeleteTrack)

	groupRoutes := v1.Group("/track-groups")
	groupRoutes.Use(api.AuthMiddleware())
	groupRoutes.Get("/", canRead, trackHandler.ListGroups)
	groupRoutes.Post("/", canWrite, trackHandler.CreateGroup)
	groupRoutes.Put("/:id", canWrite, trackHandler.UpdateGroup)
	groupRoutes.Delete("/:id", canWrite, trackHandler.DeleteGroup)

	courseRoutes := v1.Group("/courses")
	courseRoutes.Use(api.AuthMiddleware())
	courseRoutes.Get("/", canRead, catalogHandler.ListCourses)
	courseRoutes.Post("/", canWrite, catalogHandler.CreateCourse)
	courseRoutes.Put("/:id", canWrite, catalogHandler.UpdateCourse)
	courseRoutes.Delete("/:id", canWrite, catalogHandler.DeleteCourse)

	instructorRoutes := v1.Group("/instructors")
	instructorRoutes.Use(api.AuthMiddleware())
	instructorRoutes.Get("/", canRead, catalogHandler.ListInstructors)
	instructorRoutes.Post("/", canWrite, catalogHandler.CreateInstructor)
	instructorRoutes.Post("/:id/avatar-url", canWrite, catalogHandler.GetAvatarUploadURL)
	instructorRoutes.Put("/:id", canWrite, catalogHandler.UpdateInstructor)
	instructorRoutes.Delete("/:id", canWrite, catalogHandler.DeleteInstructor)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8001"
	}

	log.Printf("Listening schedule-service on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func connectDB() *sqlx.DB {
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPassword, dbHost, dbPort, dbName,
	)

	db, err := sqlx.Connect("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Successfully connected to the database.")
	return db
}

func handleMigrations() {
	fmt.Println("Running database migrations...")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")

	dbURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPassword, dbHost, dbPort, dbName,
	)

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("failed to connect to database for migration: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set goose dialect: %v", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatalf("goose: failed to run migrations: %v", err)
	}

	fmt.Println("Migrations applied successfully!")
}
