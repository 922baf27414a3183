package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kherrera/devfolio/config"
	"github.com/kherrera/devfolio/internal/api/handlers"
	"github.com/kherrera/devfolio/internal/api/middleware"
	"github.com/kherrera/devfolio/internal/api/routes"
	"github.com/kherrera/devfolio/internal/cache"
	"github.com/kherrera/devfolio/internal/logger"
	pgrepo "github.com/kherrera/devfolio/internal/repositories/postgres"
	"github.com/kherrera/devfolio/internal/services"
)

func main() {
	_ = godotenv.Load()

	l := logger.New()

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := config.MigratePostgres(); err != nil {
		log.Fatalf("PostgreSQL migrate error: %v", err)
	}
	l.Info("PostgreSQL connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	l.Info("Redis connected")

	db := config.PostgresDB
	redisCache := cache.NewRedisCache(config.RedisClient)

	profileRepo := pgrepo.NewProfileRepo(db)
	skillRepo := pgrepo.NewSkillRepo(db)
	projectRepo := pgrepo.NewProjectRepo(db)
	workRepo := pgrepo.NewWorkRepo(db)
	searchRepo := pgrepo.NewSearchRepo(db)

	authSvc := services.NewAuthService(services.AuthConfig{
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          12 * time.Hour,
	})

	deps := routes.Deps{
		Auth:    handlers.NewAuthHandler(authSvc),
		Profile: handlers.NewProfileHandler(services.NewProfileService(profileRepo, redisCache)),
		Skill:   handlers.NewSkillHandler(services.NewSkillService(skillRepo)),
		Project: handlers.NewProjectHandler(services.NewProjectService(projectRepo, skillRepo)),
		Work:    handlers.NewWorkHandler(services.NewWorkService(workRepo)),
		Search:  handlers.NewSearchHandler(services.NewSearchService(searchRepo)),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length", "X-Request-Id"},
	}))
	r.Use(middleware.RequestLogger(l))

	routes.RegisterRoutes(r, deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
