package main

import (
	"log"

	"github.com/joho/godotenv"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"auth-service/internal/application/services"
	"auth-service/internal/config"
	"auth-service/internal/delivery/handler"
	"auth-service/internal/infrastructure"
	"auth-service/internal/infrastructure/db/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	db, err := gorm.Open(gormpostgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	if err := db.AutoMigrate(&postgres.UserModel{}); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	userRepo := postgres.NewUserRepository(db)
	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.JWTExpiresIn)
	profileCache := infrastructure.NewProfileCache(cfg.RedisURL)
	authService := services.NewAuthService(userRepo, jwtService, profileCache)

	authHandler := handler.NewAuthHandler(authService)
	healthHandler := handler.NewHealthHandler(db)

	e := handler.NewRouter(authHandler, healthHandler, jwtService, cfg.RateLimitRPS)

	log.Printf("server listening on :%s", cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
