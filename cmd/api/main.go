package main

import (
	"context"
	"net/http"

	"elections-api/internal/config"
	"elections-api/internal/handler"
	"elections-api/internal/repository"
	"elections-api/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "elections-api/docs"
)

//	@title			Electoral Data API
//	@version		1.0.0
//	@description	Read-only API over Canadian post-secondary voter turnout data.

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)

	voterTurnoutService := service.NewVoterTurnoutService(repo)
	ageGenderService := service.NewAgeGenderTurnoutService(repo)

	voterTurnoutHandler := handler.NewVoterTurnoutHandler(voterTurnoutService)
	ageGenderHandler := handler.NewAgeGenderTurnoutHandler(ageGenderService)

	r := gin.Default()

	// CORS for the dashboard front-end
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORSAllowOrigin},
		AllowMethods:     []string{http.MethodGet},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Electoral Data API",
		})
	})

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})

	r.GET("/api/voter-turnout", voterTurnoutHandler.List)
	r.GET("/api/age-gender-turnout", ageGenderHandler.List)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run(config.ServerAddress)
}
