package main

import (
	"github.com/gin-gonic/gin"

	"github.com/taxbridge/taxbridge/client"
	"github.com/taxbridge/taxbridge/config"
	"github.com/taxbridge/taxbridge/handler"
	"github.com/taxbridge/taxbridge/logger"
	"github.com/taxbridge/taxbridge/service"
	"github.com/taxbridge/taxbridge/store"
)

func main() {
	// Initialize configuration
	cfg := config.Load()

	log := logger.New(cfg.LogLevel)

	// Load the classifier artifact. A missing model is not fatal: the server
	// still serves GST-only processing, and classification requests report
	// the model as unavailable.
	var classifier service.Classifier
	modelClient, err := client.NewModelClient(cfg.ModelPath)
	if err != nil {
		log.Warn().Err(err).Msg("classifier unavailable, serving GST-only processing")
	} else {
		classifier = modelClient
		log.Info().Str("path", cfg.ModelPath).Strs("classes", modelClient.Classes()).Msg("classifier loaded")
	}

	// Initialize persistence
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer st.Close()
	if err := st.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize store")
	}

	// Initialize service layer
	statementService := service.NewStatementService(classifier, log)

	// Initialize handler layer
	statementHandler := handler.NewStatementHandler(statementService, st, log)

	// Setup Gin router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "TaxBridge",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		statements := api.Group("/statements")
		{
			statements.POST("/csv", statementHandler.ClassifyCSV)
			statements.POST("/xlsx", statementHandler.ClassifyXLSX)
			statements.POST("/pdf", statementHandler.ClassifyPDF)
		}
	}

	// Start server
	log.Info().Str("port", cfg.ServerPort).Msg("starting TaxBridge service")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
