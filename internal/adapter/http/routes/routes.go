package routes

import (
	"log"
	"strconv"

	_ "autopecas_api/docs" // swag-generated registration
	"autopecas_api/internal/adapter/http/handlers"
	"autopecas_api/internal/adapter/messaging"
	repository2 "autopecas_api/internal/adapter/persistence/repository"
	"autopecas_api/internal/infrastructure/database"
	messaging2 "autopecas_api/internal/infrastructure/messaging"
	"autopecas_api/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	// Store and topic handles are resolved here, once, and injected into
	// every operation. Nothing mutates them after startup.
	ddb := database.ConnectDynamoDB()
	snsClient := messaging2.ConnectSNS()

	partRepo := repository2.NewPartDynamoRepository(ddb)
	publisher := messaging.NewSNSEventPublisher(snsClient)

	partUseCase := usecase.NewPartUseCase(partRepo, publisher)
	partHandler := handlers.NewPartHandler(partUseCase)

	addPingRoutes(router)
	addPartRoutes(router, partHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// corsMiddleware attaches the permissive cross-origin headers every
// response must carry.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
