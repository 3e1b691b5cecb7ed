package main

import (
	_ "autopecas_api/docs"
	"autopecas_api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Auto Parts Inventory API
// @version         1.0
// @description     CRUD API for automotive parts (peças automotivas) backed by DynamoDB, with SNS change notifications.

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
