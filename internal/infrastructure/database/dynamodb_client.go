package database

import (
	"context"
	"log"
	"os"

	"autopecas_api/internal/infrastructure/awsconfig"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates the DynamoDB client used as the persistence
// handle. DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000 or a
// LocalStack URL) overrides the endpoint for local runs.
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := awsconfig.Load(context.Background())
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}

	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
