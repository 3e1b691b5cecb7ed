package messaging

import (
	"context"
	"log"
	"os"

	"autopecas_api/internal/infrastructure/awsconfig"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// ConnectSNS creates the SNS client used as the notification-topic handle.
// SNS_ENDPOINT (optional; e.g. a LocalStack URL) overrides the endpoint for
// local runs.
func ConnectSNS() *sns.Client {
	cfg, err := awsconfig.Load(context.Background())
	if err != nil {
		log.Fatalf("failed to create sns config: %v", err)
	}

	endpoint := os.Getenv("SNS_ENDPOINT")
	return sns.NewFromConfig(cfg, func(o *sns.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
