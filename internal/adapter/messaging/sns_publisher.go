package messaging

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"time"

	"autopecas_api/internal/domain/entities"
	"autopecas_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

const defaultTimeoutSeconds = 5

// SNSEventPublisher publishes ChangeEvent envelopes to an SNS topic.
//
// Delivery is best-effort: no retries, no acknowledgment the caller waits
// on. The use case absorbs any error this adapter returns, so a publish
// failure never changes the outcome of the request that triggered it.
type SNSEventPublisher struct {
	client   *sns.Client
	topicARN string
	timeout  time.Duration
}

var _ interfaces.IEventPublisher = (*SNSEventPublisher)(nil)

func NewSNSEventPublisher(client *sns.Client) *SNSEventPublisher {
	timeout := defaultTimeoutSeconds
	if v := os.Getenv("SNS_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			timeout = n
		}
	}
	return &SNSEventPublisher{
		client:   client,
		topicARN: os.Getenv("SNS_TOPIC_ARN"),
		timeout:  time.Duration(timeout) * time.Second,
	}
}

func (p *SNSEventPublisher) Publish(ctx context.Context, op entities.ChangeOperation, item entities.Part) error {
	if p.topicARN == "" {
		log.Printf("[events][sns] SNS_TOPIC_ARN not configured, skipping publish op=%s id=%s", op, item.ID)
		return nil
	}

	envelope := entities.ChangeEvent{
		Operation: op,
		Timestamp: time.Now().UTC(),
		Item:      item,
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Subject:  aws.String("Peça Automotiva - " + string(op)),
		Message:  aws.String(string(body)),
	})
	if err != nil {
		return err
	}

	log.Printf("[events][sns] published op=%s id=%s", op, item.ID)
	return nil
}
