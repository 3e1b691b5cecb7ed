// Package subscriber consumes SNS change notifications and logs them. It is
// the end of the line: nothing downstream treats these events as a system
// of record.
package subscriber

import (
	"context"
	"encoding/json"
	"log/slog"

	"autopecas_api/internal/domain/entities"

	"github.com/aws/aws-lambda-go/events"
)

// Response is the invocation result envelope.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Handler processes SNS notification batches.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a new subscriber handler.
func NewHandler(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger}
}

// Handle logs a structured summary for every record in the batch. A parse
// failure on any record fails the whole invocation; records are not
// isolated from each other. If per-record isolation is ever wanted, this is
// the loop to change.
func (h *Handler) Handle(ctx context.Context, event events.SNSEvent) (Response, error) {
	for _, record := range event.Records {
		msg := record.SNS

		var envelope entities.ChangeEvent
		if err := json.Unmarshal([]byte(msg.Message), &envelope); err != nil {
			h.logger.Error("failed to parse notification",
				"messageID", msg.MessageID,
				"error", err,
			)
			return errorResponse(err), nil
		}

		item, err := json.Marshal(envelope.Item)
		if err != nil {
			return errorResponse(err), nil
		}

		h.logger.Info("notification received",
			"subject", msg.Subject,
			"snsTimestamp", msg.Timestamp,
			"operation", envelope.Operation,
			"eventTimestamp", envelope.Timestamp,
			"item", json.RawMessage(item),
		)
	}

	body, _ := json.Marshal(map[string]string{"message": "Notificação processada com sucesso"})
	return Response{StatusCode: 200, Body: string(body)}, nil
}

func errorResponse(err error) Response {
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	return Response{StatusCode: 500, Body: string(body)}
}
