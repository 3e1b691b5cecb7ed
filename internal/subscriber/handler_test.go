package subscriber

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"autopecas_api/internal/domain/entities"

	"github.com/aws/aws-lambda-go/events"
	"github.com/shopspring/decimal"
)

func snsRecord(t *testing.T, message string) events.SNSEventRecord {
	t.Helper()
	return events.SNSEventRecord{
		SNS: events.SNSEntity{
			MessageID: "m-1",
			Subject:   "Peça Automotiva - CREATE",
			Timestamp: time.Now().UTC(),
			Message:   message,
		},
	}
}

func validMessage(t *testing.T) string {
	t.Helper()
	raw, err := json.Marshal(entities.ChangeEvent{
		Operation: entities.ChangeOperationCreate,
		Timestamp: time.Now().UTC(),
		Item: entities.Part{
			ID:    "p-1",
			Nome:  "Vela",
			Preco: decimal.RequireFromString("29.90"),
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return string(raw)
}

func TestHandler_Handle(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(new(strings.Builder), nil))

	t.Run("empty batch succeeds", func(t *testing.T) {
		h := NewHandler(logger)
		resp, err := h.Handle(context.Background(), events.SNSEvent{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != 200 {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
	})

	t.Run("valid batch succeeds", func(t *testing.T) {
		h := NewHandler(logger)
		event := events.SNSEvent{Records: []events.SNSEventRecord{
			snsRecord(t, validMessage(t)),
			snsRecord(t, validMessage(t)),
		}}

		resp, err := h.Handle(context.Background(), event)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != 200 {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if !strings.Contains(resp.Body, "Notificação processada com sucesso") {
			t.Fatalf("unexpected body: %s", resp.Body)
		}
	})

	t.Run("one malformed record fails the whole batch", func(t *testing.T) {
		h := NewHandler(logger)
		event := events.SNSEvent{Records: []events.SNSEventRecord{
			snsRecord(t, validMessage(t)),
			snsRecord(t, "{not json"),
		}}

		resp, err := h.Handle(context.Background(), event)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.StatusCode != 500 {
			t.Fatalf("expected 500, got %d", resp.StatusCode)
		}
		var body map[string]string
		if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
			t.Fatalf("body is not valid json: %v", err)
		}
		if body["error"] == "" {
			t.Fatalf("expected error in body, got %s", resp.Body)
		}
	})
}
