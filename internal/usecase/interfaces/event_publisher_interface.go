package interfaces

import (
	"context"

	"autopecas_api/internal/domain/entities"
)

// IEventPublisher abstracts the notification topic. Publish is best-effort:
// callers must treat a returned error as log-and-continue, never as a
// request failure.
type IEventPublisher interface {
	Publish(ctx context.Context, op entities.ChangeOperation, item entities.Part) error
}
