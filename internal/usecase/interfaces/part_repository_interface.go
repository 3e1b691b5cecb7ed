package interfaces

import (
	"context"

	"autopecas_api/internal/domain/entities"
)

// IPartRepository abstracts DynamoDB persistence for Part.
//
// Existence semantics follow the table conventions:
//   - GetByID returns a zero-value Part (empty ID) when the id is absent.
//   - Create is an unconditional put; Update/Delete assume the caller has
//     already confirmed existence. There is no atomic check-and-set, so
//     concurrent writers are last-writer-wins.
type IPartRepository interface {
	Create(ctx context.Context, p entities.Part) (entities.Part, error)
	GetByID(ctx context.Context, id string) (entities.Part, error)
	ListAll(ctx context.Context) ([]entities.Part, error)
	Update(ctx context.Context, id string, change entities.PartChange) (entities.Part, error)
	Delete(ctx context.Context, id string) error
}
