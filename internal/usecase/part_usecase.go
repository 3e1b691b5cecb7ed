package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"autopecas_api/internal/domain/entities"
	"autopecas_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPartNotFound  = errors.New("part not found")
	ErrInvalidPartID = errors.New("invalid part id")
)

// IPartUseCase exposes the inventory CRUD operations.
//
// Sequencing per operation: validate (done at the HTTP boundary) →
// existence check (get/update/delete) → persistence → best-effort publish
// (create/update) → respond. Publish failures never alter an operation's
// outcome.
type IPartUseCase interface {
	CreatePart(ctx context.Context, in entities.NewPart) (entities.Part, error)
	ListParts(ctx context.Context) ([]entities.Part, error)
	GetPart(ctx context.Context, id string) (entities.Part, error)
	UpdatePart(ctx context.Context, id string, change entities.PartChange) (entities.Part, error)
	DeletePart(ctx context.Context, id string) error
}

type PartUseCase struct {
	repo      interfaces.IPartRepository
	publisher interfaces.IEventPublisher
}

var _ IPartUseCase = (*PartUseCase)(nil)

func NewPartUseCase(repo interfaces.IPartRepository, publisher interfaces.IEventPublisher) *PartUseCase {
	return &PartUseCase{repo: repo, publisher: publisher}
}

// CreatePart generates the id and both timestamps, persists the part and
// fires the CREATE notification. There is no prior-existence guard: ids are
// freshly generated, collisions are not a practical concern.
func (u *PartUseCase) CreatePart(ctx context.Context, in entities.NewPart) (entities.Part, error) {
	now := time.Now().UTC()
	part := entities.Part{
		ID:         uuid.NewString(),
		Nome:       in.Nome,
		Codigo:     in.Codigo,
		Preco:      in.Preco,
		Quantidade: in.Quantidade,
		Descricao:  in.Descricao,
		Fabricante: in.Fabricante,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, part)
	if err != nil {
		return entities.Part{}, err
	}

	u.notify(ctx, entities.ChangeOperationCreate, created)
	return created, nil
}

func (u *PartUseCase) ListParts(ctx context.Context) ([]entities.Part, error) {
	return u.repo.ListAll(ctx)
}

func (u *PartUseCase) GetPart(ctx context.Context, id string) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}

	part, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if part.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return part, nil
}

// UpdatePart applies a partial mutation after confirming the id exists.
// The existence check and the write are not atomic: an update racing a
// delete on the same id is last-writer-wins.
func (u *PartUseCase) UpdatePart(ctx context.Context, id string, change entities.PartChange) (entities.Part, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Part{}, ErrInvalidPartID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Part{}, err
	}
	if existing.ID == "" {
		return entities.Part{}, ErrPartNotFound
	}

	updated, err := u.repo.Update(ctx, id, change)
	if err != nil {
		return entities.Part{}, err
	}

	u.notify(ctx, entities.ChangeOperationUpdate, updated)
	return updated, nil
}

func (u *PartUseCase) DeletePart(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPartID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrPartNotFound
	}

	return u.repo.Delete(ctx, id)
}

// notify publishes the change event and absorbs any failure. The adapter
// still returns errors so tests can distinguish transport failures from
// silently broken wiring.
func (u *PartUseCase) notify(ctx context.Context, op entities.ChangeOperation, item entities.Part) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, op, item); err != nil {
		log.Printf("[part][usecase] publish failed op=%s id=%s err=%v", op, item.ID, err)
	}
}
