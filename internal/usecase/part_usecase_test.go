package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"autopecas_api/internal/domain/entities"
	mock_interfaces "autopecas_api/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPartInput() entities.NewPart {
	return entities.NewPart{
		Nome:       "Vela",
		Codigo:     "NGK-1",
		Preco:      decimal.RequireFromString("29.90"),
		Quantidade: 150,
	}
}

func TestPartUseCase_CreatePart(t *testing.T) {
	t.Run("generates id and equal timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewPartUseCase(repo, publisher)

		var persisted entities.Part
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Part) (entities.Part, error) {
				persisted = p
				return p, nil
			})
		publisher.EXPECT().Publish(gomock.Any(), entities.ChangeOperationCreate, gomock.Any()).Return(nil)

		created, err := uc.CreatePart(context.Background(), newPartInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uuid.Parse(created.ID); err != nil {
			t.Fatalf("expected a uuid id, got %q", created.ID)
		}
		if !created.CreatedAt.Equal(created.UpdatedAt) {
			t.Fatalf("expected created_at == updated_at, got %v / %v", created.CreatedAt, created.UpdatedAt)
		}
		if !created.Preco.Equal(decimal.RequireFromString("29.90")) {
			t.Fatalf("expected exact preco, got %s", created.Preco)
		}
		if persisted.ID != created.ID {
			t.Fatalf("persisted part differs from returned part")
		}
	})

	t.Run("publish failure does not change the outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewPartUseCase(repo, publisher)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Part) (entities.Part, error) { return p, nil })
		publisher.EXPECT().Publish(gomock.Any(), entities.ChangeOperationCreate, gomock.Any()).Return(errors.New("sns down"))

		if _, err := uc.CreatePart(context.Background(), newPartInput()); err != nil {
			t.Fatalf("publish failure leaked to the caller: %v", err)
		}
	})

	t.Run("repo failure surfaces and skips publish", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewPartUseCase(repo, publisher)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Part{}, errors.New("dynamo down"))

		_, err := uc.CreatePart(context.Background(), newPartInput())
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected dynamo down, got %v", err)
		}
	})
}

func TestPartUseCase_GetPart(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewPartUseCase(nil, nil)
		if _, err := uc.GetPart(context.Background(), "  "); !errors.Is(err, ErrInvalidPartID) {
			t.Fatalf("expected ErrInvalidPartID, got %v", err)
		}
	})

	t.Run("absent id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{}, nil)

		if _, err := uc.GetPart(context.Background(), "p-1"); !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1", Nome: "Vela"}, nil)

		part, err := uc.GetPart(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if part.Nome != "Vela" {
			t.Fatalf("unexpected part: %+v", part)
		}
	})
}

func TestPartUseCase_UpdatePart(t *testing.T) {
	nome := "Vela Iridium"

	t.Run("absent id skips the mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{}, nil)

		_, err := uc.UpdatePart(context.Background(), "p-1", entities.PartChange{Nome: &nome})
		if !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("existence check error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{}, errors.New("dynamo down"))

		if _, err := uc.UpdatePart(context.Background(), "p-1", entities.PartChange{}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("success publishes UPDATE", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewPartUseCase(repo, publisher)

		change := entities.PartChange{Nome: &nome}
		updated := entities.Part{ID: "p-1", Nome: nome, UpdatedAt: time.Now().UTC()}

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), "p-1", change).Return(updated, nil)
		publisher.EXPECT().Publish(gomock.Any(), entities.ChangeOperationUpdate, updated).Return(nil)

		got, err := uc.UpdatePart(context.Background(), "p-1", change)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Nome != nome {
			t.Fatalf("unexpected part: %+v", got)
		}
	})

	t.Run("publish failure does not change the outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		uc := NewPartUseCase(repo, publisher)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), "p-1", gomock.Any()).Return(entities.Part{ID: "p-1"}, nil)
		publisher.EXPECT().Publish(gomock.Any(), entities.ChangeOperationUpdate, gomock.Any()).Return(errors.New("sns down"))

		if _, err := uc.UpdatePart(context.Background(), "p-1", entities.PartChange{Nome: &nome}); err != nil {
			t.Fatalf("publish failure leaked to the caller: %v", err)
		}
	})
}

func TestPartUseCase_DeletePart(t *testing.T) {
	t.Run("absent id skips the delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{}, nil)

		if err := uc.DeletePart(context.Background(), "p-1"); !errors.Is(err, ErrPartNotFound) {
			t.Fatalf("expected ErrPartNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPartRepository(ctrl)
		uc := NewPartUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Part{ID: "p-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

		if err := uc.DeletePart(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPartUseCase_ListParts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPartRepository(ctrl)
	uc := NewPartUseCase(repo, nil)

	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Part{{ID: "a"}, {ID: "b"}}, nil)

	parts, err := uc.ListParts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
}
