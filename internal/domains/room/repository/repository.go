package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/recordstore"
	"frontdesk/internal/domains/room/model"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/notify"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/timezone"
)

type Room interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, fields ...string) ([]model.Room, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64, fields ...string) (model.Room, error)
	Create(ctx context.Context, rooms ...model.Room) ([]model.Room, error)
	Update(ctx context.Context, id int64, fields map[string]any) (model.Room, error)
	UpdateStatus(ctx context.Context, id int64, status model.Status) (model.Room, error)
	Delete(ctx context.Context, ids ...int64) ([]int64, error)
}

type repositoryImpl struct {
	gRepo.Gateway[model.Room]
}

func New(store recordstore.Client, notifier notify.Notifier, otel otel.Otel) Room {
	return &repositoryImpl{
		Gateway: gRepo.NewGateway[model.Room](model.EntityName, model.TableName, model.FromRecord, store, notifier, otel),
	}
}

// UpdateStatus stamps last_cleaned whenever a room becomes available.
func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id int64, status model.Status) (model.Room, error) {
	fields := map[string]any{
		model.FieldStatus: string(status),
	}

	if status == model.StatusAvailable {
		fields[model.FieldLastCleaned] = timezone.Now()
	}

	return repo.Update(ctx, id, fields) //nolint:wrapcheck
}
